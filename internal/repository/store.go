package repository

import (
	"FITZEN_BACK-END/internal/logger"
	"FITZEN_BACK-END/internal/models"
	"FITZEN_BACK-END/internal/storage"
)

// Store binds one entity schema to one CSV table.
type Store[T models.Entity] struct {
	table *storage.Table
}

// NewStore creates a store for T at dataDir/fileName. Columns come from T's csv tags.
func NewStore[T models.Entity](dataDir, fileName string) *Store[T] {
	var zero T
	return &Store[T]{table: storage.NewTable(dataDir, fileName, storage.Columns(zero))}
}

func (s *Store[T]) Table() *storage.Table { return s.table }

func (s *Store[T]) Columns() []string { return s.table.Columns() }

// All returns every entity in table order.
func (s *Store[T]) All() []T {
	return s.decodeAll(s.table.ReadAll())
}

// Get returns the first entity with the given id.
func (s *Store[T]) Get(id string) (T, bool) {
	rec, ok := s.table.ReadByID(id)
	if !ok {
		var zero T
		return zero, false
	}
	return s.decode(rec), true
}

// Filter returns entities whose cells equal every filter value.
func (s *Store[T]) Filter(filters storage.Record) []T {
	return s.decodeAll(s.table.ReadByFilter(filters))
}

// ByUser is shorthand for Filter on user_id.
func (s *Store[T]) ByUser(userID string) []T {
	return s.Filter(storage.Record{"user_id": userID})
}

func (s *Store[T]) Create(v T) error {
	return s.table.Create(storage.MarshalRecord(v))
}

// Update applies fields to the entity with the given id and returns the result.
func (s *Store[T]) Update(id string, fields storage.Record) (T, error) {
	return s.Modify(id, func(T) storage.Record { return fields })
}

// Modify hands fn the stored entity and writes back the fields it returns.
// The read and the write happen under the table lock.
func (s *Store[T]) Modify(id string, fn func(current T) storage.Record) (T, error) {
	var zero T
	rec, err := s.table.Modify(id, func(cur storage.Record) (storage.Record, error) {
		return fn(s.decode(cur)), nil
	})
	if err != nil {
		return zero, err
	}
	return s.decode(rec), nil
}

func (s *Store[T]) Delete(id string) error {
	return s.table.Delete(id)
}

func (s *Store[T]) DeleteWhere(filters storage.Record) (int, error) {
	return s.table.DeleteWhere(filters)
}

func (s *Store[T]) decode(rec storage.Record) T {
	var v T
	if err := storage.UnmarshalRecord(rec, &v); err != nil {
		logger.Error("Error decoding record", "table", s.table.Name(), "error", err)
	}
	return v
}

func (s *Store[T]) decodeAll(recs []storage.Record) []T {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		out = append(out, s.decode(rec))
	}
	return out
}
