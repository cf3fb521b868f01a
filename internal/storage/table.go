package storage

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"FITZEN_BACK-END/internal/apperrors"
	"FITZEN_BACK-END/internal/logger"
)

// IDColumn is the key column shared by every table.
const IDColumn = "id"

// Record is one row of a table, keyed by column name.
type Record map[string]string

// Clone returns a copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is a flat CSV file holding every row of one entity type.
// Each operation reads the whole file and, for mutations, rewrites it whole.
// Operations on one Table are serialised by its mutex; nothing coordinates
// separate processes writing the same file.
type Table struct {
	name    string
	path    string
	columns []string

	mu sync.Mutex
}

// NewTable creates a table bound to dataDir/fileName with the given ordered columns.
func NewTable(dataDir, fileName string, columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{
		name:    fileName,
		path:    filepath.Join(dataDir, fileName),
		columns: cols,
	}
}

func (t *Table) Name() string { return t.name }

func (t *Table) Path() string { return t.path }

// Columns returns the schema columns in order.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// EnsureInitialized creates the file with its header row if it does not exist.
func (t *Table) EnsureInitialized() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := os.Stat(t.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return apperrors.NewStorageError(err, t.name)
	}

	if err := os.MkdirAll(filepath.Dir(t.path), 0755); err != nil {
		return apperrors.NewStorageError(err, t.name)
	}
	if err := t.save(t.columns, nil); err != nil {
		return apperrors.NewStorageError(err, t.name)
	}
	return nil
}

// ReadAll returns every row. Read failures are logged and yield an empty slice.
func (t *Table) ReadAll() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, rows, err := t.load()
	if err != nil {
		logger.Error("Error reading table", "table", t.name, "error", err)
		return []Record{}
	}
	return rows
}

// ReadByID returns the first row whose id matches.
func (t *Table) ReadByID(id string) (Record, bool) {
	for _, row := range t.ReadAll() {
		if row[IDColumn] == id {
			return row, true
		}
	}
	return nil, false
}

// ReadByFilter returns rows matching every filter by equality, in table order.
func (t *Table) ReadByFilter(filters Record) []Record {
	rows := t.ReadAll()
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		if matches(row, filters) {
			out = append(out, row)
		}
	}
	return out
}

// Create appends rec as the last row.
func (t *Table) Create(rec Record) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	header, rows, err := t.load()
	if err != nil {
		logger.Error("Error creating record", "table", t.name, "error", err)
		return apperrors.NewStorageError(err, t.name)
	}

	header = extendHeader(header, rec)
	rows = append(rows, rec.Clone())

	if err := t.save(header, rows); err != nil {
		logger.Error("Error creating record", "table", t.name, "error", err)
		return apperrors.NewStorageError(err, t.name)
	}
	return nil
}

// Update overwrites the supplied fields on every row with the given id.
// The table is left untouched and a not-found error returned when no row matches.
func (t *Table) Update(id string, fields Record) error {
	_, err := t.Modify(id, func(Record) (Record, error) { return fields, nil })
	return err
}

// Modify reads the first row with the given id, asks fn for the fields to
// change and writes them to every row with that id, all under one lock.
// It returns the first matching row as written. The table is left untouched
// when no row matches or fn fails.
func (t *Table) Modify(id string, fn func(current Record) (Record, error)) (Record, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	header, rows, err := t.load()
	if err != nil {
		logger.Error("Error updating record", "table", t.name, "error", err)
		return nil, apperrors.NewStorageError(err, t.name)
	}

	idx := slices.IndexFunc(rows, func(row Record) bool { return row[IDColumn] == id })
	if idx < 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no row with id %q in %s", id, t.name))
	}
	fields, err := fn(rows[idx].Clone())
	if err != nil {
		return nil, err
	}

	for _, row := range rows[idx:] {
		if row[IDColumn] != id {
			continue
		}
		for k, v := range fields {
			row[k] = v
		}
	}

	header = extendHeader(header, fields)
	if err := t.save(header, rows); err != nil {
		logger.Error("Error updating record", "table", t.name, "error", err)
		return nil, apperrors.NewStorageError(err, t.name)
	}
	return rows[idx].Clone(), nil
}

// Delete removes every row with the given id. Deleting an absent id still
// rewrites the table and succeeds.
func (t *Table) Delete(id string) error {
	_, err := t.DeleteWhere(Record{IDColumn: id})
	return err
}

// DeleteWhere removes every row matching all filters and reports how many went.
func (t *Table) DeleteWhere(filters Record) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	header, rows, err := t.load()
	if err != nil {
		logger.Error("Error deleting records", "table", t.name, "error", err)
		return 0, apperrors.NewStorageError(err, t.name)
	}

	kept := rows[:0]
	for _, row := range rows {
		if !matches(row, filters) {
			kept = append(kept, row)
		}
	}
	removed := len(rows) - len(kept)

	if err := t.save(header, kept); err != nil {
		logger.Error("Error deleting records", "table", t.name, "error", err)
		return 0, apperrors.NewStorageError(err, t.name)
	}
	return removed, nil
}

// load reads the header and rows. A missing file reads as an empty table
// with the schema header. Schema columns absent from the file header are
// appended so a rewrite restores them.
func (t *Table) load() ([]string, []Record, error) {
	f, err := os.Open(t.path)
	if errors.Is(err, fs.ErrNotExist) {
		return t.Columns(), nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(newQuotedCRLFReader(f))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return t.Columns(), nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	for _, col := range t.columns {
		if !slices.Contains(header, col) {
			header = append(header, col)
		}
	}

	var rows []Record
	for {
		cells, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read row: %w", err)
		}
		row := make(Record, len(header))
		for i, col := range header {
			if i < len(cells) {
				row[col] = cells[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// save writes the whole table to a temp file and renames it over the original.
func (t *Table) save(header []string, rows []Record) error {
	dir := filepath.Dir(t.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(t.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}
	if err := tmp.Chmod(0644); err != nil {
		cleanup()
		return err
	}

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		cleanup()
		return err
	}
	cells := make([]string, len(header))
	for _, row := range rows {
		for i, col := range header {
			cells[i] = row[col]
		}
		if err := w.Write(cells); err != nil {
			cleanup()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, t.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func matches(row, filters Record) bool {
	for k, v := range filters {
		if row[k] != v {
			return false
		}
	}
	return true
}

// extendHeader appends columns present in fields but not in header, in name order.
func extendHeader(header []string, fields Record) []string {
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		if !slices.Contains(header, k) {
			header = append(header, k)
		}
	}
	return header
}

// quotedCRLFReader doubles the carriage return of every CRLF inside a quoted
// field. csv.Reader drops one \r before each \n it reads, so the field comes
// back with its original CRLF. Line endings outside quotes pass unchanged.
type quotedCRLFReader struct {
	r        *bufio.Reader
	inQuotes bool
	pending  bool
}

func newQuotedCRLFReader(r io.Reader) *quotedCRLFReader {
	return &quotedCRLFReader{r: bufio.NewReader(r)}
}

func (q *quotedCRLFReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if q.pending {
			p[n] = '\r'
			n++
			q.pending = false
			continue
		}
		b, err := q.r.ReadByte()
		if err != nil {
			if n > 0 {
				return n, nil
			}
			return 0, err
		}
		switch b {
		case '"':
			q.inQuotes = !q.inQuotes
		case '\r':
			if q.inQuotes {
				if next, err := q.r.Peek(1); err == nil && next[0] == '\n' {
					q.pending = true
				}
			}
		}
		p[n] = b
		n++
	}
	return n, nil
}
