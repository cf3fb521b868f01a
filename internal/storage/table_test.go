package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"FITZEN_BACK-END/internal/apperrors"
)

var testColumns = []string{"id", "user_id", "title", "calories"}

func newTestTable(t *testing.T) *Table {
	t.Helper()
	table := NewTable(t.TempDir(), "workouts.csv", testColumns)
	if err := table.EnsureInitialized(); err != nil {
		t.Fatalf("EnsureInitialized: %v", err)
	}
	return table
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func TestEnsureInitializedWritesHeader(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "data")
	table := NewTable(dir, "goals.csv", testColumns)
	if err := table.EnsureInitialized(); err != nil {
		t.Fatalf("EnsureInitialized: %v", err)
	}

	got := readFile(t, table.Path())
	if got != "id,user_id,title,calories\n" {
		t.Fatalf("unexpected header: %q", got)
	}

	// Second call must not clobber existing rows.
	if err := table.Create(Record{"id": "1", "title": "Run"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := table.EnsureInitialized(); err != nil {
		t.Fatalf("EnsureInitialized again: %v", err)
	}
	if rows := table.ReadAll(); len(rows) != 1 {
		t.Fatalf("expected 1 row after re-init, got %d", len(rows))
	}
}

func TestCreateThenReadByID(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)
	rec := Record{"id": "a1", "user_id": "u1", "title": "Leg day, heavy", "calories": "420"}
	if err := table.Create(rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, ok := table.ReadByID("a1")
	if !ok {
		t.Fatalf("expected row a1")
	}
	for k, v := range rec {
		if got[k] != v {
			t.Fatalf("column %s: want %q, got %q", k, v, got[k])
		}
	}

	if _, ok := table.ReadByID("missing"); ok {
		t.Fatalf("expected no row for missing id")
	}
}

func TestReadAllMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	table := NewTable(t.TempDir(), "nothing.csv", testColumns)
	rows := table.ReadAll()
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", rows)
	}
}

func TestReadAllMalformedFileIsEmpty(t *testing.T) {
	t.Parallel()

	table := NewTable(t.TempDir(), "bad.csv", testColumns)
	if err := os.WriteFile(table.Path(), []byte("id,title\n1,\"unterminated\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if rows := table.ReadAll(); len(rows) != 0 {
		t.Fatalf("expected no rows from malformed file, got %d", len(rows))
	}
}

func TestReadByFilter(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)
	for _, rec := range []Record{
		{"id": "1", "user_id": "u1", "title": "A"},
		{"id": "2", "user_id": "u2", "title": "B"},
		{"id": "3", "user_id": "u1", "title": "C"},
	} {
		if err := table.Create(rec); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	rows := table.ReadByFilter(Record{"user_id": "u1"})
	if len(rows) != 2 || rows[0]["id"] != "1" || rows[1]["id"] != "3" {
		t.Fatalf("unexpected filter result: %#v", rows)
	}

	if rows := table.ReadByFilter(Record{"user_id": "u1", "title": "C"}); len(rows) != 1 {
		t.Fatalf("expected 1 row for combined filter, got %d", len(rows))
	}
	if rows := table.ReadByFilter(Record{}); len(rows) != 3 {
		t.Fatalf("empty filter should match all rows, got %d", len(rows))
	}
}

func TestUpdateChangesOnlySuppliedFields(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)
	if err := table.Create(Record{"id": "1", "user_id": "u1", "title": "Old", "calories": "100"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := table.Update("1", Record{"title": "New"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, _ := table.ReadByID("1")
	if got["title"] != "New" {
		t.Fatalf("title not updated: %q", got["title"])
	}
	if got["calories"] != "100" || got["user_id"] != "u1" {
		t.Fatalf("untouched fields changed: %#v", got)
	}
}

func TestUpdateMissingIDLeavesTableUnchanged(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)
	if err := table.Create(Record{"id": "1", "title": "Keep"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	before := readFile(t, table.Path())

	err := table.Update("nope", Record{"title": "X"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if after := readFile(t, table.Path()); after != before {
		t.Fatalf("table changed:\n%s\n---\n%s", before, after)
	}
}

func TestUpdateAddsUnknownColumn(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)
	if err := table.Create(Record{"id": "1", "title": "A"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := table.Update("1", Record{"notes": "extra"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := table.ReadByID("1")
	if got["notes"] != "extra" {
		t.Fatalf("expected extra column to persist, got %#v", got)
	}
	header := strings.SplitN(readFile(t, table.Path()), "\n", 2)[0]
	if header != "id,user_id,title,calories,notes" {
		t.Fatalf("unexpected header %q", header)
	}
}

func TestDeleteMissingIDSucceeds(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)
	if err := table.Create(Record{"id": "1", "title": "A"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	before := readFile(t, table.Path())

	if err := table.Delete("ghost"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if after := readFile(t, table.Path()); after != before {
		t.Fatalf("table changed after deleting missing id")
	}
}

func TestDeleteRemovesRow(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)
	for _, id := range []string{"1", "2", "3"} {
		if err := table.Create(Record{"id": id}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := table.Delete("2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	rows := table.ReadAll()
	if len(rows) != 2 || rows[0]["id"] != "1" || rows[1]["id"] != "3" {
		t.Fatalf("unexpected rows after delete: %#v", rows)
	}
}

func TestDeleteWhereCountsRemoved(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)
	for _, rec := range []Record{
		{"id": "1", "user_id": "u1"},
		{"id": "2", "user_id": "u2"},
		{"id": "3", "user_id": "u1"},
	} {
		if err := table.Create(rec); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	n, err := table.DeleteWhere(Record{"user_id": "u1"})
	if err != nil {
		t.Fatalf("DeleteWhere: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 removed, got %d", n)
	}
	if rows := table.ReadAll(); len(rows) != 1 || rows[0]["id"] != "2" {
		t.Fatalf("unexpected remaining rows: %#v", rows)
	}
}

func TestLoadRestoresMissingSchemaColumns(t *testing.T) {
	t.Parallel()

	table := NewTable(t.TempDir(), "old.csv", testColumns)
	if err := os.WriteFile(table.Path(), []byte("id,title\n1,Old\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, ok := table.ReadByID("1")
	if !ok {
		t.Fatalf("expected row 1")
	}
	if v, present := got["calories"]; !present || v != "" {
		t.Fatalf("expected blank calories cell, got %#v", got)
	}
}

func TestConcurrentCreatesAreSerialised(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)
	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := table.Create(Record{"id": FormatValue(i)}); err != nil {
				t.Errorf("Create %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	if rows := table.ReadAll(); len(rows) != n {
		t.Fatalf("expected %d rows, got %d", n, len(rows))
	}
}

func TestLineBreaksInFieldsSurviveRoundTrip(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)
	notes := map[string]string{
		"crlf":  "line1\r\nline2",
		"lf":    "line1\nline2",
		"cr":    "line1\rline2",
		"mixed": "a\r\n\r\nb \"quoted\"\r\n",
	}
	for id, title := range notes {
		if err := table.Create(Record{"id": id, "title": title}); err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}

	for id, want := range notes {
		got, ok := table.ReadByID(id)
		if !ok {
			t.Fatalf("expected row %s", id)
		}
		if got["title"] != want {
			t.Fatalf("row %s: want %q, got %q", id, want, got["title"])
		}
	}

	// Rewriting the file must keep the other rows intact too.
	if err := table.Update("lf", Record{"calories": "10"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got, _ := table.ReadByID("crlf"); got["title"] != notes["crlf"] {
		t.Fatalf("crlf row changed after update: %q", got["title"])
	}
}

func TestCRLFRowTerminatorsStillRead(t *testing.T) {
	t.Parallel()

	table := NewTable(t.TempDir(), "external.csv", []string{"id", "title"})
	if err := os.WriteFile(table.Path(), []byte("id,title\r\n1,Old\r\n2,\"a\r\nb\"\r\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, ok := table.ReadByID("1")
	if !ok || got["title"] != "Old" {
		t.Fatalf("unexpected row 1: %#v", got)
	}
	got, ok = table.ReadByID("2")
	if !ok || got["title"] != "a\r\nb" {
		t.Fatalf("unexpected row 2: %#v", got)
	}
}

func TestModifySeesCurrentRow(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)
	if err := table.Create(Record{"id": "1", "title": "Count", "calories": "0"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := table.Modify("1", func(cur Record) (Record, error) {
				return Record{"calories": FormatValue(ParseInt(cur["calories"]) + 1)}, nil
			})
			if err != nil {
				t.Errorf("Modify: %v", err)
			}
		}()
	}
	wg.Wait()

	got, _ := table.ReadByID("1")
	if got["calories"] != FormatValue(n) {
		t.Fatalf("expected %d increments, got %q", n, got["calories"])
	}
}

func TestModifyErrorLeavesTableUnchanged(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)
	if err := table.Create(Record{"id": "1", "title": "Keep"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	before := readFile(t, table.Path())

	boom := errors.New("boom")
	_, err := table.Modify("1", func(Record) (Record, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}
	_, err = table.Modify("nope", func(Record) (Record, error) { return Record{"title": "X"}, nil })
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if after := readFile(t, table.Path()); after != before {
		t.Fatalf("table changed:\n%s\n---\n%s", before, after)
	}
}
