package storage

import (
	"encoding/json"
	"reflect"
	"testing"
)

type sample struct {
	ID       string  `csv:"id"`
	Name     string  `csv:"name"`
	Weight   float64 `csv:"weight"`
	Days     int     `csv:"days"`
	Active   bool    `csv:"active"`
	Internal string  `csv:"-"`
	hidden   string
}

func TestColumns(t *testing.T) {
	t.Parallel()

	got := Columns(sample{})
	want := []string{"id", "name", "weight", "days", "active"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Columns: want %v, got %v", want, got)
	}
	if got := Columns(&sample{}); !reflect.DeepEqual(got, want) {
		t.Fatalf("Columns on pointer: want %v, got %v", want, got)
	}
}

func TestMarshalUnmarshalRecord(t *testing.T) {
	t.Parallel()

	in := sample{ID: "x", Name: "Squat", Weight: 72.5, Days: 7, Active: true, Internal: "skip", hidden: "skip"}
	rec := MarshalRecord(in)

	want := Record{"id": "x", "name": "Squat", "weight": "72.5", "days": "7", "active": "true"}
	if !reflect.DeepEqual(rec, want) {
		t.Fatalf("MarshalRecord: want %v, got %v", want, rec)
	}

	var out sample
	if err := UnmarshalRecord(rec, &out); err != nil {
		t.Fatalf("UnmarshalRecord: %v", err)
	}
	in.Internal, in.hidden = "", ""
	if out != in {
		t.Fatalf("round trip: want %+v, got %+v", in, out)
	}
}

func TestUnmarshalRecordLenient(t *testing.T) {
	t.Parallel()

	var out sample
	err := UnmarshalRecord(Record{"weight": "", "days": "7.0", "active": "True"}, &out)
	if err != nil {
		t.Fatalf("UnmarshalRecord: %v", err)
	}
	if out.Weight != 0 || out.Days != 7 || !out.Active {
		t.Fatalf("unexpected lenient parse: %+v", out)
	}

	if err := UnmarshalRecord(Record{}, out); err == nil {
		t.Fatalf("expected error for non-pointer target")
	}
}

func TestFieldsFromJSON(t *testing.T) {
	t.Parallel()

	body := map[string]any{
		"id":      "client-chosen",
		"name":    "Bench",
		"weight":  json.Number("80.5"),
		"active":  false,
		"unknown": "dropped",
		"days":    nil,
	}
	got, err := FieldsFromJSON(sample{}, body)
	if err != nil {
		t.Fatalf("FieldsFromJSON: %v", err)
	}
	want := Record{"name": "Bench", "weight": "80.5", "active": "false", "days": ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FieldsFromJSON: want %v, got %v", want, got)
	}
}

func TestFieldsFromJSONRejectsMistypedValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body map[string]any
	}{
		{"string for float", map[string]any{"weight": "abc"}},
		{"numeric string for float", map[string]any{"weight": "72.5"}},
		{"fraction for int", map[string]any{"days": json.Number("7.5")}},
		{"bool for int", map[string]any{"days": true}},
		{"number for string", map[string]any{"name": json.Number("3")}},
		{"string for bool", map[string]any{"active": "yes"}},
		{"object for string", map[string]any{"name": map[string]any{"a": "b"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if rec, err := FieldsFromJSON(&sample{}, tc.body); err == nil {
				t.Fatalf("expected type error, got %v", rec)
			}
		})
	}

	// Unknown keys are never type checked.
	if _, err := FieldsFromJSON(sample{}, map[string]any{"extra": true, "days": json.Number("7")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"text", "text"},
		{true, "true"},
		{float64(24.49), "24.49"},
		{float64(3), "3"},
		{42, "42"},
		{[]any{"a", "b"}, `["a","b"]`},
	}
	for _, tc := range cases {
		if got := FormatValue(tc.in); got != tc.want {
			t.Errorf("FormatValue(%#v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
