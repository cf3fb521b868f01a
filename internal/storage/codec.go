package storage

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const tagName = "csv"

// Columns returns the csv-tagged field names of a struct type in field order.
func Columns(v any) []string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	var cols []string
	for i := 0; i < t.NumField(); i++ {
		if name, ok := columnName(t.Field(i)); ok {
			cols = append(cols, name)
		}
	}
	return cols
}

// MarshalRecord converts a csv-tagged struct into a Record.
func MarshalRecord(v any) Record {
	rv := reflect.Indirect(reflect.ValueOf(v))
	rt := rv.Type()
	rec := make(Record, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		name, ok := columnName(rt.Field(i))
		if !ok {
			continue
		}
		rec[name] = formatField(rv.Field(i))
	}
	return rec
}

// UnmarshalRecord fills the csv-tagged fields of the struct pointed to by v.
// Missing or unparsable cells leave the field at its zero value.
func UnmarshalRecord(rec Record, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("unmarshal record: expected pointer to struct, got %T", v)
	}
	rv = rv.Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		name, ok := columnName(rt.Field(i))
		if !ok {
			continue
		}
		setField(rv.Field(i), rec[name])
	}
	return nil
}

// FieldsFromJSON converts a decoded JSON object into cells for the csv-tagged
// fields of schema. Unknown keys and the id column are dropped, null clears a
// cell, and a value whose JSON type does not fit the field kind is an error.
func FieldsFromJSON(schema any, body map[string]any) (Record, error) {
	t := reflect.TypeOf(schema)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	rec := make(Record)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, ok := columnName(f)
		if !ok || name == IDColumn {
			continue
		}
		v, ok := body[name]
		if !ok {
			continue
		}
		if v != nil && !fitsKind(f.Type.Kind(), v) {
			return nil, fmt.Errorf("field %q must be %s", name, kindName(f.Type.Kind()))
		}
		rec[name] = FormatValue(v)
	}
	return rec, nil
}

func fitsKind(k reflect.Kind, v any) bool {
	switch k {
	case reflect.String:
		_, ok := v.(string)
		return ok
	case reflect.Bool:
		_, ok := v.(bool)
		return ok
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch x := v.(type) {
		case json.Number:
			_, err := x.Int64()
			return err == nil
		case float64:
			return x == float64(int64(x))
		}
		return false
	case reflect.Float32, reflect.Float64:
		switch x := v.(type) {
		case json.Number:
			_, err := x.Float64()
			return err == nil
		case float64:
			return true
		}
		return false
	default:
		return true
	}
}

func kindName(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	default:
		return "valid"
	}
}

// FormatValue renders a decoded JSON value as a cell.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case json.Number:
		return x.String()
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}

// ParseFloat reads a numeric cell, treating blanks and garbage as zero.
func ParseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseInt reads an integer cell, truncating fractional values ("7.0" reads as 7).
func ParseInt(s string) int64 {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return int64(ParseFloat(s))
}

// ParseBool reads a boolean cell; true, True, TRUE and 1 are true.
func ParseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

func columnName(f reflect.StructField) (string, bool) {
	if !f.IsExported() {
		return "", false
	}
	tag := f.Tag.Get(tagName)
	if tag == "-" || tag == "" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	return name, name != ""
}

func formatField(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	default:
		return FormatValue(v.Interface())
	}
}

func setField(v reflect.Value, cell string) {
	switch v.Kind() {
	case reflect.String:
		v.SetString(cell)
	case reflect.Bool:
		v.SetBool(ParseBool(cell))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(ParseInt(cell))
	case reflect.Float32, reflect.Float64:
		v.SetFloat(ParseFloat(cell))
	}
}
