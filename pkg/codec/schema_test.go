package codec

import (
	"errors"
	"testing"
)

func TestNewSchema_Valid(t *testing.T) {
	s, err := NewSchema("entry",
		U32("str_index"),
		U8("type"),
		U8("sect_index"),
		U16("desc"),
		U64("value"),
	)
	if err != nil {
		t.Fatalf("NewSchema failed: %v", err)
	}

	if s.Name() != "entry" {
		t.Errorf("Name mismatch: got %q", s.Name())
	}
	if s.Size() != 16 {
		t.Errorf("Size mismatch: got %d, want 16", s.Size())
	}
	if s.NumFields() != 5 {
		t.Errorf("NumFields mismatch: got %d, want 5", s.NumFields())
	}

	fields := s.Fields()
	want := []Field{
		{Name: "str_index", Size: 4},
		{Name: "type", Size: 1},
		{Name: "sect_index", Size: 1},
		{Name: "desc", Size: 2},
		{Name: "value", Size: 8},
	}
	for i, f := range fields {
		if f != want[i] {
			t.Errorf("field %d mismatch: got %+v, want %+v", i, f, want[i])
		}
	}
}

func TestNewSchema_BlobWidths(t *testing.T) {
	// Blob widths are unconstrained; only scalars must fit a uint64.
	s, err := NewSchema("seg", U32("cmd"), Blob("segname", 16))
	if err != nil {
		t.Fatalf("NewSchema failed: %v", err)
	}
	if s.Size() != 20 {
		t.Errorf("Size mismatch: got %d, want 20", s.Size())
	}
}

func TestNewSchema_Invalid(t *testing.T) {
	testCases := []struct {
		name   string
		fields []Field
	}{
		{
			name:   "no fields",
			fields: nil,
		},
		{
			name:   "empty field name",
			fields: []Field{{Name: "", Size: 4}},
		},
		{
			name:   "duplicate field name",
			fields: []Field{U32("cmd"), U32("cmd")},
		},
		{
			name:   "zero width",
			fields: []Field{{Name: "cmd", Size: 0}},
		},
		{
			name:   "negative width",
			fields: []Field{{Name: "cmd", Size: -4}},
		},
		{
			name:   "scalar wider than uint64",
			fields: []Field{{Name: "cmd", Size: 16}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSchema("bad", tc.fields...)
			if !errors.Is(err, ErrSchemaInvalid) {
				t.Errorf("expected ErrSchemaInvalid, got %v", err)
			}
		})
	}
}

func TestMustSchema_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustSchema to panic for an invalid field list")
		}
	}()
	MustSchema("bad")
}

func TestSchema_SizeIsExactSum(t *testing.T) {
	// Odd widths must not be padded or aligned.
	s := MustSchema("odd", U8("a"), U16("b"), Field{Name: "c", Size: 3}, Blob("d", 5))
	if s.Size() != 11 {
		t.Errorf("Size mismatch: got %d, want 11", s.Size())
	}
}

func TestSchema_FieldsReturnsCopy(t *testing.T) {
	s := MustSchema("pair", U32("tag"), U32("value"))
	fields := s.Fields()
	fields[0].Name = "mutated"
	if s.Fields()[0].Name != "tag" {
		t.Error("Fields exposed internal state")
	}
}
