package codec

import "fmt"

// FieldKind says how a field's bytes are interpreted.
type FieldKind int

const (
	// Uint fields decode to an unsigned integer in the record's byte order.
	Uint FieldKind = iota
	// Bytes fields are carried as an opaque fixed-width blob, e.g. an
	// embedded name or UUID area.
	Bytes
)

func (k FieldKind) String() string {
	switch k {
	case Uint:
		return "uint"
	case Bytes:
		return "bytes"
	}
	return fmt.Sprintf("FieldKind(%d)", int(k))
}

// Field describes one fixed-width slot in a record layout.
type Field struct {
	Name string
	Size int // width in bytes
	Kind FieldKind
}

// Shorthand constructors for schema declarations.

func U8(name string) Field  { return Field{Name: name, Size: 1} }
func U16(name string) Field { return Field{Name: name, Size: 2} }
func U32(name string) Field { return Field{Name: name, Size: 4} }
func U64(name string) Field { return Field{Name: name, Size: 8} }

// Blob declares an opaque fixed-width byte field.
func Blob(name string, size int) Field {
	return Field{Name: name, Size: size, Kind: Bytes}
}

// Schema is an immutable description of a record layout: field names, their
// declared order, and the byte width of each. Field order defines byte
// offsets, and the total size is always the exact sum of the widths with no
// implicit padding or alignment. Schemas carry no state and are safe to
// share between any number of records.
type Schema struct {
	name   string
	fields []Field
	byName map[string]int
	size   int
}

// NewSchema builds a schema from an ordered field list.
func NewSchema(name string, fields ...Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("schema %q has no fields: %w", name, ErrSchemaInvalid)
	}

	s := &Schema{
		name:   name,
		fields: make([]Field, len(fields)),
		byName: make(map[string]int, len(fields)),
	}
	copy(s.fields, fields)

	for i, f := range s.fields {
		if f.Name == "" {
			return nil, fmt.Errorf("schema %q: field %d has no name: %w", name, i, ErrSchemaInvalid)
		}
		if _, dup := s.byName[f.Name]; dup {
			return nil, fmt.Errorf("schema %q: duplicate field %q: %w", name, f.Name, ErrSchemaInvalid)
		}
		if f.Size <= 0 {
			return nil, fmt.Errorf("schema %q: field %q has width %d: %w", name, f.Name, f.Size, ErrSchemaInvalid)
		}
		// A scalar must fit a uint64.
		if f.Kind == Uint && f.Size > 8 {
			return nil, fmt.Errorf("schema %q: uint field %q is %d bytes wide: %w", name, f.Name, f.Size, ErrSchemaInvalid)
		}
		s.byName[f.Name] = i
		s.size += f.Size
	}

	return s, nil
}

// MustSchema is NewSchema for static catalog declarations; it panics if the
// field list is invalid.
func MustSchema(name string, fields ...Field) *Schema {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema's name.
func (s *Schema) Name() string { return s.name }

// Size returns the total record size in bytes.
func (s *Schema) Size() int { return s.size }

// NumFields returns the number of fields.
func (s *Schema) NumFields() int { return len(s.fields) }

// Fields returns a copy of the field list in declared order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

func (s *Schema) fieldIndex(name string) (int, error) {
	i, ok := s.byName[name]
	if !ok {
		return 0, fmt.Errorf("schema %q: %q: %w", s.name, name, ErrUnknownField)
	}
	return i, nil
}

// checkValue verifies that v is assignable to field i: matching kind,
// matching blob width, and for scalars a value that fits the declared width.
func (s *Schema) checkValue(i int, v Value) error {
	f := s.fields[i]
	if f.Kind == Bytes {
		if !v.blob {
			return fmt.Errorf("field %q wants %d bytes, got integer: %w", f.Name, f.Size, ErrFieldWidthMismatch)
		}
		if len(v.b) != f.Size {
			return fmt.Errorf("field %q wants %d bytes, got %d: %w", f.Name, f.Size, len(v.b), ErrFieldWidthMismatch)
		}
		return nil
	}
	if v.blob {
		return fmt.Errorf("field %q wants an integer, got %d bytes: %w", f.Name, len(v.b), ErrFieldWidthMismatch)
	}
	if f.Size < 8 && v.u >= 1<<(8*uint(f.Size)) {
		return fmt.Errorf("field %q: %#x does not fit in %d bytes: %w", f.Name, v.u, f.Size, ErrFieldOverflow)
	}
	return nil
}
