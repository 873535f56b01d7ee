package codec

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Value carries one field value: either an unsigned integer or a
// fixed-width blob, matching the field's declared kind.
type Value struct {
	u    uint64
	b    []byte
	blob bool
}

// UintVal wraps an unsigned integer field value.
func UintVal(v uint64) Value { return Value{u: v} }

// BlobVal wraps an opaque byte field value.
func BlobVal(b []byte) Value { return Value{b: b, blob: true} }

// IsBlob reports whether the value carries bytes rather than an integer.
func (v Value) IsBlob() bool { return v.blob }

// Uint returns the integer form of the value.
func (v Value) Uint() uint64 { return v.u }

// Blob returns the byte form of the value.
func (v Value) Blob() []byte { return v.b }

// Record binds a schema to concrete field values and keeps their byte
// encoding in sync. Once a record is live, every field write synchronously
// rebuilds the entire raw buffer from all current values; the buffer is
// never patched in place, so it is always either absent (while construction
// is in progress) or consistent with every field.
//
// Records are not safe for concurrent mutation; callers that share one must
// serialize access themselves.
type Record struct {
	schema *Schema
	order  binary.ByteOrder
	uints  []uint64
	blobs  [][]byte
	raw    []byte
	live   bool
}

func newRecord(schema *Schema, order binary.ByteOrder) *Record {
	return &Record{
		schema: schema,
		order:  order,
		uints:  make([]uint64, len(schema.fields)),
		blobs:  make([][]byte, len(schema.fields)),
	}
}

// Decode unpacks one record from the front of data, consuming each field's
// declared width in order at a running offset. Bytes beyond the schema size
// are ignored; the caller re-slices a larger buffer before decoding the
// next record. A buffer shorter than the schema size fails with
// ErrTruncatedInput.
func Decode(schema *Schema, data []byte, order binary.ByteOrder) (*Record, error) {
	if len(data) < schema.size {
		return nil, fmt.Errorf("schema %q needs %d bytes, have %d: %w",
			schema.name, schema.size, len(data), ErrTruncatedInput)
	}

	r := newRecord(schema, order)
	off := 0
	for i, f := range schema.fields {
		chunk := data[off : off+f.Size]
		if f.Kind == Bytes {
			r.blobs[i] = append([]byte(nil), chunk...)
		} else {
			r.uints[i] = getUint(chunk, order)
		}
		off += f.Size
	}
	r.raw = append([]byte(nil), data[:schema.size]...)
	r.live = true

	return r, nil
}

// New builds a record from an ordered value list, one value per declared
// field. Every value is validated before anything is assigned, so a bad
// count, kind, width, or an overflowing scalar fails without a partially
// built record. A single encode pass produces the raw buffer at the end.
func New(schema *Schema, values []Value, order binary.ByteOrder) (*Record, error) {
	if len(values) != len(schema.fields) {
		return nil, fmt.Errorf("schema %q has %d fields, got %d values: %w",
			schema.name, len(schema.fields), len(values), ErrArityMismatch)
	}
	for i, v := range values {
		if err := schema.checkValue(i, v); err != nil {
			return nil, err
		}
	}

	r := newRecord(schema, order)
	for i, v := range values {
		if v.blob {
			r.blobs[i] = append([]byte(nil), v.b...)
		} else {
			r.uints[i] = v.u
		}
	}
	r.rebuildRaw()
	r.live = true

	return r, nil
}

// Get returns the current value of the named field.
func (r *Record) Get(name string) (Value, error) {
	i, err := r.schema.fieldIndex(name)
	if err != nil {
		return Value{}, err
	}
	return r.value(i), nil
}

// Uint returns the named scalar field's value.
func (r *Record) Uint(name string) (uint64, error) {
	i, err := r.schema.fieldIndex(name)
	if err != nil {
		return 0, err
	}
	if r.schema.fields[i].Kind != Uint {
		return 0, fmt.Errorf("field %q is a blob: %w", name, ErrFieldWidthMismatch)
	}
	return r.uints[i], nil
}

// Blob returns a copy of the named blob field's bytes.
func (r *Record) Blob(name string) ([]byte, error) {
	i, err := r.schema.fieldIndex(name)
	if err != nil {
		return nil, err
	}
	if r.schema.fields[i].Kind != Bytes {
		return nil, fmt.Errorf("field %q is a scalar: %w", name, ErrFieldWidthMismatch)
	}
	return append([]byte(nil), r.blobs[i]...), nil
}

// Values returns every field value in declared order.
func (r *Record) Values() []Value {
	out := make([]Value, len(r.schema.fields))
	for i := range r.schema.fields {
		out[i] = r.value(i)
	}
	return out
}

func (r *Record) value(i int) Value {
	if r.schema.fields[i].Kind == Bytes {
		return BlobVal(append([]byte(nil), r.blobs[i]...))
	}
	return UintVal(r.uints[i])
}

// Set assigns the named field and re-encodes the whole record. On any error
// the record, including its raw bytes, is left untouched.
func (r *Record) Set(name string, v Value) error {
	i, err := r.schema.fieldIndex(name)
	if err != nil {
		return err
	}
	if err := r.schema.checkValue(i, v); err != nil {
		return err
	}

	if v.blob {
		r.blobs[i] = append([]byte(nil), v.b...)
	} else {
		r.uints[i] = v.u
	}
	if r.live {
		r.rebuildRaw()
	}
	return nil
}

// SetUint assigns a scalar field. The value must fit the field's declared
// width or the write fails with ErrFieldOverflow.
func (r *Record) SetUint(name string, v uint64) error {
	return r.Set(name, UintVal(v))
}

// SetBlob assigns a blob field. The length must equal the field's declared
// width or the write fails with ErrFieldWidthMismatch.
func (r *Record) SetBlob(name string, b []byte) error {
	return r.Set(name, BlobVal(b))
}

// Raw returns a copy of the record's current byte encoding.
func (r *Record) Raw() []byte {
	return append([]byte(nil), r.raw...)
}

// Size returns the encoded size, always equal to the schema size.
func (r *Record) Size() int { return r.schema.size }

// Schema returns the layout this record is bound to.
func (r *Record) Schema() *Schema { return r.schema }

// ByteOrder returns the order used for the record's scalar fields.
func (r *Record) ByteOrder() binary.ByteOrder { return r.order }

// String renders every field in declared order with hexadecimal values.
// Diagnostic only; not part of the wire contract.
func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString(r.schema.name)
	sb.WriteByte('(')
	for i, f := range r.schema.fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		if f.Kind == Bytes {
			fmt.Fprintf(&sb, "%s=0x%x", f.Name, r.blobs[i])
		} else {
			fmt.Fprintf(&sb, "%s=%#x", f.Name, r.uints[i])
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// rebuildRaw regenerates the whole buffer from every current field value.
func (r *Record) rebuildRaw() {
	raw := make([]byte, 0, r.schema.size)
	for i, f := range r.schema.fields {
		if f.Kind == Bytes {
			raw = append(raw, r.blobs[i]...)
		} else {
			var scratch [8]byte
			putUint(scratch[:f.Size], r.uints[i], r.order)
			raw = append(raw, scratch[:f.Size]...)
		}
	}
	r.raw = raw
}

// getUint reads an unsigned integer of 1..8 bytes by padding the chunk into
// the uint64 slot that matters for the given order.
func getUint(src []byte, order binary.ByteOrder) uint64 {
	var scratch [8]byte
	if order == binary.ByteOrder(binary.BigEndian) {
		copy(scratch[8-len(src):], src)
	} else {
		copy(scratch[:], src)
	}
	return order.Uint64(scratch[:])
}

// putUint writes v into dst; len(dst) gives the width. The value is assumed
// to fit, checkValue guards every assignment path.
func putUint(dst []byte, v uint64, order binary.ByteOrder) {
	var scratch [8]byte
	order.PutUint64(scratch[:], v)
	if order == binary.ByteOrder(binary.BigEndian) {
		copy(dst, scratch[8-len(dst):])
	} else {
		copy(dst, scratch[:len(dst)])
	}
}
