package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// RecordIterator provides streaming access to records
type RecordIterator interface {
	Next() bool
	Record() *Record
	Err() error
}

// RecordReader reads consecutive same-schema records from a stream. Mach-O
// symbol tables and fat-arch lists are laid out exactly like this: N
// back-to-back fixed-size entries.
type RecordReader struct {
	reader *bufio.Reader
	schema *Schema
	order  binary.ByteOrder
	buf    []byte
	offset int64
}

// NewRecordReader creates a reader that decodes records of the given schema
// from r. The reader owns no file handles; closing the source is the
// caller's responsibility.
func NewRecordReader(r io.Reader, schema *Schema, order binary.ByteOrder) *RecordReader {
	return &RecordReader{
		reader: bufio.NewReader(r),
		schema: schema,
		order:  order,
		buf:    make([]byte, schema.Size()),
	}
}

// Next returns the record at the current offset and advances past it.
// io.EOF marks a clean end of stream; a partial trailing record fails with
// ErrTruncatedInput.
func (r *RecordReader) Next() (*Record, error) {
	n, err := io.ReadFull(r.reader, r.buf)
	if err == io.EOF {
		return nil, io.EOF
	}
	if err == io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("record at offset %d: %d of %d bytes: %w",
			r.offset, n, len(r.buf), ErrTruncatedInput)
	}
	if err != nil {
		return nil, err
	}

	rec, err := Decode(r.schema, r.buf, r.order)
	if err != nil {
		return nil, err
	}
	r.offset += int64(n)

	return rec, nil
}

// Offset returns the stream offset of the next record.
func (r *RecordReader) Offset() int64 { return r.offset }

// Iterator returns a streaming iterator over the remaining records.
func (r *RecordReader) Iterator() RecordIterator {
	return &streamIterator{reader: r}
}

// streamIterator implements RecordIterator over a RecordReader
type streamIterator struct {
	reader *RecordReader
	record *Record
	err    error
}

func (it *streamIterator) Next() bool {
	it.record, it.err = it.reader.Next()
	return it.err == nil
}

func (it *streamIterator) Record() *Record {
	return it.record
}

// Err reports what stopped iteration; io.EOF means a clean end of stream.
func (it *streamIterator) Err() error {
	return it.err
}
