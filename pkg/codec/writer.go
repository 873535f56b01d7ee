package codec

import (
	"bufio"
	"fmt"
	"io"
)

// RecordWriter appends encoded records of one schema to a stream, tracking
// the offset each record lands at.
type RecordWriter struct {
	writer *bufio.Writer
	schema *Schema
	offset int64
}

// NewRecordWriter creates a buffered writer for records of the given
// schema. Call Flush before reading back whatever w writes to.
func NewRecordWriter(w io.Writer, schema *Schema) *RecordWriter {
	return &RecordWriter{
		writer: bufio.NewWriter(w),
		schema: schema,
	}
}

// Write appends the record's current encoding and returns the offset it was
// written at.
func (w *RecordWriter) Write(rec *Record) (int64, error) {
	if rec.Schema() != w.schema {
		return 0, fmt.Errorf("record schema %q, writer expects %q: %w",
			rec.Schema().Name(), w.schema.Name(), ErrSchemaMismatch)
	}

	n, err := w.writer.Write(rec.raw)
	if err != nil {
		return 0, err
	}

	recordOffset := w.offset
	w.offset += int64(n)

	return recordOffset, nil
}

// Flush forces buffered records out to the underlying writer.
func (w *RecordWriter) Flush() error {
	return w.writer.Flush()
}

// Offset returns the offset the next record will be written at.
func (w *RecordWriter) Offset() int64 { return w.offset }
