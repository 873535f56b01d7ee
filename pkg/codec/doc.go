// Package codec implements a generic fixed-layout binary record codec.
//
// A Schema describes a record kind as an ordered list of named fields, each
// with a fixed byte width and a declared kind (unsigned integer or opaque
// blob). A Record binds a schema to concrete field values under a chosen
// byte order and keeps the values and their byte encoding in lockstep.
//
// # Layout
//
// Field order defines byte offsets: the first field starts at offset 0 and
// each subsequent field starts where the previous one ended. No padding or
// alignment is ever inserted, so a schema's total size is exactly the sum of
// its field widths.
//
// # Lifecycle
//
// A record comes to life one of two ways:
//
//   - Decode unpacks the front of a byte buffer, consuming each field's
//     width in declared order. Trailing bytes are ignored; a buffer shorter
//     than the schema size fails with ErrTruncatedInput.
//   - New assigns an ordered value list, one value per field, and encodes
//     once at the end. A wrong count fails with ErrArityMismatch before
//     anything is assigned.
//
// Once live, every field write re-encodes the entire record synchronously.
// The raw buffer is regenerated whole rather than patched, so it can never
// hold a stale byte range: it is always the deterministic encoding of the
// current field values, and decoding it again reproduces those values.
//
//	hdr, err := codec.New(schema, values, binary.LittleEndian)
//	if err != nil {
//	    return err
//	}
//	if err := hdr.SetUint("flags", 0x00200085); err != nil {
//	    return err
//	}
//	out := hdr.Raw() // current encoding, len == schema.Size()
//
// # Field kinds
//
// Scalar (Uint) fields hold unsigned integers of 1 to 8 bytes and honor the
// record's byte order. Blob (Bytes) fields carry an opaque byte region of
// exactly the declared width, copied verbatim in both directions; embedded
// name and UUID areas are the typical use. An assigned scalar that exceeds
// its width fails with ErrFieldOverflow; a blob of the wrong length fails
// with ErrFieldWidthMismatch. Failed writes leave the record untouched.
//
// # Streams
//
// RecordReader and RecordWriter handle runs of back-to-back records of a
// single schema over io.Reader/io.Writer, the shape of on-disk tables such
// as symbol tables. The codec itself does no I/O; buffer sourcing and
// sinking belong to the caller.
//
// # Schema files
//
// LoadSchemas reads user-defined layouts from a small YAML catalog format,
// so callers can bind new record kinds to the codec without recompiling.
//
// # Concurrency
//
// Schemas are immutable and safe to share. Records are not safe for
// concurrent mutation; each is meant to be owned by its creator.
package codec
