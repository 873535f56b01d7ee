package codec

// Errors
var (
	ErrTruncatedInput     = &CodecError{"input shorter than record size"}
	ErrArityMismatch      = &CodecError{"value count does not match field count"}
	ErrFieldOverflow      = &CodecError{"value exceeds field width"}
	ErrFieldWidthMismatch = &CodecError{"value does not match field width"}
	ErrUnknownField       = &CodecError{"unknown field"}
	ErrSchemaInvalid      = &CodecError{"invalid schema"}
	ErrSchemaMismatch     = &CodecError{"record bound to a different schema"}
)

// CodecError represents a codec error
type CodecError struct {
	Message string
}

func (e *CodecError) Error() string {
	return e.Message
}
