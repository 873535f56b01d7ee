// Package macho catalogs the fixed-layout record kinds of the Mach-O
// executable format as codec schemas: file headers, load commands, segment
// and section descriptors, and symbol table entries.
//
// Each entry is a flat (field, width) table bound to the generic codec in
// pkg/codec; the package adds no behavior of its own and validates no
// domain semantics. Whether a cmd value is a recognized load command tag,
// or a cmdsize is internally consistent, is the caller's concern.
//
// Blob fields mark the areas Mach-O treats as opaque fixed-width regions:
// segment and section names, the UUID, and the embedded dylib struct inside
// a dylib_command. Everything else decodes as an unsigned integer in the
// slice's byte order, little-endian for current binaries, big-endian for
// swapped fat headers.
package macho
