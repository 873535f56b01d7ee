//go:build bench
// +build bench

package codec

import (
	"encoding/binary"
	"testing"
)

func benchSchemas() map[string]*Schema {
	return map[string]*Schema{
		"header": MustSchema("header",
			U32("magic"), U32("cpu_type"), U32("cpu_subtype"), U32("filetype"),
			U32("loadcnt"), U32("loadsize"), U32("flags"), U32("void"),
		),
		"segment": MustSchema("segment",
			U32("cmd"), U32("cmdsize"), Blob("segname", 16),
			U64("vmaddr"), U64("vmsize"), U64("fileoff"), U64("filesize"),
			U32("maxprot"), U32("initprot"), U32("nsects"), U32("flags"),
		),
		"entry": MustSchema("entry",
			U32("str_index"), U8("type"), U8("sect_index"), U16("desc"), U64("value"),
		),
	}
}

func benchValues(s *Schema) []Value {
	values := make([]Value, s.NumFields())
	for i, f := range s.Fields() {
		if f.Kind == Bytes {
			values[i] = BlobVal(make([]byte, f.Size))
		} else {
			values[i] = UintVal(uint64(i + 1))
		}
	}
	return values
}

func BenchmarkDecode(b *testing.B) {
	for name, schema := range benchSchemas() {
		rec, err := New(schema, benchValues(schema), binary.LittleEndian)
		if err != nil {
			b.Fatal(err)
		}
		raw := rec.Raw()

		b.Run(name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Decode(schema, raw, binary.LittleEndian); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNew(b *testing.B) {
	for name, schema := range benchSchemas() {
		values := benchValues(schema)

		b.Run(name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := New(schema, values, binary.LittleEndian); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSetUint(b *testing.B) {
	for name, schema := range benchSchemas() {
		rec, err := New(schema, benchValues(schema), binary.LittleEndian)
		if err != nil {
			b.Fatal(err)
		}
		field := schema.Fields()[0].Name

		b.Run(name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := rec.SetUint(field, uint64(i)&0xFF); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
