package codec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// schemaFile is the on-disk catalog format for user-defined layouts:
//
//	schemas:
//	  - name: my_record
//	    fields:
//	      - {name: tag, size: 4}
//	      - {name: payload, size: 16, kind: bytes}
//
// kind defaults to uint.
type schemaFile struct {
	Schemas []schemaSpec `yaml:"schemas"`
}

type schemaSpec struct {
	Name   string      `yaml:"name"`
	Fields []fieldSpec `yaml:"fields"`
}

type fieldSpec struct {
	Name string `yaml:"name"`
	Size int    `yaml:"size"`
	Kind string `yaml:"kind"`
}

// ParseSchemas builds schemas from a YAML layout catalog. Every entry goes
// through the same validation as NewSchema.
func ParseSchemas(data []byte) ([]*Schema, error) {
	var file schemaFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse schema file: %w", err)
	}

	schemas := make([]*Schema, 0, len(file.Schemas))
	for _, spec := range file.Schemas {
		fields := make([]Field, 0, len(spec.Fields))
		for _, f := range spec.Fields {
			kind := Uint
			switch f.Kind {
			case "", "uint":
			case "bytes":
				kind = Bytes
			default:
				return nil, fmt.Errorf("schema %q: field %q has unknown kind %q: %w",
					spec.Name, f.Name, f.Kind, ErrSchemaInvalid)
			}
			fields = append(fields, Field{Name: f.Name, Size: f.Size, Kind: kind})
		}

		s, err := NewSchema(spec.Name, fields...)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}

	return schemas, nil
}

// LoadSchemas reads a YAML layout catalog from disk.
func LoadSchemas(path string) ([]*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return ParseSchemas(data)
}
