/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/ssargent/machorec/pkg/codec"
)

func byteOrder(big bool) binary.ByteOrder {
	if big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// parseValues turns command line arguments into an ordered value list for
// schema, one argument per declared field.
func parseValues(schema *codec.Schema, args []string) ([]codec.Value, error) {
	fields := schema.Fields()
	if len(args) != len(fields) {
		return nil, fmt.Errorf("%s has %d fields, got %d values", schema.Name(), len(fields), len(args))
	}

	values := make([]codec.Value, len(args))
	for i, arg := range args {
		f := fields[i]
		if f.Kind == codec.Bytes {
			raw, err := hex.DecodeString(strings.TrimPrefix(arg, "hex:"))
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", f.Name, err)
			}
			values[i] = codec.BlobVal(raw)
			continue
		}
		v, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		values[i] = codec.UintVal(v)
	}
	return values, nil
}
