/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ssargent/machorec/pkg/macho"
)

// kindsCmd lists every record kind the other commands accept
var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List known record kinds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := macho.Names()
		for name := range extraSchemas {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			schema, err := lookupSchema(name)
			if err != nil {
				return err
			}
			fmt.Printf("%-24s %3d bytes, %d fields\n", name, schema.Size(), schema.NumFields())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
