/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/machorec/pkg/codec"
)

var makeBig bool

var makeCmd = &cobra.Command{
	Use:   "make <kind> <value>...",
	Short: "Build a record from field values and print its encoding",
	Long: `Values are given in declared field order: integers (decimal or 0x
hex) for scalar fields, hex byte strings (optionally prefixed with "hex:")
for blob fields.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := lookupSchema(args[0])
		if err != nil {
			return err
		}

		values, err := parseValues(schema, args[1:])
		if err != nil {
			return err
		}

		rec, err := codec.New(schema, values, byteOrder(makeBig))
		if err != nil {
			return err
		}

		fmt.Printf("%x\n", rec.Raw())
		return nil
	},
}

func init() {
	makeCmd.Flags().BoolVar(&makeBig, "big", false, "Encode scalar fields big-endian")
	rootCmd.AddCommand(makeCmd)
}
