/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sizeCmd = &cobra.Command{
	Use:   "size <kind>",
	Short: "Print the encoded size of a record kind",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := lookupSchema(args[0])
		if err != nil {
			return err
		}
		fmt.Println(schema.Size())
		return nil
	},
}

var fieldsCmd = &cobra.Command{
	Use:   "fields <kind>",
	Short: "Print a record kind's field layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := lookupSchema(args[0])
		if err != nil {
			return err
		}
		offset := 0
		for _, f := range schema.Fields() {
			fmt.Printf("%#04x  %-24s %2d  %s\n", offset, f.Name, f.Size, f.Kind)
			offset += f.Size
		}
		fmt.Printf("total %d bytes\n", schema.Size())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(fieldsCmd)
}
