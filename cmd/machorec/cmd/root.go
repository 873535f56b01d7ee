/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	"github.com/ssargent/machorec/pkg/codec"
	"github.com/ssargent/machorec/pkg/macho"
)

var (
	verbose     bool
	schemasPath string

	// layouts loaded from --schemas; checked before the built-in catalog
	extraSchemas = map[string]*codec.Schema{}
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "machorec",
	Short: "Fixed-layout Mach-O record codec",
	Long: `machorec decodes, builds, and re-encodes the fixed-layout binary
records of the Mach-O executable format: file headers, load commands,
segment/section descriptors, and symbol table entries.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		if schemasPath == "" {
			return nil
		}
		schemas, err := codec.LoadSchemas(schemasPath)
		if err != nil {
			return fmt.Errorf("failed to load schemas: %w", err)
		}
		for _, s := range schemas {
			extraSchemas[s.Name()] = s
			log.Debugf("loaded schema %s (%d bytes)", s.Name(), s.Size())
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	log.SetHandler(clihandler.Default)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&schemasPath, "schemas", "", "YAML file with extra record layouts")
}

// lookupSchema resolves a record kind by name, user-supplied layouts first.
func lookupSchema(name string) (*codec.Schema, error) {
	if s, ok := extraSchemas[name]; ok {
		return s, nil
	}
	if s, ok := macho.Lookup(name); ok {
		return s, nil
	}
	return nil, fmt.Errorf("unknown record kind %q (see 'machorec kinds')", name)
}
