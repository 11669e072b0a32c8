package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	t212 "github.com/splitbook/t212gnucash"
)

type convertCmd struct {
	config       string
	verbose      bool
	validateOnly bool
}

func (*convertCmd) Name() string { return "convert" }
func (*convertCmd) Synopsis() string {
	return "convert a Trading 212 CSV export to the GnuCash multi-split format"
}
func (*convertCmd) Usage() string {
	return `t2g convert [-c <config>] [-v] [-validate-only] <input.csv> <output.csv>

  Reads a Trading 212 CSV export and writes one row per ledger split in the
  GnuCash multi-split import format. Rows that cannot be parsed or converted
  are logged and skipped.

Usage Examples:
# Convert with the default configuration.
$ t2g convert export.csv splits.csv

# Convert with an explicit configuration file.
$ t2g convert -c mappings.yaml export.csv splits.csv

`
}

func (p *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.config, "c", "", "Configuration file path.")
	f.BoolVar(&p.verbose, "v", false, "Enable verbose logging.")
	f.BoolVar(&p.validateOnly, "validate-only", false, "Only validate the input file, don't convert.")
}

func (p *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected an input file and an output file")
		return subcommands.ExitUsageError
	}
	input, output := f.Arg(0), f.Arg(1)

	log := newLogger(p.verbose)

	cfg, err := loadConfig(p.config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	converter := t212.NewConverter(cfg, log)

	if err := converter.ValidateFile(input); err != nil {
		fmt.Fprintf(os.Stderr, "Error: input file validation failed: %v\n", err)
		return subcommands.ExitFailure
	}
	if p.validateOnly {
		fmt.Printf("✅ Input file is valid: %s\n", input)
		return subcommands.ExitSuccess
	}

	stats, err := converter.ConvertFile(input, output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: conversion failed: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Converted %d transactions to %s\n", stats.Processed, output)
	return subcommands.ExitSuccess
}
