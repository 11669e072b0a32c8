package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	t212 "github.com/splitbook/t212gnucash"
)

type checkCmd struct {
	verbose bool
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate a Trading 212 CSV export without converting it" }
func (*checkCmd) Usage() string {
	return `t2g check [-v] <input.csv>

  Checks that the input file carries the expected Trading 212 header.
  Missing trading-only columns are reported as warnings.

`
}

func (p *checkCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.verbose, "v", false, "Enable verbose logging.")
}

func (p *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected an input file")
		return subcommands.ExitUsageError
	}

	converter := t212.NewConverter(nil, newLogger(p.verbose))
	if err := converter.ValidateFile(f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Invalid CSV file: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Input file is valid: %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
