package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	t212 "github.com/splitbook/t212gnucash"
	"github.com/splitbook/t212gnucash/renderer"
)

type infoCmd struct {
	verbose bool
}

func (*infoCmd) Name() string     { return "info" }
func (*infoCmd) Synopsis() string { return "display summary information about a Trading 212 CSV file" }
func (*infoCmd) Usage() string {
	return `t2g info [-v] <input.csv>

  Scans the file and reports transaction counts by type, the most traded
  tickers, the covered date range and net totals per currency.

`
}

func (p *infoCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.verbose, "v", false, "Enable verbose logging.")
}

func (p *infoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected an input file")
		return subcommands.ExitUsageError
	}

	converter := t212.NewConverter(nil, newLogger(p.verbose))
	info, err := converter.Scan(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing file: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.FileInfoMarkdown(info))
	return subcommands.ExitSuccess
}
