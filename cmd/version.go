package cmd

import (
	"context"
	"flag"
	"fmt"
	"runtime/debug"

	"github.com/google/subcommands"
)

// version is the release version, overridable at build time with
// -ldflags "-X github.com/splitbook/t212gnucash/cmd.version=...".
var version = ""

type versionCmd struct{}

func (*versionCmd) Name() string     { return "version" }
func (*versionCmd) Synopsis() string { return "print the t2g version" }
func (*versionCmd) Usage() string {
	return `t2g version

`
}

func (c *versionCmd) SetFlags(f *flag.FlagSet) {}

func (c *versionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v := version
	if v == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			v = info.Main.Version
		}
	}
	if v == "" {
		v = "(devel)"
	}
	fmt.Println("t2g", v)
	return subcommands.ExitSuccess
}
