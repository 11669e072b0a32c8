package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	t212 "github.com/splitbook/t212gnucash"
	"github.com/splitbook/t212gnucash/renderer"
)

// defaultConfigPath is where init-config writes unless told otherwise.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "trading212-gnucash", "config.yaml")
}

type initConfigCmd struct {
	config string
	force  bool
}

func (*initConfigCmd) Name() string     { return "init-config" }
func (*initConfigCmd) Synopsis() string { return "create a sample configuration file" }
func (*initConfigCmd) Usage() string {
	return `t2g init-config [-c <path>] [-force]

  Writes a commented sample configuration with default settings that you can
  customize: ticker mappings and GnuCash account names.

`
}

func (p *initConfigCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.config, "c", defaultConfigPath(), "Configuration file path to create.")
	f.BoolVar(&p.force, "force", false, "Overwrite an existing configuration file.")
}

func (p *initConfigCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := os.Stat(p.config); err == nil && !p.force {
		fmt.Fprintf(os.Stderr, "Configuration file already exists: %s (use -force to overwrite)\n", p.config)
		return subcommands.ExitFailure
	}

	if err := t212.WriteSample(p.config); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Sample configuration created: %s\n", p.config)
	fmt.Println("Edit it to customize ticker mappings and account names, then run: t2g convert input.csv output.csv")
	return subcommands.ExitSuccess
}

type checkConfigCmd struct {
	config string
}

func (*checkConfigCmd) Name() string     { return "check-config" }
func (*checkConfigCmd) Synopsis() string { return "validate the configuration and display its settings" }
func (*checkConfigCmd) Usage() string {
	return `t2g check-config [-c <config>]

  Loads the configuration (explicit file, search path or defaults), fails on
  malformed files, and displays the effective settings and ticker mappings.

`
}

func (p *checkConfigCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.config, "c", "", "Configuration file to validate.")
}

func (p *checkConfigCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig(p.config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration error: %v\n", err)
		return subcommands.ExitFailure
	}

	if p.config != "" {
		fmt.Printf("✅ Configuration file is valid: %s\n", p.config)
	} else {
		fmt.Println("✅ Configuration loaded")
	}
	printMarkdown(renderer.ConfigMarkdown(cfg))
	return subcommands.ExitSuccess
}
