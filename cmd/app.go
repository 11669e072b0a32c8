// Package cmd implements the CLI application to convert Trading 212 exports.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	t212 "github.com/splitbook/t212gnucash"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&convertCmd{}, "converting")
	c.Register(&checkCmd{}, "converting")
	c.Register(&infoCmd{}, "converting")

	c.Register(&initConfigCmd{}, "configuration")
	c.Register(&checkConfigCmd{}, "configuration")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&versionCmd{}, "documentation")
}

// newLogger builds the console logger used by all commands. Verbose turns on
// per-row debug output.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// loadConfig loads the configuration from an explicit path or the search
// path, then applies environment overrides.
func loadConfig(path string) (*t212.Config, error) {
	cfg, err := t212.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return cfg.FromEnv(), nil
}

// printMarkdown renders a markdown report on the terminal. If rendering is
// not possible the raw markdown is printed instead.
func printMarkdown(source string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(source)
		return
	}
	out, err := r.Render(source)
	if err != nil {
		fmt.Print(source)
		return
	}
	fmt.Print(out)
}
