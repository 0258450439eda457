// Package cli implements the buildstamp command-line interface.
//
// This package provides commands for generating Go source files with
// build-time constants, printing individual captured values for Makefile
// and ldflags pipelines, and listing the supported stamp shapes. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - generate: Capture the build instant and toolchain version and write a
//     generated Go file with literal constants
//   - print: Print a single captured value to stdout
//   - stamps: List the supported stamp shapes
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
//
// # Example
//
//	import "github.com/mlorenz/buildstamp/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mlorenz/buildstamp/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for config lookup and display.
const appName = "buildstamp"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Buildstamp embeds build-time constants into Go source",
		Long: `Buildstamp captures the moment a build happens and the Go toolchain
performing it, and embeds both as literal constants in generated source.
Consumers get zero-cost access to "when was this built" and "what built
this" without any runtime clock call, environment lookup, or I/O.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.printCommand())
	root.AddCommand(c.stampsCommand())

	return root
}
