// Package cli implements the mipdive command-line interface.
//
// The CLI generates a mixed-integer instance, solves its root relaxation and
// runs one diving heuristic (or a concurrent portfolio of them) on it. It is
// built with cobra; logging goes through charmbracelet/log and --verbose
// (-v) turns on the heuristic's debug events.
//
// # Commands
//
//   - run:   build an instance, dive, print a summary
//   - kinds: list the instance families
//
// # Example
//
//	mipdive run --kind gap --size 40 --seed 7 --rule guided -v
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	out    io.Writer
}

// New creates a CLI printing results to out and logging to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(logw, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		out: out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "mipdive",
		Short:        "mipdive runs diving heuristics on generated MIP instances",
		Long:         `mipdive generates small mixed-integer programs, solves their LP relaxation and runs fractional or guided diving to find integer-feasible solutions.`,
		SilenceUsage: true,
	}
	root.SetOut(c.out)

	root.AddCommand(c.runCommand())
	root.AddCommand(c.kindsCommand())

	return root
}
