// Package cli implements the squaresum command-line interface.
//
// # Commands
//
//   - run:    grow square-sum Hamiltonian cycles from the 32-vertex seed
//   - seed:   print the seed cycle in canonical form
//   - verify: check whether a sequence is a square-sum path or cycle
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Logs go to
// stderr through charmbracelet/log; checkpoints and results go to stdout.
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

// New creates a CLI writing results to out and logs to logOut.
func New(out, logOut io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(logOut, level), out: out}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "squaresum",
		Short:        "Grow Hamiltonian cycles of the square-sum graph",
		Long:         `squaresum builds ever longer Hamiltonian cycles on the graph where u and v are adjacent iff u+v is a perfect square, extending a known cycle one vertex at a time.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := LogInfo
			if verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.SetOut(c.out)

	root.AddCommand(c.runCommand())
	root.AddCommand(c.seedCommand())
	root.AddCommand(c.verifyCommand())

	return root
}
