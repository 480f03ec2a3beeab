// Package cli implements the scrollhead command-line interface.
//
// The CLI drives the collapsible header pipeline from the terminal: an
// interactive screen, curve inspection, trace recording and replay, and
// export of the snap state machine. It is built using cobra and logs through
// charmbracelet/log.
//
// # Commands
//
//   - run: Interactive wallet screen (mouse wheel, drag, keyboard)
//   - eval: Print the header frame for driver values
//   - curves: List every animation curve
//   - replay: Replay a recorded trace and print the final state
//   - trace: Record, list, show and delete traces
//   - states: Export the snap state machine as DOT or SVG
//   - config: Write or show the configuration
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. While the interactive screen runs, log
// output goes to --log-file so it cannot corrupt the terminal.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scrollhead/pkg/buildinfo"
	"github.com/matzehuels/scrollhead/pkg/config"
	"github.com/matzehuels/scrollhead/pkg/observability"
	"github.com/matzehuels/scrollhead/pkg/screen"
	"github.com/matzehuels/scrollhead/pkg/trace"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "scrollhead"
)

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

	logOut     io.Writer
	configPath string
	traceDir   string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		logOut: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Scrollhead drives a collapsible, scroll-linked header",
		Long:         `Scrollhead models a wallet screen whose header collapses as the content scrolls and snaps open or closed on release. It runs the screen in the terminal and inspects its curves, state machine and recorded gestures.`,
		Version:      buildinfo.Read().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			hooks := &logHooks{logger: c.Logger}
			observability.SetScrollHooks(hooks)
			observability.SetSnapHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/scrollhead/config.toml)")
	root.PersistentFlags().StringVar(&c.traceDir, "trace-dir", "", "trace directory (default $XDG_DATA_HOME/scrollhead/traces)")

	// Register all subcommands
	root.AddCommand(c.runCommand())
	root.AddCommand(c.evalCommand())
	root.AddCommand(c.curvesCommand())
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.traceCommand())
	root.AddCommand(c.statesCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Helpers
// =============================================================================

// loadConfig resolves and loads the configuration for a command.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, path, err := config.LoadDefault(c.configPath)
	if err != nil {
		return cfg, err
	}
	if path == "" {
		c.Logger.Debug("using built-in config")
	} else {
		c.Logger.Debug("loaded config", "path", path)
	}
	return cfg, nil
}

// newScreen builds a screen from the configuration.
func (c *CLI) newScreen(cfg config.Config) (*screen.Screen, error) {
	opts := screen.OptionsFromConfig(cfg)
	opts.Logger = c.Logger
	return screen.New(opts)
}

// traceStore opens the trace store.
func (c *CLI) traceStore() (*trace.FileStore, error) {
	return trace.NewFileStore(c.traceDir)
}
