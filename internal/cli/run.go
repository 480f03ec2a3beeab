package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scrollhead/pkg/trace"
)

// runCommand creates the run command for the interactive screen.
func (c *CLI) runCommand() *cobra.Command {
	var (
		logFile string
		record  string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the interactive wallet screen",
		Long: `Run shows the wallet screen in the terminal. Scroll with the mouse wheel,
drag with the left button, or use the keyboard. Releasing a drag, or pausing
the wheel, snaps the header open or closed.

With --record, every input is saved as a trace for replay.`,
		Example: `  scrollhead run
  scrollhead run --record fling --log-file /tmp/scrollhead.log -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			var rec *trace.Recorder
			if record != "" {
				if rec, err = trace.NewRecorder(record); err != nil {
					return err
				}
			}

			restore, err := c.redirectLog(logFile)
			if err != nil {
				return err
			}
			defer restore()

			scr, err := c.newScreen(cfg)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newScreenModel(scr, cfg, rec),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(ctx),
			)
			if _, err := p.Run(); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("run screen: %w", err)
			}

			if rec == nil {
				return nil
			}
			return c.saveRecording(cmd, rec)
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the screen runs (default discard)")
	cmd.Flags().StringVar(&record, "record", "", "record the session as a trace with this name")

	return cmd
}

// redirectLog points the logger at path, or discards output when path is
// empty, and returns a function that restores the original output.
func (c *CLI) redirectLog(path string) (func(), error) {
	var (
		w io.Writer = io.Discard
		f *os.File
	)
	if path != "" {
		var err error
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
	}
	c.Logger.SetOutput(w)
	return func() {
		c.Logger.SetOutput(c.logOut)
		if f != nil {
			f.Close()
		}
	}, nil
}

func (c *CLI) saveRecording(cmd *cobra.Command, rec *trace.Recorder) error {
	w := cmd.OutOrStdout()
	t := rec.Trace()
	if len(t.Events) == 0 {
		printInfo(w, "Nothing recorded")
		return nil
	}
	store, err := c.traceStore()
	if err != nil {
		return err
	}
	if err := store.Set(cmd.Context(), t); err != nil {
		printError(w, "Could not save trace %s", t.Name)
		return err
	}
	printSuccess(w, "Recorded trace %s (%d events)", t.Name, len(t.Events))
	printFile(w, store.Path())
	printNextStep(w, "Replay it", fmt.Sprintf("%s replay %s --settle", appName, t.Name))
	return nil
}
