package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scrollhead/pkg/trace"
)

// replayCommand creates the replay command.
func (c *CLI) replayCommand() *cobra.Command {
	var settle bool

	cmd := &cobra.Command{
		Use:   "replay <trace>",
		Short: "Replay a recorded trace and print the final state",
		Long: `Replay feeds a recorded trace to a freshly mounted screen and prints the
final direction, snap state and driver value.

The argument is a trace name from the trace store, or a path to a trace
JSON file.`,
		Example: `  scrollhead replay fling
  scrollhead replay ./testdata/fling.json --settle`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeTraceNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			t, err := c.loadTrace(cmd, args[0])
			if err != nil {
				return err
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			scr, err := c.newScreen(cfg)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			res := trace.Replay(scr, t)
			extra := 0
			if settle {
				extra = scr.Settle(cfg.Scroll.Throttle.Duration)
			}
			prog.done(fmt.Sprintf("Replayed %d events", len(t.Events)))

			w := cmd.OutOrStdout()
			printReplay(w, t, res)
			if settle {
				printKeyValue(w, "settled", fmt.Sprintf("%d frames at %s", extra, fmtNum(scr.Offset())))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&settle, "settle", false, "run a pending snap animation to completion")

	return cmd
}

// loadTrace reads a trace from a file path or the trace store.
func (c *CLI) loadTrace(cmd *cobra.Command, arg string) (*trace.Trace, error) {
	if strings.HasSuffix(arg, ".json") || strings.ContainsRune(arg, filepath.Separator) {
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("read trace: %w", err)
		}
		return trace.Decode(data)
	}
	store, err := c.traceStore()
	if err != nil {
		return nil, err
	}
	return store.Get(cmd.Context(), arg)
}

func printReplay(w io.Writer, t *trace.Trace, res trace.Result) {
	printKeyValue(w, "trace", t.Name)
	printKeyValue(w, "events", fmt.Sprintf("%d scroll · %d release · %d tick", res.Scrolls, res.Releases, res.Ticks))
	if len(res.Targets) > 0 {
		printKeyValue(w, "snap targets", fmtRange(res.Targets))
	}
	printKeyValue(w, "direction", res.Direction.String())
	printKeyValue(w, "state", res.State.String())
	printKeyValue(w, "driver value", fmtNum(res.DriverValue))
	printKeyValue(w, "offset", fmtNum(res.Offset))
	if res.Animating {
		printWarning(w, "snap animation still running after %s; use --settle", t.Duration().Round(time.Millisecond))
	}
}
