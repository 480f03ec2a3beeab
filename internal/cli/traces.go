package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scrollhead/pkg/errors"
	"github.com/matzehuels/scrollhead/pkg/trace"
)

// traceCommand creates the trace command with record/list/show/delete subcommands.
func (c *CLI) traceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Manage recorded scroll traces",
		Long:  `Record, list, show and delete scroll traces used by replay.`,
	}

	cmd.AddCommand(c.traceRecordCommand())
	cmd.AddCommand(c.traceListCommand())
	cmd.AddCommand(c.traceShowCommand())
	cmd.AddCommand(c.traceDeleteCommand())

	return cmd
}

func (c *CLI) traceRecordCommand() *cobra.Command {
	var (
		offsets []float64
		release bool
		ticks   int
	)

	cmd := &cobra.Command{
		Use:   "record <name>",
		Short: "Build a trace from a list of drag offsets",
		Long: `Record builds a frame-clocked trace that drags through the given offsets,
optionally releases, and then runs animation frames at the configured
throttle. Traces from the interactive screen are recorded with run --record.`,
		Example: `  scrollhead trace record down --offsets 0,10,5,20 --release --ticks 30`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(offsets) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--offsets is required")
			}
			if ticks < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--ticks must not be negative")
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			t, err := trace.FromOffsets(args[0], offsets, release, ticks, cfg.Scroll.Throttle.Duration)
			if err != nil {
				return err
			}
			store, err := c.traceStore()
			if err != nil {
				return err
			}
			if err := store.Set(cmd.Context(), t); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printSuccess(w, "Recorded trace %s (%d events)", t.Name, len(t.Events))
			printFile(w, store.Path())
			printNextStep(w, "Replay it", fmt.Sprintf("%s replay %s", appName, t.Name))
			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&offsets, "offsets", nil, "drag offsets in pixels, in order")
	cmd.Flags().BoolVar(&release, "release", false, "release the drag after the last offset")
	cmd.Flags().IntVar(&ticks, "ticks", 0, "animation frames to run after the gesture")

	return cmd
}

func (c *CLI) traceListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored traces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.traceStore()
			if err != nil {
				return err
			}
			list, err := store.List(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(list) == 0 {
				printInfo(w, "No traces in %s", store.Path())
				printNextStep(w, "Record one", appName+" trace record <name> --offsets 0,20,40 --release")
				return nil
			}
			var rows [][]string
			for _, s := range list {
				rows = append(rows, []string{
					s.Name,
					fmt.Sprint(s.Events),
					s.Duration.Round(time.Millisecond).String(),
					s.CreatedAt.Local().Format("2006-01-02 15:04"),
					shortID(s.ID),
				})
			}
			fmt.Fprintln(w, newTable([]string{"Name", "Events", "Duration", "Created", "ID"}, rows, 1).Render())
			return nil
		},
	}
}

func (c *CLI) traceShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "show <name>",
		Short:             "Print the events of a trace",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeTraceNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.loadTrace(cmd, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printKeyValue(w, "name", t.Name)
			printKeyValue(w, "id", t.ID)
			printKeyValue(w, "created", t.CreatedAt.Local().Format(time.RFC3339))
			printKeyValue(w, "duration", t.Duration().String())

			var rows [][]string
			for i, e := range t.Events {
				value := ""
				switch e.Kind {
				case trace.KindScroll, trace.KindScrollTo:
					value = fmtNum(e.Offset)
				case trace.KindTick:
					value = e.DT.String()
				}
				rows = append(rows, []string{fmt.Sprint(i), e.At.String(), string(e.Kind), value})
			}
			fmt.Fprintln(w, newTable([]string{"#", "At", "Kind", "Value"}, rows, 0).Render())
			return nil
		},
	}
}

func (c *CLI) traceDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "delete <name>",
		Short:             "Delete a stored trace",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeTraceNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.traceStore()
			if err != nil {
				return err
			}
			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Deleted trace %s", args[0])
			return nil
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
