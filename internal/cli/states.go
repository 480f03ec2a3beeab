package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scrollhead/pkg/errors"
	"github.com/matzehuels/scrollhead/pkg/render/statechart"
	"github.com/matzehuels/scrollhead/pkg/snap"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// statesCommand creates the states command for exporting the snap state machine.
func (c *CLI) statesCommand() *cobra.Command {
	var (
		format    string
		output    string
		highlight string
	)

	cmd := &cobra.Command{
		Use:   "states",
		Short: "Export the snap state machine as DOT or SVG",
		Example: `  scrollhead states | dot -Tpng > states.png
  scrollhead states --format svg -o states.svg --highlight DRAGGING`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := statechart.Options{Initial: true}
			if highlight != "" {
				s, err := parseState(highlight)
				if err != nil {
					return err
				}
				opts.Highlight = &s
			}

			dot := statechart.ToDOT(opts)
			var data []byte
			switch format {
			case formatDOT:
				data = []byte(dot)
			case formatSVG:
				svg, err := statechart.RenderSVG(dot)
				if err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "render state chart")
				}
				data = svg
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want %s or %s)", format, formatDOT, formatSVG)
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess(cmd.OutOrStdout(), "Wrote state chart")
			printFile(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&highlight, "highlight", "", "state to fill (EXPANDED, COLLAPSED or DRAGGING)")

	return cmd
}

func parseState(s string) (snap.State, error) {
	for _, st := range snap.States {
		if strings.EqualFold(st.String(), s) {
			return st, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown state %q", s)
}
