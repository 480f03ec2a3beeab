package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scrollhead/pkg/header"
)

// curvesCommand creates the curves command for listing the curve table.
func (c *CLI) curvesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "List every header animation curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := header.Default()
			var rows [][]string
			for _, cv := range h.Curves() {
				rows = append(rows, []string{
					cv.Name(),
					fmtRange(cv.Input()),
					fmtRange(cv.Output()),
					cv.Policy().String(),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), newTable([]string{"Curve", "Input", "Output", "Policy"}, rows).Render())
			return nil
		},
	}
}

func fmtRange(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmtNum(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
