package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scrollhead/pkg/errors"
	"github.com/matzehuels/scrollhead/pkg/header"
)

// evalCommand creates the eval command for printing header frames.
func (c *CLI) evalCommand() *cobra.Command {
	var values []float64

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Print the header styles for driver values",
		Long: `Evaluate every header curve at one or more driver values and print the
resulting styles, one column per value.`,
		Example: `  scrollhead eval --value 0,25,50,100
  scrollhead eval --value 12.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, v := range values {
				if err := errors.ValidateFinite("value", v); err != nil {
					return err
				}
			}
			return renderFrames(cmd.OutOrStdout(), header.Default(), values)
		},
	}

	cmd.Flags().Float64SliceVar(&values, "value", []float64{0, 25, 50, 100}, "driver values to evaluate")

	return cmd
}

// renderFrames prints one table row per style property and one column per
// driver value.
func renderFrames(w io.Writer, h *header.Header, values []float64) error {
	if len(values) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no values to evaluate")
	}
	frames := make([]header.Frame, len(values))
	headers := []string{"Property"}
	numeric := make([]int, len(values))
	for i, v := range values {
		frames[i] = h.Frame(v)
		headers = append(headers, fmtNum(v))
		numeric[i] = i + 1
	}

	var rows [][]string
	add := func(name string, get func(header.Frame) float64) {
		row := []string{name}
		for _, f := range frames {
			row = append(row, fmtNum(get(f)))
		}
		rows = append(rows, row)
	}

	add("search.scaleX", func(f header.Frame) float64 { return f.Search.ScaleX })
	add("search.translateX", func(f header.Frame) float64 { return f.Search.TranslateX })
	add("search.opacity", func(f header.Frame) float64 { return f.Search.Opacity })
	add("feature.label.scale", func(f header.Frame) float64 { return f.Features[0].LabelScale })
	add("feature.label.opacity", func(f header.Frame) float64 { return f.Features[0].LabelOpacity })
	add("feature.icon.opacity", func(f header.Frame) float64 { return f.Features[0].IconOpacity })
	add("feature.circle.opacity", func(f header.Frame) float64 { return f.Features[0].CircleOpacity })
	add("feature.translateY", func(f header.Frame) float64 { return f.Features[0].TranslateY })
	for i, fc := range h.Features() {
		add(fmt.Sprintf("feature.%s.translateX", fc.Feature), func(f header.Frame) float64 {
			return f.Features[i].TranslateX
		})
	}

	fmt.Fprintln(w, newTable(headers, rows, numeric...).Render())
	return nil
}
