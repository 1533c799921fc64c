package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/sheetkit/internal/output"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the frames of a two-section layout",
	Long: `Prepare a two-section layout for a viewport and report where the top and
bottom blocks land. The bottom block is pinned to the viewport bottom when
both fit, and follows the top block otherwise.`,
	Example: `  sheetkit layout --viewport 1000 --top 400 --bottom 300
  sheetkit layout --viewport 500 --top 600 --bottom 300 --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetFloat64("width")
		viewport, _ := cmd.Flags().GetFloat64("viewport")
		top, _ := cmd.Flags().GetFloat64("top")
		bottom, _ := cmd.Flags().GetFloat64("bottom")
		format, _ := cmd.Flags().GetString("format")

		if width < 0 || viewport < 0 || top < 0 || bottom < 0 {
			return fmt.Errorf("sizes must be non-negative")
		}

		report := output.BuildFrameReport(width, viewport, top, bottom)
		logger.Debug("layout prepared", "viewport", viewport, "content_height", report.ContentHeight)

		out := cmd.OutOrStdout()
		switch format {
		case "tree":
			fmt.Fprintln(out, report.Tree())
		case "table":
			fmt.Fprintln(out, report.Table())
		case "json":
			js, err := report.JSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, js)
		default:
			return fmt.Errorf("unknown format %q (want tree, table or json)", format)
		}
		return nil
	},
}

func init() {
	layoutCmd.Flags().Float64("width", 375, "viewport width")
	layoutCmd.Flags().Float64("viewport", 812, "viewport height")
	layoutCmd.Flags().Float64("top", 400, "top block height")
	layoutCmd.Flags().Float64("bottom", 300, "bottom block height")
	layoutCmd.Flags().String("format", "tree", "output format: tree, table, json")
	rootCmd.AddCommand(layoutCmd)
}
