package cmd

import (
	"fmt"

	"github.com/jsphweid/pitchscore/layout"
	"github.com/spf13/cobra"
)

var reportWidths = []float64{320, 640, 800, 1024, 1280, 1536, 2048}

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <analysis.json>",
	Short: "Shows how a score lays out at common widths",
	Long:  `Shows how a score lays out at common widths`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScore(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%v: %d notes in %d measures\n", sc.Title, len(sc.Notes), len(sc.Measures))
		fmt.Printf("%8s %8s %6s %10s %8s\n", "width", "per row", "rows", "measure px", "height")
		for _, w := range reportWidths {
			grid := layout.Compute(len(sc.Measures), w)
			fmt.Printf("%8.0f %8d %6d %10.1f %8.0f\n", w, grid.MeasuresPerRow, grid.Rows, grid.MeasureWidth, grid.Height)
		}
		return nil
	},
}
