package cmd

import (
	"encoding/json"
	"os"

	"github.com/jsphweid/pitchscore/model"
	"github.com/jsphweid/pitchscore/render"
	"github.com/spf13/cobra"
)

var renderWidth float64

func init() {
	renderCmd.Flags().Float64Var(&renderWidth, "width", 1024, "available width in px")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <analysis.json>",
	Short: "Prints the score layout as JSON",
	Long:  `Builds the score and prints the grid geometry and note table for --width.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScore(args[0])
		if err != nil {
			return err
		}
		res := render.Render(sc.Measures, renderWidth, render.NewFixedToolkit())
		newLogger().Infof("%v: %d notes, %d measures, %d rows", sc.Title, len(sc.Notes), len(sc.Measures), res.Grid.Rows)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(model.ScoreLayout{Grid: res.Grid, Notes: res.Notes})
	},
}
