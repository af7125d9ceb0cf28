package cmd

import (
	"os"

	"github.com/jsphweid/pitchscore/constants"
	"github.com/jsphweid/pitchscore/file"
	"github.com/jsphweid/pitchscore/logger"
	"github.com/jsphweid/pitchscore/score"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "pitchscore",
	Short: "Turns detected pitches into a playable score",
	Long: `Turns the pitch events found by the analysis service into a simple 4/4
treble score, lays it out for a given width and keeps a playhead in sync
with playback.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "DEBUG, INFO, WARN, ERROR or NONE")
}

func newLogger() *logger.Logger {
	return logger.New(os.Stderr, logger.LevelFromString(logLevel))
}

func loadScore(path string) (*score.Score, error) {
	data, err := file.ReadAnalysis(path)
	if err != nil {
		return nil, err
	}
	return score.Build(data)
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
