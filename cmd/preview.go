package cmd

import (
	"os"

	"github.com/jsphweid/pitchscore/logger"
	"github.com/jsphweid/pitchscore/tui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var previewLogFile string

func init() {
	previewCmd.Flags().StringVar(&previewLogFile, "log-file", "", "where to log while the preview owns the terminal")
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview <analysis.json>",
	Short: "Plays the score in the terminal",
	Long:  `Plays the score in the terminal with the playhead following a wall clock.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScore(args[0])
		if err != nil {
			return err
		}

		// the terminal is taken, so only log to a file
		log := logger.Discard()
		if previewLogFile != "" {
			f, err := os.OpenFile(previewLogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
			if err != nil {
				return errors.Wrap(err, "could not open log file")
			}
			defer f.Close()
			log = logger.New(f, logger.LevelFromString(logLevel))
		}
		return tui.Run(sc, log)
	},
}
