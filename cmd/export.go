package cmd

import (
	"github.com/jsphweid/pitchscore/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <analysis.json> <out.mid>",
	Short: "Writes the score as a MIDI file",
	Long:  `Writes the score as a MIDI file, one quarter note per detected pitch.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScore(args[0])
		if err != nil {
			return err
		}
		if err := midi.ExportFile(sc, args[1]); err != nil {
			return err
		}
		newLogger().Infof("wrote %v", args[1])
		return nil
	},
}
