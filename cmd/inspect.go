package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <analysis.json>",
	Short: "Prints the measures of a score",
	Long:  `Prints the measures of a score`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScore(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("title: %v\n", sc.Title)
		fmt.Printf("clef: %v\n", sc.Clef)
		for i, m := range sc.Measures {
			var slots []string
			for _, s := range m {
				if s.IsRest() {
					slots = append(slots, s.Rest.String())
				} else {
					slots = append(slots, fmt.Sprintf("%v(%v)", s.Note.Key(), s.Note.Stem))
				}
			}
			fmt.Printf("measure %d: %v\n", i+1, strings.Join(slots, " "))
		}
		return nil
	},
}
