package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexvitali001/rust-mc-theo/scale"
)

func init() {
	scaleCmd.AddCommand(scaleListCmd)
	scaleCmd.AddCommand(scaleNotesCmd)
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Provides information for the specified scale",
}

var scaleListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "Prints out the available scales",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Available scales:")
		for _, name := range scale.AvailableScales {
			fmt.Printf(" - %v\n", name)
		}
	},
}

var scaleNotesCmd = &cobra.Command{
	Use:     "notes",
	Aliases: []string{"n"},
	Short:   "Prints the notes of a scale",
	Long:    "Examples:\nA minor\nC major\nAb harmonic minor",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := scale.FromRegex(strings.Join(args, " "))
		cobra.CheckErr(err)
		fmt.Println(s)
		printNotes(s)
	},
}
