package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexvitali001/rust-mc-theo/chord"
)

func init() {
	chordCmd.AddCommand(chordListCmd)
	chordCmd.AddCommand(chordNotesCmd)
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord",
	Short: "Provides information for the specified chord",
}

var chordListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "Prints out the available chords",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Available chords:")
		for _, name := range chord.AvailableChords() {
			fmt.Printf(" - %v\n", name)
		}
	},
}

var chordNotesCmd = &cobra.Command{
	Use:     "notes",
	Aliases: []string{"n"},
	Short:   "Prints the notes of a chord",
	Long:    "Examples:\nC minor\nAb augmented major seventh\nF# dominant seventh / C#\nC/1",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := chord.FromRegex(strings.Join(args, " "))
		cobra.CheckErr(err)
		fmt.Println(c)
		printNotes(c)
	},
}
