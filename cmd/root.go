package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexvitali001/rust-mc-theo/note"
)

var rootCmd = &cobra.Command{
	Use:   "theo",
	Short: "A music theory guide",
	Long:  `Parses chord and scale names and prints, plays or exports their notes.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func printNotes(n note.Notes) {
	fmt.Println("Notes:")
	for i, nt := range n.Notes() {
		fmt.Printf("  %d: %v\n", i+1, nt)
	}
}
