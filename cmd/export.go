package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexvitali001/rust-mc-theo/midi"
)

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "notes.mid", "output midi file")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export (chord|scale) <name>...",
	Short: "Writes a chord or scale to a midi file",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		entity, err := parseEntity(args[0], strings.Join(args[1:], " "))
		cobra.CheckErr(err)

		notes := entity.Notes()
		cobra.CheckErr(midi.WriteSMFFile(notes, exportOut))
		fmt.Printf("Wrote %v notes to %v\n", len(notes), exportOut)
	},
}
