package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/alexvitali001/rust-mc-theo/chord"
	"github.com/alexvitali001/rust-mc-theo/midi"
	"github.com/alexvitali001/rust-mc-theo/note"
	"github.com/alexvitali001/rust-mc-theo/scale"
)

var playPort int

func init() {
	playCmd.Flags().IntVar(&playPort, "port", 0, "midi out port number")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play (chord|scale) <name>...",
	Short: "Plays a chord or scale through a midi out port",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(play(args[0], strings.Join(args[1:], " ")))
	},
}

func parseEntity(kind, text string) (note.Notes, error) {
	switch kind {
	case "chord":
		c, err := chord.FromRegex(text)
		return c, err
	case "scale":
		s, err := scale.FromRegex(text)
		return s, err
	default:
		return nil, fmt.Errorf("unknown kind %q, want chord or scale", kind)
	}
}

func play(kind, text string) error {
	entity, err := parseEntity(kind, text)
	if err != nil {
		return err
	}

	player, err := midi.NewPlayer(playPort)
	if err != nil {
		return err
	}
	defer player.Close()

	notes := entity.Notes()
	for _, n := range notes {
		fmt.Printf("playing %v\n", n)
		if err := player.PlayNote(n, 300*time.Millisecond); err != nil {
			return err
		}
	}
	if kind == "chord" {
		return player.PlayChord(notes, 1200*time.Millisecond)
	}
	return nil
}
