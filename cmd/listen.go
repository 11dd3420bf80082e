package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
	"golang.org/x/exp/slices"

	"github.com/alexvitali001/rust-mc-theo/chord"
	"github.com/alexvitali001/rust-mc-theo/note"
	"github.com/alexvitali001/rust-mc-theo/util"
)

var listenPort int

func init() {
	listenCmd.Flags().IntVar(&listenPort, "port", 0, "midi in port number")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names the chords played on a midi input",
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func noteFromKey(key uint8) note.Note {
	return note.Note{
		PitchClass: note.FromValue(int(key)),
		Octave:     int(key)/12 - 1,
	}
}

func identifyHeld(keys []uint8) {
	if len(keys) == 0 {
		return
	}
	slices.Sort(keys)

	held := make([]note.Note, 0, len(keys))
	for _, k := range keys {
		held = append(held, noteFromKey(k))
	}

	matches := chord.Identify(held)
	if len(matches) == 0 {
		fmt.Printf("%v: no match\n", held)
		return
	}
	for _, c := range matches {
		fmt.Printf("%v: %v\n", held, c)
	}
}

func listen() {
	defer gomidi.CloseDriver()

	in, err := gomidi.InPort(listenPort)
	if err != nil {
		fmt.Printf("can't open midi in port %v: %v\n", listenPort, err)
		return
	}

	onNotes := make(map[uint8]bool)
	debounced := debounce.New(75 * time.Millisecond)

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			onNotes[key] = true
		case msg.GetNoteEnd(&ch, &key):
			delete(onNotes, key)
		default:
			return
		}
		// wait until the player is done pressing keys
		keys := util.GetKeys(onNotes)
		debounced(func() { identifyHeld(keys) })
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	fmt.Println("Listening... press ctrl+c to quit")
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	<-sigs
	stop()
}
