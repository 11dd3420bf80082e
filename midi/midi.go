package midi

import (
	"fmt"
	"io"
	"os"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/alexvitali001/rust-mc-theo/note"
)

const (
	ticksPerQuarter = 960
	channel         = 0
	velocity        = 90
)

// WriteSMF renders a note sequence as a single-track midi file: the notes
// one per quarter, then the whole stack held for a whole note.
func WriteSMF(notes []note.Note, w io.Writer) error {
	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track
	for _, n := range notes {
		track.Add(0, gomidi.NoteOn(channel, n.Midi(), velocity))
		track.Add(ticksPerQuarter, gomidi.NoteOff(channel, n.Midi()))
	}
	for _, n := range notes {
		track.Add(0, gomidi.NoteOn(channel, n.Midi(), velocity))
	}
	for i, n := range notes {
		var delta uint32
		if i == 0 {
			delta = 4 * ticksPerQuarter
		}
		track.Add(delta, gomidi.NoteOff(channel, n.Midi()))
	}
	track.Close(0)
	s.Tracks = append(s.Tracks, track)

	_, err := s.WriteTo(w)
	return err
}

func WriteSMFFile(notes []note.Note, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %v: %w", path, err)
	}
	defer f.Close()
	return WriteSMF(notes, f)
}

// Player sends notes to a midi out port. Callers are expected to have
// loaded a driver (the commands blank-import rtmididrv).
type Player struct {
	port drivers.Out
	send func(msg gomidi.Message) error
}

func NewPlayer(portNum int) (*Player, error) {
	out, err := gomidi.OutPort(portNum)
	if err != nil {
		return nil, fmt.Errorf("could not open midi out port %v: %w", portNum, err)
	}
	send, err := gomidi.SendTo(out)
	if err != nil {
		return nil, fmt.Errorf("could not send to midi out port %v: %w", portNum, err)
	}
	return &Player{port: out, send: send}, nil
}

func (p *Player) PlayNote(n note.Note, d time.Duration) error {
	if err := p.send(gomidi.NoteOn(channel, n.Midi(), velocity)); err != nil {
		return err
	}
	time.Sleep(d)
	return p.send(gomidi.NoteOff(channel, n.Midi()))
}

func (p *Player) PlayChord(notes []note.Note, d time.Duration) error {
	for _, n := range notes {
		if err := p.send(gomidi.NoteOn(channel, n.Midi(), velocity)); err != nil {
			return err
		}
	}
	time.Sleep(d)
	for _, n := range notes {
		if err := p.send(gomidi.NoteOff(channel, n.Midi())); err != nil {
			return err
		}
	}
	return nil
}

func (p *Player) Close() error {
	var err error
	if p.port != nil {
		err = p.port.Close()
	}
	gomidi.CloseDriver()
	return err
}
