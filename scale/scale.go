package scale

import (
	"fmt"

	"github.com/alexvitali001/rust-mc-theo/constants"
	"github.com/alexvitali001/rust-mc-theo/interval"
	"github.com/alexvitali001/rust-mc-theo/note"
)

// Scale is a root pitch class plus the interval steps of a mode. Scales
// have no inversion concept.
type Scale struct {
	Root      note.PitchClass
	Octave    int
	Mode      Mode
	Intervals []interval.Interval
}

// New creates a scale rooted in the default octave.
func New(root note.PitchClass, mode Mode) Scale {
	intervals, err := interval.FromSemitones(modeTable[mode])
	if err != nil {
		// table entries are static and validated by tests
		panic("bad mode table entry: " + err.Error())
	}
	return Scale{
		Root:      root,
		Octave:    constants.DefaultOctave,
		Mode:      mode,
		Intervals: intervals,
	}
}

// FromRegex parses a scale expression like "A minor" or
// "Ab harmonic minor": a pitch class followed by a mode name.
func FromRegex(text string) (Scale, error) {
	root, pitchMatch, err := note.FromRegex(text)
	if err != nil {
		return Scale{}, err
	}
	mode, _, err := ModeFromRegex(text[pitchMatch.End:])
	if err != nil {
		return Scale{}, err
	}
	return New(root, mode), nil
}

func (s Scale) String() string {
	return fmt.Sprintf("%v %v", s.Root, s.Mode)
}

// Notes expands the scale from the root through the mode's steps; the last
// note is the root again, an octave up.
func (s Scale) Notes() []note.Note {
	root := note.Note{PitchClass: s.Root, Octave: s.Octave}
	return interval.ToNotes(root, s.Intervals)
}
