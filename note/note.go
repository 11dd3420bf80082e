package note

import "fmt"

// Note is a pitch class in a concrete octave, using scientific pitch
// notation: C4 is middle C.
type Note struct {
	PitchClass PitchClass
	Octave     int
}

func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.PitchClass, n.Octave)
}

// Midi returns the MIDI note number for the note, C4 = 60.
func (n Note) Midi() uint8 {
	return uint8((n.Octave+1)*12 + int(n.PitchClass))
}

// Notes is implemented by anything that expands into an ordered note
// sequence, lowest first.
type Notes interface {
	Notes() []Note
}
