package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexvitali001/rust-mc-theo/note"
)

func TestFromSemitonesValid(t *testing.T) {
	intervals, err := FromSemitones([]uint8{1, 4, 12})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]Interval{1, 4, 12}, intervals)
}

func TestFromSemitonesRejectsZero(t *testing.T) {
	_, err := FromSemitones([]uint8{4, 0, 3})
	assert.ErrorIs(t, err, ErrInvalidSemitone)
}

func TestFromSemitonesRejectsWiderThanOctave(t *testing.T) {
	_, err := FromSemitones([]uint8{13})
	assert.ErrorIs(t, err, ErrInvalidSemitone)
}

func TestToNotesAppliesIntervals(t *testing.T) {
	root := note.Note{PitchClass: note.C, Octave: 4}
	intervals, _ := FromSemitones([]uint8{4, 3})
	notes := ToNotes(root, intervals)

	assert := assert.New(t)
	assert.Len(notes, 3)
	assert.Equal([]note.Note{
		{PitchClass: note.C, Octave: 4},
		{PitchClass: note.E, Octave: 4},
		{PitchClass: note.G, Octave: 4},
	}, notes)
}

func TestToNotesBumpsOctaveOnWrap(t *testing.T) {
	root := note.Note{PitchClass: note.A, Octave: 4}
	intervals, _ := FromSemitones([]uint8{2, 1, 2})
	notes := ToNotes(root, intervals)

	// A4 B4 C5 D5: the wrap past B bumps the octave exactly once
	assert.Equal(t, []note.Note{
		{PitchClass: note.A, Octave: 4},
		{PitchClass: note.B, Octave: 4},
		{PitchClass: note.C, Octave: 5},
		{PitchClass: note.D, Octave: 5},
	}, notes)
}

func TestToNotesOctaveNeverRegresses(t *testing.T) {
	root := note.Note{PitchClass: note.C, Octave: 4}
	intervals, _ := FromSemitones([]uint8{4, 3, 4, 3, 3, 4})
	notes := ToNotes(root, intervals)

	for i := 1; i < len(notes); i++ {
		if notes[i].PitchClass <= notes[i-1].PitchClass {
			assert.Equal(t, notes[i-1].Octave+1, notes[i].Octave)
		} else {
			assert.Equal(t, notes[i-1].Octave, notes[i].Octave)
		}
	}
}
