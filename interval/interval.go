package interval

import (
	"errors"

	"github.com/alexvitali001/rust-mc-theo/note"
)

// Interval is the step between two consecutive notes of a chord or scale,
// in semitones. A single step is always between 1 and 12.
type Interval uint8

var ErrInvalidSemitone = errors.New("semitone count must be between 1 and 12")

// FromSemitones validates a sequence of semitone counts. Zero steps and
// steps wider than an octave are not representable.
func FromSemitones(counts []uint8) ([]Interval, error) {
	intervals := make([]Interval, 0, len(counts))
	for _, c := range counts {
		if c < 1 || c > 12 {
			return nil, ErrInvalidSemitone
		}
		intervals = append(intervals, Interval(c))
	}
	return intervals, nil
}

// ToNotes walks root through the intervals and returns len(intervals)+1
// notes. The octave bumps by one exactly when the pitch class value wraps
// past B back through C; a later normalization pass may still adjust it.
func ToNotes(root note.Note, intervals []Interval) []note.Note {
	notes := make([]note.Note, 0, len(intervals)+1)
	notes = append(notes, root)

	prev := root
	for _, iv := range intervals {
		val := int(prev.PitchClass) + int(iv)
		next := note.Note{PitchClass: note.FromValue(val), Octave: prev.Octave}
		if val >= 12 {
			next.Octave++
		}
		notes = append(notes, next)
		prev = next
	}
	return notes
}
