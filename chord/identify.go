package chord

import (
	"sort"

	"github.com/alexvitali001/rust-mc-theo/note"
)

// Identify names the chords whose tones exactly cover the held notes,
// trying every held pitch class as a candidate root. The lowest held note
// decides the reported inversion. Ambiguous sets (an augmented triad
// matches under all three of its roots) return multiple chords, in table
// order.
func Identify(held []note.Note) []Chord {
	if len(held) == 0 {
		return nil
	}

	sorted := make([]note.Note, len(held))
	copy(sorted, held)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Octave != sorted[j].Octave {
			return sorted[i].Octave < sorted[j].Octave
		}
		return sorted[i].PitchClass < sorted[j].PitchClass
	})
	bass := sorted[0].PitchClass

	heldClasses := make(map[note.PitchClass]bool)
	for _, n := range held {
		heldClasses[n.PitchClass] = true
	}

	var matches []Chord
	for _, e := range chordTable {
		if len(e.semitones)+1 != len(heldClasses) {
			continue
		}
		for root := note.C; root <= note.B; root++ {
			if !heldClasses[root] {
				continue
			}
			c := New(root, e.quality, e.number)
			if !coversExactly(c.Notes(), heldClasses) {
				continue
			}
			for i, n := range c.Notes() {
				if n.PitchClass == bass {
					c.SetInversion(i)
					break
				}
			}
			matches = append(matches, c)
		}
	}
	return matches
}

func coversExactly(notes []note.Note, classes map[note.PitchClass]bool) bool {
	seen := make(map[note.PitchClass]bool)
	for _, n := range notes {
		if !classes[n.PitchClass] {
			return false
		}
		seen[n.PitchClass] = true
	}
	return len(seen) == len(classes)
}
