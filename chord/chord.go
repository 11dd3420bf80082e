package chord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexvitali001/rust-mc-theo/constants"
	"github.com/alexvitali001/rust-mc-theo/interval"
	"github.com/alexvitali001/rust-mc-theo/note"
)

var ErrInvalidInversion = errors.New("inversion is neither a number nor a bass note")

// Chord is a root pitch class plus the interval stack looked up from its
// quality and number. The intervals are fixed at construction; Quality and
// Number stay around as descriptive metadata only.
type Chord struct {
	Root      note.PitchClass
	Octave    int
	Intervals []interval.Interval
	Quality   Quality
	Number    Number

	// 0 = root position, 1 = first inversion, etc. Kept unexported so
	// every write goes through the modulo wrap in SetInversion.
	inversion int
}

// New creates a chord in root position, rooted in the default octave.
func New(root note.PitchClass, quality Quality, number Number) Chord {
	return WithInversion(root, quality, number, 0)
}

// WithInversion creates a chord with the given inversion. The inversion
// wraps modulo the note count rather than erroring out of range.
func WithInversion(root note.PitchClass, quality Quality, number Number, inversion int) Chord {
	c := Chord{
		Root:      root,
		Octave:    constants.DefaultOctave,
		Intervals: Intervals(quality, number),
		Quality:   quality,
		Number:    number,
	}
	c.SetInversion(inversion)
	return c
}

func (c *Chord) Inversion() int {
	return c.inversion
}

// SetInversion requests a different voicing. The value wraps modulo
// len(Intervals)+1 so it always lands on an actual chord tone.
func (c *Chord) SetInversion(inversion int) {
	n := len(c.Intervals) + 1
	inversion %= n
	if inversion < 0 {
		inversion += n
	}
	c.inversion = inversion
}

func (c Chord) String() string {
	name := fmt.Sprintf("%v %v %v", c.Root, c.Quality, c.Number)
	if c.inversion > 0 {
		name += fmt.Sprintf(" (inversion %d)", c.inversion)
	}
	return name
}

// FromRegex parses a full chord expression: a pitch class, an optional
// quality with optional number, and an optional "/" clause naming either an
// inversion index or a bass note, e.g. "C minor seventh / 1" or
// "F# dominant seventh / C#".
func FromRegex(text string) (Chord, error) {
	root, pitchMatch, err := note.FromRegex(text)
	if err != nil {
		return Chord{}, err
	}

	mainClause := text[pitchMatch.End:]
	inversionClause := ""
	if slash := strings.Index(text, "/"); slash >= pitchMatch.End {
		mainClause = text[pitchMatch.End:slash]
		inversionClause = strings.TrimSpace(text[slash+1:])
	}
	mainClause = strings.TrimSpace(mainClause)

	quality, qualityMatch, err := QualityFromRegex(mainClause)
	if err != nil {
		return Chord{}, err
	}

	number := Triad
	if qualityMatch != nil {
		if n, _, err := NumberFromRegex(mainClause[qualityMatch.End:]); err == nil {
			number = n
		}
	}

	c := New(root, quality, number)
	if inversionClause == "" {
		return c, nil
	}

	if n, err := strconv.Atoi(inversionClause); err == nil {
		c.SetInversion(n)
		return c, nil
	}

	bass, _, err := note.FromRegex(inversionClause)
	if err != nil {
		return Chord{}, ErrInvalidInversion
	}
	// Locate the bass among the un-rotated chord tones. A bass note that is
	// not a chord tone leaves the chord in root position rather than
	// failing.
	for i, n := range c.Notes() {
		if n.PitchClass == bass {
			c.SetInversion(i)
			break
		}
	}
	return c, nil
}

// Notes expands the chord: the interval stack is applied to the root, the
// sequence is rotated so the inversion target becomes the bass, and octaves
// are renormalized so the voicing starts at the root octave and strictly
// ascends.
func (c Chord) Notes() []note.Note {
	root := note.Note{PitchClass: c.Root, Octave: c.Octave}
	raw := interval.ToNotes(root, c.Intervals)

	notes := make([]note.Note, 0, len(raw))
	notes = append(notes, raw[c.inversion:]...)
	notes = append(notes, raw[:c.inversion]...)

	// Pull the whole voicing down so the bass sits at the root octave.
	if notes[0].Octave > c.Octave {
		diff := notes[0].Octave - c.Octave
		for i := range notes {
			notes[i].Octave -= diff
		}
	}

	// The sequence must ascend: a pitch class wrap forces the next octave
	// up, and the octave never regresses.
	for i := 1; i < len(notes); i++ {
		if notes[i].PitchClass <= notes[i-1].PitchClass {
			notes[i].Octave = notes[i-1].Octave + 1
		} else if notes[i].Octave < notes[i-1].Octave {
			notes[i].Octave = notes[i-1].Octave
		}
	}
	return notes
}
