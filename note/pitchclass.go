package note

import (
	"errors"
	"regexp"
	"unicode"
)

// PitchClass is one of the 12 equal-tempered pitch classes, ordered by
// semitone value upward from C.
type PitchClass int

const (
	C PitchClass = iota
	Cs
	D
	Ds
	E
	F
	Fs
	G
	Gs
	A
	As
	B
)

var ErrInvalidPitch = errors.New("invalid pitch")

// Match is the span of input text consumed by a recognizer. Callers slice
// the remainder of the string at End to continue parsing.
type Match struct {
	Start int
	End   int
}

var pitchNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func (p PitchClass) String() string {
	return pitchNames[FromValue(int(p))]
}

// FromValue normalizes any semitone value to a pitch class. Modular
// arithmetic on the underlying value is the only way to transpose.
func FromValue(v int) PitchClass {
	v %= 12
	if v < 0 {
		v += 12
	}
	return PitchClass(v)
}

var letterValues = map[rune]PitchClass{
	'C': C,
	'D': D,
	'E': E,
	'F': F,
	'G': G,
	'A': A,
	'B': B,
}

// A pitch letter at the start of the input, then any run of accidentals.
var pitchRegex = regexp.MustCompile(`^\s*([A-Ga-g][#♯sS♭b]*)`)

// FromRegex recognizes a leading pitch letter with optional sharp/flat
// accidentals. Enharmonic spellings collapse to the same pitch class, so
// C# and Db both come back as Cs. The returned match span lets callers
// keep parsing after the pitch token.
func FromRegex(text string) (PitchClass, Match, error) {
	loc := pitchRegex.FindStringSubmatchIndex(text)
	if loc == nil {
		return 0, Match{}, ErrInvalidPitch
	}

	match := Match{Start: loc[2], End: loc[3]}
	runes := []rune(text[match.Start:match.End])
	val := int(letterValues[unicode.ToUpper(runes[0])])
	for _, r := range runes[1:] {
		switch r {
		case '#', '♯', 's', 'S':
			val++
		case 'b', '♭':
			val--
		}
	}
	return FromValue(val), match, nil
}
