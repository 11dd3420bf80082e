package scale

import (
	"errors"
	"regexp"

	"github.com/alexvitali001/rust-mc-theo/note"
)

// Mode is one of the 9 supported scale modes: the seven diatonic modes
// plus harmonic and melodic minor.
type Mode int

const (
	Ionian Mode = iota
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
	HarmonicMinor
	MelodicMinor
)

var ErrInvalidMode = errors.New("no mode was recognized")

var modeNames = [...]string{
	Ionian:        "Ionian",
	Dorian:        "Dorian",
	Phrygian:      "Phrygian",
	Lydian:        "Lydian",
	Mixolydian:    "Mixolydian",
	Aeolian:       "Aeolian",
	Locrian:       "Locrian",
	HarmonicMinor: "HarmonicMinor",
	MelodicMinor:  "MelodicMinor",
}

func (m Mode) String() string {
	return modeNames[m]
}

// AvailableScales lists the recognized modes the way the list command
// prints them, primary alias first.
var AvailableScales = []string{
	"Major|Ionian",
	"Minor|Aeolian",
	"Dorian",
	"Phrygian",
	"Lydian",
	"Mixolydian",
	"Locrian",
	"HarmonicMinor",
	"MelodicMinor",
}

// modeRegexes is tried in order, first match wins. Major family goes
// first, harmonic and melodic minor must beat plain minor (both contain
// "minor"), and Mixolydian must beat Lydian ("mixolydian" contains
// "lydian"). The bare "M"/"m" aliases only match before a non-letter so
// they cannot fire inside Mixolydian or Melodic.
var modeRegexes = []struct {
	regex *regexp.Regexp
	mode  Mode
}{
	{regexp.MustCompile(`([Mm]ajor|[Mm]aj|[Ii]onian|M)(?:$|[^a-zA-Z])`), Ionian},
	{regexp.MustCompile(`(har minor|[Hh]armonic ?[Mm]inor)`), HarmonicMinor},
	{regexp.MustCompile(`(mel minor|[Mm]elodic ?[Mm]inor)`), MelodicMinor},
	{regexp.MustCompile(`([Mm]inor|[Mm]in|[Aa]eolian|m)(?:$|[^a-zA-Z])`), Aeolian},
	{regexp.MustCompile(`([Dd]orian|[Dd]or)`), Dorian},
	{regexp.MustCompile(`([Ll]ocrian|[Ll]oc)`), Locrian},
	{regexp.MustCompile(`([Mm]ixolydian|[Mm]ix)`), Mixolydian},
	{regexp.MustCompile(`([Pp]hrygian|[Pp]hr|[Pp]hy)`), Phrygian},
	{regexp.MustCompile(`([Ll]ydian|[Ll]yd)`), Lydian},
}

// ModeFromRegex recognizes a mode name anywhere in the text.
func ModeFromRegex(text string) (Mode, *note.Match, error) {
	for _, entry := range modeRegexes {
		loc := entry.regex.FindStringSubmatchIndex(text)
		if loc != nil {
			return entry.mode, &note.Match{Start: loc[2], End: loc[3]}, nil
		}
	}
	return 0, nil, ErrInvalidMode
}

// modeTable holds the seven steps of each mode, in semitones.
var modeTable = map[Mode][]uint8{
	Ionian:        {2, 2, 1, 2, 2, 2, 1},
	Dorian:        {2, 1, 2, 2, 2, 1, 2},
	Phrygian:      {1, 2, 2, 2, 1, 2, 2},
	Lydian:        {2, 2, 2, 1, 2, 2, 1},
	Mixolydian:    {2, 2, 1, 2, 2, 1, 2},
	Aeolian:       {2, 1, 2, 2, 1, 2, 2},
	Locrian:       {1, 2, 2, 1, 2, 2, 2},
	HarmonicMinor: {2, 1, 2, 2, 1, 3, 1},
	MelodicMinor:  {2, 1, 2, 2, 2, 2, 1},
}
