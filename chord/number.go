package chord

import (
	"errors"
	"regexp"

	"github.com/alexvitali001/rust-mc-theo/note"
)

// Number is the chord extension: triad, seventh, ninth and so on.
type Number int

const (
	Triad Number = iota
	Seventh
	Ninth
	Eleventh
	Thirteenth
)

var ErrInvalidNumber = errors.New("no number was recognized")

var numberNames = [...]string{
	Triad:      "Triad",
	Seventh:    "Seventh",
	Ninth:      "Ninth",
	Eleventh:   "Eleventh",
	Thirteenth: "Thirteenth",
}

func (n Number) String() string {
	return numberNames[n]
}

// Larger extensions first: "13" must win over "3" when both could match.
var numberRegexes = []struct {
	regex  *regexp.Regexp
	number Number
}{
	{regexp.MustCompile(`([Tt]hirteenth|13th|13)`), Thirteenth},
	{regexp.MustCompile(`([Ee]leventh|11th|11)`), Eleventh},
	{regexp.MustCompile(`([Nn]inth|9th|9)`), Ninth},
	{regexp.MustCompile(`([Ss]eventh|7th|7)`), Seventh},
	{regexp.MustCompile(`([Tt]riad|[Tt]hird|3rd|3)`), Triad},
}

// NumberFromRegex recognizes an extension token anywhere in the text. A
// chord with no number token is triadic; callers are expected to treat the
// error as a fallback to Triad, not as a failure.
func NumberFromRegex(text string) (Number, *note.Match, error) {
	for _, entry := range numberRegexes {
		loc := entry.regex.FindStringSubmatchIndex(text)
		if loc != nil {
			return entry.number, &note.Match{Start: loc[2], End: loc[3]}, nil
		}
	}
	return Triad, nil, ErrInvalidNumber
}
