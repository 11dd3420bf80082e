package chord

import (
	"errors"
	"regexp"
	"strings"

	"github.com/alexvitali001/rust-mc-theo/note"
)

// Quality is the chord color: major, minor, diminished, and friends. It is
// purely descriptive; it only means something combined with a Number.
type Quality int

const (
	Major Quality = iota
	Minor
	Suspended2
	Suspended4
	Augmented
	Diminished
	HalfDiminished
	MinorMajor
	AugmentedMajor
	Dominant
)

var ErrInvalidQuality = errors.New("no quality was recognized")

var qualityNames = [...]string{
	Major:          "Major",
	Minor:          "Minor",
	Suspended2:     "Suspended2",
	Suspended4:     "Suspended4",
	Augmented:      "Augmented",
	Diminished:     "Diminished",
	HalfDiminished: "HalfDiminished",
	MinorMajor:     "MinorMajor",
	AugmentedMajor: "AugmentedMajor",
	Dominant:       "Dominant",
}

func (q Quality) String() string {
	return qualityNames[q]
}

// qualityRegexes is tried in order and first match wins, so the order is a
// correctness invariant, not a style choice. Multi-word qualities come
// before the single words they contain ("minor major" before "minor",
// "half diminished" before "diminished"), Dominant and Diminished come
// before Minor because both contain "min", and the bare one-letter aliases
// ("m", "M") only match when followed by a non-letter so that they cannot
// fire inside a longer name.
var qualityRegexes = []struct {
	regex   *regexp.Regexp
	quality Quality
}{
	{regexp.MustCompile(`([Hh]alf ?[Dd]iminished|[Hh]alf ?[Dd]im|ø)`), HalfDiminished},
	{regexp.MustCompile(`([Mm]inor ?[Mm]ajor|[Mm]in ?[Mm]aj|mM)`), MinorMajor},
	{regexp.MustCompile(`([Aa]ugmented ?[Mm]ajor|[Aa]ug ?[Mm]aj)`), AugmentedMajor},
	{regexp.MustCompile(`([Ss]uspended ?2|[Ss]us ?2)`), Suspended2},
	{regexp.MustCompile(`([Ss]uspended ?4|[Ss]us ?4)`), Suspended4},
	{regexp.MustCompile(`([Dd]ominant|[Dd]om)`), Dominant},
	{regexp.MustCompile(`([Aa]ugmented|[Aa]ug|\+)`), Augmented},
	{regexp.MustCompile(`([Dd]iminished|[Dd]im|°)`), Diminished},
	{regexp.MustCompile(`([Mm]inor|[Mm]in|m)(?:$|[^a-zA-Z])`), Minor},
	{regexp.MustCompile(`([Mm]ajor|[Mm]aj|M)(?:$|[^a-zA-Z])`), Major},
}

// QualityFromRegex recognizes a quality token anywhere in the text. Empty
// input is not an error: a chord like "C" or "C/1" has no quality token and
// defaults to Major with no match span. Unrecognizable non-empty input is
// an error.
func QualityFromRegex(text string) (Quality, *note.Match, error) {
	if strings.TrimSpace(text) == "" {
		return Major, nil, nil
	}
	for _, entry := range qualityRegexes {
		loc := entry.regex.FindStringSubmatchIndex(text)
		if loc != nil {
			return entry.quality, &note.Match{Start: loc[2], End: loc[3]}, nil
		}
	}
	return Major, nil, ErrInvalidQuality
}
