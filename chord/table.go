package chord

import (
	"fmt"

	"github.com/alexvitali001/rust-mc-theo/interval"
)

type tableEntry struct {
	quality   Quality
	number    Number
	semitones []uint8
}

// chordTable is the 22 documented quality/number combinations and their
// interval stacks, root excluded.
var chordTable = []tableEntry{
	{Major, Triad, []uint8{4, 3}},
	{Minor, Triad, []uint8{3, 4}},
	{Suspended2, Triad, []uint8{2, 5}},
	{Suspended4, Triad, []uint8{5, 7}},
	{Augmented, Triad, []uint8{4, 4}},
	{Diminished, Triad, []uint8{3, 3}},
	{Major, Seventh, []uint8{4, 3, 4}},
	{Minor, Seventh, []uint8{3, 4, 3}},
	{Augmented, Seventh, []uint8{4, 4, 2}},
	{AugmentedMajor, Seventh, []uint8{4, 4, 3}},
	{Diminished, Seventh, []uint8{3, 3, 3}},
	{HalfDiminished, Seventh, []uint8{3, 3, 4}},
	{MinorMajor, Seventh, []uint8{3, 4, 4}},
	{Dominant, Seventh, []uint8{4, 3, 3}},
	{Dominant, Ninth, []uint8{4, 3, 3, 4}},
	{Major, Ninth, []uint8{4, 3, 4, 3}},
	{Dominant, Eleventh, []uint8{4, 3, 3, 4, 4}},
	{Major, Eleventh, []uint8{4, 3, 4, 3, 3}},
	{Minor, Eleventh, []uint8{3, 4, 3, 4, 3}},
	{Dominant, Thirteenth, []uint8{4, 3, 3, 4, 3, 4}},
	{Major, Thirteenth, []uint8{4, 3, 4, 3, 3, 4}},
	{Minor, Thirteenth, []uint8{3, 4, 3, 4, 3, 4}},
}

// Intervals looks up the interval stack for a quality/number pair. The
// lookup is total: pairs outside the table, like (Suspended2, Thirteenth),
// fall back to a plain major triad instead of failing.
func Intervals(quality Quality, number Number) []interval.Interval {
	semitones := chordTable[0].semitones
	for _, e := range chordTable {
		if e.quality == quality && e.number == number {
			semitones = e.semitones
			break
		}
	}
	intervals, err := interval.FromSemitones(semitones)
	if err != nil {
		// table entries are static and validated by tests
		panic("bad chord table entry: " + err.Error())
	}
	return intervals
}

// catalogNames spells out the compound qualities in the printed catalog.
// HalfDiminished and the suspended qualities stay as single words.
var catalogNames = map[Quality]string{
	MinorMajor:     "Minor Major",
	AugmentedMajor: "Augmented Major",
}

// AvailableChords names every combination in the table, in table order.
func AvailableChords() []string {
	names := make([]string, 0, len(chordTable))
	for _, e := range chordTable {
		quality := e.quality.String()
		if name, ok := catalogNames[e.quality]; ok {
			quality = name
		}
		names = append(names, fmt.Sprintf("%v %v", quality, e.number))
	}
	return names
}
