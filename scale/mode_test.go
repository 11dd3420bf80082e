package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeFromRegexAliases(t *testing.T) {
	cases := []struct {
		text     string
		expected Mode
	}{
		{"major", Ionian},
		{"Major", Ionian},
		{"maj", Ionian},
		{"M", Ionian},
		{"ionian", Ionian},
		{"minor", Aeolian},
		{"Minor", Aeolian},
		{"m", Aeolian},
		{"aeolian", Aeolian},
		{"dorian", Dorian},
		{"dor", Dorian},
		{"phrygian", Phrygian},
		{"phr", Phrygian},
		{"lydian", Lydian},
		{"lyd", Lydian},
		{"mixolydian", Mixolydian},
		{"mix", Mixolydian},
		{"locrian", Locrian},
		{"loc", Locrian},
		{"harmonic minor", HarmonicMinor},
		{"harmonicminor", HarmonicMinor},
		{"HarmonicMinor", HarmonicMinor},
		{"har minor", HarmonicMinor},
		{"melodic minor", MelodicMinor},
		{"MelodicMinor", MelodicMinor},
		{"mel minor", MelodicMinor},
	}

	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			mode, match, err := ModeFromRegex(c.text)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.expected, mode)
			assert.NotNil(match)
		})
	}
}

// "harmonic minor" and "melodic minor" contain "minor", and "mixolydian"
// contains "lydian": the compound names must win.
func TestModeFromRegexPrecedence(t *testing.T) {
	harmonic, _, _ := ModeFromRegex("harmonic minor")
	melodic, _, _ := ModeFromRegex("melodic minor")
	mixo, _, _ := ModeFromRegex("mixolydian")

	assert := assert.New(t)
	assert.Equal(HarmonicMinor, harmonic)
	assert.Equal(MelodicMinor, melodic)
	assert.Equal(Mixolydian, mixo)
}

func TestModeFromRegexUnknownFails(t *testing.T) {
	_, _, err := ModeFromRegex("zzz")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestModeTableCoversAllModes(t *testing.T) {
	assert := assert.New(t)
	assert.Len(modeTable, 9)
	for mode, steps := range modeTable {
		assert.Len(steps, 7, "mode %v", mode)

		total := 0
		for _, s := range steps {
			total += int(s)
		}
		assert.Equal(12, total, "mode %v must span an octave", mode)
	}
}
