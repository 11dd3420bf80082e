package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberFromRegexAliases(t *testing.T) {
	cases := []struct {
		text     string
		expected Number
	}{
		{"triad", Triad},
		{"third", Triad},
		{"3", Triad},
		{"seventh", Seventh},
		{"7th", Seventh},
		{"7", Seventh},
		{"ninth", Ninth},
		{"9", Ninth},
		{"eleventh", Eleventh},
		{"11th", Eleventh},
		{"thirteenth", Thirteenth},
		{"13", Thirteenth},
	}

	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			number, match, err := NumberFromRegex(c.text)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.expected, number)
			assert.NotNil(match)
		})
	}
}

// "13" contains "3": the larger extension has to win.
func TestNumberFromRegexPrecedence(t *testing.T) {
	number, _, err := NumberFromRegex("13")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(Thirteenth, number)
}

func TestNumberFromRegexUnknownFails(t *testing.T) {
	_, _, err := NumberFromRegex("xyz")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}
