package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHPText(t *testing.T) {
	reading := parseHPText("HP: 45/100")
	assert.True(t, reading.Found)
	assert.Equal(t, 45, reading.Current)
	assert.Equal(t, 100, reading.Max)
}

func TestParseHPTextTolerantSpacing(t *testing.T) {
	reading := parseHPText("45 / 100")
	assert.True(t, reading.Found)
	assert.Equal(t, 45, reading.Current)
	assert.Equal(t, 100, reading.Max)
}

func TestParseHPTextNoMatch(t *testing.T) {
	for _, text := range []string{"", "Pikachu Lv 12", "45-100", "health low"} {
		reading := parseHPText(text)
		assert.False(t, reading.Found, "text %q", text)
	}
}

func TestParseHPTextEmbedded(t *testing.T) {
	reading := parseHPText("Pikachu  Lv.12  33/48  PAR")
	assert.True(t, reading.Found)
	assert.Equal(t, 33, reading.Current)
	assert.Equal(t, 48, reading.Max)
}

func TestParseDigits(t *testing.T) {
	n, ok := parseDigits("Lv. 23")
	assert.True(t, ok)
	assert.Equal(t, 23, n)

	n, ok = parseDigits("level12abc3")
	assert.True(t, ok)
	assert.Equal(t, 123, n)

	_, ok = parseDigits("no numbers here")
	assert.False(t, ok)

	_, ok = parseDigits("")
	assert.False(t, ok)
}

func TestHPReadingPercent(t *testing.T) {
	assert.InDelta(t, 45.0, HPReading{Current: 45, Max: 100, Found: true}.Percent(), 1e-9)
	assert.InDelta(t, 50.0, HPReading{Current: 24, Max: 48, Found: true}.Percent(), 1e-9)

	// Absent or nonsensical readings default to a full bar.
	assert.InDelta(t, 100.0, HPReading{}.Percent(), 1e-9)
	assert.InDelta(t, 100.0, HPReading{Current: 10, Max: 0, Found: true}.Percent(), 1e-9)
}
