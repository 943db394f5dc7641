package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractQuestLocation(t *testing.T) {
	assert.Equal(t, "pewter city", extractQuestLocation("Go to Pewter City"))
	assert.Equal(t, "pallet town", extractQuestLocation("Return home to Pallet Town"))
	assert.Equal(t, "", extractQuestLocation("Catch 5 Pidgey"))
}

func TestExtractQuestLocationLongestNameWins(t *testing.T) {
	// "pewter city gym" must not be shortened to the bare "gym" keyword.
	assert.Equal(t, "pewter city gym", extractQuestLocation("Challenge the Pewter City Gym"))
	assert.Equal(t, "gym", extractQuestLocation("Challenge the gym leader"))
}
