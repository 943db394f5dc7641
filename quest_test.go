package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuestTextTitleAndObjective(t *testing.T) {
	info := parseQuestText("Gym Challenge\nDefeat the Pewter City Gym Leader")
	assert.NotNil(t, info)
	assert.Equal(t, "Gym Challenge", info.Title)
	assert.Equal(t, "Defeat the Pewter City Gym Leader", info.Objective)
	assert.False(t, info.HasGotoButton)
}

func TestParseQuestTextStripsPanelArtifacts(t *testing.T) {
	info := parseQuestText("|Gym Challenge_\nGo to Pewter City")
	assert.NotNil(t, info)
	assert.Equal(t, "Gym Challenge", info.Title)
	assert.True(t, info.HasGotoButton)
}

func TestParseQuestTextGotoFlag(t *testing.T) {
	info := parseQuestText("Delivery Run\nGoto the Pokemon Center")
	assert.NotNil(t, info)
	assert.True(t, info.HasGotoButton)
}

func TestParseQuestTextSecondLineFallback(t *testing.T) {
	// No objective keyword; the second line is long enough to stand in.
	info := parseQuestText("Errand Day\nBring the parcel home")
	assert.NotNil(t, info)
	assert.Equal(t, "Errand Day", info.Title)
	assert.Equal(t, "Bring the parcel home", info.Objective)
}

func TestParseQuestTextSkipsShortAndNumericLines(t *testing.T) {
	info := parseQuestText("12\nab\nCatch Training\nTalk to Professor Oak")
	assert.NotNil(t, info)
	assert.Equal(t, "Catch Training", info.Title)
	assert.Equal(t, "Talk to Professor Oak", info.Objective)
}

func TestParseQuestTextRejectsNoise(t *testing.T) {
	assert.Nil(t, parseQuestText(""))
	assert.Nil(t, parseQuestText("ab"))
	assert.Nil(t, parseQuestText("   \n  "))
}

func TestIsAllDigits(t *testing.T) {
	assert.True(t, isAllDigits("12345"))
	assert.False(t, isAllDigits("12a45"))
	assert.False(t, isAllDigits(""))
}
