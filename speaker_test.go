package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPlateRoleChatMatchIsPlayer(t *testing.T) {
	role := classifyPlateRole("Ash", []string{"Ash: anyone trading?"}, Point{X: 100, Y: 100}, Point{}, false, 1000)
	assert.Equal(t, RolePlayer, role)
}

func TestClassifyPlateRoleChatMatchIsCaseInsensitive(t *testing.T) {
	role := classifyPlateRole("MISTY", []string{"misty joined the channel"}, Point{}, Point{}, false, 1000)
	assert.Equal(t, RolePlayer, role)
}

func TestClassifyPlateRoleNearBubbleIsNPC(t *testing.T) {
	// Plate 50px from the bubble on a 1000px diagonal, inside the 12% band.
	role := classifyPlateRole("Nurse Joy", nil, Point{X: 100, Y: 100}, Point{X: 150, Y: 100}, true, 1000)
	assert.Equal(t, RoleNPC, role)
}

func TestClassifyPlateRoleFarFromBubbleIsUnknown(t *testing.T) {
	role := classifyPlateRole("Stranger", nil, Point{X: 0, Y: 0}, Point{X: 500, Y: 500}, true, 1000)
	assert.Equal(t, RoleUnknown, role)
}

func TestClassifyPlateRoleNoBubbleNoChatIsUnknown(t *testing.T) {
	role := classifyPlateRole("Stranger", nil, Point{X: 10, Y: 10}, Point{}, false, 1000)
	assert.Equal(t, RoleUnknown, role)
}

func TestClassifyPlateRoleChatBeatsBubble(t *testing.T) {
	role := classifyPlateRole("Ash", []string{"Ash: hi"}, Point{X: 100, Y: 100}, Point{X: 100, Y: 100}, true, 1000)
	assert.Equal(t, RolePlayer, role)
}

func TestGroupChatLinesBucketsRows(t *testing.T) {
	tokens := []WordBox{
		{Text: "trading", Region: NewRegion(60, 600, 50, 10)},
		{Text: "Ash:", Region: NewRegion(0, 601, 40, 10)},
		{Text: "anyone", Region: NewRegion(45, 602, 50, 10)},
		{Text: "Misty:", Region: NewRegion(0, 630, 40, 10)},
		{Text: "yes", Region: NewRegion(45, 631, 30, 10)},
	}
	lines := groupChatLines(tokens)
	assert.Len(t, lines, 2)
	assert.Equal(t, "Ash: anyone trading", lines[0].Text)
	assert.Equal(t, "Misty: yes", lines[1].Text)
}

func TestGroupChatLinesEmpty(t *testing.T) {
	assert.Nil(t, groupChatLines(nil))
}

func TestJoinDialogReadingOrder(t *testing.T) {
	tokens := []WordBox{
		{Text: "world", Region: NewRegion(60, 10, 40, 10), Confidence: 0.7},
		{Text: "Hello", Region: NewRegion(0, 10, 40, 10), Confidence: 0.9},
	}
	lines := joinDialog(tokens)
	assert.Len(t, lines, 1)
	assert.Equal(t, "Hello world", lines[0].Text)
	assert.InDelta(t, 0.9, lines[0].Confidence, 1e-9)
}

func TestDedupePlates(t *testing.T) {
	tokens := []WordBox{
		{Text: "Ash", Region: NewRegion(0, 0, 40, 10)},
		{Text: "Ash", Region: NewRegion(100, 0, 40, 10)},
		{Text: "Misty", Region: NewRegion(200, 0, 40, 10)},
	}
	plates := dedupePlates(tokens)
	assert.Len(t, plates, 2)
	assert.Equal(t, "Ash", plates[0].Text)
	assert.Equal(t, "Misty", plates[1].Text)
	assert.True(t, plates[0].HasRegion)
}
