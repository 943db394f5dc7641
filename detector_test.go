package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBattleConfirmationRequiresConsecutiveHits(t *testing.T) {
	bc := newBattleConfirmation(2)

	observations := []bool{true, true, false, true, true, true}
	want := []bool{false, true, false, false, true, true}

	for i, hit := range observations {
		assert.Equal(t, want[i], bc.Observe(hit), "observation %d", i)
	}
}

func TestBattleConfirmationMissResetsCounter(t *testing.T) {
	bc := newBattleConfirmation(3)

	assert.False(t, bc.Observe(true))
	assert.False(t, bc.Observe(true))
	assert.False(t, bc.Observe(false))
	// Counter restarted; two hits are not enough again.
	assert.False(t, bc.Observe(true))
	assert.False(t, bc.Observe(true))
	assert.True(t, bc.Observe(true))
}

func TestBattleConfirmationThresholdOne(t *testing.T) {
	bc := newBattleConfirmation(1)
	assert.True(t, bc.Observe(true))
	assert.False(t, bc.Observe(false))
	assert.True(t, bc.Observe(true))
}

func TestDefaultDetectorTuning(t *testing.T) {
	tuning := DefaultDetectorTuning()
	assert.Equal(t, 2, tuning.ConfirmationFrames)
	assert.Equal(t, 5000.0, tuning.FightButtonRedMass)
	assert.Equal(t, 1500.0, tuning.ButtonStripMass)
	assert.Equal(t, 2000.0, tuning.HPGreenMass)
	assert.InDelta(t, 0.1, tuning.DialogEdgeDensity, 1e-9)
}
