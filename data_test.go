package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointDistance(t *testing.T) {
	assert.InDelta(t, 5.0, NewPoint(0, 0).Distance(NewPoint(3, 4)), 1e-9)
	assert.InDelta(t, 0.0, NewPoint(7, 7).Distance(NewPoint(7, 7)), 1e-9)
}

func TestFracRegion(t *testing.T) {
	r := FracRegion(1920, 1080, 0.4, 0.75, 0.2, 0.15)
	assert.Equal(t, Region{X: 768, Y: 810, W: 384, H: 162}, r)
}

func TestRegionCenterAndContains(t *testing.T) {
	r := NewRegion(10, 20, 100, 50)
	assert.Equal(t, Point{X: 60, Y: 45}, r.Center())
	assert.True(t, r.Contains(Point{X: 10, Y: 20}))
	assert.True(t, r.Contains(Point{X: 110, Y: 70}))
	assert.False(t, r.Contains(Point{X: 111, Y: 70}))
}

func TestRegionClampTo(t *testing.T) {
	// Hanging off the right and bottom edges.
	r := NewRegion(90, 90, 30, 30).ClampTo(100, 100)
	assert.Equal(t, Region{X: 90, Y: 90, W: 10, H: 10}, r)

	// Negative origin shrinks the size accordingly.
	r = NewRegion(-10, -5, 30, 30).ClampTo(100, 100)
	assert.Equal(t, Region{X: 0, Y: 0, W: 20, H: 25}, r)

	// Entirely outside collapses to empty.
	r = NewRegion(200, 200, 30, 30).ClampTo(100, 100)
	assert.True(t, r.Empty())
}

func TestRegionEmpty(t *testing.T) {
	assert.True(t, Region{}.Empty())
	assert.True(t, NewRegion(0, 0, 10, 0).Empty())
	assert.False(t, NewRegion(0, 0, 10, 10).Empty())
}

func TestGameStateStrings(t *testing.T) {
	assert.Equal(t, "exploring", GameStateExploring.String())
	assert.Equal(t, "in_battle", GameStateInBattle.String())
	assert.Equal(t, "unknown", GameStateUnknown.String())
}

func TestStatisticsCounters(t *testing.T) {
	stats := NewStatistics()
	stats.AddBattle()
	stats.AddBattle()
	stats.AddCaptureAttempt()

	battles, captures, _, uptime := stats.GetStats()
	assert.Equal(t, 2, battles)
	assert.Equal(t, 1, captures)
	assert.NotEmpty(t, uptime)
}
