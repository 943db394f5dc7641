package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextDirectionHorizontalFirst(t *testing.T) {
	var p NavigationPlanner

	// Both axes off: the horizontal axis resolves first.
	assert.Equal(t, "right", p.NextDirection(Point{X: 0, Y: 0}, Point{X: 10, Y: 10}))
	assert.Equal(t, "left", p.NextDirection(Point{X: 10, Y: 0}, Point{X: 0, Y: 10}))

	// Horizontal aligned: vertical takes over.
	assert.Equal(t, "down", p.NextDirection(Point{X: 5, Y: 0}, Point{X: 5, Y: 10}))
	assert.Equal(t, "up", p.NextDirection(Point{X: 5, Y: 10}, Point{X: 5, Y: 0}))
}

func TestNextDirectionArrived(t *testing.T) {
	var p NavigationPlanner
	assert.Equal(t, "", p.NextDirection(Point{X: 3, Y: 3}, Point{X: 3, Y: 3}))
}

func TestExploreAreaSpiral(t *testing.T) {
	var p NavigationPlanner
	points := p.ExploreArea(Point{X: 0, Y: 0}, 30)

	// Three rings (r=10,20,30) of eight samples each.
	assert.Len(t, points, 24)

	// First sample: r=10 at 0 degrees.
	assert.Equal(t, Point{X: 10, Y: 0}, points[0])

	// Every point stays within the requested radius (integer truncation
	// only ever shrinks).
	origin := Point{}
	for _, pt := range points {
		assert.LessOrEqual(t, origin.Distance(pt), 30.001)
	}
}

func TestExploreAreaSmallRadius(t *testing.T) {
	var p NavigationPlanner
	assert.Empty(t, p.ExploreArea(Point{}, 5))
}

func TestPlanRouteIsDirect(t *testing.T) {
	var p NavigationPlanner
	start, goal := Point{X: 1, Y: 2}, Point{X: 30, Y: 40}
	route := p.PlanRoute(start, goal)
	assert.Equal(t, []Point{start, goal}, route)
}

func TestPickDirectionNeverReverses(t *testing.T) {
	nc := NewNavigationController(nil)
	nc.currentDirection = "up"
	for i := 0; i < 100; i++ {
		assert.NotEqual(t, "down", nc.pickDirection())
	}

	nc.currentDirection = "left"
	for i := 0; i < 100; i++ {
		assert.NotEqual(t, "right", nc.pickDirection())
	}
}
