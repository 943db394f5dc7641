// Package main - navigation.go
//
// This file moves the player around the overworld. Exploration is a
// random walk with two rules that keep it from looking robotic: a
// direction is held for at least a second before changing, and the walk
// never reverses 180 degrees in one step.
//
// NavigationPlanner holds the pure path math so it can be tested without
// touching the keyboard: picking the next cardinal step toward a goal
// (horizontal axis first) and laying out a spiral of exploration points
// around an origin.
package main

import (
	"math"
	"math/rand"
	"time"
)

// opposites pairs each direction with its reverse.
var opposites = map[string]string{
	"up":    "down",
	"down":  "up",
	"left":  "right",
	"right": "left",
}

var allDirections = []string{"up", "down", "left", "right"}

// NavigationController walks the player during exploration.
type NavigationController struct {
	input *InputSimulator
	rng   *rand.Rand

	currentDirection string
	directionSince   time.Time
	minDirectionHold time.Duration
}

// NewNavigationController creates the exploration controller.
func NewNavigationController(input *InputSimulator) *NavigationController {
	return &NavigationController{
		input:            input,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
		minDirectionHold: time.Second,
	}
}

// Explore takes one random-walk step, respecting the hold time and the
// no-reversal rule.
func (nc *NavigationController) Explore() {
	if nc.currentDirection != "" && time.Since(nc.directionSince) < nc.minDirectionHold {
		nc.input.Move(nc.currentDirection, 200*time.Millisecond)
		return
	}

	next := nc.pickDirection()
	if next != nc.currentDirection {
		LogDebug("Exploration direction: %s", next)
	}
	nc.currentDirection = next
	nc.directionSince = time.Now()
	nc.input.Move(next, 200*time.Millisecond)
}

// pickDirection chooses a random direction that is not the reverse of
// the current one.
func (nc *NavigationController) pickDirection() string {
	banned := opposites[nc.currentDirection]
	for {
		d := allDirections[nc.rng.Intn(len(allDirections))]
		if d != banned {
			return d
		}
	}
}

// MoveInDirection walks one direction for a duration and makes it the
// held direction.
func (nc *NavigationController) MoveInDirection(direction string, duration time.Duration) {
	nc.currentDirection = direction
	nc.directionSince = time.Now()
	nc.input.Move(direction, duration)
}

// AvoidObstacle sidesteps by turning perpendicular to the current
// heading for a short burst.
func (nc *NavigationController) AvoidObstacle() {
	var sidesteps []string
	switch nc.currentDirection {
	case "up", "down":
		sidesteps = []string{"left", "right"}
	default:
		sidesteps = []string{"up", "down"}
	}
	d := sidesteps[nc.rng.Intn(len(sidesteps))]
	LogDebug("Avoiding obstacle, sidestep %s", d)
	nc.MoveInDirection(d, 500*time.Millisecond)
}

// NavigationPlanner computes movement geometry.
type NavigationPlanner struct{}

// NextDirection returns the cardinal step from current toward goal,
// resolving the horizontal axis first. Arrival returns "".
func (NavigationPlanner) NextDirection(current, goal Point) string {
	dx := goal.X - current.X
	dy := goal.Y - current.Y
	if dx == 0 && dy == 0 {
		return ""
	}
	if dx > 0 {
		return "right"
	}
	if dx < 0 {
		return "left"
	}
	if dy > 0 {
		return "down"
	}
	return "up"
}

// ExploreArea lays out a spiral of waypoints around center: radius grows
// in steps of 10 up to maxRadius, sampling every 45 degrees.
func (NavigationPlanner) ExploreArea(center Point, maxRadius int) []Point {
	var points []Point
	for r := 10; r <= maxRadius; r += 10 {
		for deg := 0; deg < 360; deg += 45 {
			rad := float64(deg) * math.Pi / 180
			points = append(points, Point{
				X: center.X + int(float64(r)*math.Cos(rad)),
				Y: center.Y + int(float64(r)*math.Sin(rad)),
			})
		}
	}
	return points
}

// PlanRoute returns the waypoint list from start to goal. Routing around
// terrain needs collision data the screen does not give us, so the route
// is the direct pair.
func (NavigationPlanner) PlanRoute(start, goal Point) []Point {
	return []Point{start, goal}
}
