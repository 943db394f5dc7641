// Package main - input.go
//
// This file implements synthetic keyboard and mouse input on top of
// robotgo. All game actions funnel through here: battle hotkeys,
// movement keys, UI clicks, and text entry.
//
// When human patterns are enabled, every action is preceded by a random
// delay drawn uniformly from [MinDelay, MaxDelay] so the input stream
// does not tick like a metronome.
package main

import (
	"math/rand"
	"strings"
	"time"

	"github.com/go-vgo/robotgo"
)

// directionKeys maps movement directions onto WASD.
var directionKeys = map[string]string{
	"up":    "w",
	"down":  "s",
	"left":  "a",
	"right": "d",
}

// InputSimulator issues keyboard and mouse events to the game window.
type InputSimulator struct {
	humanPatterns bool
	minDelay      time.Duration
	maxDelay      time.Duration
	rng           *rand.Rand
}

// NewInputSimulator creates a simulator from the security settings.
func NewInputSimulator(cfg SecurityConfig) *InputSimulator {
	return &InputSimulator{
		humanPatterns: cfg.HumanPatterns,
		minDelay:      time.Duration(cfg.MinDelay * float64(time.Second)),
		maxDelay:      time.Duration(cfg.MaxDelay * float64(time.Second)),
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// humanDelay sleeps a random interval when human patterns are on.
func (in *InputSimulator) humanDelay() {
	if !in.humanPatterns || in.maxDelay <= 0 {
		return
	}
	span := in.maxDelay - in.minDelay
	d := in.minDelay
	if span > 0 {
		d += time.Duration(in.rng.Int63n(int64(span)))
	}
	time.Sleep(d)
}

// PressKey taps a key, holding it for the given duration. A zero
// duration is a plain tap.
func (in *InputSimulator) PressKey(key string, duration time.Duration) {
	in.humanDelay()
	if duration <= 0 {
		robotgo.KeyTap(key)
		LogDebug("Key tap: %s", key)
		return
	}
	robotgo.KeyToggle(key, "down")
	time.Sleep(duration)
	robotgo.KeyToggle(key, "up")
	LogDebug("Key hold: %s for %v", key, duration)
}

// HoldKey presses a key down without releasing it. Release with
// ReleaseKey.
func (in *InputSimulator) HoldKey(key string) {
	in.humanDelay()
	robotgo.KeyToggle(key, "down")
	LogDebug("Key down: %s", key)
}

// ReleaseKey releases a previously held key.
func (in *InputSimulator) ReleaseKey(key string) {
	robotgo.KeyToggle(key, "up")
	LogDebug("Key up: %s", key)
}

// Move holds the movement key for a direction over the given duration.
// Unknown directions are ignored.
func (in *InputSimulator) Move(direction string, duration time.Duration) {
	key, ok := directionKeys[strings.ToLower(direction)]
	if !ok {
		LogWarn("Unknown movement direction: %s", direction)
		return
	}
	in.PressKey(key, duration)
}

// Click moves the pointer and clicks. button is "left" or "right".
func (in *InputSimulator) Click(x, y int, button string) {
	in.humanDelay()
	if button == "" {
		button = "left"
	}
	robotgo.Move(x, y)
	robotgo.Click(button)
	LogDebug("Click %s at (%d, %d)", button, x, y)
}

// TypeText types a string character by character.
func (in *InputSimulator) TypeText(text string) {
	in.humanDelay()
	robotgo.TypeStr(text)
	LogDebug("Typed %d characters", len(text))
}

// PressSequence taps a list of keys in order with a gap between taps.
func (in *InputSimulator) PressSequence(keys []string, gap time.Duration) {
	for _, key := range keys {
		in.PressKey(key, 0)
		time.Sleep(gap)
	}
}
