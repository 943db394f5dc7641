// Package main - capturectl.go
//
// This file handles wild encounters. When an encounter screen shows a
// Pokemon on the preferred list (or the list is empty), the controller
// throws a ball with the space-then-enter sequence; otherwise it runs.
package main

import (
	"strings"
	"time"
)

// CaptureController decides whether to catch or flee an encounter.
type CaptureController struct {
	input     *InputSimulator
	stats     *Statistics
	preferred map[string]bool
	cooldown  time.Duration
	lastThrow time.Time
}

// NewCaptureController builds the controller from the capture settings.
func NewCaptureController(input *InputSimulator, stats *Statistics, cfg CaptureConfig) *CaptureController {
	preferred := make(map[string]bool, len(cfg.PreferredPokemon))
	for _, name := range cfg.PreferredPokemon {
		preferred[strings.ToLower(strings.TrimSpace(name))] = true
	}
	return &CaptureController{
		input:     input,
		stats:     stats,
		preferred: preferred,
		cooldown:  2 * time.Second,
	}
}

// WantsPokemon reports whether the encountered Pokemon is worth a ball.
// An empty preferred list means catch everything.
func (cc *CaptureController) WantsPokemon(name string) bool {
	if len(cc.preferred) == 0 {
		return true
	}
	return cc.preferred[strings.ToLower(strings.TrimSpace(name))]
}

// HandleEncounter runs one capture decision for the encounter screen.
func (cc *CaptureController) HandleEncounter(info StateInfo) error {
	if time.Since(cc.lastThrow) < cc.cooldown {
		return nil
	}

	name := ""
	if info.Encounter != nil {
		name = info.Encounter.PokemonName
	}

	if !cc.WantsPokemon(name) {
		LogInfo("Skipping encounter with %s, running", name)
		cc.input.PressKey("r", 0)
		cc.lastThrow = time.Now()
		return nil
	}

	LogInfo("Throwing ball at %s", name)
	cc.input.PressKey("space", 0)
	time.Sleep(500 * time.Millisecond)
	cc.input.PressKey("enter", 0)
	cc.lastThrow = time.Now()
	if cc.stats != nil {
		cc.stats.AddCaptureAttempt()
	}
	return nil
}
