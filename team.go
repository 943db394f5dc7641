// Package main - team.go
//
// This file tracks the player's party and what moves each Pokemon is
// known to carry. The current team list is volatile and rebuilt from HUD
// OCR every time it is read; the move table is persistent and updated
// opportunistically from the attack buttons seen during battles.
package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TeamManager tracks the active party and known move sets.
type TeamManager struct {
	movesPath   string
	currentTeam []string
	knownMoves  map[string][]string
	mu          sync.RWMutex
}

// NewTeamManager loads the persistent move table from movesPath.
func NewTeamManager(movesPath string) *TeamManager {
	tm := &TeamManager{
		movesPath:  movesPath,
		knownMoves: make(map[string][]string),
	}
	tm.loadMoves()
	return tm
}

func (tm *TeamManager) loadMoves() {
	data, err := os.ReadFile(tm.movesPath)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, &tm.knownMoves); err != nil {
		LogError("Known moves file unreadable: %v", err)
	}
}

func (tm *TeamManager) saveMoves() {
	if tm.movesPath == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(tm.movesPath), 0o755); err != nil {
		LogError("Create moves directory: %v", err)
		return
	}
	data, err := json.MarshalIndent(tm.knownMoves, "", "  ")
	if err != nil {
		LogError("Encode known moves: %v", err)
		return
	}
	if err := os.WriteFile(tm.movesPath, data, 0o644); err != nil {
		LogError("Write known moves: %v", err)
	}
}

// UpdateTeamFromHUD replaces the current team with names read off the
// party HUD. Only the first six entries count.
func (tm *TeamManager) UpdateTeamFromHUD(names []string) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.currentTeam = tm.currentTeam[:0]
	for i, name := range names {
		if i >= 6 {
			break
		}
		tm.currentTeam = append(tm.currentTeam, strings.ToLower(strings.TrimSpace(name)))
	}
}

// CurrentTeam returns a copy of the active party names.
func (tm *TeamManager) CurrentTeam() []string {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	out := make([]string, len(tm.currentTeam))
	copy(out, tm.currentTeam)
	return out
}

// UpdatePokemonMoves records the moves seen on the battle buttons for a
// Pokemon, persisting when the set changed.
func (tm *TeamManager) UpdatePokemonMoves(pokemonName string, moves []string) {
	key := strings.ToLower(strings.TrimSpace(pokemonName))
	if key == "" || len(moves) == 0 {
		return
	}
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if existing, ok := tm.knownMoves[key]; ok && equalStrings(existing, moves) {
		return
	}
	tm.knownMoves[key] = append([]string(nil), moves...)
	tm.saveMoves()
	LogInfo("Moves updated for %s: %v", key, moves)
}

// MovesFor returns the known moves of a Pokemon, or nil.
func (tm *TeamManager) MovesFor(pokemonName string) []string {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	moves := tm.knownMoves[strings.ToLower(strings.TrimSpace(pokemonName))]
	if moves == nil {
		return nil
	}
	return append([]string(nil), moves...)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
