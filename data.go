// Package main - data.go
//
// This file defines core data structures used throughout the bot application.
// It provides geometric primitives, game and bot state enumerations, the
// perception result containers, and runtime statistics.
//
// Major Data Categories:
//
// 1. Geometric Types:
//    - Point: 2D screen coordinates with distance calculations
//    - Region: rectangles used to address parts of a captured frame
//
// 2. State Enumerations:
//    - GameState: what the classifier believes the screen shows
//    - BotState: the bot's internal behavior state
//
// 3. Perception Results:
//    - HPReading: a current/max pair extracted from an HP bar
//    - BattleInfo: both sides' HP plus recognized Pokemon names
//    - EncounterInfo: wild encounter name and level
//    - QuestInfo: title, objective and goto-button availability
//    - StateInfo: the per-frame bundle handed to the state machine
//
// 4. Statistics:
//    - Statistics: battle/capture counters and uptime
//
// Thread Safety:
// Statistics uses a mutex for concurrent access from the tray UI.
// All other types are value types and should be copied when shared.
package main

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// Point represents a 2D coordinate in screen space.
type Point struct {
	X int
	Y int
}

// NewPoint creates a new Point
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Distance calculates Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Region represents a rectangular area of a frame
type Region struct {
	X int // Top-left X coordinate
	Y int // Top-left Y coordinate
	W int // Width
	H int // Height
}

// NewRegion creates a new Region
func NewRegion(x, y, w, h int) Region {
	return Region{X: x, Y: y, W: w, H: h}
}

// FracRegion builds a Region from fractions of a frame size.
// Fractions address (x, y, w, h) relative to the full frame.
func FracRegion(width, height int, fx, fy, fw, fh float64) Region {
	return Region{
		X: int(float64(width) * fx),
		Y: int(float64(height) * fy),
		W: int(float64(width) * fw),
		H: int(float64(height) * fh),
	}
}

// Center returns the center point of the region
func (r Region) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Area returns the pixel area of the region
func (r Region) Area() int {
	return r.W * r.H
}

// Contains checks if a point is within the region
func (r Region) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

// ClampTo clips the region to a frame of the given size. Regions that fall
// entirely outside the frame collapse to an empty region.
func (r Region) ClampTo(width, height int) Region {
	x, y := r.X, r.Y
	if x < 0 {
		r.W += x
		x = 0
	}
	if y < 0 {
		r.H += y
		y = 0
	}
	w, h := r.W, r.H
	if x+w > width {
		w = width - x
	}
	if y+h > height {
		h = height - y
	}
	if w <= 0 || h <= 0 {
		return Region{}
	}
	return Region{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the region has no area
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// GameState represents what the classifier believes the screen shows
type GameState int

const (
	GameStateUnknown GameState = iota
	GameStateMenu
	GameStateExploring
	GameStateInBattle
	GameStatePokemonEncounter
	GameStateDialog
	GameStateInventory
	GameStatePokemonCenter
	GameStateShop
	GameStateLoading
)

// String returns the string representation of the state
func (s GameState) String() string {
	switch s {
	case GameStateUnknown:
		return "unknown"
	case GameStateMenu:
		return "menu"
	case GameStateExploring:
		return "exploring"
	case GameStateInBattle:
		return "in_battle"
	case GameStatePokemonEncounter:
		return "pokemon_encounter"
	case GameStateDialog:
		return "dialog"
	case GameStateInventory:
		return "inventory"
	case GameStatePokemonCenter:
		return "pokemon_center"
	case GameStateShop:
		return "shop"
	case GameStateLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// BotState represents the bot's internal behavior state
type BotState int

const (
	BotStateIdle BotState = iota
	BotStateExploring
	BotStateBattling
	BotStateCapturing
	BotStateNavigating
	BotStateWaiting
	BotStateError
)

// String returns the string representation of the state
func (s BotState) String() string {
	switch s {
	case BotStateIdle:
		return "idle"
	case BotStateExploring:
		return "exploring"
	case BotStateBattling:
		return "battling"
	case BotStateCapturing:
		return "capturing"
	case BotStateNavigating:
		return "navigating"
	case BotStateWaiting:
		return "waiting"
	case BotStateError:
		return "error"
	default:
		return "unknown"
	}
}

// HPReading is a current/max HP pair read from the screen. Found is false
// when the OCR text did not contain a recognizable fraction; callers
// substitute a full neutral bar before doing arithmetic.
type HPReading struct {
	Current int
	Max     int
	Found   bool
}

// Percent returns the HP percentage, defaulting to a full bar when the
// reading is absent or malformed.
func (h HPReading) Percent() float64 {
	if !h.Found || h.Max <= 0 {
		return 100
	}
	return float64(h.Current) / float64(h.Max) * 100
}

// String formats the reading for logs
func (h HPReading) String() string {
	if !h.Found {
		return "?/?"
	}
	return fmt.Sprintf("%d/%d", h.Current, h.Max)
}

// BattleInfo holds everything extracted from a battle screen
type BattleInfo struct {
	MyHP         HPReading
	EnemyHP      HPReading
	MyPokemon    string
	EnemyPokemon string
}

// EncounterInfo holds everything extracted from a wild encounter screen
type EncounterInfo struct {
	PokemonName string
	Level       int
}

// QuestInfo holds the parsed quest panel content
type QuestInfo struct {
	Title         string
	Objective     string
	HasGotoButton bool
}

// StateInfo is the per-frame bundle handed to the state machine handlers
type StateInfo struct {
	State     GameState
	Timestamp time.Time
	Battle    *BattleInfo
	Encounter *EncounterInfo
}

// Statistics holds runtime statistics
type Statistics struct {
	StartTime       time.Time
	BattleCount     int
	CaptureAttempts int
	LastBattleTime  time.Time
	mu              sync.RWMutex
}

// NewStatistics creates new statistics
func NewStatistics() *Statistics {
	return &Statistics{
		StartTime: time.Now(),
	}
}

// AddBattle records a battle action
func (s *Statistics) AddBattle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.BattleCount++
	s.LastBattleTime = time.Now()
}

// AddCaptureAttempt records a capture attempt
func (s *Statistics) AddCaptureAttempt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CaptureAttempts++
}

// BattlesPerHour calculates battles per hour since startup
func (s *Statistics) BattlesPerHour() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	elapsed := time.Since(s.StartTime).Hours()
	if elapsed <= 0 {
		return 0
	}
	return float64(s.BattleCount) / elapsed
}

// GetStats returns formatted statistics
func (s *Statistics) GetStats() (battles, captures int, bph float64, uptime string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	battles = s.BattleCount
	captures = s.CaptureAttempts
	elapsed := time.Since(s.StartTime)
	if h := elapsed.Hours(); h > 0 {
		bph = float64(s.BattleCount) / h
	}
	uptime = formatDuration(elapsed)
	return
}

// formatDuration formats a duration as H:MM:SS
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
