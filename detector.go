// Package main - detector.go
//
// This file implements the game state classifier. Each frame runs through
// an ordered cascade of heuristics; the first one that fires decides the
// state, and Exploring is the fallthrough.
//
// Cascade Order:
//   1. Battle (temporal confirmation, see below)
//   2. Wild encounter (extension point, currently never fires)
//   3. Dialog (edge density over the bottom of the frame)
//   4. Menu (large square-ish contour)
//   5. Inventory (reuses the menu heuristic)
//   6. Exploring (default)
//
// Battle Heuristics (any one is a hit for the frame):
//   - Big saturated red mass where the Fight button sits
//   - Any strongly colored action button in the tighter button strip
//   - "Lv"/"Level" text in a HUD corner together with green HP mass
//   - At least two battle button labels read off the bottom bar
//
// Temporal Confirmation:
// A single frame never flips the classifier into InBattle. The hit must
// repeat for a configurable number of consecutive frames; one miss resets
// the counter. Grass, signage and other transient red shapes stop causing
// battle flicker this way.
package main

import (
	"strings"
	"time"

	"gocv.io/x/gocv"
)

// DetectorTuning holds every threshold of the classifier cascade.
type DetectorTuning struct {
	// Fight button probe (lower center).
	FightButtonRedMass float64
	// Button strip probe, one hit is enough.
	ButtonStripMass float64
	// Green HP mass per HUD corner region.
	HPGreenMass float64
	// Dialog edge density over the bottom of the frame.
	DialogEdgeDensity float64
	// Menu contour area floor and aspect band.
	MenuMinArea   float64
	MenuMinAspect float64
	MenuMaxAspect float64
	// Battle keyword count needed on the bottom bar.
	BattleKeywordCount int
	// Consecutive qualifying frames before InBattle is reported.
	ConfirmationFrames int
}

// DefaultDetectorTuning returns the thresholds the heuristics were tuned
// with at 1920x1080.
func DefaultDetectorTuning() DetectorTuning {
	return DetectorTuning{
		FightButtonRedMass: 5000,
		ButtonStripMass:    1500,
		HPGreenMass:        2000,
		DialogEdgeDensity:  0.1,
		MenuMinArea:        10000,
		MenuMinAspect:      0.5,
		MenuMaxAspect:      2.0,
		BattleKeywordCount: 2,
		ConfirmationFrames: 2,
	}
}

// battleConfirmation counts consecutive battle-positive frames.
type battleConfirmation struct {
	counter   int
	threshold int
}

func newBattleConfirmation(threshold int) *battleConfirmation {
	if threshold <= 0 {
		threshold = 2
	}
	return &battleConfirmation{threshold: threshold}
}

// Observe feeds one frame's battle signal and reports whether the battle
// is confirmed. Any miss resets the streak.
func (bc *battleConfirmation) Observe(hit bool) bool {
	if hit {
		bc.counter++
	} else {
		bc.counter = 0
	}
	return bc.counter >= bc.threshold
}

var battleKeywords = []string{"fight", "pokemon", "pokémon", "items", "run"}

// GameStateDetector classifies frames into game states.
type GameStateDetector struct {
	ocr          *OCREngine
	tuning       DetectorTuning
	confirmation *battleConfirmation
	currentState GameState
}

// NewGameStateDetector creates a detector with the given OCR engine and
// tuning.
func NewGameStateDetector(ocr *OCREngine, tuning DetectorTuning) *GameStateDetector {
	return &GameStateDetector{
		ocr:          ocr,
		tuning:       tuning,
		confirmation: newBattleConfirmation(tuning.ConfirmationFrames),
		currentState: GameStateUnknown,
	}
}

// CurrentState returns the last classified state.
func (d *GameStateDetector) CurrentState() GameState {
	return d.currentState
}

// DetectState classifies one frame.
func (d *GameStateDetector) DetectState(frame gocv.Mat) GameState {
	if frame.Empty() {
		d.currentState = GameStateUnknown
		return GameStateUnknown
	}

	if d.confirmation.Observe(d.battleSignal(frame)) {
		d.currentState = GameStateInBattle
		return GameStateInBattle
	}

	if d.isPokemonEncounter(frame) {
		d.currentState = GameStatePokemonEncounter
		return GameStatePokemonEncounter
	}

	if d.isDialog(frame) {
		d.currentState = GameStateDialog
		return GameStateDialog
	}

	if d.isMenu(frame) {
		d.currentState = GameStateMenu
		return GameStateMenu
	}

	if d.isInventory(frame) {
		d.currentState = GameStateInventory
		return GameStateInventory
	}

	d.currentState = GameStateExploring
	return GameStateExploring
}

// battleSignal runs the battle heuristics on a single frame.
func (d *GameStateDetector) battleSignal(frame gocv.Mat) bool {
	width, height := frame.Cols(), frame.Rows()

	// Big red Fight button in the lower center.
	fightRegion := FracRegion(width, height, 0.4, 0.75, 0.2, 0.15)
	fight := ExtractRegion(frame, fightRegion)
	if !fight.Empty() {
		hsv := ToHSV(fight)
		mass := redMass(hsv, 100, 100)
		hsv.Close()
		fight.Close()
		if mass > d.tuning.FightButtonRedMass {
			LogDebug("Fight button detected (red mass %.0f)", mass)
			return true
		}
	} else {
		fight.Close()
	}

	// Green HP bars in the HUD corners. Not a proof on their own, the
	// player HUD also shows bars outside battle, but combined with a
	// level label they are.
	hpHits := 0
	for _, r := range []Region{
		FracRegion(width, height, 0, 0, 0.3, 0.15),
		FracRegion(width, height, 0.65, 0.75, 0.35, 0.25),
	} {
		crop := ExtractRegion(frame, r)
		if crop.Empty() {
			crop.Close()
			continue
		}
		hsv := ToHSV(crop)
		mass := colorMass(hsv, hsvGreen)
		hsv.Close()
		crop.Close()
		if mass > d.tuning.HPGreenMass {
			hpHits++
		}
	}

	// At least one strongly colored action button in the tight strip.
	strip := ExtractRegion(frame, FracRegion(width, height, 0.35, 0.82, 0.3, 0.13))
	if !strip.Empty() {
		hsv := ToHSV(strip)
		red := redMass(hsv, 120, 80)
		blue := colorMass(hsv, hsvBlue)
		yellow := colorMass(hsv, hsvYellow)
		green := colorMass(hsv, hsvGreen)
		hsv.Close()
		strip.Close()
		limit := d.tuning.ButtonStripMass
		if red > limit || blue > limit || yellow > limit || green > limit {
			LogDebug("Action button colors detected (r=%.0f b=%.0f y=%.0f g=%.0f)", red, blue, yellow, green)
			return true
		}
	} else {
		strip.Close()
	}

	// Level labels in the HUD corners, confirmed by a green HP mass.
	levelHits := 0
	for _, r := range []Region{
		FracRegion(width, height, 0, 0.1, 0.3, 0.05),
		FracRegion(width, height, 0.65, 0.75, 0.3, 0.1),
	} {
		text := strings.ToLower(d.ocr.ExtractText(frame, r))
		if strings.Contains(text, "lv") || strings.Contains(text, "level") {
			levelHits++
		}
	}
	if levelHits >= 1 && hpHits >= 1 {
		LogDebug("Level labels and HP bars detected")
		return true
	}

	// Battle button labels on the bottom bar.
	barText := strings.ToLower(d.ocr.ExtractText(frame, FracRegion(width, height, 0.2, 0.8, 0.6, 0.2)))
	if barText != "" {
		count := 0
		for _, kw := range battleKeywords {
			if strings.Contains(barText, kw) {
				count++
			}
		}
		if count >= d.tuning.BattleKeywordCount {
			LogDebug("Battle keywords detected (%d): %.50s", count, barText)
			return true
		}
	}

	return false
}

// isPokemonEncounter detects the wild encounter intro screen. The intro
// animation has no stable color signature yet; template matching against
// captured frames is the planned approach.
func (d *GameStateDetector) isPokemonEncounter(frame gocv.Mat) bool {
	return false
}

// isDialog detects a text box over the bottom of the frame via edge
// density.
func (d *GameStateDetector) isDialog(frame gocv.Mat) bool {
	width, height := frame.Cols(), frame.Rows()
	bottom := ExtractRegion(frame, FracRegion(width, height, 0, 0.7, 1.0, 0.3))
	defer bottom.Close()
	if bottom.Empty() {
		return false
	}
	return EdgeDensity(bottom) > d.tuning.DialogEdgeDensity
}

// isMenu detects a large square-ish panel contour.
func (d *GameStateDetector) isMenu(frame gocv.Mat) bool {
	boxes := EdgeBoxes(frame, d.tuning.MenuMinArea, d.tuning.MenuMinAspect, d.tuning.MenuMaxAspect)
	return len(boxes) > 0
}

// isInventory has no signature distinct from a generic menu yet.
func (d *GameStateDetector) isInventory(frame gocv.Mat) bool {
	return d.isMenu(frame)
}

// GetStateInfo classifies a frame and bundles the per-state extraction.
func (d *GameStateDetector) GetStateInfo(frame gocv.Mat) StateInfo {
	state := d.DetectState(frame)
	info := StateInfo{State: state, Timestamp: time.Now()}
	switch state {
	case GameStateInBattle:
		battle := d.ExtractBattleInfo(frame)
		info.Battle = &battle
	case GameStatePokemonEncounter:
		enc := d.ExtractEncounterInfo(frame)
		info.Encounter = &enc
	}
	return info
}

// ExtractBattleInfo reads both HP bars off a battle frame.
func (d *GameStateDetector) ExtractBattleInfo(frame gocv.Mat) BattleInfo {
	width, height := frame.Cols(), frame.Rows()
	return BattleInfo{
		MyHP:    d.ocr.ExtractHPInfo(frame, FracRegion(width, height, 0.1, 0.7, 0.3, 0.1)),
		EnemyHP: d.ocr.ExtractHPInfo(frame, FracRegion(width, height, 0.6, 0.1, 0.3, 0.1)),
	}
}

// ExtractEncounterInfo reads the wild Pokemon name and level.
func (d *GameStateDetector) ExtractEncounterInfo(frame gocv.Mat) EncounterInfo {
	width, height := frame.Cols(), frame.Rows()
	name := d.ocr.ExtractText(frame, FracRegion(width, height, 0.3, 0.3, 0.4, 0.1))
	level, _ := d.ocr.ExtractNumbers(frame, FracRegion(width, height, 0.6, 0.3, 0.2, 0.1))
	return EncounterInfo{
		PokemonName: strings.TrimSpace(name),
		Level:       level,
	}
}
