// Package main - battle.go
//
// This file executes battle turns. The controller asks the strategy for
// an action, translates it to a hotkey, and presses it, subject to two
// guards:
//
//   - a cooldown between actions, so turns are not spammed faster than
//     the game animates them
//   - a cap on consecutive actions without the battle ending, which
//     breaks out of stuck battles by running away
//
// Before every press the controller re-reads the screen: if the battle
// ended between the decision and the press, the press is dropped.
package main

import (
	"time"

	"gocv.io/x/gocv"
)

// actionKeys maps strategy action labels to battle hotkeys.
var actionKeys = map[string]string{
	ActionAttack1: "1",
	ActionAttack2: "2",
	ActionAttack3: "3",
	ActionAttack4: "4",
	ActionSwitch:  "s",
	ActionItem:    "i",
	ActionRun:     "r",
}

// maxConsecutiveActions caps actions inside one battle before bailing.
const maxConsecutiveActions = 10

// BattleController drives battles from detection to key press.
type BattleController struct {
	capture  *ScreenCapture
	detector *GameStateDetector
	input    *InputSimulator
	strategy BattleStrategy
	team     *TeamManager
	stats    *Statistics

	cooldown        time.Duration
	lastAction      time.Time
	actionsInBattle int
}

// NewBattleController wires the battle execution pipeline.
func NewBattleController(capture *ScreenCapture, detector *GameStateDetector, input *InputSimulator, strategy BattleStrategy, team *TeamManager, stats *Statistics, cfg BattleConfig) *BattleController {
	return &BattleController{
		capture:  capture,
		detector: detector,
		input:    input,
		strategy: strategy,
		team:     team,
		stats:    stats,
		cooldown: time.Duration(cfg.ActionCooldown * float64(time.Second)),
	}
}

// SetStrategy swaps the decision strategy at runtime.
func (bc *BattleController) SetStrategy(strategy BattleStrategy) {
	bc.strategy = strategy
	LogInfo("Battle strategy set to %s", strategy.Name())
}

// HandleBattle runs one battle turn from the given state info.
func (bc *BattleController) HandleBattle(info StateInfo) error {
	if time.Since(bc.lastAction) < bc.cooldown {
		return nil
	}

	if bc.actionsInBattle >= maxConsecutiveActions {
		LogWarn("Battle ran %d actions without ending, running away", bc.actionsInBattle)
		bc.pressAction(ActionRun)
		bc.actionsInBattle = 0
		return nil
	}

	battle := BattleInfo{}
	if info.Battle != nil {
		battle = *info.Battle
	}

	action := bc.strategy.ChooseAction(battle)
	LogInfo("Battle turn: my HP %s, enemy %s (%s), action %s",
		battle.MyHP.String(), battle.EnemyPokemon, battle.EnemyHP.String(), action)

	// Re-check the screen; the battle may have ended mid-decision.
	frame, err := bc.capture.CaptureMat()
	if err != nil {
		return err
	}
	defer frame.Close()
	if bc.detector.DetectState(frame) != GameStateInBattle {
		LogDebug("Battle ended before action %s, dropping press", action)
		bc.actionsInBattle = 0
		return nil
	}

	bc.learnMoves(frame, battle.MyPokemon)
	bc.pressAction(action)
	bc.actionsInBattle++
	return nil
}

// pressAction maps an action label to its hotkey and presses it.
func (bc *BattleController) pressAction(action string) {
	key, ok := actionKeys[action]
	if !ok {
		LogWarn("Unknown battle action: %s", action)
		return
	}
	bc.input.PressKey(key, 0)
	bc.lastAction = time.Now()
}

// learnMoves reads the attack button labels and records them for the
// active Pokemon. Best effort; bad OCR is simply skipped.
func (bc *BattleController) learnMoves(frame gocv.Mat, pokemonName string) {
	if bc.team == nil || pokemonName == "" {
		return
	}
	moveBar := FracRegion(frame.Cols(), frame.Rows(), 0.2, 0.8, 0.6, 0.2)
	crop := ExtractRegion(frame, moveBar)
	defer crop.Close()
	words := bc.detector.ocr.ExtractWords(crop)
	if len(words) == 0 {
		return
	}
	moves := make([]string, 0, 4)
	for _, w := range words {
		if len(w.Text) >= 3 && len(moves) < 4 {
			moves = append(moves, w.Text)
		}
	}
	if len(moves) > 0 {
		bc.team.UpdatePokemonMoves(pokemonName, moves)
	}
}

// BattleEnded marks the end of a battle and records it. won reports the
// best guess of the outcome.
func (bc *BattleController) BattleEnded(won bool) {
	bc.actionsInBattle = 0
	if bc.stats != nil {
		bc.stats.AddBattle()
	}
	LogInfo("Battle ended (won=%v)", won)
}

// WaitForBattleEnd polls until the screen leaves the battle state or the
// timeout expires. Returns true when the battle ended in time.
func (bc *BattleController) WaitForBattleEnd(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		frame, err := bc.capture.CaptureMat()
		if err != nil {
			time.Sleep(500 * time.Millisecond)
			continue
		}
		state := bc.detector.DetectState(frame)
		frame.Close()
		if state != GameStateInBattle {
			return true
		}
		time.Sleep(500 * time.Millisecond)
	}
	return false
}
