// Package main - strategy.go
//
// This file implements the battle decision layer. A strategy takes the
// extracted battle info and returns one action label:
//
//   attack_1 .. attack_4, switch, item, run
//
// Two families exist:
//
// ThresholdStrategy decides purely on HP percentages, with three moods:
//   - aggressive: switch below 15%, otherwise hit hard
//   - defensive:  switch below 30%, item below 60%, otherwise attack
//   - balanced:   switch below 20% (strictly below, 20% holds the line),
//     then pick the attack tier by the enemy's remaining HP
//
// TypeMatchupStrategy looks the opponent up in the Pokedex, scores each
// configured move slot's elemental type against the opponent's types,
// and picks the strictly highest scorer (first seen wins ties). When
// every slot scores exactly zero the opponent is immune to everything we
// carry and the strategy switches out. An unknown opponent scores
// neutral everywhere, which lands on attack_1.
//
// Missing HP readings are treated as full bars: acting on a guess beats
// standing still when OCR blinks.
package main

// Battle action labels.
const (
	ActionAttack1 = "attack_1"
	ActionAttack2 = "attack_2"
	ActionAttack3 = "attack_3"
	ActionAttack4 = "attack_4"
	ActionSwitch  = "switch"
	ActionItem    = "item"
	ActionRun     = "run"
)

// attackSlots orders the configurable move slots.
var attackSlots = []string{ActionAttack1, ActionAttack2, ActionAttack3, ActionAttack4}

// BattleStrategy chooses the next battle action.
type BattleStrategy interface {
	ChooseAction(info BattleInfo) string
	Name() string
}

// ThresholdStrategy decides on HP percentages alone.
type ThresholdStrategy struct {
	mode string
}

// NewThresholdStrategy creates a threshold strategy. Unrecognized modes
// behave as balanced.
func NewThresholdStrategy(mode string) *ThresholdStrategy {
	return &ThresholdStrategy{mode: mode}
}

// Name returns the strategy mode.
func (s *ThresholdStrategy) Name() string { return s.mode }

// ChooseAction picks an action from the HP situation.
func (s *ThresholdStrategy) ChooseAction(info BattleInfo) string {
	myHP := info.MyHP.Percent()
	enemyHP := info.EnemyHP.Percent()

	switch s.mode {
	case "aggressive":
		if myHP < 15 {
			return ActionSwitch
		}
		if enemyHP > 50 {
			return ActionAttack1
		}
		return ActionAttack2

	case "defensive":
		if myHP < 30 {
			return ActionSwitch
		}
		if myHP < 60 {
			return ActionItem
		}
		return ActionAttack1

	default: // balanced
		if myHP < 20 {
			return ActionSwitch
		}
		if enemyHP > 70 {
			return ActionAttack1
		}
		if enemyHP > 30 {
			return ActionAttack2
		}
		return ActionAttack3
	}
}

// TypeMatchupStrategy scores move slots against the opponent's types.
type TypeMatchupStrategy struct {
	pokedex   *Pokedex
	moveTypes map[string]string
}

// NewTypeMatchupStrategy creates a matchup strategy. moveTypes maps slot
// labels (attack_1..attack_4) to elemental types.
func NewTypeMatchupStrategy(pokedex *Pokedex, moveTypes map[string]string) *TypeMatchupStrategy {
	return &TypeMatchupStrategy{
		pokedex:   pokedex,
		moveTypes: moveTypes,
	}
}

// Name identifies the strategy.
func (s *TypeMatchupStrategy) Name() string { return "type_matchup" }

// ChooseAction scores each slot against the opponent. Low own HP still
// takes priority over pressing the matchup.
func (s *TypeMatchupStrategy) ChooseAction(info BattleInfo) string {
	if info.MyHP.Percent() < 20 {
		return ActionSwitch
	}

	defenderTypes := s.pokedex.Types(info.EnemyPokemon)
	action, ok := bestSlotByMatchup(s.moveTypes, defenderTypes)
	if !ok {
		LogDebug("All move slots ineffective against %s, switching", info.EnemyPokemon)
		return ActionSwitch
	}
	return action
}

// bestSlotByMatchup returns the slot whose move type scores highest
// against the defender's types. The first slot holding the maximum wins
// ties. ok is false only when every configured slot scores exactly zero.
func bestSlotByMatchup(moveTypes map[string]string, defenderTypes []string) (string, bool) {
	best := ActionAttack1
	bestScore := -1.0
	configured := 0

	for _, slot := range attackSlots {
		moveType, ok := moveTypes[slot]
		if !ok || moveType == "" {
			continue
		}
		configured++
		score := CalculateTypeAdvantage([]string{moveType}, defenderTypes)
		if score > bestScore {
			best = slot
			bestScore = score
		}
	}

	if configured == 0 {
		// Nothing configured; neutral default.
		return ActionAttack1, true
	}
	if bestScore == 0.0 {
		return "", false
	}
	return best, true
}

// NewBattleStrategy builds the configured strategy.
func NewBattleStrategy(cfg BattleConfig, pokedex *Pokedex) BattleStrategy {
	switch cfg.Strategy {
	case "type_matchup":
		return NewTypeMatchupStrategy(pokedex, cfg.MoveTypes)
	default:
		return NewThresholdStrategy(cfg.Strategy)
	}
}
