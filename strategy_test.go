package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func hp(current, max int) HPReading {
	return HPReading{Current: current, Max: max, Found: true}
}

func TestThresholdStrategyAggressive(t *testing.T) {
	s := NewThresholdStrategy("aggressive")

	assert.Equal(t, ActionSwitch, s.ChooseAction(BattleInfo{MyHP: hp(14, 100), EnemyHP: hp(90, 100)}))
	assert.Equal(t, ActionAttack1, s.ChooseAction(BattleInfo{MyHP: hp(80, 100), EnemyHP: hp(51, 100)}))
	assert.Equal(t, ActionAttack2, s.ChooseAction(BattleInfo{MyHP: hp(80, 100), EnemyHP: hp(50, 100)}))
}

func TestThresholdStrategyDefensive(t *testing.T) {
	s := NewThresholdStrategy("defensive")

	assert.Equal(t, ActionSwitch, s.ChooseAction(BattleInfo{MyHP: hp(29, 100), EnemyHP: hp(50, 100)}))
	assert.Equal(t, ActionItem, s.ChooseAction(BattleInfo{MyHP: hp(59, 100), EnemyHP: hp(50, 100)}))
	assert.Equal(t, ActionAttack1, s.ChooseAction(BattleInfo{MyHP: hp(60, 100), EnemyHP: hp(50, 100)}))
}

func TestThresholdStrategyBalanced(t *testing.T) {
	s := NewThresholdStrategy("balanced")

	// 20% holds the line: only strictly below switches.
	assert.Equal(t, ActionAttack3, s.ChooseAction(BattleInfo{MyHP: hp(20, 100), EnemyHP: hp(10, 100)}))
	assert.Equal(t, ActionSwitch, s.ChooseAction(BattleInfo{MyHP: hp(19, 100), EnemyHP: hp(10, 100)}))

	assert.Equal(t, ActionAttack1, s.ChooseAction(BattleInfo{MyHP: hp(90, 100), EnemyHP: hp(71, 100)}))
	assert.Equal(t, ActionAttack2, s.ChooseAction(BattleInfo{MyHP: hp(90, 100), EnemyHP: hp(70, 100)}))
	assert.Equal(t, ActionAttack3, s.ChooseAction(BattleInfo{MyHP: hp(90, 100), EnemyHP: hp(30, 100)}))
}

func TestThresholdStrategyMissingReadingsActAsFull(t *testing.T) {
	s := NewThresholdStrategy("balanced")
	// Nothing read from the screen: both bars count as 100%.
	assert.Equal(t, ActionAttack1, s.ChooseAction(BattleInfo{}))
}

func TestTypeMatchupPicksBestSlot(t *testing.T) {
	dex := NewPokedex("", nil) // seeded defaults only
	s := NewTypeMatchupStrategy(dex, map[string]string{
		ActionAttack1: "water",
		ActionAttack2: "normal",
	})

	// Charizard is fire/flying: water scores 2.0, normal 1.0.
	info := BattleInfo{MyHP: hp(80, 100), EnemyHP: hp(80, 100), EnemyPokemon: "charizard"}
	assert.Equal(t, ActionAttack1, s.ChooseAction(info))
}

func TestTypeMatchupFirstSlotWinsTies(t *testing.T) {
	dex := NewPokedex("", nil)
	s := NewTypeMatchupStrategy(dex, map[string]string{
		ActionAttack1: "normal",
		ActionAttack2: "fighting",
	})

	// Against blastoise (water) both score 1.0; the first slot wins.
	info := BattleInfo{MyHP: hp(80, 100), EnemyHP: hp(80, 100), EnemyPokemon: "blastoise"}
	assert.Equal(t, ActionAttack1, s.ChooseAction(info))
}

func TestTypeMatchupSwitchesWhenEverySlotIsImmune(t *testing.T) {
	dex := NewPokedex("", nil)
	dex.Add("gastly", PokemonInfo{Name: "Gastly", Types: []string{"ghost"}})

	s := NewTypeMatchupStrategy(dex, map[string]string{
		ActionAttack1: "normal",
	})
	info := BattleInfo{MyHP: hp(80, 100), EnemyHP: hp(80, 100), EnemyPokemon: "gastly"}
	assert.Equal(t, ActionSwitch, s.ChooseAction(info))
}

func TestTypeMatchupUnknownEnemyIsNeutral(t *testing.T) {
	dex := NewPokedex("", nil)
	s := NewTypeMatchupStrategy(dex, map[string]string{
		ActionAttack1: "water",
		ActionAttack2: "fire",
	})
	info := BattleInfo{MyHP: hp(80, 100), EnemyHP: hp(80, 100), EnemyPokemon: "missingno"}
	assert.Equal(t, ActionAttack1, s.ChooseAction(info))
}

func TestTypeMatchupLowHPSwitchesFirst(t *testing.T) {
	dex := NewPokedex("", nil)
	s := NewTypeMatchupStrategy(dex, map[string]string{ActionAttack1: "water"})
	info := BattleInfo{MyHP: hp(10, 100), EnemyHP: hp(80, 100), EnemyPokemon: "charizard"}
	assert.Equal(t, ActionSwitch, s.ChooseAction(info))
}

func TestBestSlotByMatchupNoConfiguredSlots(t *testing.T) {
	action, ok := bestSlotByMatchup(map[string]string{}, []string{"fire"})
	assert.True(t, ok)
	assert.Equal(t, ActionAttack1, action)
}

func TestNewBattleStrategySelection(t *testing.T) {
	dex := NewPokedex("", nil)

	s := NewBattleStrategy(BattleConfig{Strategy: "type_matchup"}, dex)
	assert.Equal(t, "type_matchup", s.Name())

	s = NewBattleStrategy(BattleConfig{Strategy: "aggressive"}, dex)
	assert.Equal(t, "aggressive", s.Name())
}
