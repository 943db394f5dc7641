package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateTeamFromHUDNormalizesAndCaps(t *testing.T) {
	tm := NewTeamManager("")
	tm.UpdateTeamFromHUD([]string{" Pikachu ", "EEVEE", "a", "b", "c", "d", "seventh"})

	team := tm.CurrentTeam()
	assert.Len(t, team, 6)
	assert.Equal(t, "pikachu", team[0])
	assert.Equal(t, "eevee", team[1])
}

func TestCurrentTeamReturnsCopy(t *testing.T) {
	tm := NewTeamManager("")
	tm.UpdateTeamFromHUD([]string{"pikachu"})

	team := tm.CurrentTeam()
	team[0] = "mutated"
	assert.Equal(t, "pikachu", tm.CurrentTeam()[0])
}

func TestUpdatePokemonMovesPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moves.json")

	tm := NewTeamManager(path)
	tm.UpdatePokemonMoves("Pikachu", []string{"thunderbolt", "quick attack"})

	reloaded := NewTeamManager(path)
	assert.Equal(t, []string{"thunderbolt", "quick attack"}, reloaded.MovesFor("pikachu"))
}

func TestUpdatePokemonMovesIgnoresEmptyInput(t *testing.T) {
	tm := NewTeamManager("")
	tm.UpdatePokemonMoves("", []string{"tackle"})
	tm.UpdatePokemonMoves("pikachu", nil)
	assert.Nil(t, tm.MovesFor("pikachu"))
}

func TestMovesForUnknownIsNil(t *testing.T) {
	tm := NewTeamManager("")
	assert.Nil(t, tm.MovesFor("mew"))
}
