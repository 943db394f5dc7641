package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDataSeedsPalletTown(t *testing.T) {
	md := NewMapData("")

	info, ok := md.MapInfo("pallet_town")
	require.True(t, ok)
	assert.Equal(t, "Pallet Town", info.Name)
	assert.Len(t, info.SpawnPoints, 2)
	assert.Len(t, info.PokemonCenters, 1)
}

func TestMapDataCurrentMap(t *testing.T) {
	md := NewMapData("")

	// No current map set: empty-name lookups find nothing.
	assert.Nil(t, md.SpawnPoints(""))

	md.SetCurrentMap("pallet_town")
	assert.Len(t, md.SpawnPoints(""), 2)
	assert.Len(t, md.PokemonCenters(""), 1)
}

func TestMapDataUnknownMap(t *testing.T) {
	md := NewMapData("")
	_, ok := md.MapInfo("saffron_city")
	assert.False(t, ok)
	assert.Nil(t, md.SpawnPoints("saffron_city"))

	// Setting an unknown map leaves the current map untouched.
	md.SetCurrentMap("pallet_town")
	md.SetCurrentMap("saffron_city")
	assert.Len(t, md.SpawnPoints(""), 2)
}

func TestMapDataPersistsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maps.json")

	NewMapData(path)
	reloaded := NewMapData(path)

	_, ok := reloaded.MapInfo("Pallet_Town")
	assert.True(t, ok)
}
