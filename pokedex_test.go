package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	entries map[string]PokemonInfo
	calls   int
}

func (f *stubFetcher) Fetch(name string) (PokemonInfo, error) {
	f.calls++
	info, ok := f.entries[name]
	if !ok {
		return PokemonInfo{}, errors.New("not found")
	}
	return info, nil
}

func TestPokedexSeedsDefaultsWithoutFile(t *testing.T) {
	dex := NewPokedex("", nil)

	info, ok := dex.Lookup("pikachu")
	require.True(t, ok)
	assert.Equal(t, []string{"electric"}, info.Types)
	assert.Equal(t, 35, info.BaseStats.HP)
}

func TestPokedexLookupIsCaseInsensitive(t *testing.T) {
	dex := NewPokedex("", nil)
	_, ok := dex.Lookup("  Charizard ")
	assert.True(t, ok)
}

func TestPokedexFetchesOnMissAndCaches(t *testing.T) {
	fetcher := &stubFetcher{entries: map[string]PokemonInfo{
		"snorlax": {Name: "Snorlax", Types: []string{"normal"}},
	}}
	dex := NewPokedex(filepath.Join(t.TempDir(), "dex.json"), fetcher)

	info, ok := dex.Lookup("snorlax")
	require.True(t, ok)
	assert.Equal(t, []string{"normal"}, info.Types)
	assert.Equal(t, 1, fetcher.calls)

	// Second lookup comes from the cache.
	_, ok = dex.Lookup("snorlax")
	assert.True(t, ok)
	assert.Equal(t, 1, fetcher.calls)
}

func TestPokedexWritesFetchedEntriesBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dex.json")
	fetcher := &stubFetcher{entries: map[string]PokemonInfo{
		"snorlax": {Name: "Snorlax", Types: []string{"normal"}},
	}}

	dex := NewPokedex(path, fetcher)
	_, ok := dex.Lookup("snorlax")
	require.True(t, ok)

	// A fresh Pokedex without a fetcher still knows the entry.
	reloaded := NewPokedex(path, nil)
	info, ok := reloaded.Lookup("snorlax")
	require.True(t, ok)
	assert.Equal(t, "Snorlax", info.Name)
}

func TestPokedexFetchFailureIsNotFound(t *testing.T) {
	fetcher := &stubFetcher{}
	dex := NewPokedex("", fetcher)

	_, ok := dex.Lookup("missingno")
	assert.False(t, ok)

	// And the unknown species stays neutral for battle math.
	assert.Nil(t, dex.Types("missingno"))
}

func TestPokedexEmptyNameIsNotFound(t *testing.T) {
	dex := NewPokedex("", nil)
	_, ok := dex.Lookup("   ")
	assert.False(t, ok)
}

func TestPokedexAdd(t *testing.T) {
	dex := NewPokedex("", nil)
	dex.Add("Mewtwo", PokemonInfo{Name: "Mewtwo", Types: []string{"psychic"}})
	assert.Equal(t, []string{"psychic"}, dex.Types("mewtwo"))
}
