package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWantsPokemonEmptyListCatchesEverything(t *testing.T) {
	cc := NewCaptureController(nil, nil, CaptureConfig{})
	assert.True(t, cc.WantsPokemon("rattata"))
	assert.True(t, cc.WantsPokemon(""))
}

func TestWantsPokemonFiltersByPreferredList(t *testing.T) {
	cc := NewCaptureController(nil, nil, CaptureConfig{
		PreferredPokemon: []string{"Pikachu", " Eevee "},
	})
	assert.True(t, cc.WantsPokemon("pikachu"))
	assert.True(t, cc.WantsPokemon("PIKACHU"))
	assert.True(t, cc.WantsPokemon("eevee"))
	assert.False(t, cc.WantsPokemon("rattata"))
	assert.False(t, cc.WantsPokemon(""))
}
