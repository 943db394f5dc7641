package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeChartIsAsymmetric(t *testing.T) {
	assert.Equal(t, 0.5, CalculateTypeAdvantage([]string{"fire"}, []string{"water"}))
	assert.Equal(t, 2.0, CalculateTypeAdvantage([]string{"water"}, []string{"fire"}))
}

func TestTypeAdvantageMultipliesAcrossTypes(t *testing.T) {
	// Water hits fire at 2.0 and ground at 2.0; the two stack.
	assert.Equal(t, 4.0, CalculateTypeAdvantage([]string{"water"}, []string{"fire", "ground"}))

	// A single immunity zeroes the whole product.
	assert.Equal(t, 0.0, CalculateTypeAdvantage([]string{"electric"}, []string{"water", "ground"}))
}

func TestTypeAdvantageUnlistedPairIsNeutral(t *testing.T) {
	assert.Equal(t, 1.0, CalculateTypeAdvantage([]string{"fire"}, []string{"normal"}))
	assert.Equal(t, 1.0, CalculateTypeAdvantage([]string{"dragon"}, []string{"fire"}))
}

func TestTypeAdvantageEmptySides(t *testing.T) {
	assert.Equal(t, 1.0, CalculateTypeAdvantage(nil, []string{"fire"}))
	assert.Equal(t, 1.0, CalculateTypeAdvantage([]string{"fire"}, nil))
	assert.Equal(t, 1.0, CalculateTypeAdvantage(nil, nil))
}

func TestTypeAdvantageCaseInsensitive(t *testing.T) {
	assert.Equal(t, 2.0, CalculateTypeAdvantage([]string{"Water"}, []string{"FIRE"}))
}

func TestEffectivenessPredicates(t *testing.T) {
	assert.True(t, IsSuperEffective([]string{"water"}, []string{"fire"}))
	assert.True(t, IsNotVeryEffective([]string{"fire"}, []string{"water"}))
	assert.True(t, HasNoEffect([]string{"normal"}, []string{"ghost"}))
	assert.False(t, IsSuperEffective([]string{"fire"}, []string{"water"}))
	assert.False(t, HasNoEffect([]string{"fire"}, []string{"water"}))
}
