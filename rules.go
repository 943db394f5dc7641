// Package main - rules.go
//
// This file implements the type effectiveness chart and the damage
// multiplier math built on it.
//
// The chart is asymmetric (fire attacks water at 0.5, water attacks fire
// at 2.0) and sparse: any pairing not listed is neutral 1.0. Multi-type
// matchups multiply every attacker type against every defender type, so
// a double weakness yields 4.0 and a single immunity zeroes the product.
package main

import "strings"

// typeChart maps attacker type -> defender type -> damage multiplier.
// Unlisted pairings are neutral.
var typeChart = map[string]map[string]float64{
	"normal":   {"rock": 0.5, "ghost": 0.0},
	"fire":     {"water": 0.5, "grass": 2.0, "ice": 2.0, "bug": 2.0, "rock": 0.5, "dragon": 0.5},
	"water":    {"fire": 2.0, "water": 0.5, "grass": 0.5, "ground": 2.0, "rock": 2.0, "dragon": 0.5},
	"electric": {"water": 2.0, "electric": 0.5, "grass": 0.5, "ground": 0.0, "flying": 2.0, "dragon": 0.5},
	"grass":    {"fire": 0.5, "water": 2.0, "grass": 0.5, "poison": 0.5, "ground": 2.0, "flying": 0.5, "bug": 0.5, "rock": 2.0, "dragon": 0.5},
	"ice":      {"water": 0.5, "grass": 2.0, "ice": 0.5, "ground": 2.0, "flying": 2.0, "dragon": 2.0},
	"fighting": {"normal": 2.0, "ice": 2.0, "poison": 0.5, "flying": 0.5, "psychic": 0.5, "bug": 0.5, "rock": 2.0, "ghost": 0.0, "dark": 2.0},
	"poison":   {"grass": 2.0, "poison": 0.5, "ground": 0.5, "rock": 0.5, "ghost": 0.5},
	"ground":   {"fire": 2.0, "electric": 2.0, "grass": 0.5, "poison": 2.0, "flying": 0.0, "bug": 0.5, "rock": 2.0},
	"flying":   {"electric": 0.5, "grass": 2.0, "fighting": 2.0, "bug": 2.0, "rock": 0.5},
	"psychic":  {"fighting": 2.0, "poison": 2.0, "psychic": 0.5, "dark": 0.0},
	"bug":      {"fire": 0.5, "grass": 2.0, "fighting": 0.5, "poison": 0.5, "flying": 0.5, "psychic": 2.0, "ghost": 0.5, "dark": 2.0},
	"rock":     {"fire": 2.0, "ice": 2.0, "fighting": 0.5, "ground": 0.5, "flying": 2.0, "bug": 2.0},
	"ghost":    {"normal": 0.0, "psychic": 2.0, "ghost": 2.0, "dark": 0.5},
	"dragon":   {"dragon": 2.0},
	"dark":     {"psychic": 2.0, "ghost": 2.0, "dark": 0.5},
	"steel":    {"fire": 0.5, "water": 0.5, "electric": 0.5, "ice": 2.0, "rock": 2.0, "steel": 0.5},
}

// CalculateTypeAdvantage returns the combined damage multiplier of the
// attacker's types against the defender's types. Either side empty is
// neutral 1.0.
func CalculateTypeAdvantage(attackerTypes, defenderTypes []string) float64 {
	if len(attackerTypes) == 0 || len(defenderTypes) == 0 {
		return 1.0
	}
	total := 1.0
	for _, attacker := range attackerTypes {
		advantages := typeChart[strings.ToLower(attacker)]
		for _, defender := range defenderTypes {
			multiplier, ok := advantages[strings.ToLower(defender)]
			if !ok {
				multiplier = 1.0
			}
			total *= multiplier
		}
	}
	return total
}

// IsSuperEffective reports a combined multiplier above neutral.
func IsSuperEffective(attackerTypes, defenderTypes []string) bool {
	return CalculateTypeAdvantage(attackerTypes, defenderTypes) > 1.0
}

// IsNotVeryEffective reports a reduced but nonzero multiplier.
func IsNotVeryEffective(attackerTypes, defenderTypes []string) bool {
	m := CalculateTypeAdvantage(attackerTypes, defenderTypes)
	return m > 0.0 && m < 1.0
}

// HasNoEffect reports a zero multiplier.
func HasNoEffect(attackerTypes, defenderTypes []string) bool {
	return CalculateTypeAdvantage(attackerTypes, defenderTypes) == 0.0
}
