// Package main - pokedex.go
//
// This file implements the Pokemon knowledge store: a read-through cache
// over a local JSON file backed by the public PokeAPI.
//
// Lookup Flow:
//   1. In-memory map, keyed by lowercase name
//   2. On miss, the remote fetcher is asked (5 second timeout)
//   3. A fetched entry is written back to the memory map and the file
//   4. Fetch failure is a plain not-found; battle logic falls back to a
//      neutral 1.0 matchup
//
// When no file exists a small seed set (pikachu, charizard, blastoise)
// is created so the type matchup strategy works offline.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// BaseStats are a Pokemon's base stat block.
type BaseStats struct {
	HP        int `json:"hp"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	SpAttack  int `json:"sp_attack"`
	SpDefense int `json:"sp_defense"`
	Speed     int `json:"speed"`
}

// PokemonInfo is one Pokedex entry.
type PokemonInfo struct {
	Name      string    `json:"name"`
	Types     []string  `json:"types"`
	BaseStats BaseStats `json:"base_stats"`
}

// StatsFetcher resolves a Pokemon by name from a remote source.
type StatsFetcher interface {
	Fetch(name string) (PokemonInfo, error)
}

// PokeAPIFetcher fetches Pokemon data from the public PokeAPI.
type PokeAPIFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewPokeAPIFetcher creates a fetcher with a short timeout so a dead
// network never stalls a battle turn.
func NewPokeAPIFetcher() *PokeAPIFetcher {
	return &PokeAPIFetcher{
		BaseURL: "https://pokeapi.co/api/v2",
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// pokeAPIResponse is the subset of the PokeAPI pokemon payload we read.
type pokeAPIResponse struct {
	Name  string `json:"name"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int `json:"base_stat"`
		Stat     struct {
			Name string `json:"name"`
		} `json:"stat"`
	} `json:"stats"`
}

// Fetch resolves one Pokemon from the API.
func (f *PokeAPIFetcher) Fetch(name string) (PokemonInfo, error) {
	url := fmt.Sprintf("%s/pokemon/%s", f.BaseURL, strings.ToLower(strings.TrimSpace(name)))
	resp, err := f.Client.Get(url)
	if err != nil {
		return PokemonInfo{}, fmt.Errorf("fetch %s: %w", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return PokemonInfo{}, fmt.Errorf("fetch %s: status %d", name, resp.StatusCode)
	}

	var payload pokeAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return PokemonInfo{}, fmt.Errorf("decode %s: %w", name, err)
	}

	info := PokemonInfo{Name: titleCase(payload.Name)}
	for _, t := range payload.Types {
		info.Types = append(info.Types, t.Type.Name)
	}
	for _, s := range payload.Stats {
		switch s.Stat.Name {
		case "hp":
			info.BaseStats.HP = s.BaseStat
		case "attack":
			info.BaseStats.Attack = s.BaseStat
		case "defense":
			info.BaseStats.Defense = s.BaseStat
		case "special-attack":
			info.BaseStats.SpAttack = s.BaseStat
		case "special-defense":
			info.BaseStats.SpDefense = s.BaseStat
		case "speed":
			info.BaseStats.Speed = s.BaseStat
		}
	}
	return info, nil
}

// titleCase capitalizes the first letter of an API species name.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Pokedex is a read-through cache of Pokemon entries.
type Pokedex struct {
	path    string
	fetcher StatsFetcher
	entries map[string]PokemonInfo
	mu      sync.RWMutex
}

// NewPokedex loads the local store from path and wires the remote
// fetcher. A nil fetcher makes the Pokedex purely local.
func NewPokedex(path string, fetcher StatsFetcher) *Pokedex {
	p := &Pokedex{
		path:    path,
		fetcher: fetcher,
		entries: make(map[string]PokemonInfo),
	}
	p.load()
	return p
}

func (p *Pokedex) load() {
	data, err := os.ReadFile(p.path)
	if err != nil {
		LogWarn("Pokedex file not found, seeding defaults")
		p.seedDefaults()
		p.save()
		return
	}
	if err := json.Unmarshal(data, &p.entries); err != nil {
		LogError("Pokedex file unreadable: %v", err)
		p.seedDefaults()
		return
	}
	LogInfo("Pokedex loaded: %d entries", len(p.entries))
}

func (p *Pokedex) seedDefaults() {
	p.entries = map[string]PokemonInfo{
		"pikachu": {
			Name:  "Pikachu",
			Types: []string{"electric"},
			BaseStats: BaseStats{
				HP: 35, Attack: 55, Defense: 40,
				SpAttack: 50, SpDefense: 50, Speed: 90,
			},
		},
		"charizard": {
			Name:  "Charizard",
			Types: []string{"fire", "flying"},
			BaseStats: BaseStats{
				HP: 78, Attack: 84, Defense: 78,
				SpAttack: 109, SpDefense: 85, Speed: 100,
			},
		},
		"blastoise": {
			Name:  "Blastoise",
			Types: []string{"water"},
			BaseStats: BaseStats{
				HP: 79, Attack: 83, Defense: 100,
				SpAttack: 85, SpDefense: 105, Speed: 78,
			},
		},
	}
}

func (p *Pokedex) save() {
	if p.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		LogError("Create pokedex directory: %v", err)
		return
	}
	data, err := json.MarshalIndent(p.entries, "", "  ")
	if err != nil {
		LogError("Encode pokedex: %v", err)
		return
	}
	if err := os.WriteFile(p.path, data, 0o644); err != nil {
		LogError("Write pokedex: %v", err)
	}
}

// Lookup resolves a Pokemon by name, consulting the remote fetcher on a
// local miss and writing the result back.
func (p *Pokedex) Lookup(name string) (PokemonInfo, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return PokemonInfo{}, false
	}

	p.mu.RLock()
	info, ok := p.entries[key]
	p.mu.RUnlock()
	if ok {
		return info, true
	}

	if p.fetcher == nil {
		return PokemonInfo{}, false
	}
	fetched, err := p.fetcher.Fetch(key)
	if err != nil {
		LogDebug("Pokedex fetch miss for %q: %v", key, err)
		return PokemonInfo{}, false
	}

	p.mu.Lock()
	p.entries[key] = fetched
	p.mu.Unlock()
	p.save()
	LogInfo("Pokedex learned %s (%s)", fetched.Name, strings.Join(fetched.Types, "/"))
	return fetched, true
}

// Types returns a Pokemon's types, or nil when unknown.
func (p *Pokedex) Types(name string) []string {
	info, ok := p.Lookup(name)
	if !ok {
		return nil
	}
	return info.Types
}

// Add inserts or updates an entry and persists the store.
func (p *Pokedex) Add(name string, info PokemonInfo) {
	key := strings.ToLower(strings.TrimSpace(name))
	p.mu.Lock()
	p.entries[key] = info
	p.mu.Unlock()
	p.save()
	LogInfo("Pokedex entry updated: %s", name)
}
