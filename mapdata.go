// Package main - mapdata.go
//
// This file holds static world knowledge: named locations with spawn
// points and Pokemon Centers, loaded from a JSON file. When the file is
// missing a minimal Pallet Town dataset is written so navigation has
// somewhere to aim.
package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// MapPoint is a named coordinate inside a map.
type MapPoint struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Name string `json:"name"`
}

// MapInfo describes one map area.
type MapInfo struct {
	Name           string     `json:"name"`
	Region         string     `json:"region"`
	SpawnPoints    []MapPoint `json:"spawn_points"`
	PokemonCenters []MapPoint `json:"pokemon_centers"`
}

// MapData manages the map knowledge store.
type MapData struct {
	path       string
	maps       map[string]MapInfo
	currentMap string
	mu         sync.RWMutex
}

// NewMapData loads map data from path, creating defaults when missing.
func NewMapData(path string) *MapData {
	md := &MapData{
		path: path,
		maps: make(map[string]MapInfo),
	}
	md.load()
	return md
}

func (md *MapData) load() {
	data, err := os.ReadFile(md.path)
	if err != nil {
		LogWarn("Map data file not found, seeding defaults")
		md.seedDefaults()
		md.save()
		return
	}
	if err := json.Unmarshal(data, &md.maps); err != nil {
		LogError("Map data unreadable: %v", err)
		md.seedDefaults()
		return
	}
	LogInfo("Map data loaded: %d maps", len(md.maps))
}

func (md *MapData) seedDefaults() {
	md.maps = map[string]MapInfo{
		"pallet_town": {
			Name:   "Pallet Town",
			Region: "kanto",
			SpawnPoints: []MapPoint{
				{X: 100, Y: 100, Name: "spawn_1"},
				{X: 200, Y: 150, Name: "spawn_2"},
			},
			PokemonCenters: []MapPoint{
				{X: 150, Y: 120, Name: "pokemon_center_1"},
			},
		},
	}
}

func (md *MapData) save() {
	if md.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(md.path), 0o755); err != nil {
		LogError("Create map directory: %v", err)
		return
	}
	data, err := json.MarshalIndent(md.maps, "", "  ")
	if err != nil {
		LogError("Encode map data: %v", err)
		return
	}
	if err := os.WriteFile(md.path, data, 0o644); err != nil {
		LogError("Write map data: %v", err)
	}
}

// MapInfo returns a map by name.
func (md *MapData) MapInfo(name string) (MapInfo, bool) {
	md.mu.RLock()
	defer md.mu.RUnlock()
	info, ok := md.maps[strings.ToLower(strings.TrimSpace(name))]
	return info, ok
}

// SetCurrentMap sets the active map when it is known.
func (md *MapData) SetCurrentMap(name string) {
	md.mu.Lock()
	defer md.mu.Unlock()
	key := strings.ToLower(strings.TrimSpace(name))
	if _, ok := md.maps[key]; !ok {
		LogWarn("Map not found: %s", name)
		return
	}
	md.currentMap = key
	LogInfo("Current map: %s", key)
}

// SpawnPoints returns the spawn points of a map; an empty name means the
// current map.
func (md *MapData) SpawnPoints(name string) []MapPoint {
	md.mu.RLock()
	defer md.mu.RUnlock()
	if name == "" {
		name = md.currentMap
	}
	info, ok := md.maps[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil
	}
	return info.SpawnPoints
}

// PokemonCenters returns the Pokemon Centers of a map; an empty name
// means the current map.
func (md *MapData) PokemonCenters(name string) []MapPoint {
	md.mu.RLock()
	defer md.mu.RUnlock()
	if name == "" {
		name = md.currentMap
	}
	info, ok := md.maps[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil
	}
	return info.PokemonCenters
}
