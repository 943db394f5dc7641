// Package main - config.go
//
// This file defines the YAML configuration surface of the bot and its
// defaults. Configuration is loaded once at startup; the few fields the
// tray UI may flip at runtime are guarded by a mutex on the Config.
//
// Sections:
//   - bot: master enable switch
//   - screen: capture region and loop frequency
//   - ocr: recognition backend and tesseract options
//   - battle: auto battle, strategy selection, per-slot move types
//   - capture: wild encounter handling
//   - quests: quest tracking options
//   - navigation: exploration behavior
//   - security: humanized input delays
//   - detector: temporal confirmation tuning
//   - debug: battle screenshot dumps
//   - logging: level, console and file sinks
package main

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// ScreenConfig describes the capture region. A zero width or height means
// the full primary display.
type ScreenConfig struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// OCRConfig selects the text recognition backend.
type OCRConfig struct {
	// Backend is "classic" (default tesseract engine) or "neural"
	// (LSTM-only engine mode).
	Backend       string `yaml:"backend"`
	Language      string `yaml:"language"`
	TesseractPath string `yaml:"tesseract_path"`
}

// BattleConfig controls in-battle behavior.
type BattleConfig struct {
	AutoBattle     bool `yaml:"auto_battle"`
	// Strategy is "aggressive", "defensive", "balanced" or "type_matchup".
	Strategy       string  `yaml:"strategy"`
	ActionCooldown float64 `yaml:"action_cooldown"`
	// MoveTypes maps attack slots to the elemental type of the move
	// currently bound there, e.g. attack_1: water.
	MoveTypes map[string]string `yaml:"move_types"`
}

// CaptureConfig controls wild encounter handling.
type CaptureConfig struct {
	AutoCapture      bool     `yaml:"auto_capture"`
	MinIVThreshold   int      `yaml:"min_iv_threshold"`
	PreferredPokemon []string `yaml:"preferred_pokemon"`
}

// QuestConfig controls quest tracking.
type QuestConfig struct {
	AutoFollow    bool    `yaml:"auto_follow"`
	CheckInterval float64 `yaml:"check_interval"`
}

// NavigationConfig controls exploration movement.
type NavigationConfig struct {
	HumanLikeMovement bool `yaml:"human_like_movement"`
}

// SecurityConfig controls humanized input timing.
type SecurityConfig struct {
	HumanPatterns bool    `yaml:"human_patterns"`
	MinDelay      float64 `yaml:"min_delay"`
	MaxDelay      float64 `yaml:"max_delay"`
}

// DetectorConfig tunes the game state classifier.
type DetectorConfig struct {
	// BattleConfirmationFrames is the number of consecutive frames the
	// battle heuristics must fire before InBattle is reported.
	BattleConfirmationFrames int `yaml:"battle_confirmation_frames"`
}

// DebugConfig controls diagnostic output.
type DebugConfig struct {
	CaptureOnBattle bool `yaml:"capture_on_battle"`
}

// LoggingConfig controls log sinks.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	File    string `yaml:"file"`
	Console bool   `yaml:"console"`
}

// Config holds the full bot configuration.
type Config struct {
	Enabled    bool             `yaml:"enabled"`
	Screen     ScreenConfig     `yaml:"screen"`
	OCR        OCRConfig        `yaml:"ocr"`
	Battle     BattleConfig     `yaml:"battle"`
	Capture    CaptureConfig    `yaml:"capture"`
	Quests     QuestConfig      `yaml:"quests"`
	Navigation NavigationConfig `yaml:"navigation"`
	Security   SecurityConfig   `yaml:"security"`
	Detector   DetectorConfig   `yaml:"detector"`
	Debug      DebugConfig      `yaml:"debug"`
	Logging    LoggingConfig    `yaml:"logging"`

	mu sync.RWMutex
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Enabled: true,
		Screen: ScreenConfig{
			FPS: 10,
		},
		OCR: OCRConfig{
			Backend:  "classic",
			Language: "eng",
		},
		Battle: BattleConfig{
			AutoBattle:     true,
			Strategy:       "type_matchup",
			ActionCooldown: 3.0,
			MoveTypes: map[string]string{
				"attack_1": "normal",
				"attack_2": "normal",
				"attack_3": "normal",
				"attack_4": "normal",
			},
		},
		Capture: CaptureConfig{
			AutoCapture:      true,
			PreferredPokemon: []string{},
		},
		Quests: QuestConfig{
			AutoFollow:    true,
			CheckInterval: 5.0,
		},
		Navigation: NavigationConfig{
			HumanLikeMovement: true,
		},
		Security: SecurityConfig{
			HumanPatterns: true,
			MinDelay:      0.05,
			MaxDelay:      0.3,
		},
		Detector: DetectorConfig{
			BattleConfirmationFrames: 2,
		},
		Debug: DebugConfig{},
		Logging: LoggingConfig{
			Level:   "info",
			File:    "logs/bot.log",
			Console: true,
		},
	}
}

// LoadConfig reads a YAML configuration file over the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Screen.FPS <= 0 {
		cfg.Screen.FPS = 10
	}
	if cfg.Detector.BattleConfirmationFrames <= 0 {
		cfg.Detector.BattleConfirmationFrames = 2
	}
	return cfg, nil
}

// GetStrategy safely returns the configured battle strategy.
func (c *Config) GetStrategy() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Battle.Strategy
}

// SetStrategy safely changes the battle strategy at runtime.
func (c *Config) SetStrategy(strategy string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Battle.Strategy = strategy
}
