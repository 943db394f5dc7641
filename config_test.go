package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 10, cfg.Screen.FPS)
	assert.Equal(t, "classic", cfg.OCR.Backend)
	assert.Equal(t, "type_matchup", cfg.Battle.Strategy)
	assert.InDelta(t, 3.0, cfg.Battle.ActionCooldown, 1e-9)
	assert.Equal(t, 2, cfg.Detector.BattleConfirmationFrames)
	assert.True(t, cfg.Battle.AutoBattle)
	assert.True(t, cfg.Capture.AutoCapture)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
screen:
  fps: 5
battle:
  strategy: aggressive
  move_types:
    attack_1: water
capture:
  preferred_pokemon: [pikachu, eevee]
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Screen.FPS)
	assert.Equal(t, "aggressive", cfg.GetStrategy())
	assert.Equal(t, "water", cfg.Battle.MoveTypes["attack_1"])
	assert.Equal(t, []string{"pikachu", "eevee"}, cfg.Capture.PreferredPokemon)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigClampsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
screen:
  fps: 0
detector:
  battle_confirmation_frames: -1
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Screen.FPS)
	assert.Equal(t, 2, cfg.Detector.BattleConfirmationFrames)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestSetStrategy(t *testing.T) {
	cfg := NewConfig()
	cfg.SetStrategy("defensive")
	assert.Equal(t, "defensive", cfg.GetStrategy())
}
