package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("GAME_SEED", "42")
	t.Setenv("GAME_SCREEN_WIDTH", "800")
	t.Setenv("GAME_SCREEN_HEIGHT", "600")
	t.Setenv("GAME_MAX_ENEMIES", "12")
	t.Setenv("GAME_SPAWN_INTERVAL", "0.75")
	t.Setenv("GAME_ENABLE_WANDER", "true")
	t.Setenv("GAME_CHARACTER", "ranger")

	cfg, err := ConfigFromEnv(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 800, cfg.ScreenWidth)
	assert.Equal(t, 600, cfg.ScreenHeight)
	assert.Equal(t, 12, cfg.MaxEnemies)
	assert.Equal(t, 0.75, cfg.SpawnInterval)
	assert.True(t, cfg.EnableWander)
	assert.Equal(t, "ranger", cfg.Character)
	assert.Equal(t, DefaultConfig().MaxDeltaTime, cfg.MaxDeltaTime)
}

func TestConfigFromEnvEmptyKeepsDefaults(t *testing.T) {
	t.Setenv("GAME_SEED", "")
	t.Setenv("GAME_MAX_ENEMIES", "")

	cfg, err := ConfigFromEnv(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigFromEnvErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad int", "GAME_MAX_ENEMIES", "many"},
		{"bad seed", "GAME_SEED", "0x"},
		{"bad float", "GAME_SPAWN_INTERVAL", "soon"},
		{"bad bool", "GAME_ENABLE_WANDER", "sometimes"},
		{"zero width", "GAME_SCREEN_WIDTH", "0"},
		{"negative height", "GAME_SCREEN_HEIGHT", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg, err := ConfigFromEnv(DefaultConfig())
			require.Error(t, err)
			assert.Equal(t, DefaultConfig(), cfg, "base is returned on error")
		})
	}
}

func TestViewportSize(t *testing.T) {
	w, h := DefaultConfig().ViewportSize()
	assert.Equal(t, 1280.0, w)
	assert.Equal(t, 720.0, h)
}
