package game

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds game configuration
type Config struct {
	// ScreenWidth is the viewport width in pixels, the player is clamped inside it
	ScreenWidth int

	// ScreenHeight is the viewport height in pixels
	ScreenHeight int

	// Seed for the run's random generator, 0 picks one from the clock
	Seed int64

	// MaxDeltaTime caps a single tick so a stalled frame does not teleport entities
	MaxDeltaTime float64

	// EnableWander lets enemies outside their detection range wander instead of chasing
	EnableWander bool

	// SpawnInterval is the time between enemy spawns in seconds (0 disables spawning)
	SpawnInterval float64

	// MaxEnemies caps the number of live enemies
	MaxEnemies int

	// SpawnDistance is how far from the player new enemies appear
	SpawnDistance float64

	// Character is the name of the player character template ("" for none)
	Character string
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:   1280,
		ScreenHeight:  720,
		Seed:          0,
		MaxDeltaTime:  0.06,
		EnableWander:  false,
		SpawnInterval: 1.5,
		MaxEnemies:    40,
		SpawnDistance: 450,
		Character:     "",
	}
}

// ViewportSize returns the screen size as floats
func (c Config) ViewportSize() (float64, float64) {
	return float64(c.ScreenWidth), float64(c.ScreenHeight)
}

// ConfigFromEnv overrides fields of base with the GAME_* environment variables that are set
func ConfigFromEnv(base Config) (Config, error) {
	cfg := base
	var err error

	if cfg.Seed, err = envInt64("GAME_SEED", cfg.Seed); err != nil {
		return base, err
	}
	if cfg.ScreenWidth, err = envInt("GAME_SCREEN_WIDTH", cfg.ScreenWidth); err != nil {
		return base, err
	}
	if cfg.ScreenHeight, err = envInt("GAME_SCREEN_HEIGHT", cfg.ScreenHeight); err != nil {
		return base, err
	}
	if cfg.MaxEnemies, err = envInt("GAME_MAX_ENEMIES", cfg.MaxEnemies); err != nil {
		return base, err
	}
	if cfg.SpawnInterval, err = envFloat("GAME_SPAWN_INTERVAL", cfg.SpawnInterval); err != nil {
		return base, err
	}
	if cfg.EnableWander, err = envBool("GAME_ENABLE_WANDER", cfg.EnableWander); err != nil {
		return base, err
	}
	if v, ok := os.LookupEnv("GAME_CHARACTER"); ok {
		cfg.Character = v
	}

	if cfg.ScreenWidth <= 0 || cfg.ScreenHeight <= 0 {
		return base, fmt.Errorf("invalid screen size %dx%d", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	return cfg, nil
}

func envInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func envInt64(key string, def int64) (int64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("parse %s: %w", key, err)
	}
	return f, nil
}

func envBool(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}
