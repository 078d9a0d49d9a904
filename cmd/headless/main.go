package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"survivorslike/game"
	"survivorslike/logger"
	"survivorslike/profiling"
)

// fleeBot steers the player away from the nearest enemy, which keeps a headless run alive long
// enough to exercise leveling, loot and the spawner.
type fleeBot struct {
	world *game.World
}

func (b *fleeBot) Intent() game.MoveIntent {
	p := b.world.Player
	var nearest *game.Enemy
	best := 250.0
	for _, e := range b.world.LiveEnemies() {
		if d := p.DistanceTo(e.Entity); d < best {
			nearest, best = e, d
		}
	}
	if nearest == nil {
		return game.MoveIntent{}
	}
	away := p.Pos.Sub(nearest.Pos)
	return game.MoveIntent{
		Up:    away.Y < -1,
		Down:  away.Y > 1,
		Left:  away.X < -1,
		Right: away.X > 1,
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Log.WithError(err).Warn("Failed to load .env")
	}
	logger.InitFromEnv()

	config, err := game.ConfigFromEnv(game.DefaultConfig())
	if err != nil {
		logger.Log.WithError(err).Fatal("Invalid configuration")
	}

	seed := flag.Int64("seed", config.Seed, "random seed (0 picks one from the clock)")
	ticks := flag.Int("ticks", 3600, "number of ticks to simulate")
	dt := flag.Float64("dt", 1.0/60.0, "seconds per tick")
	character := flag.String("character", config.Character, "player character template")
	wander := flag.Bool("wander", config.EnableWander, "let enemies outside detection range wander")
	buy := flag.Bool("buy", true, "let the bot spend gold in the shop every simulated 10 seconds")
	logLevel := flag.String("log-level", os.Getenv("LOG_LEVEL"), "log level (trace, debug, info, warn, error)")
	logFormat := flag.String("log-format", os.Getenv("LOG_FORMAT"), "log format (text, json)")
	profileDir := flag.String("profile-dir", "", "write a CPU profile and trace of the run into this directory")
	flag.Parse()

	logger.Init(*logLevel, *logFormat)
	config.Seed = *seed
	config.Character = *character
	config.EnableWander = *wander

	world, err := game.NewWorld(config)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to create world")
	}
	world.Player.Input = &fleeBot{world: world}

	killsByType := make(map[string]int)
	world.OnEnemyKilled = func(e *game.Enemy) {
		killsByType[game.GetEnemyTypeConfig(e.Type).Name]++
	}

	if *profileDir != "" {
		profiler, err := profiling.New(*profileDir)
		if err != nil {
			logger.Log.WithError(err).Fatal("Failed to create profiler")
		}
		if err := profiler.Start("headless"); err != nil {
			logger.Log.WithError(err).Fatal("Failed to start profiler")
		}
		defer func() {
			if err := profiler.Stop(); err != nil {
				logger.Log.WithError(err).Error("Failed to stop profiler")
			}
		}()
	}

	buyEvery := int(10.0 / *dt)
	start := time.Now()
	ran := 0
	for ran < *ticks && !world.Player.Dead {
		world.Tick(*dt)
		ran++

		if *buy && buyEvery > 0 && ran%buyEvery == 0 {
			shopRound(world)
		}
	}

	s := world.Summary()
	logger.Log.WithFields(logrus.Fields{
		"seed":          world.Context().Rand.Seed(),
		"ticks":         ran,
		"sim_seconds":   s.Elapsed,
		"wall_time":     time.Since(start).Round(time.Millisecond).String(),
		"score":         s.Score,
		"kills":         s.Kills,
		"kills_by_type": killsByType,
		"level":         s.Level,
		"gold":          s.Gold,
		"health":        s.Health,
		"weapons":       len(world.Player.Weapons),
		"player_dead":   s.PlayerDead,
	}).Info("Headless run finished")
}

// shopRound buys the most expensive affordable item, if any
func shopRound(world *game.World) {
	var pick game.ShopItem
	for _, item := range world.Shop.Items {
		if item.Cost() > world.Player.Gold {
			continue
		}
		if pick == nil || item.Cost() > pick.Cost() {
			pick = item
		}
	}
	if pick == nil {
		return
	}
	if err := world.Shop.Buy(world.Player, pick); err != nil {
		logger.Log.WithError(err).Debug("Bot purchase failed")
	}
}
