package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"survivorslike/game"
	"survivorslike/logger"
)

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
	character := flag.String("character", config.Character, "player character template")
	wander := flag.Bool("wander", config.EnableWander, "let enemies outside detection range wander")
	logLevel := flag.String("log-level", os.Getenv("LOG_LEVEL"), "log level (trace, debug, info, warn, error)")
	logFormat := flag.String("log-format", os.Getenv("LOG_FORMAT"), "log format (text, json)")
	profileDir := flag.String("profile-dir", "profiles", "directory for F2 profile captures")
	flag.Parse()

	logger.Init(*logLevel, *logFormat)
	config.Seed = *seed
	config.Character = *character
	config.EnableWander = *wander

	app, err := NewApp(config, *profileDir)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to create game")
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Survivorslike")
	ebiten.SetWindowResizable(true)

	logger.Log.WithFields(logrus.Fields{
		"width":     config.ScreenWidth,
		"height":    config.ScreenHeight,
		"character": config.Character,
	}).Info("Starting game")

	if err := ebiten.RunGame(app); err != nil {
		logger.Log.WithError(err).Fatal("Game loop exited")
	}
}
