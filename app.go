package main

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"survivorslike/game"
	"survivorslike/logger"
	"survivorslike/profiling"
)

var colorBackground = color.NRGBA{R: 18, G: 20, B: 28, A: 255}

// App adapts the simulation to ebiten's Game interface
type App struct {
	config game.Config
	world  *game.World

	drawer    *screenDrawer
	hud       *hud
	particles *particleSystem
	debug     *debugState
	profiler  *profiling.Profiler

	shopOpen bool
	message  string
	msgTimer float64
}

// NewApp builds the world and its ebiten collaborators
func NewApp(config game.Config, profileDir string) (*App, error) {
	world, err := game.NewWorld(config)
	if err != nil {
		return nil, err
	}
	world.Player.Input = keyboardInput{}

	profiler, err := profiling.New(profileDir)
	if err != nil {
		logger.Log.WithError(err).Warn("Profiling disabled")
	}

	a := &App{
		config:    config,
		world:     world,
		drawer:    &screenDrawer{},
		hud:       newHUD(),
		particles: newParticleSystem(world.Context().Rand.Seed()),
		debug:     &debugState{},
		profiler:  profiler,
	}
	world.OnEnemyKilled = func(e *game.Enemy) {
		a.particles.Burst(e.Pos, e.Color, deathBurstParticles)
	}
	return a, nil
}

// Update advances the simulation by one fixed tick
func (a *App) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	a.handleInput()
	if a.msgTimer > 0 {
		a.msgTimer -= dt
	}

	// The shop pauses the simulation
	if a.shopOpen {
		return nil
	}
	a.world.Tick(dt)
	a.particles.Update(dt)
	return nil
}

// Draw renders the world, effects and HUD
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	a.drawer.screen = screen
	a.world.Draw(a.drawer)
	a.drawer.drawHealthBars(a.world.Enemies)
	a.particles.Draw(screen)

	if a.debug.ShowBounds {
		a.debug.draw(screen, a.world, a.hud.face)
	}
	a.hud.Draw(screen, a)
}

// Layout keeps the logical screen at the configured viewport size
func (a *App) Layout(_, _ int) (int, int) {
	return a.config.ScreenWidth, a.config.ScreenHeight
}

func (a *App) buy(slot int) {
	err := a.world.Shop.BuyIndex(a.world.Player, slot)
	switch {
	case err == nil:
		a.flash("Purchased " + a.world.Shop.Items[slot].Name())
	case errors.Is(err, game.ErrInsufficientGold):
		a.flash("Not enough gold")
	default:
		logger.Log.WithError(err).Warn("Purchase failed")
		a.flash("Cannot buy that")
	}
}

func (a *App) captureProfile() {
	if a.profiler == nil {
		return
	}
	if err := a.profiler.Capture("manual"); err != nil {
		logger.Log.WithError(err).Warn("Profile capture skipped")
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "app",
		"enemies":   len(a.world.Enemies),
	}).Info("Profile capture started")
	a.flash("Profiling...")
}

// flash shows a short status message in the HUD
func (a *App) flash(msg string) {
	a.message = msg
	a.msgTimer = 2.0
}
