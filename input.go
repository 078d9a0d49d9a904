package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"survivorslike/game"
)

// keyboardInput reads WASD / arrow keys for the local player
type keyboardInput struct{}

func (keyboardInput) Intent() game.MoveIntent {
	return game.MoveIntent{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	}
}

// Shop slots map to the number row
var shopKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// handleInput processes hotkeys: restart, shop, debug overlay, profiling, fullscreen
func (a *App) handleInput() {
	// R restarts once the player is dead
	if a.world.Player.Dead {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			a.world.Restart()
			a.particles.Clear()
			a.shopOpen = false
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		a.shopOpen = !a.shopOpen
	}
	if a.shopOpen {
		for i, key := range shopKeys {
			if i >= len(a.world.Shop.Items) {
				break
			}
			if inpututil.IsKeyJustPressed(key) {
				a.buy(i)
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.debug.ShowBounds = !a.debug.ShowBounds
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		a.captureProfile()
	}

	// Alt+Enter toggles fullscreen
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt)
	if altPressed && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
}
