package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// HUD layout
const (
	hudMarginX     = 12.0
	hudMarginY     = 12.0
	hudLineHeight  = 16.0
	shopPanelWidth = 360.0
)

var colorShopBackdrop = color.NRGBA{R: 10, G: 16, B: 32, A: 230}

type hud struct {
	face text.Face
}

func newHUD() *hud {
	return &hud{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *hud) line(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, h.face, op)
}

// Draw renders run stats, the shop panel and status messages
func (h *hud) Draw(screen *ebiten.Image, a *App) {
	s := a.world.Summary()

	lines := []string{
		fmt.Sprintf("HP %.0f / %.0f", s.Health, s.MaxHealth),
		fmt.Sprintf("Level %d  XP %d / %d", s.Level, s.Experience, a.world.Player.ExperienceToNextLevel),
		fmt.Sprintf("Gold %d", s.Gold),
		fmt.Sprintf("Score %d  Kills %d", s.Score, s.Kills),
		fmt.Sprintf("Time %.0fs  Enemies %d", s.Elapsed, s.Enemies),
		fmt.Sprintf("Weapons %d  TPS %.0f", len(a.world.Player.Weapons), ebiten.ActualTPS()),
	}
	for i, l := range lines {
		h.line(screen, l, hudMarginX, hudMarginY+float64(i)*hudLineHeight, colornames.White)
	}

	if a.msgTimer > 0 && a.message != "" {
		h.line(screen, a.message, hudMarginX, hudMarginY+float64(len(lines)+1)*hudLineHeight, colornames.Yellow)
	}

	sw, sh := float64(a.config.ScreenWidth), float64(a.config.ScreenHeight)
	switch {
	case s.PlayerDead:
		h.line(screen, "YOU DIED - press R to restart", sw/2-100, sh/2, colornames.Red)
	case a.shopOpen:
		h.drawShop(screen, a, sw)
	default:
		h.line(screen, "TAB shop  F1 bounds  F2 profile", hudMarginX, sh-hudMarginY-hudLineHeight, colornames.Gray)
	}
}

func (h *hud) drawShop(screen *ebiten.Image, a *App, screenWidth float64) {
	items := a.world.Shop.Items
	x := screenWidth - shopPanelWidth - hudMarginX
	height := float64(len(items)+2) * hudLineHeight
	vector.DrawFilledRect(screen, float32(x-6), float32(hudMarginY-4), float32(shopPanelWidth), float32(height+8), colorShopBackdrop, true)

	h.line(screen, "SHOP (paused) - press 1-9 to buy, TAB to close", x, hudMarginY, colornames.Lightskyblue)
	for i, item := range items {
		clr := colornames.White
		if item.Cost() > a.world.Player.Gold {
			clr = colornames.Dimgray
		}
		l := fmt.Sprintf("%d. %-14s %3dg  %s", i+1, item.Name(), item.Cost(), item.Description())
		h.line(screen, l, x, hudMarginY+float64(i+1)*hudLineHeight, clr)
	}
}
