package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"survivorslike/game"
)

// debugState holds debug overlay flags that persist across restarts
type debugState struct {
	ShowBounds bool // Show entity bounds, AI states and weapon range
}

func (d *debugState) draw(screen *ebiten.Image, world *game.World, face text.Face) {
	p := world.Player
	if p.IsActive() {
		strokeBounds(screen, p.Bounds)
		for _, w := range p.Weapons {
			vector.StrokeCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(w.EffectiveRange()), 1, colornames.Darkslategray, true)
		}
	}

	for _, e := range world.Enemies {
		if !e.IsActive() {
			continue
		}
		strokeBounds(screen, e.Bounds)

		op := &text.DrawOptions{}
		op.GeoM.Translate(e.Bounds.X, e.Bounds.Y+e.Bounds.H+2)
		op.ColorScale.ScaleWithColor(colornames.Lightgray)
		text.Draw(screen, e.State().String(), face, op)
	}

	for _, c := range world.Collectibles.Items() {
		if c.Active {
			strokeBounds(screen, c.Bounds())
		}
	}
}

func strokeBounds(screen *ebiten.Image, r game.Rect) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, colornames.Magenta, false)
}
