package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"survivorslike/game"
)

var (
	colorHealthBarBack = color.NRGBA{R: 100, G: 0, B: 0, A: 255}
	colorHealthBarFill = color.NRGBA{R: 0, G: 220, B: 0, A: 255}
)

// screenDrawer draws simulation visuals as flat vector shapes onto the current frame
type screenDrawer struct {
	screen *ebiten.Image
}

// DrawSprite implements game.SpriteDrawer. Depth ordering is handled by the caller's draw order.
func (d *screenDrawer) DrawSprite(v game.Visual, pos game.Vec2, rotation float64, clr color.Color, _ float64) {
	if d.screen == nil {
		return
	}
	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(v.Width), float32(v.Height)

	switch v.Shape {
	case game.ShapeCircle:
		vector.DrawFilledCircle(d.screen, x, y, w/2, clr, true)
	case game.ShapeTriangle:
		d.polygon(pos, v.Width/2, rotation, 3, clr)
	case game.ShapeDiamond:
		d.polygon(pos, v.Width/2, rotation, 4, clr)
	default:
		vector.DrawFilledRect(d.screen, x-w/2, y-h/2, w, h, clr, true)
	}

	// Direction indicator
	if v.Shape != game.ShapeCircle {
		length := v.Width * 0.75
		endX := pos.X + math.Cos(rotation)*length
		endY := pos.Y + math.Sin(rotation)*length
		vector.StrokeLine(d.screen, x, y, float32(endX), float32(endY), 2, clr, true)
	}
}

// polygon strokes a regular polygon with the first vertex pointing along rotation
func (d *screenDrawer) polygon(center game.Vec2, radius, rotation float64, sides int, clr color.Color) {
	for i := 0; i < sides; i++ {
		a0 := rotation + float64(i)*2*math.Pi/float64(sides)
		a1 := rotation + float64(i+1)*2*math.Pi/float64(sides)
		x0 := center.X + math.Cos(a0)*radius
		y0 := center.Y + math.Sin(a0)*radius
		x1 := center.X + math.Cos(a1)*radius
		y1 := center.Y + math.Sin(a1)*radius
		vector.StrokeLine(d.screen, float32(x0), float32(y0), float32(x1), float32(y1), 3, clr, true)
	}
}

// drawHealthBars draws a bar above every damaged enemy
func (d *screenDrawer) drawHealthBars(enemies []*game.Enemy) {
	for _, e := range enemies {
		if !e.IsActive() {
			continue
		}
		hp, maxHP := e.Stats.Health(), e.Stats.MaxHealth()
		if maxHP <= 0 || hp >= maxHP {
			continue
		}

		barWidth := float32(e.Visual.Width)
		barHeight := float32(4)
		barX := float32(e.Pos.X) - barWidth/2
		barY := float32(e.Bounds.Y) - barHeight - 2

		vector.DrawFilledRect(d.screen, barX, barY, barWidth, barHeight, colorHealthBarBack, true)
		vector.DrawFilledRect(d.screen, barX, barY, barWidth*float32(hp/maxHP), barHeight, colorHealthBarFill, true)
	}
}
