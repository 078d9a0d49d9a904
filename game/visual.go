package game

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Shape is the primitive used to draw an entity
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeCircle
	ShapeTriangle
	ShapeDiamond
)

// Visual is the drawable extent of an entity. Width and Height also define its bounds.
type Visual struct {
	Shape  Shape
	Color  color.RGBA
	Width  float64
	Height float64
}

// VisualFactory creates the visual for a shape and color.
// The renderer may back it with real textures; the simulation only needs the extent.
type VisualFactory interface {
	CreateVisual(shape Shape, clr color.RGBA, size float64) Visual
}

// SpriteDrawer draws a visual at a position. Implemented by the rendering layer.
type SpriteDrawer interface {
	DrawSprite(v Visual, pos Vec2, rotation float64, clr color.Color, depth float64)
}

// ShapeVisualFactory produces plain shape visuals with a square extent of the requested size
type ShapeVisualFactory struct{}

func (ShapeVisualFactory) CreateVisual(shape Shape, clr color.RGBA, size float64) Visual {
	return Visual{Shape: shape, Color: clr, Width: size, Height: size}
}

// Draw depths, lower is drawn first
const (
	DepthCollectible = 0.2
	DepthProjectile  = 0.4
	DepthEnemy       = 0.5
	DepthPlayer      = 0.8
)

var (
	ColorPlayer          = colornames.Limegreen
	ColorProjectile      = colornames.Yellow
	ColorGoldDrop        = colornames.Gold
	ColorExperienceDrop  = colornames.Deepskyblue
	ColorHealthDrop      = colornames.Crimson
	ColorInvincibleFlash = colornames.White
)
