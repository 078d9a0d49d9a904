package game

import "math"

// DefaultCellSize is the side of one spatial grid cell in pixels
const DefaultCellSize = 100.0

// SpatialGrid buckets enemies by the cell containing their center.
// Queries scan the neighbouring cells too, so an enemy overlapping a cell border is still found.
type SpatialGrid struct {
	cellSize   float64
	cols, rows int

	// Preallocated cells, indexed [x][y]
	cells [][][]*Enemy
}

// NewSpatialGrid creates a grid covering width x height
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	cols := max(1, int(math.Ceil(width/cellSize)))
	rows := max(1, int(math.Ceil(height/cellSize)))

	cells := make([][][]*Enemy, cols)
	for x := 0; x < cols; x++ {
		cells[x] = make([][]*Enemy, rows)
		for y := 0; y < rows; y++ {
			cells[x][y] = make([]*Enemy, 0, 8)
		}
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// cellOf converts world coordinates to cell coordinates, clamped to the grid
func (g *SpatialGrid) cellOf(p Vec2) (int, int) {
	cx := int(math.Floor(p.X / g.cellSize))
	cy := int(math.Floor(p.Y / g.cellSize))
	cx = max(0, min(cx, g.cols-1))
	cy = max(0, min(cy, g.rows-1))
	return cx, cy
}

// Clear empties every cell, keeping capacity
func (g *SpatialGrid) Clear() {
	for x := range g.cells {
		for y := range g.cells[x] {
			clear(g.cells[x][y])
			g.cells[x][y] = g.cells[x][y][:0]
		}
	}
}

// Rebuild clears the grid and inserts every active enemy
func (g *SpatialGrid) Rebuild(enemies []*Enemy) {
	g.Clear()
	for _, e := range enemies {
		if !e.IsActive() {
			continue
		}
		cx, cy := g.cellOf(e.Pos)
		g.cells[cx][cy] = append(g.cells[cx][cy], e)
	}
}

// Near appends to out the enemies stored in cells within radius of pos, plus one ring of
// neighbouring cells. Callers still need an exact overlap test.
func (g *SpatialGrid) Near(pos Vec2, radius float64, out []*Enemy) []*Enemy {
	minX, minY := g.cellOf(Vec2{X: pos.X - radius, Y: pos.Y - radius})
	maxX, maxY := g.cellOf(Vec2{X: pos.X + radius, Y: pos.Y + radius})
	minX, minY = max(0, minX-1), max(0, minY-1)
	maxX, maxY = min(g.cols-1, maxX+1), min(g.rows-1, maxY+1)

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			out = append(out, g.cells[x][y]...)
		}
	}
	return out
}
