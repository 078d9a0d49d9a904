package game

// CollisionSystem resolves projectile hits and keeps enemies from stacking, using a spatial grid
type CollisionSystem struct {
	grid *SpatialGrid

	// Reused between queries
	scratch []*Enemy
	order   map[*Enemy]int
}

// NewCollisionSystem creates a collision system covering the viewport of config
func NewCollisionSystem(config Config) *CollisionSystem {
	w, h := config.ViewportSize()
	return &CollisionSystem{
		grid:    NewSpatialGrid(w, h, DefaultCellSize),
		scratch: make([]*Enemy, 0, 32),
		order:   make(map[*Enemy]int),
	}
}

// Rebuild refreshes the grid from the current enemy positions
func (c *CollisionSystem) Rebuild(enemies []*Enemy) {
	c.grid.Rebuild(enemies)
}

// ResolveProjectiles lets every active projectile hit at most one nearby enemy. Returns the number of hits.
func (c *CollisionSystem) ResolveProjectiles(projectiles []*Projectile) int {
	hits := 0
	for _, p := range projectiles {
		if !p.IsActive() {
			continue
		}
		c.scratch = c.grid.Near(p.Pos, p.Size, c.scratch[:0])
		if p.Hit(c.scratch) != nil {
			hits++
		}
	}
	clear(c.scratch)
	return hits
}

// SeparateEnemies pushes overlapping enemies apart. Each pair is resolved once.
func (c *CollisionSystem) SeparateEnemies(enemies []*Enemy) {
	clear(c.order)
	for i, e := range enemies {
		c.order[e] = i
	}

	for i, e := range enemies {
		if !e.IsActive() {
			continue
		}
		c.scratch = c.grid.Near(e.Pos, e.Size, c.scratch[:0])
		for _, other := range c.scratch {
			if j, ok := c.order[other]; !ok || j <= i || !other.IsActive() {
				continue
			}
			pushApart(e.Entity, other.Entity)
		}
	}
	clear(c.scratch)
}

// pushApart moves both entities away from each other by half of their circular overlap
func pushApart(e1, e2 *Entity) {
	dir := e2.Pos.Sub(e1.Pos)
	distance := dir.Len()
	if distance == 0 {
		// Exactly on top of each other, separate diagonally
		dir = Vec2{X: 1, Y: 1}
		distance = dir.Len()
	}
	dir = dir.Scale(1 / distance)

	overlap := (e1.Size+e2.Size)/2 - distance
	if overlap <= 0 {
		return
	}
	separation := overlap * 0.5
	e1.SetPosition(e1.Pos.Sub(dir.Scale(separation)))
	e2.SetPosition(e2.Pos.Add(dir.Scale(separation)))
}
