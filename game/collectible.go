package game

import "image/color"

// CollectibleType identifies what a pickup grants
type CollectibleType int

const (
	CollectibleGold CollectibleType = iota
	CollectibleExperience
	CollectibleHealth
)

func (t CollectibleType) String() string {
	switch t {
	case CollectibleGold:
		return "gold"
	case CollectibleExperience:
		return "experience"
	case CollectibleHealth:
		return "health"
	default:
		return "unknown"
	}
}

// Collectible lifetime tuning
const (
	CollectibleMaxLifetime   = 15.0 // Seconds before the pickup expires
	CollectibleBlinkFraction = 0.7  // Fraction of the lifetime after which it blinks
	CollectibleBlinkPeriod   = 0.2  // Seconds between visibility toggles
	CollectibleSize          = 12.0
)

// Collectible is a timed pickup dropped by enemies
type Collectible struct {
	Pos    Vec2
	Active bool
	Type   CollectibleType
	Value  int

	lifetime   float64
	blinkTimer float64
	hidden     bool
}

// NewCollectible creates an active pickup at pos
func NewCollectible(t CollectibleType, value int, pos Vec2) *Collectible {
	return &Collectible{
		Pos:    pos,
		Active: true,
		Type:   t,
		Value:  value,
	}
}

// Update ages the pickup, toggles the blink phase and expires it at the max lifetime
func (c *Collectible) Update(deltaTime float64) {
	if !c.Active {
		return
	}

	c.lifetime += deltaTime
	if c.lifetime >= CollectibleMaxLifetime {
		c.Active = false
		return
	}

	if c.IsBlinking() {
		c.blinkTimer += deltaTime
		for c.blinkTimer >= CollectibleBlinkPeriod {
			c.blinkTimer -= CollectibleBlinkPeriod
			c.hidden = !c.hidden
		}
	}
}

// Lifetime returns the accumulated lifetime in seconds
func (c *Collectible) Lifetime() float64 {
	return c.lifetime
}

// IsBlinking reports whether the pickup is in its final blinking phase
func (c *Collectible) IsBlinking() bool {
	return c.lifetime >= CollectibleMaxLifetime*CollectibleBlinkFraction
}

// Visible reports whether the renderer should draw the pickup this frame
func (c *Collectible) Visible() bool {
	return c.Active && !c.hidden
}

// Collect deactivates the pickup immediately
func (c *Collectible) Collect() {
	c.Active = false
}

// Bounds returns the pickup area
func (c *Collectible) Bounds() Rect {
	return RectCentered(c.Pos, CollectibleSize, CollectibleSize)
}

// Apply grants the pickup to p and collects it. Inactive pickups do nothing.
func (c *Collectible) Apply(p *Player) bool {
	if !c.Active || p == nil || p.Dead {
		return false
	}
	switch c.Type {
	case CollectibleGold:
		p.AddGold(c.Value)
	case CollectibleExperience:
		p.AddExperience(c.Value)
	case CollectibleHealth:
		p.Heal(float64(c.Value))
	}
	c.Collect()
	return true
}

// Color returns the draw color for the pickup type
func (c *Collectible) Color() color.RGBA {
	switch c.Type {
	case CollectibleExperience:
		return ColorExperienceDrop
	case CollectibleHealth:
		return ColorHealthDrop
	default:
		return ColorGoldDrop
	}
}

// Draw hands the pickup to the rendering layer
func (c *Collectible) Draw(d SpriteDrawer) {
	if !c.Visible() || d == nil {
		return
	}
	v := Visual{Shape: ShapeCircle, Color: c.Color(), Width: CollectibleSize, Height: CollectibleSize}
	d.DrawSprite(v, c.Pos, 0, v.Color, DepthCollectible)
}

// CollectiblePool holds the live pickups of a simulation
type CollectiblePool struct {
	items []*Collectible
}

// NewCollectiblePool creates an empty pool
func NewCollectiblePool() *CollectiblePool {
	return &CollectiblePool{items: make([]*Collectible, 0, 64)}
}

// AddCollectible registers a pickup
func (p *CollectiblePool) AddCollectible(c *Collectible) {
	if c == nil {
		return
	}
	p.items = append(p.items, c)
}

// Update ages every pickup
func (p *CollectiblePool) Update(deltaTime float64) {
	for _, c := range p.items {
		c.Update(deltaTime)
	}
}

// Sweep drops collected and expired pickups
func (p *CollectiblePool) Sweep() {
	kept := p.items[:0]
	for _, c := range p.items {
		if c.Active {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(p.items); i++ {
		p.items[i] = nil
	}
	p.items = kept
}

// Active returns the pickups that are still live
func (p *CollectiblePool) Active() []*Collectible {
	out := make([]*Collectible, 0, len(p.items))
	for _, c := range p.items {
		if c.Active {
			out = append(out, c)
		}
	}
	return out
}

// Items returns the pickups currently registered, including ones not yet swept
func (p *CollectiblePool) Items() []*Collectible {
	return p.items
}

// Len returns the number of registered pickups
func (p *CollectiblePool) Len() int {
	return len(p.items)
}
