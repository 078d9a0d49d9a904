package game

import (
	"image/color"

	"github.com/google/uuid"
)

// EntityKind identifies the kind of entity
type EntityKind int

const (
	EntityKindPlayer EntityKind = iota
	EntityKindEnemy
	EntityKindProjectile
)

func (k EntityKind) String() string {
	switch k {
	case EntityKindPlayer:
		return "player"
	case EntityKindEnemy:
		return "enemy"
	case EntityKindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// DamageFilter is implemented by behaviors that can veto incoming damage
type DamageFilter interface {
	AcceptDamage(e *Entity, amount float64) bool
}

// DeathHandler is implemented by behaviors that react to their entity dying.
// OnDeath runs before the entity is marked dead.
type DeathHandler interface {
	OnDeath(e *Entity)
}

// ContentLoader is implemented by behaviors that finish setup once the entity is bound to a context
type ContentLoader interface {
	LoadContent(e *Entity)
}

// Entity is the shared record of every simulated object (player, enemy, projectile).
// Kind-specific logic lives in Behavior, which wraps the entity.
type Entity struct {
	// Unique id, stable across pooling resets
	ID uuid.UUID

	Kind EntityKind

	// Position in world coordinates (center of the visual)
	Pos Vec2

	// Velocity in pixels per second
	Vel Vec2

	// Rotation in radians
	Rotation float64

	// Whether this entity takes part in the simulation (used for pooling)
	Active bool

	// Dead implies !Active
	Dead bool

	// Axis-aligned bounds, always centered on Pos with the visual extent
	Bounds Rect

	// Shape and color requested from the visual factory on Initialize
	Shape Shape
	Color color.RGBA
	Size  float64

	Visual Visual

	Stats *StatsComponent

	// Behavior is the kind-specific owner of this entity (*Player, *Enemy, *Projectile)
	Behavior any

	ctx *Context
}

// NewEntity creates an active entity with a default stat block
func NewEntity(kind EntityKind, pos Vec2, shape Shape, clr color.RGBA, size float64) *Entity {
	e := &Entity{
		ID:     uuid.New(),
		Kind:   kind,
		Pos:    pos,
		Active: true,
		Shape:  shape,
		Color:  clr,
		Size:   size,
		Stats:  NewStatsComponent(),
	}
	e.Visual = Visual{Shape: shape, Color: clr, Width: size, Height: size}
	e.updateBounds()
	return e
}

// Context returns the simulation context bound by Initialize
func (e *Entity) Context() *Context {
	return e.ctx
}

// Initialize binds the entity to ctx and loads its visual extent
func (e *Entity) Initialize(ctx *Context) {
	e.ctx = ctx
	if ctx != nil && ctx.Visuals != nil {
		e.Visual = ctx.Visuals.CreateVisual(e.Shape, e.Color, e.Size)
	}
	e.updateBounds()

	if loader, ok := e.Behavior.(ContentLoader); ok {
		loader.LoadContent(e)
	}
}

// Update applies velocity to position and refreshes the bounds
func (e *Entity) Update(deltaTime float64) {
	if !e.Active {
		return
	}
	e.Pos = e.Pos.Add(e.Vel.Scale(deltaTime))
	e.updateBounds()
}

// IsActive reports whether the entity is live in the simulation
func (e *Entity) IsActive() bool {
	return e.Active && !e.Dead
}

// Position returns the entity position
func (e *Entity) Position() Vec2 {
	return e.Pos
}

// SetPosition moves the entity and refreshes the bounds
func (e *Entity) SetPosition(p Vec2) {
	e.Pos = p
	e.updateBounds()
}

// TakeDamage subtracts amount from health and kills the entity when health reaches 0.
// Dead entities ignore damage. The behavior may veto the damage through DamageFilter.
func (e *Entity) TakeDamage(amount float64) {
	if e.Dead {
		return
	}
	if f, ok := e.Behavior.(DamageFilter); ok && !f.AcceptDamage(e, amount) {
		return
	}

	e.Stats.SetHealth(e.Stats.Health() - amount)
	if e.Stats.Health() <= 0 {
		e.Die()
	}
}

// Die marks the entity dead and inactive after letting the behavior react
func (e *Entity) Die() {
	if e.Dead {
		return
	}
	if h, ok := e.Behavior.(DeathHandler); ok {
		h.OnDeath(e)
	}
	e.Dead = true
	e.Active = false
}

// Intersects checks bounds overlap with another entity
func (e *Entity) Intersects(other *Entity) bool {
	return e.Bounds.Intersects(other.Bounds)
}

// DistanceTo calculates the distance to another entity
func (e *Entity) DistanceTo(other *Entity) float64 {
	return e.Pos.Distance(other.Pos)
}

// Draw hands the entity to the rendering layer
func (e *Entity) Draw(d SpriteDrawer, depth float64) {
	if !e.IsActive() || d == nil {
		return
	}
	d.DrawSprite(e.Visual, e.Pos, e.Rotation, e.Visual.Color, depth)
}

// Reset resets the entity for reuse in pooling
func (e *Entity) Reset() {
	e.Pos = Vec2{}
	e.Vel = Vec2{}
	e.Rotation = 0
	e.Active = true
	e.Dead = false
	e.Stats.Reset()
	e.updateBounds()
}

func (e *Entity) updateBounds() {
	e.Bounds = RectCentered(e.Pos, e.Visual.Width, e.Visual.Height)
}
