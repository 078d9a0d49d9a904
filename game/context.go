package game

// CollectibleSink receives collectibles spawned during the simulation
type CollectibleSink interface {
	AddCollectible(c *Collectible)
}

// ProjectileSink receives projectiles fired by weapons
type ProjectileSink interface {
	AddProjectile(p *Projectile)
}

// EnemySource lists the enemies weapons may target
type EnemySource interface {
	LiveEnemies() []*Enemy
}

// Context is the runtime shared by every entity of one simulation.
// It replaces process-wide globals: the local player, the registries and the random source.
type Context struct {
	Config       Config
	Rand         *Random
	Visuals      VisualFactory
	Collectibles CollectibleSink
	Projectiles  ProjectileSink
	Enemies      EnemySource

	localPlayer *Player
}

// NewContext creates a context with a generator seeded from cfg.Seed and plain shape visuals.
// Registries are left nil; spawns submitted without a registry are dropped.
func NewContext(cfg Config) *Context {
	return &Context{
		Config:  cfg,
		Rand:    NewRandom(cfg.Seed),
		Visuals: ShapeVisualFactory{},
	}
}

// LocalPlayer returns the player controlled on this process, or nil
func (c *Context) LocalPlayer() *Player {
	return c.localPlayer
}

// SetLocalPlayer designates p as the local player, replacing any previous one
func (c *Context) SetLocalPlayer(p *Player) {
	c.localPlayer = p
}

func (c *Context) spawnCollectible(col *Collectible) {
	if c.Collectibles != nil {
		c.Collectibles.AddCollectible(col)
	}
}

func (c *Context) spawnProjectile(p *Projectile) {
	if c.Projectiles != nil {
		c.Projectiles.AddProjectile(p)
	}
}

func (c *Context) liveEnemies() []*Enemy {
	if c.Enemies == nil {
		return nil
	}
	return c.Enemies.LiveEnemies()
}
