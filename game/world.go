package game

import (
	"math"

	"github.com/sirupsen/logrus"

	"survivorslike/logger"
)

// Spawn ring width beyond Config.SpawnDistance
const spawnDistanceJitter = 200.0

// World owns every entity of one simulation and advances them in a fixed order
type World struct {
	Config Config

	ctx *Context

	Player       *Player
	Enemies      []*Enemy
	Projectiles  []*Projectile
	Collectibles *CollectiblePool
	Shop         *Shop

	// OnEnemyKilled, when set, is called once for every enemy removed after dying
	OnEnemyKilled func(e *Enemy)

	collisions *CollisionSystem

	// Dead enemies kept for reuse
	enemyPool []*Enemy

	spawnTimer float64
	elapsed    float64
	score      int
	kills      int
}

// Summary is a read-only snapshot of the run used by the HUD and the headless runner
type Summary struct {
	Elapsed      float64
	Score        int
	Kills        int
	Enemies      int
	Projectiles  int
	Collectibles int
	Level        int
	Experience   int
	Gold         int
	Health       float64
	MaxHealth    float64
	PlayerDead   bool
}

// NewWorld creates a world with the local player centered in the viewport
func NewWorld(config Config) (*World, error) {
	character, err := CharacterByName(config.Character)
	if err != nil {
		return nil, err
	}

	w := &World{
		Config:       config,
		ctx:          NewContext(config),
		Enemies:      make([]*Enemy, 0, config.MaxEnemies),
		Projectiles:  make([]*Projectile, 0, 256),
		Collectibles: NewCollectiblePool(),
		Shop:         NewShop(),
		collisions:   NewCollisionSystem(config),
		enemyPool:    make([]*Enemy, 0, config.MaxEnemies),
		spawnTimer:   config.SpawnInterval,
	}
	w.ctx.Collectibles = w.Collectibles
	w.ctx.Projectiles = w
	w.ctx.Enemies = w

	w.Player = NewPlayer(w.center(), character)
	w.Player.Initialize(w.ctx)

	logger.Log.WithFields(logrus.Fields{
		"component": "world",
		"seed":      w.ctx.Rand.Seed(),
		"character": config.Character,
		"wander":    config.EnableWander,
	}).Info("World created")
	return w, nil
}

// Context returns the simulation context shared by the entities of this world
func (w *World) Context() *Context {
	return w.ctx
}

func (w *World) center() Vec2 {
	vw, vh := w.Config.ViewportSize()
	return Vec2{X: vw / 2, Y: vh / 2}
}

// AddProjectile registers a projectile fired by a weapon
func (w *World) AddProjectile(p *Projectile) {
	if p == nil {
		return
	}
	w.Projectiles = append(w.Projectiles, p)
}

// LiveEnemies returns the enemies that can still be targeted
func (w *World) LiveEnemies() []*Enemy {
	live := make([]*Enemy, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		if e.IsActive() {
			live = append(live, e)
		}
	}
	return live
}

// SpawnEnemy places an enemy of the given type, reusing a pooled one when available
func (w *World) SpawnEnemy(enemyType EnemyType, pos Vec2) *Enemy {
	var e *Enemy
	if n := len(w.enemyPool); n > 0 {
		e = w.enemyPool[n-1]
		w.enemyPool = w.enemyPool[:n-1]
		e.Reset(enemyType, pos)
	} else {
		e = NewEnemy(enemyType, pos)
		e.Initialize(w.ctx)
	}
	w.Enemies = append(w.Enemies, e)
	return e
}

// Tick advances the simulation by deltaTime seconds
func (w *World) Tick(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	if w.Config.MaxDeltaTime > 0 && deltaTime > w.Config.MaxDeltaTime {
		deltaTime = w.Config.MaxDeltaTime
	}
	w.elapsed += deltaTime

	// Player movement and weapons
	w.Player.Update(deltaTime)

	// Enemies: kinematics, AI, attacks
	for _, e := range w.Enemies {
		e.Update(deltaTime)
	}
	w.collisions.Rebuild(w.Enemies)
	w.collisions.SeparateEnemies(w.Enemies)
	w.collisions.Rebuild(w.Enemies)

	// Projectiles and hits
	for _, p := range w.Projectiles {
		p.Update(deltaTime)
	}
	w.collisions.ResolveProjectiles(w.Projectiles)

	w.pickupCollectibles()
	w.Collectibles.Update(deltaTime)

	w.sweep()
	w.updateSpawner(deltaTime)
}

func (w *World) pickupCollectibles() {
	if !w.Player.IsActive() {
		return
	}
	for _, c := range w.Collectibles.Items() {
		if c.Active && w.Player.Bounds.Intersects(c.Bounds()) {
			c.Apply(w.Player)
		}
	}
}

func (w *World) sweep() {
	live := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.IsActive() {
			live = append(live, e)
			continue
		}
		if e.Dead {
			w.score += e.ScoreValue
			w.kills++
			if w.OnEnemyKilled != nil {
				w.OnEnemyKilled(e)
			}
		}
		w.enemyPool = append(w.enemyPool, e)
	}
	for i := len(live); i < len(w.Enemies); i++ {
		w.Enemies[i] = nil
	}
	w.Enemies = live

	projectiles := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if p.IsActive() {
			projectiles = append(projectiles, p)
		}
	}
	for i := len(projectiles); i < len(w.Projectiles); i++ {
		w.Projectiles[i] = nil
	}
	w.Projectiles = projectiles

	w.Collectibles.Sweep()
}

func (w *World) updateSpawner(deltaTime float64) {
	if !w.Player.IsActive() || w.Config.SpawnInterval <= 0 {
		return
	}
	w.spawnTimer -= deltaTime
	for w.spawnTimer <= 0 {
		w.spawnTimer += w.Config.SpawnInterval
		if len(w.Enemies) >= w.Config.MaxEnemies {
			continue
		}
		w.SpawnEnemy(RandomEnemyType(w.ctx.Rand), w.spawnPosition())
	}
}

// spawnPosition picks a point on a ring around the player, clamped to the viewport
func (w *World) spawnPosition() Vec2 {
	r := w.ctx.Rand
	dist := w.Config.SpawnDistance + r.FloatRange(0, spawnDistanceJitter)
	angle := r.FloatRange(0, 2*math.Pi)
	pos := w.Player.Pos.Add(Vec2{X: math.Cos(angle) * dist, Y: math.Sin(angle) * dist})

	vw, vh := w.Config.ViewportSize()
	pos.X = math.Max(0, math.Min(pos.X, vw))
	pos.Y = math.Max(0, math.Min(pos.Y, vh))
	return pos
}

// Restart clears the field and revives the player in the center
func (w *World) Restart() {
	for _, e := range w.Enemies {
		e.Active = false
		w.enemyPool = append(w.enemyPool, e)
	}
	w.Enemies = w.Enemies[:0]
	w.Projectiles = w.Projectiles[:0]
	w.Collectibles = NewCollectiblePool()
	w.ctx.Collectibles = w.Collectibles

	w.Player.Reset(w.center())
	w.spawnTimer = w.Config.SpawnInterval
	w.elapsed = 0
	w.score = 0
	w.kills = 0

	logger.Log.WithField("component", "world").Info("World restarted")
}

// Summary returns the current run statistics
func (w *World) Summary() Summary {
	return Summary{
		Elapsed:      w.elapsed,
		Score:        w.score,
		Kills:        w.kills,
		Enemies:      len(w.Enemies),
		Projectiles:  len(w.Projectiles),
		Collectibles: w.Collectibles.Len(),
		Level:        w.Player.Level,
		Experience:   w.Player.Experience,
		Gold:         w.Player.Gold,
		Health:       w.Player.Stats.Health(),
		MaxHealth:    w.Player.Stats.MaxHealth(),
		PlayerDead:   w.Player.Dead,
	}
}

// Draw submits every visible entity to d, back to front
func (w *World) Draw(d SpriteDrawer) {
	if d == nil {
		return
	}
	for _, c := range w.Collectibles.Items() {
		c.Draw(d)
	}
	for _, p := range w.Projectiles {
		p.Draw(d, DepthProjectile)
	}
	for _, e := range w.Enemies {
		e.Draw(d, DepthEnemy)
	}

	if !w.Player.IsActive() {
		return
	}
	if w.Player.IsInvincible() && int(w.elapsed*10)%2 == 0 {
		d.DrawSprite(w.Player.Visual, w.Player.Pos, w.Player.Rotation, ColorInvincibleFlash, DepthPlayer)
		return
	}
	w.Player.Draw(d, DepthPlayer)
}
