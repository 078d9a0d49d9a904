package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"survivorslike/game"
)

// Death burst tuning
const (
	deathBurstParticles = 14
	maxParticles        = 600
	particleSpeedMin    = 60.0
	particleSpeedMax    = 180.0
	particleLifeMin     = 0.25
	particleLifeMax     = 0.6
	particleSizeMin     = 1.5
	particleSizeMax     = 3.5
)

// particle is a purely visual fragment, it never touches the simulation
type particle struct {
	pos      game.Vec2
	vel      game.Vec2
	age      float64
	lifetime float64
	color    color.RGBA
	size     float64
}

func (p *particle) alive() bool {
	return p.age < p.lifetime
}

// particleSystem holds the short-lived effects spawned by enemy deaths
type particleSystem struct {
	particles []particle
	rng       *rand.Rand
}

func newParticleSystem(seed int64) *particleSystem {
	return &particleSystem{
		particles: make([]particle, 0, maxParticles),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

func (ps *particleSystem) between(lo, hi float64) float64 {
	return lo + ps.rng.Float64()*(hi-lo)
}

// Burst emits n particles radially from pos
func (ps *particleSystem) Burst(pos game.Vec2, clr color.RGBA, n int) {
	for i := 0; i < n && len(ps.particles) < maxParticles; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := ps.between(particleSpeedMin, particleSpeedMax)
		ps.particles = append(ps.particles, particle{
			pos:      pos,
			vel:      game.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			lifetime: ps.between(particleLifeMin, particleLifeMax),
			color:    clr,
			size:     ps.between(particleSizeMin, particleSizeMax),
		})
	}
}

// Update ages particles and drops dead ones
func (ps *particleSystem) Update(dt float64) {
	kept := ps.particles[:0]
	for _, p := range ps.particles {
		p.age += dt
		p.pos = p.pos.Add(p.vel.Scale(dt))
		if p.alive() {
			kept = append(kept, p)
		}
	}
	ps.particles = kept
}

// Clear removes every particle
func (ps *particleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

// Draw renders particles fading out with age
func (ps *particleSystem) Draw(screen *ebiten.Image) {
	for _, p := range ps.particles {
		alpha := math.Max(0, math.Min(1, 1-p.age/p.lifetime))
		clr := color.NRGBA{R: p.color.R, G: p.color.G, B: p.color.B, A: uint8(255 * alpha)}
		vector.DrawFilledCircle(screen, float32(p.pos.X), float32(p.pos.Y), float32(p.size), clr, true)
	}
}
