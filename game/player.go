package game

import (
	"math"

	"github.com/sirupsen/logrus"

	"survivorslike/logger"
)

// Player tuning
const (
	PlayerSize                  = 32.0
	PlayerInvincibilityDuration = 0.5 // Seconds of damage immunity after a hit
	experienceThresholdPerLevel = 100
)

// Player is the locally controlled entity
type Player struct {
	*Entity

	Weapons []*Weapon

	Gold                  int
	Level                 int
	Experience            int
	ExperienceToNextLevel int

	// Optional template applied on initialization
	Character *PlayerCharacter

	// Movement input, queried once per tick. Nil means no movement.
	Input InputSource

	invincibleTimer float64
}

// NewPlayer creates a level 1 player at pos. character may be nil.
// Call Initialize to apply the character and designate it as the local player.
func NewPlayer(pos Vec2, character *PlayerCharacter) *Player {
	clr := ColorPlayer
	if character != nil {
		clr = character.Color
	}
	p := &Player{
		Entity:    NewEntity(EntityKindPlayer, pos, ShapeSquare, clr, PlayerSize),
		Character: character,
	}
	p.Entity.Behavior = p
	p.resetProgress()
	return p
}

func (p *Player) resetProgress() {
	p.Gold = 0
	p.Level = 1
	p.Experience = 0
	p.ExperienceToNextLevel = experienceThresholdPerLevel
	p.invincibleTimer = 0
}

// LoadContent applies the loadout and makes p the local player of its context
func (p *Player) LoadContent(e *Entity) {
	p.applyLoadout()
	if ctx := e.Context(); ctx != nil {
		ctx.SetLocalPlayer(p)
	}
}

// applyLoadout adds character modifiers, then a default ranged weapon when none is owned
func (p *Player) applyLoadout() {
	if p.Character != nil {
		for _, m := range p.Character.Modifiers {
			p.Stats.AddModifier(m)
		}
	}
	if len(p.Weapons) == 0 {
		w, err := NewWeapon(WeaponKindRanged)
		if err != nil {
			logger.Log.WithError(err).Warn("Failed to create default weapon")
			return
		}
		p.AddWeapon(w)
	}
}

// Update moves the player from input, clamps it to the viewport and runs its weapons
func (p *Player) Update(deltaTime float64) {
	if !p.IsActive() {
		return
	}

	if p.invincibleTimer > 0 {
		p.invincibleTimer -= deltaTime
	}

	var dir Vec2
	if p.Input != nil {
		dir = p.Input.Intent().Vector()
	}
	p.Vel = dir.Scale(p.Stats.Speed())
	if dir.X != 0 || dir.Y != 0 {
		p.Rotation = math.Atan2(dir.Y, dir.X)
	}

	p.Entity.Update(deltaTime)
	p.clampToViewport()

	for _, w := range p.Weapons {
		w.Update(deltaTime)
	}
}

func (p *Player) clampToViewport() {
	ctx := p.Context()
	if ctx == nil {
		return
	}
	w, h := ctx.Config.ViewportSize()
	halfW := p.Visual.Width / 2
	halfH := p.Visual.Height / 2
	p.SetPosition(Vec2{
		X: clamp(p.Pos.X, halfW, w-halfW),
		Y: clamp(p.Pos.Y, halfH, h-halfH),
	})
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}

// AcceptDamage rejects damage during the invincibility window and starts a new window otherwise
func (p *Player) AcceptDamage(_ *Entity, _ float64) bool {
	if p.invincibleTimer > 0 {
		return false
	}
	p.invincibleTimer = PlayerInvincibilityDuration
	return true
}

// IsInvincible reports whether incoming damage is currently ignored
func (p *Player) IsInvincible() bool {
	return p.invincibleTimer > 0
}

// OnDeath logs the end of the run
func (p *Player) OnDeath(_ *Entity) {
	logger.Log.WithFields(logrus.Fields{
		"component": "player",
		"player_id": p.ID,
		"level":     p.Level,
		"gold":      p.Gold,
	}).Info("Player died")
}

// AddWeapon takes ownership of w and appends it to the weapon list
func (p *Player) AddWeapon(w *Weapon) {
	if w == nil {
		return
	}
	w.owner = p
	p.Weapons = append(p.Weapons, w)
}

// AddExperience adds n experience and levels up while the threshold is reached.
// The level-up loop runs even for n == 0 so Experience always ends below the threshold.
func (p *Player) AddExperience(n int) {
	if n < 0 {
		return
	}
	p.Experience += n
	for p.ExperienceToNextLevel > 0 && p.Experience >= p.ExperienceToNextLevel {
		p.Experience -= p.ExperienceToNextLevel
		p.Level++
		p.ExperienceToNextLevel = experienceThresholdPerLevel * p.Level

		logger.Log.WithFields(logrus.Fields{
			"component": "player",
			"level":     p.Level,
			"next":      p.ExperienceToNextLevel,
		}).Info("Level up")
	}
}

// AddGold adds n gold. Negative amounts are ignored.
func (p *Player) AddGold(n int) {
	if n <= 0 {
		return
	}
	p.Gold += n
}

// SpendGold deducts cost if the player can afford it
func (p *Player) SpendGold(cost int) bool {
	if cost < 0 || cost > p.Gold {
		return false
	}
	p.Gold -= cost
	return true
}

// Heal restores health, clamped to MaxHealth
func (p *Player) Heal(amount float64) {
	if p.Dead {
		return
	}
	p.Stats.Heal(amount)
}

// Reset revives the player at pos with a fresh loadout. The local designation is untouched.
func (p *Player) Reset(pos Vec2) {
	p.Entity.Reset()
	p.Weapons = nil
	p.resetProgress()
	p.applyLoadout()
	p.SetPosition(pos)
}
