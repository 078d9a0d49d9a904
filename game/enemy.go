package game

import (
	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"

	"survivorslike/logger"
)

// Enemy is an AI-driven entity that chases the local player and grants rewards on death
type Enemy struct {
	*Entity

	Type EnemyType

	// Rewards, also read by the HUD
	ScoreValue      int
	ExperienceValue int
	GoldValue       int

	// Combat parameters
	DetectionRange float64
	AttackRange    float64
	AttackDamage   float64
	AttackSpeed    float64 // Attacks per second

	attackTimer float64
	fsm         *fsm.FSM
}

// NewEnemy creates an enemy of the given type at pos. Call Initialize before updating it.
func NewEnemy(enemyType EnemyType, pos Vec2) *Enemy {
	cfg := GetEnemyTypeConfig(enemyType)

	e := &Enemy{
		Entity: NewEntity(EntityKindEnemy, pos, cfg.Shape, cfg.Color, cfg.Size),
	}
	e.Entity.Behavior = e
	e.applyTypeConfig(cfg)
	e.fsm = newEnemyFSM(e)
	return e
}

func (e *Enemy) applyTypeConfig(cfg EnemyTypeConfig) {
	e.Type = cfg.Type
	e.Entity.Stats = NewStatsComponentFrom(cfg.baseStats())
	e.ScoreValue = cfg.ScoreValue
	e.ExperienceValue = cfg.ExperienceValue
	e.GoldValue = cfg.GoldValue
	e.DetectionRange = cfg.DetectionRange
	e.AttackRange = cfg.AttackRange
	e.AttackDamage = cfg.AttackDamage
	e.AttackSpeed = cfg.AttackSpeed
	e.attackTimer = 0
}

// State returns the current AI state
func (e *Enemy) State() AIState {
	return parseAIState(e.fsm.Current())
}

// Target returns the local player of the bound context, or nil
func (e *Enemy) Target() *Player {
	ctx := e.Context()
	if ctx == nil {
		return nil
	}
	return ctx.LocalPlayer()
}

// Update advances kinematics, ticks the attack cooldown and runs the AI
func (e *Enemy) Update(deltaTime float64) {
	if !e.IsActive() {
		return
	}
	e.Entity.Update(deltaTime)
	e.attackTimer -= deltaTime
	e.updateAI(deltaTime)
}

// Attack hits the target if it is within attack range
func (e *Enemy) Attack() {
	target := e.Target()
	if target == nil || target.Dead {
		return
	}
	if e.DistanceTo(target.Entity) > e.AttackRange {
		return
	}
	target.TakeDamage(e.AttackDamage)
}

// OnDeath grants experience and gold to the living target and rolls a loot drop.
// Every death is logged; deaths without a live target are marked as not rewarded.
func (e *Enemy) OnDeath(_ *Entity) {
	fields := logrus.Fields{
		"component":  "enemy",
		"enemy_id":   e.ID,
		"enemy_type": GetEnemyTypeConfig(e.Type).Name,
		"rewarded":   false,
	}

	target := e.Target()
	if target == nil || target.Dead {
		logger.Log.WithFields(fields).Debug("Enemy died")
		return
	}

	target.AddExperience(e.ExperienceValue)
	target.AddGold(e.GoldValue)

	ctx := e.Context()
	drop := RollLoot(ctx.Rand, e.Pos, e.ExperienceValue, e.GoldValue)
	if drop != nil {
		ctx.spawnCollectible(drop)
	}

	fields["rewarded"] = true
	fields["xp"] = e.ExperienceValue
	fields["gold"] = e.GoldValue
	fields["drop"] = "none"
	if drop != nil {
		fields["drop"] = drop.Type.String()
		fields["drop_value"] = drop.Value
	}
	logger.Log.WithFields(fields).Debug("Enemy died")
}

// Reset prepares a pooled enemy for reuse as the given type
func (e *Enemy) Reset(enemyType EnemyType, pos Vec2) {
	cfg := GetEnemyTypeConfig(enemyType)
	e.Entity.Reset()
	e.Entity.Shape = cfg.Shape
	e.Entity.Color = cfg.Color
	e.Entity.Size = cfg.Size
	e.applyTypeConfig(cfg)
	e.fsm.SetState(AIStateChase.String())
	e.Initialize(e.Context())
	e.SetPosition(pos)
}
