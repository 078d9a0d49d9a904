package game

import (
	"context"
	"math"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"

	"survivorslike/logger"
)

// AIState represents the current AI behavior state
type AIState int

const (
	AIStateWander AIState = iota
	AIStateChase
	AIStateAttack
)

func (s AIState) String() string {
	switch s {
	case AIStateWander:
		return "wander"
	case AIStateChase:
		return "chase"
	case AIStateAttack:
		return "attack"
	default:
		return "unknown"
	}
}

func parseAIState(s string) AIState {
	switch s {
	case "wander":
		return AIStateWander
	case "attack":
		return AIStateAttack
	default:
		return AIStateChase
	}
}

// Wander tuning
const (
	wanderRedirectChance = 0.02 // Per tick
	wanderSpeedFactor    = 0.5
)

var allAIStates = []string{
	AIStateWander.String(),
	AIStateChase.String(),
	AIStateAttack.String(),
}

// newEnemyFSM builds the state holder for one enemy. Every state can reach every other
// state; the event name equals the destination state.
func newEnemyFSM(e *Enemy) *fsm.FSM {
	events := make(fsm.Events, 0, len(allAIStates))
	for _, dst := range allAIStates {
		events = append(events, fsm.EventDesc{Name: dst, Src: allAIStates, Dst: dst})
	}

	return fsm.NewFSM(
		AIStateChase.String(),
		events,
		fsm.Callbacks{
			"enter_state": func(_ context.Context, ev *fsm.Event) {
				logger.Log.WithFields(logrus.Fields{
					"component": "enemy_ai",
					"enemy_id":  e.ID,
					"from":      ev.Src,
					"to":        ev.Dst,
				}).Trace("AI state changed")
			},
		},
	)
}

// decideState picks the state for this tick from scratch. No hysteresis.
func (e *Enemy) decideState(distance float64) AIState {
	if distance <= e.AttackRange {
		return AIStateAttack
	}
	if e.wanderEnabled() && distance > e.DetectionRange {
		return AIStateWander
	}
	return AIStateChase
}

func (e *Enemy) wanderEnabled() bool {
	ctx := e.Context()
	return ctx != nil && ctx.Config.EnableWander
}

func (e *Enemy) setState(s AIState) {
	if e.State() == s {
		return
	}
	if err := e.fsm.Event(context.Background(), s.String()); err != nil {
		logger.Log.WithError(err).WithField("enemy_id", e.ID).Warn("AI transition rejected")
	}
}

// updateAI recomputes the state from the distance to the target and runs its handler
func (e *Enemy) updateAI(deltaTime float64) {
	target := e.Target()
	if target == nil || target.Dead {
		return
	}

	e.setState(e.decideState(e.DistanceTo(target.Entity)))

	switch e.State() {
	case AIStateChase:
		e.chase(target)
	case AIStateAttack:
		e.Vel = Vec2{}
		if e.attackTimer <= 0 && e.AttackSpeed > 0 {
			e.Attack()
			e.attackTimer = 1 / e.AttackSpeed
		}
	case AIStateWander:
		e.wander()
	}
}

func (e *Enemy) chase(target *Player) {
	dir := target.Pos.Sub(e.Pos)
	if dir.X != 0 || dir.Y != 0 {
		dir = dir.Normalize()
	}
	e.Vel = dir.Scale(e.Stats.Speed())
	if dir.X != 0 || dir.Y != 0 {
		e.Rotation = math.Atan2(dir.Y, dir.X)
	}
}

func (e *Enemy) wander() {
	ctx := e.Context()
	if ctx == nil {
		return
	}
	if (e.Vel == Vec2{}) || ctx.Rand.Chance(wanderRedirectChance) {
		e.Rotation = ctx.Rand.FloatRange(0, 2*math.Pi)
		speed := e.Stats.Speed() * wanderSpeedFactor
		e.Vel = Vec2{math.Cos(e.Rotation) * speed, math.Sin(e.Rotation) * speed}
	}
}
