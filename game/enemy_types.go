package game

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// EnemyType defines different types of enemies
type EnemyType int

const (
	EnemyTypeBasic  EnemyType = iota // Walks at the player and hits in melee
	EnemyTypeRunner                  // Fast and fragile
	EnemyTypeBrute                   // Slow, tough, hits hard
	EnemyTypeCount
)

// EnemyTypeConfig holds configuration for each enemy type
type EnemyTypeConfig struct {
	Type   EnemyType
	Name   string
	Health float64
	Speed  float64
	Size   float64
	Shape  Shape
	Color  color.RGBA

	// Combat
	DetectionRange float64
	AttackRange    float64
	AttackDamage   float64
	AttackSpeed    float64 // Attacks per second

	// Rewards on death
	ScoreValue      int
	ExperienceValue int
	GoldValue       int
}

// GetEnemyTypeConfig returns configuration for an enemy type
func GetEnemyTypeConfig(enemyType EnemyType) EnemyTypeConfig {
	switch enemyType {
	case EnemyTypeBasic:
		return EnemyTypeConfig{
			Type:            EnemyTypeBasic,
			Name:            "Basic",
			Health:          30,
			Speed:           100,
			Size:            24,
			Shape:           ShapeSquare,
			Color:           colornames.Orangered,
			DetectionRange:  400,
			AttackRange:     50,
			AttackDamage:    10,
			AttackSpeed:     1,
			ScoreValue:      10,
			ExperienceValue: 5,
			GoldValue:       2,
		}
	case EnemyTypeRunner:
		return EnemyTypeConfig{
			Type:            EnemyTypeRunner,
			Name:            "Runner",
			Health:          15,
			Speed:           170,
			Size:            18,
			Shape:           ShapeTriangle,
			Color:           colornames.Orange,
			DetectionRange:  500,
			AttackRange:     40,
			AttackDamage:    6,
			AttackSpeed:     1.5,
			ScoreValue:      15,
			ExperienceValue: 4,
			GoldValue:       2,
		}
	case EnemyTypeBrute:
		return EnemyTypeConfig{
			Type:            EnemyTypeBrute,
			Name:            "Brute",
			Health:          90,
			Speed:           60,
			Size:            36,
			Shape:           ShapeDiamond,
			Color:           colornames.Darkred,
			DetectionRange:  350,
			AttackRange:     60,
			AttackDamage:    20,
			AttackSpeed:     0.5,
			ScoreValue:      30,
			ExperienceValue: 12,
			GoldValue:       6,
		}
	default:
		return GetEnemyTypeConfig(EnemyTypeBasic)
	}
}

// baseStats builds the stat baseline of an enemy type
func (c EnemyTypeConfig) baseStats() StatBlock {
	base := DefaultStats()
	base[StatHealth] = c.Health
	base[StatMaxHealth] = c.Health
	base[StatSpeed] = c.Speed
	return base
}

// RandomEnemyType returns a random enemy type (weighted towards basic)
func RandomEnemyType(r *Random) EnemyType {
	roll := r.Float64()
	switch {
	case roll < 0.6:
		return EnemyTypeBasic
	case roll < 0.85:
		return EnemyTypeRunner
	default:
		return EnemyTypeBrute
	}
}
