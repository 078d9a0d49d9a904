package game

import "fmt"

// WeaponKind defines the weapon families a player can own
type WeaponKind int

const (
	WeaponKindMelee WeaponKind = iota
	WeaponKindRanged
)

func (k WeaponKind) String() string {
	switch k {
	case WeaponKindMelee:
		return "melee"
	case WeaponKindRanged:
		return "ranged"
	default:
		return "unknown"
	}
}

// WeaponConfig holds the level 1 parameters of each weapon kind
type WeaponConfig struct {
	Kind            WeaponKind
	Name            string
	Damage          float64
	Cooldown        float64 // Seconds between attacks
	Range           float64 // Max distance to the target in pixels
	ProjectileSpeed float64 // Ranged only
}

// Upgrade multipliers applied per level
const (
	WeaponUpgradeDamageFactor   = 1.2
	WeaponUpgradeCooldownFactor = 0.95
)

// GetWeaponConfig returns configuration for a weapon kind
func GetWeaponConfig(kind WeaponKind) (WeaponConfig, error) {
	switch kind {
	case WeaponKindMelee:
		return WeaponConfig{
			Kind:     WeaponKindMelee,
			Name:     "Knife",
			Damage:   12,
			Cooldown: 0.8,
			Range:    70,
		}, nil
	case WeaponKindRanged:
		return WeaponConfig{
			Kind:            WeaponKindRanged,
			Name:            "Pistol",
			Damage:          8,
			Cooldown:        1.0,
			Range:           350,
			ProjectileSpeed: 500,
		}, nil
	default:
		return WeaponConfig{}, fmt.Errorf("weapon kind %d: %w", int(kind), ErrUnsupportedVariant)
	}
}
