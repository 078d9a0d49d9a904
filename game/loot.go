package game

// Loot drop tuning
const (
	LootDropChance = 0.7  // Chance that a dying enemy drops anything
	LootJitter     = 10.0 // Max offset of the drop from the death position, per axis
)

// DropEntry maps a slice [previous upper bound, Upper) of the drop roll to a collectible type
type DropEntry struct {
	Type  CollectibleType
	Upper float64
}

// DefaultDropTable is the cumulative drop table used by enemies:
// 60% gold, 30% experience, 10% health.
var DefaultDropTable = []DropEntry{
	{Type: CollectibleGold, Upper: 0.6},
	{Type: CollectibleExperience, Upper: 0.9},
	{Type: CollectibleHealth, Upper: 1.0},
}

// PickDrop returns the entry type whose cumulative range contains roll.
// ok is false if roll falls past the last entry.
func PickDrop(table []DropEntry, roll float64) (CollectibleType, bool) {
	for _, entry := range table {
		if roll < entry.Upper {
			return entry.Type, true
		}
	}
	return CollectibleGold, false
}

// DropValue rolls the value of a drop of type t for an enemy worth xpValue / goldValue.
// Values are raised to at least 1, unlike the raw multiplier formulas, which give 0 for
// small enemies (e.g. goldValue 1 with multiplier 1). A drop always grants something.
func DropValue(r *Random, t CollectibleType, xpValue, goldValue int) int {
	var v int
	switch t {
	case CollectibleGold:
		v = r.IntRange(1, 5) * goldValue / 2
	case CollectibleExperience:
		v = r.IntRange(1, 3) * xpValue / 2
	case CollectibleHealth:
		v = r.IntRange(5, 15)
	}
	if v < 1 {
		v = 1
	}
	return v
}

// RollLoot decides whether an enemy dying at pos drops a collectible and builds it.
// Returns nil when nothing drops.
func RollLoot(r *Random, pos Vec2, xpValue, goldValue int) *Collectible {
	if r == nil || !r.Chance(LootDropChance) {
		return nil
	}
	return rollDrop(r, r.Float64(), pos, xpValue, goldValue)
}

func rollDrop(r *Random, roll float64, pos Vec2, xpValue, goldValue int) *Collectible {
	t, ok := PickDrop(DefaultDropTable, roll)
	value := 1
	if ok {
		value = DropValue(r, t, xpValue, goldValue)
	}

	offset := Vec2{
		X: r.FloatRange(-LootJitter, LootJitter),
		Y: r.FloatRange(-LootJitter, LootJitter),
	}
	return NewCollectible(t, value, pos.Add(offset))
}
