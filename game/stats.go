package game

// StatType identifies one of the numeric attributes of a stat block
type StatType int

const (
	StatHealth StatType = iota
	StatMaxHealth
	StatSpeed
	StatDamage
	StatAttackSpeed // Percent bonus to weapon fire rate
	StatRange       // Flat bonus to weapon range in pixels
	StatCriticalChance
	StatCriticalDamage
	StatHarvesting
	StatEngineering
	StatLuck
	StatCount // Total number of stats
)

var statNames = [StatCount]string{
	StatHealth:         "Health",
	StatMaxHealth:      "MaxHealth",
	StatSpeed:          "Speed",
	StatDamage:         "Damage",
	StatAttackSpeed:    "AttackSpeed",
	StatRange:          "Range",
	StatCriticalChance: "CriticalChance",
	StatCriticalDamage: "CriticalDamage",
	StatHarvesting:     "Harvesting",
	StatEngineering:    "Engineering",
	StatLuck:           "Luck",
}

func (s StatType) String() string {
	if s < 0 || s >= StatCount {
		return "Unknown"
	}
	return statNames[s]
}

// StatBlock holds one value per stat
type StatBlock [StatCount]float64

// DefaultStats returns the built-in baseline every stat component starts from
func DefaultStats() StatBlock {
	return StatBlock{
		StatHealth:         100,
		StatMaxHealth:      100,
		StatSpeed:          200,
		StatDamage:         0,
		StatAttackSpeed:    0,
		StatRange:          0,
		StatCriticalChance: 0.05,
		StatCriticalDamage: 1.5,
		StatHarvesting:     0,
		StatEngineering:    0,
		StatLuck:           0,
	}
}

// StatModifier is an additive delta applied to a single stat.
// Modifiers are compared by pointer when removed, so keep the pointer returned by NewStatModifier.
type StatModifier struct {
	stat   StatType
	value  float64
	source string
}

// NewStatModifier creates a modifier adding value to stat, labeled with source
func NewStatModifier(stat StatType, value float64, source string) *StatModifier {
	return &StatModifier{stat: stat, value: value, source: source}
}

func (m *StatModifier) Stat() StatType { return m.stat }

func (m *StatModifier) Value() float64 { return m.value }

func (m *StatModifier) Source() string { return m.source }

// StatsComponent stores the effective stats of an entity and the modifiers applied to it.
//
// Effective values are always recomputed from the baseline plus every modifier, never
// patched incrementally. Recomputing sets Health back to MaxHealth; callers that need
// to keep partial health across a modifier change must snapshot and restore it.
type StatsComponent struct {
	base      StatBlock
	values    StatBlock
	modifiers []*StatModifier
}

// NewStatsComponent creates a component using DefaultStats as its baseline
func NewStatsComponent() *StatsComponent {
	return NewStatsComponentFrom(DefaultStats())
}

// NewStatsComponentFrom creates a component with a custom baseline (used by enemy types)
func NewStatsComponentFrom(base StatBlock) *StatsComponent {
	return &StatsComponent{
		base:   base,
		values: base,
	}
}

// Get returns the effective value of a stat
func (s *StatsComponent) Get(stat StatType) float64 {
	if stat < 0 || stat >= StatCount {
		return 0
	}
	return s.values[stat]
}

// Base returns the baseline value of a stat
func (s *StatsComponent) Base(stat StatType) float64 {
	if stat < 0 || stat >= StatCount {
		return 0
	}
	return s.base[stat]
}

func (s *StatsComponent) Health() float64 { return s.values[StatHealth] }

func (s *StatsComponent) MaxHealth() float64 { return s.values[StatMaxHealth] }

func (s *StatsComponent) Speed() float64 { return s.values[StatSpeed] }

// SetHealth overwrites current health without clamping
func (s *StatsComponent) SetHealth(v float64) {
	s.values[StatHealth] = v
}

// Modifiers returns a copy of the applied modifiers in insertion order
func (s *StatsComponent) Modifiers() []*StatModifier {
	out := make([]*StatModifier, len(s.modifiers))
	copy(out, s.modifiers)
	return out
}

// AddModifier appends m and recomputes every stat
func (s *StatsComponent) AddModifier(m *StatModifier) {
	if m == nil {
		return
	}
	s.modifiers = append(s.modifiers, m)
	s.recalculate()
}

// RemoveModifier removes the first entry that is the same pointer as m and recomputes.
// Returns false if m was not applied.
func (s *StatsComponent) RemoveModifier(m *StatModifier) bool {
	for i, existing := range s.modifiers {
		if existing == m {
			s.modifiers = append(s.modifiers[:i], s.modifiers[i+1:]...)
			s.recalculate()
			return true
		}
	}
	return false
}

// ClearModifiers drops every modifier and restores the baseline
func (s *StatsComponent) ClearModifiers() {
	s.modifiers = s.modifiers[:0]
	s.recalculate()
}

// Reset is ClearModifiers; kept separate so entity pooling reads naturally
func (s *StatsComponent) Reset() {
	s.ClearModifiers()
}

// Heal adds amount to health, clamped to [0, MaxHealth]
func (s *StatsComponent) Heal(amount float64) {
	h := s.values[StatHealth] + amount
	if h > s.values[StatMaxHealth] {
		h = s.values[StatMaxHealth]
	}
	if h < 0 {
		h = 0
	}
	s.values[StatHealth] = h
}

func (s *StatsComponent) recalculate() {
	s.values = s.base
	for _, m := range s.modifiers {
		if m.stat < 0 || m.stat >= StatCount {
			continue
		}
		s.values[m.stat] += m.value
	}
	s.values[StatHealth] = s.values[StatMaxHealth]
}
