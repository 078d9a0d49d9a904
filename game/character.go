package game

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"golang.org/x/image/colornames"
)

// PlayerCharacter is a selectable template applied to the player on initialization
type PlayerCharacter struct {
	Name        string
	Description string
	Color       color.RGBA
	Modifiers   []*StatModifier
}

// characterSource tags modifiers applied from a character template
const characterSource = "Character"

// builtinCharacters returns fresh templates so callers never share modifier instances
func builtinCharacters() map[string]*PlayerCharacter {
	return map[string]*PlayerCharacter{
		"well-rounded": {
			Name:        "Well-rounded",
			Description: "No strengths, no weaknesses",
			Color:       colornames.Limegreen,
		},
		"brawler": {
			Name:        "Brawler",
			Description: "Tough and hard hitting, but slow",
			Color:       colornames.Saddlebrown,
			Modifiers: []*StatModifier{
				NewStatModifier(StatMaxHealth, 30, characterSource),
				NewStatModifier(StatDamage, 5, characterSource),
				NewStatModifier(StatSpeed, -30, characterSource),
			},
		},
		"ranger": {
			Name:        "Ranger",
			Description: "Fast and far reaching, but fragile",
			Color:       colornames.Forestgreen,
			Modifiers: []*StatModifier{
				NewStatModifier(StatRange, 120, characterSource),
				NewStatModifier(StatAttackSpeed, 20, characterSource),
				NewStatModifier(StatMaxHealth, -20, characterSource),
			},
		},
		"lucky": {
			Name:        "Lucky",
			Description: "Crits more often",
			Color:       colornames.Gold,
			Modifiers: []*StatModifier{
				NewStatModifier(StatCriticalChance, 0.15, characterSource),
				NewStatModifier(StatLuck, 10, characterSource),
			},
		},
	}
}

// CharacterByName looks up a character template. An empty name yields nil.
func CharacterByName(name string) (*PlayerCharacter, error) {
	if name == "" {
		return nil, nil
	}
	c, ok := builtinCharacters()[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("character %q: %w", name, ErrUnsupportedVariant)
	}
	return c, nil
}

// CharacterNames lists the keys accepted by CharacterByName
func CharacterNames() []string {
	chars := builtinCharacters()
	names := make([]string, 0, len(chars))
	for k := range chars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
