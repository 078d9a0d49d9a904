package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterByName(t *testing.T) {
	c, err := CharacterByName("")
	assert.NoError(t, err)
	assert.Nil(t, c)

	c, err = CharacterByName("RANGER")
	require.NoError(t, err)
	assert.Equal(t, "Ranger", c.Name)
	assert.Len(t, c.Modifiers, 3)
	for _, m := range c.Modifiers {
		assert.Equal(t, "Character", m.Source())
	}

	_, err = CharacterByName("wizard")
	assert.ErrorIs(t, err, ErrUnsupportedVariant)
}

func TestCharacterLookupsDoNotShareModifiers(t *testing.T) {
	a, err := CharacterByName("brawler")
	require.NoError(t, err)
	b, err := CharacterByName("brawler")
	require.NoError(t, err)

	assert.NotSame(t, a.Modifiers[0], b.Modifiers[0])
}

func TestCharacterNames(t *testing.T) {
	assert.Equal(t, []string{"brawler", "lucky", "ranger", "well-rounded"}, CharacterNames())
}

func TestRangerReachesFurther(t *testing.T) {
	ctx, _ := newTestContext(t)
	ranger, err := CharacterByName("ranger")
	require.NoError(t, err)
	p := NewPlayer(Vec2{X: 400, Y: 300}, ranger)
	p.Initialize(ctx)

	assert.Equal(t, 470.0, p.Weapons[0].EffectiveRange())
	assert.Equal(t, 80.0, p.Stats.MaxHealth())
}
