package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomIsReproducible(t *testing.T) {
	a := NewRandom(testSeed)
	b := NewRandom(testSeed)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
	assert.Equal(t, int64(testSeed), a.Seed())
}

func TestRandomZeroSeedPicksOne(t *testing.T) {
	assert.NotZero(t, NewRandom(0).Seed())
}

func TestRandomRanges(t *testing.T) {
	r := NewRandom(testSeed)

	for i := 0; i < 500; i++ {
		n := r.IntRange(5, 15)
		assert.GreaterOrEqual(t, n, 5)
		assert.Less(t, n, 15)

		f := r.FloatRange(-10, 10)
		assert.GreaterOrEqual(t, f, -10.0)
		assert.Less(t, f, 10.0)
	}

	assert.Equal(t, 7, r.IntRange(7, 7))
	assert.Equal(t, 0, r.Intn(0))
	assert.False(t, r.Chance(0))
	assert.True(t, r.Chance(1))
}

func TestRandomEnemyTypeDistribution(t *testing.T) {
	r := NewRandom(testSeed)
	counts := map[EnemyType]int{}
	for i := 0; i < 10000; i++ {
		counts[RandomEnemyType(r)]++
	}

	assert.InDelta(t, 6000, counts[EnemyTypeBasic], 300)
	assert.InDelta(t, 2500, counts[EnemyTypeRunner], 300)
	assert.InDelta(t, 1500, counts[EnemyTypeBrute], 300)
}
