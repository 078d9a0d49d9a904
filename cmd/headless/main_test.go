package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survivorslike/game"
	"survivorslike/logger"
)

func TestMain(m *testing.M) {
	logger.Silence()
	os.Exit(m.Run())
}

func newQuietWorld(t *testing.T) *game.World {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Seed = 7
	cfg.SpawnInterval = 0
	w, err := game.NewWorld(cfg)
	require.NoError(t, err)
	return w
}

func TestFleeBotMovesAwayFromNearestEnemy(t *testing.T) {
	w := newQuietWorld(t)
	bot := &fleeBot{world: w}
	assert.Equal(t, game.MoveIntent{}, bot.Intent(), "nothing to flee from")

	w.SpawnEnemy(game.EnemyTypeBasic, w.Player.Pos.Add(game.Vec2{X: 100, Y: -100}))
	assert.Equal(t, game.MoveIntent{Down: true, Left: true}, bot.Intent())
}

func TestFleeBotIgnoresDistantEnemies(t *testing.T) {
	w := newQuietWorld(t)
	w.SpawnEnemy(game.EnemyTypeBasic, w.Player.Pos.Add(game.Vec2{X: 300}))

	assert.Equal(t, game.MoveIntent{}, (&fleeBot{world: w}).Intent())
}

func TestShopRoundBuysMostExpensiveAffordable(t *testing.T) {
	w := newQuietWorld(t)
	w.Player.AddGold(45)

	shopRound(w)

	assert.Len(t, w.Player.Weapons, 2, "combat knife bought")
	assert.Equal(t, 5, w.Player.Gold)

	shopRound(w)
	assert.Equal(t, 5, w.Player.Gold, "nothing affordable")
}
