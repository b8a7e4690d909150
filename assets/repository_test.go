package assets

import (
	"testing"

	"github.com/automoto/streetbrawl/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRepositoryPlayerClips(t *testing.T) {
	set := DefaultRepository().Set("player")
	require.NotNil(t, set)

	assert.Equal(t, 9, set.Frames(config.AnimIdle))
	assert.Equal(t, 11, set.Frames(config.AnimWalk))
	assert.Equal(t, 4, set.Frames(config.AttackAnim(0)))
	assert.Equal(t, 3, set.Frames(config.AttackAnim(1)))
	assert.Equal(t, 5, set.Frames(config.AttackAnim(2)))
}

func TestMissingDataFallsBack(t *testing.T) {
	repo := DefaultRepository()

	enemy := repo.Set("enemy")
	assert.Nil(t, enemy)

	_, ok := enemy.Lookup(config.AttackAnim(0))
	assert.False(t, ok)
	assert.Equal(t, 0, enemy.Frames(config.AnimIdle))
	assert.Empty(t, enemy.Keys())

	var nilRepo *Repository
	assert.Nil(t, nilRepo.Set("player"))
}

func TestRepositoryCopiesDefinitions(t *testing.T) {
	defs := map[string]map[string]config.AnimationDef{
		"x": {"idle": {First: 0, Last: 1, Step: 1, Speed: 5}},
	}
	repo := NewRepository(defs)
	defs["x"]["idle"] = config.AnimationDef{}

	assert.Equal(t, 2, repo.Set("x").Frames("idle"))
	assert.Equal(t, []string{"idle"}, repo.Set("x").Keys())
}
