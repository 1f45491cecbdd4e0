package sqlite_test

import (
	"testing"

	"personalhub/cmd/internal/domain/entity"
	"personalhub/cmd/internal/domain/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFillsAllTables(t *testing.T) {
	db, err := sqlite.Init(":memory:")
	require.NoError(t, err)

	require.NoError(t, sqlite.Seed(db))

	counts := map[any]int64{
		&entity.Task{}:              5,
		&entity.DashboardNote{}:     3,
		&entity.Habit{}:             4,
		&entity.Bookmark{}:          4,
		&entity.ToolNote{}:          3,
		&entity.ToolFile{}:          4,
		&entity.CommunityPost{}:     6,
		&entity.ContactSubmission{}: 2,
	}
	for model, want := range counts {
		var got int64
		require.NoError(t, db.Model(model).Count(&got).Error)
		assert.EqualValues(t, want, got)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db, err := sqlite.Init(":memory:")
	require.NoError(t, err)

	require.NoError(t, sqlite.Seed(db))
	require.NoError(t, sqlite.Seed(db))

	var tasks, posts int64
	require.NoError(t, db.Model(&entity.Task{}).Count(&tasks).Error)
	require.NoError(t, db.Model(&entity.CommunityPost{}).Count(&posts).Error)

	assert.EqualValues(t, 5, tasks)
	assert.EqualValues(t, 6, posts)
}

func TestSeedSkipsPopulatedTable(t *testing.T) {
	db, err := sqlite.Init(":memory:")
	require.NoError(t, err)

	existing := &entity.Task{Text: "mine", Priority: "medium", CreatedAt: "2025-01-01T00:00:00.000Z"}
	require.NoError(t, db.Create(existing).Error)

	require.NoError(t, sqlite.Seed(db))

	var tasks int64
	require.NoError(t, db.Model(&entity.Task{}).Count(&tasks).Error)
	assert.EqualValues(t, 1, tasks)

	// Empty tables still get their sample rows.
	var habits int64
	require.NoError(t, db.Model(&entity.Habit{}).Count(&habits).Error)
	assert.EqualValues(t, 4, habits)
}
