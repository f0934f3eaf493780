package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamaran-inc/lamaran/internal/domain/catalog"
	"github.com/lamaran-inc/lamaran/internal/infrastructure/persistence/models"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
)

func createTestCategory(t *testing.T, name string) *catalog.Category {
	category, err := catalog.NewCategory(name)
	require.NoError(t, err)
	return category
}

func TestCategoryRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db, testLogger())
	ctx := context.Background()

	t.Run("create category successfully", func(t *testing.T) {
		category := createTestCategory(t, "Elegant")

		err := repo.Create(ctx, category)
		assert.NoError(t, err)
		assert.NotZero(t, category.ID())
	})

	t.Run("duplicate name returns conflict", func(t *testing.T) {
		first := createTestCategory(t, "Rustic")
		err := repo.Create(ctx, first)
		require.NoError(t, err)

		second := createTestCategory(t, "Rustic")
		err = repo.Create(ctx, second)
		assert.Error(t, err)
		assert.True(t, errors.IsAppError(err))
	})
}

func TestCategoryRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db, testLogger())
	ctx := context.Background()

	for _, name := range []string{"Classic", "Modern", "Floral"} {
		require.NoError(t, repo.Create(ctx, createTestCategory(t, name)))
	}

	t.Run("newest first", func(t *testing.T) {
		categories, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 3)
		assert.Equal(t, "Floral", categories[0].Name())
		assert.Equal(t, "Modern", categories[1].Name())
		assert.Equal(t, "Classic", categories[2].Name())
	})
}

func TestCategoryRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db, testLogger())
	ctx := context.Background()

	category := createTestCategory(t, "Minimalist")
	require.NoError(t, repo.Create(ctx, category))

	t.Run("existing category", func(t *testing.T) {
		found, err := repo.GetByID(ctx, category.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Minimalist", found.Name())
	})

	t.Run("missing category returns nil", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestCategoryRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db, testLogger())
	ctx := context.Background()

	category := createTestCategory(t, "Vintage")
	require.NoError(t, repo.Create(ctx, category))

	t.Run("rename category", func(t *testing.T) {
		require.NoError(t, category.Rename("Retro"))

		err := repo.Update(ctx, category)
		assert.NoError(t, err)

		found, err := repo.GetByID(ctx, category.ID())
		require.NoError(t, err)
		assert.Equal(t, "Retro", found.Name())
	})

	t.Run("missing category returns not found", func(t *testing.T) {
		ghost, err := catalog.ReconstructCategory(9999, "Ghost", category.CreatedAt())
		require.NoError(t, err)

		err = repo.Update(ctx, ghost)
		assert.True(t, errors.IsAppError(err))
	})
}

func TestCategoryRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db, testLogger())
	ctx := context.Background()

	category := createTestCategory(t, "Garden")
	require.NoError(t, repo.Create(ctx, category))

	t.Run("delete removes the row", func(t *testing.T) {
		err := repo.Delete(ctx, category.ID())
		assert.NoError(t, err)

		found, err := repo.GetByID(ctx, category.ID())
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("missing category returns not found", func(t *testing.T) {
		err := repo.Delete(ctx, 9999)
		assert.True(t, errors.IsAppError(err))
	})
}

func TestCategoryRepository_CountThemeRefs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db, testLogger())
	ctx := context.Background()

	category := createTestCategory(t, "Luxury")
	require.NoError(t, repo.Create(ctx, category))

	count, err := repo.CountThemeRefs(ctx, category.ID())
	require.NoError(t, err)
	assert.Zero(t, count)

	seedJoinRow := func(themeID uint) {
		err := db.Create(&models.ThemeCategoryModel{ThemeID: themeID, CategoryID: category.ID()}).Error
		require.NoError(t, err)
	}
	seedJoinRow(1)
	seedJoinRow(2)

	count, err = repo.CountThemeRefs(ctx, category.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCategoryRepository_ExistsByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db, testLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestCategory(t, "Tropical")))

	exists, err := repo.ExistsByName(ctx, "Tropical")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "Arctic")
	require.NoError(t, err)
	assert.False(t, exists)
}
