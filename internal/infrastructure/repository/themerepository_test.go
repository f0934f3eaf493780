package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamaran-inc/lamaran/internal/domain/appearance"
	"github.com/lamaran-inc/lamaran/internal/domain/catalog"
	"github.com/lamaran-inc/lamaran/internal/infrastructure/persistence/models"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
)

func seedCategories(t *testing.T, repo catalog.CategoryRepository, names ...string) []*catalog.Category {
	ctx := context.Background()
	out := make([]*catalog.Category, 0, len(names))
	for _, name := range names {
		category := createTestCategory(t, name)
		require.NoError(t, repo.Create(ctx, category))
		out = append(out, category)
	}
	return out
}

func seedTag(t *testing.T, repo catalog.TagRepository, name string) *catalog.Tag {
	tag, err := catalog.NewTag(name, appearance.GradientAmberYellow, appearance.IconStar)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), tag))
	return tag
}

func TestThemeRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	log := testLogger()
	themeRepo := NewThemeRepository(db, log)
	categoryRepo := NewCategoryRepository(db, log)
	tagRepo := NewTagRepository(db, log)
	ctx := context.Background()

	categories := seedCategories(t, categoryRepo, "Elegant", "Rustic")
	tag := seedTag(t, tagRepo, "New")

	t.Run("create theme with associations", func(t *testing.T) {
		theme, err := catalog.NewTheme("Sakura", 150000, "https://demo.example.com/sakura",
			categories, []*catalog.Tag{tag})
		require.NoError(t, err)

		err = themeRepo.Create(ctx, theme)
		assert.NoError(t, err)
		assert.NotZero(t, theme.ID())

		found, err := themeRepo.GetByID(ctx, theme.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Sakura", found.Name())
		assert.Equal(t, 150000, found.Price())
		assert.ElementsMatch(t, []uint{categories[0].ID(), categories[1].ID()}, found.CategoryIDs())
		assert.ElementsMatch(t, []uint{tag.ID()}, found.TagIDs())
	})

	t.Run("missing theme returns nil", func(t *testing.T) {
		found, err := themeRepo.GetByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestThemeRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	log := testLogger()
	themeRepo := NewThemeRepository(db, log)
	categoryRepo := NewCategoryRepository(db, log)
	ctx := context.Background()

	categories := seedCategories(t, categoryRepo, "Classic", "Modern", "Floral")

	theme, err := catalog.NewTheme("Aurora", 200000, "", categories[:2], nil)
	require.NoError(t, err)
	require.NoError(t, themeRepo.Create(ctx, theme))

	t.Run("replaces both join sets", func(t *testing.T) {
		require.NoError(t, theme.Update("Aurora Pro", 250000, "https://demo.example.com/aurora"))
		require.NoError(t, theme.ReplaceCategories(categories[1:]))

		err := themeRepo.Update(ctx, theme)
		assert.NoError(t, err)

		found, err := themeRepo.GetByID(ctx, theme.ID())
		require.NoError(t, err)
		assert.Equal(t, "Aurora Pro", found.Name())
		assert.Equal(t, 250000, found.Price())
		assert.ElementsMatch(t, []uint{categories[1].ID(), categories[2].ID()}, found.CategoryIDs())

		var joinRows int64
		require.NoError(t, db.Model(&models.ThemeCategoryModel{}).
			Where("theme_id = ?", theme.ID()).Count(&joinRows).Error)
		assert.Equal(t, int64(2), joinRows)
	})

	t.Run("missing theme returns not found", func(t *testing.T) {
		ghost, err := catalog.ReconstructTheme(9999, "Ghost", 0, "", nil,
			categories[:1], nil, theme.CreatedAt(), theme.UpdatedAt())
		require.NoError(t, err)

		err = themeRepo.Update(ctx, ghost)
		assert.True(t, errors.IsAppError(err))
	})
}

func TestThemeRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	log := testLogger()
	themeRepo := NewThemeRepository(db, log)
	categoryRepo := NewCategoryRepository(db, log)
	tagRepo := NewTagRepository(db, log)
	ctx := context.Background()

	categories := seedCategories(t, categoryRepo, "Garden")
	tag := seedTag(t, tagRepo, "Best Seller")

	theme, err := catalog.NewTheme("Meadow", 100000, "", categories, []*catalog.Tag{tag})
	require.NoError(t, err)
	require.NoError(t, themeRepo.Create(ctx, theme))

	t.Run("delete removes join rows", func(t *testing.T) {
		err := themeRepo.Delete(ctx, theme.ID())
		assert.NoError(t, err)

		found, err := themeRepo.GetByID(ctx, theme.ID())
		require.NoError(t, err)
		assert.Nil(t, found)

		var categoryRows, tagRows int64
		require.NoError(t, db.Model(&models.ThemeCategoryModel{}).
			Where("theme_id = ?", theme.ID()).Count(&categoryRows).Error)
		require.NoError(t, db.Model(&models.ThemeTagModel{}).
			Where("theme_id = ?", theme.ID()).Count(&tagRows).Error)
		assert.Zero(t, categoryRows)
		assert.Zero(t, tagRows)
	})

	t.Run("missing theme returns not found", func(t *testing.T) {
		err := themeRepo.Delete(ctx, 9999)
		assert.True(t, errors.IsAppError(err))
	})
}

func TestThemeRepository_List(t *testing.T) {
	db := setupTestDB(t)
	log := testLogger()
	themeRepo := NewThemeRepository(db, log)
	categoryRepo := NewCategoryRepository(db, log)
	ctx := context.Background()

	categories := seedCategories(t, categoryRepo, "Minimal")

	for _, name := range []string{"Ocean", "Desert", "Forest"} {
		theme, err := catalog.NewTheme(name, 50000, "", categories, nil)
		require.NoError(t, err)
		require.NoError(t, themeRepo.Create(ctx, theme))
	}

	themes, err := themeRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, themes, 3)
	assert.Equal(t, "Forest", themes[0].Name())
	assert.Equal(t, "Desert", themes[1].Name())
	assert.Equal(t, "Ocean", themes[2].Name())
}

func TestThemeRepository_NamesByIDs(t *testing.T) {
	db := setupTestDB(t)
	log := testLogger()
	themeRepo := NewThemeRepository(db, log)
	categoryRepo := NewCategoryRepository(db, log)
	ctx := context.Background()

	categories := seedCategories(t, categoryRepo, "Minimal")

	ids := make([]uint, 0, 2)
	for _, name := range []string{"Ocean", "Desert"} {
		theme, err := catalog.NewTheme(name, 50000, "", categories, nil)
		require.NoError(t, err)
		require.NoError(t, themeRepo.Create(ctx, theme))
		ids = append(ids, theme.ID())
	}

	t.Run("resolves known identifiers", func(t *testing.T) {
		names, err := themeRepo.NamesByIDs(ctx, ids)
		require.NoError(t, err)
		assert.Equal(t, map[uint]string{ids[0]: "Ocean", ids[1]: "Desert"}, names)
	})

	t.Run("unknown identifiers are absent", func(t *testing.T) {
		names, err := themeRepo.NamesByIDs(ctx, []uint{ids[0], 9999})
		require.NoError(t, err)
		assert.Equal(t, map[uint]string{ids[0]: "Ocean"}, names)
	})

	t.Run("empty input skips the query", func(t *testing.T) {
		names, err := themeRepo.NamesByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}
