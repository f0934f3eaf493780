package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamaran-inc/lamaran/internal/domain/testimonial"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
)

func createTestTestimonial(t *testing.T, name string, rating int) *testimonial.Testimonial {
	tm, err := testimonial.NewTestimonial(name, "Bride", "The invitation looked beautiful.", "Resepsi Pernikahan", rating)
	require.NoError(t, err)
	return tm
}

func TestTestimonialRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTestimonialRepository(db, testLogger())
	ctx := context.Background()

	t.Run("create testimonial with details", func(t *testing.T) {
		tm := createTestTestimonial(t, "Ayu", 5)
		email := "ayu@example.com"
		weddingOn := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)
		themeID := uint(3)
		tm.SetDetails(&email, &weddingOn, &themeID)

		err := repo.Create(ctx, tm)
		assert.NoError(t, err)
		assert.NotZero(t, tm.ID())

		found, err := repo.GetByID(ctx, tm.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Ayu", found.Name())
		assert.Equal(t, 5, found.Rating())
		assert.Equal(t, "Resepsi Pernikahan", found.Event())
		require.NotNil(t, found.Email())
		assert.Equal(t, "ayu@example.com", *found.Email())
		require.NotNil(t, found.ThemeID())
		assert.Equal(t, uint(3), *found.ThemeID())
		assert.True(t, found.IsActive())
		assert.False(t, found.IsApproved())
	})
}

func TestTestimonialRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTestimonialRepository(db, testLogger())
	ctx := context.Background()

	tm := createTestTestimonial(t, "Dimas", 4)
	require.NoError(t, repo.Create(ctx, tm))

	t.Run("approval persists the timestamp", func(t *testing.T) {
		tm.Approve()
		err := repo.Update(ctx, tm)
		assert.NoError(t, err)

		found, err := repo.GetByID(ctx, tm.ID())
		require.NoError(t, err)
		assert.True(t, found.IsApproved())
		assert.NotNil(t, found.ApprovedAt())
	})

	t.Run("deactivation persists", func(t *testing.T) {
		tm.SetActive(false)
		err := repo.Update(ctx, tm)
		assert.NoError(t, err)

		found, err := repo.GetByID(ctx, tm.ID())
		require.NoError(t, err)
		assert.False(t, found.IsActive())
	})

	t.Run("missing testimonial returns not found", func(t *testing.T) {
		ghost := createTestTestimonial(t, "Ghost", 3)
		require.NoError(t, ghost.SetID(9999))

		err := repo.Update(ctx, ghost)
		assert.True(t, errors.IsAppError(err))
	})
}

func TestTestimonialRepository_ListVisible(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTestimonialRepository(db, testLogger())
	ctx := context.Background()

	pending := createTestTestimonial(t, "Pending", 4)
	require.NoError(t, repo.Create(ctx, pending))

	plain := createTestTestimonial(t, "Plain", 5)
	plain.Approve()
	require.NoError(t, repo.Create(ctx, plain))

	featured := createTestTestimonial(t, "Featured", 5)
	featured.Approve()
	featured.SetFeatured(true, 10)
	require.NoError(t, repo.Create(ctx, featured))

	retired := createTestTestimonial(t, "Retired", 5)
	retired.Approve()
	retired.SetActive(false)
	require.NoError(t, repo.Create(ctx, retired))

	t.Run("filters unapproved and inactive, ranks featured first", func(t *testing.T) {
		visible, err := repo.ListVisible(ctx)
		require.NoError(t, err)
		require.Len(t, visible, 2)
		assert.Equal(t, "Featured", visible[0].Name())
		assert.Equal(t, "Plain", visible[1].Name())
	})

	t.Run("admin list includes pending and inactive entries", func(t *testing.T) {
		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 4)
		assert.Equal(t, "Featured", all[0].Name())
	})
}

func TestTestimonialRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTestimonialRepository(db, testLogger())
	ctx := context.Background()

	tm := createTestTestimonial(t, "Ratna", 5)
	require.NoError(t, repo.Create(ctx, tm))

	err := repo.Delete(ctx, tm.ID())
	assert.NoError(t, err)

	found, err := repo.GetByID(ctx, tm.ID())
	require.NoError(t, err)
	assert.Nil(t, found)

	err = repo.Delete(ctx, tm.ID())
	assert.True(t, errors.IsAppError(err))
}
