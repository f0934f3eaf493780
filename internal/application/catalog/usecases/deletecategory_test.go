package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamaran-inc/lamaran/internal/domain/catalog"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type stubCategoryRepo struct {
	category  *catalog.Category
	themeRefs int64
	deleted   []uint
	err       error
}

func (s *stubCategoryRepo) Create(ctx context.Context, category *catalog.Category) error {
	return s.err
}

func (s *stubCategoryRepo) GetByID(ctx context.Context, id uint) (*catalog.Category, error) {
	return s.category, s.err
}

func (s *stubCategoryRepo) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.Category, error) {
	if s.category != nil {
		return []*catalog.Category{s.category}, s.err
	}
	return nil, s.err
}

func (s *stubCategoryRepo) List(ctx context.Context) ([]*catalog.Category, error) {
	if s.category != nil {
		return []*catalog.Category{s.category}, s.err
	}
	return nil, s.err
}

func (s *stubCategoryRepo) Update(ctx context.Context, category *catalog.Category) error {
	return s.err
}

func (s *stubCategoryRepo) Delete(ctx context.Context, id uint) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubCategoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return s.category != nil && s.category.Name() == name, s.err
}

func (s *stubCategoryRepo) CountThemeRefs(ctx context.Context, id uint) (int64, error) {
	return s.themeRefs, s.err
}

func storedCategory(t *testing.T, id uint, name string) *catalog.Category {
	category, err := catalog.NewCategory(name)
	require.NoError(t, err)
	require.NoError(t, category.SetID(id))
	return category
}

func TestDeleteCategory_Success(t *testing.T) {
	repo := &stubCategoryRepo{category: storedCategory(t, 7, "Rustic")}
	uc := NewDeleteCategoryUseCase(repo, logger.NewLogger())

	err := uc.Execute(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, []uint{7}, repo.deleted)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	repo := &stubCategoryRepo{}
	uc := NewDeleteCategoryUseCase(repo, logger.NewLogger())

	err := uc.Execute(context.Background(), 99)

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	assert.Empty(t, repo.deleted)
}

func TestDeleteCategory_BlockedWhileReferenced(t *testing.T) {
	repo := &stubCategoryRepo{category: storedCategory(t, 7, "Rustic"), themeRefs: 3}
	uc := NewDeleteCategoryUseCase(repo, logger.NewLogger())

	err := uc.Execute(context.Background(), 7)

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConstraint, appErr.Type)
	assert.Empty(t, repo.deleted)
}
