package usecases

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamaran-inc/lamaran/internal/domain/asset"
	"github.com/lamaran-inc/lamaran/internal/domain/catalog"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type stubThemeRepo struct {
	theme   *catalog.Theme
	deleted []uint
	err     error
}

func (s *stubThemeRepo) Create(ctx context.Context, theme *catalog.Theme) error {
	return s.err
}

func (s *stubThemeRepo) GetByID(ctx context.Context, id uint) (*catalog.Theme, error) {
	return s.theme, s.err
}

func (s *stubThemeRepo) List(ctx context.Context) ([]*catalog.Theme, error) {
	if s.theme != nil {
		return []*catalog.Theme{s.theme}, s.err
	}
	return nil, s.err
}

func (s *stubThemeRepo) Update(ctx context.Context, theme *catalog.Theme) error {
	return s.err
}

func (s *stubThemeRepo) Delete(ctx context.Context, id uint) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubThemeRepo) NamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error) {
	return nil, s.err
}

type stubAssetStore struct {
	stored    []string
	deleted   []string
	deleteErr error
}

func (s *stubAssetStore) Store(ctx context.Context, content io.Reader, folder, originalName string) (string, error) {
	url := "/uploads/" + folder + "/" + originalName
	s.stored = append(s.stored, url)
	return url, nil
}

func (s *stubAssetStore) Delete(ctx context.Context, url string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, url)
	return nil
}

func storedTheme(t *testing.T, id uint, image *string) *catalog.Theme {
	category, err := catalog.ReconstructCategory(1, "Elegant", time.Now())
	require.NoError(t, err)
	theme, err := catalog.ReconstructTheme(id, "Sakura", 150000, "", image,
		[]*catalog.Category{category}, nil, time.Now(), time.Now())
	require.NoError(t, err)
	return theme
}

func TestDeleteTheme_RemovesStoredImage(t *testing.T) {
	imageURL := "/uploads/themes/sakura.png"
	repo := &stubThemeRepo{theme: storedTheme(t, 4, &imageURL)}
	store := &stubAssetStore{}
	uc := NewDeleteThemeUseCase(repo, store, logger.NewLogger())

	err := uc.Execute(context.Background(), 4)

	assert.NoError(t, err)
	assert.Equal(t, []uint{4}, repo.deleted)
	assert.Equal(t, []string{imageURL}, store.deleted)
}

func TestDeleteTheme_NoImageSkipsAssetStore(t *testing.T) {
	repo := &stubThemeRepo{theme: storedTheme(t, 4, nil)}
	store := &stubAssetStore{}
	uc := NewDeleteThemeUseCase(repo, store, logger.NewLogger())

	err := uc.Execute(context.Background(), 4)

	assert.NoError(t, err)
	assert.Empty(t, store.deleted)
}

func TestDeleteTheme_AssetFailureDoesNotFailDelete(t *testing.T) {
	imageURL := "/uploads/themes/sakura.png"
	repo := &stubThemeRepo{theme: storedTheme(t, 4, &imageURL)}
	store := &stubAssetStore{deleteErr: asset.ErrNotFound}
	uc := NewDeleteThemeUseCase(repo, store, logger.NewLogger())

	err := uc.Execute(context.Background(), 4)

	assert.NoError(t, err)
	assert.Equal(t, []uint{4}, repo.deleted)
}

func TestDeleteTheme_NotFound(t *testing.T) {
	repo := &stubThemeRepo{}
	uc := NewDeleteThemeUseCase(repo, &stubAssetStore{}, logger.NewLogger())

	err := uc.Execute(context.Background(), 99)

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	assert.Empty(t, repo.deleted)
}
