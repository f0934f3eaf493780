package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamaran-inc/lamaran/internal/domain/asset"
	"github.com/lamaran-inc/lamaran/internal/shared/config"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

func newTestStore(t *testing.T, maxBytes int64) *LocalStore {
	cfg := &config.StorageConfig{
		BaseDir:        t.TempDir(),
		BaseURL:        "/uploads",
		MaxUploadBytes: maxBytes,
	}
	return NewLocalStore(cfg, logger.NewLogger())
}

func TestLocalStore_Store(t *testing.T) {
	ctx := context.Background()

	t.Run("stores file and returns public URL", func(t *testing.T) {
		store := newTestStore(t, 0)

		url, err := store.Store(ctx, strings.NewReader("image-bytes"), asset.FolderThemes, "preview.PNG")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "/uploads/"+asset.FolderThemes+"/"))
		assert.True(t, strings.HasSuffix(url, ".png"))

		rel := strings.TrimPrefix(url, "/uploads/")
		data, err := os.ReadFile(filepath.Join(store.baseDir, filepath.FromSlash(rel)))
		require.NoError(t, err)
		assert.Equal(t, "image-bytes", string(data))
	})

	t.Run("unknown extension falls back to bin", func(t *testing.T) {
		store := newTestStore(t, 0)

		url, err := store.Store(ctx, strings.NewReader("x"), asset.FolderServices, "notes.exe")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(url, ".bin"))
	})

	t.Run("oversized upload is rejected and removed", func(t *testing.T) {
		store := newTestStore(t, 4)

		_, err := store.Store(ctx, strings.NewReader("way too large"), asset.FolderThemes, "big.jpg")
		require.Error(t, err)
		assert.True(t, errors.IsAppError(err))

		entries, err := os.ReadDir(filepath.Join(store.baseDir, asset.FolderThemes))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestLocalStore_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes stored file", func(t *testing.T) {
		store := newTestStore(t, 0)

		url, err := store.Store(ctx, strings.NewReader("bytes"), asset.FolderTestimonials, "face.jpg")
		require.NoError(t, err)

		err = store.Delete(ctx, url)
		assert.NoError(t, err)

		err = store.Delete(ctx, url)
		assert.ErrorIs(t, err, asset.ErrNotFound)
	})

	t.Run("foreign URL is refused", func(t *testing.T) {
		store := newTestStore(t, 0)

		err := store.Delete(ctx, "https://cdn.example.com/other.png")
		assert.ErrorIs(t, err, asset.ErrForeignURL)
	})

	t.Run("path traversal is refused", func(t *testing.T) {
		store := newTestStore(t, 0)

		err := store.Delete(ctx, "/uploads/../secrets.txt")
		assert.ErrorIs(t, err, asset.ErrForeignURL)
	})
}
