// Package storage implements the asset store on the local filesystem. Files
// land under BaseDir/<folder>/ and are served by the HTTP layer from BaseURL.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lamaran-inc/lamaran/internal/domain/asset"
	"github.com/lamaran-inc/lamaran/internal/shared/config"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type LocalStore struct {
	baseDir  string
	baseURL  string
	maxBytes int64
	logger   logger.Interface
}

func NewLocalStore(cfg *config.StorageConfig, logger logger.Interface) *LocalStore {
	return &LocalStore{
		baseDir:  cfg.BaseDir,
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		maxBytes: cfg.MaxUploadBytes,
		logger:   logger,
	}
}

// Store writes the content under folder and returns its public URL. Names
// combine a timestamp with a random suffix so concurrent uploads never
// collide; the original filename only contributes the extension.
func (s *LocalStore) Store(ctx context.Context, content io.Reader, folder, originalName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.logger.Errorw("failed to create upload directory", "error", err, "dir", dir)
		return "", errors.NewStorageError("failed to prepare upload directory")
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], normalizeExt(originalName))
	dst := filepath.Join(dir, name)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		s.logger.Errorw("failed to create upload file", "error", err, "path", dst)
		return "", errors.NewStorageError("failed to store asset")
	}

	reader := io.Reader(content)
	if s.maxBytes > 0 {
		reader = io.LimitReader(content, s.maxBytes+1)
	}

	written, err := io.Copy(f, reader)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(dst)
		s.logger.Errorw("failed to write upload", "error", err, "path", dst)
		return "", errors.NewStorageError("failed to store asset")
	}
	if s.maxBytes > 0 && written > s.maxBytes {
		os.Remove(dst)
		return "", errors.NewValidationError(fmt.Sprintf("image exceeds the %d byte upload limit", s.maxBytes))
	}

	url := s.baseURL + "/" + path.Join(folder, name)
	s.logger.Infow("asset stored", "url", url, "bytes", written)
	return url, nil
}

// Delete removes the file behind a URL this store produced. Foreign URLs and
// already-missing files report sentinel errors so callers can treat cleanup
// as best effort.
func (s *LocalStore) Delete(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rel, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok {
		return asset.ErrForeignURL
	}
	rel = path.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") {
		return asset.ErrForeignURL
	}

	dst := filepath.Join(s.baseDir, filepath.FromSlash(rel))
	if err := os.Remove(dst); err != nil {
		if os.IsNotExist(err) {
			return asset.ErrNotFound
		}
		s.logger.Errorw("failed to delete asset", "error", err, "url", url)
		return errors.NewStorageError("failed to delete asset")
	}

	s.logger.Infow("asset deleted", "url", url)
	return nil
}

func normalizeExt(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".gif", ".svg":
		return ext
	default:
		return ".bin"
	}
}
