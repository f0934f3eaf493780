// Package asset defines the storage contract for uploaded images. The
// catalog, showcase, and testimonial modules reference assets by public URL
// only; where the bytes live is an infrastructure concern.
package asset

import (
	"context"
	"errors"
	"io"
)

// Folders group assets by the module that owns them.
const (
	FolderThemes       = "themes"
	FolderServices     = "services"
	FolderTestimonials = "testimonials"
)

var (
	// ErrNotFound means the URL does not resolve to a stored asset.
	ErrNotFound = errors.New("asset not found")
	// ErrForeignURL means the URL was not produced by this store.
	ErrForeignURL = errors.New("asset URL not managed by this store")
)

// Store persists uploaded images and hands back public URLs.
type Store interface {
	// Store writes the content under the given folder and returns the
	// public URL. The original filename is only a hint for the extension;
	// the store picks a collision-free name.
	Store(ctx context.Context, content io.Reader, folder, originalName string) (string, error)

	// Delete removes the asset behind a previously returned URL. Returns
	// ErrForeignURL for URLs the store did not produce and ErrNotFound
	// when the asset is already gone.
	Delete(ctx context.Context, url string) error
}
