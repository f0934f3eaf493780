package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/lamaran-inc/lamaran/internal/shared/errors"
)

// openImageFile reads the optional image field from a multipart form.
// A missing file is not an error; the caller gets (nil, "", nil).
func openImageFile(c *gin.Context, field string) (multipart.File, string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, "", nil
		}
		return nil, "", apperrors.NewValidationError("invalid image upload")
	}

	file, err := header.Open()
	if err != nil {
		return nil, "", apperrors.NewValidationError("failed to read image upload")
	}
	return file, header.Filename, nil
}
