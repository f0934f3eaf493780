package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamaran-inc/lamaran/internal/application/catalog/dto"
	"github.com/lamaran-inc/lamaran/internal/application/catalog/usecases"
	"github.com/lamaran-inc/lamaran/internal/interfaces/http/handlers/testutil"
)

type mockCreateThemeUC struct {
	gotCmd usecases.CreateThemeCommand
	result *dto.ThemeDTO
	err    error
}

func (m *mockCreateThemeUC) Execute(ctx context.Context, cmd usecases.CreateThemeCommand) (*dto.ThemeDTO, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

func newThemeFormContext(t *testing.T, fields map[string]string) (*gin.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, mw.WriteField(key, value))
	}
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/themes", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestParseIDList(t *testing.T) {
	t.Run("json array", func(t *testing.T) {
		ids, err := parseIDList("[1,2,3]", "categoryIds")
		require.NoError(t, err)
		assert.Equal(t, []uint{1, 2, 3}, ids)
	})

	t.Run("comma separated fallback", func(t *testing.T) {
		ids, err := parseIDList("4, 5 ,6", "tagIds")
		require.NoError(t, err)
		assert.Equal(t, []uint{4, 5, 6}, ids)
	})

	t.Run("blank means empty", func(t *testing.T) {
		ids, err := parseIDList("  ", "categoryIds")
		require.NoError(t, err)
		assert.Nil(t, ids)
	})

	t.Run("empty json array", func(t *testing.T) {
		ids, err := parseIDList("[]", "categoryIds")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := parseIDList("1,abc", "tagIds")
		assert.Error(t, err)
	})
}

func TestThemeHandler_Create_IDListFormats(t *testing.T) {
	themeDTO := &dto.ThemeDTO{ID: 1, Name: "Classic Gold", CreatedAt: time.Now().UTC()}

	t.Run("json encoded id lists", func(t *testing.T) {
		mockUC := &mockCreateThemeUC{result: themeDTO}
		handler := NewThemeHandler(mockUC, nil, nil, nil, nil, testutil.NewMockLogger())

		c, w := newThemeFormContext(t, map[string]string{
			"name":        "Classic Gold",
			"price":       "150000",
			"categoryIds": "[1,2]",
			"tagIds":      "[7]",
		})

		handler.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, []uint{1, 2}, mockUC.gotCmd.CategoryIDs)
		assert.Equal(t, []uint{7}, mockUC.gotCmd.TagIDs)
	})

	t.Run("comma separated id lists", func(t *testing.T) {
		mockUC := &mockCreateThemeUC{result: themeDTO}
		handler := NewThemeHandler(mockUC, nil, nil, nil, nil, testutil.NewMockLogger())

		c, w := newThemeFormContext(t, map[string]string{
			"name":        "Classic Gold",
			"price":       "150000",
			"categoryIds": "1,2",
			"tagIds":      "7",
		})

		handler.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, []uint{1, 2}, mockUC.gotCmd.CategoryIDs)
		assert.Equal(t, []uint{7}, mockUC.gotCmd.TagIDs)
	})

	t.Run("invalid list rejected", func(t *testing.T) {
		mockUC := &mockCreateThemeUC{result: themeDTO}
		handler := NewThemeHandler(mockUC, nil, nil, nil, nil, testutil.NewMockLogger())

		c, w := newThemeFormContext(t, map[string]string{
			"name":        "Classic Gold",
			"categoryIds": "not-a-list",
		})

		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
