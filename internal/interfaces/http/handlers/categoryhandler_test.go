package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamaran-inc/lamaran/internal/application/catalog/dto"
	"github.com/lamaran-inc/lamaran/internal/application/catalog/usecases"
	"github.com/lamaran-inc/lamaran/internal/interfaces/http/handlers/testutil"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
)

type mockCreateCategoryUC struct {
	result *dto.CategoryDTO
	err    error
}

func (m *mockCreateCategoryUC) Execute(ctx context.Context, cmd usecases.CreateCategoryCommand) (*dto.CategoryDTO, error) {
	return m.result, m.err
}

type mockUpdateCategoryUC struct {
	result *dto.CategoryDTO
	err    error
}

func (m *mockUpdateCategoryUC) Execute(ctx context.Context, cmd usecases.UpdateCategoryCommand) (*dto.CategoryDTO, error) {
	return m.result, m.err
}

type mockDeleteCategoryUC struct {
	err error
}

func (m *mockDeleteCategoryUC) Execute(ctx context.Context, id uint) error {
	return m.err
}

type mockListCategoriesUC struct {
	result []*dto.CategoryDTO
	err    error
}

func (m *mockListCategoriesUC) Execute(ctx context.Context) ([]*dto.CategoryDTO, error) {
	return m.result, m.err
}

func testCategoryDTO(id uint, name string) *dto.CategoryDTO {
	return &dto.CategoryDTO{ID: id, Name: name, CreatedAt: time.Now().UTC()}
}

func newTestCategoryHandler(createUC createCategoryUseCase, updateUC updateCategoryUseCase,
	deleteUC deleteCategoryUseCase, listUC listCategoriesUseCase) *CategoryHandler {
	return NewCategoryHandler(createUC, updateUC, deleteUC, listUC, testutil.NewMockLogger())
}

func TestCategoryHandler_Create(t *testing.T) {
	t.Run("creates category", func(t *testing.T) {
		mockUC := &mockCreateCategoryUC{result: testCategoryDTO(1, "Elegant")}
		handler := newTestCategoryHandler(mockUC, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/api/categories", CategoryRequest{Name: "Elegant"})

		handler.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)

		var data dto.CategoryDTO
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, "Elegant", data.Name)
	})

	t.Run("blank name fails validation", func(t *testing.T) {
		handler := newTestCategoryHandler(&mockCreateCategoryUC{}, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/api/categories", CategoryRequest{Name: ""})

		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate name returns conflict", func(t *testing.T) {
		mockUC := &mockCreateCategoryUC{err: errors.NewDuplicateNameError("category name already exists")}
		handler := newTestCategoryHandler(mockUC, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/api/categories", CategoryRequest{Name: "Elegant"})

		handler.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestCategoryHandler_Update(t *testing.T) {
	t.Run("renames category", func(t *testing.T) {
		mockUC := &mockUpdateCategoryUC{result: testCategoryDTO(3, "Retro")}
		handler := newTestCategoryHandler(nil, mockUC, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPut, "/api/categories/3", CategoryRequest{Name: "Retro"})
		testutil.SetURLParam(c, "id", "3")

		handler.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-numeric id is rejected", func(t *testing.T) {
		handler := newTestCategoryHandler(nil, &mockUpdateCategoryUC{}, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPut, "/api/categories/abc", CategoryRequest{Name: "Retro"})
		testutil.SetURLParam(c, "id", "abc")

		handler.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing category returns not found", func(t *testing.T) {
		mockUC := &mockUpdateCategoryUC{err: errors.NewNotFoundError("category not found")}
		handler := newTestCategoryHandler(nil, mockUC, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPut, "/api/categories/99", CategoryRequest{Name: "Retro"})
		testutil.SetURLParam(c, "id", "99")

		handler.Update(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCategoryHandler_Delete(t *testing.T) {
	t.Run("deletes category", func(t *testing.T) {
		handler := newTestCategoryHandler(nil, nil, &mockDeleteCategoryUC{}, nil)

		c, w := testutil.NewTestContext(http.MethodDelete, "/api/categories/3", nil)
		testutil.SetURLParam(c, "id", "3")

		handler.Delete(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("category still referenced by themes", func(t *testing.T) {
		mockUC := &mockDeleteCategoryUC{err: errors.NewConstraintViolationError("category is used by existing themes")}
		handler := newTestCategoryHandler(nil, nil, mockUC, nil)

		c, w := testutil.NewTestContext(http.MethodDelete, "/api/categories/3", nil)
		testutil.SetURLParam(c, "id", "3")

		handler.Delete(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCategoryHandler_List(t *testing.T) {
	mockUC := &mockListCategoriesUC{result: []*dto.CategoryDTO{
		testCategoryDTO(2, "Modern"),
		testCategoryDTO(1, "Classic"),
	}}
	handler := newTestCategoryHandler(nil, nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/categories", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data []dto.CategoryDTO
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Len(t, data, 2)
	assert.Equal(t, "Modern", data[0].Name)
}
