package handlers

import (
	"context"

	"github.com/lamaran-inc/lamaran/internal/application/catalog/dto"
	"github.com/lamaran-inc/lamaran/internal/application/catalog/usecases"
)

// Use case interfaces for CategoryHandler - enable unit testing with mocks.

type createCategoryUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateCategoryCommand) (*dto.CategoryDTO, error)
}

type updateCategoryUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateCategoryCommand) (*dto.CategoryDTO, error)
}

type deleteCategoryUseCase interface {
	Execute(ctx context.Context, id uint) error
}

type listCategoriesUseCase interface {
	Execute(ctx context.Context) ([]*dto.CategoryDTO, error)
}
