package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/lamaran-inc/lamaran/internal/application/catalog/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/catalog"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type UpdateCategoryCommand struct {
	ID   uint
	Name string
}

type UpdateCategoryUseCase struct {
	categoryRepo catalog.CategoryRepository
	logger       logger.Interface
}

func NewUpdateCategoryUseCase(categoryRepo catalog.CategoryRepository, logger logger.Interface) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*dto.CategoryDTO, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, errors.NewValidationError("category name is required")
	}

	category, err := uc.categoryRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to load category", "error", err, "category_id", cmd.ID)
		return nil, fmt.Errorf("failed to load category: %w", err)
	}
	if category == nil {
		return nil, errors.NewNotFoundError("category not found")
	}

	// A rename to the current name is a no-op, not a conflict
	if !strings.EqualFold(category.Name(), name) {
		exists, err := uc.categoryRepo.ExistsByName(ctx, name)
		if err != nil {
			uc.logger.Errorw("failed to check category name", "error", err, "name", name)
			return nil, fmt.Errorf("failed to check category name: %w", err)
		}
		if exists {
			return nil, errors.NewDuplicateNameError("category name already exists")
		}
	}

	if err := category.Rename(name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update category", "error", err, "category_id", cmd.ID)
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	uc.logger.Infow("category updated", "category_id", category.ID())
	return dto.ToCategoryDTO(category), nil
}
