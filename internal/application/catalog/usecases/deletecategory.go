package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/domain/catalog"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type DeleteCategoryUseCase struct {
	categoryRepo catalog.CategoryRepository
	logger       logger.Interface
}

func NewDeleteCategoryUseCase(categoryRepo catalog.CategoryRepository, logger logger.Interface) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Execute removes a category. Deletion is blocked while any theme still
// references it; detaching the themes first is the admin's call to make.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, id uint) error {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to load category", "error", err, "category_id", id)
		return fmt.Errorf("failed to load category: %w", err)
	}
	if category == nil {
		return errors.NewNotFoundError("category not found")
	}

	refs, err := uc.categoryRepo.CountThemeRefs(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to count theme references", "error", err, "category_id", id)
		return fmt.Errorf("failed to count theme references: %w", err)
	}
	if refs > 0 {
		return errors.NewConstraintViolationError(
			fmt.Sprintf("category is still used by %d theme(s)", refs))
	}

	if err := uc.categoryRepo.Delete(ctx, id); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete category", "error", err, "category_id", id)
		return fmt.Errorf("failed to delete category: %w", err)
	}

	uc.logger.Infow("category deleted", "category_id", id)
	return nil
}
