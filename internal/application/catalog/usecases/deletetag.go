package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/domain/catalog"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type DeleteTagUseCase struct {
	tagRepo catalog.TagRepository
	logger  logger.Interface
}

func NewDeleteTagUseCase(tagRepo catalog.TagRepository, logger logger.Interface) *DeleteTagUseCase {
	return &DeleteTagUseCase{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

// Execute removes a tag. Deletion is blocked while any theme still carries it.
func (uc *DeleteTagUseCase) Execute(ctx context.Context, id uint) error {
	tag, err := uc.tagRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to load tag", "error", err, "tag_id", id)
		return fmt.Errorf("failed to load tag: %w", err)
	}
	if tag == nil {
		return errors.NewNotFoundError("tag not found")
	}

	refs, err := uc.tagRepo.CountThemeRefs(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to count theme references", "error", err, "tag_id", id)
		return fmt.Errorf("failed to count theme references: %w", err)
	}
	if refs > 0 {
		return errors.NewConstraintViolationError(
			fmt.Sprintf("tag is still used by %d theme(s)", refs))
	}

	if err := uc.tagRepo.Delete(ctx, id); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete tag", "error", err, "tag_id", id)
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	uc.logger.Infow("tag deleted", "tag_id", id)
	return nil
}
