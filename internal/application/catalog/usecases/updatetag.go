package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/lamaran-inc/lamaran/internal/application/catalog/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/appearance"
	"github.com/lamaran-inc/lamaran/internal/domain/catalog"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type UpdateTagCommand struct {
	ID    uint
	Name  string
	Color string
	Icon  string
}

type UpdateTagUseCase struct {
	tagRepo catalog.TagRepository
	logger  logger.Interface
}

func NewUpdateTagUseCase(tagRepo catalog.TagRepository, logger logger.Interface) *UpdateTagUseCase {
	return &UpdateTagUseCase{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

func (uc *UpdateTagUseCase) Execute(ctx context.Context, cmd UpdateTagCommand) (*dto.TagDTO, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, errors.NewValidationError("tag name is required")
	}

	tag, err := uc.tagRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to load tag", "error", err, "tag_id", cmd.ID)
		return nil, fmt.Errorf("failed to load tag: %w", err)
	}
	if tag == nil {
		return nil, errors.NewNotFoundError("tag not found")
	}

	color, err := appearance.NewGradientToken(cmd.Color, tag.Color())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	icon, err := appearance.NewIconName(cmd.Icon)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if !strings.EqualFold(tag.Name(), name) {
		exists, err := uc.tagRepo.ExistsByName(ctx, name)
		if err != nil {
			uc.logger.Errorw("failed to check tag name", "error", err, "name", name)
			return nil, fmt.Errorf("failed to check tag name: %w", err)
		}
		if exists {
			return nil, errors.NewDuplicateNameError("tag name already exists")
		}
	}

	if err := tag.Update(name, color, icon); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.tagRepo.Update(ctx, tag); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update tag", "error", err, "tag_id", cmd.ID)
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}

	uc.logger.Infow("tag updated", "tag_id", tag.ID())
	return dto.ToTagDTO(tag), nil
}
