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

type CreateTagCommand struct {
	Name  string
	Color string
	Icon  string
}

type CreateTagUseCase struct {
	tagRepo catalog.TagRepository
	logger  logger.Interface
}

func NewCreateTagUseCase(tagRepo catalog.TagRepository, logger logger.Interface) *CreateTagUseCase {
	return &CreateTagUseCase{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

func (uc *CreateTagUseCase) Execute(ctx context.Context, cmd CreateTagCommand) (*dto.TagDTO, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, errors.NewValidationError("tag name is required")
	}

	color, err := appearance.NewGradientToken(cmd.Color, appearance.DefaultServiceGradient)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	icon, err := appearance.NewIconName(cmd.Icon)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.tagRepo.ExistsByName(ctx, name)
	if err != nil {
		uc.logger.Errorw("failed to check tag name", "error", err, "name", name)
		return nil, fmt.Errorf("failed to check tag name: %w", err)
	}
	if exists {
		return nil, errors.NewDuplicateNameError("tag name already exists")
	}

	tag, err := catalog.NewTag(name, color, icon)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.tagRepo.Create(ctx, tag); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to persist tag", "error", err)
		return nil, fmt.Errorf("failed to persist tag: %w", err)
	}

	uc.logger.Infow("tag created", "tag_id", tag.ID(), "name", tag.Name())
	return dto.ToTagDTO(tag), nil
}
