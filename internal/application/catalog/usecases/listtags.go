package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/application/catalog/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/catalog"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type ListTagsUseCase struct {
	tagRepo catalog.TagRepository
	logger  logger.Interface
}

func NewListTagsUseCase(tagRepo catalog.TagRepository, logger logger.Interface) *ListTagsUseCase {
	return &ListTagsUseCase{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

func (uc *ListTagsUseCase) Execute(ctx context.Context) ([]*dto.TagDTO, error) {
	tags, err := uc.tagRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tags", "error", err)
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	return dto.ToTagDTOList(tags), nil
}
