package handlers

import (
	"context"

	"github.com/lamaran-inc/lamaran/internal/application/catalog/dto"
	"github.com/lamaran-inc/lamaran/internal/application/catalog/usecases"
)

// Use case interfaces for TagHandler - enable unit testing with mocks.

type createTagUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateTagCommand) (*dto.TagDTO, error)
}

type updateTagUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateTagCommand) (*dto.TagDTO, error)
}

type deleteTagUseCase interface {
	Execute(ctx context.Context, id uint) error
}

type listTagsUseCase interface {
	Execute(ctx context.Context) ([]*dto.TagDTO, error)
}
