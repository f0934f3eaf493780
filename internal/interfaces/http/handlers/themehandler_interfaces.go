package handlers

import (
	"context"

	"github.com/lamaran-inc/lamaran/internal/application/catalog/dto"
	"github.com/lamaran-inc/lamaran/internal/application/catalog/usecases"
)

// Use case interfaces for ThemeHandler - enable unit testing with mocks.

type createThemeUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateThemeCommand) (*dto.ThemeDTO, error)
}

type updateThemeUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateThemeCommand) (*dto.ThemeDTO, error)
}

type deleteThemeUseCase interface {
	Execute(ctx context.Context, id uint) error
}

type listThemesUseCase interface {
	Execute(ctx context.Context) ([]*dto.ThemeDTO, error)
}

type getThemeUseCase interface {
	Execute(ctx context.Context, id uint) (*dto.ThemeDTO, error)
}
