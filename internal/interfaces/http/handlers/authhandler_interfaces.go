package handlers

import (
	"context"

	"github.com/lamaran-inc/lamaran/internal/application/user/dto"
	"github.com/lamaran-inc/lamaran/internal/application/user/usecases"
)

// Use case interfaces for AuthHandler - enable unit testing with mocks.

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*dto.UserDTO, error)
}

type getCurrentUserUseCase interface {
	Execute(ctx context.Context, userID uint) (*dto.UserDTO, error)
}
