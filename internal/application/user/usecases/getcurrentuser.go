package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/application/user/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/user"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, userID uint) (*dto.UserDTO, error) {
	account, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if account == nil {
		return nil, errors.NewUnauthorizedError("session user no longer exists")
	}
	return dto.ToUserDTO(account), nil
}
