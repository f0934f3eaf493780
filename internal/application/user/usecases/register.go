package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/application/user/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/user"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

const minPasswordLength = 8

type RegisterCommand struct {
	Email    string
	Password string
	Name     string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error) {
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := user.NewUser(cmd.Email, hash, cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, account.Email())
	if err != nil {
		uc.logger.Errorw("failed to check email uniqueness", "error", err)
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if exists {
		return nil, errors.NewDuplicateNameError("an account with this email already exists")
	}

	if err := uc.userRepo.Create(ctx, account); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("admin account created", "user_id", account.ID(), "email", account.Email())
	return dto.ToUserDTO(account), nil
}
