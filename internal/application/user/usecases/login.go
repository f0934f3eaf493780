package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lamaran-inc/lamaran/internal/application/user/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/user"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

// TokenIssuer mints the session token set as the mk_session cookie.
type TokenIssuer interface {
	Generate(userID uint, email string) (string, error)
	ExpiresIn() time.Duration
}

// PasswordHasher verifies and derives password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User      *dto.UserDTO
	Token     string
	ExpiresIn time.Duration
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher PasswordHasher, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	account, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Same response whether the email is unknown or the password is wrong.
	if account == nil || !uc.hasher.Compare(account.PasswordHash(), cmd.Password) {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, err := uc.tokens.Generate(account.ID(), account.Email())
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "error", err, "user_id", account.ID())
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	uc.logger.Infow("admin logged in", "user_id", account.ID(), "email", account.Email())
	return &LoginResult{
		User:      dto.ToUserDTO(account),
		Token:     token,
		ExpiresIn: uc.tokens.ExpiresIn(),
	}, nil
}
