package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/domain/pricing"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type DeletePlanUseCase struct {
	planRepo pricing.PlanRepository
	logger   logger.Interface
}

func NewDeletePlanUseCase(planRepo pricing.PlanRepository, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.planRepo.Delete(ctx, id); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete pricing plan", "error", err, "plan_id", id)
		return fmt.Errorf("failed to delete pricing plan: %w", err)
	}

	uc.logger.Infow("pricing plan deleted", "plan_id", id)
	return nil
}
