package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/application/pricing/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/pricing"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type ListPlansUseCase struct {
	planRepo pricing.PlanRepository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo pricing.PlanRepository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

// Execute returns every plan for the admin table, active or not, with raw
// discount fields rather than a resolved quote.
func (uc *ListPlansUseCase) Execute(ctx context.Context) ([]*dto.PlanDTO, error) {
	plans, err := uc.planRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list pricing plans", "error", err)
		return nil, fmt.Errorf("failed to list pricing plans: %w", err)
	}

	return dto.ToPlanDTOList(plans), nil
}
