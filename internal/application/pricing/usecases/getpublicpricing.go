package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/lamaran-inc/lamaran/internal/application/pricing/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/display"
	"github.com/lamaran-inc/lamaran/internal/domain/pricing"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type GetPublicPricingUseCase struct {
	planRepo     pricing.PlanRepository
	settingsRepo pricing.SettingsRepository
	logger       logger.Interface
	now          func() time.Time
}

func NewGetPublicPricingUseCase(
	planRepo pricing.PlanRepository,
	settingsRepo pricing.SettingsRepository,
	logger logger.Interface,
) *GetPublicPricingUseCase {
	return &GetPublicPricingUseCase{
		planRepo:     planRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Execute returns the plans a visitor sees: active only, capped at the
// configured max, with each discount window resolved at request time.
func (uc *GetPublicPricingUseCase) Execute(ctx context.Context) (*dto.PublicPricingDTO, error) {
	settings, err := uc.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load pricing settings", "error", err)
		return nil, fmt.Errorf("failed to load pricing settings: %w", err)
	}

	plans, err := uc.planRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list pricing plans", "error", err)
		return nil, fmt.Errorf("failed to list pricing plans: %w", err)
	}

	visible := display.Truncate(display.VisiblePlans(plans), settings.MaxDisplay())

	at := uc.now()
	publicPlans := make([]*dto.PublicPlanDTO, 0, len(visible))
	for _, plan := range visible {
		publicPlans = append(publicPlans, dto.ToPublicPlanDTO(plan, display.ResolveCurrentPrice(plan, at)))
	}

	return &dto.PublicPricingDTO{
		Plans:    publicPlans,
		Settings: dto.ToPricingSettingsDTO(settings),
	}, nil
}
