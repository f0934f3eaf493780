package handlers

import (
	"context"

	"github.com/lamaran-inc/lamaran/internal/application/pricing/dto"
	"github.com/lamaran-inc/lamaran/internal/application/pricing/usecases"
)

// Use case interfaces for PlanHandler - enable unit testing with mocks.

type createPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePlanCommand) (*dto.PlanDTO, error)
}

type updatePlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePlanCommand) (*dto.PlanDTO, error)
}

type deletePlanUseCase interface {
	Execute(ctx context.Context, id uint) error
}

type listPlansUseCase interface {
	Execute(ctx context.Context) ([]*dto.PlanDTO, error)
}

type getPublicPricingUseCase interface {
	Execute(ctx context.Context) (*dto.PublicPricingDTO, error)
}

type getPricingSettingsUseCase interface {
	Execute(ctx context.Context) (*dto.PricingSettingsDTO, error)
}

type updatePricingSettingsUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePricingSettingsCommand) (*dto.PricingSettingsDTO, error)
}
