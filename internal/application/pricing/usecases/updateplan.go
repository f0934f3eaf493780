package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lamaran-inc/lamaran/internal/application/pricing/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/appearance"
	"github.com/lamaran-inc/lamaran/internal/domain/pricing"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type UpdatePlanCommand struct {
	ID                 uint
	Name               string
	Price              int
	DiscountPrice      *int
	DiscountEndDate    *time.Time
	Period             string
	Description        string
	Features           []string
	IsPopular          bool
	IsActive           bool
	Priority           int
	Icon               string
	ButtonText         string
	ButtonStyle        string
	BackgroundGradient string
	BorderHighlight    bool
	WhatsappMessage    *string
}

type UpdatePlanUseCase struct {
	planRepo pricing.PlanRepository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo pricing.PlanRepository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, errors.NewValidationError("plan name is required")
	}
	if cmd.Price < 0 {
		return nil, errors.NewValidationError("plan price cannot be negative")
	}

	plan, err := uc.planRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to load pricing plan", "error", err, "plan_id", cmd.ID)
		return nil, fmt.Errorf("failed to load pricing plan: %w", err)
	}
	if plan == nil {
		return nil, errors.NewNotFoundError("pricing plan not found")
	}

	if err := plan.Update(cmd.Name, cmd.Price, cmd.Period, cmd.Description, cmd.Features); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := plan.SetDiscount(cmd.DiscountPrice, cmd.DiscountEndDate); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	gradient, err := appearance.NewGradientToken(cmd.BackgroundGradient, plan.BackgroundGradient())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	icon, err := appearance.NewIconName(cmd.Icon)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	plan.SetAppearance(icon, cmd.ButtonText, appearance.ButtonStyle(cmd.ButtonStyle), gradient, cmd.BorderHighlight)
	plan.SetWhatsappMessage(cmd.WhatsappMessage)
	plan.SetFlags(cmd.IsPopular, cmd.IsActive, cmd.Priority)

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update pricing plan", "error", err, "plan_id", cmd.ID)
		return nil, fmt.Errorf("failed to update pricing plan: %w", err)
	}

	uc.logger.Infow("pricing plan updated", "plan_id", plan.ID())
	return dto.ToPlanDTO(plan), nil
}
