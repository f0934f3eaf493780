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

type CreatePlanCommand struct {
	Name               string
	Price              int
	DiscountPrice      *int
	DiscountEndDate    *time.Time
	Period             string
	Description        string
	Features           []string
	IsPopular          bool
	Priority           int
	Icon               string
	ButtonText         string
	ButtonStyle        string
	BackgroundGradient string
	BorderHighlight    bool
	WhatsappMessage    *string
}

type CreatePlanUseCase struct {
	planRepo pricing.PlanRepository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo pricing.PlanRepository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, errors.NewValidationError("plan name is required")
	}
	if cmd.Price < 0 {
		return nil, errors.NewValidationError("plan price cannot be negative")
	}

	plan, err := pricing.NewPlan(cmd.Name, cmd.Price, cmd.Description, cmd.Features)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Period != "" {
		if err := plan.Update(cmd.Name, cmd.Price, cmd.Period, cmd.Description, cmd.Features); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := plan.SetDiscount(cmd.DiscountPrice, cmd.DiscountEndDate); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	gradient, err := appearance.NewGradientToken(cmd.BackgroundGradient, appearance.DefaultPlanGradient)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	icon, err := appearance.NewIconName(cmd.Icon)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	plan.SetAppearance(icon, cmd.ButtonText, appearance.ButtonStyle(cmd.ButtonStyle), gradient, cmd.BorderHighlight)
	plan.SetWhatsappMessage(cmd.WhatsappMessage)
	plan.SetFlags(cmd.IsPopular, true, cmd.Priority)

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to persist pricing plan", "error", err)
		return nil, fmt.Errorf("failed to persist pricing plan: %w", err)
	}

	uc.logger.Infow("pricing plan created", "plan_id", plan.ID(), "name", plan.Name())
	return dto.ToPlanDTO(plan), nil
}
