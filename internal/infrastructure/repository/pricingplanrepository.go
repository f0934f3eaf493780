package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lamaran-inc/lamaran/internal/domain/pricing"
	"github.com/lamaran-inc/lamaran/internal/infrastructure/persistence/models"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type PricingPlanRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPricingPlanRepository(db *gorm.DB, logger logger.Interface) pricing.PlanRepository {
	return &PricingPlanRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PricingPlanRepositoryImpl) Create(ctx context.Context, plan *pricing.Plan) error {
	model, err := r.toModel(plan)
	if err != nil {
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create pricing plan", "error", err, "name", plan.Name())
		return fmt.Errorf("failed to create pricing plan: %w", err)
	}

	if err := plan.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("pricing plan created", "plan_id", model.ID, "name", plan.Name())
	return nil
}

func (r *PricingPlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*pricing.Plan, error) {
	var model models.PricingPlanModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get pricing plan by ID", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get pricing plan: %w", err)
	}

	return r.toEntity(&model)
}

func (r *PricingPlanRepositoryImpl) List(ctx context.Context) ([]*pricing.Plan, error) {
	var planModels []*models.PricingPlanModel
	err := r.db.WithContext(ctx).
		Order("priority ASC, created_at ASC, id ASC").
		Find(&planModels).Error
	if err != nil {
		r.logger.Errorw("failed to list pricing plans", "error", err)
		return nil, fmt.Errorf("failed to list pricing plans: %w", err)
	}

	entities := make([]*pricing.Plan, 0, len(planModels))
	for _, model := range planModels {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (r *PricingPlanRepositoryImpl) Update(ctx context.Context, plan *pricing.Plan) error {
	model, err := r.toModel(plan)
	if err != nil {
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.PricingPlanModel{}).
		Where("id = ?", plan.ID()).
		Updates(map[string]interface{}{
			"name":                model.Name,
			"price":               model.Price,
			"discount_price":      model.DiscountPrice,
			"discount_end_date":   model.DiscountEndDate,
			"period":              model.Period,
			"description":         model.Description,
			"features":            model.Features,
			"is_popular":          model.IsPopular,
			"is_active":           model.IsActive,
			"priority":            model.Priority,
			"icon":                model.Icon,
			"whatsapp_message":    model.WhatsappMessage,
			"button_text":         model.ButtonText,
			"button_style":        model.ButtonStyle,
			"background_gradient": model.BackgroundGradient,
			"border_highlight":    model.BorderHighlight,
			"updated_at":          model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update pricing plan", "error", result.Error, "plan_id", plan.ID())
		return fmt.Errorf("failed to update pricing plan: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("pricing plan not found")
	}

	r.logger.Infow("pricing plan updated", "plan_id", plan.ID())
	return nil
}

func (r *PricingPlanRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PricingPlanModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete pricing plan", "error", result.Error, "plan_id", id)
		return fmt.Errorf("failed to delete pricing plan: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("pricing plan not found")
	}

	r.logger.Infow("pricing plan deleted", "plan_id", id)
	return nil
}

func (r *PricingPlanRepositoryImpl) toModel(plan *pricing.Plan) (*models.PricingPlanModel, error) {
	features, err := json.Marshal(plan.Features())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal features: %w", err)
	}

	return &models.PricingPlanModel{
		ID:                 plan.ID(),
		Name:               plan.Name(),
		Price:              plan.Price(),
		DiscountPrice:      plan.DiscountPrice(),
		DiscountEndDate:    plan.DiscountEndDate(),
		Period:             plan.Period(),
		Description:        plan.Description(),
		Features:           datatypes.JSON(features),
		IsPopular:          plan.IsPopular(),
		IsActive:           plan.IsActive(),
		Priority:           plan.Priority(),
		Icon:               plan.Icon().String(),
		WhatsappMessage:    plan.WhatsappMessage(),
		ButtonText:         plan.ButtonText(),
		ButtonStyle:        plan.ButtonStyle().String(),
		BackgroundGradient: plan.BackgroundGradient().String(),
		BorderHighlight:    plan.BorderHighlight(),
		CreatedAt:          plan.CreatedAt(),
		UpdatedAt:          plan.UpdatedAt(),
	}, nil
}

func (r *PricingPlanRepositoryImpl) toEntity(model *models.PricingPlanModel) (*pricing.Plan, error) {
	var features []string
	if len(model.Features) > 0 {
		if err := json.Unmarshal(model.Features, &features); err != nil {
			return nil, fmt.Errorf("failed to unmarshal features: %w", err)
		}
	}

	return pricing.ReconstructPlan(model.ID, model.Name, model.Price,
		model.DiscountPrice, model.DiscountEndDate,
		model.Period, model.Description, features,
		model.IsPopular, model.IsActive, model.Priority,
		model.Icon, model.ButtonText, model.ButtonStyle, model.BackgroundGradient, model.BorderHighlight,
		model.WhatsappMessage, model.CreatedAt, model.UpdatedAt)
}
