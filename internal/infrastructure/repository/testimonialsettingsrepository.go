package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lamaran-inc/lamaran/internal/domain/testimonial"
	"github.com/lamaran-inc/lamaran/internal/infrastructure/persistence/models"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type TestimonialSettingsRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewTestimonialSettingsRepository(db *gorm.DB, logger logger.Interface) testimonial.SettingsRepository {
	return &TestimonialSettingsRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *TestimonialSettingsRepositoryImpl) GetOrCreate(ctx context.Context) (*testimonial.TestimonialSettings, error) {
	var model models.TestimonialSettingsModel
	err := r.db.WithContext(ctx).Order("id ASC").First(&model).Error
	if err == nil {
		return r.toEntity(&model), nil
	}
	if err != gorm.ErrRecordNotFound {
		r.logger.Errorw("failed to get testimonial settings", "error", err)
		return nil, fmt.Errorf("failed to get testimonial settings: %w", err)
	}

	defaults := testimonial.DefaultSettings()
	seed := models.TestimonialSettingsModel{
		MaxDisplay:      defaults.MaxDisplay(),
		AutoApprove:     defaults.AutoApprove(),
		RequireApproval: defaults.RequireApproval(),
		UpdatedAt:       defaults.UpdatedAt(),
	}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&seed).Error; err != nil {
		r.logger.Errorw("failed to seed testimonial settings", "error", err)
		return nil, fmt.Errorf("failed to seed testimonial settings: %w", err)
	}

	if err := r.db.WithContext(ctx).Order("id ASC").First(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to get testimonial settings after seed: %w", err)
	}

	r.logger.Infow("testimonial settings seeded", "settings_id", model.ID)
	return r.toEntity(&model), nil
}

func (r *TestimonialSettingsRepositoryImpl) Update(ctx context.Context, settings *testimonial.TestimonialSettings) error {
	result := r.db.WithContext(ctx).Model(&models.TestimonialSettingsModel{}).
		Where("id = ?", settings.ID()).
		Updates(map[string]interface{}{
			"max_display":      settings.MaxDisplay(),
			"auto_approve":     settings.AutoApprove(),
			"require_approval": settings.RequireApproval(),
			"updated_at":       settings.UpdatedAt(),
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update testimonial settings", "error", result.Error)
		return fmt.Errorf("failed to update testimonial settings: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("testimonial settings not found")
	}

	r.logger.Infow("testimonial settings updated", "settings_id", settings.ID())
	return nil
}

func (r *TestimonialSettingsRepositoryImpl) toEntity(model *models.TestimonialSettingsModel) *testimonial.TestimonialSettings {
	return testimonial.ReconstructSettings(model.ID, model.MaxDisplay,
		model.AutoApprove, model.RequireApproval, model.UpdatedAt)
}
