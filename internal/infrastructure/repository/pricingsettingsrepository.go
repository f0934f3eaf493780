package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lamaran-inc/lamaran/internal/domain/pricing"
	"github.com/lamaran-inc/lamaran/internal/infrastructure/persistence/models"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type PricingSettingsRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPricingSettingsRepository(db *gorm.DB, logger logger.Interface) pricing.SettingsRepository {
	return &PricingSettingsRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PricingSettingsRepositoryImpl) GetOrCreate(ctx context.Context) (*pricing.PricingSettings, error) {
	var model models.PricingSettingsModel
	err := r.db.WithContext(ctx).Order("id ASC").First(&model).Error
	if err == nil {
		return r.toEntity(&model), nil
	}
	if err != gorm.ErrRecordNotFound {
		r.logger.Errorw("failed to get pricing settings", "error", err)
		return nil, fmt.Errorf("failed to get pricing settings: %w", err)
	}

	defaults := pricing.DefaultPricingSettings()
	seed := models.PricingSettingsModel{
		MaxDisplay:     defaults.MaxDisplay(),
		WhatsappNumber: defaults.WhatsappNumber(),
		UpdatedAt:      defaults.UpdatedAt(),
	}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&seed).Error; err != nil {
		r.logger.Errorw("failed to seed pricing settings", "error", err)
		return nil, fmt.Errorf("failed to seed pricing settings: %w", err)
	}

	if err := r.db.WithContext(ctx).Order("id ASC").First(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to get pricing settings after seed: %w", err)
	}

	r.logger.Infow("pricing settings seeded", "settings_id", model.ID)
	return r.toEntity(&model), nil
}

func (r *PricingSettingsRepositoryImpl) Update(ctx context.Context, settings *pricing.PricingSettings) error {
	result := r.db.WithContext(ctx).Model(&models.PricingSettingsModel{}).
		Where("id = ?", settings.ID()).
		Updates(map[string]interface{}{
			"max_display":     settings.MaxDisplay(),
			"whatsapp_number": settings.WhatsappNumber(),
			"updated_at":      settings.UpdatedAt(),
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update pricing settings", "error", result.Error)
		return fmt.Errorf("failed to update pricing settings: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("pricing settings not found")
	}

	r.logger.Infow("pricing settings updated", "settings_id", settings.ID())
	return nil
}

func (r *PricingSettingsRepositoryImpl) toEntity(model *models.PricingSettingsModel) *pricing.PricingSettings {
	return pricing.ReconstructPricingSettings(model.ID, model.MaxDisplay, model.WhatsappNumber, model.UpdatedAt)
}
