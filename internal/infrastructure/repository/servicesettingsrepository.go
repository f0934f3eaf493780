package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lamaran-inc/lamaran/internal/domain/showcase"
	"github.com/lamaran-inc/lamaran/internal/infrastructure/persistence/models"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type ServiceSettingsRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewServiceSettingsRepository(db *gorm.DB, logger logger.Interface) showcase.SettingsRepository {
	return &ServiceSettingsRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// GetOrCreate returns the singleton row, inserting the defaults on first
// read. Concurrent first reads are safe: the insert ignores conflicts and
// the row is re-read afterwards.
func (r *ServiceSettingsRepositoryImpl) GetOrCreate(ctx context.Context) (*showcase.ServiceSettings, error) {
	var model models.ServiceSettingsModel
	err := r.db.WithContext(ctx).Order("id ASC").First(&model).Error
	if err == nil {
		return r.toEntity(&model), nil
	}
	if err != gorm.ErrRecordNotFound {
		r.logger.Errorw("failed to get service settings", "error", err)
		return nil, fmt.Errorf("failed to get service settings: %w", err)
	}

	defaults := showcase.DefaultServiceSettings()
	seed := models.ServiceSettingsModel{
		MaxDisplay:          defaults.MaxDisplay(),
		EnableFlipAnimation: defaults.EnableFlipAnimation(),
		AutoRotate:          defaults.AutoRotate(),
		AutoRotateInterval:  defaults.AutoRotateInterval(),
		UpdatedAt:           defaults.UpdatedAt(),
	}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&seed).Error; err != nil {
		r.logger.Errorw("failed to seed service settings", "error", err)
		return nil, fmt.Errorf("failed to seed service settings: %w", err)
	}

	if err := r.db.WithContext(ctx).Order("id ASC").First(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to get service settings after seed: %w", err)
	}

	r.logger.Infow("service settings seeded", "settings_id", model.ID)
	return r.toEntity(&model), nil
}

func (r *ServiceSettingsRepositoryImpl) Update(ctx context.Context, settings *showcase.ServiceSettings) error {
	result := r.db.WithContext(ctx).Model(&models.ServiceSettingsModel{}).
		Where("id = ?", settings.ID()).
		Updates(map[string]interface{}{
			"max_display":           settings.MaxDisplay(),
			"enable_flip_animation": settings.EnableFlipAnimation(),
			"auto_rotate":           settings.AutoRotate(),
			"auto_rotate_interval":  settings.AutoRotateInterval(),
			"updated_at":            settings.UpdatedAt(),
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update service settings", "error", result.Error)
		return fmt.Errorf("failed to update service settings: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("service settings not found")
	}

	r.logger.Infow("service settings updated", "settings_id", settings.ID())
	return nil
}

func (r *ServiceSettingsRepositoryImpl) toEntity(model *models.ServiceSettingsModel) *showcase.ServiceSettings {
	return showcase.ReconstructServiceSettings(model.ID, model.MaxDisplay,
		model.EnableFlipAnimation, model.AutoRotate, model.AutoRotateInterval, model.UpdatedAt)
}
