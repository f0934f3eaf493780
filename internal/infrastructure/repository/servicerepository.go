package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lamaran-inc/lamaran/internal/domain/showcase"
	"github.com/lamaran-inc/lamaran/internal/infrastructure/persistence/models"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type ServiceRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewServiceRepository(db *gorm.DB, logger logger.Interface) showcase.ServiceRepository {
	return &ServiceRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *ServiceRepositoryImpl) Create(ctx context.Context, service *showcase.Service) error {
	model, err := r.toModel(service)
	if err != nil {
		return fmt.Errorf("failed to convert service to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create service", "error", err, "title", service.Title())
		return fmt.Errorf("failed to create service: %w", err)
	}

	if err := service.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("service created", "service_id", model.ID, "title", service.Title())
	return nil
}

func (r *ServiceRepositoryImpl) GetByID(ctx context.Context, id uint) (*showcase.Service, error) {
	var model models.ServiceModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get service by ID", "error", err, "service_id", id)
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return r.toEntity(&model)
}

func (r *ServiceRepositoryImpl) List(ctx context.Context) ([]*showcase.Service, error) {
	var serviceModels []*models.ServiceModel
	err := r.db.WithContext(ctx).
		Order("priority ASC, created_at ASC, id ASC").
		Find(&serviceModels).Error
	if err != nil {
		r.logger.Errorw("failed to list services", "error", err)
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	entities := make([]*showcase.Service, 0, len(serviceModels))
	for _, model := range serviceModels {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (r *ServiceRepositoryImpl) Update(ctx context.Context, service *showcase.Service) error {
	model, err := r.toModel(service)
	if err != nil {
		return fmt.Errorf("failed to convert service to model: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.ServiceModel{}).
		Where("id = ?", service.ID()).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"icon":        model.Icon,
			"color":       model.Color,
			"image":       model.Image,
			"features":    model.Features,
			"button_text": model.ButtonText,
			"button_link": model.ButtonLink,
			"is_active":   model.IsActive,
			"is_featured": model.IsFeatured,
			"priority":    model.Priority,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update service", "error", result.Error, "service_id", service.ID())
		return fmt.Errorf("failed to update service: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("service not found")
	}

	r.logger.Infow("service updated", "service_id", service.ID())
	return nil
}

func (r *ServiceRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ServiceModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete service", "error", result.Error, "service_id", id)
		return fmt.Errorf("failed to delete service: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("service not found")
	}

	r.logger.Infow("service deleted", "service_id", id)
	return nil
}

func (r *ServiceRepositoryImpl) toModel(service *showcase.Service) (*models.ServiceModel, error) {
	features, err := json.Marshal(service.Features())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal features: %w", err)
	}

	return &models.ServiceModel{
		ID:          service.ID(),
		Title:       service.Title(),
		Description: service.Description(),
		Icon:        service.Icon().String(),
		Color:       service.Color().String(),
		Image:       service.Image(),
		Features:    datatypes.JSON(features),
		ButtonText:  service.ButtonText(),
		ButtonLink:  service.ButtonLink(),
		IsActive:    service.IsActive(),
		IsFeatured:  service.IsFeatured(),
		Priority:    service.Priority(),
		CreatedAt:   service.CreatedAt(),
		UpdatedAt:   service.UpdatedAt(),
	}, nil
}

func (r *ServiceRepositoryImpl) toEntity(model *models.ServiceModel) (*showcase.Service, error) {
	var features []string
	if len(model.Features) > 0 {
		if err := json.Unmarshal(model.Features, &features); err != nil {
			return nil, fmt.Errorf("failed to unmarshal features: %w", err)
		}
	}

	return showcase.ReconstructService(model.ID, model.Title, model.Description,
		model.Icon, model.Color, model.Image, features,
		model.ButtonText, model.ButtonLink,
		model.IsActive, model.IsFeatured, model.Priority,
		model.CreatedAt, model.UpdatedAt)
}
