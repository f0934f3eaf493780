package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lamaran-inc/lamaran/internal/domain/testimonial"
	"github.com/lamaran-inc/lamaran/internal/infrastructure/persistence/models"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type TestimonialRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewTestimonialRepository(db *gorm.DB, logger logger.Interface) testimonial.Repository {
	return &TestimonialRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *TestimonialRepositoryImpl) Create(ctx context.Context, tm *testimonial.Testimonial) error {
	model := r.toModel(tm)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create testimonial", "error", err, "name", tm.Name())
		return fmt.Errorf("failed to create testimonial: %w", err)
	}

	if err := tm.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("testimonial created", "testimonial_id", model.ID, "name", tm.Name())
	return nil
}

func (r *TestimonialRepositoryImpl) GetByID(ctx context.Context, id uint) (*testimonial.Testimonial, error) {
	var model models.TestimonialModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get testimonial by ID", "error", err, "testimonial_id", id)
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}

	return r.toEntity(&model)
}

func (r *TestimonialRepositoryImpl) List(ctx context.Context) ([]*testimonial.Testimonial, error) {
	var testimonialModels []*models.TestimonialModel
	err := r.db.WithContext(ctx).
		Order("priority DESC, created_at DESC, id DESC").
		Find(&testimonialModels).Error
	if err != nil {
		r.logger.Errorw("failed to list testimonials", "error", err)
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}

	return r.toEntities(testimonialModels)
}

func (r *TestimonialRepositoryImpl) ListVisible(ctx context.Context) ([]*testimonial.Testimonial, error) {
	var testimonialModels []*models.TestimonialModel
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND is_approved = ?", true, true).
		Order("is_featured DESC, priority DESC, created_at DESC, id DESC").
		Find(&testimonialModels).Error
	if err != nil {
		r.logger.Errorw("failed to list visible testimonials", "error", err)
		return nil, fmt.Errorf("failed to list visible testimonials: %w", err)
	}

	return r.toEntities(testimonialModels)
}

func (r *TestimonialRepositoryImpl) Update(ctx context.Context, tm *testimonial.Testimonial) error {
	model := r.toModel(tm)

	result := r.db.WithContext(ctx).Model(&models.TestimonialModel{}).
		Where("id = ?", tm.ID()).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"role":        model.Role,
			"email":       model.Email,
			"content":     model.Content,
			"rating":      model.Rating,
			"event":       model.Event,
			"image":       model.Image,
			"wedding_on":  model.WeddingOn,
			"theme_id":    model.ThemeID,
			"is_active":   model.IsActive,
			"is_approved": model.IsApproved,
			"is_featured": model.IsFeatured,
			"priority":    model.Priority,
			"approved_at": model.ApprovedAt,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update testimonial", "error", result.Error, "testimonial_id", tm.ID())
		return fmt.Errorf("failed to update testimonial: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("testimonial not found")
	}

	r.logger.Infow("testimonial updated", "testimonial_id", tm.ID())
	return nil
}

func (r *TestimonialRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TestimonialModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete testimonial", "error", result.Error, "testimonial_id", id)
		return fmt.Errorf("failed to delete testimonial: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("testimonial not found")
	}

	r.logger.Infow("testimonial deleted", "testimonial_id", id)
	return nil
}

func (r *TestimonialRepositoryImpl) toModel(tm *testimonial.Testimonial) *models.TestimonialModel {
	return &models.TestimonialModel{
		ID:         tm.ID(),
		Name:       tm.Name(),
		Role:       tm.Role(),
		Email:      tm.Email(),
		Content:    tm.Content(),
		Rating:     tm.Rating(),
		Event:      tm.Event(),
		Image:      tm.Image(),
		WeddingOn:  tm.WeddingOn(),
		ThemeID:    tm.ThemeID(),
		IsActive:   tm.IsActive(),
		IsApproved: tm.IsApproved(),
		IsFeatured: tm.IsFeatured(),
		Priority:   tm.Priority(),
		ApprovedAt: tm.ApprovedAt(),
		CreatedAt:  tm.CreatedAt(),
		UpdatedAt:  tm.UpdatedAt(),
	}
}

func (r *TestimonialRepositoryImpl) toEntity(model *models.TestimonialModel) (*testimonial.Testimonial, error) {
	return testimonial.ReconstructTestimonial(model.ID, model.Name, model.Role, model.Email, model.Content, model.Rating,
		model.Event, model.Image, model.WeddingOn, model.ThemeID,
		model.IsActive, model.IsApproved, model.IsFeatured, model.Priority, model.ApprovedAt,
		model.CreatedAt, model.UpdatedAt)
}

func (r *TestimonialRepositoryImpl) toEntities(testimonialModels []*models.TestimonialModel) ([]*testimonial.Testimonial, error) {
	entities := make([]*testimonial.Testimonial, 0, len(testimonialModels))
	for _, model := range testimonialModels {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
