package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lamaran-inc/lamaran/internal/domain/catalog"
	"github.com/lamaran-inc/lamaran/internal/infrastructure/persistence/models"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type TagRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewTagRepository(db *gorm.DB, logger logger.Interface) catalog.TagRepository {
	return &TagRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *TagRepositoryImpl) Create(ctx context.Context, tag *catalog.Tag) error {
	model := r.toModel(tag)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateKeyError(err) {
			return errors.NewDuplicateNameError("tag name already exists")
		}
		r.logger.Errorw("failed to create tag", "error", err, "name", tag.Name())
		return fmt.Errorf("failed to create tag: %w", err)
	}

	if err := tag.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("tag created", "tag_id", model.ID, "name", tag.Name())
	return nil
}

func (r *TagRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Tag, error) {
	var model models.TagModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get tag by ID", "error", err, "tag_id", id)
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return r.toEntity(&model)
}

func (r *TagRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var tagModels []*models.TagModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tagModels).Error; err != nil {
		r.logger.Errorw("failed to get tags by IDs", "error", err)
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	return r.toEntities(tagModels)
}

func (r *TagRepositoryImpl) List(ctx context.Context) ([]*catalog.Tag, error) {
	var tagModels []*models.TagModel
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&tagModels).Error; err != nil {
		r.logger.Errorw("failed to list tags", "error", err)
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	return r.toEntities(tagModels)
}

func (r *TagRepositoryImpl) Update(ctx context.Context, tag *catalog.Tag) error {
	result := r.db.WithContext(ctx).Model(&models.TagModel{}).
		Where("id = ?", tag.ID()).
		Updates(map[string]interface{}{
			"name":  tag.Name(),
			"color": tag.Color().String(),
			"icon":  tag.Icon().String(),
		})

	if result.Error != nil {
		if errors.IsDuplicateKeyError(result.Error) {
			return errors.NewDuplicateNameError("tag name already exists")
		}
		r.logger.Errorw("failed to update tag", "error", result.Error, "tag_id", tag.ID())
		return fmt.Errorf("failed to update tag: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("tag not found")
	}

	r.logger.Infow("tag updated", "tag_id", tag.ID())
	return nil
}

func (r *TagRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TagModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete tag", "error", result.Error, "tag_id", id)
		return fmt.Errorf("failed to delete tag: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("tag not found")
	}

	r.logger.Infow("tag deleted", "tag_id", id)
	return nil
}

func (r *TagRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TagModel{}).
		Where("name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check tag name: %w", err)
	}
	return count > 0, nil
}

func (r *TagRepositoryImpl) CountThemeRefs(ctx context.Context, id uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ThemeTagModel{}).
		Where("tag_id = ?", id).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count theme references: %w", err)
	}
	return count, nil
}

func (r *TagRepositoryImpl) toModel(tag *catalog.Tag) *models.TagModel {
	return &models.TagModel{
		ID:        tag.ID(),
		Name:      tag.Name(),
		Color:     tag.Color().String(),
		Icon:      tag.Icon().String(),
		CreatedAt: tag.CreatedAt(),
	}
}

func (r *TagRepositoryImpl) toEntity(model *models.TagModel) (*catalog.Tag, error) {
	return catalog.ReconstructTag(model.ID, model.Name, model.Color, model.Icon, model.CreatedAt)
}

func (r *TagRepositoryImpl) toEntities(tagModels []*models.TagModel) ([]*catalog.Tag, error) {
	entities := make([]*catalog.Tag, 0, len(tagModels))
	for _, model := range tagModels {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
