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

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCategoryRepository(db *gorm.DB, logger logger.Interface) catalog.CategoryRepository {
	return &CategoryRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *catalog.Category) error {
	model := r.toModel(category)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateKeyError(err) {
			return errors.NewDuplicateNameError("category name already exists")
		}
		r.logger.Errorw("failed to create category", "error", err, "name", category.Name())
		return fmt.Errorf("failed to create category: %w", err)
	}

	if err := category.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("category created", "category_id", model.ID, "name", category.Name())
	return nil
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Category, error) {
	var model models.CategoryModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get category by ID", "error", err, "category_id", id)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return r.toEntity(&model)
}

func (r *CategoryRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var categoryModels []*models.CategoryModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categoryModels).Error; err != nil {
		r.logger.Errorw("failed to get categories by IDs", "error", err)
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	return r.toEntities(categoryModels)
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]*catalog.Category, error) {
	var categoryModels []*models.CategoryModel
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&categoryModels).Error; err != nil {
		r.logger.Errorw("failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return r.toEntities(categoryModels)
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *catalog.Category) error {
	result := r.db.WithContext(ctx).Model(&models.CategoryModel{}).
		Where("id = ?", category.ID()).
		Update("name", category.Name())

	if result.Error != nil {
		if errors.IsDuplicateKeyError(result.Error) {
			return errors.NewDuplicateNameError("category name already exists")
		}
		r.logger.Errorw("failed to update category", "error", result.Error, "category_id", category.ID())
		return fmt.Errorf("failed to update category: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("category not found")
	}

	r.logger.Infow("category updated", "category_id", category.ID())
	return nil
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CategoryModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete category", "error", result.Error, "category_id", id)
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("category not found")
	}

	r.logger.Infow("category deleted", "category_id", id)
	return nil
}

func (r *CategoryRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CategoryModel{}).
		Where("name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return count > 0, nil
}

func (r *CategoryRepositoryImpl) CountThemeRefs(ctx context.Context, id uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ThemeCategoryModel{}).
		Where("category_id = ?", id).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count theme references: %w", err)
	}
	return count, nil
}

func (r *CategoryRepositoryImpl) toModel(category *catalog.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:        category.ID(),
		Name:      category.Name(),
		CreatedAt: category.CreatedAt(),
	}
}

func (r *CategoryRepositoryImpl) toEntity(model *models.CategoryModel) (*catalog.Category, error) {
	return catalog.ReconstructCategory(model.ID, model.Name, model.CreatedAt)
}

func (r *CategoryRepositoryImpl) toEntities(categoryModels []*models.CategoryModel) ([]*catalog.Category, error) {
	entities := make([]*catalog.Category, 0, len(categoryModels))
	for _, model := range categoryModels {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
