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

type ThemeRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewThemeRepository(db *gorm.DB, logger logger.Interface) catalog.ThemeRepository {
	return &ThemeRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *ThemeRepositoryImpl) Create(ctx context.Context, theme *catalog.Theme) error {
	model := r.toModel(theme)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories", "Tags").Create(model).Error; err != nil {
			return err
		}
		if err := r.insertJoinRows(tx, model.ID, theme.CategoryIDs(), theme.TagIDs()); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to create theme", "error", err, "name", theme.Name())
		return fmt.Errorf("failed to create theme: %w", err)
	}

	if err := theme.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("theme created", "theme_id", model.ID, "name", theme.Name())
	return nil
}

func (r *ThemeRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Theme, error) {
	var model models.ThemeModel
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Tags").
		First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get theme by ID", "error", err, "theme_id", id)
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}

	return r.toEntity(&model)
}

func (r *ThemeRepositoryImpl) List(ctx context.Context) ([]*catalog.Theme, error) {
	var themeModels []*models.ThemeModel
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Tags").
		Order("id DESC").
		Find(&themeModels).Error
	if err != nil {
		r.logger.Errorw("failed to list themes", "error", err)
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}

	entities := make([]*catalog.Theme, 0, len(themeModels))
	for _, model := range themeModels {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// Update rewrites the record together with both join sets. The old join rows
// are dropped and the current sets inserted inside one transaction so a
// failure leaves the previous associations intact.
func (r *ThemeRepositoryImpl) Update(ctx context.Context, theme *catalog.Theme) error {
	model := r.toModel(theme)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ThemeModel{}).
			Where("id = ?", theme.ID()).
			Updates(map[string]interface{}{
				"name":       model.Name,
				"price":      model.Price,
				"demo_url":   model.DemoURL,
				"image":      model.Image,
				"updated_at": model.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("theme not found")
		}

		if err := tx.Where("theme_id = ?", theme.ID()).
			Delete(&models.ThemeCategoryModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("theme_id = ?", theme.ID()).
			Delete(&models.ThemeTagModel{}).Error; err != nil {
			return err
		}
		return r.insertJoinRows(tx, theme.ID(), theme.CategoryIDs(), theme.TagIDs())
	})
	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		r.logger.Errorw("failed to update theme", "error", err, "theme_id", theme.ID())
		return fmt.Errorf("failed to update theme: %w", err)
	}

	r.logger.Infow("theme updated", "theme_id", theme.ID())
	return nil
}

func (r *ThemeRepositoryImpl) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("theme_id = ?", id).
			Delete(&models.ThemeCategoryModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("theme_id = ?", id).
			Delete(&models.ThemeTagModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.ThemeModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("theme not found")
		}
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		r.logger.Errorw("failed to delete theme", "error", err, "theme_id", id)
		return fmt.Errorf("failed to delete theme: %w", err)
	}

	r.logger.Infow("theme deleted", "theme_id", id)
	return nil
}

func (r *ThemeRepositoryImpl) NamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error) {
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var themeModels []*models.ThemeModel
	err := r.db.WithContext(ctx).
		Select("id", "name").
		Where("id IN ?", ids).
		Find(&themeModels).Error
	if err != nil {
		r.logger.Errorw("failed to resolve theme names", "error", err)
		return nil, fmt.Errorf("failed to resolve theme names: %w", err)
	}

	for _, model := range themeModels {
		names[model.ID] = model.Name
	}
	return names, nil
}

func (r *ThemeRepositoryImpl) insertJoinRows(tx *gorm.DB, themeID uint, categoryIDs, tagIDs []uint) error {
	if len(categoryIDs) > 0 {
		rows := make([]models.ThemeCategoryModel, 0, len(categoryIDs))
		for _, cid := range categoryIDs {
			rows = append(rows, models.ThemeCategoryModel{ThemeID: themeID, CategoryID: cid})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	if len(tagIDs) > 0 {
		rows := make([]models.ThemeTagModel, 0, len(tagIDs))
		for _, tid := range tagIDs {
			rows = append(rows, models.ThemeTagModel{ThemeID: themeID, TagID: tid})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *ThemeRepositoryImpl) toModel(theme *catalog.Theme) *models.ThemeModel {
	return &models.ThemeModel{
		ID:        theme.ID(),
		Name:      theme.Name(),
		Price:     theme.Price(),
		DemoURL:   theme.DemoURL(),
		Image:     theme.Image(),
		CreatedAt: theme.CreatedAt(),
		UpdatedAt: theme.UpdatedAt(),
	}
}

func (r *ThemeRepositoryImpl) toEntity(model *models.ThemeModel) (*catalog.Theme, error) {
	categories := make([]*catalog.Category, 0, len(model.Categories))
	for _, cm := range model.Categories {
		category, err := catalog.ReconstructCategory(cm.ID, cm.Name, cm.CreatedAt)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	tags := make([]*catalog.Tag, 0, len(model.Tags))
	for _, tm := range model.Tags {
		tag, err := catalog.ReconstructTag(tm.ID, tm.Name, tm.Color, tm.Icon, tm.CreatedAt)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return catalog.ReconstructTheme(model.ID, model.Name, model.Price, model.DemoURL, model.Image,
		categories, tags, model.CreatedAt, model.UpdatedAt)
}
