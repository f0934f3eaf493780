package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/lamaran-inc/lamaran/internal/application/catalog/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/asset"
	"github.com/lamaran-inc/lamaran/internal/domain/catalog"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type UpdateThemeCommand struct {
	ID          uint
	Name        string
	Price       int
	DemoURL     string
	CategoryIDs []uint
	TagIDs      []uint
	// Image, when set, replaces the current asset. The previous file is
	// removed only after the new state is persisted.
	Image *ImageUpload
}

type UpdateThemeUseCase struct {
	themeRepo    catalog.ThemeRepository
	categoryRepo catalog.CategoryRepository
	tagRepo      catalog.TagRepository
	assets       asset.Store
	logger       logger.Interface
}

func NewUpdateThemeUseCase(
	themeRepo catalog.ThemeRepository,
	categoryRepo catalog.CategoryRepository,
	tagRepo catalog.TagRepository,
	assets asset.Store,
	logger logger.Interface,
) *UpdateThemeUseCase {
	return &UpdateThemeUseCase{
		themeRepo:    themeRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		assets:       assets,
		logger:       logger,
	}
}

func (uc *UpdateThemeUseCase) Execute(ctx context.Context, cmd UpdateThemeCommand) (*dto.ThemeDTO, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, errors.NewValidationError("theme name is required")
	}
	if cmd.Price < 0 {
		return nil, errors.NewValidationError("theme price cannot be negative")
	}
	if len(cmd.CategoryIDs) == 0 {
		return nil, errors.NewValidationError("theme requires at least one category")
	}

	theme, err := uc.themeRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to load theme", "error", err, "theme_id", cmd.ID)
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}
	if theme == nil {
		return nil, errors.NewNotFoundError("theme not found")
	}

	categories, tags, err := resolveThemeRelations(ctx, uc.categoryRepo, uc.tagRepo, cmd.CategoryIDs, cmd.TagIDs)
	if err != nil {
		return nil, err
	}

	if err := theme.Update(cmd.Name, cmd.Price, cmd.DemoURL); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := theme.ReplaceCategories(categories); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	theme.ReplaceTags(tags)

	var oldImage *string
	if cmd.Image != nil {
		if theme.HasImage() {
			prev := *theme.Image()
			oldImage = &prev
		}
		url, err := uc.assets.Store(ctx, cmd.Image.Content, asset.FolderThemes, cmd.Image.Filename)
		if err != nil {
			if errors.IsAppError(err) {
				return nil, err
			}
			uc.logger.Errorw("failed to store theme image", "error", err)
			return nil, errors.NewStorageError("failed to store theme image")
		}
		theme.SetImage(url)
	}

	if err := uc.themeRepo.Update(ctx, theme); err != nil {
		if cmd.Image != nil && theme.HasImage() {
			if delErr := uc.assets.Delete(ctx, *theme.Image()); delErr != nil {
				uc.logger.Warnw("failed to clean up orphaned theme image",
					"error", delErr, "url", *theme.Image())
			}
		}
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update theme", "error", err, "theme_id", cmd.ID)
		return nil, fmt.Errorf("failed to update theme: %w", err)
	}

	// The replaced asset is gone from the record; removal failures only warn
	if oldImage != nil {
		if err := uc.assets.Delete(ctx, *oldImage); err != nil {
			uc.logger.Warnw("failed to delete replaced theme image",
				"error", err, "url", *oldImage)
		}
	}

	uc.logger.Infow("theme updated", "theme_id", theme.ID())
	return dto.ToThemeDTO(theme), nil
}
