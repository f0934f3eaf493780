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

type CreateThemeCommand struct {
	Name        string
	Price       int
	DemoURL     string
	CategoryIDs []uint
	TagIDs      []uint
	Image       *ImageUpload
}

type CreateThemeUseCase struct {
	themeRepo    catalog.ThemeRepository
	categoryRepo catalog.CategoryRepository
	tagRepo      catalog.TagRepository
	assets       asset.Store
	logger       logger.Interface
}

func NewCreateThemeUseCase(
	themeRepo catalog.ThemeRepository,
	categoryRepo catalog.CategoryRepository,
	tagRepo catalog.TagRepository,
	assets asset.Store,
	logger logger.Interface,
) *CreateThemeUseCase {
	return &CreateThemeUseCase{
		themeRepo:    themeRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		assets:       assets,
		logger:       logger,
	}
}

func (uc *CreateThemeUseCase) Execute(ctx context.Context, cmd CreateThemeCommand) (*dto.ThemeDTO, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, errors.NewValidationError("theme name is required")
	}
	if cmd.Price < 0 {
		return nil, errors.NewValidationError("theme price cannot be negative")
	}
	if len(cmd.CategoryIDs) == 0 {
		return nil, errors.NewValidationError("theme requires at least one category")
	}

	categories, tags, err := uc.resolveRelations(ctx, cmd.CategoryIDs, cmd.TagIDs)
	if err != nil {
		return nil, err
	}

	theme, err := catalog.NewTheme(cmd.Name, cmd.Price, cmd.DemoURL, categories, tags)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Image != nil {
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

	if err := uc.themeRepo.Create(ctx, theme); err != nil {
		// The stored image is orphaned if persistence fails; clean it up
		if theme.HasImage() {
			if delErr := uc.assets.Delete(ctx, *theme.Image()); delErr != nil {
				uc.logger.Warnw("failed to clean up orphaned theme image",
					"error", delErr, "url", *theme.Image())
			}
		}
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to persist theme", "error", err)
		return nil, fmt.Errorf("failed to persist theme: %w", err)
	}

	uc.logger.Infow("theme created", "theme_id", theme.ID(), "name", theme.Name())
	return dto.ToThemeDTO(theme), nil
}

func (uc *CreateThemeUseCase) resolveRelations(ctx context.Context, categoryIDs, tagIDs []uint) ([]*catalog.Category, []*catalog.Tag, error) {
	return resolveThemeRelations(ctx, uc.categoryRepo, uc.tagRepo, categoryIDs, tagIDs)
}

// resolveThemeRelations loads both association sets and rejects IDs that do
// not exist, so a theme can never point at phantom rows.
func resolveThemeRelations(
	ctx context.Context,
	categoryRepo catalog.CategoryRepository,
	tagRepo catalog.TagRepository,
	categoryIDs, tagIDs []uint,
) ([]*catalog.Category, []*catalog.Tag, error) {
	categories, err := categoryRepo.GetByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if len(categories) != len(uniqueIDs(categoryIDs)) {
		return nil, nil, errors.NewValidationError("one or more category IDs do not exist")
	}

	tags, err := tagRepo.GetByIDs(ctx, tagIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load tags: %w", err)
	}
	if len(tags) != len(uniqueIDs(tagIDs)) {
		return nil, nil, errors.NewValidationError("one or more tag IDs do not exist")
	}

	return categories, tags, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
