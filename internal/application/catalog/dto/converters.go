package dto

import "github.com/lamaran-inc/lamaran/internal/domain/catalog"

// ToCategoryDTO converts a Category entity to its presentation shape
func ToCategoryDTO(category *catalog.Category) *CategoryDTO {
	if category == nil {
		return nil
	}
	return &CategoryDTO{
		ID:        category.ID(),
		Name:      category.Name(),
		CreatedAt: category.CreatedAt(),
	}
}

// ToCategoryDTOList batch converts categories, returning an empty slice for nil input
func ToCategoryDTOList(categories []*catalog.Category) []*CategoryDTO {
	dtos := make([]*CategoryDTO, 0, len(categories))
	for _, category := range categories {
		if category != nil {
			dtos = append(dtos, ToCategoryDTO(category))
		}
	}
	return dtos
}

// ToTagDTO converts a Tag entity to its presentation shape
func ToTagDTO(tag *catalog.Tag) *TagDTO {
	if tag == nil {
		return nil
	}
	return &TagDTO{
		ID:        tag.ID(),
		Name:      tag.Name(),
		Color:     tag.Color().String(),
		Icon:      tag.Icon().String(),
		CreatedAt: tag.CreatedAt(),
	}
}

// ToTagDTOList batch converts tags, returning an empty slice for nil input
func ToTagDTOList(tags []*catalog.Tag) []*TagDTO {
	dtos := make([]*TagDTO, 0, len(tags))
	for _, tag := range tags {
		if tag != nil {
			dtos = append(dtos, ToTagDTO(tag))
		}
	}
	return dtos
}

// ToThemeDTO converts a Theme entity with its relations to the presentation shape
func ToThemeDTO(theme *catalog.Theme) *ThemeDTO {
	if theme == nil {
		return nil
	}
	return &ThemeDTO{
		ID:         theme.ID(),
		Name:       theme.Name(),
		Price:      theme.Price(),
		DemoURL:    theme.DemoURL(),
		Image:      theme.Image(),
		Categories: ToCategoryDTOList(theme.Categories()),
		Tags:       ToTagDTOList(theme.Tags()),
		CreatedAt:  theme.CreatedAt(),
		UpdatedAt:  theme.UpdatedAt(),
	}
}

// ToThemeDTOList batch converts themes, returning an empty slice for nil input
func ToThemeDTOList(themes []*catalog.Theme) []*ThemeDTO {
	dtos := make([]*ThemeDTO, 0, len(themes))
	for _, theme := range themes {
		if theme != nil {
			dtos = append(dtos, ToThemeDTO(theme))
		}
	}
	return dtos
}
