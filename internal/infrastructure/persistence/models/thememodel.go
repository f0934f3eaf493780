package models

import "time"

// ThemeModel represents the database persistence model for invitation themes
type ThemeModel struct {
	ID        uint    `gorm:"primarykey"`
	Name      string  `gorm:"not null;size:150"`
	Price     int     `gorm:"not null"`
	DemoURL   string  `gorm:"size:500"`
	Image     *string `gorm:"size:500"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Categories []CategoryModel `gorm:"many2many:theme_categories;joinForeignKey:ThemeID;joinReferences:CategoryID"`
	Tags       []TagModel      `gorm:"many2many:theme_tags;joinForeignKey:ThemeID;joinReferences:TagID"`
}

// TableName specifies the table name for GORM
func (ThemeModel) TableName() string {
	return "themes"
}

// ThemeCategoryModel is the join row linking themes to categories.
// Declared explicitly so repositories can rewrite and count memberships
// without going through gorm's association mode.
type ThemeCategoryModel struct {
	ThemeID    uint `gorm:"primarykey"`
	CategoryID uint `gorm:"primarykey"`
}

// TableName specifies the table name for GORM
func (ThemeCategoryModel) TableName() string {
	return "theme_categories"
}

// ThemeTagModel is the join row linking themes to tags
type ThemeTagModel struct {
	ThemeID uint `gorm:"primarykey"`
	TagID   uint `gorm:"primarykey"`
}

// TableName specifies the table name for GORM
func (ThemeTagModel) TableName() string {
	return "theme_tags"
}
