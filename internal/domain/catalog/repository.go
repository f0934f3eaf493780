package catalog

import "context"

// CategoryRepository defines persistence for categories
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Category, error)
	// List returns all categories ordered by identifier descending
	List(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uint) error
	ExistsByName(ctx context.Context, name string) (bool, error)
	// CountThemeRefs reports how many themes still reference the category
	CountThemeRefs(ctx context.Context, id uint) (int64, error)
}

// TagRepository defines persistence for tags
type TagRepository interface {
	Create(ctx context.Context, tag *Tag) error
	GetByID(ctx context.Context, id uint) (*Tag, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Tag, error)
	// List returns all tags ordered by identifier descending
	List(ctx context.Context) ([]*Tag, error)
	Update(ctx context.Context, tag *Tag) error
	Delete(ctx context.Context, id uint) error
	ExistsByName(ctx context.Context, name string) (bool, error)
	// CountThemeRefs reports how many themes still reference the tag
	CountThemeRefs(ctx context.Context, id uint) (int64, error)
}

// ThemeRepository defines persistence for themes and their join rows.
// Create and Update persist the association sets atomically with the record:
// the replace-all join rewrite happens inside one transaction.
type ThemeRepository interface {
	Create(ctx context.Context, theme *Theme) error
	GetByID(ctx context.Context, id uint) (*Theme, error)
	// List returns all themes with relations resolved, newest first
	List(ctx context.Context) ([]*Theme, error)
	Update(ctx context.Context, theme *Theme) error
	// Delete removes the theme and cascades its join rows
	Delete(ctx context.Context, id uint) error
	// NamesByIDs resolves theme names for the given identifiers. Missing
	// identifiers are simply absent from the result.
	NamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error)
}
