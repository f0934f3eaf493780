package pricing

import "context"

// PlanRepository persists pricing plans.
// List returns rows ordered by priority asc, createdAt asc, id asc.
type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	List(ctx context.Context) ([]*Plan, error)
	Update(ctx context.Context, plan *Plan) error
	Delete(ctx context.Context, id uint) error
}

// SettingsRepository manages the singleton settings row.
// GetOrCreate persists the defaults on first read.
type SettingsRepository interface {
	GetOrCreate(ctx context.Context) (*PricingSettings, error)
	Update(ctx context.Context, settings *PricingSettings) error
}
