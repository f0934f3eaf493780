package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamaran-inc/lamaran/internal/domain/pricing"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type stubPlanRepo struct {
	items []*pricing.Plan
	err   error
}

func (s *stubPlanRepo) Create(ctx context.Context, plan *pricing.Plan) error { return s.err }

func (s *stubPlanRepo) GetByID(ctx context.Context, id uint) (*pricing.Plan, error) {
	for _, plan := range s.items {
		if plan.ID() == id {
			return plan, nil
		}
	}
	return nil, s.err
}

func (s *stubPlanRepo) List(ctx context.Context) ([]*pricing.Plan, error) {
	return s.items, s.err
}

func (s *stubPlanRepo) Update(ctx context.Context, plan *pricing.Plan) error { return s.err }
func (s *stubPlanRepo) Delete(ctx context.Context, id uint) error            { return s.err }

type stubPricingSettingsRepo struct {
	settings *pricing.PricingSettings
	err      error
}

func (s *stubPricingSettingsRepo) GetOrCreate(ctx context.Context) (*pricing.PricingSettings, error) {
	return s.settings, s.err
}

func (s *stubPricingSettingsRepo) Update(ctx context.Context, settings *pricing.PricingSettings) error {
	return s.err
}

func discountedPlan(t *testing.T, id uint, price, discount int, windowEnd time.Time) *pricing.Plan {
	plan, err := pricing.NewPlan("Paket Platinum", price, "Paket lengkap", []string{"Undangan digital", "Galeri foto"})
	require.NoError(t, err)
	require.NoError(t, plan.SetID(id))
	require.NoError(t, plan.SetDiscount(&discount, &windowEnd))
	return plan
}

func newPublicPricingUC(repo *stubPlanRepo) *GetPublicPricingUseCase {
	settingsRepo := &stubPricingSettingsRepo{
		settings: pricing.ReconstructPricingSettings(1, 6, "+6281234567890", time.Now()),
	}
	return NewGetPublicPricingUseCase(repo, settingsRepo, logger.NewLogger())
}

func TestGetPublicPricing_LiveDiscountCarriesOriginalPrice(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	plan := discountedPlan(t, 1, 199000, 149000, now.Add(24*time.Hour))
	uc := newPublicPricingUC(&stubPlanRepo{items: []*pricing.Plan{plan}})
	uc.now = func() time.Time { return now }

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Plans, 1)
	got := result.Plans[0]
	assert.True(t, got.IsDiscounted)
	assert.Equal(t, 149000, got.Price)
	require.NotNil(t, got.OriginalPrice)
	assert.Equal(t, 199000, *got.OriginalPrice)
}

func TestGetPublicPricing_ExpiredDiscountOmitsOriginalPrice(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	plan := discountedPlan(t, 1, 199000, 149000, now.Add(-time.Hour))
	uc := newPublicPricingUC(&stubPlanRepo{items: []*pricing.Plan{plan}})
	uc.now = func() time.Time { return now }

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Plans, 1)
	got := result.Plans[0]
	assert.False(t, got.IsDiscounted)
	assert.Equal(t, 199000, got.Price)
	assert.Nil(t, got.OriginalPrice, "original price only accompanies a live discount")
}

func TestGetPublicPricing_CarriesAppearanceAndContactFields(t *testing.T) {
	plan, err := pricing.NewPlan("Paket Hemat", 99000, "Paket dasar", []string{"Undangan digital"})
	require.NoError(t, err)
	require.NoError(t, plan.SetID(1))
	message := "Halo, saya tertarik dengan Paket Hemat"
	plan.SetWhatsappMessage(&message)

	uc := newPublicPricingUC(&stubPlanRepo{items: []*pricing.Plan{plan}})

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Plans, 1)
	got := result.Plans[0]
	assert.Equal(t, "Star", got.Icon)
	require.NotNil(t, got.WhatsappMessage)
	assert.Equal(t, message, *got.WhatsappMessage)
	assert.Equal(t, "+6281234567890", result.Settings.WhatsappNumber)
}
