package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamaran-inc/lamaran/internal/domain/appearance"
)

// --- helpers ---

func newValidPlan(t *testing.T) *Plan {
	t.Helper()
	plan, err := NewPlan("Paket Premium", 199000, "Paket lengkap dengan semua fitur", []string{"Unlimited tamu", "Galeri foto"})
	require.NoError(t, err)
	require.NotNil(t, plan)
	return plan
}

func intPtr(v int) *int { return &v }

// =====================================================================
// TestNewPlan_*
// =====================================================================

func TestNewPlan_ValidInput(t *testing.T) {
	plan, err := NewPlan("Paket Basic", 99000, "Paket hemat", []string{"1 tema", " ", "Masa aktif 1 bulan"})

	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Equal(t, "Paket Basic", plan.Name())
	assert.Equal(t, 99000, plan.Price())
	assert.Equal(t, DefaultPeriod, plan.Period())
	assert.Equal(t, []string{"1 tema", "Masa aktif 1 bulan"}, plan.Features(), "blank features should be dropped")
	assert.True(t, plan.IsActive())
	assert.False(t, plan.IsPopular())
	assert.Nil(t, plan.DiscountPrice())
	assert.Nil(t, plan.DiscountEndDate())
	assert.Equal(t, appearance.DefaultButtonStyle, plan.ButtonStyle())
	assert.Equal(t, appearance.DefaultPlanGradient, plan.BackgroundGradient())
	assert.Equal(t, appearance.DefaultIcon, plan.Icon())
	assert.Nil(t, plan.WhatsappMessage())
}

func TestNewPlan_NoFeatures(t *testing.T) {
	plan, err := NewPlan("Paket Kosong", 99000, "", nil)
	assert.Error(t, err)
	assert.Nil(t, plan)

	plan, err = NewPlan("Paket Kosong", 99000, "", []string{"  ", ""})
	assert.Error(t, err, "blank-only features count as none")
	assert.Nil(t, plan)
}

func TestNewPlan_EmptyName(t *testing.T) {
	plan, err := NewPlan("", 99000, "", []string{"Fitur"})

	assert.Error(t, err)
	assert.Nil(t, plan)
}

func TestNewPlan_NegativePrice(t *testing.T) {
	plan, err := NewPlan("Paket Rugi", -100, "", []string{"Fitur"})

	assert.Error(t, err)
	assert.Nil(t, plan)
}

// =====================================================================
// Discounts
// =====================================================================

func TestPlan_SetDiscount(t *testing.T) {
	plan := newValidPlan(t)
	end := time.Now().Add(24 * time.Hour)

	require.NoError(t, plan.SetDiscount(intPtr(149000), &end))
	require.NotNil(t, plan.DiscountPrice())
	assert.Equal(t, 149000, *plan.DiscountPrice())
}

func TestPlan_SetDiscount_NotBelowPrice(t *testing.T) {
	plan := newValidPlan(t)
	end := time.Now().Add(24 * time.Hour)

	assert.Error(t, plan.SetDiscount(intPtr(plan.Price()), &end))
	assert.Error(t, plan.SetDiscount(intPtr(plan.Price()+1), &end))
	assert.Error(t, plan.SetDiscount(intPtr(-1), &end))
}

func TestPlan_SetDiscount_NilClears(t *testing.T) {
	plan := newValidPlan(t)
	end := time.Now().Add(24 * time.Hour)
	require.NoError(t, plan.SetDiscount(intPtr(149000), &end))

	require.NoError(t, plan.SetDiscount(nil, nil))
	assert.Nil(t, plan.DiscountPrice())
	assert.Nil(t, plan.DiscountEndDate())
}

func TestPlan_DiscountActiveAt(t *testing.T) {
	plan := newValidPlan(t)
	now := time.Now()
	end := now.Add(time.Hour)
	require.NoError(t, plan.SetDiscount(intPtr(149000), &end))

	assert.True(t, plan.DiscountActiveAt(now), "inside the window")
	assert.False(t, plan.DiscountActiveAt(now.Add(2*time.Hour)), "after the window")
	assert.False(t, plan.DiscountActiveAt(end), "the end instant is outside the window")
}

func TestPlan_DiscountActiveAt_NoDiscount(t *testing.T) {
	plan := newValidPlan(t)

	assert.False(t, plan.DiscountActiveAt(time.Now()))
}

// =====================================================================
// Mutations
// =====================================================================

func TestPlan_Update(t *testing.T) {
	plan := newValidPlan(t)

	require.NoError(t, plan.Update("Paket Ultimate", 299000, "", "Semua fitur premium", []string{"Custom domain"}))
	assert.Equal(t, "Paket Ultimate", plan.Name())
	assert.Equal(t, 299000, plan.Price())
	assert.Equal(t, DefaultPeriod, plan.Period(), "blank period falls back to the default")
}

func TestPlan_Update_NoFeatures(t *testing.T) {
	plan := newValidPlan(t)

	assert.Error(t, plan.Update("Paket Ultimate", 299000, "", "Semua fitur premium", nil))
	assert.Equal(t, []string{"Unlimited tamu", "Galeri foto"}, plan.Features(), "a rejected update leaves the plan untouched")
}

func TestPlan_SetWhatsappMessage(t *testing.T) {
	plan := newValidPlan(t)

	message := "Halo, saya tertarik dengan Paket Premium"
	plan.SetWhatsappMessage(&message)
	require.NotNil(t, plan.WhatsappMessage())
	assert.Equal(t, message, *plan.WhatsappMessage())

	blank := "   "
	plan.SetWhatsappMessage(&blank)
	assert.Nil(t, plan.WhatsappMessage(), "blank clears the message")
}

func TestPlan_SetAppearance_KeepsDefaultsOnBlank(t *testing.T) {
	plan := newValidPlan(t)

	plan.SetAppearance(appearance.IconName("NotAnIcon"), "", "", appearance.GradientToken("not-a-token"), true)
	assert.Equal(t, "Pilih Paket", plan.ButtonText())
	assert.Equal(t, appearance.DefaultButtonStyle, plan.ButtonStyle())
	assert.Equal(t, appearance.DefaultPlanGradient, plan.BackgroundGradient())
	assert.Equal(t, appearance.DefaultIcon, plan.Icon(), "unknown icons are ignored")
	assert.True(t, plan.BorderHighlight())
}

func TestPlan_SetFlags(t *testing.T) {
	plan := newValidPlan(t)

	plan.SetFlags(true, false, 2)
	assert.True(t, plan.IsPopular())
	assert.False(t, plan.IsActive())
	assert.Equal(t, 2, plan.Priority())
}
