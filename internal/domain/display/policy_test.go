package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamaran-inc/lamaran/internal/domain/pricing"
	"github.com/lamaran-inc/lamaran/internal/domain/testimonial"
)

func planWithDiscount(t *testing.T, price, discount int, end time.Time) *pricing.Plan {
	t.Helper()
	plan, err := pricing.NewPlan("Paket Premium", price, "", []string{"Unlimited tamu"})
	require.NoError(t, err)
	require.NoError(t, plan.SetDiscount(&discount, &end))
	return plan
}

func TestResolveCurrentPrice_InsideWindow(t *testing.T) {
	now := time.Now()
	plan := planWithDiscount(t, 199000, 149000, now.Add(time.Hour))

	quote := ResolveCurrentPrice(plan, now)

	assert.Equal(t, 149000, quote.Amount)
	assert.True(t, quote.IsDiscounted)
	require.NotNil(t, quote.OriginalAmount)
	assert.Equal(t, 199000, *quote.OriginalAmount)
}

func TestResolveCurrentPrice_ExpiredWindow(t *testing.T) {
	now := time.Now()
	plan := planWithDiscount(t, 199000, 149000, now.Add(time.Hour))

	quote := ResolveCurrentPrice(plan, now.Add(2*time.Hour))

	assert.Equal(t, 199000, quote.Amount)
	assert.False(t, quote.IsDiscounted)
	assert.Nil(t, quote.OriginalAmount, "no original amount outside the window")
}

func TestResolveCurrentPrice_NoDiscount(t *testing.T) {
	plan, err := pricing.NewPlan("Paket Basic", 99000, "", []string{"1 tema"})
	require.NoError(t, err)

	quote := ResolveCurrentPrice(plan, time.Now())

	assert.Equal(t, 99000, quote.Amount)
	assert.False(t, quote.IsDiscounted)
	assert.Nil(t, quote.OriginalAmount)
}

func TestTruncate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2, 3}, Truncate(items, 3))
	assert.Equal(t, items, Truncate(items, 10), "max above length keeps everything")
	assert.Equal(t, items, Truncate(items, 0), "non-positive max means no cap")
	assert.Equal(t, items, Truncate(items, -1))
}

func TestVisiblePlans(t *testing.T) {
	active, err := pricing.NewPlan("Aktif", 100, "", []string{"Fitur"})
	require.NoError(t, err)
	inactive, err := pricing.NewPlan("Nonaktif", 100, "", []string{"Fitur"})
	require.NoError(t, err)
	inactive.SetFlags(false, false, 0)

	visible := VisiblePlans([]*pricing.Plan{active, inactive})

	require.Len(t, visible, 1)
	assert.Equal(t, "Aktif", visible[0].Name())
}

func TestVisibleTestimonials_HidesUnapproved(t *testing.T) {
	approved, err := testimonial.NewTestimonial("Dina", "", "Bagus!", "Pernikahan Dina & Raka", 5)
	require.NoError(t, err)
	approved.Approve()
	pending, err := testimonial.NewTestimonial("Raka", "", "Menunggu", "Pernikahan Raka & Sari", 5)
	require.NoError(t, err)

	visible := VisibleTestimonials([]*testimonial.Testimonial{approved, pending})

	require.Len(t, visible, 1)
	assert.Equal(t, "Dina", visible[0].Name())
}

func TestVisibleTestimonials_HidesInactive(t *testing.T) {
	hidden, err := testimonial.NewTestimonial("Dina", "", "Bagus!", "Pernikahan Dina & Raka", 5)
	require.NoError(t, err)
	hidden.Approve()
	hidden.SetActive(false)

	visible := VisibleTestimonials([]*testimonial.Testimonial{hidden})
	assert.Empty(t, visible)
}
