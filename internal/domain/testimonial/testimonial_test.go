package testimonial

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidTestimonial(t *testing.T) *Testimonial {
	t.Helper()
	tm, err := NewTestimonial("Dina & Raka", "", "Pelayanan cepat dan hasilnya cantik sekali!", "Pernikahan Dina & Raka", 0)
	require.NoError(t, err)
	require.NotNil(t, tm)
	return tm
}

func TestNewTestimonial_Defaults(t *testing.T) {
	tm := newValidTestimonial(t)

	assert.Equal(t, DefaultRole, tm.Role())
	assert.Equal(t, DefaultRating, tm.Rating())
	assert.True(t, tm.IsActive())
	assert.False(t, tm.IsApproved())
	assert.False(t, tm.IsFeatured())
	assert.Nil(t, tm.ApprovedAt())
	assert.Nil(t, tm.Email())
	assert.Nil(t, tm.ThemeID())
}

func TestNewTestimonial_EmptyEvent(t *testing.T) {
	tm, err := NewTestimonial("Dina", "", "Bagus!", "  ", 5)

	assert.Error(t, err)
	assert.Nil(t, tm)
}

func TestNewTestimonial_EmptyName(t *testing.T) {
	tm, err := NewTestimonial("", "", "Bagus!", "Akad Nikah", 5)

	assert.Error(t, err)
	assert.Nil(t, tm)
}

func TestNewTestimonial_EmptyContent(t *testing.T) {
	tm, err := NewTestimonial("Dina", "", "  ", "Akad Nikah", 5)

	assert.Error(t, err)
	assert.Nil(t, tm)
}

func TestNewTestimonial_ContentTooLong(t *testing.T) {
	tm, err := NewTestimonial("Dina", "", strings.Repeat("a", MaxContentLength+1), "Akad Nikah", 5)

	assert.Error(t, err)
	assert.Nil(t, tm)
}

func TestNewTestimonial_RatingBounds(t *testing.T) {
	for _, rating := range []int{MinRating, 3, MaxRating} {
		tm, err := NewTestimonial("Dina", "", "Bagus!", "Akad Nikah", rating)
		require.NoError(t, err)
		assert.Equal(t, rating, tm.Rating())
	}

	for _, rating := range []int{-1, 6} {
		tm, err := NewTestimonial("Dina", "", "Bagus!", "Akad Nikah", rating)
		assert.Error(t, err)
		assert.Nil(t, tm)
	}
}

func TestTestimonial_Approve_RecordsTimestampOnce(t *testing.T) {
	tm := newValidTestimonial(t)

	tm.Approve()
	require.True(t, tm.IsApproved())
	require.NotNil(t, tm.ApprovedAt())
	first := *tm.ApprovedAt()

	time.Sleep(2 * time.Millisecond)
	tm.Approve()
	assert.Equal(t, first, *tm.ApprovedAt(), "re-approving keeps the original moment")
}

func TestTestimonial_Unapprove_KeepsTimestamp(t *testing.T) {
	tm := newValidTestimonial(t)
	tm.Approve()
	approvedAt := *tm.ApprovedAt()

	tm.Unapprove()
	assert.False(t, tm.IsApproved())
	require.NotNil(t, tm.ApprovedAt())
	assert.Equal(t, approvedAt, *tm.ApprovedAt())
}

func TestTestimonial_ReapproveAfterUnapprove_NewTimestamp(t *testing.T) {
	tm := newValidTestimonial(t)
	tm.Approve()
	first := *tm.ApprovedAt()
	tm.Unapprove()

	time.Sleep(2 * time.Millisecond)
	tm.Approve()
	assert.True(t, tm.ApprovedAt().After(first), "a fresh approval records a new moment")
}

func TestTestimonial_SetFeatured(t *testing.T) {
	tm := newValidTestimonial(t)

	tm.SetFeatured(true, 10)
	assert.True(t, tm.IsFeatured())
	assert.Equal(t, 10, tm.Priority())
}
