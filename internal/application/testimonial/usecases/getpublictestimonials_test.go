package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamaran-inc/lamaran/internal/domain/testimonial"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type stubTestimonialRepo struct {
	items []*testimonial.Testimonial
	err   error
}

func (s *stubTestimonialRepo) Create(ctx context.Context, tm *testimonial.Testimonial) error {
	return s.err
}

func (s *stubTestimonialRepo) GetByID(ctx context.Context, id uint) (*testimonial.Testimonial, error) {
	for _, tm := range s.items {
		if tm.ID() == id {
			return tm, nil
		}
	}
	return nil, s.err
}

func (s *stubTestimonialRepo) List(ctx context.Context) ([]*testimonial.Testimonial, error) {
	return s.items, s.err
}

func (s *stubTestimonialRepo) ListVisible(ctx context.Context) ([]*testimonial.Testimonial, error) {
	if s.err != nil {
		return nil, s.err
	}
	visible := make([]*testimonial.Testimonial, 0, len(s.items))
	for _, tm := range s.items {
		if tm.IsActive() && tm.IsApproved() {
			visible = append(visible, tm)
		}
	}
	return visible, nil
}

func (s *stubTestimonialRepo) Update(ctx context.Context, tm *testimonial.Testimonial) error {
	return s.err
}

func (s *stubTestimonialRepo) Delete(ctx context.Context, id uint) error {
	return s.err
}

type stubSettingsRepo struct {
	settings *testimonial.TestimonialSettings
	err      error
}

func (s *stubSettingsRepo) GetOrCreate(ctx context.Context) (*testimonial.TestimonialSettings, error) {
	return s.settings, s.err
}

func (s *stubSettingsRepo) Update(ctx context.Context, settings *testimonial.TestimonialSettings) error {
	return s.err
}

type stubThemeDirectory struct {
	names map[uint]string
	err   error
}

func (s *stubThemeDirectory) NamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make(map[uint]string, len(ids))
	for _, id := range ids {
		if name, ok := s.names[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

func approvedTestimonial(t *testing.T, id uint, name string) *testimonial.Testimonial {
	tm, err := testimonial.NewTestimonial(name, "Groom", "Great experience from start to finish.", "Resepsi Pernikahan", 5)
	require.NoError(t, err)
	tm.Approve()
	require.NoError(t, tm.SetID(id))
	return tm
}

func pendingTestimonial(t *testing.T, id uint, name string) *testimonial.Testimonial {
	tm, err := testimonial.NewTestimonial(name, "Bride", "Waiting for the big day.", "Akad Nikah", 4)
	require.NoError(t, err)
	require.NoError(t, tm.SetID(id))
	return tm
}

func testSettings(maxDisplay int, autoApprove, requireApproval bool) *testimonial.TestimonialSettings {
	return testimonial.ReconstructSettings(1, maxDisplay, autoApprove, requireApproval, time.Now())
}

func newPublicTestimonialsUC(repo *stubTestimonialRepo, settingsRepo *stubSettingsRepo) *GetPublicTestimonialsUseCase {
	return NewGetPublicTestimonialsUseCase(repo, settingsRepo, &stubThemeDirectory{}, logger.NewLogger())
}

func TestGetPublicTestimonials_OnlyApprovedShown(t *testing.T) {
	repo := &stubTestimonialRepo{items: []*testimonial.Testimonial{
		approvedTestimonial(t, 1, "Ayu"),
		pendingTestimonial(t, 2, "Dimas"),
		approvedTestimonial(t, 3, "Ratna"),
	}}
	settingsRepo := &stubSettingsRepo{settings: testSettings(6, false, true)}
	uc := newPublicTestimonialsUC(repo, settingsRepo)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Testimonials, 2)
	assert.Equal(t, "Ayu", result.Testimonials[0].Name)
	assert.Equal(t, "Ratna", result.Testimonials[1].Name)
	assert.Equal(t, 6, result.Settings.MaxDisplay)
}

func TestGetPublicTestimonials_ApprovalToggleDoesNotWidenVisibility(t *testing.T) {
	repo := &stubTestimonialRepo{items: []*testimonial.Testimonial{
		approvedTestimonial(t, 1, "Ayu"),
		pendingTestimonial(t, 2, "Dimas"),
	}}
	// Moderation switched off only changes how submissions enter; an
	// unapproved row still never reaches visitors.
	settingsRepo := &stubSettingsRepo{settings: testSettings(6, true, false)}
	uc := newPublicTestimonialsUC(repo, settingsRepo)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Testimonials, 1)
	assert.Equal(t, "Ayu", result.Testimonials[0].Name)
}

func TestGetPublicTestimonials_InactiveHidden(t *testing.T) {
	hidden := approvedTestimonial(t, 2, "Dimas")
	hidden.SetActive(false)
	repo := &stubTestimonialRepo{items: []*testimonial.Testimonial{
		approvedTestimonial(t, 1, "Ayu"),
		hidden,
	}}
	settingsRepo := &stubSettingsRepo{settings: testSettings(6, false, true)}
	uc := newPublicTestimonialsUC(repo, settingsRepo)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Testimonials, 1)
	assert.Equal(t, "Ayu", result.Testimonials[0].Name)
}

func TestGetPublicTestimonials_MaxDisplayCap(t *testing.T) {
	repo := &stubTestimonialRepo{items: []*testimonial.Testimonial{
		approvedTestimonial(t, 1, "One"),
		approvedTestimonial(t, 2, "Two"),
		approvedTestimonial(t, 3, "Three"),
	}}
	settingsRepo := &stubSettingsRepo{settings: testSettings(2, false, true)}
	uc := newPublicTestimonialsUC(repo, settingsRepo)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Testimonials, 2)
	assert.Equal(t, "One", result.Testimonials[0].Name)
	assert.Equal(t, "Two", result.Testimonials[1].Name)
}

func TestGetPublicTestimonials_ResolvesThemeReference(t *testing.T) {
	themeID := uint(7)
	withTheme := approvedTestimonial(t, 1, "Ayu")
	withTheme.SetDetails(nil, nil, &themeID)
	repo := &stubTestimonialRepo{items: []*testimonial.Testimonial{withTheme}}
	settingsRepo := &stubSettingsRepo{settings: testSettings(6, false, true)}
	themes := &stubThemeDirectory{names: map[uint]string{7: "Classic Gold"}}
	uc := NewGetPublicTestimonialsUseCase(repo, settingsRepo, themes, logger.NewLogger())

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Testimonials, 1)
	require.NotNil(t, result.Testimonials[0].Theme)
	assert.Equal(t, uint(7), result.Testimonials[0].Theme.ID)
	assert.Equal(t, "Classic Gold", result.Testimonials[0].Theme.Name)
}

func TestGetPublicTestimonials_DanglingThemeReferenceOmitted(t *testing.T) {
	themeID := uint(9)
	withTheme := approvedTestimonial(t, 1, "Ayu")
	withTheme.SetDetails(nil, nil, &themeID)
	repo := &stubTestimonialRepo{items: []*testimonial.Testimonial{withTheme}}
	settingsRepo := &stubSettingsRepo{settings: testSettings(6, false, true)}
	uc := newPublicTestimonialsUC(repo, settingsRepo)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Testimonials, 1)
	assert.Nil(t, result.Testimonials[0].Theme, "a deleted theme leaves no reference")
}
