package showcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamaran-inc/lamaran/internal/domain/appearance"
)

func newValidService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService("Desain Kustom", "Tema dibuat sesuai permintaan", appearance.IconPalette, appearance.GradientPurplePink, []string{"Revisi 3x"})
	require.NoError(t, err)
	require.NotNil(t, svc)
	return svc
}

func TestNewService_ValidInput(t *testing.T) {
	svc := newValidService(t)

	assert.Equal(t, "Desain Kustom", svc.Title())
	assert.Equal(t, appearance.IconPalette, svc.Icon())
	assert.Equal(t, DefaultButtonText, svc.ButtonText())
	assert.True(t, svc.IsActive())
	assert.False(t, svc.IsFeatured())
	assert.False(t, svc.HasImage())
}

func TestNewService_EmptyTitle(t *testing.T) {
	svc, err := NewService("", "desc", appearance.IconStar, appearance.GradientGraySoft, nil)

	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestNewService_TooManyFeatures(t *testing.T) {
	features := []string{"a", "b", "c", "d", "e", "f"}
	svc, err := NewService("Rush", "desc", appearance.IconZap, appearance.GradientRedOrange, features)

	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestNewService_BlankFeaturesDropped(t *testing.T) {
	svc, err := NewService("Rush", "desc", appearance.IconZap, appearance.GradientRedOrange, []string{" a ", "", "b"})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, svc.Features())
}

func TestService_SetButton_BlankTextFallsBack(t *testing.T) {
	svc := newValidService(t)
	link := "https://wa.me/6281248406898"

	svc.SetButton("  ", &link)
	assert.Equal(t, DefaultButtonText, svc.ButtonText())
	require.NotNil(t, svc.ButtonLink())
	assert.Equal(t, link, *svc.ButtonLink())
}

func TestServiceSettings_Defaults(t *testing.T) {
	s := DefaultServiceSettings()

	assert.Equal(t, DefaultServiceMaxDisplay, s.MaxDisplay())
	assert.True(t, s.EnableFlipAnimation())
	assert.False(t, s.AutoRotate())
	assert.Equal(t, DefaultAutoRotateInterval, s.AutoRotateInterval())
}

func TestServiceSettings_Update_IntervalTooLow(t *testing.T) {
	s := DefaultServiceSettings()

	assert.Error(t, s.Update(3, true, true, 500))
	assert.Equal(t, DefaultAutoRotateInterval, s.AutoRotateInterval())
}
