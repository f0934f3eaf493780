package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamaran-inc/lamaran/internal/domain/appearance"
	"github.com/lamaran-inc/lamaran/internal/domain/showcase"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type stubServiceRepo struct {
	items []*showcase.Service
	err   error
}

func (s *stubServiceRepo) Create(ctx context.Context, service *showcase.Service) error {
	return s.err
}

func (s *stubServiceRepo) GetByID(ctx context.Context, id uint) (*showcase.Service, error) {
	for _, svc := range s.items {
		if svc.ID() == id {
			return svc, nil
		}
	}
	return nil, s.err
}

func (s *stubServiceRepo) List(ctx context.Context) ([]*showcase.Service, error) {
	return s.items, s.err
}

func (s *stubServiceRepo) Update(ctx context.Context, service *showcase.Service) error {
	return s.err
}

func (s *stubServiceRepo) Delete(ctx context.Context, id uint) error {
	return s.err
}

type stubServiceSettingsRepo struct {
	settings *showcase.ServiceSettings
	err      error
}

func (s *stubServiceSettingsRepo) GetOrCreate(ctx context.Context) (*showcase.ServiceSettings, error) {
	return s.settings, s.err
}

func (s *stubServiceSettingsRepo) Update(ctx context.Context, settings *showcase.ServiceSettings) error {
	return s.err
}

func activeService(t *testing.T, id uint, title string) *showcase.Service {
	svc, err := showcase.NewService(title, "Layanan untuk hari besar Anda.",
		appearance.DefaultIcon, appearance.DefaultServiceGradient, []string{"Konsultasi"})
	require.NoError(t, err)
	require.NoError(t, svc.SetID(id))
	return svc
}

func serviceSettings(maxDisplay int) *showcase.ServiceSettings {
	return showcase.ReconstructServiceSettings(1, maxDisplay, true, false,
		showcase.DefaultAutoRotateInterval, time.Now())
}

func TestGetPublicServices_CapsAtMaxDisplay(t *testing.T) {
	items := make([]*showcase.Service, 0, 10)
	for i := 1; i <= 10; i++ {
		items = append(items, activeService(t, uint(i), fmt.Sprintf("Layanan %d", i)))
	}
	repo := &stubServiceRepo{items: items}
	settingsRepo := &stubServiceSettingsRepo{settings: serviceSettings(3)}
	uc := NewGetPublicServicesUseCase(repo, settingsRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Services, 3)
	assert.Equal(t, "Layanan 1", result.Services[0].Title)
	assert.Equal(t, "Layanan 2", result.Services[1].Title)
	assert.Equal(t, "Layanan 3", result.Services[2].Title)
	assert.Equal(t, 3, result.Settings.MaxDisplay)
}

func TestGetPublicServices_SkipsInactiveBeforeCapping(t *testing.T) {
	first := activeService(t, 1, "Desain Kustom")
	hidden := activeService(t, 2, "Arsip")
	hidden.SetFlags(false, false, 0)
	third := activeService(t, 3, "Kirim Kilat")
	repo := &stubServiceRepo{items: []*showcase.Service{first, hidden, third}}
	settingsRepo := &stubServiceSettingsRepo{settings: serviceSettings(2)}
	uc := NewGetPublicServicesUseCase(repo, settingsRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Services, 2)
	assert.Equal(t, "Desain Kustom", result.Services[0].Title)
	assert.Equal(t, "Kirim Kilat", result.Services[1].Title)
}

func TestGetPublicServices_KeepsRepositoryOrder(t *testing.T) {
	// The repository already sorts by priority asc, createdAt asc, id asc,
	// so the use case must not reorder what it receives.
	repo := &stubServiceRepo{items: []*showcase.Service{
		activeService(t, 5, "Paket Premium"),
		activeService(t, 2, "Paket Hemat"),
		activeService(t, 9, "Paket Reguler"),
	}}
	settingsRepo := &stubServiceSettingsRepo{settings: serviceSettings(10)}
	uc := NewGetPublicServicesUseCase(repo, settingsRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Services, 3)
	assert.Equal(t, "Paket Premium", result.Services[0].Title)
	assert.Equal(t, "Paket Hemat", result.Services[1].Title)
	assert.Equal(t, "Paket Reguler", result.Services[2].Title)
}
