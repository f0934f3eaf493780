package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/application/showcase/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/showcase"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type ListServicesUseCase struct {
	serviceRepo showcase.ServiceRepository
	logger      logger.Interface
}

func NewListServicesUseCase(serviceRepo showcase.ServiceRepository, logger logger.Interface) *ListServicesUseCase {
	return &ListServicesUseCase{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Execute returns every service card for the admin table, active or not.
func (uc *ListServicesUseCase) Execute(ctx context.Context) ([]*dto.ServiceDTO, error) {
	services, err := uc.serviceRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list services", "error", err)
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	return dto.ToServiceDTOList(services), nil
}
