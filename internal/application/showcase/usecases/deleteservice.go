package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/domain/asset"
	"github.com/lamaran-inc/lamaran/internal/domain/showcase"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type DeleteServiceUseCase struct {
	serviceRepo showcase.ServiceRepository
	assets      asset.Store
	logger      logger.Interface
}

func NewDeleteServiceUseCase(serviceRepo showcase.ServiceRepository, assets asset.Store, logger logger.Interface) *DeleteServiceUseCase {
	return &DeleteServiceUseCase{
		serviceRepo: serviceRepo,
		assets:      assets,
		logger:      logger,
	}
}

func (uc *DeleteServiceUseCase) Execute(ctx context.Context, id uint) error {
	service, err := uc.serviceRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to load service", "error", err, "service_id", id)
		return fmt.Errorf("failed to load service: %w", err)
	}
	if service == nil {
		return errors.NewNotFoundError("service not found")
	}

	if err := uc.serviceRepo.Delete(ctx, id); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete service", "error", err, "service_id", id)
		return fmt.Errorf("failed to delete service: %w", err)
	}

	if service.HasImage() {
		if err := uc.assets.Delete(ctx, *service.Image()); err != nil {
			uc.logger.Warnw("failed to delete service image",
				"error", err, "url", *service.Image())
		}
	}

	uc.logger.Infow("service deleted", "service_id", id)
	return nil
}
