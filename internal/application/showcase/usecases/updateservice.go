package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/lamaran-inc/lamaran/internal/application/showcase/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/appearance"
	"github.com/lamaran-inc/lamaran/internal/domain/asset"
	"github.com/lamaran-inc/lamaran/internal/domain/showcase"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type UpdateServiceCommand struct {
	ID          uint
	Title       string
	Description string
	Icon        string
	Color       string
	Features    []string
	ButtonText  string
	ButtonLink  *string
	IsActive    bool
	IsFeatured  bool
	Priority    int
	Image       *ImageUpload
}

type UpdateServiceUseCase struct {
	serviceRepo showcase.ServiceRepository
	assets      asset.Store
	logger      logger.Interface
}

func NewUpdateServiceUseCase(serviceRepo showcase.ServiceRepository, assets asset.Store, logger logger.Interface) *UpdateServiceUseCase {
	return &UpdateServiceUseCase{
		serviceRepo: serviceRepo,
		assets:      assets,
		logger:      logger,
	}
}

func (uc *UpdateServiceUseCase) Execute(ctx context.Context, cmd UpdateServiceCommand) (*dto.ServiceDTO, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return nil, errors.NewValidationError("service title is required")
	}
	if strings.TrimSpace(cmd.Description) == "" {
		return nil, errors.NewValidationError("service description is required")
	}

	service, err := uc.serviceRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to load service", "error", err, "service_id", cmd.ID)
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if service == nil {
		return nil, errors.NewNotFoundError("service not found")
	}

	icon, err := appearance.NewIconName(cmd.Icon)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	color, err := appearance.NewGradientToken(cmd.Color, service.Color())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := service.Update(cmd.Title, cmd.Description, icon, color, cmd.Features); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	service.SetButton(cmd.ButtonText, cmd.ButtonLink)
	service.SetFlags(cmd.IsActive, cmd.IsFeatured, cmd.Priority)

	var oldImage *string
	if cmd.Image != nil {
		if service.HasImage() {
			prev := *service.Image()
			oldImage = &prev
		}
		url, err := uc.assets.Store(ctx, cmd.Image.Content, asset.FolderServices, cmd.Image.Filename)
		if err != nil {
			if errors.IsAppError(err) {
				return nil, err
			}
			uc.logger.Errorw("failed to store service image", "error", err)
			return nil, errors.NewStorageError("failed to store service image")
		}
		service.SetImage(url)
	}

	if err := uc.serviceRepo.Update(ctx, service); err != nil {
		if cmd.Image != nil && service.HasImage() {
			if delErr := uc.assets.Delete(ctx, *service.Image()); delErr != nil {
				uc.logger.Warnw("failed to clean up orphaned service image",
					"error", delErr, "url", *service.Image())
			}
		}
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update service", "error", err, "service_id", cmd.ID)
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	if oldImage != nil {
		if err := uc.assets.Delete(ctx, *oldImage); err != nil {
			uc.logger.Warnw("failed to delete replaced service image",
				"error", err, "url", *oldImage)
		}
	}

	uc.logger.Infow("service updated", "service_id", service.ID())
	return dto.ToServiceDTO(service), nil
}
