package usecases

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lamaran-inc/lamaran/internal/application/showcase/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/appearance"
	"github.com/lamaran-inc/lamaran/internal/domain/asset"
	"github.com/lamaran-inc/lamaran/internal/domain/showcase"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

// ImageUpload carries a decoded multipart file into a usecase.
type ImageUpload struct {
	Content  io.Reader
	Filename string
}

type CreateServiceCommand struct {
	Title       string
	Description string
	Icon        string
	Color       string
	Features    []string
	ButtonText  string
	ButtonLink  *string
	IsFeatured  bool
	Priority    int
	Image       *ImageUpload
}

type CreateServiceUseCase struct {
	serviceRepo showcase.ServiceRepository
	assets      asset.Store
	logger      logger.Interface
}

func NewCreateServiceUseCase(serviceRepo showcase.ServiceRepository, assets asset.Store, logger logger.Interface) *CreateServiceUseCase {
	return &CreateServiceUseCase{
		serviceRepo: serviceRepo,
		assets:      assets,
		logger:      logger,
	}
}

func (uc *CreateServiceUseCase) Execute(ctx context.Context, cmd CreateServiceCommand) (*dto.ServiceDTO, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return nil, errors.NewValidationError("service title is required")
	}
	if strings.TrimSpace(cmd.Description) == "" {
		return nil, errors.NewValidationError("service description is required")
	}

	icon, err := appearance.NewIconName(cmd.Icon)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	color, err := appearance.NewGradientToken(cmd.Color, appearance.DefaultServiceGradient)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	service, err := showcase.NewService(cmd.Title, cmd.Description, icon, color, cmd.Features)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	service.SetButton(cmd.ButtonText, cmd.ButtonLink)
	service.SetFlags(true, cmd.IsFeatured, cmd.Priority)

	if cmd.Image != nil {
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

	if err := uc.serviceRepo.Create(ctx, service); err != nil {
		if service.HasImage() {
			if delErr := uc.assets.Delete(ctx, *service.Image()); delErr != nil {
				uc.logger.Warnw("failed to clean up orphaned service image",
					"error", delErr, "url", *service.Image())
			}
		}
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to persist service", "error", err)
		return nil, fmt.Errorf("failed to persist service: %w", err)
	}

	uc.logger.Infow("service created", "service_id", service.ID(), "title", service.Title())
	return dto.ToServiceDTO(service), nil
}
