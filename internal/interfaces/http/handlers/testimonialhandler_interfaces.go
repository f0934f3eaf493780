package handlers

import (
	"context"

	"github.com/lamaran-inc/lamaran/internal/application/testimonial/dto"
	"github.com/lamaran-inc/lamaran/internal/application/testimonial/usecases"
)

// Use case interfaces for TestimonialHandler - enable unit testing with mocks.

type createTestimonialUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateTestimonialCommand) (*dto.TestimonialDTO, error)
}

type submitTestimonialUseCase interface {
	Execute(ctx context.Context, cmd usecases.SubmitTestimonialCommand) (*dto.PublicTestimonialDTO, error)
}

type updateTestimonialUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateTestimonialCommand) (*dto.TestimonialDTO, error)
}

type approveTestimonialUseCase interface {
	Execute(ctx context.Context, cmd usecases.ApproveTestimonialCommand) (*dto.TestimonialDTO, error)
}

type deleteTestimonialUseCase interface {
	Execute(ctx context.Context, id uint) error
}

type listTestimonialsUseCase interface {
	Execute(ctx context.Context) ([]*dto.TestimonialDTO, error)
}

type getPublicTestimonialsUseCase interface {
	Execute(ctx context.Context) (*dto.PublicTestimonialsDTO, error)
}

type getTestimonialSettingsUseCase interface {
	Execute(ctx context.Context) (*dto.TestimonialSettingsDTO, error)
}

type updateTestimonialSettingsUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateTestimonialSettingsCommand) (*dto.TestimonialSettingsDTO, error)
}
