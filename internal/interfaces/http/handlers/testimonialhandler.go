package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lamaran-inc/lamaran/internal/application/testimonial/usecases"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
	"github.com/lamaran-inc/lamaran/internal/shared/utils"
)

// TestimonialRequest binds the multipart form of the admin testimonial editor.
// themeId arrives as a string so an empty field reads as "no theme".
type TestimonialRequest struct {
	Name        string `form:"name" validate:"required,max=150"`
	Role        string `form:"role"`
	Email       string `form:"email" validate:"omitempty,email"`
	Content     string `form:"content" validate:"required"`
	Rating      int    `form:"rating" validate:"gte=0,lte=5"`
	Event       string `form:"event" validate:"required,max=150"`
	WeddingDate string `form:"weddingDate"`
	ThemeID     string `form:"themeId"`
	IsActive    bool   `form:"isActive"`
	IsApproved  bool   `form:"isApproved"`
	IsFeatured  bool   `form:"isFeatured"`
	Priority    int    `form:"priority"`
}

// SubmitTestimonialRequest is what a site visitor may send.
type SubmitTestimonialRequest struct {
	Name        string `json:"name" validate:"required,max=150"`
	Role        string `json:"role"`
	Email       string `json:"email" validate:"omitempty,email"`
	Content     string `json:"content" validate:"required"`
	Rating      int    `json:"rating" validate:"gte=0,lte=5"`
	Event       string `json:"event" validate:"required,max=150"`
	WeddingDate string `json:"weddingDate"`
	ThemeID     *uint  `json:"themeId"`
}

type ApproveTestimonialRequest struct {
	Approved bool `json:"approved"`
}

type TestimonialSettingsRequest struct {
	MaxDisplay      int  `json:"maxDisplay" validate:"required,gte=1"`
	AutoApprove     bool `json:"autoApprove"`
	RequireApproval bool `json:"requireApproval"`
}

type TestimonialHandler struct {
	createUC         createTestimonialUseCase
	submitUC         submitTestimonialUseCase
	updateUC         updateTestimonialUseCase
	approveUC        approveTestimonialUseCase
	deleteUC         deleteTestimonialUseCase
	listUC           listTestimonialsUseCase
	publicUC         getPublicTestimonialsUseCase
	getSettingsUC    getTestimonialSettingsUseCase
	updateSettingsUC updateTestimonialSettingsUseCase
	logger           logger.Interface
}

func NewTestimonialHandler(
	createUC createTestimonialUseCase,
	submitUC submitTestimonialUseCase,
	updateUC updateTestimonialUseCase,
	approveUC approveTestimonialUseCase,
	deleteUC deleteTestimonialUseCase,
	listUC listTestimonialsUseCase,
	publicUC getPublicTestimonialsUseCase,
	getSettingsUC getTestimonialSettingsUseCase,
	updateSettingsUC updateTestimonialSettingsUseCase,
	logger logger.Interface,
) *TestimonialHandler {
	return &TestimonialHandler{
		createUC:         createUC,
		submitUC:         submitUC,
		updateUC:         updateUC,
		approveUC:        approveUC,
		deleteUC:         deleteUC,
		listUC:           listUC,
		publicUC:         publicUC,
		getSettingsUC:    getSettingsUC,
		updateSettingsUC: updateSettingsUC,
		logger:           logger,
	}
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	var req TestimonialRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid form for create testimonial", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request form")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	weddingOn, err := parseOptionalDate(req.WeddingDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, filename, err := openImageFile(c, "image")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	themeID, err := parseOptionalID(req.ThemeID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateTestimonialCommand{
		Name:       req.Name,
		Role:       req.Role,
		Email:      optionalString(req.Email),
		Content:    req.Content,
		Rating:     req.Rating,
		Event:      req.Event,
		WeddingOn:  weddingOn,
		ThemeID:    themeID,
		IsActive:   req.IsActive,
		IsApproved: req.IsApproved,
		IsFeatured: req.IsFeatured,
		Priority:   req.Priority,
	}
	if file != nil {
		defer file.Close()
		cmd.Image = &usecases.ImageUpload{Content: file, Filename: filename}
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Testimonial created successfully")
}

func (h *TestimonialHandler) Submit(c *gin.Context) {
	var req SubmitTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit testimonial", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	weddingOn, err := parseOptionalDate(req.WeddingDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), usecases.SubmitTestimonialCommand{
		Name:      req.Name,
		Role:      req.Role,
		Email:     optionalString(req.Email),
		Content:   req.Content,
		Rating:    req.Rating,
		Event:     req.Event,
		WeddingOn: weddingOn,
		ThemeID:   req.ThemeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Thank you for your testimonial")
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "testimonial")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TestimonialRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid form for update testimonial", "testimonial_id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request form")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	weddingOn, err := parseOptionalDate(req.WeddingDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, filename, err := openImageFile(c, "image")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	themeID, err := parseOptionalID(req.ThemeID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateTestimonialCommand{
		ID:         id,
		Name:       req.Name,
		Role:       req.Role,
		Email:      optionalString(req.Email),
		Content:    req.Content,
		Rating:     req.Rating,
		Event:      req.Event,
		WeddingOn:  weddingOn,
		ThemeID:    themeID,
		IsActive:   req.IsActive,
		IsApproved: req.IsApproved,
		IsFeatured: req.IsFeatured,
		Priority:   req.Priority,
	}
	if file != nil {
		defer file.Close()
		cmd.Image = &usecases.ImageUpload{Content: file, Filename: filename}
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *TestimonialHandler) Approve(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "testimonial")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ApproveTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for approve testimonial", "testimonial_id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.approveUC.Execute(c.Request.Context(), usecases.ApproveTestimonialCommand{
		ID:       id,
		Approved: req.Approved,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "testimonial")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *TestimonialHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *TestimonialHandler) GetPublic(c *gin.Context) {
	result, err := h.publicUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *TestimonialHandler) GetSettings(c *gin.Context) {
	result, err := h.getSettingsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *TestimonialHandler) UpdateSettings(c *gin.Context) {
	var req TestimonialSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update testimonial settings", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateSettingsUC.Execute(c.Request.Context(), usecases.UpdateTestimonialSettingsCommand{
		MaxDisplay:      req.MaxDisplay,
		AutoApprove:     req.AutoApprove,
		RequireApproval: req.RequireApproval,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// parseOptionalID turns a form field into an identifier, treating blank as
// absent.
func parseOptionalID(value string) (*uint, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil || parsed == 0 {
		return nil, errors.NewValidationError("invalid theme id")
	}
	id := uint(parsed)
	return &id, nil
}

// parseOptionalDate accepts a bare date or an RFC 3339 timestamp.
func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return &parsed, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return &parsed, nil
	}
	return nil, errors.NewValidationError("invalid date format, expected YYYY-MM-DD")
}
