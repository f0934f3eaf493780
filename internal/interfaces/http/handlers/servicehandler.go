package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lamaran-inc/lamaran/internal/application/showcase/usecases"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
	"github.com/lamaran-inc/lamaran/internal/shared/utils"
)

type ServiceRequest struct {
	Title       string   `form:"title" validate:"required,max=150"`
	Description string   `form:"description" validate:"required"`
	Icon        string   `form:"icon"`
	Color       string   `form:"color"`
	Features    []string `form:"features"`
	ButtonText  string   `form:"buttonText"`
	ButtonLink  string   `form:"buttonLink"`
	IsActive    bool     `form:"isActive"`
	IsFeatured  bool     `form:"isFeatured"`
	Priority    int      `form:"priority"`
}

type ServiceSettingsRequest struct {
	MaxDisplay          int  `json:"maxDisplay" validate:"required,gte=1"`
	EnableFlipAnimation bool `json:"enableFlipAnimation"`
	AutoRotate          bool `json:"autoRotate"`
	AutoRotateInterval  int  `json:"autoRotateInterval" validate:"gte=1000"`
}

type ServiceHandler struct {
	createUC         createServiceUseCase
	updateUC         updateServiceUseCase
	deleteUC         deleteServiceUseCase
	listUC           listServicesUseCase
	publicUC         getPublicServicesUseCase
	getSettingsUC    getServiceSettingsUseCase
	updateSettingsUC updateServiceSettingsUseCase
	logger           logger.Interface
}

func NewServiceHandler(
	createUC createServiceUseCase,
	updateUC updateServiceUseCase,
	deleteUC deleteServiceUseCase,
	listUC listServicesUseCase,
	publicUC getPublicServicesUseCase,
	getSettingsUC getServiceSettingsUseCase,
	updateSettingsUC updateServiceSettingsUseCase,
	logger logger.Interface,
) *ServiceHandler {
	return &ServiceHandler{
		createUC:         createUC,
		updateUC:         updateUC,
		deleteUC:         deleteUC,
		listUC:           listUC,
		publicUC:         publicUC,
		getSettingsUC:    getSettingsUC,
		updateSettingsUC: updateSettingsUC,
		logger:           logger,
	}
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid form for create service", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request form")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, filename, err := openImageFile(c, "image")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateServiceCommand{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		Features:    req.Features,
		ButtonText:  req.ButtonText,
		ButtonLink:  optionalString(req.ButtonLink),
		IsFeatured:  req.IsFeatured,
		Priority:    req.Priority,
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

	utils.CreatedResponse(c, result, "Service created successfully")
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "service")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ServiceRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid form for update service", "service_id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request form")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, filename, err := openImageFile(c, "image")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateServiceCommand{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		Features:    req.Features,
		ButtonText:  req.ButtonText,
		ButtonLink:  optionalString(req.ButtonLink),
		IsActive:    req.IsActive,
		IsFeatured:  req.IsFeatured,
		Priority:    req.Priority,
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

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "service")
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

func (h *ServiceHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *ServiceHandler) GetPublic(c *gin.Context) {
	result, err := h.publicUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *ServiceHandler) GetSettings(c *gin.Context) {
	result, err := h.getSettingsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *ServiceHandler) UpdateSettings(c *gin.Context) {
	var req ServiceSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update service settings", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateSettingsUC.Execute(c.Request.Context(), usecases.UpdateServiceSettingsCommand{
		MaxDisplay:          req.MaxDisplay,
		EnableFlipAnimation: req.EnableFlipAnimation,
		AutoRotate:          req.AutoRotate,
		AutoRotateInterval:  req.AutoRotateInterval,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// optionalString maps a blank form value to nil.
func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
