package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lamaran-inc/lamaran/internal/application/pricing/usecases"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
	"github.com/lamaran-inc/lamaran/internal/shared/utils"
)

type PlanRequest struct {
	Name               string     `json:"name" validate:"required,max=150"`
	Price              int        `json:"price" validate:"gte=0"`
	DiscountPrice      *int       `json:"discountPrice" validate:"omitempty,gte=0"`
	DiscountEndDate    *time.Time `json:"discountEndDate"`
	Period             string     `json:"period"`
	Description        string     `json:"description" validate:"required"`
	Features           []string   `json:"features" validate:"required,min=1"`
	IsPopular          bool       `json:"isPopular"`
	IsActive           bool       `json:"isActive"`
	Priority           int        `json:"priority"`
	Icon               string     `json:"icon"`
	ButtonText         string     `json:"buttonText"`
	ButtonStyle        string     `json:"buttonStyle"`
	BackgroundGradient string     `json:"backgroundGradient"`
	BorderHighlight    bool       `json:"borderHighlight"`
	WhatsappMessage    *string    `json:"whatsappMessage"`
}

type PricingSettingsRequest struct {
	MaxDisplay     int    `json:"maxDisplay" validate:"required,gte=1"`
	WhatsappNumber string `json:"whatsappNumber" validate:"required"`
}

type PlanHandler struct {
	createUC         createPlanUseCase
	updateUC         updatePlanUseCase
	deleteUC         deletePlanUseCase
	listUC           listPlansUseCase
	publicUC         getPublicPricingUseCase
	getSettingsUC    getPricingSettingsUseCase
	updateSettingsUC updatePricingSettingsUseCase
	logger           logger.Interface
}

func NewPlanHandler(
	createUC createPlanUseCase,
	updateUC updatePlanUseCase,
	deleteUC deletePlanUseCase,
	listUC listPlansUseCase,
	publicUC getPublicPricingUseCase,
	getSettingsUC getPricingSettingsUseCase,
	updateSettingsUC updatePricingSettingsUseCase,
	logger logger.Interface,
) *PlanHandler {
	return &PlanHandler{
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

func (h *PlanHandler) Create(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreatePlanCommand{
		Name:               req.Name,
		Price:              req.Price,
		DiscountPrice:      req.DiscountPrice,
		DiscountEndDate:    req.DiscountEndDate,
		Period:             req.Period,
		Description:        req.Description,
		Features:           req.Features,
		IsPopular:          req.IsPopular,
		Priority:           req.Priority,
		Icon:               req.Icon,
		ButtonText:         req.ButtonText,
		ButtonStyle:        req.ButtonStyle,
		BackgroundGradient: req.BackgroundGradient,
		BorderHighlight:    req.BorderHighlight,
		WhatsappMessage:    req.WhatsappMessage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Pricing plan created successfully")
}

func (h *PlanHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan", "plan_id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdatePlanCommand{
		ID:                 id,
		Name:               req.Name,
		Price:              req.Price,
		DiscountPrice:      req.DiscountPrice,
		DiscountEndDate:    req.DiscountEndDate,
		Period:             req.Period,
		Description:        req.Description,
		Features:           req.Features,
		IsPopular:          req.IsPopular,
		IsActive:           req.IsActive,
		Priority:           req.Priority,
		Icon:               req.Icon,
		ButtonText:         req.ButtonText,
		ButtonStyle:        req.ButtonStyle,
		BackgroundGradient: req.BackgroundGradient,
		BorderHighlight:    req.BorderHighlight,
		WhatsappMessage:    req.WhatsappMessage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *PlanHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "plan")
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

func (h *PlanHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *PlanHandler) GetPublic(c *gin.Context) {
	result, err := h.publicUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *PlanHandler) GetSettings(c *gin.Context) {
	result, err := h.getSettingsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *PlanHandler) UpdateSettings(c *gin.Context) {
	var req PricingSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update pricing settings", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateSettingsUC.Execute(c.Request.Context(), usecases.UpdatePricingSettingsCommand{
		MaxDisplay:     req.MaxDisplay,
		WhatsappNumber: req.WhatsappNumber,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
