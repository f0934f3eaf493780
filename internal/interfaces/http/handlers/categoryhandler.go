package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lamaran-inc/lamaran/internal/application/catalog/usecases"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
	"github.com/lamaran-inc/lamaran/internal/shared/utils"
)

type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CategoryHandler struct {
	createUC createCategoryUseCase
	updateUC updateCategoryUseCase
	deleteUC deleteCategoryUseCase
	listUC   listCategoriesUseCase
	logger   logger.Interface
}

func NewCategoryHandler(
	createUC createCategoryUseCase,
	updateUC updateCategoryUseCase,
	deleteUC deleteCategoryUseCase,
	listUC listCategoriesUseCase,
	logger logger.Interface,
) *CategoryHandler {
	return &CategoryHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		logger:   logger,
	}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create category", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateCategoryCommand{Name: req.Name})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update category", "category_id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateCategoryCommand{ID: id, Name: req.Name})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "category")
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

func (h *CategoryHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
