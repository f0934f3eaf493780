package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lamaran-inc/lamaran/internal/application/catalog/usecases"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
	"github.com/lamaran-inc/lamaran/internal/shared/utils"
)

type TagRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type TagHandler struct {
	createUC createTagUseCase
	updateUC updateTagUseCase
	deleteUC deleteTagUseCase
	listUC   listTagsUseCase
	logger   logger.Interface
}

func NewTagHandler(
	createUC createTagUseCase,
	updateUC updateTagUseCase,
	deleteUC deleteTagUseCase,
	listUC listTagsUseCase,
	logger logger.Interface,
) *TagHandler {
	return &TagHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		logger:   logger,
	}
}

func (h *TagHandler) Create(c *gin.Context) {
	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create tag", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTagCommand{
		Name:  req.Name,
		Color: req.Color,
		Icon:  req.Icon,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Tag created successfully")
}

func (h *TagHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "tag")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update tag", "tag_id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTagCommand{
		ID:    id,
		Name:  req.Name,
		Color: req.Color,
		Icon:  req.Icon,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *TagHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "tag")
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

func (h *TagHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
