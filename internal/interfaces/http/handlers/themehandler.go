package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lamaran-inc/lamaran/internal/application/catalog/usecases"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
	"github.com/lamaran-inc/lamaran/internal/shared/utils"
)

// ThemeRequest binds the multipart form of the theme editor. The image
// travels as a separate file part; categoryIds and tagIds are single string
// fields holding a JSON array, with comma-separated values accepted as a
// fallback.
type ThemeRequest struct {
	Name        string `form:"name" validate:"required,max=150"`
	Price       int    `form:"price" validate:"gte=0"`
	DemoURL     string `form:"demoUrl" validate:"omitempty,url"`
	CategoryIDs string `form:"categoryIds"`
	TagIDs      string `form:"tagIds"`
}

// parseIDList reads an ID list field sent as either a JSON array ("[1,2]")
// or a comma-separated string ("1,2"). Blank means an empty list.
func parseIDList(value, field string) ([]uint, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	var ids []uint
	if err := json.Unmarshal([]byte(value), &ids); err == nil {
		return ids, nil
	}

	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		parsed, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid " + field + " list")
		}
		ids = append(ids, uint(parsed))
	}
	return ids, nil
}

type ThemeHandler struct {
	createUC createThemeUseCase
	updateUC updateThemeUseCase
	deleteUC deleteThemeUseCase
	listUC   listThemesUseCase
	getUC    getThemeUseCase
	logger   logger.Interface
}

func NewThemeHandler(
	createUC createThemeUseCase,
	updateUC updateThemeUseCase,
	deleteUC deleteThemeUseCase,
	listUC listThemesUseCase,
	getUC getThemeUseCase,
	logger logger.Interface,
) *ThemeHandler {
	return &ThemeHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		getUC:    getUC,
		logger:   logger,
	}
}

func (h *ThemeHandler) Create(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid form for create theme", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request form")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	categoryIDs, err := parseIDList(req.CategoryIDs, "categoryIds")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	tagIDs, err := parseIDList(req.TagIDs, "tagIds")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, filename, err := openImageFile(c, "image")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateThemeCommand{
		Name:        req.Name,
		Price:       req.Price,
		DemoURL:     req.DemoURL,
		CategoryIDs: categoryIDs,
		TagIDs:      tagIDs,
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

	utils.CreatedResponse(c, result, "Theme created successfully")
}

func (h *ThemeHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "theme")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ThemeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid form for update theme", "theme_id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request form")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	categoryIDs, err := parseIDList(req.CategoryIDs, "categoryIds")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	tagIDs, err := parseIDList(req.TagIDs, "tagIds")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, filename, err := openImageFile(c, "image")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateThemeCommand{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		DemoURL:     req.DemoURL,
		CategoryIDs: categoryIDs,
		TagIDs:      tagIDs,
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

func (h *ThemeHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "theme")
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

func (h *ThemeHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *ThemeHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "theme")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
