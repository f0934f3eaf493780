package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lamaran-inc/lamaran/internal/application/user/usecases"
	"github.com/lamaran-inc/lamaran/internal/shared/config"
	"github.com/lamaran-inc/lamaran/internal/shared/constants"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
	"github.com/lamaran-inc/lamaran/internal/shared/utils"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

type AuthHandler struct {
	loginUC       loginUseCase
	registerUC    registerUseCase
	currentUserUC getCurrentUserUseCase
	cookieConfig  config.CookieConfig
	logger        logger.Interface
}

func NewAuthHandler(
	loginUC loginUseCase,
	registerUC registerUseCase,
	currentUserUC getCurrentUserUseCase,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:       loginUC,
		registerUC:    registerUC,
		currentUserUC: currentUserUC,
		cookieConfig:  cookieConfig,
		logger:        logger,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid login request body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetSessionCookie(c, h.cookieConfig, result.Token, int(result.ExpiresIn.Seconds()))
	utils.OKResponse(c, result.User)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid register request body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	account, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, account, "Account created successfully")
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	account, err := h.currentUserUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, account)
}

// currentUserID reads the authenticated user from the request context set by
// the auth middleware.
func currentUserID(c *gin.Context) (uint, error) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, errors.NewUnauthorizedError("user not authenticated")
	}
	userID, ok := value.(uint)
	if !ok || userID == 0 {
		return 0, errors.NewUnauthorizedError("user not authenticated")
	}
	return userID, nil
}
