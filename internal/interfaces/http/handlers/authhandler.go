package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"issuehub/internal/application/auth"
	"issuehub/internal/shared/logger"
	"issuehub/internal/shared/utils"
)

type AuthHandler struct {
	service *auth.Service
	logger  logger.Interface
}

func NewAuthHandler(service *auth.Service, log logger.Interface) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  log,
	}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for signup", "error", err)
		utils.ErrorResponseWithError(c, bindingError(err))
		return
	}

	result, err := h.service.Signup(c.Request.Context(), auth.SignupCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, bindingError(err))
		return
	}

	result, err := h.service.Login(c.Request.Context(), auth.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.service.Logout(c.Request.Context(), userID)

	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
