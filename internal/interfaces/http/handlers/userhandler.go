package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"issuehub/internal/application/auth"
	"issuehub/internal/shared/logger"
	"issuehub/internal/shared/utils"
)

type UserHandler struct {
	service *auth.Service
	logger  logger.Interface
}

func NewUserHandler(service *auth.Service, log logger.Interface) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  log,
	}
}

// Search handles GET /api/users/search
func (h *UserHandler) Search(c *gin.Context) {
	results, err := h.service.SearchUsers(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", results)
}

// Get handles GET /api/users/:userID
func (h *UserHandler) Get(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "userID")
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
