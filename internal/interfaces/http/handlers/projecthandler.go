package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appproject "issuehub/internal/application/project"
	"issuehub/internal/domain/project"
	"issuehub/internal/shared/logger"
	"issuehub/internal/shared/utils"
)

type ProjectHandler struct {
	service *appproject.Service
	logger  logger.Interface
}

func NewProjectHandler(service *appproject.Service, log logger.Interface) *ProjectHandler {
	return &ProjectHandler{
		service: service,
		logger:  log,
	}
}

// Create handles POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create project", "error", err)
		utils.ErrorResponseWithError(c, bindingError(err))
		return
	}

	result, err := h.service.Create(c.Request.Context(), appproject.CreateProjectCommand{
		Name:        req.Name,
		Key:         req.Key,
		Description: req.Description,
		CreatorID:   userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// List handles GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	results, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", results)
}

// GetMembership handles GET /api/projects/:projectID/membership
func (h *ProjectHandler) GetMembership(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	projectID, err := utils.ParseUintParam(c, "projectID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.GetMembership(c.Request.Context(), projectID, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListMembers handles GET /api/projects/:projectID/members
func (h *ProjectHandler) ListMembers(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	projectID, err := utils.ParseUintParam(c, "projectID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	results, err := h.service.ListMembers(c.Request.Context(), projectID, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", results)
}

// AddMember handles POST /api/projects/:projectID/members
func (h *ProjectHandler) AddMember(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	projectID, err := utils.ParseUintParam(c, "projectID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add member", "error", err)
		utils.ErrorResponseWithError(c, bindingError(err))
		return
	}

	result, err := h.service.AddMember(c.Request.Context(), appproject.AddMemberCommand{
		ProjectID: projectID,
		ActorID:   userID,
		UserID:    req.UserID,
		Email:     req.Email,
		Role:      project.Role(req.Role),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// RemoveMember handles DELETE /api/projects/:projectID/members/:userID
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	actorID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	projectID, err := utils.ParseUintParam(c, "projectID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, err := utils.ParseUintParam(c, "userID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.service.RemoveMember(c.Request.Context(), appproject.RemoveMemberCommand{
		ProjectID: projectID,
		ActorID:   actorID,
		UserID:    userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
