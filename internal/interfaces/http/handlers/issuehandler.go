package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"issuehub/internal/application/issue/usecases"
	"issuehub/internal/shared/logger"
	"issuehub/internal/shared/utils"
)

type IssueHandler struct {
	createIssueUC  usecases.CreateIssueExecutor
	getIssueUC     usecases.GetIssueExecutor
	listIssuesUC   usecases.ListIssuesExecutor
	updateIssueUC  usecases.UpdateIssueExecutor
	deleteIssueUC  usecases.DeleteIssueExecutor
	changeStatusUC usecases.ChangeStatusExecutor
	addCommentUC   usecases.AddCommentExecutor
	listCommentsUC usecases.ListCommentsExecutor
	logger         logger.Interface
}

func NewIssueHandler(
	createIssueUC usecases.CreateIssueExecutor,
	getIssueUC usecases.GetIssueExecutor,
	listIssuesUC usecases.ListIssuesExecutor,
	updateIssueUC usecases.UpdateIssueExecutor,
	deleteIssueUC usecases.DeleteIssueExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	addCommentUC usecases.AddCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
	log logger.Interface,
) *IssueHandler {
	return &IssueHandler{
		createIssueUC:  createIssueUC,
		getIssueUC:     getIssueUC,
		listIssuesUC:   listIssuesUC,
		updateIssueUC:  updateIssueUC,
		deleteIssueUC:  deleteIssueUC,
		changeStatusUC: changeStatusUC,
		addCommentUC:   addCommentUC,
		listCommentsUC: listCommentsUC,
		logger:         log,
	}
}

// scopedProjectID returns the project id when the route is project-scoped,
// nil for the flat /issues routes.
func scopedProjectID(c *gin.Context) (*uint, error) {
	if c.Param("projectID") == "" {
		return nil, nil
	}
	projectID, err := utils.ParseUintParam(c, "projectID")
	if err != nil {
		return nil, err
	}
	return &projectID, nil
}

// Create handles POST /api/projects/:projectID/issues
func (h *IssueHandler) Create(c *gin.Context) {
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

	var req CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create issue", "error", err)
		utils.ErrorResponseWithError(c, bindingError(err))
		return
	}

	result, err := h.createIssueUC.Execute(c.Request.Context(), usecases.CreateIssueCommand{
		ProjectID:   projectID,
		ActorID:     userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// List handles GET /api/projects/:projectID/issues
func (h *IssueHandler) List(c *gin.Context) {
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

	result, err := h.listIssuesUC.Execute(c.Request.Context(), parseListIssuesQuery(c, projectID, userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Limit, result.Offset)
}

// Get handles GET /api/projects/:projectID/issues/:issueID and GET /api/issues/:issueID
func (h *IssueHandler) Get(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	issueID, err := utils.ParseUintParam(c, "issueID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	projectID, err := scopedProjectID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getIssueUC.Execute(c.Request.Context(), usecases.GetIssueQuery{
		IssueID:   issueID,
		ActorID:   userID,
		ProjectID: projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update handles PATCH /api/projects/:projectID/issues/:issueID and PATCH /api/issues/:issueID
func (h *IssueHandler) Update(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	issueID, err := utils.ParseUintParam(c, "issueID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	projectID, err := scopedProjectID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update issue", "error", err)
		utils.ErrorResponseWithError(c, bindingError(err))
		return
	}

	result, err := h.updateIssueUC.Execute(c.Request.Context(), usecases.UpdateIssueCommand{
		IssueID:     issueID,
		ActorID:     userID,
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Delete handles DELETE /api/projects/:projectID/issues/:issueID and DELETE /api/issues/:issueID
func (h *IssueHandler) Delete(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	issueID, err := utils.ParseUintParam(c, "issueID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	projectID, err := scopedProjectID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteIssueUC.Execute(c.Request.Context(), usecases.DeleteIssueCommand{
		IssueID:   issueID,
		ActorID:   userID,
		ProjectID: projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ChangeStatus handles POST /api/projects/:projectID/issues/:issueID/status
func (h *IssueHandler) ChangeStatus(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	issueID, err := utils.ParseUintParam(c, "issueID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	projectID, err := scopedProjectID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change status", "error", err)
		utils.ErrorResponseWithError(c, bindingError(err))
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		IssueID:   issueID,
		ActorID:   userID,
		ProjectID: projectID,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddComment handles POST /api/projects/:projectID/issues/:issueID/comments
func (h *IssueHandler) AddComment(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	issueID, err := utils.ParseUintParam(c, "issueID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	projectID, err := scopedProjectID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "error", err)
		utils.ErrorResponseWithError(c, bindingError(err))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		IssueID:   issueID,
		ActorID:   userID,
		ProjectID: projectID,
		Body:      req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListComments handles GET /api/projects/:projectID/issues/:issueID/comments
func (h *IssueHandler) ListComments(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	issueID, err := utils.ParseUintParam(c, "issueID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	projectID, err := scopedProjectID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	results, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		IssueID:   issueID,
		ActorID:   userID,
		ProjectID: projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", results)
}
