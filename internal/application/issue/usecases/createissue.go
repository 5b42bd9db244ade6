package usecases

import (
	"context"

	auditapp "issuehub/internal/application/audit"
	"issuehub/internal/application/authz"
	"issuehub/internal/application/guard"
	"issuehub/internal/domain/issue"
	"issuehub/internal/shared/errors"
	"issuehub/internal/shared/logger"
)

type CreateIssueCommand struct {
	ProjectID   uint
	ActorID     uint
	Title       string
	Description *string
	Priority    string
	AssigneeID  *uint
}

type CreateIssueUseCase struct {
	issues   issue.Repository
	engine   *authz.Engine
	recorder *auditapp.Recorder
	logger   logger.Interface
}

func NewCreateIssueUseCase(
	issues issue.Repository,
	engine *authz.Engine,
	recorder *auditapp.Recorder,
	logger logger.Interface,
) *CreateIssueUseCase {
	return &CreateIssueUseCase{
		issues:   issues,
		engine:   engine,
		recorder: recorder,
		logger:   logger,
	}
}

func (uc *CreateIssueUseCase) Execute(ctx context.Context, cmd CreateIssueCommand) (*IssueDTO, error) {
	if _, err := uc.engine.AuthorizeProjectAccess(ctx, cmd.ProjectID, cmd.ActorID); err != nil {
		return nil, err
	}

	if err := guard.ValidateText("title", &cmd.Title); err != nil {
		return nil, err
	}
	if err := guard.ValidateText("description", cmd.Description); err != nil {
		return nil, err
	}

	newIssue, err := issue.NewIssue(
		cmd.ProjectID,
		cmd.Title,
		cmd.Description,
		issue.Priority(cmd.Priority),
		cmd.ActorID,
		cmd.AssigneeID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.issues.Save(ctx, newIssue); err != nil {
		uc.logger.Errorw("failed to save issue", "project_id", cmd.ProjectID, "error", err)
		return nil, errors.NewInternalError("failed to create issue", err.Error())
	}

	uc.logger.Infow("issue created", "issue_id", newIssue.ID(), "project_id", cmd.ProjectID, "actor_id", cmd.ActorID)

	issueID := newIssue.ID()
	uc.recorder.Record(ctx, &cmd.ActorID, "issue_created", "issue", &issueID, map[string]any{
		"project_id": cmd.ProjectID,
		"title":      newIssue.Title(),
	})

	return toIssueDTO(newIssue), nil
}
