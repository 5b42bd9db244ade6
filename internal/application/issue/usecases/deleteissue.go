package usecases

import (
	"context"

	auditapp "issuehub/internal/application/audit"
	"issuehub/internal/application/authz"
	"issuehub/internal/domain/issue"
	"issuehub/internal/shared/errors"
	"issuehub/internal/shared/logger"
)

type DeleteIssueCommand struct {
	IssueID   uint
	ActorID   uint
	ProjectID *uint
}

type DeleteIssueUseCase struct {
	issues   issue.Repository
	engine   *authz.Engine
	recorder *auditapp.Recorder
	logger   logger.Interface
}

func NewDeleteIssueUseCase(
	issues issue.Repository,
	engine *authz.Engine,
	recorder *auditapp.Recorder,
	logger logger.Interface,
) *DeleteIssueUseCase {
	return &DeleteIssueUseCase{
		issues:   issues,
		engine:   engine,
		recorder: recorder,
		logger:   logger,
	}
}

func (uc *DeleteIssueUseCase) Execute(ctx context.Context, cmd DeleteIssueCommand) error {
	found, err := findIssue(ctx, uc.issues, cmd.IssueID, cmd.ProjectID)
	if err != nil {
		return err
	}

	role, err := uc.engine.AuthorizeProjectAccess(ctx, found.ProjectID(), cmd.ActorID)
	if err != nil {
		return err
	}
	if !authz.CanMutateIssue(role, found, cmd.ActorID) {
		return errors.NewForbiddenError("not allowed to delete this issue")
	}

	if err := uc.issues.Delete(ctx, cmd.IssueID); err != nil {
		uc.logger.Errorw("failed to delete issue", "issue_id", cmd.IssueID, "error", err)
		return errors.NewInternalError("failed to delete issue", err.Error())
	}

	uc.logger.Infow("issue deleted", "issue_id", cmd.IssueID, "actor_id", cmd.ActorID)

	issueID := found.ID()
	uc.recorder.Record(ctx, &cmd.ActorID, "issue_deleted", "issue", &issueID, map[string]any{
		"project_id": found.ProjectID(),
		"title":      found.Title(),
	})

	return nil
}
