package usecases

import (
	"context"
	"fmt"

	auditapp "issuehub/internal/application/audit"
	"issuehub/internal/application/authz"
	"issuehub/internal/domain/issue"
	"issuehub/internal/shared/errors"
	"issuehub/internal/shared/logger"
)

type ChangeStatusCommand struct {
	IssueID   uint
	ActorID   uint
	ProjectID *uint
	Status    string
}

type ChangeStatusUseCase struct {
	issues   issue.Repository
	engine   *authz.Engine
	recorder *auditapp.Recorder
	logger   logger.Interface
}

func NewChangeStatusUseCase(
	issues issue.Repository,
	engine *authz.Engine,
	recorder *auditapp.Recorder,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		issues:   issues,
		engine:   engine,
		recorder: recorder,
		logger:   logger,
	}
}

// Execute transitions an issue to a new status. Unlike the partial update
// path, a direct status change is maintainer-only and a non-maintainer caller
// is rejected rather than silently ignored.
func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*IssueDTO, error) {
	status := issue.Status(cmd.Status)
	if !status.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid status %q", cmd.Status))
	}

	found, err := findIssue(ctx, uc.issues, cmd.IssueID, cmd.ProjectID)
	if err != nil {
		return nil, err
	}

	if err := uc.engine.RequireMaintainer(ctx, found.ProjectID(), cmd.ActorID); err != nil {
		return nil, err
	}

	previous := found.Status()
	if err := found.ChangeStatus(status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.issues.Update(ctx, found); err != nil {
		uc.logger.Errorw("failed to change issue status", "issue_id", cmd.IssueID, "error", err)
		return nil, errors.NewInternalError("failed to change issue status", err.Error())
	}

	uc.logger.Infow("issue status changed",
		"issue_id", cmd.IssueID,
		"from", previous.String(),
		"to", status.String(),
		"actor_id", cmd.ActorID,
	)

	issueID := found.ID()
	uc.recorder.Record(ctx, &cmd.ActorID, "issue_status_changed", "issue", &issueID, map[string]any{
		"from": previous.String(),
		"to":   status.String(),
	})

	return toIssueDTO(found), nil
}
