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

type UpdateIssueCommand struct {
	IssueID   uint
	ActorID   uint
	ProjectID *uint

	Title       *string
	Description *string
	Status      *string
	Priority    *string
	AssigneeID  *uint
}

type UpdateIssueUseCase struct {
	issues   issue.Repository
	engine   *authz.Engine
	recorder *auditapp.Recorder
	logger   logger.Interface
}

func NewUpdateIssueUseCase(
	issues issue.Repository,
	engine *authz.Engine,
	recorder *auditapp.Recorder,
	logger logger.Interface,
) *UpdateIssueUseCase {
	return &UpdateIssueUseCase{
		issues:   issues,
		engine:   engine,
		recorder: recorder,
		logger:   logger,
	}
}

func (uc *UpdateIssueUseCase) Execute(ctx context.Context, cmd UpdateIssueCommand) (*IssueDTO, error) {
	found, err := findIssue(ctx, uc.issues, cmd.IssueID, cmd.ProjectID)
	if err != nil {
		return nil, err
	}

	role, err := uc.engine.AuthorizeProjectAccess(ctx, found.ProjectID(), cmd.ActorID)
	if err != nil {
		return nil, err
	}
	if !authz.CanMutateIssue(role, found, cmd.ActorID) {
		return nil, errors.NewForbiddenError("not allowed to modify this issue")
	}

	if err := guard.ValidateText("title", cmd.Title); err != nil {
		return nil, err
	}
	if err := guard.ValidateText("description", cmd.Description); err != nil {
		return nil, err
	}

	patch := issue.Patch{
		Title:       cmd.Title,
		Description: cmd.Description,
		AssigneeID:  cmd.AssigneeID,
	}
	if cmd.Status != nil {
		status := issue.Status(*cmd.Status)
		patch.Status = &status
	}
	if cmd.Priority != nil {
		priority := issue.Priority(*cmd.Priority)
		patch.Priority = &priority
	}

	// Fields above the caller's role are dropped, not rejected, so the
	// permitted part of a mixed patch still applies.
	patch = authz.FilterIssuePatch(role, patch)

	if !patch.IsEmpty() {
		if err := found.Apply(patch); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.issues.Update(ctx, found); err != nil {
			uc.logger.Errorw("failed to update issue", "issue_id", cmd.IssueID, "error", err)
			return nil, errors.NewInternalError("failed to update issue", err.Error())
		}
	}

	uc.logger.Infow("issue updated", "issue_id", cmd.IssueID, "actor_id", cmd.ActorID)

	issueID := found.ID()
	uc.recorder.Record(ctx, &cmd.ActorID, "issue_updated", "issue", &issueID, updateMetadata(patch))

	return toIssueDTO(found), nil
}

// updateMetadata lists the field names that survived filtering, for the audit
// trail.
func updateMetadata(patch issue.Patch) map[string]any {
	fields := []string{}
	if patch.Title != nil {
		fields = append(fields, authz.FieldTitle)
	}
	if patch.Description != nil {
		fields = append(fields, authz.FieldDescription)
	}
	if patch.Status != nil {
		fields = append(fields, authz.FieldStatus)
	}
	if patch.Priority != nil {
		fields = append(fields, authz.FieldPriority)
	}
	if patch.AssigneeID != nil {
		fields = append(fields, authz.FieldAssigneeID)
	}
	return map[string]any{"fields": fields}
}
