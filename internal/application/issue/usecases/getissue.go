package usecases

import (
	"context"

	"issuehub/internal/application/authz"
	"issuehub/internal/domain/issue"
	"issuehub/internal/shared/logger"
)

type GetIssueQuery struct {
	IssueID uint
	ActorID uint
	// ProjectID scopes the lookup to a project when the issue is addressed
	// through a project route. Nil for the flat /issues/:id route.
	ProjectID *uint
}

type GetIssueUseCase struct {
	issues issue.Repository
	engine *authz.Engine
	logger logger.Interface
}

func NewGetIssueUseCase(issues issue.Repository, engine *authz.Engine, logger logger.Interface) *GetIssueUseCase {
	return &GetIssueUseCase{issues: issues, engine: engine, logger: logger}
}

func (uc *GetIssueUseCase) Execute(ctx context.Context, q GetIssueQuery) (*IssueDTO, error) {
	found, err := findIssue(ctx, uc.issues, q.IssueID, q.ProjectID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.engine.AuthorizeProjectAccess(ctx, found.ProjectID(), q.ActorID); err != nil {
		return nil, err
	}

	return toIssueDTO(found), nil
}
