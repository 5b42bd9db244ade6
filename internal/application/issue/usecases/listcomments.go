package usecases

import (
	"context"

	"issuehub/internal/application/authz"
	"issuehub/internal/domain/issue"
	"issuehub/internal/shared/errors"
	"issuehub/internal/shared/logger"
)

type ListCommentsQuery struct {
	IssueID   uint
	ActorID   uint
	ProjectID *uint
}

type ListCommentsUseCase struct {
	issues   issue.Repository
	comments issue.CommentRepository
	engine   *authz.Engine
	logger   logger.Interface
}

func NewListCommentsUseCase(
	issues issue.Repository,
	comments issue.CommentRepository,
	engine *authz.Engine,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		issues:   issues,
		comments: comments,
		engine:   engine,
		logger:   logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, q ListCommentsQuery) ([]*CommentDTO, error) {
	found, err := findIssue(ctx, uc.issues, q.IssueID, q.ProjectID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.engine.AuthorizeProjectAccess(ctx, found.ProjectID(), q.ActorID); err != nil {
		return nil, err
	}

	comments, err := uc.comments.ListByIssue(ctx, q.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "issue_id", q.IssueID, "error", err)
		return nil, errors.NewInternalError("failed to list comments", err.Error())
	}

	dtos := make([]*CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toCommentDTO(c))
	}
	return dtos, nil
}
