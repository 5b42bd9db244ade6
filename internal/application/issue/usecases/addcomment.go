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

type AddCommentCommand struct {
	IssueID   uint
	ActorID   uint
	ProjectID *uint
	Body      string
}

type AddCommentUseCase struct {
	issues   issue.Repository
	comments issue.CommentRepository
	engine   *authz.Engine
	recorder *auditapp.Recorder
	logger   logger.Interface
}

func NewAddCommentUseCase(
	issues issue.Repository,
	comments issue.CommentRepository,
	engine *authz.Engine,
	recorder *auditapp.Recorder,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		issues:   issues,
		comments: comments,
		engine:   engine,
		recorder: recorder,
		logger:   logger,
	}
}

// Execute appends a comment to an issue. Any project member may comment,
// including on closed issues.
func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*CommentDTO, error) {
	found, err := findIssue(ctx, uc.issues, cmd.IssueID, cmd.ProjectID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.engine.AuthorizeProjectAccess(ctx, found.ProjectID(), cmd.ActorID); err != nil {
		return nil, err
	}

	if err := guard.ValidateText("body", &cmd.Body); err != nil {
		return nil, err
	}

	comment, err := issue.NewComment(cmd.IssueID, cmd.ActorID, cmd.Body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.comments.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "issue_id", cmd.IssueID, "error", err)
		return nil, errors.NewInternalError("failed to add comment", err.Error())
	}

	uc.logger.Infow("comment added", "comment_id", comment.ID(), "issue_id", cmd.IssueID, "actor_id", cmd.ActorID)

	commentID := comment.ID()
	uc.recorder.Record(ctx, &cmd.ActorID, "comment_added", "comment", &commentID, map[string]any{
		"issue_id": cmd.IssueID,
	})

	return toCommentDTO(comment), nil
}
