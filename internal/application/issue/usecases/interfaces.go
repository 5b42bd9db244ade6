package usecases

import "context"

type CreateIssueExecutor interface {
	Execute(ctx context.Context, cmd CreateIssueCommand) (*IssueDTO, error)
}

type GetIssueExecutor interface {
	Execute(ctx context.Context, query GetIssueQuery) (*IssueDTO, error)
}

type ListIssuesExecutor interface {
	Execute(ctx context.Context, query ListIssuesQuery) (*ListIssuesResult, error)
}

type UpdateIssueExecutor interface {
	Execute(ctx context.Context, cmd UpdateIssueCommand) (*IssueDTO, error)
}

type DeleteIssueExecutor interface {
	Execute(ctx context.Context, cmd DeleteIssueCommand) error
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*IssueDTO, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*CommentDTO, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) ([]*CommentDTO, error)
}
