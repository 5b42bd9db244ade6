package usecases

import (
	"context"
	"fmt"

	"issuehub/internal/application/authz"
	"issuehub/internal/domain/issue"
	"issuehub/internal/shared/errors"
	"issuehub/internal/shared/logger"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

type ListIssuesQuery struct {
	ProjectID  uint
	ActorID    uint
	Query      string
	Status     string
	Priority   string
	AssigneeID *uint
	Sort       string
	Limit      int
	Offset     int
}

type ListIssuesResult struct {
	Items  []*IssueDTO
	Total  int64
	Limit  int
	Offset int
}

type ListIssuesUseCase struct {
	issues issue.Repository
	engine *authz.Engine
	logger logger.Interface
}

func NewListIssuesUseCase(issues issue.Repository, engine *authz.Engine, logger logger.Interface) *ListIssuesUseCase {
	return &ListIssuesUseCase{issues: issues, engine: engine, logger: logger}
}

func (uc *ListIssuesUseCase) Execute(ctx context.Context, q ListIssuesQuery) (*ListIssuesResult, error) {
	if _, err := uc.engine.AuthorizeProjectAccess(ctx, q.ProjectID, q.ActorID); err != nil {
		return nil, err
	}

	filter, err := buildFilter(q)
	if err != nil {
		return nil, err
	}

	items, total, err := uc.issues.List(ctx, q.ProjectID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list issues", "project_id", q.ProjectID, "error", err)
		return nil, errors.NewInternalError("failed to list issues", err.Error())
	}

	dtos := make([]*IssueDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toIssueDTO(item))
	}

	return &ListIssuesResult{
		Items:  dtos,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

// buildFilter validates filter values and clamps the pagination window to
// limit 1..100 (default 50) and offset >= 0.
func buildFilter(q ListIssuesQuery) (issue.Filter, error) {
	filter := issue.Filter{
		Query:      q.Query,
		AssigneeID: q.AssigneeID,
		Limit:      q.Limit,
		Offset:     q.Offset,
	}

	if q.Status != "" {
		status := issue.Status(q.Status)
		if !status.IsValid() {
			return issue.Filter{}, errors.NewValidationError(fmt.Sprintf("invalid status %q", q.Status))
		}
		filter.Status = &status
	}
	if q.Priority != "" {
		priority := issue.Priority(q.Priority)
		if !priority.IsValid() {
			return issue.Filter{}, errors.NewValidationError(fmt.Sprintf("invalid priority %q", q.Priority))
		}
		filter.Priority = &priority
	}
	switch q.Sort {
	case "", issue.SortCreatedAt, issue.SortPriority, issue.SortStatus:
		filter.Sort = q.Sort
	default:
		return issue.Filter{}, errors.NewValidationError(fmt.Sprintf("invalid sort %q", q.Sort))
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return filter, nil
}
