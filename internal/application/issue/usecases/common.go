package usecases

import (
	"context"

	"issuehub/internal/domain/issue"
	"issuehub/internal/shared/errors"
)

// findIssue loads an issue by ID. When scopeProjectID is non-nil the issue
// must belong to that project; a mismatch is reported as not found so the
// route leaks nothing about other projects' issues.
func findIssue(ctx context.Context, issues issue.Repository, issueID uint, scopeProjectID *uint) (*issue.Issue, error) {
	found, err := issues.GetByID(ctx, issueID)
	if err != nil {
		return nil, errors.NewInternalError("failed to get issue", err.Error())
	}
	if found == nil {
		return nil, errors.NewNotFoundError("issue not found")
	}
	if scopeProjectID != nil && found.ProjectID() != *scopeProjectID {
		return nil, errors.NewNotFoundError("issue not found")
	}
	return found, nil
}
