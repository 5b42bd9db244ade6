// Package authz is the authorization engine sitting between the HTTP
// handlers and persistence. It resolves project-scoped roles, decides issue
// write permissions (with an ownership fallback for non-maintainers) and
// centralizes the per-role allowed-field policy for partial updates.
package authz

import (
	"context"

	"issuehub/internal/domain/issue"
	"issuehub/internal/domain/project"
	"issuehub/internal/shared/errors"
)

// Issue patch field names used by the allowed-field policy.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldPriority    = "priority"
	FieldAssigneeID  = "assignee_id"
)

// FieldSet is the set of issue fields a role may write through a partial
// update.
type FieldSet map[string]bool

// AllowedIssueFields returns the writable field set for a role. Status and
// assignee are maintainer-only; a member's patch keeps its permitted subset
// and the privileged fields are dropped silently rather than rejected, so
// mixed-field patches from non-privileged editors still apply.
func AllowedIssueFields(role project.Role) FieldSet {
	fields := FieldSet{
		FieldTitle:       true,
		FieldDescription: true,
		FieldPriority:    true,
	}
	if role == project.RoleMaintainer {
		fields[FieldStatus] = true
		fields[FieldAssigneeID] = true
	}
	return fields
}

// FilterIssuePatch drops the patch fields the role may not write.
func FilterIssuePatch(role project.Role, p issue.Patch) issue.Patch {
	allowed := AllowedIssueFields(role)
	if !allowed[FieldStatus] {
		p.Status = nil
	}
	if !allowed[FieldAssigneeID] {
		p.AssigneeID = nil
	}
	return p
}

// Engine resolves (user, project) pairs to roles and enforces the membership
// policy. Role resolution is pure: repeated calls without intervening
// membership writes return the same result.
type Engine struct {
	members project.MemberRepository
}

func NewEngine(members project.MemberRepository) *Engine {
	return &Engine{members: members}
}

// ResolveRole returns the caller's role for a project, or ok=false when the
// caller is not a member.
func (e *Engine) ResolveRole(ctx context.Context, projectID, userID uint) (project.Role, bool, error) {
	membership, err := e.members.GetMembership(ctx, projectID, userID)
	if err != nil {
		return "", false, errors.NewInternalError("failed to resolve membership", err.Error())
	}
	if membership == nil {
		return "", false, nil
	}
	return membership.Role(), true, nil
}

// AuthorizeProjectAccess fails with a forbidden error when the caller holds
// no membership for the project.
func (e *Engine) AuthorizeProjectAccess(ctx context.Context, projectID, userID uint) (project.Role, error) {
	role, ok, err := e.ResolveRole(ctx, projectID, userID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.NewForbiddenError("project membership required")
	}
	return role, nil
}

// RequireMaintainer fails with a forbidden error unless the caller is a
// maintainer of the project.
func (e *Engine) RequireMaintainer(ctx context.Context, projectID, userID uint) error {
	role, ok, err := e.ResolveRole(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if !ok || role != project.RoleMaintainer {
		return errors.NewForbiddenError("maintainer role required")
	}
	return nil
}

// CanMutateIssue reports whether the role may mutate or delete the issue: a
// maintainer may touch any issue in the project, anyone else only issues they
// reported.
func CanMutateIssue(role project.Role, i *issue.Issue, userID uint) bool {
	if role == project.RoleMaintainer {
		return true
	}
	return i.ReporterID() == userID
}
