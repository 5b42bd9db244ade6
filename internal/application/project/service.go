// Package project implements project and membership management.
package project

import (
	"context"
	"time"

	auditapp "issuehub/internal/application/audit"
	"issuehub/internal/application/authz"
	"issuehub/internal/domain/project"
	"issuehub/internal/domain/user"
	"issuehub/internal/shared/errors"
	"issuehub/internal/shared/logger"
)

// TransactionManager runs a function inside one store transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateProjectCommand struct {
	Name        string
	Key         string
	Description string
	CreatorID   uint
}

type AddMemberCommand struct {
	ProjectID uint
	ActorID   uint
	UserID    uint
	Email     string
	Role      project.Role
}

type RemoveMemberCommand struct {
	ProjectID uint
	ActorID   uint
	UserID    uint
}

type ProjectResult struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Key         string    `json:"key"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type MembershipResult struct {
	ProjectID uint   `json:"project_id"`
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
}

type MemberResult struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type Service struct {
	projects project.Repository
	members  project.MemberRepository
	users    user.Repository
	engine   *authz.Engine
	tx       TransactionManager
	recorder *auditapp.Recorder
	logger   logger.Interface
}

func NewService(
	projects project.Repository,
	members project.MemberRepository,
	users user.Repository,
	engine *authz.Engine,
	tx TransactionManager,
	recorder *auditapp.Recorder,
	logger logger.Interface,
) *Service {
	return &Service{
		projects: projects,
		members:  members,
		users:    users,
		engine:   engine,
		tx:       tx,
		recorder: recorder,
		logger:   logger,
	}
}

func toProjectResult(p *project.Project) *ProjectResult {
	return &ProjectResult{
		ID:          p.ID(),
		Name:        p.Name(),
		Key:         p.Key(),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt(),
	}
}

// Create saves the project and its first maintainer membership in one
// transaction, so no project is ever visible without a maintainer.
func (s *Service) Create(ctx context.Context, cmd CreateProjectCommand) (*ProjectResult, error) {
	newProject, err := project.NewProject(cmd.Name, cmd.Key, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = s.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := s.projects.Save(txCtx, newProject); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("project key already in use")
			}
			return errors.NewInternalError("failed to save project", err.Error())
		}
		membership, err := project.NewMember(newProject.ID(), cmd.CreatorID, project.RoleMaintainer)
		if err != nil {
			return errors.NewInternalError("failed to build membership", err.Error())
		}
		if err := s.members.Add(txCtx, membership); err != nil {
			return errors.NewInternalError("failed to save membership", err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("project created", "project_id", newProject.ID(), "key", newProject.Key(), "creator_id", cmd.CreatorID)

	actorID := cmd.CreatorID
	projectID := newProject.ID()
	s.recorder.Record(ctx, &actorID, "project_created", "project", &projectID, nil)

	return toProjectResult(newProject), nil
}

// ListForUser returns the projects the user holds a membership in.
func (s *Service) ListForUser(ctx context.Context, userID uint) ([]*ProjectResult, error) {
	found, err := s.projects.ListForUser(ctx, userID)
	if err != nil {
		return nil, errors.NewInternalError("failed to list projects", err.Error())
	}

	results := make([]*ProjectResult, len(found))
	for i, p := range found {
		results[i] = toProjectResult(p)
	}
	return results, nil
}

// GetMembership returns the caller's own role in the project.
func (s *Service) GetMembership(ctx context.Context, projectID, userID uint) (*MembershipResult, error) {
	role, err := s.engine.AuthorizeProjectAccess(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	return &MembershipResult{
		ProjectID: projectID,
		UserID:    userID,
		Role:      role.String(),
	}, nil
}

// ListMembers returns all memberships of a project; the caller must be a
// member themselves.
func (s *Service) ListMembers(ctx context.Context, projectID, userID uint) ([]*MemberResult, error) {
	if _, err := s.engine.AuthorizeProjectAccess(ctx, projectID, userID); err != nil {
		return nil, err
	}

	members, err := s.members.ListMembers(ctx, projectID)
	if err != nil {
		return nil, errors.NewInternalError("failed to list members", err.Error())
	}

	results := make([]*MemberResult, len(members))
	for i, m := range members {
		results[i] = &MemberResult{
			UserID: m.UserID,
			Name:   m.Name,
			Email:  m.Email,
			Role:   m.Role.String(),
		}
	}
	return results, nil
}

// AddMember grants a user membership. Maintainer only; the target is located
// by id or email; an existing membership is a conflict.
func (s *Service) AddMember(ctx context.Context, cmd AddMemberCommand) (*MembershipResult, error) {
	if err := s.engine.RequireMaintainer(ctx, cmd.ProjectID, cmd.ActorID); err != nil {
		return nil, err
	}

	existing, err := s.projects.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load project", err.Error())
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	target, err := s.resolveTarget(ctx, cmd)
	if err != nil {
		return nil, err
	}

	current, err := s.members.GetMembership(ctx, cmd.ProjectID, target.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to resolve membership", err.Error())
	}
	if current != nil {
		return nil, errors.NewConflictError("user already a member")
	}

	role := cmd.Role
	if role == "" {
		role = project.RoleMember
	}
	membership, err := project.NewMember(cmd.ProjectID, target.ID(), role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.members.Add(ctx, membership); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("user already a member")
		}
		return nil, errors.NewInternalError("failed to save membership", err.Error())
	}

	actorID := cmd.ActorID
	projectID := cmd.ProjectID
	s.recorder.Record(ctx, &actorID, "member_added", "project", &projectID, map[string]any{
		"member_id": target.ID(),
		"role":      role.String(),
	})

	return &MembershipResult{
		ProjectID: cmd.ProjectID,
		UserID:    target.ID(),
		Role:      role.String(),
	}, nil
}

func (s *Service) resolveTarget(ctx context.Context, cmd AddMemberCommand) (*user.User, error) {
	var target *user.User
	var err error
	switch {
	case cmd.UserID != 0:
		target, err = s.users.GetByID(ctx, cmd.UserID)
	case cmd.Email != "":
		target, err = s.users.GetByEmail(ctx, cmd.Email)
	default:
		return nil, errors.NewBadRequestError("provide user_id or email")
	}
	if err != nil {
		return nil, errors.NewInternalError("failed to look up user", err.Error())
	}
	if target == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return target, nil
}

// RemoveMember revokes a membership. Maintainer only; a missing membership is
// not found.
func (s *Service) RemoveMember(ctx context.Context, cmd RemoveMemberCommand) error {
	if err := s.engine.RequireMaintainer(ctx, cmd.ProjectID, cmd.ActorID); err != nil {
		return err
	}

	existing, err := s.projects.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		return errors.NewInternalError("failed to load project", err.Error())
	}
	if existing == nil {
		return errors.NewNotFoundError("project not found")
	}

	removed, err := s.members.Remove(ctx, cmd.ProjectID, cmd.UserID)
	if err != nil {
		return errors.NewInternalError("failed to remove membership", err.Error())
	}
	if !removed {
		return errors.NewNotFoundError("member not found")
	}

	actorID := cmd.ActorID
	projectID := cmd.ProjectID
	s.recorder.Record(ctx, &actorID, "member_removed", "project", &projectID, map[string]any{
		"member_id": cmd.UserID,
	})

	return nil
}
