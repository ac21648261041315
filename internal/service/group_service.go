// Package service implements the ledger engine's four components:
// the group registry, the ledger store operations, the balance engine,
// and the settlement coordinator. Services hold only a storage handle
// and are safe for concurrent use.
package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Felypee/monedita-backend-sub001/internal/metrics"
	"github.com/Felypee/monedita-backend-sub001/internal/models"
	"github.com/Felypee/monedita-backend-sub001/internal/storage"
)

// GroupService is the group registry: it owns groups and their rosters.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage
// backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a group and records the creator as its owner.
func (s *GroupService) CreateGroup(ctx context.Context, creatorID, name string) (*models.Group, error) {
	if creatorID == "" {
		return nil, ErrEmptyUserID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyGroupName
	}

	group := &models.Group{
		Name:      name,
		CreatedBy: creatorID,
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "creator_id", creatorID, "error", err)
		return nil, err
	}

	metrics.GroupsCreated.Inc()
	slog.Info("Group created", "group_id", group.ID, "creator_id", creatorID)
	return group, nil
}

// GetGroup retrieves a group by ID. A miss returns (nil, nil).
func (s *GroupService) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return s.store.GetGroup(ctx, groupID)
}

// ListGroupsForUser returns every group the user is a member of.
func (s *GroupService) ListGroupsForUser(ctx context.Context, userID string) ([]*models.Group, error) {
	return s.store.ListGroupsForUser(ctx, userID)
}

// RenameGroup changes a group's name.
func (s *GroupService) RenameGroup(ctx context.Context, groupID, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrEmptyGroupName
	}

	found, err := s.store.RenameGroup(ctx, groupID, newName)
	if err != nil {
		slog.Error("RenameGroup failed", "group_id", groupID, "error", err)
		return err
	}
	if !found {
		return ErrGroupNotFound
	}

	slog.Info("Group renamed", "group_id", groupID)
	return nil
}

// DeleteGroup removes a group along with its roster, its expenses, and
// their splits. Irreversible.
func (s *GroupService) DeleteGroup(ctx context.Context, groupID string) error {
	found, err := s.store.DeleteGroup(ctx, groupID)
	if err != nil {
		slog.Error("DeleteGroup failed", "group_id", groupID, "error", err)
		return err
	}
	if !found {
		return ErrGroupNotFound
	}

	slog.Info("Group deleted", "group_id", groupID)
	return nil
}

// AddMember puts a user in the group's roster. Adding an existing
// member is an idempotent upsert: a different role updates the row in
// place. An empty role defaults to member.
func (s *GroupService) AddMember(ctx context.Context, groupID, userID string, role models.MemberRole) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	if role == "" {
		role = models.RoleMember
	}
	if !role.Valid() {
		return ErrInvalidRole
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrGroupNotFound
	}

	m := &models.Membership{
		GroupID: groupID,
		UserID:  userID,
		Role:    role,
	}
	if err := s.store.UpsertMember(ctx, m); err != nil {
		slog.Error("AddMember failed", "group_id", groupID, "user_id", userID, "error", err)
		return err
	}

	slog.Info("Member added", "group_id", groupID, "user_id", userID, "role", role)
	return nil
}

// RemoveMember takes a user out of the roster. Expenses and splits
// referencing the user are untouched; ledger history is immutable.
func (s *GroupService) RemoveMember(ctx context.Context, groupID, userID string) error {
	if err := s.store.RemoveMember(ctx, groupID, userID); err != nil {
		slog.Error("RemoveMember failed", "group_id", groupID, "user_id", userID, "error", err)
		return err
	}

	slog.Info("Member removed", "group_id", groupID, "user_id", userID)
	return nil
}

// ListMembers returns the group's roster.
func (s *GroupService) ListMembers(ctx context.Context, groupID string) ([]*models.Membership, error) {
	return s.store.ListMembers(ctx, groupID)
}

// IsMember reports whether the user is in the group's roster.
func (s *GroupService) IsMember(ctx context.Context, groupID, userID string) (bool, error) {
	m, err := s.store.GetMembership(ctx, groupID, userID)
	if err != nil {
		return false, err
	}
	return m != nil, nil
}

// IsOwner reports whether the user holds the owner role in the group.
func (s *GroupService) IsOwner(ctx context.Context, groupID, userID string) (bool, error) {
	m, err := s.store.GetMembership(ctx, groupID, userID)
	if err != nil {
		return false, err
	}
	return m != nil && m.Role == models.RoleOwner, nil
}
