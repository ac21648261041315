package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Felypee/monedita-backend-sub001/internal/models"
)

// CreateGroup persists a new group and its owner membership in one
// transaction.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if group.CreatedAt.IsZero() {
		group.CreatedAt = now
	}
	group.UpdatedAt = group.CreatedAt

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO groups (id, name, created_by, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		group.ID, group.Name, group.CreatedBy, encodeTime(group.CreatedAt), encodeTime(group.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO group_members (group_id, user_id, role, joined_at) VALUES (?, ?, ?, ?)",
		group.ID, group.CreatedBy, string(models.RoleOwner), encodeTime(group.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert owner membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetGroup retrieves a group by ID. Returns (nil, nil) if absent.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group := &models.Group{}
	var createdAt, updatedAt int64

	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_by, created_at, updated_at FROM groups WHERE id = ?",
		groupID,
	).Scan(&group.ID, &group.Name, &group.CreatedBy, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	group.CreatedAt = decodeTime(createdAt)
	group.UpdatedAt = decodeTime(updatedAt)
	return group, nil
}

// ListGroupsForUser returns every group where the user has a membership,
// ordered by when they joined (group id as tiebreaker).
func (s *SQLiteStore) ListGroupsForUser(ctx context.Context, userID string) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT g.id, g.name, g.created_by, g.created_at, g.updated_at
		 FROM groups g
		 JOIN group_members m ON m.group_id = g.id
		 WHERE m.user_id = ?
		 ORDER BY m.joined_at, g.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups for user: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		group := &models.Group{}
		var createdAt, updatedAt int64
		if err := rows.Scan(&group.ID, &group.Name, &group.CreatedBy, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		group.CreatedAt = decodeTime(createdAt)
		group.UpdatedAt = decodeTime(updatedAt)
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	return groups, nil
}

// RenameGroup updates a group's name. Returns false if no such group.
func (s *SQLiteStore) RenameGroup(ctx context.Context, groupID, name string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE groups SET name = ?, updated_at = ? WHERE id = ?",
		name, encodeTime(time.Now().UTC()), groupID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to rename group: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rename result: %w", err)
	}
	return n > 0, nil
}

// DeleteGroup removes a group and everything it owns: memberships
// (FK cascade), expenses (explicit), and expense splits (FK cascade
// from expenses). All of it happens in one transaction so a concurrent
// reader never sees a group half-deleted.
func (s *SQLiteStore) DeleteGroup(ctx context.Context, groupID string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM expenses WHERE group_id = ?", groupID); err != nil {
		return false, fmt.Errorf("failed to delete group expenses: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", groupID)
	if err != nil {
		return false, fmt.Errorf("failed to delete group: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return n > 0, nil
}

// UpsertMember inserts a membership or updates the role of an existing
// one, keyed by (group_id, user_id). JoinedAt survives role updates.
func (s *SQLiteStore) UpsertMember(ctx context.Context, m *models.Membership) error {
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO group_members (group_id, user_id, role, joined_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (group_id, user_id) DO UPDATE SET role = excluded.role`,
		m.GroupID, m.UserID, string(m.Role), encodeTime(m.JoinedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert member: %w", err)
	}

	return nil
}

// RemoveMember deletes a membership row. Removing a user who is not in
// the roster is a no-op.
func (s *SQLiteStore) RemoveMember(ctx context.Context, groupID, userID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM group_members WHERE group_id = ? AND user_id = ?",
		groupID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

// GetMembership retrieves one roster row. Returns (nil, nil) if absent.
func (s *SQLiteStore) GetMembership(ctx context.Context, groupID, userID string) (*models.Membership, error) {
	m := &models.Membership{}
	var role string
	var joinedAt int64

	err := s.db.QueryRowContext(ctx,
		"SELECT group_id, user_id, role, joined_at FROM group_members WHERE group_id = ? AND user_id = ?",
		groupID, userID,
	).Scan(&m.GroupID, &m.UserID, &role, &joinedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	m.Role = models.MemberRole(role)
	m.JoinedAt = decodeTime(joinedAt)
	return m, nil
}

// ListMembers returns a group's roster ordered by join time.
func (s *SQLiteStore) ListMembers(ctx context.Context, groupID string) ([]*models.Membership, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT group_id, user_id, role, joined_at FROM group_members WHERE group_id = ? ORDER BY joined_at, user_id",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*models.Membership
	for rows.Next() {
		m := &models.Membership{}
		var role string
		var joinedAt int64
		if err := rows.Scan(&m.GroupID, &m.UserID, &role, &joinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		m.Role = models.MemberRole(role)
		m.JoinedAt = decodeTime(joinedAt)
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}
