// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"time"

	"github.com/Felypee/monedita-backend-sub001/internal/models"
)

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
//
// Reads that miss return (nil, nil): "not found" is a normal branch for
// this engine, not an error. Errors are reserved for the store itself
// failing, and are propagated unmodified up the call chain.
type Store interface {
	// CreateGroup persists a new group together with its owner
	// membership, atomically. The group's ID and timestamps are
	// populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group by ID, or (nil, nil) if absent.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsForUser returns every group where the user holds a
	// membership, ordered by join time.
	ListGroupsForUser(ctx context.Context, userID string) ([]*models.Group, error)

	// RenameGroup updates a group's name and bumps its updated_at.
	// Returns false if the group does not exist.
	RenameGroup(ctx context.Context, groupID, name string) (bool, error)

	// DeleteGroup removes the group, its memberships, its expenses, and
	// their splits, in one transaction. Returns false if the group does
	// not exist.
	DeleteGroup(ctx context.Context, groupID string) (bool, error)

	// UpsertMember inserts the membership or, if the (group, user) pair
	// already exists, updates its role in place. JoinedAt is populated
	// by the store on first insert and preserved on update.
	UpsertMember(ctx context.Context, m *models.Membership) error

	// RemoveMember deletes the membership row only; expenses and splits
	// referencing the user are left untouched.
	RemoveMember(ctx context.Context, groupID, userID string) error

	// GetMembership retrieves one roster row, or (nil, nil) if absent.
	GetMembership(ctx context.Context, groupID, userID string) (*models.Membership, error)

	// ListMembers returns a group's roster ordered by join time.
	ListMembers(ctx context.Context, groupID string) ([]*models.Membership, error)

	// CreateExpense persists a new expense. ID and timestamps are
	// populated by the store.
	CreateExpense(ctx context.Context, e *models.SharedExpense) error

	// GetExpense retrieves an expense by ID, or (nil, nil) if absent.
	GetExpense(ctx context.Context, expenseID string) (*models.SharedExpense, error)

	// ListExpensesForGroup returns a group's expenses, most recent
	// first.
	ListExpensesForGroup(ctx context.Context, groupID string) ([]*models.SharedExpense, error)

	// ListExpensesByCreator returns expenses paid by the user, most
	// recent first.
	ListExpensesByCreator(ctx context.Context, creatorID string) ([]*models.SharedExpense, error)

	// ListExpensesForParticipant returns every expense on which the
	// user holds a split, most recent first.
	ListExpensesForParticipant(ctx context.Context, userID string) ([]*models.SharedExpense, error)

	// DeleteExpense removes the expense and its splits. Returns false
	// if the expense does not exist.
	DeleteExpense(ctx context.Context, expenseID string) (bool, error)

	// CreateSplits persists a batch of splits in one transaction. IDs,
	// pending status, and created_at are populated by the store; the
	// amounts are stored exactly as supplied.
	CreateSplits(ctx context.Context, splits []*models.ExpenseSplit) error

	// GetSplit retrieves a split by ID, or (nil, nil) if absent.
	GetSplit(ctx context.Context, splitID string) (*models.ExpenseSplit, error)

	// GetSplitsForExpense returns an expense's splits in creation
	// order.
	GetSplitsForExpense(ctx context.Context, expenseID string) ([]*models.ExpenseSplit, error)

	// GetSplitsForMember returns the user's splits, optionally filtered
	// by status (empty status means all).
	GetSplitsForMember(ctx context.Context, memberID string, status models.SplitStatus) ([]*models.ExpenseSplit, error)

	// MarkSplitPaid transitions a pending split to paid. Returns false
	// without error when the split is already paid or absent.
	MarkSplitPaid(ctx context.Context, splitID string, paidAt time.Time) (bool, error)

	// MarkSplitPaidByExpenseMember is MarkSplitPaid keyed by the
	// (expense, member) pair instead of the split ID.
	MarkSplitPaidByExpenseMember(ctx context.Context, expenseID, memberID string, paidAt time.Time) (bool, error)

	// ListPendingObligations returns every pending split touching the
	// user in either direction (as debtor or as creditor), joined with
	// the owning expense's creator.
	ListPendingObligations(ctx context.Context, userID string) ([]*models.PendingObligation, error)

	// SettlePending atomically marks every pending split owed by payer
	// on expenses created by creditor as paid, records a settlement row
	// for the batch, and returns it. When nothing is pending it returns
	// a zero-amount settlement without persisting anything.
	SettlePending(ctx context.Context, payerID, creditorID string, paidAt time.Time) (*models.Settlement, error)

	// ListSettlementsForUser returns settlements where the user is
	// payer or creditor, most recent first.
	ListSettlementsForUser(ctx context.Context, userID string) ([]*models.Settlement, error)

	// ListSettlementsBetween returns settlements from payer to
	// creditor, most recent first.
	ListSettlementsBetween(ctx context.Context, payerID, creditorID string) ([]*models.Settlement, error)

	// Close releases any resources held by the store.
	Close() error
}
