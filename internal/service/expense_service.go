package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Felypee/monedita-backend-sub001/internal/metrics"
	"github.com/Felypee/monedita-backend-sub001/internal/models"
	"github.com/Felypee/monedita-backend-sub001/internal/storage"
)

// ExpenseService owns shared expenses and their splits.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage
// backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// ExpenseInput carries the caller-supplied fields of a new expense.
// Category and description come from upstream extraction and are stored
// verbatim.
type ExpenseInput struct {
	// GroupID is optional; empty records an ad hoc expense outside any
	// group.
	GroupID     string
	Amount      decimal.Decimal
	Category    string
	Description string
	SplitType   models.SplitType
}

// SplitInput is one member's share of an expense, already computed
// upstream.
type SplitInput struct {
	MemberID string
	Amount   decimal.Decimal
}

// RecordExpense records a payment made by creatorID. The amount must be
// positive; a referenced group must exist.
func (s *ExpenseService) RecordExpense(ctx context.Context, creatorID string, in ExpenseInput) (*models.SharedExpense, error) {
	if creatorID == "" {
		return nil, ErrEmptyUserID
	}
	if in.Amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	if in.GroupID != "" {
		group, err := s.store.GetGroup(ctx, in.GroupID)
		if err != nil {
			return nil, err
		}
		if group == nil {
			return nil, ErrGroupNotFound
		}
	}

	expense := &models.SharedExpense{
		GroupID:     in.GroupID,
		CreatorID:   creatorID,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		SplitType:   in.SplitType,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("RecordExpense failed", "creator_id", creatorID, "error", err)
		return nil, err
	}

	metrics.ExpensesRecorded.Inc()
	slog.Info("Expense recorded",
		"expense_id", expense.ID,
		"creator_id", creatorID,
		"group_id", expense.GroupID,
		"amount", expense.Amount,
	)
	return expense, nil
}

// CreateSplits records the per-member shares of an expense, all
// pending. Amounts are stored exactly as supplied; the engine does not
// check that they sum to the expense amount, since callers legitimately
// record partial splits (the payer's own share is simply never
// materialized).
func (s *ExpenseService) CreateSplits(ctx context.Context, expenseID string, inputs []SplitInput) ([]*models.ExpenseSplit, error) {
	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	splits := make([]*models.ExpenseSplit, len(inputs))
	for i, in := range inputs {
		if in.MemberID == "" {
			return nil, ErrEmptyUserID
		}
		if in.Amount.Sign() < 0 {
			return nil, ErrNegativeSplitAmount
		}
		splits[i] = &models.ExpenseSplit{
			ExpenseID: expenseID,
			MemberID:  in.MemberID,
			Amount:    in.Amount,
		}
	}

	if err := s.store.CreateSplits(ctx, splits); err != nil {
		slog.Error("CreateSplits failed", "expense_id", expenseID, "error", err)
		return nil, err
	}

	metrics.SplitsCreated.Add(float64(len(splits)))
	slog.Info("Splits created", "expense_id", expenseID, "count", len(splits))
	return splits, nil
}

// GetExpense retrieves an expense by ID. A miss returns (nil, nil).
func (s *ExpenseService) GetExpense(ctx context.Context, expenseID string) (*models.SharedExpense, error) {
	return s.store.GetExpense(ctx, expenseID)
}

// ListExpensesForGroup returns a group's expenses, most recent first.
func (s *ExpenseService) ListExpensesForGroup(ctx context.Context, groupID string) ([]*models.SharedExpense, error) {
	return s.store.ListExpensesForGroup(ctx, groupID)
}

// ListExpensesByCreator returns the expenses the user paid for.
func (s *ExpenseService) ListExpensesByCreator(ctx context.Context, creatorID string) ([]*models.SharedExpense, error) {
	return s.store.ListExpensesByCreator(ctx, creatorID)
}

// ListExpensesForParticipant returns every expense on which the user
// holds a split.
func (s *ExpenseService) ListExpensesForParticipant(ctx context.Context, userID string) ([]*models.SharedExpense, error) {
	return s.store.ListExpensesForParticipant(ctx, userID)
}

// DeleteExpense removes an expense and its splits.
func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	found, err := s.store.DeleteExpense(ctx, expenseID)
	if err != nil {
		slog.Error("DeleteExpense failed", "expense_id", expenseID, "error", err)
		return err
	}
	if !found {
		return ErrExpenseNotFound
	}

	slog.Info("Expense deleted", "expense_id", expenseID)
	return nil
}

// GetSplitsForExpense returns an expense's splits.
func (s *ExpenseService) GetSplitsForExpense(ctx context.Context, expenseID string) ([]*models.ExpenseSplit, error) {
	return s.store.GetSplitsForExpense(ctx, expenseID)
}

// GetSplitsForMember returns the user's splits, optionally filtered by
// status (empty means all).
func (s *ExpenseService) GetSplitsForMember(ctx context.Context, memberID string, status models.SplitStatus) ([]*models.ExpenseSplit, error) {
	return s.store.GetSplitsForMember(ctx, memberID, status)
}

// MarkSplitPaid transitions a split to paid. Marking an already-paid
// split is a no-op; only an unknown split ID is an error. Safe to
// retry.
func (s *ExpenseService) MarkSplitPaid(ctx context.Context, splitID string) error {
	changed, err := s.store.MarkSplitPaid(ctx, splitID, time.Now().UTC())
	if err != nil {
		slog.Error("MarkSplitPaid failed", "split_id", splitID, "error", err)
		return err
	}
	if changed {
		slog.Info("Split marked paid", "split_id", splitID)
		return nil
	}

	// Nothing transitioned: either the split is already paid (fine) or
	// it does not exist.
	split, err := s.store.GetSplit(ctx, splitID)
	if err != nil {
		return err
	}
	if split == nil {
		return ErrSplitNotFound
	}
	return nil
}

// MarkSplitPaidByExpenseAndMember is MarkSplitPaid addressed by the
// (expense, member) pair.
func (s *ExpenseService) MarkSplitPaidByExpenseAndMember(ctx context.Context, expenseID, memberID string) error {
	changed, err := s.store.MarkSplitPaidByExpenseMember(ctx, expenseID, memberID, time.Now().UTC())
	if err != nil {
		slog.Error("MarkSplitPaid failed", "expense_id", expenseID, "member_id", memberID, "error", err)
		return err
	}
	if changed {
		slog.Info("Split marked paid", "expense_id", expenseID, "member_id", memberID)
		return nil
	}

	splits, err := s.store.GetSplitsForExpense(ctx, expenseID)
	if err != nil {
		return err
	}
	for _, sp := range splits {
		if sp.MemberID == memberID {
			return nil // already paid
		}
	}
	return ErrSplitNotFound
}
