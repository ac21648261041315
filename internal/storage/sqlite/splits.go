package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Felypee/monedita-backend-sub001/internal/models"
)

const splitColumns = "id, expense_id, member_id, amount, status, paid_at, created_at"

// scanSplit maps one expense_splits row onto a model. All
// column-to-field translation for splits lives here.
func scanSplit(scan func(dest ...any) error) (*models.ExpenseSplit, error) {
	sp := &models.ExpenseSplit{}
	var amount, status string
	var paidAt sql.NullInt64
	var createdAt int64

	if err := scan(&sp.ID, &sp.ExpenseID, &sp.MemberID, &amount, &status, &paidAt, &createdAt); err != nil {
		return nil, err
	}

	amt, err := decodeAmount(amount)
	if err != nil {
		return nil, err
	}
	sp.Amount = amt
	sp.Status = models.SplitStatus(status)
	if paidAt.Valid {
		t := decodeTime(paidAt.Int64)
		sp.PaidAt = &t
	}
	sp.CreatedAt = decodeTime(createdAt)
	return sp, nil
}

// CreateSplits persists a batch of splits in one transaction. Every
// split starts pending; amounts are stored exactly as supplied.
func (s *SQLiteStore) CreateSplits(ctx context.Context, splits []*models.ExpenseSplit) error {
	if len(splits) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, sp := range splits {
		if sp.ID == "" {
			sp.ID = uuid.New().String()
		}
		if sp.CreatedAt.IsZero() {
			sp.CreatedAt = now
		}
		sp.Status = models.SplitPending
		sp.PaidAt = nil

		_, err = tx.ExecContext(ctx,
			`INSERT INTO expense_splits (id, expense_id, member_id, amount, status, paid_at, created_at)
			 VALUES (?, ?, ?, ?, ?, NULL, ?)`,
			sp.ID, sp.ExpenseID, sp.MemberID, encodeAmount(sp.Amount), string(sp.Status), encodeTime(sp.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetSplit retrieves a split by ID. Returns (nil, nil) if absent.
func (s *SQLiteStore) GetSplit(ctx context.Context, splitID string) (*models.ExpenseSplit, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+splitColumns+" FROM expense_splits WHERE id = ?",
		splitID,
	)
	sp, err := scanSplit(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get split: %w", err)
	}
	return sp, nil
}

func (s *SQLiteStore) listSplits(ctx context.Context, query string, args ...any) ([]*models.ExpenseSplit, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}
	defer rows.Close()

	var splits []*models.ExpenseSplit
	for rows.Next() {
		sp, err := scanSplit(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		splits = append(splits, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}

	return splits, nil
}

// GetSplitsForExpense returns an expense's splits in creation order.
func (s *SQLiteStore) GetSplitsForExpense(ctx context.Context, expenseID string) ([]*models.ExpenseSplit, error) {
	return s.listSplits(ctx,
		"SELECT "+splitColumns+" FROM expense_splits WHERE expense_id = ? ORDER BY created_at, id",
		expenseID,
	)
}

// GetSplitsForMember returns the user's splits, optionally filtered by
// status. An empty status returns all of them.
func (s *SQLiteStore) GetSplitsForMember(ctx context.Context, memberID string, status models.SplitStatus) ([]*models.ExpenseSplit, error) {
	if status == "" {
		return s.listSplits(ctx,
			"SELECT "+splitColumns+" FROM expense_splits WHERE member_id = ? ORDER BY created_at, id",
			memberID,
		)
	}
	return s.listSplits(ctx,
		"SELECT "+splitColumns+" FROM expense_splits WHERE member_id = ? AND status = ? ORDER BY created_at, id",
		memberID, string(status),
	)
}

// MarkSplitPaid transitions a pending split to paid. The status guard
// in the WHERE clause makes the transition idempotent: an already-paid
// or missing split affects zero rows and reports false.
func (s *SQLiteStore) MarkSplitPaid(ctx context.Context, splitID string, paidAt time.Time) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE expense_splits SET status = ?, paid_at = ? WHERE id = ? AND status = ?",
		string(models.SplitPaid), encodeTime(paidAt), splitID, string(models.SplitPending),
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark split paid: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result: %w", err)
	}
	return n > 0, nil
}

// MarkSplitPaidByExpenseMember is MarkSplitPaid keyed by the
// (expense, member) pair.
func (s *SQLiteStore) MarkSplitPaidByExpenseMember(ctx context.Context, expenseID, memberID string, paidAt time.Time) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE expense_splits SET status = ?, paid_at = ? WHERE expense_id = ? AND member_id = ? AND status = ?",
		string(models.SplitPaid), encodeTime(paidAt), expenseID, memberID, string(models.SplitPending),
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark split paid: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result: %w", err)
	}
	return n > 0, nil
}

// ListPendingObligations returns every pending split that involves the
// user on either side, joined with the owning expense's creator. This
// is the balance engine's raw input.
func (s *SQLiteStore) ListPendingObligations(ctx context.Context, userID string) ([]*models.PendingObligation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT sp.id, sp.expense_id, sp.member_id, e.creator_id, sp.amount
		 FROM expense_splits sp
		 JOIN expenses e ON e.id = sp.expense_id
		 WHERE sp.status = ? AND (sp.member_id = ? OR e.creator_id = ?)
		 ORDER BY sp.created_at, sp.id`,
		string(models.SplitPending), userID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending obligations: %w", err)
	}
	defer rows.Close()

	var obligations []*models.PendingObligation
	for rows.Next() {
		ob := &models.PendingObligation{}
		var amount string
		if err := rows.Scan(&ob.SplitID, &ob.ExpenseID, &ob.DebtorID, &ob.CreditorID, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan obligation: %w", err)
		}
		amt, err := decodeAmount(amount)
		if err != nil {
			return nil, err
		}
		ob.Amount = amt
		obligations = append(obligations, ob)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate obligations: %w", err)
	}

	return obligations, nil
}
