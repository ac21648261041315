package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Felypee/monedita-backend-sub001/internal/models"
)

const expenseColumns = "id, group_id, creator_id, amount, category, description, split_type, created_at, updated_at"

// scanExpense maps one expenses row onto a model. All column-to-field
// translation for expenses lives here.
func scanExpense(scan func(dest ...any) error) (*models.SharedExpense, error) {
	e := &models.SharedExpense{}
	var groupID sql.NullString
	var amount, splitType string
	var createdAt, updatedAt int64

	if err := scan(&e.ID, &groupID, &e.CreatorID, &amount, &e.Category, &e.Description, &splitType, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if groupID.Valid {
		e.GroupID = groupID.String
	}
	amt, err := decodeAmount(amount)
	if err != nil {
		return nil, err
	}
	e.Amount = amt
	e.SplitType = models.SplitType(splitType)
	e.CreatedAt = decodeTime(createdAt)
	e.UpdatedAt = decodeTime(updatedAt)
	return e, nil
}

// CreateExpense persists a new expense.
func (s *SQLiteStore) CreateExpense(ctx context.Context, e *models.SharedExpense) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	e.UpdatedAt = e.CreatedAt

	// NULL group_id marks an ad hoc expense outside any group.
	var groupID any
	if e.GroupID != "" {
		groupID = e.GroupID
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (id, group_id, creator_id, amount, category, description, split_type, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, groupID, e.CreatorID, encodeAmount(e.Amount), e.Category, e.Description,
		string(e.SplitType), encodeTime(e.CreatedAt), encodeTime(e.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	return nil
}

// GetExpense retrieves an expense by ID. Returns (nil, nil) if absent.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.SharedExpense, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE id = ?",
		expenseID,
	)
	e, err := scanExpense(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return e, nil
}

func (s *SQLiteStore) listExpenses(ctx context.Context, query string, args ...any) ([]*models.SharedExpense, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.SharedExpense
	for rows.Next() {
		e, err := scanExpense(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// ListExpensesForGroup returns a group's expenses, most recent first.
func (s *SQLiteStore) ListExpensesForGroup(ctx context.Context, groupID string) ([]*models.SharedExpense, error) {
	return s.listExpenses(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE group_id = ? ORDER BY created_at DESC, id",
		groupID,
	)
}

// ListExpensesByCreator returns expenses paid by the user, most recent
// first.
func (s *SQLiteStore) ListExpensesByCreator(ctx context.Context, creatorID string) ([]*models.SharedExpense, error) {
	return s.listExpenses(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE creator_id = ? ORDER BY created_at DESC, id",
		creatorID,
	)
}

// ListExpensesForParticipant returns every expense on which the user
// holds a split, most recent first.
func (s *SQLiteStore) ListExpensesForParticipant(ctx context.Context, userID string) ([]*models.SharedExpense, error) {
	return s.listExpenses(ctx,
		`SELECT DISTINCT e.id, e.group_id, e.creator_id, e.amount, e.category, e.description, e.split_type, e.created_at, e.updated_at
		 FROM expenses e
		 JOIN expense_splits sp ON sp.expense_id = e.id
		 WHERE sp.member_id = ?
		 ORDER BY e.created_at DESC, e.id`,
		userID,
	)
}

// DeleteExpense removes an expense; its splits go with it via the
// foreign key cascade. Returns false if no such expense.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return false, fmt.Errorf("failed to delete expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return n > 0, nil
}
