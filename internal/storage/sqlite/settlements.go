package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Felypee/monedita-backend-sub001/internal/models"
)

// SettlePending clears the one-directional debt payer→creditor: every
// pending split where payer is the member and creditor created the
// owning expense is marked paid, and a settlement row records the
// batch. Select, update, and insert share one transaction so no reader
// observes a partially settled batch.
//
// When nothing is pending the returned settlement has a zero amount and
// nothing is persisted; "nothing to settle" is a normal result.
func (s *SQLiteStore) SettlePending(ctx context.Context, payerID, creditorID string, paidAt time.Time) (*models.Settlement, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT sp.id, sp.amount
		 FROM expense_splits sp
		 JOIN expenses e ON e.id = sp.expense_id
		 WHERE sp.member_id = ? AND e.creator_id = ? AND sp.status = ?`,
		payerID, creditorID, string(models.SplitPending),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to select pending splits: %w", err)
	}

	var splitIDs []string
	total := decimal.Zero
	for rows.Next() {
		var id, amount string
		if err := rows.Scan(&id, &amount); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan pending split: %w", err)
		}
		amt, err := decodeAmount(amount)
		if err != nil {
			rows.Close()
			return nil, err
		}
		splitIDs = append(splitIDs, id)
		total = total.Add(amt)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pending splits: %w", err)
	}

	settlement := &models.Settlement{
		PayerID:       payerID,
		CreditorID:    creditorID,
		Amount:        total,
		SplitsCleared: len(splitIDs),
		CreatedAt:     paidAt.UTC(),
	}

	if len(splitIDs) == 0 {
		return settlement, nil
	}

	for _, id := range splitIDs {
		if _, err := tx.ExecContext(ctx,
			"UPDATE expense_splits SET status = ?, paid_at = ? WHERE id = ? AND status = ?",
			string(models.SplitPaid), encodeTime(paidAt), id, string(models.SplitPending),
		); err != nil {
			return nil, fmt.Errorf("failed to mark split paid: %w", err)
		}
	}

	settlement.ID = uuid.New().String()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO settlements (id, payer_id, creditor_id, amount, splits_cleared, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		settlement.ID, settlement.PayerID, settlement.CreditorID,
		encodeAmount(settlement.Amount), settlement.SplitsCleared, encodeTime(settlement.CreatedAt),
	); err != nil {
		return nil, fmt.Errorf("failed to insert settlement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return settlement, nil
}

const settlementColumns = "id, payer_id, creditor_id, amount, splits_cleared, created_at"

func (s *SQLiteStore) listSettlements(ctx context.Context, query string, args ...any) ([]*models.Settlement, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*models.Settlement
	for rows.Next() {
		st := &models.Settlement{}
		var amount string
		var createdAt int64
		if err := rows.Scan(&st.ID, &st.PayerID, &st.CreditorID, &amount, &st.SplitsCleared, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		amt, err := decodeAmount(amount)
		if err != nil {
			return nil, err
		}
		st.Amount = amt
		st.CreatedAt = decodeTime(createdAt)
		settlements = append(settlements, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}

	return settlements, nil
}

// ListSettlementsForUser returns settlements involving the user on
// either side, most recent first.
func (s *SQLiteStore) ListSettlementsForUser(ctx context.Context, userID string) ([]*models.Settlement, error) {
	return s.listSettlements(ctx,
		"SELECT "+settlementColumns+" FROM settlements WHERE payer_id = ? OR creditor_id = ? ORDER BY created_at DESC, id",
		userID, userID,
	)
}

// ListSettlementsBetween returns settlements from payer to creditor,
// most recent first.
func (s *SQLiteStore) ListSettlementsBetween(ctx context.Context, payerID, creditorID string) ([]*models.Settlement, error) {
	return s.listSettlements(ctx,
		"SELECT "+settlementColumns+" FROM settlements WHERE payer_id = ? AND creditor_id = ? ORDER BY created_at DESC, id",
		payerID, creditorID,
	)
}
