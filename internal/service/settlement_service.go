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

// SettlementService clears debts between pairs of users.
type SettlementService struct {
	store storage.Store
}

// NewSettlementService creates a new SettlementService with the given
// storage backend.
func NewSettlementService(store storage.Store) *SettlementService {
	return &SettlementService{store: store}
}

// SettleDebt clears the one-directional debt payer→creditor: every
// pending split the payer holds on the creditor's expenses is marked
// paid in one atomic batch, and the cleared sum is returned. Zero means
// nothing was pending, which is a normal result, not an error.
//
// Amounts the creditor owes the payer are deliberately left alone; the
// caller issues a second SettleDebt in the reverse direction to clear
// those. Concurrent calls for the same pair are safe: the pending→paid
// transition is idempotent, so overlapping batches never double-count.
func (s *SettlementService) SettleDebt(ctx context.Context, payerID, creditorID string) (decimal.Decimal, error) {
	if payerID == "" || creditorID == "" {
		return decimal.Zero, ErrEmptyUserID
	}
	if payerID == creditorID {
		return decimal.Zero, ErrSelfSettlement
	}

	settlement, err := s.store.SettlePending(ctx, payerID, creditorID, time.Now().UTC())
	if err != nil {
		slog.Error("SettleDebt failed", "payer_id", payerID, "creditor_id", creditorID, "error", err)
		return decimal.Zero, err
	}

	if settlement.SplitsCleared == 0 {
		slog.Info("SettleDebt found nothing pending", "payer_id", payerID, "creditor_id", creditorID)
		return decimal.Zero, nil
	}

	metrics.SettlementsCompleted.Inc()
	metrics.SettledAmount.Add(settlement.Amount.InexactFloat64())
	slog.Info("Debt settled",
		"settlement_id", settlement.ID,
		"payer_id", payerID,
		"creditor_id", creditorID,
		"amount", settlement.Amount,
		"splits_cleared", settlement.SplitsCleared,
	)
	return settlement.Amount, nil
}

// ListSettlementsForUser returns the user's settlement history, most
// recent first.
func (s *SettlementService) ListSettlementsForUser(ctx context.Context, userID string) ([]*models.Settlement, error) {
	return s.store.ListSettlementsForUser(ctx, userID)
}

// ListSettlementsBetween returns settlements from payer to creditor,
// most recent first.
func (s *SettlementService) ListSettlementsBetween(ctx context.Context, payerID, creditorID string) ([]*models.Settlement, error) {
	return s.store.ListSettlementsBetween(ctx, payerID, creditorID)
}
