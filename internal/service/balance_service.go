package service

import (
	"context"
	"log/slog"

	"github.com/Felypee/monedita-backend-sub001/internal/calculator"
	"github.com/Felypee/monedita-backend-sub001/internal/storage"
)

// BalanceService derives net bilateral balances from pending splits.
// It is read-only: a stale snapshot under concurrent expense creation
// is acceptable, so no locking happens here.
type BalanceService struct {
	store storage.Store
}

// NewBalanceService creates a new BalanceService with the given storage
// backend.
func NewBalanceService(store storage.Store) *BalanceService {
	return &BalanceService{store: store}
}

// CalculateBalances nets every pending split touching the user into one
// signed number per counterparty. Debts the user owes and amounts owed
// to the user land in the same per-counterparty entry, so mutual
// obligations collapse to a single settleable figure.
func (s *BalanceService) CalculateBalances(ctx context.Context, userID string) (calculator.BalanceSheet, error) {
	if userID == "" {
		return calculator.BalanceSheet{}, ErrEmptyUserID
	}

	pending, err := s.store.ListPendingObligations(ctx, userID)
	if err != nil {
		slog.Error("CalculateBalances failed", "user_id", userID, "error", err)
		return calculator.BalanceSheet{}, err
	}

	obligations := make([]calculator.Obligation, len(pending))
	for i, ob := range pending {
		obligations[i] = calculator.Obligation{
			DebtorID:   ob.DebtorID,
			CreditorID: ob.CreditorID,
			Amount:     ob.Amount,
		}
	}

	sheet := calculator.NetBalances(userID, obligations)
	slog.Debug("Balances calculated",
		"user_id", userID,
		"pending_splits", len(pending),
		"owes_count", len(sheet.Owes),
		"owed_count", len(sheet.Owed),
		"net_balance", sheet.NetBalance,
	)
	return sheet, nil
}
