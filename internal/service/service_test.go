package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Felypee/monedita-backend-sub001/internal/models"
	"github.com/Felypee/monedita-backend-sub001/internal/storage"
	"github.com/Felypee/monedita-backend-sub001/internal/storage/sqlite"
)

// setupStore creates a temp-file SQLite store that lives for one test.
func setupStore(t *testing.T) storage.Store {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func amt(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad amount %q: %v", s, err)
	}
	return d
}

// recordExpenseWithSplits is shared scaffolding: creator pays amount,
// each (member, share) pair gets a pending split.
func recordExpenseWithSplits(t *testing.T, store storage.Store, creatorID, groupID, amount string, shares map[string]string) *models.SharedExpense {
	t.Helper()

	expenses := NewExpenseService(store)
	expense, err := expenses.RecordExpense(context.Background(), creatorID, ExpenseInput{
		GroupID:   groupID,
		Amount:    amt(t, amount),
		Category:  "food",
		SplitType: models.SplitTypeEqual,
	})
	if err != nil {
		t.Fatalf("RecordExpense failed: %v", err)
	}

	inputs := make([]SplitInput, 0, len(shares))
	for member, share := range shares {
		inputs = append(inputs, SplitInput{MemberID: member, Amount: amt(t, share)})
	}
	if _, err := expenses.CreateSplits(context.Background(), expense.ID, inputs); err != nil {
		t.Fatalf("CreateSplits failed: %v", err)
	}
	return expense
}
