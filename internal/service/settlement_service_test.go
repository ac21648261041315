package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Felypee/monedita-backend-sub001/internal/models"
)

func TestSettleDebt(t *testing.T) {
	ctx := context.Background()

	t.Run("settling twice yields X then zero", func(t *testing.T) {
		store := setupStore(t)
		settlements := NewSettlementService(store)
		expenses := NewExpenseService(store)

		expense := recordExpenseWithSplits(t, store, "alice", "", "70", map[string]string{"bob": "40", "carol": "30"})

		cleared, err := settlements.SettleDebt(ctx, "bob", "alice")
		if err != nil {
			t.Fatalf("SettleDebt failed: %v", err)
		}
		if !cleared.Equal(amt(t, "40")) {
			t.Errorf("cleared: expected 40, got %s", cleared)
		}

		splitsAfterFirst, err := expenses.GetSplitsForMember(ctx, "bob", models.SplitPaid)
		if err != nil {
			t.Fatalf("GetSplitsForMember failed: %v", err)
		}

		cleared, err = settlements.SettleDebt(ctx, "bob", "alice")
		if err != nil {
			t.Fatalf("second SettleDebt failed: %v", err)
		}
		if !cleared.IsZero() {
			t.Errorf("second clear: expected 0, got %s", cleared)
		}

		splitsAfterSecond, err := expenses.GetSplitsForMember(ctx, "bob", models.SplitPaid)
		if err != nil {
			t.Fatalf("GetSplitsForMember failed: %v", err)
		}
		if len(splitsAfterFirst) != len(splitsAfterSecond) {
			t.Errorf("paid-split set changed on retry: %d vs %d", len(splitsAfterFirst), len(splitsAfterSecond))
		}

		// Carol's debt on the same expense is untouched.
		pending, err := expenses.GetSplitsForExpense(ctx, expense.ID)
		if err != nil {
			t.Fatalf("GetSplitsForExpense failed: %v", err)
		}
		for _, sp := range pending {
			if sp.MemberID == "carol" && sp.Status != models.SplitPending {
				t.Errorf("carol's split should stay pending, got %s", sp.Status)
			}
		}
	})

	t.Run("clears only one direction", func(t *testing.T) {
		store := setupStore(t)
		settlements := NewSettlementService(store)
		balances := NewBalanceService(store)

		recordExpenseWithSplits(t, store, "alice", "", "100", map[string]string{"bob": "100"})
		recordExpenseWithSplits(t, store, "bob", "", "40", map[string]string{"alice": "40"})

		cleared, err := settlements.SettleDebt(ctx, "bob", "alice")
		if err != nil {
			t.Fatalf("SettleDebt failed: %v", err)
		}
		if !cleared.Equal(amt(t, "100")) {
			t.Errorf("cleared: expected the full 100, not the 60 net; got %s", cleared)
		}

		// Alice still owes bob 40 until the reverse call.
		sheet, err := balances.CalculateBalances(ctx, "alice")
		if err != nil {
			t.Fatalf("CalculateBalances failed: %v", err)
		}
		if len(sheet.Owes) != 1 || !sheet.Owes[0].Amount.Equal(amt(t, "40")) {
			t.Errorf("expected alice to still owe 40, got %+v", sheet.Owes)
		}

		cleared, err = settlements.SettleDebt(ctx, "alice", "bob")
		if err != nil {
			t.Fatalf("reverse SettleDebt failed: %v", err)
		}
		if !cleared.Equal(amt(t, "40")) {
			t.Errorf("reverse cleared: expected 40, got %s", cleared)
		}
	})

	t.Run("nothing pending is a normal zero", func(t *testing.T) {
		store := setupStore(t)
		settlements := NewSettlementService(store)

		cleared, err := settlements.SettleDebt(ctx, "bob", "alice")
		if err != nil {
			t.Fatalf("SettleDebt failed: %v", err)
		}
		if !cleared.IsZero() {
			t.Errorf("expected 0, got %s", cleared)
		}

		history, err := settlements.ListSettlementsForUser(ctx, "bob")
		if err != nil {
			t.Fatalf("ListSettlementsForUser failed: %v", err)
		}
		if len(history) != 0 {
			t.Errorf("expected no settlement rows for a zero result, got %d", len(history))
		}
	})

	t.Run("validates the pair", func(t *testing.T) {
		store := setupStore(t)
		settlements := NewSettlementService(store)

		if _, err := settlements.SettleDebt(ctx, "alice", "alice"); !errors.Is(err, ErrSelfSettlement) {
			t.Errorf("expected ErrSelfSettlement, got %v", err)
		}
		if _, err := settlements.SettleDebt(ctx, "", "alice"); !errors.Is(err, ErrEmptyUserID) {
			t.Errorf("expected ErrEmptyUserID, got %v", err)
		}
	})

	t.Run("records history", func(t *testing.T) {
		store := setupStore(t)
		settlements := NewSettlementService(store)

		recordExpenseWithSplits(t, store, "alice", "", "25", map[string]string{"bob": "25"})
		if _, err := settlements.SettleDebt(ctx, "bob", "alice"); err != nil {
			t.Fatalf("SettleDebt failed: %v", err)
		}

		history, err := settlements.ListSettlementsBetween(ctx, "bob", "alice")
		if err != nil {
			t.Fatalf("ListSettlementsBetween failed: %v", err)
		}
		if len(history) != 1 {
			t.Fatalf("expected 1 settlement, got %d", len(history))
		}
		if history[0].PayerID != "bob" || history[0].CreditorID != "alice" {
			t.Errorf("unexpected parties: %+v", history[0])
		}
		if !history[0].Amount.Equal(amt(t, "25")) || history[0].SplitsCleared != 1 {
			t.Errorf("unexpected batch: amount=%s cleared=%d", history[0].Amount, history[0].SplitsCleared)
		}
	})
}

// TestTripScenario walks the full flow: group, members, expense with
// splits, balances before and after one member settles up.
func TestTripScenario(t *testing.T) {
	store := setupStore(t)
	groups := NewGroupService(store)
	balances := NewBalanceService(store)
	settlements := NewSettlementService(store)
	ctx := context.Background()

	group, err := groups.CreateGroup(ctx, "A", "Trip")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	for _, u := range []string{"B", "C"} {
		if err := groups.AddMember(ctx, group.ID, u, ""); err != nil {
			t.Fatalf("AddMember(%s) failed: %v", u, err)
		}
	}

	recordExpenseWithSplits(t, store, "A", group.ID, "90", map[string]string{"B": "30", "C": "30"})

	sheet, err := balances.CalculateBalances(ctx, "A")
	if err != nil {
		t.Fatalf("CalculateBalances failed: %v", err)
	}
	if len(sheet.Owed) != 2 {
		t.Fatalf("expected A to be owed by B and C, got %+v", sheet.Owed)
	}
	for _, cb := range sheet.Owed {
		if !cb.Amount.Equal(amt(t, "30")) {
			t.Errorf("%s: expected 30, got %s", cb.CounterpartyID, cb.Amount)
		}
	}
	if !sheet.NetBalance.Equal(amt(t, "60")) {
		t.Errorf("net: expected 60, got %s", sheet.NetBalance)
	}

	cleared, err := settlements.SettleDebt(ctx, "B", "A")
	if err != nil {
		t.Fatalf("SettleDebt failed: %v", err)
	}
	if !cleared.Equal(amt(t, "30")) {
		t.Errorf("cleared: expected 30, got %s", cleared)
	}

	sheet, err = balances.CalculateBalances(ctx, "A")
	if err != nil {
		t.Fatalf("CalculateBalances failed: %v", err)
	}
	if len(sheet.Owed) != 1 || sheet.Owed[0].CounterpartyID != "C" || !sheet.Owed[0].Amount.Equal(amt(t, "30")) {
		t.Errorf("expected only C owing 30, got %+v", sheet.Owed)
	}
	if !sheet.NetBalance.Equal(amt(t, "30")) {
		t.Errorf("net after settlement: expected 30, got %s", sheet.NetBalance)
	}
}
