package ledger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Felypee/monedita-backend-sub001/internal/config"
	"github.com/Felypee/monedita-backend-sub001/internal/models"
	"github.com/Felypee/monedita-backend-sub001/internal/service"
)

func TestEngine(t *testing.T) {
	engine, err := Open(config.Config{
		DBPath:   filepath.Join(t.TempDir(), "ledger.db"),
		LogLevel: "error",
	})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer engine.Close()

	ctx := context.Background()

	group, err := engine.Groups.CreateGroup(ctx, "ana", "Flat 12")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if err := engine.Groups.AddMember(ctx, group.ID, "luis", ""); err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}

	expense, err := engine.Expenses.RecordExpense(ctx, "ana", service.ExpenseInput{
		GroupID:     group.ID,
		Amount:      decimal.NewFromInt(80),
		Category:    "utilities",
		Description: "electricity",
		SplitType:   models.SplitTypeEqual,
	})
	if err != nil {
		t.Fatalf("RecordExpense failed: %v", err)
	}
	if _, err := engine.Expenses.CreateSplits(ctx, expense.ID, []service.SplitInput{
		{MemberID: "luis", Amount: decimal.NewFromInt(40)},
	}); err != nil {
		t.Fatalf("CreateSplits failed: %v", err)
	}

	sheet, err := engine.Balances.CalculateBalances(ctx, "luis")
	if err != nil {
		t.Fatalf("CalculateBalances failed: %v", err)
	}
	if len(sheet.Owes) != 1 || !sheet.Owes[0].Amount.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected luis to owe 40, got %+v", sheet.Owes)
	}

	cleared, err := engine.Settlements.SettleDebt(ctx, "luis", "ana")
	if err != nil {
		t.Fatalf("SettleDebt failed: %v", err)
	}
	if !cleared.Equal(decimal.NewFromInt(40)) {
		t.Errorf("cleared: expected 40, got %s", cleared)
	}
}

func TestOpenFromEnv(t *testing.T) {
	t.Setenv("LEDGER_DB_PATH", filepath.Join(t.TempDir(), "env.db"))
	t.Setenv("LOG_LEVEL", "error")

	engine, err := OpenFromEnv()
	if err != nil {
		t.Fatalf("OpenFromEnv failed: %v", err)
	}
	defer engine.Close()

	if _, err := engine.Groups.CreateGroup(context.Background(), "ana", "Env"); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
}
