package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func amt(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNetBalances(t *testing.T) {
	tests := []struct {
		name        string
		userID      string
		obligations []Obligation
		wantOwes    []CounterpartyBalance
		wantOwed    []CounterpartyBalance
		wantNet     string
	}{
		{
			name:    "no obligations",
			userID:  "alice",
			wantNet: "0",
		},
		{
			name:   "single debt",
			userID: "bob",
			obligations: []Obligation{
				{DebtorID: "bob", CreditorID: "alice", Amount: amt("30")},
			},
			wantOwes: []CounterpartyBalance{{CounterpartyID: "alice", Amount: amt("30")}},
			wantNet:  "-30",
		},
		{
			name:   "bidirectional debts collapse to one entry",
			userID: "alice",
			obligations: []Obligation{
				{DebtorID: "bob", CreditorID: "alice", Amount: amt("100")},
				{DebtorID: "alice", CreditorID: "bob", Amount: amt("40")},
			},
			wantOwed: []CounterpartyBalance{{CounterpartyID: "bob", Amount: amt("60")}},
			wantNet:  "60",
		},
		{
			name:   "same netting from the other side is the exact negative",
			userID: "bob",
			obligations: []Obligation{
				{DebtorID: "bob", CreditorID: "alice", Amount: amt("100")},
				{DebtorID: "alice", CreditorID: "bob", Amount: amt("40")},
			},
			wantOwes: []CounterpartyBalance{{CounterpartyID: "alice", Amount: amt("60")}},
			wantNet:  "-60",
		},
		{
			name:   "counterparties stay independent",
			userID: "alice",
			obligations: []Obligation{
				{DebtorID: "bob", CreditorID: "alice", Amount: amt("30")},
				{DebtorID: "alice", CreditorID: "carol", Amount: amt("25.50")},
			},
			wantOwes: []CounterpartyBalance{{CounterpartyID: "carol", Amount: amt("25.50")}},
			wantOwed: []CounterpartyBalance{{CounterpartyID: "bob", Amount: amt("30")}},
			wantNet:  "4.50",
		},
		{
			name:   "exact cancellation drops the counterparty",
			userID: "alice",
			obligations: []Obligation{
				{DebtorID: "bob", CreditorID: "alice", Amount: amt("15")},
				{DebtorID: "alice", CreditorID: "bob", Amount: amt("15")},
			},
			wantNet: "0",
		},
		{
			name:   "obligations between other users are ignored",
			userID: "alice",
			obligations: []Obligation{
				{DebtorID: "bob", CreditorID: "carol", Amount: amt("99")},
				{DebtorID: "bob", CreditorID: "alice", Amount: amt("10")},
			},
			wantOwed: []CounterpartyBalance{{CounterpartyID: "bob", Amount: amt("10")}},
			wantNet:  "10",
		},
		{
			name:   "self obligations are ignored",
			userID: "alice",
			obligations: []Obligation{
				{DebtorID: "alice", CreditorID: "alice", Amount: amt("50")},
			},
			wantNet: "0",
		},
		{
			name:   "multiple splits against one counterparty accumulate",
			userID: "alice",
			obligations: []Obligation{
				{DebtorID: "bob", CreditorID: "alice", Amount: amt("10")},
				{DebtorID: "bob", CreditorID: "alice", Amount: amt("20")},
				{DebtorID: "bob", CreditorID: "alice", Amount: amt("0.25")},
			},
			wantOwed: []CounterpartyBalance{{CounterpartyID: "bob", Amount: amt("30.25")}},
			wantNet:  "30.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := NetBalances(tt.userID, tt.obligations)

			if !sheet.NetBalance.Equal(amt(tt.wantNet)) {
				t.Errorf("net balance: got %s, want %s", sheet.NetBalance, tt.wantNet)
			}
			assertBalances(t, "owes", sheet.Owes, tt.wantOwes)
			assertBalances(t, "owed", sheet.Owed, tt.wantOwed)
		})
	}
}

func assertBalances(t *testing.T, side string, got, want []CounterpartyBalance) {
	t.Helper()

	if len(got) != len(want) {
		t.Errorf("%s: got %d entries, want %d", side, len(got), len(want))
		return
	}
	for i := range want {
		if got[i].CounterpartyID != want[i].CounterpartyID {
			t.Errorf("%s[%d]: got counterparty %s, want %s", side, i, got[i].CounterpartyID, want[i].CounterpartyID)
		}
		if !got[i].Amount.Equal(want[i].Amount) {
			t.Errorf("%s[%d]: got amount %s, want %s", side, i, got[i].Amount, want[i].Amount)
		}
	}
}
