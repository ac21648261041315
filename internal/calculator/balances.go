// Package calculator holds the pure balance math: collapsing pending
// obligations into one net number per counterparty.
package calculator

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Obligation is one pending split seen from the ledger: Debtor owes
// Creditor the amount.
type Obligation struct {
	DebtorID   string
	CreditorID string
	Amount     decimal.Decimal
}

// CounterpartyBalance is the absolute amount outstanding against one
// counterparty after netting.
type CounterpartyBalance struct {
	CounterpartyID string
	Amount         decimal.Decimal
}

// BalanceSheet is the net position of one user against everyone they
// have pending obligations with.
type BalanceSheet struct {
	// Owes lists counterparties the user owes money to, with positive
	// amounts.
	Owes []CounterpartyBalance

	// Owed lists counterparties that owe the user, with positive
	// amounts.
	Owed []CounterpartyBalance

	// NetBalance is the signed sum across all counterparties: positive
	// means the user is owed more than they owe overall.
	NetBalance decimal.Decimal
}

// NetBalances nets all pending obligations touching userID into one
// signed number per counterparty.
//
// Each obligation where the user is the debtor subtracts from that
// creditor's entry; each where the user is the creditor adds to that
// debtor's entry. Both directions land in the same map entry, so
// mutual debts between the same two users collapse to a single
// settleable number instead of two conflicting ones. Zero nets are
// dropped. Obligations not involving the user, and self-obligations
// (debtor == creditor), are ignored.
//
// Counterparty lists come back sorted by counterparty ID so callers
// get a stable order.
func NetBalances(userID string, obligations []Obligation) BalanceSheet {
	net := make(map[string]decimal.Decimal)

	for _, ob := range obligations {
		if ob.DebtorID == ob.CreditorID {
			continue
		}
		switch userID {
		case ob.DebtorID:
			net[ob.CreditorID] = net[ob.CreditorID].Sub(ob.Amount)
		case ob.CreditorID:
			net[ob.DebtorID] = net[ob.DebtorID].Add(ob.Amount)
		}
	}

	sheet := BalanceSheet{NetBalance: decimal.Zero}
	for counterparty, amount := range net {
		sheet.NetBalance = sheet.NetBalance.Add(amount)
		switch amount.Sign() {
		case -1:
			sheet.Owes = append(sheet.Owes, CounterpartyBalance{CounterpartyID: counterparty, Amount: amount.Neg()})
		case 1:
			sheet.Owed = append(sheet.Owed, CounterpartyBalance{CounterpartyID: counterparty, Amount: amount})
		}
	}

	sortByCounterparty(sheet.Owes)
	sortByCounterparty(sheet.Owed)
	return sheet
}

func sortByCounterparty(balances []CounterpartyBalance) {
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].CounterpartyID < balances[j].CounterpartyID
	})
}
