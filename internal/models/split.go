package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SplitStatus is the lifecycle state of an expense split.
type SplitStatus string

const (
	// SplitPending means the member still owes this share.
	SplitPending SplitStatus = "pending"

	// SplitPaid means the share has been settled. Paid splits are
	// excluded from balance computation; the transition is one-way.
	SplitPaid SplitStatus = "paid"
)

// Valid reports whether the status is one of the known states.
func (s SplitStatus) Valid() bool {
	return s == SplitPending || s == SplitPaid
}

// ExpenseSplit is one member's monetary obligation derived from a
// shared expense. Splits are created in bulk with their expense and
// afterward mutated only through the pending→paid transition, which is
// idempotent: marking a paid split paid again is a no-op.
type ExpenseSplit struct {
	// ID is the unique identifier for the split (UUID format).
	ID string

	// ExpenseID is the owning SharedExpense. Deleting the expense
	// deletes its splits.
	ExpenseID string

	// MemberID is the user who owes this share.
	MemberID string

	// Amount owed. Nonnegative; the engine does not require the splits
	// of an expense to sum to the expense amount.
	Amount decimal.Decimal

	Status SplitStatus

	// PaidAt is set when the split transitions to paid, nil before.
	PaidAt *time.Time

	CreatedAt time.Time
}

// PendingObligation is a pending split joined with its owning expense's
// creator. It is the raw input for balance computation and settlement:
// DebtorID owes CreditorID the amount.
type PendingObligation struct {
	SplitID    string
	ExpenseID  string
	DebtorID   string
	CreditorID string
	Amount     decimal.Decimal
}
