package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SplitType is a stored hint describing how an expense's amount was
// divided into per-member shares. The division itself happens upstream;
// this engine stores the hint verbatim and never recomputes shares.
type SplitType string

const (
	SplitTypeEqual      SplitType = "equal"
	SplitTypeExact      SplitType = "exact"
	SplitTypePercentage SplitType = "percentage"
)

// SharedExpense is a payment made by one user (the creator) that other
// users owe shares of.
type SharedExpense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID ties the expense to a group. Empty for ad hoc splits
	// recorded outside any group.
	GroupID string

	// CreatorID is the user who paid. Everyone holding a pending split
	// on this expense owes the creator.
	CreatorID string

	// Amount is the full amount paid by the creator. Always positive.
	Amount decimal.Decimal

	// Category and Description come from upstream extraction and are
	// stored as-is; the engine does not validate the category taxonomy.
	Category    string
	Description string

	// SplitType records how the amount was divided. Informational only.
	SplitType SplitType

	CreatedAt time.Time
	UpdatedAt time.Time
}
