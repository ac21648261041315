package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settlement records one debt-clearing action: a payer marking every
// pending split they owed one creditor as paid, in a single batch.
// Settlements are history only; balances are derived from split status,
// not from this table.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// PayerID is the user who owed money and settled up.
	PayerID string

	// CreditorID is the user who was owed and got paid.
	CreditorID string

	// Amount is the sum of the split amounts cleared by this settlement.
	Amount decimal.Decimal

	// SplitsCleared is how many pending splits the batch transitioned
	// to paid.
	SplitsCleared int

	// CreatedAt is when the settlement was recorded; it equals the
	// PaidAt stamped on every split in the batch.
	CreatedAt time.Time
}
