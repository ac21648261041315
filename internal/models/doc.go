// Package models defines the core domain entities for the shared-expense
// ledger.
//
// # Entities
//
//   - Group: a named pool of people who split expenses together
//   - Membership: one user's place in a group's roster (with a role)
//   - SharedExpense: a payment made by one user on behalf of others
//   - ExpenseSplit: one member's share of a shared expense
//   - Settlement: a record of a payer clearing their pending splits
//     toward one creditor
//
// # Ownership
//
// A Group owns its Memberships; a SharedExpense owns its ExpenseSplits.
// Deleting a group removes its roster, expenses, and their splits.
// Deleting an expense removes its splits. No entity has more than one
// owning parent.
//
// # Conventions
//
//  1. IDs are opaque strings (UUID format), generated by the store.
//  2. Monetary amounts are decimal.Decimal, currency-agnostic. The caller
//     decides the currency; this engine never formats or converts.
//  3. User identifiers are opaque strings supplied by the caller. There is
//     no user table here; identity lives upstream.
//  4. Relationships use ID strings instead of pointers to avoid circular
//     references.
package models
