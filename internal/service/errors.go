package service

import "errors"

// Validation errors: the caller supplied input the engine refuses to
// record. Checked with errors.Is.
var (
	ErrEmptyGroupName      = errors.New("group name must not be empty")
	ErrEmptyUserID         = errors.New("user id must not be empty")
	ErrInvalidRole         = errors.New("role must be owner or member")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrNegativeSplitAmount = errors.New("split amount must not be negative")
	ErrSelfSettlement      = errors.New("cannot settle a debt with yourself")
)

// Not-found errors, returned by mutations aimed at a missing record.
// Reads report a miss as a nil result instead, never as an error.
var (
	ErrGroupNotFound   = errors.New("group not found")
	ErrExpenseNotFound = errors.New("expense not found")
	ErrSplitNotFound   = errors.New("split not found")
)
