package core

import "errors"

// Common billing errors.
var (
	// ErrOffline is returned when an operation that requires the remote
	// store is attempted while offline. Nothing is queued; the user retries
	// when connectivity returns.
	ErrOffline = errors.New("remote store unreachable while offline")

	// ErrNotFound is returned when a document id does not resolve to a row.
	ErrNotFound = errors.New("record not found")

	// ErrMissingCompany is returned when an invoice or receipt is saved
	// without a company reference.
	ErrMissingCompany = errors.New("company is required")

	// ErrMissingName is returned when a company is saved without a name.
	ErrMissingName = errors.New("company name is required")

	// ErrNoLineItems is returned when an invoice is saved with no lines.
	ErrNoLineItems = errors.New("invoice must have at least one line item")

	// ErrAmountNotPositive is returned when a receipt amount is zero or
	// negative.
	ErrAmountNotPositive = errors.New("receipt amount must be greater than zero")

	// ErrAmountExceedsOutstanding is returned when a receipt amount is
	// larger than the company's current outstanding balance. Enforced at
	// creation time only.
	ErrAmountExceedsOutstanding = errors.New("receipt amount exceeds outstanding balance")

	// ErrMissingItemName is returned when a price-list item is saved
	// without a name.
	ErrMissingItemName = errors.New("item name is required")

	// ErrNegativePrice is returned when a price-list item is saved with a
	// negative price.
	ErrNegativePrice = errors.New("price must not be negative")
)
