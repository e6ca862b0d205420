package port

import "errors"

var (
	// ErrNotFound is returned when a referenced campaign or brand does not
	// exist. It is surfaced to the caller and never retried.
	ErrNotFound = errors.New("not found")

	// ErrInvalidAmount is returned for negative spend amounts and for
	// amounts with more fractional digits than the ledger stores.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrStoreContention marks a concurrent-write conflict on a record
	// (serialization failure, deadlock, lock timeout). Use cases retry it
	// with bounded backoff before giving up.
	ErrStoreContention = errors.New("store contention")

	// ErrStoreUnavailable marks a transient storage failure. It is not
	// retried in-process; the next scheduled run recomputes state.
	ErrStoreUnavailable = errors.New("store unavailable")
)
