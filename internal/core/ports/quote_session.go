package ports

import (
	"time"

	"freightquote/internal/core/domain/model/address"
	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/core/domain/model/quote"
)

// Selection is the quote-and-address context carried across the page
// transition from quote results to checkout. It holds exactly one quote's
// worth of state.
type Selection struct {
	QuoteRequestID     kernel.UUID
	Quote              *quote.Quote
	OriginAddress      address.Address
	DestinationAddress address.Address
	StoredAt           time.Time
}

// QuoteSessionStore is the ephemeral per-session slot for a selected quote.
//
// The slot is consume-once: Put overwrites whatever was there, Take removes
// the selection as it reads it, so a stale quote can never resurface after
// back-navigation. Entries that are never taken are evicted by age via
// Sweep.
type QuoteSessionStore interface {
	// Put stores the selection for a session, replacing any previous one.
	Put(sessionID string, selection Selection)

	// Take returns the session's selection and clears the slot. The second
	// return is false when the slot is empty.
	Take(sessionID string) (Selection, bool)

	// Sweep evicts selections stored longer ago than maxAge and returns
	// how many were removed.
	Sweep(maxAge time.Duration) int
}
