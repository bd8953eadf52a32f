package commands

import (
	"context"
	"time"

	"freightquote/internal/core/ports"
)

// SelectQuoteCommandHandler applies the selection guard and stores the
// chosen quote in the session slot for the checkout step.
//
// The guard runs here, before anything is stored: an unselectable quote
// must be rejected with zero network calls and must never reach the slot.
type SelectQuoteCommandHandler struct {
	sessionStore ports.QuoteSessionStore
	now          func() time.Time
}

// NewSelectQuoteCommandHandler creates a handler for quote selection.
func NewSelectQuoteCommandHandler(sessionStore ports.QuoteSessionStore) SelectQuoteCommandHandler {
	return SelectQuoteCommandHandler{
		sessionStore: sessionStore,
		now:          time.Now,
	}
}

// Handle validates the selection and overwrites the session slot with it.
// A previous unconsumed selection is replaced, never merged.
func (h *SelectQuoteCommandHandler) Handle(ctx context.Context, cmd SelectQuoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Selected().EnsureSelectable(); err != nil {
		return err
	}

	h.sessionStore.Put(cmd.SessionID(), ports.Selection{
		QuoteRequestID:     cmd.QuoteRequestID(),
		Quote:              cmd.Selected(),
		OriginAddress:      cmd.OriginAddress(),
		DestinationAddress: cmd.DestinationAddress(),
		StoredAt:           h.now(),
	})

	return nil
}
