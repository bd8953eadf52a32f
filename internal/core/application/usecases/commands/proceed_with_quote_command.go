package commands

import (
	"errors"

	"freightquote/internal/pkg/errs"
	"freightquote/internal/pkg/guard"
)

// ErrProceedWithQuoteCommandIsNotConstructed is returned when the command
// was not created via its constructor.
var ErrProceedWithQuoteCommandIsNotConstructed = errors.New(
	"ProceedWithQuoteCommand must be created via NewProceedWithQuoteCommand constructor",
)

// ProceedWithQuoteCommand converts the session's selected quote into a
// shipment. The selection itself lives in the session slot; the command only
// names the session.
type ProceedWithQuoteCommand struct { //nolint:recvcheck //using for validation
	sessionID string

	guard guard.ConstructorGuard
}

// NewProceedWithQuoteCommand creates a command to convert the selected
// quote of the given session.
func NewProceedWithQuoteCommand(sessionID string) (ProceedWithQuoteCommand, error) {
	if sessionID == "" {
		return ProceedWithQuoteCommand{}, errs.NewValueIsRequiredError("session ID")
	}

	return ProceedWithQuoteCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProceedWithQuoteCommand) Validate() error {
	return c.guard.Validate(ErrProceedWithQuoteCommandIsNotConstructed)
}

// SessionID returns the session whose selection is converted.
func (c ProceedWithQuoteCommand) SessionID() string {
	return c.sessionID
}
