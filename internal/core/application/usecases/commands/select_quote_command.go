package commands

import (
	"errors"

	"freightquote/internal/core/domain/model/address"
	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/core/domain/model/quote"
	"freightquote/internal/pkg/errs"
	"freightquote/internal/pkg/guard"
)

// ErrSelectQuoteCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrSelectQuoteCommandIsNotConstructed = errors.New(
	"SelectQuoteCommand must be created via NewSelectQuoteCommand constructor",
)

// SelectQuoteCommand records the user's choice of one quote, carrying it and
// the reconciled addresses to the checkout step.
type SelectQuoteCommand struct { //nolint:recvcheck //using for validation
	sessionID          string
	quoteRequestID     kernel.UUID
	selected           *quote.Quote
	originAddress      address.Address
	destinationAddress address.Address

	guard guard.ConstructorGuard
}

// NewSelectQuoteCommand creates a command to select a quote for checkout.
func NewSelectQuoteCommand(
	sessionID string,
	quoteRequestID kernel.UUID,
	selected *quote.Quote,
	originAddress, destinationAddress address.Address,
) (SelectQuoteCommand, error) {
	cmd := SelectQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setQuoteRequestID(quoteRequestID),
		cmd.setSelected(selected),
	); err != nil {
		return SelectQuoteCommand{}, err
	}

	cmd.originAddress = originAddress
	cmd.destinationAddress = destinationAddress

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectQuoteCommand) Validate() error {
	return c.guard.Validate(ErrSelectQuoteCommandIsNotConstructed)
}

func (c SelectQuoteCommand) SessionID() string                   { return c.sessionID }
func (c SelectQuoteCommand) QuoteRequestID() kernel.UUID         { return c.quoteRequestID }
func (c SelectQuoteCommand) Selected() *quote.Quote              { return c.selected }
func (c SelectQuoteCommand) OriginAddress() address.Address      { return c.originAddress }
func (c SelectQuoteCommand) DestinationAddress() address.Address { return c.destinationAddress }

func (c *SelectQuoteCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("session ID")
	}
	c.sessionID = sessionID
	return nil
}

func (c *SelectQuoteCommand) setQuoteRequestID(quoteRequestID kernel.UUID) error {
	if err := quoteRequestID.Validate(); err != nil {
		return err
	}
	c.quoteRequestID = quoteRequestID
	return nil
}

func (c *SelectQuoteCommand) setSelected(selected *quote.Quote) error {
	if err := selected.Validate(); err != nil {
		return err
	}
	c.selected = selected
	return nil
}
