package commands

import (
	"errors"

	"freightquote/internal/core/domain/model/address"
	"freightquote/internal/pkg/guard"
)

// ErrVerifyAddressCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrVerifyAddressCommandIsNotConstructed = errors.New(
	"VerifyAddressCommand must be created via NewVerifyAddressCommand constructor",
)

// VerifyAddressCommand requests reconciliation of one address slot against
// the carrier platform's validation service.
//
// A partially filled address is a legal input: the handler skips
// verification for it rather than rejecting the command, because an
// incomplete address simply has nothing to verify yet. The slot's recorded
// decision travels with the command so an already decided revision,
// including a rejected one, is not verified again.
type VerifyAddressCommand struct { //nolint:recvcheck //using for validation
	state address.State

	guard guard.ConstructorGuard
}

// NewVerifyAddressCommand creates a command to verify the given address slot.
func NewVerifyAddressCommand(state address.State) (VerifyAddressCommand, error) {
	return VerifyAddressCommand{
		state: state,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyAddressCommand) Validate() error {
	return c.guard.Validate(ErrVerifyAddressCommandIsNotConstructed)
}

// State returns the address slot to verify.
func (c VerifyAddressCommand) State() address.State {
	return c.state
}

// Address returns the slot's current address revision.
func (c VerifyAddressCommand) Address() address.Address {
	return c.state.Address()
}
