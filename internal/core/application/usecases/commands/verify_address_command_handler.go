package commands

import (
	"context"
	"log/slog"

	"freightquote/internal/core/domain/model/address"
	"freightquote/internal/core/ports"
)

// VerificationStatus tells the caller how an address verification round
// ended.
type VerificationStatus int

const (
	// VerificationSkipped means no verification happened: the address was
	// materially incomplete, or the validation service failed and the flow
	// proceeds with the original address.
	VerificationSkipped VerificationStatus = iota + 1

	// VerificationVerified means the service confirmed the address with no
	// corrections.
	VerificationVerified

	// VerificationNeedsConfirmation means the service corrected at least
	// one of the diffed fields; the caller must present both versions and
	// block until the user accepts or rejects the correction.
	VerificationNeedsConfirmation
)

// AddressVerification is the outcome of one verify call. Original is always
// the submitted address; Validated is set for Verified and
// NeedsConfirmation.
type AddressVerification struct {
	Status    VerificationStatus
	Original  address.Address
	Validated address.Address
}

// VerifyAddressCommandHandler reconciles addresses with the external
// validation service.
//
// The handler fails open: a validation-service outage must never block a
// quote submission, so port failures are logged and reported as Skipped.
type VerifyAddressCommandHandler struct {
	validationPort ports.ValidationPort
	logger         *slog.Logger
}

// NewVerifyAddressCommandHandler creates a handler for address verification.
func NewVerifyAddressCommandHandler(
	validationPort ports.ValidationPort,
	logger *slog.Logger,
) VerifyAddressCommandHandler {
	return VerifyAddressCommandHandler{
		validationPort: validationPort,
		logger:         logger,
	}
}

// Handle verifies one address slot.
//
// A slot whose current revision already carries a decision is skipped
// without a port call; a rejection counts as a decision, so the user is not
// re-asked about corrections they turned down until a tracked field changes.
// Incomplete addresses (missing street, city, postal code or country) are
// also skipped. Otherwise the validation service is asked for a normalized
// version, which is diffed against the input on street address, city, postal
// code and state/province. Any difference demands user confirmation; none
// means the address is verified as entered.
func (h *VerifyAddressCommandHandler) Handle(
	ctx context.Context,
	cmd VerifyAddressCommand,
) (AddressVerification, error) {
	if err := cmd.Validate(); err != nil {
		return AddressVerification{}, err
	}

	state := cmd.State()
	original := state.Address()
	if !state.NeedsVerification() {
		return AddressVerification{Status: VerificationSkipped, Original: original}, nil
	}
	if !original.IsMateriallyComplete() {
		return AddressVerification{Status: VerificationSkipped, Original: original}, nil
	}

	result, err := h.validationPort.ValidateAddress(ctx, original)
	if err != nil {
		h.logger.WarnContext(ctx, "address validation failed, proceeding with original address",
			"error", err)
		return AddressVerification{Status: VerificationSkipped, Original: original}, nil
	}

	if !result.Success {
		return AddressVerification{Status: VerificationSkipped, Original: original}, nil
	}

	if address.Differs(original, result.Validated) {
		return AddressVerification{
			Status:    VerificationNeedsConfirmation,
			Original:  original,
			Validated: result.Validated,
		}, nil
	}

	return AddressVerification{
		Status:    VerificationVerified,
		Original:  original,
		Validated: result.Validated,
	}, nil
}
