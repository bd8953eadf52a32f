package shipment

import (
	"fmt"

	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/pkg/errs"
)

// Outcome is the three-way result of a conversion attempt.
type Outcome int

const (
	// OutcomeCreated means a new shipment was created; the caller proceeds
	// to payment.
	OutcomeCreated Outcome = iota + 1

	// OutcomeAlreadyConverted means the quote request had already been
	// converted. Whether payment completed decides where the caller is
	// redirected.
	OutcomeAlreadyConverted

	// OutcomeRejected means conversion failed terminally with no shipment
	// involved.
	OutcomeRejected
)

func getOutcomeStrings() map[Outcome]string {
	return map[Outcome]string{
		OutcomeCreated:          "created",
		OutcomeAlreadyConverted: "already_converted",
		OutcomeRejected:         "rejected",
	}
}

// String returns the wire name of the outcome.
func (o Outcome) String() string {
	if str, ok := getOutcomeStrings()[o]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Outcome value is valid.
func (o Outcome) Validate() error {
	if _, ok := getOutcomeStrings()[o]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"conversion outcome",
			fmt.Errorf("%d is not a valid outcome", o),
		)
	}
	return nil
}

// Redirect targets after a conversion resolves. An unpaid duplicate goes
// back to payment; a paid one goes to tracking.
const (
	PaymentPathPrefix  = "/payment/"
	TrackingPathPrefix = "/shipments/"
)

// ConversionResult is the normalized outcome of one conversion attempt. The
// already-converted race is a first-class successful branch here, never an
// error: it carries the existing shipment's ID, payment state and redirect.
type ConversionResult struct {
	Outcome    Outcome
	ShipmentID kernel.UUID
	IsPaid     bool
	Redirect   string
	Reason     string
}

// NewCreatedResult builds the result for a freshly converted shipment.
func NewCreatedResult(shipmentID kernel.UUID) ConversionResult {
	return ConversionResult{
		Outcome:    OutcomeCreated,
		ShipmentID: shipmentID,
		Redirect:   PaymentPathPrefix + shipmentID.String(),
	}
}

// NewAlreadyConvertedResult builds the result for a duplicate conversion.
// Unpaid duplicates redirect to payment so the user can finish checkout;
// paid ones redirect to tracking.
func NewAlreadyConvertedResult(shipmentID kernel.UUID, isPaid bool) ConversionResult {
	redirect := PaymentPathPrefix + shipmentID.String()
	if isPaid {
		redirect = TrackingPathPrefix + shipmentID.String()
	}
	return ConversionResult{
		Outcome:    OutcomeAlreadyConverted,
		ShipmentID: shipmentID,
		IsPaid:     isPaid,
		Redirect:   redirect,
	}
}

// NewRejectedResult builds the result for a terminal conversion failure.
func NewRejectedResult(reason string) ConversionResult {
	return ConversionResult{
		Outcome: OutcomeRejected,
		Reason:  reason,
	}
}
