package address

import (
	"fmt"

	"freightquote/internal/pkg/errs"
)

// Decision records how a verification round for one address slot concluded.
type Decision int

const (
	// DecisionNone means no verification has happened for the current
	// address revision.
	DecisionNone Decision = iota

	// DecisionVerified means the validation service returned an address
	// identical to the user's input, or the service was unreachable and
	// the flow proceeded with the original address.
	DecisionVerified

	// DecisionAccepted means the service suggested corrections and the
	// user took them.
	DecisionAccepted

	// DecisionRejected means the user kept their own address over the
	// suggested corrections. A rejected slot is not re-verified until a
	// tracked field changes.
	DecisionRejected
)

func getDecisionStrings() map[Decision]string {
	return map[Decision]string{
		DecisionNone:     "none",
		DecisionVerified: "verified",
		DecisionAccepted: "accepted",
		DecisionRejected: "rejected",
	}
}

// String returns the wire name of the decision.
func (d Decision) String() string {
	if str, ok := getDecisionStrings()[d]; ok {
		return str
	}
	return "none"
}

// DecisionFromString parses the wire representation of a decision. An empty
// string maps to DecisionNone, matching callers that have never verified the
// address.
func DecisionFromString(s string) (Decision, error) {
	if s == "" {
		return DecisionNone, nil
	}
	for decision, str := range getDecisionStrings() {
		if str == s {
			return decision, nil
		}
	}
	return DecisionNone, errs.NewValueIsInvalidErrorWithCause(
		"verification decision",
		fmt.Errorf("%q is not a valid decision", s),
	)
}

// Validate checks if the Decision value is valid.
func (d Decision) Validate() error {
	if _, ok := getDecisionStrings()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"verification decision",
			fmt.Errorf("%d is not a valid decision", d),
		)
	}
	return nil
}

// State caches the verification outcome for one address slot. The zero value
// is an unverified slot. It is a value type: Edit and WithDecision return
// updated copies.
//
// The cache holds the decision for exactly one address revision. Editing any
// tracked field resets it to DecisionNone so the next quote attempt verifies
// again; editing contact fields keeps the decision, including a rejection.
type State struct {
	address  Address
	decision Decision
}

// NewState returns a verification state wrapping an address with no decision.
func NewState(a Address) State {
	return State{address: a}
}

// RestoreState rebuilds a slot from a previously recorded decision without
// replaying the round that produced it. Unlike WithDecision it never merges:
// the address is taken as the revision the decision was made for.
func RestoreState(a Address, decision Decision) (State, error) {
	if err := decision.Validate(); err != nil {
		return State{}, err
	}
	return State{address: a, decision: decision}, nil
}

// Address returns the current address revision.
func (s State) Address() Address {
	return s.address
}

// Decision returns the cached decision for the current revision.
func (s State) Decision() Decision {
	return s.decision
}

// NeedsVerification reports whether the next quote attempt should call the
// validation service for this slot. Any recorded decision, including a
// rejection, suppresses re-verification.
func (s State) NeedsVerification() bool {
	return s.decision == DecisionNone
}

// Edit replaces one field of the slot's address. When the field is tracked
// the cached decision is dropped, forcing re-verification of the new
// revision; contact-field edits keep it.
func (s State) Edit(field Field, value string) (State, error) {
	edited, err := s.address.With(field, value)
	if err != nil {
		return State{}, err
	}
	s.address = edited
	if field.IsTracked() {
		s.decision = DecisionNone
	}
	return s, nil
}

// WithDecision records the outcome of a verification round. Accepting a
// suggestion replaces the address with the merged suggestion (contact fields
// preserved); verifying or rejecting keeps the current revision.
func (s State) WithDecision(decision Decision, validated Address) (State, error) {
	if err := decision.Validate(); err != nil {
		return State{}, err
	}
	if decision == DecisionAccepted {
		s.address = Merge(s.address, validated)
	}
	s.decision = decision
	return s, nil
}
