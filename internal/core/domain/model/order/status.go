package order

import (
	"fmt"
	"strings"

	"coffeeshop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Paid ──> Preparing ──> Ready ──> Completed
//	   │         │           │           │
//	   └─────────┴───────────┴───────────┴──────> Cancelled
//
// Transition methods never fail. A transition requested from the wrong state
// leaves the status unchanged and reports false, so callers can tell an applied
// transition from a no-op.
type Status int

const (
	// Unknown (0) catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the status of a freshly constructed order awaiting payment.
	Pending

	// Paid means payment was captured and a payment id recorded.
	Paid

	// Preparing means a barista is making the order.
	Preparing

	// Ready means the order is waiting for pickup.
	Ready

	// Completed means the customer picked the order up. It is final.
	Completed

	// Cancelled is reachable from every status except Completed.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Paid:      "Paid",
		Preparing: "Preparing",
		Ready:     "Ready",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// Validate rejects Unknown and out-of-range values, such as those read from
// a corrupted store.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus is the inverse of String, case-insensitive. It never returns Unknown
// without an error.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// IsFinal reports whether no further transition can change s.
func (s Status) IsFinal() bool {
	return s == Completed || s == Cancelled
}

// ValidateCanHavePayment checks that a persisted status agrees with the
// presence of a payment id. Pending orders have none. Paid through Completed
// orders always have one. Cancelled orders may or may not.
func (s Status) ValidateCanHavePayment(hasPayment bool) error {
	if hasPayment && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a payment id", s),
		)
	}

	if !hasPayment && (s == Paid || s == Preparing || s == Ready || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no payment id", s),
		)
	}

	return nil
}

// Prepare moves Paid to Preparing. Any other status is returned unchanged with false.
func (s Status) Prepare() (Status, bool) {
	return s.advance(Paid, Preparing)
}

// MakeReady moves Preparing to Ready. Any other status is returned unchanged with false.
func (s Status) MakeReady() (Status, bool) {
	return s.advance(Preparing, Ready)
}

// Complete moves Ready to Completed. Any other status is returned unchanged with false.
func (s Status) Complete() (Status, bool) {
	return s.advance(Ready, Completed)
}

// Cancel moves every status except Completed to Cancelled. Completed is
// returned unchanged, and so is Cancelled; both report false.
func (s Status) Cancel() (Status, bool) {
	if s == Completed || s == Cancelled {
		return s, false
	}
	return Cancelled, true
}

func (s Status) advance(from, to Status) (Status, bool) {
	if s != from {
		return s, false
	}
	return to, true
}
