package payment

import (
	"strings"

	"github.com/shoplite/storefront/pkg/enums"
	pkgerrors "github.com/shoplite/storefront/pkg/errors"
)

// MinReferenceLength is the smallest accepted transaction reference for
// wallet methods.
const MinReferenceLength = 5

// State is the payment step's lifecycle position.
type State string

const (
	// StateSelecting means no method is chosen yet; submission disabled.
	StateSelecting State = "selecting"
	// StateMethodChosen means a method is chosen; submission is gated on
	// the transaction reference where the method requires one.
	StateMethodChosen State = "method_chosen"
	// StateSubmitting means a submission is in flight; inputs disabled.
	StateSubmitting State = "submitting"
	// StateResolved is terminal; the outcome moved to confirmation.
	StateResolved State = "resolved"
)

// Selector tracks the payment choice for one checkout session.
type Selector struct {
	state     State
	method    enums.PaymentMethod
	reference string
}

func NewSelector() *Selector {
	return &Selector{state: StateSelecting}
}

func (s *Selector) State() State {
	return s.state
}

func (s *Selector) Method() enums.PaymentMethod {
	return s.method
}

func (s *Selector) Reference() string {
	return s.reference
}

// ChooseMethod picks a payment method. Allowed while selecting or when
// re-choosing after a failed submission.
func (s *Selector) ChooseMethod(method enums.PaymentMethod) error {
	if s.state == StateSubmitting || s.state == StateResolved {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "payment method is locked")
	}
	if !method.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown payment method")
	}
	s.method = method
	s.state = StateMethodChosen
	return nil
}

// SetReference records the manually entered transaction reference.
func (s *Selector) SetReference(reference string) error {
	if s.state == StateSubmitting || s.state == StateResolved {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "transaction reference is locked")
	}
	s.reference = strings.TrimSpace(reference)
	return nil
}

// CanSubmit reports whether submission is enabled: a method must be
// chosen, and wallet methods additionally need a reference of at least
// MinReferenceLength characters. Cash on delivery submits immediately.
func (s *Selector) CanSubmit() bool {
	if s.state != StateMethodChosen {
		return false
	}
	if !s.method.RequiresReference() {
		return true
	}
	return len(s.reference) >= MinReferenceLength
}

// Reset returns the selector to its initial state for a new session.
func (s *Selector) Reset() {
	s.state = StateSelecting
	s.method = ""
	s.reference = ""
}

func (s *Selector) beginSubmit() {
	s.state = StateSubmitting
}

func (s *Selector) resolve() {
	s.state = StateResolved
}

func (s *Selector) backToChosen() {
	s.state = StateMethodChosen
}
