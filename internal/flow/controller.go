package flow

import (
	"context"

	"github.com/shoplite/storefront/internal/checkout"
	"github.com/shoplite/storefront/internal/confirmation"
	"github.com/shoplite/storefront/internal/payment"
	"github.com/shoplite/storefront/pkg/enums"
	pkgerrors "github.com/shoplite/storefront/pkg/errors"
	"github.com/shoplite/storefront/pkg/types"
)

// Step is the wizard position. Data moves strictly forward:
// Cart -> Checkout -> Payment -> Confirmation.
type Step string

const (
	StepCart         Step = "cart"
	StepCheckout     Step = "checkout"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

type cartView interface {
	Refresh(ctx context.Context)
	Items() []types.CartItem
}

type orderSubmitter interface {
	Submit(ctx context.Context, sel *payment.Selector, draft *checkout.OrderDraft) (*payment.Result, error)
}

// Controller owns the state carried between wizard steps. The draft and
// outcome live only in memory; dropping the controller mid-flow loses
// them and the flow restarts from the cart, by design.
type Controller struct {
	cart      cartView
	submitter orderSubmitter
	selector  *payment.Selector

	step    Step
	buyNow  *types.CartItem
	draft   *checkout.OrderDraft
	outcome *confirmation.Payload
}

// NewController builds a flow controller positioned at the cart step.
func NewController(cart cartView, submitter orderSubmitter) *Controller {
	return &Controller{
		cart:      cart,
		submitter: submitter,
		selector:  payment.NewSelector(),
		step:      StepCart,
	}
}

func (c *Controller) Step() Step {
	return c.step
}

func (c *Controller) Selector() *payment.Selector {
	return c.selector
}

func (c *Controller) Draft() *checkout.OrderDraft {
	return c.draft
}

// StartCheckout moves from the cart to the checkout step. A non-nil
// buyNow item bypasses the cart entirely for this session; otherwise the
// cart is refreshed and must not be empty.
func (c *Controller) StartCheckout(ctx context.Context, buyNow *types.CartItem) error {
	if c.step != StepCart {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "checkout already started")
	}

	if buyNow == nil {
		c.cart.Refresh(ctx)
		if len(c.cart.Items()) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}
	}

	c.buyNow = buyNow
	c.step = StepCheckout
	return nil
}

// SubmitDelivery validates the delivery details, freezes the order draft
// and advances to the payment step.
func (c *Controller) SubmitDelivery(ctx context.Context, delivery types.DeliveryDetails) error {
	if c.step != StepCheckout {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "not at the checkout step")
	}

	draft, err := checkout.Compose(delivery, c.cart.Items(), c.buyNow)
	if err != nil {
		return err
	}

	c.draft = draft
	c.selector.Reset()
	c.step = StepPayment
	return nil
}

// ChooseMethod picks the payment method at the payment step.
func (c *Controller) ChooseMethod(method enums.PaymentMethod) error {
	if c.step != StepPayment {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "not at the payment step")
	}
	return c.selector.ChooseMethod(method)
}

// SetReference records the wallet transaction reference.
func (c *Controller) SetReference(reference string) error {
	if c.step != StepPayment {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "not at the payment step")
	}
	return c.selector.SetReference(reference)
}

// CanSubmit reports whether the order can be submitted right now.
func (c *Controller) CanSubmit() bool {
	return c.step == StepPayment && c.selector.CanSubmit()
}

// SubmitOrder posts the order and, on any resolved outcome, advances to
// the confirmation step. On a recoverable error (validation, expired
// session) the flow stays at the payment step.
func (c *Controller) SubmitOrder(ctx context.Context) (confirmation.View, error) {
	if c.step != StepPayment {
		return confirmation.View{}, pkgerrors.New(pkgerrors.CodeStateConflict, "not at the payment step")
	}

	result, err := c.submitter.Submit(ctx, c.selector, c.draft)
	if err != nil {
		return confirmation.View{}, err
	}

	payload := confirmation.Payload{
		OrderID:       result.OrderID,
		Status:        result.Status,
		Total:         c.draft.Total,
		PaymentMethod: c.selector.Method(),
		Delivery:      c.draft.Delivery,
		Items:         c.draft.Items,
	}
	c.outcome = &payload
	c.step = StepConfirmation
	return confirmation.NewView(payload), nil
}

// Outcome re-renders the confirmation view; valid only after a resolved
// submission.
func (c *Controller) Outcome() (confirmation.View, bool) {
	if c.step != StepConfirmation || c.outcome == nil {
		return confirmation.View{}, false
	}
	return confirmation.NewView(*c.outcome), true
}

// Reset drops all wizard state and returns to the cart step.
func (c *Controller) Reset() {
	c.buyNow = nil
	c.draft = nil
	c.outcome = nil
	c.selector.Reset()
	c.step = StepCart
}
