package checkout

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	pkgerrors "github.com/shoplite/storefront/pkg/errors"
	"github.com/shoplite/storefront/pkg/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// OrderDraft is the frozen hand-off from checkout to payment: the item
// snapshot, the delivery details, and the computed total. Payment adds a
// method and reference on top; nothing here changes after composition,
// and nothing is persisted.
type OrderDraft struct {
	Items    []types.CartItem
	Delivery types.DeliveryDetails
	Total    decimal.Decimal
	BuyNow   bool
}

// Compose validates the delivery details and freezes an order draft.
// Exactly one item source is active: a single buy-now item bypassing the
// cart, or the synchronized cart snapshot. An empty active set or a
// non-positive total is not submittable.
func Compose(delivery types.DeliveryDetails, cartItems []types.CartItem, buyNow *types.CartItem) (*OrderDraft, error) {
	if err := validate.Struct(delivery); err != nil {
		return nil, formatValidationErrors(err)
	}

	var active []types.CartItem
	if buyNow != nil {
		item := *buyNow
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		active = []types.CartItem{item}
	} else {
		active = make([]types.CartItem, len(cartItems))
		copy(active, cartItems)
	}

	if len(active) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no items to check out")
	}

	total := types.ItemsTotal(active)
	if !total.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order total must be positive")
	}

	return &OrderDraft{
		Items:    active,
		Delivery: delivery,
		Total:    total,
		BuyNow:   buyNow != nil,
	}, nil
}

func formatValidationErrors(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := map[string]string{}
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = "is required"
		}
		return pkgerrors.New(pkgerrors.CodeValidation, "delivery details incomplete").WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "delivery details invalid")
}
