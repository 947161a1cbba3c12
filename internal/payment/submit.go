package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shoplite/storefront/internal/checkout"
	"github.com/shoplite/storefront/pkg/enums"
	pkgerrors "github.com/shoplite/storefront/pkg/errors"
	"github.com/shoplite/storefront/pkg/logger"
	"github.com/shoplite/storefront/pkg/metrics"
	"github.com/shoplite/storefront/pkg/types"
)

// TempOrderPrefix marks order ids fabricated on the soft-success path so
// they are distinguishable from backend-confirmed ones.
const TempOrderPrefix = "TEMP-"

const defaultSubmitTimeout = 5 * time.Second

type tokenSource interface {
	Token(ctx context.Context) (string, error)
}

type cartClearer interface {
	Clear(ctx context.Context)
}

// OrderSubmission is the fully assembled payload posted to the backend.
// It exists only for the duration of the request.
type OrderSubmission struct {
	OrderID        string                `json:"order_id"`
	Delivery       types.DeliveryDetails `json:"delivery_details"`
	Items          []types.CartItem      `json:"items"`
	Total          decimal.Decimal       `json:"total"`
	PaymentMethod  enums.PaymentMethod   `json:"payment_method"`
	TransactionRef string                `json:"transaction_ref,omitempty"`
}

type checkoutResponse struct {
	OrderNumber string `json:"order_number"`
}

// Result is the outcome handed to the confirmation step.
type Result struct {
	OrderID string
	Status  enums.OrderStatus
}

// Submitter posts assembled orders to the backend. The submission call is
// the only cart-flow request with a bounded timeout.
type Submitter struct {
	httpClient *http.Client
	baseURL    string
	tokens     tokenSource
	cart       cartClearer
	logg       *logger.Logger
	metrics    *metrics.FlowMetrics
	timeout    time.Duration
}

// SubmitterParams groups the submitter dependencies.
type SubmitterParams struct {
	BaseURL    string
	Tokens     tokenSource
	Cart       cartClearer
	Logger     *logger.Logger
	Metrics    *metrics.FlowMetrics
	Timeout    time.Duration
	HTTPClient *http.Client
}

// NewSubmitter builds an order submitter.
func NewSubmitter(params SubmitterParams) (*Submitter, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(params.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("submit base url is required")
	}
	if params.Tokens == nil {
		return nil, fmt.Errorf("token source is required")
	}
	if params.Cart == nil {
		return nil, fmt.Errorf("cart clearer is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultSubmitTimeout
	}
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Submitter{
		httpClient: httpClient,
		baseURL:    baseURL,
		tokens:     params.Tokens,
		cart:       params.Cart,
		logg:       params.Logger,
		metrics:    params.Metrics,
		timeout:    timeout,
	}, nil
}

// Submit assembles the order payload from the draft and the selector and
// posts it. Outcomes:
//   - backend acknowledged: cart cleared, status confirmed, backend order
//     number (or the provisional id when absent);
//   - 401/403: session-expired error, cart untouched, selector back to
//     method-chosen so the user can re-authenticate and retry;
//   - anything else (network failure, timeout, server error): treated as
//     a soft success — cart cleared, status pending, TEMP-prefixed id.
//     The user is deliberately not stranded on an error screen; a real
//     rejection is indistinguishable from an outage here.
func (s *Submitter) Submit(ctx context.Context, sel *Selector, draft *checkout.OrderDraft) (*Result, error) {
	if draft == nil || len(draft.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order draft is empty")
	}
	if sel == nil || !sel.CanSubmit() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment selection incomplete")
	}

	token, err := s.tokens.Token(ctx)
	if err != nil || strings.TrimSpace(token) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to place an order")
	}

	provisional := uuid.NewString()
	submission := OrderSubmission{
		OrderID:        provisional,
		Delivery:       draft.Delivery,
		Items:          draft.Items,
		Total:          draft.Total,
		PaymentMethod:  sel.Method(),
		TransactionRef: sel.Reference(),
	}

	sel.beginSubmit()
	logCtx := s.logg.WithOrderID(s.logg.WithPaymentMethod(ctx, string(sel.Method())), provisional)

	status, postErr := s.post(ctx, token, submission)

	switch {
	case postErr == nil:
		orderID := status.OrderNumber
		if strings.TrimSpace(orderID) == "" {
			orderID = provisional
		}
		s.cart.Clear(ctx)
		sel.resolve()
		s.metrics.IncSubmission("confirmed")
		s.logg.Info(s.logg.WithOrderID(ctx, orderID), "order confirmed by backend")
		return &Result{OrderID: orderID, Status: enums.OrderStatusConfirmed}, nil

	case pkgerrors.IsAuth(pkgerrors.As(postErr).Code()):
		sel.backToChosen()
		s.metrics.IncSubmission("unauthorized")
		s.logg.Warn(logCtx, "order submission rejected, session expired")
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, postErr, "session expired, sign in and try again")

	default:
		// Soft success: clear the cart and confirm locally anyway rather
		// than strand the user when the backend is flaky.
		s.cart.Clear(ctx)
		sel.resolve()
		s.metrics.IncSubmission("bypassed")
		s.logg.Error(logCtx, "order submission failed, recording as pending", postErr)
		return &Result{OrderID: TempOrderPrefix + provisional, Status: enums.OrderStatusPending}, nil
	}
}

func (s *Submitter) post(ctx context.Context, token string, submission OrderSubmission) (*checkoutResponse, error) {
	encoded, err := json.Marshal(submission)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding order submission")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/checkout", bytes.NewReader(encoded))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building checkout request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeTransport, err, "posting order")
	}
	defer func() {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, pkgerrors.New(
			pkgerrors.CodeFromStatus(resp.StatusCode),
			fmt.Sprintf("checkout returned %d", resp.StatusCode),
		)
	}

	var decoded checkoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		// The order may have landed; the contract does not require a
		// response body, so a decode failure is not a submission failure.
		return &checkoutResponse{}, nil
	}
	return &decoded, nil
}
