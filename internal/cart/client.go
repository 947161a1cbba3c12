package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/shoplite/storefront/pkg/errors"
	"github.com/shoplite/storefront/pkg/logger"
	"github.com/shoplite/storefront/pkg/metrics"
	"github.com/shoplite/storefront/pkg/types"
)

const responseBodyReadLimit int64 = 4096

type tokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client keeps a local view of the cart consistent with the remote
// authoritative store. Every mutation is mirrored to the backend and
// followed by a wholesale re-fetch; the in-memory copy is a cache, the
// backend is the source of truth.
//
// Remote failures are absorbed: they are logged and counted, the local
// copy simply does not advance. No call here ever blocks the caller on an
// error. In-flight calls are never cancelled and rapid unawaited
// mutations can race; callers are expected to await each mutation before
// issuing the next.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     tokenSource
	logg       *logger.Logger
	metrics    *metrics.FlowMetrics

	mu    sync.Mutex
	items []types.CartItem
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithMetrics wires submission/sync counters.
func WithMetrics(m *metrics.FlowMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient builds a cart client against the storefront backend.
func NewClient(baseURL string, tokens tokenSource, logg *logger.Logger, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("cart base url is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}

	client := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    trimmed,
		tokens:     tokens,
		logg:       logg,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

// Refresh fetches the full cart and replaces the local copy wholesale.
// The response is trusted as-is; there is no merge logic. On failure the
// previous copy stays available.
func (c *Client) Refresh(ctx context.Context) {
	var fetched []types.CartItem
	if err := c.doJSON(ctx, http.MethodGet, "/cart", nil, &fetched); err != nil {
		c.absorb(ctx, "refresh", err)
		return
	}
	if fetched == nil {
		fetched = []types.CartItem{}
	}

	c.mu.Lock()
	c.items = fetched
	c.mu.Unlock()
}

// Add puts one unit of the item in the cart. A second add for an already
// present identifier increments the existing line instead of appending a
// row.
func (c *Client) Add(ctx context.Context, item types.CartItem) {
	if existing, ok := c.find(item.ID); ok {
		c.UpdateQuantity(ctx, item.ID, existing.Quantity+1)
		return
	}

	payload := addRequest{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
	}
	if err := c.doJSON(ctx, http.MethodPost, "/cart/add", payload, nil); err != nil {
		c.absorb(ctx, "add", err)
		return
	}
	c.Refresh(ctx)
}

// Remove deletes the line for the identifier.
func (c *Client) Remove(ctx context.Context, id string) {
	if err := c.doJSON(ctx, http.MethodDelete, "/cart/remove/"+url.PathEscape(id), nil, nil); err != nil {
		c.absorb(ctx, "remove", err)
		return
	}
	c.Refresh(ctx)
}

// UpdateQuantity sets the quantity for the identifier. A quantity of zero
// or less removes the line; lines are never retained at quantity 0.
func (c *Client) UpdateQuantity(ctx context.Context, id string, quantity int) {
	if quantity <= 0 {
		c.Remove(ctx, id)
		return
	}

	payload := updateRequest{Quantity: quantity}
	if err := c.doJSON(ctx, http.MethodPut, "/cart/update/"+url.PathEscape(id), payload, nil); err != nil {
		c.absorb(ctx, "update", err)
		return
	}
	c.Refresh(ctx)
}

// Clear empties the remote cart and, because the result is then known,
// sets the local copy empty without a re-fetch.
func (c *Client) Clear(ctx context.Context) {
	if err := c.doJSON(ctx, http.MethodDelete, "/cart/clear", nil, nil); err != nil {
		c.absorb(ctx, "clear", err)
		return
	}

	c.mu.Lock()
	c.items = []types.CartItem{}
	c.mu.Unlock()
}

// Items returns a snapshot of the local cart copy.
func (c *Client) Items() []types.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make([]types.CartItem, len(c.items))
	copy(snapshot, c.items)
	return snapshot
}

// Total recomputes the sum of price times quantity over the local copy on
// every call, so it always agrees with the last refresh.
func (c *Client) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return types.ItemsTotal(c.items)
}

func (c *Client) find(id string) (types.CartItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return types.CartItem{}, false
}

func (c *Client) absorb(ctx context.Context, op string, err error) {
	ctx = c.logg.WithCartOp(ctx, op)
	c.logg.Error(ctx, "cart sync failed, keeping local copy", err)
	c.metrics.IncSyncFailure(op)
}

type addRequest struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type updateRequest struct {
	Quantity int `json:"quantity"`
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, dest any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token, err := c.tokens.Token(ctx); err == nil && strings.TrimSpace(token) != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeTransport, err, fmt.Sprintf("%s %s", method, path))
	}
	defer func() {
		io.Copy(io.Discard, io.LimitReader(resp.Body, responseBodyReadLimit))
		resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return pkgerrors.New(
			pkgerrors.CodeFromStatus(resp.StatusCode),
			fmt.Sprintf("%s %s returned %d", method, path, resp.StatusCode),
		)
	}

	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeTransport, err, "decoding response body")
		}
	}
	return nil
}
