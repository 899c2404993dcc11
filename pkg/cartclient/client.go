package cartclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Free shipping kicks in at 200; below that a flat 25 applies.
const (
	FreeShippingThreshold = 200
	FlatShippingCost      = 25
)

// Client talks to the storefront API on behalf of a local Cart.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("%s failed with status: %d", path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// SyncAdd pushes a local add to the server cart. The local mirror is
// already updated by the time this runs; a failure here is reported but
// does not roll the mirror back.
func (c *Client) SyncAdd(ctx context.Context, cart *Cart, productID string, quantity int) error {
	payload := map[string]any{
		"sessionId": cart.SessionID(),
		"productId": productID,
		"quantity":  quantity,
	}
	return c.postJSON(ctx, "/api/cart", payload, nil)
}

// CustomerInfo is the shipping step of the checkout wizard.
type CustomerInfo struct {
	Name    string `json:"customerName"`
	Email   string `json:"customerEmail"`
	Phone   string `json:"customerPhone"`
	Address string `json:"shippingAddress"`
	City    string `json:"city"`
	Notes   string `json:"notes,omitempty"`
}

// PlacedOrder is the server's view of the created order.
type PlacedOrder struct {
	ID        string `json:"id"`
	SessionID string `json:"sessionId"`
	Subtotal  string `json:"subtotal"`
	Shipping  string `json:"shipping"`
	Total     string `json:"total"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func (info CustomerInfo) validate() error {
	if info.Name == "" || info.Email == "" || info.Phone == "" || info.Address == "" || info.City == "" {
		return fmt.Errorf("cartclient: missing required customer fields")
	}
	return nil
}

// Checkout assembles the order payload from the current cart contents
// (subtotal, shipping rule, per-item snapshots) and submits it exactly
// once. On success the local cart is cleared; the server has already
// cleared its copy as part of order creation.
func (c *Client) Checkout(ctx context.Context, cart *Cart, info CustomerInfo) (*PlacedOrder, error) {
	if err := info.validate(); err != nil {
		return nil, err
	}

	items := cart.Items()
	if len(items) == 0 {
		return nil, fmt.Errorf("cartclient: cart is empty")
	}

	subtotal := cart.Subtotal()
	shipping := float64(FlatShippingCost)
	if subtotal >= FreeShippingThreshold {
		shipping = 0
	}
	total := subtotal + shipping

	orderItems := make([]map[string]any, 0, len(items))
	for _, it := range items {
		orderItems = append(orderItems, map[string]any{
			"productId":     it.ProductID,
			"productName":   it.Name,
			"productNameAr": it.NameAr,
			"price":         it.Price,
			"quantity":      it.Quantity,
		})
	}

	payload := map[string]any{
		"sessionId":       cart.SessionID(),
		"customerName":    info.Name,
		"customerEmail":   info.Email,
		"customerPhone":   info.Phone,
		"shippingAddress": info.Address,
		"city":            info.City,
		"notes":           info.Notes,
		"subtotal":        fmt.Sprintf("%.2f", subtotal),
		"shipping":        fmt.Sprintf("%.2f", shipping),
		"total":           fmt.Sprintf("%.2f", total),
		"items":           orderItems,
	}

	var order PlacedOrder
	if err := c.postJSON(ctx, "/api/orders", payload, &order); err != nil {
		return nil, err
	}

	if err := cart.Clear(); err != nil {
		return &order, fmt.Errorf("cartclient: order placed but local cart not cleared: %w", err)
	}
	return &order, nil
}
