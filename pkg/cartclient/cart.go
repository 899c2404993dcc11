// Package cartclient is the client-side mirror of the server cart: a
// locally persisted session id plus an optimistic copy of the cart,
// synchronized with the REST API on a best-effort basis. The server store
// stays the source of truth; this copy is advisory only.
package cartclient

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Item carries a denormalized snapshot of the product so the cart renders
// without extra lookups.
type Item struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	NameAr    string `json:"nameAr"`
	Price     string `json:"price"`
	Image     string `json:"image,omitempty"`
	Quantity  int    `json:"quantity"`
}

type state struct {
	SessionID string `json:"sessionId"`
	Items     []Item `json:"items"`
}

// Cart holds the local mirror. The state file stands in for browser
// storage: the session id survives restarts, so anonymous carts and order
// history stay attached to the same owner.
type Cart struct {
	mu        sync.Mutex
	statePath string
	state     state
}

func NewCart(statePath string) (*Cart, error) {
	c := &Cart{statePath: statePath}

	data, err := os.ReadFile(statePath)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &c.state); err != nil {
			return nil, fmt.Errorf("cartclient: corrupt state file: %w", err)
		}
	case os.IsNotExist(err):
		c.state.SessionID = uuid.NewString()
		if err := c.save(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("cartclient: read state: %w", err)
	}

	if c.state.SessionID == "" {
		c.state.SessionID = uuid.NewString()
	}
	return c, nil
}

func (c *Cart) save() error {
	data, err := json.MarshalIndent(c.state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.statePath, data, 0o600)
}

func (c *Cart) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.SessionID
}

// AddToCart mirrors the server semantics: an existing product entry gets
// its quantity incremented, otherwise a new entry is appended.
func (c *Cart) AddToCart(item Item, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.state.Items {
		if c.state.Items[i].ProductID == item.ProductID {
			c.state.Items[i].Quantity += quantity
			return c.save()
		}
	}

	item.Quantity = quantity
	c.state.Items = append(c.state.Items, item)
	return c.save()
}

// UpdateQuantity overwrites an entry's quantity; zero or below removes the
// entry instead.
func (c *Cart) UpdateQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		return c.Remove(productID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.state.Items {
		if c.state.Items[i].ProductID == productID {
			c.state.Items[i].Quantity = quantity
			return c.save()
		}
	}
	return nil
}

func (c *Cart) Remove(productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.state.Items[:0]
	for _, it := range c.state.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	c.state.Items = items
	return c.save()
}

func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Items = nil
	return c.save()
}

func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Item, len(c.state.Items))
	copy(out, c.state.Items)
	return out
}

// ItemCount and Subtotal are recomputed from the current contents on every
// call rather than cached.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int
	for _, it := range c.state.Items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotalLocked()
}

func (c *Cart) subtotalLocked() float64 {
	var total float64
	for _, it := range c.state.Items {
		price, err := strconv.ParseFloat(it.Price, 64)
		if err != nil {
			continue
		}
		total += price * float64(it.Quantity)
	}
	return total
}
