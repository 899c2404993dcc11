package cartclient

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestCart(t *testing.T) *Cart {
	t.Helper()

	cart, err := NewCart(filepath.Join(t.TempDir(), "cart.json"))
	require.NoError(t, err)
	return cart
}

func TestNewCartGeneratesSessionID(t *testing.T) {
	cart := newTestCart(t)
	require.NotEmpty(t, cart.SessionID())
	require.Empty(t, cart.Items())
}

func TestSessionIDSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	first, err := NewCart(path)
	require.NoError(t, err)
	require.NoError(t, first.AddToCart(Item{ProductID: "p1", Name: "P1", Price: "50.00"}, 2))

	second, err := NewCart(path)
	require.NoError(t, err)
	require.Equal(t, first.SessionID(), second.SessionID())
	require.Equal(t, 2, second.ItemCount())
}

func TestAddToCartMergesSameProduct(t *testing.T) {
	cart := newTestCart(t)

	require.NoError(t, cart.AddToCart(Item{ProductID: "p1", Name: "P1", Price: "50.00"}, 2))
	require.NoError(t, cart.AddToCart(Item{ProductID: "p1", Name: "P1", Price: "50.00"}, 3))

	items := cart.Items()
	require.Len(t, items, 1)
	require.Equal(t, 5, items[0].Quantity)
}

func TestAddToCartDefaultsQuantityToOne(t *testing.T) {
	cart := newTestCart(t)

	require.NoError(t, cart.AddToCart(Item{ProductID: "p1", Price: "50.00"}, 0))
	require.Equal(t, 1, cart.ItemCount())
}

func TestUpdateQuantityNonPositiveRemoves(t *testing.T) {
	cart := newTestCart(t)

	require.NoError(t, cart.AddToCart(Item{ProductID: "p1", Price: "50.00"}, 2))
	require.NoError(t, cart.UpdateQuantity("p1", 0))
	require.Empty(t, cart.Items())

	// updating a product that is not in the cart is a no-op
	require.NoError(t, cart.UpdateQuantity("p2", 4))
	require.Empty(t, cart.Items())
}

func TestTotals(t *testing.T) {
	cart := newTestCart(t)

	require.NoError(t, cart.AddToCart(Item{ProductID: "p1", Name: "P1", Price: "50.00"}, 2))
	require.NoError(t, cart.AddToCart(Item{ProductID: "p2", Name: "P2", Price: "30.00"}, 1))

	require.Equal(t, 3, cart.ItemCount())
	require.InDelta(t, 130.0, cart.Subtotal(), 0.001)
}

func TestClear(t *testing.T) {
	cart := newTestCart(t)

	require.NoError(t, cart.AddToCart(Item{ProductID: "p1", Price: "50.00"}, 2))
	require.NoError(t, cart.Clear())
	require.Empty(t, cart.Items())
	require.Zero(t, cart.Subtotal())
}
