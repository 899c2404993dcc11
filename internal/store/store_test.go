package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zakihadj/souq/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := Open(context.Background(), "")
	require.NoError(t, err)

	s, err := New(db)
	require.NoError(t, err)
	return s
}

func seedProduct(t *testing.T, s *Store, name, price string) *models.Product {
	t.Helper()

	p, err := s.CreateProduct(context.Background(), &models.Product{
		Name:       name,
		NameAr:     name + "-ar",
		Price:      price,
		CategoryID: "cat-1",
		InStock:    true,
	})
	require.NoError(t, err)
	return p
}

func TestAddToCartIncrementsExistingPair(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p := seedProduct(t, s, "Headphones", "299.99")

	first, err := s.AddToCart(ctx, "sess-1", p.ID, 2)
	require.NoError(t, err)
	require.Equal(t, 2, first.Quantity)

	second, err := s.AddToCart(ctx, "sess-1", p.ID, 3)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 5, second.Quantity)

	items, err := s.GetCartItems(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 5, items[0].Quantity)
}

func TestAddToCartDefaultsToOne(t *testing.T) {
	s := newTestStore(t)
	p := seedProduct(t, s, "Watch", "549.00")

	item, err := s.AddToCart(context.Background(), "sess-1", p.ID, 0)
	require.NoError(t, err)
	require.Equal(t, 1, item.Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p := seedProduct(t, s, "Watch", "549.00")

	item, err := s.AddToCart(ctx, "sess-1", p.ID, 1)
	require.NoError(t, err)

	require.NoError(t, s.RemoveFromCart(ctx, item.ID))

	_, err = s.GetCartItem(ctx, item.ID)
	require.Error(t, err)
}

func TestClearCartLeavesOtherSessionsAlone(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p1 := seedProduct(t, s, "Headphones", "299.99")
	p2 := seedProduct(t, s, "Watch", "549.00")

	_, err := s.AddToCart(ctx, "sess-1", p1.ID, 1)
	require.NoError(t, err)
	_, err = s.AddToCart(ctx, "sess-1", p2.ID, 2)
	require.NoError(t, err)
	_, err = s.AddToCart(ctx, "sess-2", p1.ID, 3)
	require.NoError(t, err)

	require.NoError(t, s.ClearCart(ctx, "sess-1"))

	cleared, err := s.GetCartItems(ctx, "sess-1")
	require.NoError(t, err)
	require.Empty(t, cleared)

	other, err := s.GetCartItems(ctx, "sess-2")
	require.NoError(t, err)
	require.Len(t, other, 1)
	require.Equal(t, 3, other[0].Quantity)
}

func TestPlaceOrderSnapshotsItemsAndClearsCart(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p := seedProduct(t, s, "Headphones", "299.99")

	_, err := s.AddToCart(ctx, "sess-1", p.ID, 2)
	require.NoError(t, err)

	order := models.Order{
		SessionID:       "sess-1",
		CustomerName:    "Layla",
		CustomerEmail:   "layla@example.com",
		CustomerPhone:   "0500000000",
		ShippingAddress: "12 Palm St",
		City:            "Riyadh",
		Subtotal:        "599.98",
		Shipping:        "0.00",
		Total:           "599.98",
		Status:          models.OrderStatusPending,
	}
	items := []models.OrderItem{
		{ProductID: p.ID, ProductName: p.Name, ProductNameAr: p.NameAr, Price: p.Price, Quantity: 2},
	}

	created, createdItems, err := s.PlaceOrder(ctx, &order, items)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Len(t, createdItems, 1)
	require.Equal(t, created.ID, createdItems[0].OrderID)

	// the snapshot must survive later product edits
	newPrice := "1.00"
	_, err = s.UpdateProduct(ctx, p.ID, ProductUpdate{Price: &newPrice})
	require.NoError(t, err)

	stored, err := s.GetOrderItems(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, "299.99", stored[0].Price)
	require.Equal(t, "Headphones", stored[0].ProductName)

	cart, err := s.GetCartItems(ctx, "sess-1")
	require.NoError(t, err)
	require.Empty(t, cart)
}

func TestCreateOrderItemAppendsToOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	order := models.Order{
		SessionID:       "sess-1",
		CustomerName:    "Layla",
		CustomerEmail:   "layla@example.com",
		CustomerPhone:   "0500000000",
		ShippingAddress: "12 Palm St",
		City:            "Riyadh",
		Subtotal:        "50.00",
		Shipping:        "25.00",
		Total:           "75.00",
		Status:          models.OrderStatusPending,
	}
	created, err := s.CreateOrder(ctx, &order)
	require.NoError(t, err)

	item, err := s.CreateOrderItem(ctx, &models.OrderItem{
		OrderID:     created.ID,
		ProductID:   "p1",
		ProductName: "P1",
		Price:       "50.00",
		Quantity:    1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)

	items, err := s.GetOrderItems(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "50.00", items[0].Price)
}

func TestGetOrdersSortedMostRecentFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		order := models.Order{
			SessionID:       "sess-1",
			CustomerName:    name,
			CustomerEmail:   name + "@example.com",
			CustomerPhone:   "0500000000",
			ShippingAddress: "12 Palm St",
			City:            "Jeddah",
			Subtotal:        "10.00",
			Shipping:        "25.00",
			Total:           "35.00",
			Status:          models.OrderStatusPending,
			CreatedAt:       base.Add(time.Duration(i) * time.Hour),
		}
		_, err := s.CreateOrder(ctx, &order)
		require.NoError(t, err)
	}

	orders, err := s.GetOrders(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, orders, 3)
	require.Equal(t, "third", orders[0].CustomerName)
	require.Equal(t, "first", orders[2].CustomerName)
}

func TestGetOrdersFiltersBySession(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, sess := range []string{"sess-1", "sess-2", "sess-1"} {
		order := models.Order{
			SessionID:       sess,
			CustomerName:    "x",
			CustomerEmail:   "x@example.com",
			CustomerPhone:   "0500000000",
			ShippingAddress: "12 Palm St",
			City:            "Jeddah",
			Subtotal:        "10.00",
			Shipping:        "25.00",
			Total:           "35.00",
			Status:          models.OrderStatusPending,
		}
		_, err := s.CreateOrder(ctx, &order)
		require.NoError(t, err)
	}

	orders, err := s.GetOrders(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, o := range orders {
		require.Equal(t, "sess-1", o.SessionID)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	order := models.Order{
		SessionID:       "sess-1",
		CustomerName:    "x",
		CustomerEmail:   "x@example.com",
		CustomerPhone:   "0500000000",
		ShippingAddress: "12 Palm St",
		City:            "Jeddah",
		Subtotal:        "10.00",
		Shipping:        "25.00",
		Total:           "35.00",
		Status:          models.OrderStatusPending,
	}
	created, err := s.CreateOrder(ctx, &order)
	require.NoError(t, err)

	updated, err := s.UpdateOrderStatus(ctx, created.ID, models.OrderStatusShipped)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusShipped, updated.Status)

	_, err = s.UpdateOrderStatus(ctx, "no-such-order", models.OrderStatusShipped)
	require.Error(t, err)
}

func TestSearchProductsMatchesBothLanguages(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateProduct(ctx, &models.Product{
		Name:       "Wireless Bluetooth Headphones",
		NameAr:     "سماعات بلوتوث لاسلكية",
		Price:      "299.99",
		CategoryID: "cat-1",
	})
	require.NoError(t, err)
	seedProduct(t, s, "Coffee Maker", "599.00")

	found, err := s.SearchProducts(ctx, "bluetooth")
	require.NoError(t, err)
	require.Len(t, found, 1)

	found, err = s.SearchProducts(ctx, "سماعات")
	require.NoError(t, err)
	require.Len(t, found, 1)

	found, err = s.SearchProducts(ctx, "toaster")
	require.NoError(t, err)
	require.Empty(t, found)
}

func TestSeedIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Seed(ctx))
	first, err := s.GetProducts(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	require.NoError(t, s.Seed(ctx))
	second, err := s.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, second, len(first))

	categories, err := s.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 6)

	electronics, err := s.GetCategoryBySlug(ctx, "electronics")
	require.NoError(t, err)

	byCategory, err := s.GetProductsByCategory(ctx, electronics.ID)
	require.NoError(t, err)
	require.NotEmpty(t, byCategory)
}
