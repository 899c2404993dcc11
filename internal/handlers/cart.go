package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/zakihadj/souq/internal/models"
	"github.com/zakihadj/souq/internal/mykafka"
	"github.com/zakihadj/souq/internal/store"
)

type CartHandler struct {
	Store    *store.Store
	Producer *mykafka.Producer
}

// cartItemView is a cart item joined with its current product record.
type cartItemView struct {
	models.CartItem
	Product *models.Product `json:"product,omitempty"`
}

func (h *CartHandler) publish(c echo.Context, event map[string]any) {
	key, _ := event["sessionID"].(string)
	publishEvent(c, h.Producer, "cart_events", key, event)
}

func (h *CartHandler) withProduct(c echo.Context, item *models.CartItem) cartItemView {
	view := cartItemView{CartItem: *item}
	product, err := h.Store.GetProduct(c.Request().Context(), item.ProductID)
	if err == nil {
		view.Product = product
	}
	return view
}

func (h *CartHandler) GetCart(c echo.Context) error {
	items, err := h.Store.GetCartItems(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to fetch cart")
	}

	views := make([]cartItemView, 0, len(items))
	for i := range items {
		views = append(views, h.withProduct(c, &items[i]))
	}
	return c.JSON(http.StatusOK, views)
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	var req struct {
		SessionID string `json:"sessionId"`
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err.Error())
	}
	if req.SessionID == "" || req.ProductID == "" {
		return errorResponse(c, http.StatusBadRequest, "Missing required fields")
	}

	product, err := h.Store.GetProduct(c.Request().Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "Product not found")
		}
		return errorResponse(c, http.StatusInternalServerError, "Failed to add to cart")
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.Store.AddToCart(c.Request().Context(), req.SessionID, req.ProductID, req.Quantity)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to add to cart")
	}

	h.publish(c, map[string]any{
		"type":      "cart_item_added",
		"sessionID": item.SessionID,
		"productID": item.ProductID,
		"quantity":  item.Quantity,
	})

	return c.JSON(http.StatusOK, cartItemView{CartItem: *item, Product: product})
}

// UpdateCartItem overwrites the quantity; anything at or below zero removes
// the item instead of storing a non-positive quantity.
func (h *CartHandler) UpdateCartItem(c echo.Context) error {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err.Error())
	}

	id := c.Param("id")
	if req.Quantity <= 0 {
		if err := h.Store.RemoveFromCart(c.Request().Context(), id); err != nil {
			return errorResponse(c, http.StatusInternalServerError, "Failed to update cart item")
		}
		h.publish(c, map[string]any{
			"type":       "cart_item_removed",
			"cartItemID": id,
		})
		return c.JSON(http.StatusOK, echo.Map{"deleted": true})
	}

	item, err := h.Store.UpdateCartItem(c.Request().Context(), id, req.Quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "Cart item not found")
		}
		return errorResponse(c, http.StatusInternalServerError, "Failed to update cart item")
	}

	h.publish(c, map[string]any{
		"type":       "cart_item_updated",
		"sessionID":  item.SessionID,
		"cartItemID": item.ID,
		"quantity":   item.Quantity,
	})

	return c.JSON(http.StatusOK, h.withProduct(c, item))
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	id := c.Param("id")
	if err := h.Store.RemoveFromCart(c.Request().Context(), id); err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to remove from cart")
	}

	h.publish(c, map[string]any{
		"type":       "cart_item_removed",
		"cartItemID": id,
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	sessionID := c.Param("sessionId")
	if err := h.Store.ClearCart(c.Request().Context(), sessionID); err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to clear cart")
	}

	h.publish(c, map[string]any{
		"type":      "cart_cleared",
		"sessionID": sessionID,
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
