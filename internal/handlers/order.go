package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/zakihadj/souq/internal/models"
	"github.com/zakihadj/souq/internal/mykafka"
	"github.com/zakihadj/souq/internal/service/token"
	"github.com/zakihadj/souq/internal/store"
)

type OrderHandler struct {
	Store    *store.Store
	Producer *mykafka.Producer
	Tokens   *token.TokenService
}

type orderItemInput struct {
	ProductID     string `json:"productId"`
	ProductName   string `json:"productName"`
	ProductNameAr string `json:"productNameAr"`
	Price         string `json:"price"`
	Quantity      int    `json:"quantity"`
}

type createOrderRequest struct {
	SessionID       string           `json:"sessionId"`
	CustomerName    string           `json:"customerName"`
	CustomerEmail   string           `json:"customerEmail"`
	CustomerPhone   string           `json:"customerPhone"`
	ShippingAddress string           `json:"shippingAddress"`
	City            string           `json:"city"`
	Notes           string           `json:"notes"`
	Subtotal        string           `json:"subtotal"`
	Shipping        string           `json:"shipping"`
	Total           string           `json:"total"`
	Items           []orderItemInput `json:"items"`
}

func (h *OrderHandler) publish(c echo.Context, event map[string]any) {
	key, _ := event["orderID"].(string)
	publishEvent(c, h.Producer, "order_events", key, event)
}

func (h *OrderHandler) GetOrders(c echo.Context) error {
	sessionID := c.QueryParam("sessionId")
	if sessionID == "" {
		return errorResponse(c, http.StatusBadRequest, "Session ID required")
	}

	orders, err := h.Store.GetOrders(c.Request().Context(), sessionID)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to fetch orders")
	}
	return c.JSON(http.StatusOK, orders)
}

type orderView struct {
	models.Order
	Items []models.OrderItem `json:"items"`
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.Store.GetOrder(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "Order not found")
		}
		return errorResponse(c, http.StatusInternalServerError, "Failed to fetch order")
	}

	items, err := h.Store.GetOrderItems(ctx, order.ID)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to fetch order")
	}

	return c.JSON(http.StatusOK, orderView{Order: *order, Items: items})
}

// CreateOrder validates the checkout payload and records the order, its
// line-item snapshots and the cart clear atomically. The order is tagged
// with a user id only when a valid session cookie rides along.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err.Error())
	}

	if req.SessionID == "" || req.CustomerName == "" || req.CustomerEmail == "" ||
		req.CustomerPhone == "" || req.ShippingAddress == "" || req.City == "" {
		return errorResponse(c, http.StatusBadRequest, "Missing required fields")
	}

	order := models.Order{
		SessionID:       req.SessionID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		City:            req.City,
		Notes:           req.Notes,
		Subtotal:        req.Subtotal,
		Shipping:        req.Shipping,
		Total:           req.Total,
		Status:          models.OrderStatusPending,
	}

	if userID, ok := h.Tokens.UserIDFromCookie(c); ok {
		order.UserID = &userID
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, models.OrderItem{
			ProductID:     it.ProductID,
			ProductName:   it.ProductName,
			ProductNameAr: it.ProductNameAr,
			Price:         it.Price,
			Quantity:      it.Quantity,
		})
	}

	created, _, err := h.Store.PlaceOrder(c.Request().Context(), &order, items)
	if err != nil {
		c.Logger().Errorf("Order creation error: %v", err)
		return errorResponse(c, http.StatusInternalServerError, "Failed to create order")
	}

	h.publish(c, map[string]any{
		"type":      "order_placed",
		"orderID":   created.ID,
		"sessionID": created.SessionID,
		"total":     created.Total,
		"items":     len(items),
	})

	return c.JSON(http.StatusCreated, created)
}

func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err.Error())
	}
	if req.Status == "" {
		return errorResponse(c, http.StatusBadRequest, "Status required")
	}
	if !models.ValidOrderStatus(req.Status) {
		return errorResponse(c, http.StatusBadRequest, "Invalid status")
	}

	order, err := h.Store.UpdateOrderStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "Order not found")
		}
		return errorResponse(c, http.StatusInternalServerError, "Failed to update order status")
	}

	h.publish(c, map[string]any{
		"type":    "order_status_changed",
		"orderID": order.ID,
		"status":  order.Status,
	})

	return c.JSON(http.StatusOK, order)
}
