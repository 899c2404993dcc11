package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zakihadj/souq/internal/models"
	"github.com/zakihadj/souq/internal/store"
)

// AdminHandler serves the back-office aggregate views. Product and order
// mutations reuse the regular handlers behind the admin route group.
type AdminHandler struct {
	Store *store.Store
}

func (h *AdminHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	totalProducts, err := h.Store.CountProducts(ctx)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to fetch stats")
	}
	totalUsers, err := h.Store.CountUsers(ctx)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to fetch stats")
	}

	orders, err := h.Store.GetAllOrders(ctx)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to fetch stats")
	}

	var totalRevenue float64
	for _, order := range orders {
		if v, err := strconv.ParseFloat(order.Total, 64); err == nil {
			totalRevenue += v
		}
	}

	recentOrders := orders
	if len(recentOrders) > 10 {
		recentOrders = recentOrders[:10]
	}

	products, err := h.Store.GetProducts(ctx)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to fetch stats")
	}
	topProducts := products
	if len(topProducts) > 6 {
		topProducts = topProducts[:6]
	}

	return c.JSON(http.StatusOK, echo.Map{
		"totalProducts": totalProducts,
		"totalOrders":   len(orders),
		"totalUsers":    totalUsers,
		"totalRevenue":  totalRevenue,
		"recentOrders":  recentOrders,
		"topProducts":   topProducts,
	})
}

func (h *AdminHandler) GetAllProducts(c echo.Context) error {
	products, err := h.Store.GetProducts(c.Request().Context())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to fetch products")
	}
	return c.JSON(http.StatusOK, products)
}

func (h *AdminHandler) GetAllOrders(c echo.Context) error {
	orders, err := h.Store.GetAllOrders(c.Request().Context())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to fetch orders")
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}
