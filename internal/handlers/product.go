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

type ProductHandler struct {
	Store    *store.Store
	Producer *mykafka.Producer
}

func (h *ProductHandler) publish(c echo.Context, event map[string]any) {
	key, _ := event["productID"].(string)
	publishEvent(c, h.Producer, "product_events", key, event)
}

// GetProducts lists the catalog with the optional query filters
// category=, featured=, new=, sale= and search= applied in order.
func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		products []models.Product
		err      error
	)

	if slug := c.QueryParam("category"); slug != "" {
		category, catErr := h.Store.GetCategoryBySlug(ctx, slug)
		if catErr != nil {
			if errors.Is(catErr, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusOK, []models.Product{})
			}
			return errorResponse(c, http.StatusInternalServerError, "Failed to fetch products")
		}
		products, err = h.Store.GetProductsByCategory(ctx, category.ID)
	} else if search := c.QueryParam("search"); search != "" {
		products, err = h.Store.SearchProducts(ctx, search)
	} else if c.QueryParam("featured") == "true" {
		products, err = h.Store.GetFeaturedProducts(ctx)
	} else {
		products, err = h.Store.GetProducts(ctx)
	}
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to fetch products")
	}

	if search := c.QueryParam("search"); search != "" && c.QueryParam("category") != "" {
		// category filter already applied; narrow by search in memory
		matched, err := h.Store.SearchProducts(ctx, search)
		if err != nil {
			return errorResponse(c, http.StatusInternalServerError, "Failed to fetch products")
		}
		ids := make(map[string]bool, len(matched))
		for _, p := range matched {
			ids[p.ID] = true
		}
		filtered := products[:0]
		for _, p := range products {
			if ids[p.ID] {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	products = filterFlag(products, c.QueryParam("featured"), func(p models.Product) bool { return p.Featured })
	products = filterFlag(products, c.QueryParam("new"), func(p models.Product) bool { return p.IsNew })
	products = filterFlag(products, c.QueryParam("sale"), func(p models.Product) bool { return p.OnSale })

	return c.JSON(http.StatusOK, products)
}

func filterFlag(products []models.Product, param string, keep func(models.Product) bool) []models.Product {
	if param != "true" {
		return products
	}
	out := products[:0]
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.Store.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "Product not found")
		}
		return errorResponse(c, http.StatusInternalServerError, "Failed to fetch product")
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req models.Product
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err.Error())
	}
	if req.Name == "" || req.Price == "" || req.CategoryID == "" {
		return errorResponse(c, http.StatusBadRequest, "Missing required fields")
	}

	if _, err := h.Store.GetCategory(c.Request().Context(), req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusBadRequest, "Unknown category")
		}
		return errorResponse(c, http.StatusInternalServerError, "Failed to create product")
	}

	product, err := h.Store.CreateProduct(c.Request().Context(), &req)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to create product")
	}

	h.publish(c, map[string]any{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.Name,
	})

	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req store.ProductUpdate
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err.Error())
	}

	product, err := h.Store.UpdateProduct(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "Product not found")
		}
		return errorResponse(c, http.StatusInternalServerError, "Failed to update product")
	}

	h.publish(c, map[string]any{
		"type":      "product_updated",
		"productID": product.ID,
		"name":      product.Name,
	})

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")
	if err := h.Store.DeleteProduct(c.Request().Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "Product not found")
		}
		return errorResponse(c, http.StatusInternalServerError, "Failed to delete product")
	}

	h.publish(c, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}
