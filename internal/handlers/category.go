package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/zakihadj/souq/internal/models"
	"github.com/zakihadj/souq/internal/store"
)

type CategoryHandler struct {
	Store *store.Store
}

func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories, err := h.Store.GetCategories(c.Request().Context())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to fetch categories")
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategoryBySlug(c echo.Context) error {
	category, err := h.Store.GetCategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "Category not found")
		}
		return errorResponse(c, http.StatusInternalServerError, "Failed to fetch category")
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req models.Category
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err.Error())
	}
	if req.Name == "" || req.Slug == "" {
		return errorResponse(c, http.StatusBadRequest, "Missing required fields")
	}

	category, err := h.Store.CreateCategory(c.Request().Context(), &req)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to create category")
	}
	return c.JSON(http.StatusCreated, category)
}
