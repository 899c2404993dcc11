package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/zakihadj/souq/internal/handlers"
	"github.com/zakihadj/souq/internal/service/token"
)

type Deps struct {
	CategoryHandler *handlers.CategoryHandler
	ProductHandler  *handlers.ProductHandler
	CartHandler     *handlers.CartHandler
	OrderHandler    *handlers.OrderHandler
	AuthHandler     *handlers.AuthHandler
	AdminHandler    *handlers.AdminHandler
	SearchHandler   *handlers.SearchHandler
	TokenService    *token.TokenService
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	api := e.Group("/api")

	api.GET("/categories", d.CategoryHandler.GetCategories)
	api.GET("/categories/:slug", d.CategoryHandler.GetCategoryBySlug)

	api.GET("/products", d.ProductHandler.GetProducts)
	api.GET("/products/:id", d.ProductHandler.GetProduct)

	api.GET("/cart/:sessionId", d.CartHandler.GetCart)
	api.POST("/cart", d.CartHandler.AddToCart)
	api.PATCH("/cart/:id", d.CartHandler.UpdateCartItem)
	api.DELETE("/cart/session/:sessionId", d.CartHandler.ClearCart)
	api.DELETE("/cart/:id", d.CartHandler.RemoveFromCart)

	api.GET("/orders", d.OrderHandler.GetOrders)
	api.GET("/orders/:id", d.OrderHandler.GetOrder)
	api.POST("/orders", d.OrderHandler.CreateOrder)
	api.PATCH("/orders/:id/status", d.OrderHandler.UpdateOrderStatus)

	auth := api.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.POST("/logout", d.AuthHandler.Logout)
	auth.GET("/me", d.AuthHandler.Me, d.TokenService.AutoRefreshMiddleware)
	auth.PATCH("/profile", d.AuthHandler.UpdateProfile, d.TokenService.AutoRefreshMiddleware)

	admin := api.Group("/admin", d.TokenService.AdminOnly)
	admin.GET("/stats", d.AdminHandler.Stats)
	admin.POST("/categories", d.CategoryHandler.CreateCategory)
	admin.GET("/products", d.AdminHandler.GetAllProducts)
	admin.POST("/products", d.ProductHandler.CreateProduct)
	admin.PUT("/products/:id", d.ProductHandler.UpdateProduct)
	admin.DELETE("/products/:id", d.ProductHandler.DeleteProduct)
	admin.GET("/orders", d.AdminHandler.GetAllOrders)
	admin.GET("/orders/:id", d.OrderHandler.GetOrder)
	admin.PATCH("/orders/:id", d.OrderHandler.UpdateOrderStatus)

	// search is optional; only wired when Elasticsearch is configured
	if d.SearchHandler != nil {
		api.GET("/search", d.SearchHandler.Search)
	}
}
