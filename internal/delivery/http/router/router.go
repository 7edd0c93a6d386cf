// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ShopHandler     *handler.ShopHandler
	AdminHandler    *handler.AdminHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth           *handler.AuthHandler
	shop           *handler.ShopHandler
	admin          *handler.AdminHandler
	cart           *handler.CartHandler
	checkout       *handler.CheckoutHandler
	order          *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:           params.AuthHandler,
		shop:           params.ShopHandler,
		admin:          params.AdminHandler,
		cart:           params.CartHandler,
		checkout:       params.CheckoutHandler,
		order:          params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the storefront.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public catalog
	e.GET("/", r.shop.Index)
	e.GET("/products", r.shop.ListProducts)
	e.GET("/products/:id", r.shop.GetProduct)
	e.GET("/images/:name", r.shop.GetImage)

	// Account and session
	e.GET("/session", r.auth.Session)
	e.POST("/signup", r.auth.Signup)
	e.POST("/login", r.auth.Login)
	e.POST("/logout", r.auth.Logout)
	e.POST("/reset", r.auth.RequestReset)
	e.POST("/new-password/:token", r.auth.NewPassword)

	// Session-only routes take the middleware per route so unknown paths still 404.
	requireAuth := r.authMiddleware.RequireAuth

	e.GET("/cart", r.cart.GetCart, requireAuth)
	e.POST("/cart", r.cart.AddToCart, requireAuth)
	e.POST("/cart-delete-item", r.cart.RemoveItem, requireAuth)

	e.GET("/checkout", r.checkout.Checkout, requireAuth)
	e.GET("/checkout/success", r.checkout.Success, requireAuth)
	e.GET("/checkout/cancel", r.checkout.Cancel, requireAuth)
	e.POST("/create-order", r.checkout.CreateOrder, requireAuth)

	e.GET("/orders", r.order.ListOrders, requireAuth)
	e.GET("/orders/:id", r.order.GetInvoice, requireAuth)

	adminGroup := e.Group("/admin", requireAuth)
	{
		adminGroup.GET("/products", r.admin.ListProducts)
		adminGroup.GET("/add-product", r.admin.GetAddProduct)
		adminGroup.GET("/edit-product/:id", r.admin.GetEditProduct)
		adminGroup.POST("/add-product", r.admin.AddProduct)
		adminGroup.POST("/edit-product", r.admin.EditProduct)
		adminGroup.DELETE("/product/:id", r.admin.DeleteProduct)
	}
}
