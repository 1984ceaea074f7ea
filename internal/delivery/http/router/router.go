// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"freshmarket/internal/delivery/http/middleware"
	"freshmarket/internal/delivery/http/router/handler"
	"freshmarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	RoleHandler      *handler.RoleHandler
	FarmHandler      *handler.FarmHandler
	CategoryHandler  *handler.CategoryHandler
	ProductHandler   *handler.ProductHandler
	StockLinkHandler *handler.StockLinkHandler
	OrderHandler     *handler.OrderHandler
	LineItemHandler  *handler.LineItemHandler
	ReviewHandler    *handler.ReviewHandler
	DeliveryHandler  *handler.DeliveryHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application. Reads are
// public; writes require a valid token and the destructive or administrative
// operations additionally require the ADMIN role.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authn := r.params.AuthMiddleware.Authenticate
	admin := r.params.AuthMiddleware.RequireRole(entity.RoleAdmin)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
	}

	// The authenticated user's own account
	e.GET("/profile", r.params.UserHandler.GetProfile, authn)

	// User management and per-user relationship listings
	userGroup := e.Group("/users", authn)
	{
		userGroup.GET("", r.params.UserHandler.ListUsers, admin)
		userGroup.GET("/:id", r.params.UserHandler.GetUser)
		userGroup.PUT("/:id", r.params.UserHandler.UpdateUser, admin)
		userGroup.DELETE("/:id", r.params.UserHandler.DeleteUser, admin)
		userGroup.GET("/:id/orders", r.params.UserHandler.OrdersForUser)
		userGroup.GET("/:id/reviews", r.params.UserHandler.ReviewsForUser)
	}

	// Role management is an administrative concern
	roleGroup := e.Group("/roles", authn, admin)
	{
		roleGroup.POST("", r.params.RoleHandler.CreateRole)
		roleGroup.GET("", r.params.RoleHandler.ListRoles)
		roleGroup.GET("/:id", r.params.RoleHandler.GetRole)
		roleGroup.PUT("/:id", r.params.RoleHandler.UpdateRole)
		roleGroup.DELETE("/:id", r.params.RoleHandler.DeleteRole)
	}

	// Farms and their derived aggregates
	farmGroup := e.Group("/farms")
	{
		farmGroup.POST("", r.params.FarmHandler.CreateFarm, authn)
		farmGroup.GET("", r.params.FarmHandler.ListFarms)
		farmGroup.GET("/:id", r.params.FarmHandler.GetFarm)
		farmGroup.PUT("/:id", r.params.FarmHandler.UpdateFarm, authn)
		farmGroup.DELETE("/:id", r.params.FarmHandler.DeleteFarm, authn, admin)
		farmGroup.GET("/:id/sales", r.params.FarmHandler.TotalSales)
		farmGroup.GET("/:id/rating", r.params.FarmHandler.AverageRating)
		farmGroup.GET("/:id/products", r.params.FarmHandler.ListFarmProducts)
		farmGroup.GET("/:id/orders", r.params.FarmHandler.ListFarmOrders)
		farmGroup.GET("/:id/reviews", r.params.FarmHandler.ListFarmReviews)
		farmGroup.GET("/:id/stock-links", r.params.StockLinkHandler.ListStockLinksByFarm)
	}

	// Categories
	categoryGroup := e.Group("/categories")
	{
		categoryGroup.POST("", r.params.CategoryHandler.CreateCategory, authn)
		categoryGroup.GET("", r.params.CategoryHandler.ListCategories)
		categoryGroup.GET("/:id", r.params.CategoryHandler.GetCategory)
		categoryGroup.PUT("/:id", r.params.CategoryHandler.UpdateCategory, authn)
		categoryGroup.DELETE("/:id", r.params.CategoryHandler.DeleteCategory, authn, admin)
		categoryGroup.GET("/:id/products", r.params.CategoryHandler.ListCategoryProducts)
	}

	// Products and the stock aggregate
	productGroup := e.Group("/products")
	{
		productGroup.POST("", r.params.ProductHandler.CreateProduct, authn)
		productGroup.GET("", r.params.ProductHandler.ListProducts)
		productGroup.GET("/:id", r.params.ProductHandler.GetProduct)
		productGroup.PUT("/:id", r.params.ProductHandler.UpdateProduct, authn)
		productGroup.DELETE("/:id", r.params.ProductHandler.DeleteProduct, authn, admin)
		productGroup.GET("/:id/stock", r.params.ProductHandler.TotalStock)
		productGroup.GET("/:id/stock-links", r.params.ProductHandler.ListProductStockLinks)
	}

	// Stock links
	stockLinkGroup := e.Group("/stock-links", authn)
	{
		stockLinkGroup.POST("", r.params.StockLinkHandler.CreateStockLink)
		stockLinkGroup.GET("", r.params.StockLinkHandler.ListStockLinks)
		stockLinkGroup.GET("/:id", r.params.StockLinkHandler.GetStockLink)
		stockLinkGroup.PUT("/:id", r.params.StockLinkHandler.UpdateStockLink)
		stockLinkGroup.DELETE("/:id", r.params.StockLinkHandler.DeleteStockLink)
	}

	// Orders, their line items and the computed order value
	orderGroup := e.Group("/orders", authn)
	{
		orderGroup.POST("", r.params.OrderHandler.CreateOrder)
		orderGroup.GET("", r.params.OrderHandler.ListOrders)
		orderGroup.GET("/:id", r.params.OrderHandler.GetOrder)
		orderGroup.PUT("/:id", r.params.OrderHandler.UpdateOrder)
		orderGroup.DELETE("/:id", r.params.OrderHandler.DeleteOrder, admin)
		orderGroup.GET("/:id/value", r.params.LineItemHandler.OrderValue)
		orderGroup.GET("/:id/line-items", r.params.LineItemHandler.ListLineItemsByOrder)
	}

	// Line items
	lineItemGroup := e.Group("/line-items", authn)
	{
		lineItemGroup.POST("", r.params.LineItemHandler.CreateLineItem)
		lineItemGroup.GET("", r.params.LineItemHandler.ListLineItems)
		lineItemGroup.GET("/:id", r.params.LineItemHandler.GetLineItem)
		lineItemGroup.PUT("/:id", r.params.LineItemHandler.UpdateLineItem)
		lineItemGroup.DELETE("/:id", r.params.LineItemHandler.DeleteLineItem)
	}

	// Reviews
	reviewGroup := e.Group("/reviews")
	{
		reviewGroup.POST("", r.params.ReviewHandler.CreateReview, authn)
		reviewGroup.GET("", r.params.ReviewHandler.ListReviews)
		reviewGroup.GET("/:id", r.params.ReviewHandler.GetReview)
		reviewGroup.PUT("/:id", r.params.ReviewHandler.UpdateReview, authn)
		reviewGroup.DELETE("/:id", r.params.ReviewHandler.DeleteReview, authn)
	}

	// Deliveries
	deliveryGroup := e.Group("/deliveries", authn)
	{
		deliveryGroup.POST("", r.params.DeliveryHandler.CreateDelivery)
		deliveryGroup.GET("", r.params.DeliveryHandler.ListDeliveries)
		deliveryGroup.GET("/:id", r.params.DeliveryHandler.GetDelivery)
		deliveryGroup.PUT("/:id", r.params.DeliveryHandler.UpdateDelivery)
		deliveryGroup.DELETE("/:id", r.params.DeliveryHandler.DeleteDelivery, admin)
	}
}
