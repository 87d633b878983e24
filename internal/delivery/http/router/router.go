// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pawmart/internal/delivery/http/middleware"
	"pawmart/internal/delivery/http/router/handler"
	"pawmart/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler     *handler.ProductHandler
	PetHandler         *handler.PetHandler
	TestimonialHandler *handler.TestimonialHandler
	CollectionHandler  *handler.CollectionHandler
	OrderHandler       *handler.OrderHandler
	ProfileHandler     *handler.ProfileHandler
	AdminHandler       *handler.AdminHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler     *handler.ProductHandler
	petHandler         *handler.PetHandler
	testimonialHandler *handler.TestimonialHandler
	collectionHandler  *handler.CollectionHandler
	orderHandler       *handler.OrderHandler
	profileHandler     *handler.ProfileHandler
	adminHandler       *handler.AdminHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:     params.ProductHandler,
		petHandler:         params.PetHandler,
		testimonialHandler: params.TestimonialHandler,
		collectionHandler:  params.CollectionHandler,
		orderHandler:       params.OrderHandler,
		profileHandler:     params.ProfileHandler,
		adminHandler:       params.AdminHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog reads are public; writes require authentication.
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.POST("", r.productHandler.CreateProduct, r.authMiddleware.Authenticate)
		productGroup.POST("/upload", r.productHandler.UploadMedia, r.authMiddleware.Authenticate)
		productGroup.PUT("/:id", r.productHandler.UpdateProduct, r.authMiddleware.Authenticate)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct, r.authMiddleware.Authenticate)
	}

	petGroup := e.Group("/pets")
	{
		petGroup.GET("", r.petHandler.ListPets)
		petGroup.GET("/:id", r.petHandler.GetPet)
		petGroup.POST("", r.petHandler.CreatePet, r.authMiddleware.Authenticate)
		petGroup.PUT("/:id", r.petHandler.UpdatePet, r.authMiddleware.Authenticate)
		petGroup.DELETE("/:id", r.petHandler.DeletePet, r.authMiddleware.Authenticate)
	}

	testimonialGroup := e.Group("/testimonials")
	{
		testimonialGroup.GET("", r.testimonialHandler.ListTestimonials)
		testimonialGroup.GET("/:id", r.testimonialHandler.GetTestimonial)
		testimonialGroup.POST("", r.testimonialHandler.CreateTestimonial, r.authMiddleware.Authenticate)
		testimonialGroup.PUT("/:id", r.testimonialHandler.UpdateTestimonial, r.authMiddleware.Authenticate)
		testimonialGroup.DELETE("/:id", r.testimonialHandler.DeleteTestimonial, r.authMiddleware.Authenticate)
	}

	// Cart and wishlist share one handler; the group picks the collection.
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.collectionHandler.GetCollection(entity.CollectionKindCart))
		cartGroup.POST("", r.collectionHandler.AddItem(entity.CollectionKindCart))
		cartGroup.PUT("", r.collectionHandler.AdjustQuantity(entity.CollectionKindCart))
		cartGroup.DELETE("", r.collectionHandler.RemoveItem(entity.CollectionKindCart))
	}

	wishlistGroup := e.Group("/wishlist")
	wishlistGroup.Use(r.authMiddleware.Authenticate)
	{
		wishlistGroup.GET("", r.collectionHandler.GetCollection(entity.CollectionKindWishlist))
		wishlistGroup.POST("", r.collectionHandler.AddItem(entity.CollectionKindWishlist))
		wishlistGroup.PUT("", r.collectionHandler.AdjustQuantity(entity.CollectionKindWishlist))
		wishlistGroup.DELETE("", r.collectionHandler.RemoveItem(entity.CollectionKindWishlist))
	}

	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
	}

	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.POST("", r.profileHandler.CreateProfile)
		profileGroup.GET("/:uid", r.profileHandler.GetProfile)
	}

	// Admin routes require authentication and the "admin" role.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/users/:uid", r.adminHandler.GetUserRole)
	}
}
