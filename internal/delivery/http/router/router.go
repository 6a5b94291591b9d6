// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pawsconnect/internal/delivery/http/middleware"
	"pawsconnect/internal/delivery/http/router/handler"
	"pawsconnect/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	PetHandler          *handler.PetHandler
	AdoptionHandler     *handler.AdoptionHandler
	CareHandler         *handler.CareHandler
	ListingHandler      *handler.ListingHandler
	NotificationHandler *handler.NotificationHandler
	AdminHandler        *handler.AdminHandler
	ImageHandler        *handler.ImageHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestID           *middleware.RequestIDMiddleware
	Logger              *middleware.LoggerMiddleware
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

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	e.Use(r.params.RequestID.Process)
	e.Use(r.params.Logger.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Uploaded images
	e.GET("/static/pet_images/:filename", r.params.ImageHandler.Serve)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
		authGroup.GET("/status", r.params.UserHandler.AuthStatus, auth.AuthenticateOptional)
	}

	// Pet routes: reads and writes both require authentication
	petGroup := e.Group("/pets")
	petGroup.Use(auth.Authenticate)
	{
		petGroup.GET("", r.params.PetHandler.List)
		petGroup.GET("/:id", r.params.PetHandler.Get)
		petGroup.POST("", r.params.PetHandler.Create)
		petGroup.DELETE("/:id", r.params.PetHandler.Delete)
		petGroup.POST("/:id/adopt", r.params.AdoptionHandler.Request)
	}

	// Adoption routes
	adoptionGroup := e.Group("/adoptions")
	adoptionGroup.Use(auth.Authenticate)
	{
		adoptionGroup.GET("/mine", r.params.AdoptionHandler.ListMine)
		adoptionGroup.POST("/:id/decide", r.params.AdoptionHandler.Decide, auth.RequireRole(entity.RoleAdmin.String()))
	}

	// Care service catalog: public reads, admin-only writes
	serviceGroup := e.Group("/services")
	{
		serviceGroup.GET("", r.params.CareHandler.ListServices)
		serviceGroup.GET("/:id", r.params.CareHandler.GetService)
		serviceGroup.POST("", r.params.CareHandler.CreateService,
			auth.Authenticate, auth.RequireRole(entity.RoleAdmin.String()))
	}

	// Booking routes
	bookingGroup := e.Group("/bookings")
	bookingGroup.Use(auth.Authenticate)
	{
		bookingGroup.POST("", r.params.CareHandler.Book)
		bookingGroup.GET("/mine", r.params.CareHandler.ListMyBookings)
		bookingGroup.DELETE("/:id", r.params.CareHandler.CancelBooking)
	}

	// Marketplace listings: public reads, authenticated writes
	listingGroup := e.Group("/listings")
	{
		listingGroup.GET("", r.params.ListingHandler.List)
		listingGroup.GET("/:id", r.params.ListingHandler.Get)
		listingGroup.POST("", r.params.ListingHandler.Create, auth.Authenticate)
		listingGroup.DELETE("/:id", r.params.ListingHandler.Delete, auth.Authenticate)
	}

	// Notification routes
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(auth.Authenticate)
	{
		notificationGroup.GET("/mine", r.params.NotificationHandler.ListMine)
		notificationGroup.POST("/:id/read", r.params.NotificationHandler.MarkRead)
	}

	// Admin panel: authentication plus the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(auth.Authenticate)
	adminGroup.Use(auth.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.GET("/users", r.params.AdminHandler.ListUsers)
		adminGroup.DELETE("/users/:id", r.params.AdminHandler.DeleteUser)
	}
}
