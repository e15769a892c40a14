// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"draftdesk/internal/delivery/http/middleware"
	"draftdesk/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler      *handler.SessionHandler
	GuardHandler        *handler.GuardHandler
	LeadHandler         *handler.LeadHandler
	AttachmentHandler   *handler.AttachmentHandler
	OrderHandler        *handler.OrderHandler
	PortfolioHandler    *handler.PortfolioHandler
	ContentHandler      *handler.ContentHandler
	NotificationHandler *handler.NotificationHandler
	ProfileHandler      *handler.ProfileHandler
	AuthMiddleware      *middleware.AuthMiddleware
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
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public marketing site routes
	e.GET("/api/content", p.ContentHandler.PublicContent)
	e.GET("/api/portfolio", p.PortfolioHandler.PublicList)
	e.GET("/api/portfolio/:id/qr", p.PortfolioHandler.ShareQR)
	e.POST("/api/leads", p.LeadHandler.Submit)

	// Broadcast push delivery from sibling instances. The envelope carries
	// the origin; the broadcaster drops its own echoes.
	e.POST("/api/broadcast/portfolio", p.PortfolioHandler.ReceiveBroadcast)

	// Auth routes
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/login", p.SessionHandler.SignIn)
		authGroup.POST("/google", p.SessionHandler.SignInWithGoogle)
		authGroup.POST("/apple", p.SessionHandler.SignInWithApple)
		authGroup.POST("/refresh", p.SessionHandler.Refresh)
		authGroup.POST("/logout", p.SessionHandler.SignOut)
		authGroup.GET("/me", p.SessionHandler.Me, p.AuthMiddleware.Authenticate)

		// The guard works for anonymous callers too, so the token is optional.
		authGroup.GET("/guard", p.GuardHandler.Decide, p.AuthMiddleware.AuthenticateOptional)
	}

	// Client area routes require a signed-in principal
	clientGroup := e.Group("/api/client")
	clientGroup.Use(p.AuthMiddleware.Authenticate)
	{
		clientGroup.GET("/profile", p.ProfileHandler.Me)
		clientGroup.POST("/orders", p.OrderHandler.Create)
		clientGroup.GET("/orders", p.OrderHandler.ListMine)
		clientGroup.GET("/orders/:id", p.OrderHandler.GetMine)
		clientGroup.GET("/notifications", p.NotificationHandler.ListMine)
		clientGroup.POST("/notifications/:id/read", p.NotificationHandler.MarkRead)
	}

	// Admin area routes require a signed-in principal on the allow-list
	adminGroup := e.Group("/api/admin")
	adminGroup.Use(p.AuthMiddleware.Authenticate)
	adminGroup.Use(p.AuthMiddleware.RequireAdmin)
	{
		adminGroup.GET("/leads", p.LeadHandler.List)
		adminGroup.GET("/leads/:id", p.LeadHandler.Get)
		adminGroup.PATCH("/leads/:id/status", p.LeadHandler.UpdateStatus)

		adminGroup.POST("/leads/:id/attachments", p.AttachmentHandler.Upload)
		adminGroup.GET("/leads/:id/attachments", p.AttachmentHandler.List)
		adminGroup.DELETE("/leads/:id/attachments/:index", p.AttachmentHandler.Delete)

		adminGroup.GET("/orders", p.OrderHandler.ListAll)
		adminGroup.GET("/orders/:id", p.OrderHandler.GetAny)
		adminGroup.PATCH("/orders/:id", p.OrderHandler.Update)

		adminGroup.GET("/portfolio", p.PortfolioHandler.AdminList)
		adminGroup.POST("/portfolio", p.PortfolioHandler.Save)
		adminGroup.DELETE("/portfolio/:id", p.PortfolioHandler.Delete)

		adminGroup.GET("/services", p.ContentHandler.ListServices)
		adminGroup.POST("/services", p.ContentHandler.SaveService)
		adminGroup.DELETE("/services/:id", p.ContentHandler.DeleteService)

		adminGroup.GET("/testimonials", p.ContentHandler.ListTestimonials)
		adminGroup.POST("/testimonials", p.ContentHandler.SaveTestimonial)
		adminGroup.DELETE("/testimonials/:id", p.ContentHandler.DeleteTestimonial)

		adminGroup.GET("/carousel", p.ContentHandler.ListCarousel)
		adminGroup.POST("/carousel", p.ContentHandler.SaveCarouselImage)
		adminGroup.DELETE("/carousel/:id", p.ContentHandler.DeleteCarouselImage)
	}
}
