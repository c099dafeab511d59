package router // route registration for the booking API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/field-reservation/internal/handler"
	"github.com/iliyamo/field-reservation/internal/middleware"
)

// Handlers groups every handler the API mounts, so registration takes one
// argument instead of a parade of them.
type Handlers struct {
	Auth         *handler.AuthHandler
	Reservations *handler.ReservationHandler
	Venues       *handler.VenueHandler
	Verification *handler.VerificationHandler
	Clock        *handler.ClockHandler
}

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitors probe this endpoint to verify that the
	// service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterAPI mounts the versioned API surface.
//
// Three tiers of routes exist:
//   - open endpoints (auth bootstrap, verification codes) behind the
//     rate limiter, since they can be hammered anonymously;
//   - the public venue listing behind the response cache;
//   - protected endpoints under JWT, where bookings are made and queried.
func RegisterAPI(e *echo.Echo, h Handlers, jwtSecret string, rateLimit, cache echo.MiddlewareFunc) {
	// Unauthenticated operations live under /v1/auth plus a couple of
	// loose utility routes.  All of them share the token bucket.
	open := e.Group("/v1", rateLimit)
	open.POST("/auth/register", h.Auth.Register)
	open.POST("/auth/login", h.Auth.Login)
	open.POST("/auth/password-reset", h.Auth.RequestPasswordReset)
	open.POST("/auth/password-reset/confirm", h.Auth.ConfirmPasswordReset)
	open.POST("/verification-codes", h.Verification.Issue)

	// Guest-browsable catalog list behind the Redis response cache.
	e.GET("/v1/venues", h.Venues.List, rateLimit, cache)

	// Everything below requires a valid access token.
	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.GET("/me", h.Auth.Me)
	auth.GET("/venues/:id", h.Venues.Get)
	auth.GET("/time", h.Clock.Time)
	auth.POST("/reservations", h.Reservations.Create)
	auth.GET("/reservations", h.Reservations.ListBySlot)
	auth.GET("/reservations/by-contact", h.Reservations.ListByContact)
	auth.POST("/reservations/prune", h.Reservations.Prune)
}
