package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/ridepool/ridepool/internal/pkg/middleware"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/services/rides"
	httpHandler "github.com/ridepool/ridepool/services/rides/handler/http"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP *httpHandler.RidesHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	ridesUC rides.RideUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		ridesHTTP: httpHandler.NewRidesHandler(ridesUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes. The board and single-ride reads
// accept anonymous viewers; everything else requires a bearer token.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	optionalAuth := middleware.OptionalJWTAuthMiddleware(h.cfg.JWT)
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	ridesGroup := e.Group("/rides")

	ridesGroup.GET("", h.ridesHTTP.OpenBoard, optionalAuth)

	ridesGroup.POST("", h.ridesHTTP.CreateRide, auth)
	ridesGroup.GET("/mine", h.ridesHTTP.MyRides, auth)
	ridesGroup.GET("/driven", h.ridesHTTP.DrivenRides, auth)
	ridesGroup.GET("/search", h.ridesHTTP.DriverSearch, auth)

	ridesGroup.GET("/:rideID", h.ridesHTTP.GetRide, optionalAuth)
	ridesGroup.PUT("/:rideID", h.ridesHTTP.UpdateRide, auth)
	ridesGroup.POST("/:rideID/cancel", h.ridesHTTP.CancelRide, auth)
	ridesGroup.POST("/:rideID/join", h.ridesHTTP.JoinRide, auth)
	ridesGroup.DELETE("/:rideID/join", h.ridesHTTP.QuitRide, auth)
	ridesGroup.POST("/:rideID/claim", h.ridesHTTP.ClaimRide, auth)
	ridesGroup.POST("/:rideID/complete", h.ridesHTTP.CompleteRide, auth)
}
