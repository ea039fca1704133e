package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/ridepool/ridepool/internal/pkg/jwt"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/internal/utils"
)

const principalContextKey = "principal"

// JWTAuthMiddleware creates a middleware that requires a valid bearer token
// and stores the resulting Principal in the Echo context.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := principalFromRequest(c, config)
			if err != nil {
				return utils.UnauthorizedResponse(c, err.Error())
			}

			c.Set(principalContextKey, principal)
			c.Set("user_id", principal.UserID)

			return next(c)
		}
	}
}

// OptionalJWTAuthMiddleware parses a bearer token when one is present and
// continues anonymously otherwise. Used for listings visible to the public.
func OptionalJWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") == "" {
				return next(c)
			}

			principal, err := principalFromRequest(c, config)
			if err != nil {
				return utils.UnauthorizedResponse(c, err.Error())
			}

			c.Set(principalContextKey, principal)
			c.Set("user_id", principal.UserID)

			return next(c)
		}
	}
}

// PrincipalFromContext returns the authenticated principal stored by the JWT
// middleware, or nil for anonymous requests.
func PrincipalFromContext(c echo.Context) *models.Principal {
	if p, ok := c.Get(principalContextKey).(*models.Principal); ok {
		return p
	}
	return nil
}

func principalFromRequest(c echo.Context, config models.JWTConfig) (*models.Principal, error) {
	// Get the Authorization header
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("Authorization header is required")
	}

	// Check if the Authorization header has the correct format
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, fmt.Errorf("Invalid authorization format")
	}

	// Validate the token using our JWT package
	claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
	if err != nil {
		return nil, fmt.Errorf("Invalid token")
	}

	// Extract user ID from claims
	userIDStr, ok := (*claims)["user_id"]
	if !ok {
		return nil, fmt.Errorf("Invalid token: missing user_id claim")
	}

	userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
	if err != nil {
		return nil, fmt.Errorf("Invalid token: user_id is not a valid UUID")
	}

	isDriver, _ := (*claims)["is_driver"].(bool)

	return &models.Principal{UserID: userID, IsDriver: isDriver}, nil
}
