package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	jwtPkg "github.com/cougarhub/cougarhub-backend/pkg/jwt"
)

// AuthRequired rejects requests without a valid bearer token and stores
// the authenticated user's ID and email on the request context.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Authorization header is required",
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid authorization header format",
			})
		}

		userID, userEmail, err := parseBearer(authHeader)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid token",
			})
		}

		c.Locals("userID", userID)
		c.Locals("userEmail", userEmail)

		return c.Next()
	}
}

// AuthOptional populates the user context when a valid bearer token is
// present and lets the request through either way. Public pages use it so
// viewer-dependent fields (RSVP state, "my clubs" filter) still work.
func AuthOptional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			if userID, userEmail, err := parseBearer(authHeader); err == nil {
				c.Locals("userID", userID)
				c.Locals("userEmail", userEmail)
			}
		}
		return c.Next()
	}
}

func parseBearer(authHeader string) (uint, string, error) {
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := jwtPkg.ValidateToken(tokenString)
	if err != nil {
		return 0, "", err
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", errInvalidClaims
	}

	userEmail, ok := claims["email"].(string)
	if !ok {
		return 0, "", errInvalidClaims
	}

	return uint(userIDFloat), userEmail, nil
}

var errInvalidClaims = errors.New("invalid token claims")
