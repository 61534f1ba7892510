package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AmoolyaSuneja/EduStream/config"
	"github.com/AmoolyaSuneja/EduStream/models"
	"github.com/AmoolyaSuneja/EduStream/utils"
)

const userIDKey = "user_id"

// IdentityMiddleware resolves the caller's user id from the Authorization
// token and stores it in request locals. Requests without a valid token
// are not rejected; they run under the anonymous namespace.
func IdentityMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			userID = models.AnonymousUserID
		}
		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// AuthMiddleware rejects requests without a valid token.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID returns the id resolved for this request, falling back to the
// anonymous sentinel.
func UserID(c *fiber.Ctx) string {
	if id, ok := c.Locals(userIDKey).(string); ok && id != "" {
		return id
	}
	return models.AnonymousUserID
}
