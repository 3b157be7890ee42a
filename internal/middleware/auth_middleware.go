package middleware

import (
	"strings"

	"github.com/doctorportal/api/internal/auth"
	"github.com/gofiber/fiber/v2"
)

// LocalsEmail is the Locals key holding the verified requester email.
const LocalsEmail = "verifiedEmail"

// Identity validates the bearer credential and stores the verified email
// in Locals for downstream handlers. Missing or invalid credentials are
// rejected with 401 rather than silently passed through.
func Identity(verifier auth.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token"})
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header || tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token format"})
		}

		email, err := verifier.Verify(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}

		c.Locals(LocalsEmail, email)
		return c.Next()
	}
}
