package handlers

import (
	"errors"

	"github.com/doctorportal/api/internal/middleware"
	"github.com/doctorportal/api/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// RegisterUser inserts the request body as a new user record.
func (h *Handler) RegisterUser(c *fiber.Ctx) error {
	var user bson.M
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	id, err := h.Users.Register(c.Context(), user)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to create user"})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "insertedId": id})
}

// UpsertUser writes the profile keyed by the email in the body.
func (h *Handler) UpsertUser(c *fiber.Ctx) error {
	var user bson.M
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.Users.Upsert(c.Context(), user)
	if errors.Is(err, services.ErrMissingEmail) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email is required"})
	}
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to save user"})
	}
	return c.JSON(result)
}

// GetAdminStatus reports whether the stored role for the email is admin.
func (h *Handler) GetAdminStatus(c *fiber.Ctx) error {
	admin, err := h.Users.IsAdmin(c.Context(), c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to fetch user"})
	}
	return c.JSON(fiber.Map{"admin": admin})
}

// PromoteUser elevates the target user's role to admin. The requester
// must carry a verified identity (middleware) and hold the admin role.
func (h *Handler) PromoteUser(c *fiber.Ctx) error {
	requester, ok := c.Locals(middleware.LocalsEmail).(string)
	if !ok || requester == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var body struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil || body.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.Users.Promote(c.Context(), requester, body.Email)
	if errors.Is(err, services.ErrNotAdmin) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "You do not have permission"})
	}
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to update user"})
	}
	return c.JSON(result)
}
