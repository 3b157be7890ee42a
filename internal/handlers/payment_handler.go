package handlers

import (
	"github.com/doctorportal/api/internal/payments"
	"github.com/gofiber/fiber/v2"
)

// CreatePaymentIntent asks the payment processor for a card intent over
// the given price (major currency units, USD) and returns the client
// secret the frontend confirms with.
func (h *Handler) CreatePaymentIntent(c *fiber.Ctx) error {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	secret, err := h.Payments.CreateIntent(payments.MinorUnits(body.Price), "usd")
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to create payment intent"})
	}
	return c.JSON(fiber.Map{"clientSecret": secret})
}
