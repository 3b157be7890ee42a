package handlers

import (
	"errors"

	"github.com/doctorportal/api/internal/services"
	"github.com/doctorportal/api/internal/store"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// ListAppointments returns the bookings matching the email and date query
// parameters exactly. No match is an empty array, not an error.
func (h *Handler) ListAppointments(c *fiber.Ctx) error {
	appointments, err := h.Appointments.ListByEmailAndDate(c.Context(), c.Query("email"), c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to fetch appointments"})
	}
	return c.JSON(appointments)
}

// BookAppointment inserts the request body as a new appointment and
// returns the store acknowledgment.
func (h *Handler) BookAppointment(c *fiber.Ctx) error {
	var appointment bson.M
	if err := c.BodyParser(&appointment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	id, err := h.Appointments.Book(c.Context(), appointment)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to create appointment"})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "insertedId": id})
}

// GetAppointment looks a booking up by id. An absent booking yields a
// null body on purpose; clients probe this route for existence.
func (h *Handler) GetAppointment(c *fiber.Ctx) error {
	appointment, err := h.Appointments.GetByID(c.Context(), c.Params("id"))
	switch {
	case errors.Is(err, services.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid appointment ID"})
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(nil)
	case err != nil:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to fetch appointment"})
	}
	return c.JSON(appointment)
}

// AttachPayment merges the payment confirmation from the body into the
// identified appointment.
func (h *Handler) AttachPayment(c *fiber.Ctx) error {
	var body struct {
		Payment bson.M `json:"payment"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.Appointments.AttachPayment(c.Context(), c.Params("id"), body.Payment)
	if errors.Is(err, services.ErrInvalidID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid appointment ID"})
	}
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to update appointment"})
	}
	return c.JSON(result)
}
