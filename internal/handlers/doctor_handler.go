package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"
)

// ListDoctors returns all doctor profiles, image bytes included.
func (h *Handler) ListDoctors(c *fiber.Ctx) error {
	doctors, err := h.Doctors.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to fetch doctors"})
	}
	return c.JSON(doctors)
}

// RegisterDoctor stores a doctor profile from a multipart form with
// name, email and an image file.
func (h *Handler) RegisterDoctor(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing image file"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to open image"})
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to read image"})
	}

	id, err := h.Doctors.Register(c.Context(), c.FormValue("name"), c.FormValue("email"), image)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to create doctor"})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "insertedId": id})
}
