package handlers

import (
	"github.com/doctorportal/api/internal/auth"
	"github.com/doctorportal/api/internal/middleware"
	"github.com/doctorportal/api/internal/payments"
	"github.com/doctorportal/api/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	Appointments *services.AppointmentService
	Users        *services.UserService
	Doctors      *services.DoctorService
	Payments     payments.IntentCreator
}

func New(appointments *services.AppointmentService, users *services.UserService, doctors *services.DoctorService, intents payments.IntentCreator) *Handler {
	return &Handler{
		Appointments: appointments,
		Users:        users,
		Doctors:      doctors,
		Payments:     intents,
	}
}

// Routes mounts every endpoint on the app. Only the admin-promotion route
// runs behind the identity middleware.
func (h *Handler) Routes(app *fiber.App, verifier auth.Verifier) {
	app.Get("/", h.Health)

	app.Get("/appointments", h.ListAppointments)
	app.Post("/appointments", h.BookAppointment)
	app.Get("/appointments/:id", h.GetAppointment)
	app.Put("/appointments/:id", h.AttachPayment)

	app.Get("/doctors", h.ListDoctors)
	app.Post("/doctors", h.RegisterDoctor)

	app.Get("/users/:email", h.GetAdminStatus)
	app.Post("/users", h.RegisterUser)
	app.Put("/users", h.UpsertUser)
	app.Put("/users/admin", middleware.Identity(verifier), h.PromoteUser)

	app.Post("/create-payment-intent", h.CreatePaymentIntent)
}

// Health is the liveness probe.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("Running Server")
}
