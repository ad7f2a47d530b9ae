package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Tushar123097/hospital-backend/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
	doctorOnly fiber.Handler,
	patientOnly fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired)

	appts.Get("/", ah.List)
	appts.Post("/", patientOnly, ah.Book)

	a := appts.Group("/:id")
	a.Get("/", ah.GetByID)
	a.Patch("/status", doctorOnly, ah.UpdateStatus)
	a.Patch("/cancel", patientOnly, ah.Cancel)
}
