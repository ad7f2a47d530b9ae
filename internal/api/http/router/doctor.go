package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Tushar123097/hospital-backend/internal/api/http/handler"
)

func (r *Router) registerDoctorRoutes(
	api fiber.Router,
	dh *handler.DoctorHandler,
	authRequired fiber.Handler,
	doctorOnly fiber.Handler,
) {
	doctors := api.Group("/doctors")

	// Own profile first so "/me" is not swallowed by "/:id".
	me := doctors.Group("/me", authRequired, doctorOnly)
	me.Get("/profile", dh.GetOwnProfile)
	me.Put("/profile", dh.UpdateOwnProfile)

	// Public directory
	doctors.Get("/", dh.List)
	doctors.Get("/:id", dh.GetByID)
}
