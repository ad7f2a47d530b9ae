package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Tushar123097/hospital-backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(
	api fiber.Router,
	ah *handler.AuthHandler,
	authRequired fiber.Handler,
) {
	a := api.Group("/auth")

	a.Post("/register", ah.Register)
	a.Post("/login", ah.Login)
	a.Post("/refresh", ah.Refresh)

	a.Post("/logout", authRequired, ah.Logout)
	a.Get("/me", authRequired, ah.Me)
}
