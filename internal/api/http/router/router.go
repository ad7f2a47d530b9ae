package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/Tushar123097/hospital-backend/config"
	"github.com/Tushar123097/hospital-backend/internal/api/http/handler"
	"github.com/Tushar123097/hospital-backend/internal/api/http/middleware"
	"github.com/Tushar123097/hospital-backend/internal/service/appointment"
	"github.com/Tushar123097/hospital-backend/internal/service/auth"
	"github.com/Tushar123097/hospital-backend/internal/service/booking"
	"github.com/Tushar123097/hospital-backend/internal/service/directory"
	"github.com/Tushar123097/hospital-backend/internal/service/profile"
	"github.com/Tushar123097/hospital-backend/pkg/authguard"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	Guard          *authguard.Guard
	AuthSvc        auth.Service
	DirectorySvc   directory.Service
	ProfileSvc     profile.Service
	BookingSvc     booking.Service
	AppointmentSvc appointment.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.Guard)
	doctorOnly := middleware.RequireRole(authguard.RoleDoctor)
	patientOnly := middleware.RequireRole(authguard.RolePatient)

	authH := handler.NewAuthHandler(r.p.AuthSvc)
	doctorH := handler.NewDoctorHandler(r.p.DirectorySvc, r.p.ProfileSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.BookingSvc, r.p.AppointmentSvc)

	api := app.Group("/api/v1")

	r.registerAuthRoutes(api, authH, authRequired)
	r.registerDoctorRoutes(api, doctorH, authRequired, doctorOnly)
	r.registerAppointmentRoutes(api, appointmentH, authRequired, doctorOnly, patientOnly)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
