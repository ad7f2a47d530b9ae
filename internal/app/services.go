package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Tushar123097/hospital-backend/config"
	"github.com/Tushar123097/hospital-backend/internal/repo"
	"github.com/Tushar123097/hospital-backend/internal/service/appointment"
	"github.com/Tushar123097/hospital-backend/internal/service/auth"
	"github.com/Tushar123097/hospital-backend/internal/service/booking"
	"github.com/Tushar123097/hospital-backend/internal/service/directory"
	"github.com/Tushar123097/hospital-backend/internal/service/profile"
	"github.com/Tushar123097/hospital-backend/pkg/authguard"
	pasetotoken "github.com/Tushar123097/hospital-backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvidePasetoManager,
		ProvideGuard,
		ProvideAuthService,
		ProvideDirectoryService,
		ProvideProfileService,
		ProvideBookingService,
		ProvideAppointmentService,
	),
)

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}

func ProvideGuard(mgr *pasetotoken.Manager, rdb *redis.Client) *authguard.Guard {
	return authguard.New(mgr, authguard.NewRedisSessionStore(rdb))
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, cfg)
}

func ProvideDirectoryService(db *repo.Client) directory.Service {
	return directory.New(db)
}

func ProvideProfileService(db *repo.Client) profile.Service {
	return profile.New(db)
}

func ProvideBookingService(db *repo.Client, nc *nats.Conn, cfg *config.Config) booking.Service {
	return booking.New(db, nc, cfg.Booking)
}

func ProvideAppointmentService(db *repo.Client, nc *nats.Conn) appointment.Service {
	return appointment.New(db, nc)
}
