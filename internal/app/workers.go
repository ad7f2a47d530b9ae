package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/Tushar123097/hospital-backend/internal/events"
	"github.com/Tushar123097/hospital-backend/internal/repo"
	entappt "github.com/Tushar123097/hospital-backend/internal/repo/appointment"
	entuser "github.com/Tushar123097/hospital-backend/internal/repo/user"
	"github.com/Tushar123097/hospital-backend/pkg/email"
	"github.com/Tushar123097/hospital-backend/pkg/util/slots"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc    fx.Lifecycle
	NC    *nats.Conn
	DB    *repo.Client
	Email *email.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startMailWorker(p.NC, p.DB, p.Email)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// mail_worker
// ---------------------------------------------------------------------------

// startMailWorker emails patients when their appointment is booked or when
// the doctor moves it to a new status. Failures are logged, never retried;
// the appointment itself is already committed.
func startMailWorker(nc *nats.Conn, db *repo.Client, mail *email.Client) {
	// Booking confirmations
	_, err := nc.Subscribe(events.SubjectBookedWildcard, func(msg *nats.Msg) {
		apptIDStr := strings.TrimSpace(string(msg.Data))
		apptID, err := uuid.Parse(apptIDStr)
		if err != nil {
			return
		}

		ctx := context.Background()

		data, ok := loadEmailData(ctx, db, apptID)
		if !ok {
			return
		}

		if err := mail.Send(ctx, email.BuildBookingConfirmedEmail(data)); err != nil {
			slog.Warn("mail_worker: booking email failed", "appointment_id", apptIDStr, "err", err)
		}
	})
	if err != nil {
		slog.Error("mail_worker: subscribe appointment.booked failed", "err", err)
	}

	// Status change notices
	_, err = nc.Subscribe(events.SubjectStatusWildcard, func(msg *nats.Msg) {
		change, err := events.UnmarshalStatusChange(msg.Data)
		if err != nil {
			slog.Warn("mail_worker: bad status payload", "err", err)
			return
		}

		ctx := context.Background()

		data, ok := loadEmailData(ctx, db, change.AppointmentID)
		if !ok {
			return
		}
		data.OldStatus = change.OldStatus
		data.NewStatus = change.NewStatus

		if err := mail.Send(ctx, email.BuildStatusChangedEmail(data)); err != nil {
			slog.Warn("mail_worker: status email failed", "appointment_id", change.AppointmentID, "err", err)
		}
	})
	if err != nil {
		slog.Error("mail_worker: subscribe appointment.status failed", "err", err)
	}

	slog.Info("mail_worker: started")
}

// loadEmailData fetches the appointment plus both parties and fills the
// template fields shared by every appointment email.
func loadEmailData(ctx context.Context, db *repo.Client, apptID uuid.UUID) (email.AppointmentEmailData, bool) {
	appt, err := db.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(ctx)
	if err != nil {
		slog.Warn("mail_worker: appointment not found", "id", apptID, "err", err)
		return email.AppointmentEmailData{}, false
	}

	patient, err := db.User.Query().
		Where(entuser.ID(appt.PatientID)).
		Only(ctx)
	if err != nil {
		slog.Warn("mail_worker: patient not found", "id", appt.PatientID, "err", err)
		return email.AppointmentEmailData{}, false
	}

	doctor, err := db.User.Query().
		Where(entuser.ID(appt.DoctorID)).
		Only(ctx)
	if err != nil {
		slog.Warn("mail_worker: doctor not found", "id", appt.DoctorID, "err", err)
		return email.AppointmentEmailData{}, false
	}

	return email.AppointmentEmailData{
		RecipientName:  patient.Name,
		RecipientEmail: patient.Email,
		DoctorName:     doctor.Name,
		PatientName:    patient.Name,
		Date:           appt.Date.Format("2006-01-02"),
		SlotLabel:      slots.Label(appt.Token),
		Token:          appt.Token,
	}, true
}
