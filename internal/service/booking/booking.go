// Package booking creates appointments. Each booking is assigned a queue
// token for the doctor's day, and the token determines the visit time: slot 1
// starts at 09:00, each later token 15 minutes after the previous one.
package booking

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/Tushar123097/hospital-backend/config"
	"github.com/Tushar123097/hospital-backend/internal/events"
	"github.com/Tushar123097/hospital-backend/internal/repo"
	entdoc "github.com/Tushar123097/hospital-backend/internal/repo/doctorprofile"
	entuser "github.com/Tushar123097/hospital-backend/internal/repo/user"
	"github.com/Tushar123097/hospital-backend/internal/service/directory"
	"github.com/Tushar123097/hospital-backend/pkg/util/slots"
)

// createAttempts bounds retries when the unique (doctor_id, date, token)
// index rejects a create. The allocator already serializes tokens, so this
// only fires if a counter row was reset by hand.
const createAttempts = 3

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type BookRequest struct {
	DoctorID uuid.UUID
	Date     time.Time // calendar day; only Y/M/D is used
	Symptoms string
}

// Booking is the result of a successful Book: the created appointment plus
// its derived slot time.
type Booking struct {
	Appointment *repo.Appointment
	SlotAt      time.Time
	SlotLabel   string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Book(ctx context.Context, patientID uuid.UUID, req BookRequest) (*Booking, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type bookingService struct {
	db  *repo.Client
	nc  *nats.Conn
	cfg config.BookingConfig
	loc *time.Location
}

func New(db *repo.Client, nc *nats.Conn, cfg config.BookingConfig) Service {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		slog.Warn("booking: unknown timezone, falling back to UTC", "tz", cfg.Timezone, "err", err)
		loc = time.UTC
	}
	return &bookingService{db: db, nc: nc, cfg: cfg, loc: loc}
}

func (s *bookingService) Book(ctx context.Context, patientID uuid.UUID, req BookRequest) (*Booking, error) {
	symptoms := strings.TrimSpace(req.Symptoms)
	if symptoms == "" {
		return nil, ErrEmptySymptoms
	}

	day := normalizeDay(req.Date)
	if day.Before(s.today()) {
		return nil, ErrPastDate
	}

	// Only complete, active doctors are bookable. Same predicates as the
	// patient-facing directory.
	bookable, err := s.db.DoctorProfile.Query().
		Where(entdoc.DoctorID(req.DoctorID)).
		Where(directory.CompletePredicates()...).
		Where(entdoc.HasDoctorWith(
			entuser.StatusEQ(entuser.StatusACTIVE),
			entuser.DeletedAtIsNil(),
		)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check doctor: %w", err)
	}
	if !bookable {
		return nil, ErrDoctorNotFound
	}

	var appt *repo.Appointment
	for attempt := 0; attempt < createAttempts; attempt++ {
		appt, err = s.bookOnce(ctx, patientID, req.DoctorID, day, symptoms)
		if repo.IsConstraintError(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		break
	}
	if appt == nil {
		return nil, ErrContention
	}

	if s.nc != nil {
		_ = s.nc.Publish(events.SubjectBooked(appt.ID), []byte(appt.ID.String()))
	}

	return &Booking{
		Appointment: appt,
		SlotAt:      slots.At(day, appt.Token),
		SlotLabel:   slots.Label(appt.Token),
	}, nil
}

// bookOnce allocates a token and creates the appointment in one transaction,
// so a failed create releases the token with the rollback.
func (s *bookingService) bookOnce(ctx context.Context, patientID, doctorID uuid.UUID, day time.Time, symptoms string) (*repo.Appointment, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	token, err := allocateToken(ctx, tx, doctorID, day, s.cfg.MaxTokensPerDay)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	appt, err := tx.Appointment.Create().
		SetDoctorID(doctorID).
		SetPatientID(patientID).
		SetDate(day).
		SetToken(token).
		SetSymptoms(symptoms).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		if repo.IsConstraintError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}
	return appt, nil
}

// normalizeDay strips the time-of-day, keeping the calendar day as midnight
// UTC. Dates are stored and compared this way everywhere.
func normalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// today returns the current calendar day in the configured clinic timezone,
// expressed as midnight UTC so it compares against stored dates.
func (s *bookingService) today() time.Time {
	now := time.Now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
