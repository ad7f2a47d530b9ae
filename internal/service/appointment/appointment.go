// Package appointment manages booked appointments after creation: listing
// them for patients and doctors, and moving them through the status
// lifecycle. Booking itself lives in the booking package.
package appointment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/Tushar123097/hospital-backend/internal/events"
	"github.com/Tushar123097/hospital-backend/internal/repo"
	entappt "github.com/Tushar123097/hospital-backend/internal/repo/appointment"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	Status  *entappt.Status
	From    *time.Time
	To      *time.Time
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error)

	// ListForPatient returns the patient's own appointments, newest day
	// first, then by token within a day.
	ListForPatient(ctx context.Context, patientID uuid.UUID, req ListRequest) ([]*repo.Appointment, error)

	// ListForDoctor returns the doctor's queue, oldest day first, then by
	// token, matching the order patients are seen.
	ListForDoctor(ctx context.Context, doctorID uuid.UUID, req ListRequest) ([]*repo.Appointment, error)

	// Transition moves an appointment to a new status on behalf of its
	// doctor. Illegal moves return ErrInvalidTransition; acting on someone
	// else's appointment returns ErrNotOwner.
	Transition(ctx context.Context, doctorID, apptID uuid.UUID, to entappt.Status) (*repo.Appointment, error)

	// CancelByPatient lets a patient cancel their own non-terminal
	// appointment. The token is not reissued.
	CancelByPatient(ctx context.Context, patientID, apptID uuid.UUID) (*repo.Appointment, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &appointmentService{db: db, nc: nc}
}

func (s *appointmentService) GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) ListForPatient(ctx context.Context, patientID uuid.UUID, req ListRequest) ([]*repo.Appointment, error) {
	q := s.db.Appointment.Query().
		Where(entappt.PatientID(patientID)).
		Order(entappt.ByDate(sql.OrderDesc()), entappt.ByToken())

	return s.list(ctx, q, req)
}

func (s *appointmentService) ListForDoctor(ctx context.Context, doctorID uuid.UUID, req ListRequest) ([]*repo.Appointment, error) {
	q := s.db.Appointment.Query().
		Where(entappt.DoctorID(doctorID)).
		Order(entappt.ByDate(), entappt.ByToken())

	return s.list(ctx, q, req)
}

func (s *appointmentService) list(ctx context.Context, q *repo.AppointmentQuery, req ListRequest) ([]*repo.Appointment, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(*req.Status))
	}
	if req.From != nil {
		q = q.Where(entappt.DateGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entappt.DateLT(*req.To))
	}

	appts, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *appointmentService) Transition(ctx context.Context, doctorID, apptID uuid.UUID, to entappt.Status) (*repo.Appointment, error) {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return nil, err
	}

	if appt.DoctorID != doctorID {
		return nil, ErrNotOwner
	}

	return s.move(ctx, appt, to)
}

func (s *appointmentService) CancelByPatient(ctx context.Context, patientID, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return nil, err
	}

	if appt.PatientID != patientID {
		return nil, ErrNotOwner
	}

	return s.move(ctx, appt, entappt.StatusCancelled)
}

// move applies a lifecycle transition with a conditional update, so two
// concurrent moves from the same status cannot both win.
func (s *appointmentService) move(ctx context.Context, appt *repo.Appointment, to entappt.Status) (*repo.Appointment, error) {
	from := appt.Status
	if !CanTransition(from, to) {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	upd := s.db.Appointment.Update().
		Where(
			entappt.ID(appt.ID),
			entappt.StatusEQ(from),
		).
		SetStatus(to)

	switch to {
	case entappt.StatusConfirmed:
		upd = upd.SetConfirmedAt(now)
	case entappt.StatusCompleted:
		upd = upd.SetCompletedAt(now)
	case entappt.StatusCancelled:
		upd = upd.SetCancelledAt(now)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	if n == 0 {
		return nil, ErrStatusChanged
	}

	s.publishStatus(appt.ID, from, to)

	updated, err := s.GetByID(ctx, appt.ID)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *appointmentService) publishStatus(apptID uuid.UUID, from, to entappt.Status) {
	if s.nc == nil {
		return
	}
	payload, err := events.StatusChange{
		AppointmentID: apptID,
		OldStatus:     string(from),
		NewStatus:     string(to),
	}.Marshal()
	if err != nil {
		return
	}
	_ = s.nc.Publish(events.SubjectStatus(apptID), payload)
}
