package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Tushar123097/hospital-backend/internal/api/http/middleware"
	"github.com/Tushar123097/hospital-backend/internal/repo"
	entappt "github.com/Tushar123097/hospital-backend/internal/repo/appointment"
	"github.com/Tushar123097/hospital-backend/internal/service/appointment"
	"github.com/Tushar123097/hospital-backend/internal/service/booking"
	"github.com/Tushar123097/hospital-backend/pkg/authguard"
	"github.com/Tushar123097/hospital-backend/pkg/util/slots"
)

// dateLayout is the wire format for booking dates.
const dateLayout = "2006-01-02"

type AppointmentHandler struct {
	booking booking.Service
	appts   appointment.Service
}

func NewAppointmentHandler(b booking.Service, a appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{booking: b, appts: a}
}

// appointmentResponse decorates the stored row with the derived slot time.
type appointmentResponse struct {
	ID          uuid.UUID  `json:"id"`
	DoctorID    uuid.UUID  `json:"doctor_id"`
	PatientID   uuid.UUID  `json:"patient_id"`
	Date        string     `json:"date"`
	Token       int        `json:"token"`
	Slot        string     `json:"slot"`
	Status      string     `json:"status"`
	Symptoms    string     `json:"symptoms"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toAppointmentResponse(a *repo.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:          a.ID,
		DoctorID:    a.DoctorID,
		PatientID:   a.PatientID,
		Date:        a.Date.Format(dateLayout),
		Token:       a.Token,
		Slot:        slots.Label(a.Token),
		Status:      string(a.Status),
		Symptoms:    a.Symptoms,
		ConfirmedAt: a.ConfirmedAt,
		CompletedAt: a.CompletedAt,
		CancelledAt: a.CancelledAt,
		CreatedAt:   a.CreatedAt,
	}
}

// POST /appointments  (patient only)
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	id, valid := middleware.IdentityFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		DoctorID string `json:"doctorId"`
		Date     string `json:"date"`
		Symptoms string `json:"symptoms"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.DoctorID == "" || body.Date == "" {
		return badRequest(c, "doctorId and date are required")
	}

	doctorID, err := uuid.Parse(body.DoctorID)
	if err != nil {
		return badRequest(c, "invalid doctorId")
	}
	date, err := time.Parse(dateLayout, body.Date)
	if err != nil {
		return badRequest(c, "date must be YYYY-MM-DD")
	}

	b, err := h.booking.Book(c.Context(), id.UserID, booking.BookRequest{
		DoctorID: doctorID,
		Date:     date,
		Symptoms: body.Symptoms,
	})
	if err != nil {
		return mapBookingError(c, err)
	}

	return created(c, toAppointmentResponse(b.Appointment))
}

// GET /appointments — patients see their own, doctors see their queue.
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	id, valid := middleware.IdentityFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Status  string `query:"status"`
		From    string `query:"from"`
		To      string `query:"to"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	req := appointment.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.Status != "" {
		st := entappt.Status(q.Status)
		if err := entappt.StatusValidator(st); err != nil {
			return badRequest(c, "invalid status")
		}
		req.Status = &st
	}
	if q.From != "" {
		t, err := time.Parse(dateLayout, q.From)
		if err != nil {
			return badRequest(c, "from must be YYYY-MM-DD")
		}
		req.From = &t
	}
	if q.To != "" {
		t, err := time.Parse(dateLayout, q.To)
		if err != nil {
			return badRequest(c, "to must be YYYY-MM-DD")
		}
		req.To = &t
	}

	var (
		appts []*repo.Appointment
		err   error
	)
	if id.Is(authguard.RoleDoctor) {
		appts, err = h.appts.ListForDoctor(c.Context(), id.UserID, req)
	} else {
		appts, err = h.appts.ListForPatient(c.Context(), id.UserID, req)
	}
	if err != nil {
		return mapAppointmentError(c, err)
	}

	out := make([]appointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, toAppointmentResponse(a))
	}
	return ok(c, out)
}

// GET /appointments/:id — only the patient or doctor on the appointment.
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	id, valid := middleware.IdentityFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.appts.GetByID(c.Context(), apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	if appt.PatientID != id.UserID && appt.DoctorID != id.UserID {
		// Hide existence from outsiders.
		return notFound(c, appointment.ErrNotFound.Error())
	}
	return ok(c, toAppointmentResponse(appt))
}

// PATCH /appointments/:id/status  (doctor only)
func (h *AppointmentHandler) UpdateStatus(c fiber.Ctx) error {
	id, valid := middleware.IdentityFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	st := entappt.Status(body.Status)
	if err := entappt.StatusValidator(st); err != nil {
		return badRequest(c, "invalid status")
	}

	appt, err := h.appts.Transition(c.Context(), id.UserID, apptID, st)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, toAppointmentResponse(appt))
}

// PATCH /appointments/:id/cancel  (patient only)
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	id, valid := middleware.IdentityFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.appts.CancelByPatient(c.Context(), id.UserID, apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, toAppointmentResponse(appt))
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapBookingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, booking.ErrDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrPastDate):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrEmptySymptoms):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrDayFull):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrContention):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrNotOwner):
		return forbidden(c)
	case errors.Is(err, appointment.ErrInvalidTransition):
		return badRequest(c, err.Error())
	case errors.Is(err, appointment.ErrStatusChanged):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}
