package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Tushar123097/hospital-backend/internal/api/http/middleware"
	"github.com/Tushar123097/hospital-backend/internal/repo"
	entappt "github.com/Tushar123097/hospital-backend/internal/repo/appointment"
	"github.com/Tushar123097/hospital-backend/internal/service/appointment"
	"github.com/Tushar123097/hospital-backend/internal/service/booking"
	"github.com/Tushar123097/hospital-backend/pkg/authguard"
)

type bookingServiceMock struct {
	book func(ctx context.Context, patientID uuid.UUID, req booking.BookRequest) (*booking.Booking, error)
}

func (m *bookingServiceMock) Book(ctx context.Context, patientID uuid.UUID, req booking.BookRequest) (*booking.Booking, error) {
	return m.book(ctx, patientID, req)
}

type appointmentServiceMock struct {
	getByID        func(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error)
	listForPatient func(ctx context.Context, patientID uuid.UUID, req appointment.ListRequest) ([]*repo.Appointment, error)
	listForDoctor  func(ctx context.Context, doctorID uuid.UUID, req appointment.ListRequest) ([]*repo.Appointment, error)
	transition     func(ctx context.Context, doctorID, apptID uuid.UUID, to entappt.Status) (*repo.Appointment, error)
	cancel         func(ctx context.Context, patientID, apptID uuid.UUID) (*repo.Appointment, error)
}

func (m *appointmentServiceMock) GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	return m.getByID(ctx, apptID)
}

func (m *appointmentServiceMock) ListForPatient(ctx context.Context, patientID uuid.UUID, req appointment.ListRequest) ([]*repo.Appointment, error) {
	return m.listForPatient(ctx, patientID, req)
}

func (m *appointmentServiceMock) ListForDoctor(ctx context.Context, doctorID uuid.UUID, req appointment.ListRequest) ([]*repo.Appointment, error) {
	return m.listForDoctor(ctx, doctorID, req)
}

func (m *appointmentServiceMock) Transition(ctx context.Context, doctorID, apptID uuid.UUID, to entappt.Status) (*repo.Appointment, error) {
	return m.transition(ctx, doctorID, apptID, to)
}

func (m *appointmentServiceMock) CancelByPatient(ctx context.Context, patientID, apptID uuid.UUID) (*repo.Appointment, error) {
	return m.cancel(ctx, patientID, apptID)
}

func newAppointmentTestApp(h *AppointmentHandler, id authguard.Identity) *fiber.App {
	app := fiber.New()
	app.Use(func(c fiber.Ctx) error {
		c.Locals(middleware.CtxKeyIdentity, id)
		return c.Next()
	})
	app.Get("/appointments", h.List)
	app.Post("/appointments", h.Book)
	app.Patch("/appointments/:id/status", h.UpdateStatus)
	return app
}

func doctorIdentity() authguard.Identity {
	return authguard.Identity{UserID: uuid.New(), Role: authguard.RoleDoctor}
}

func patientIdentity() authguard.Identity {
	return authguard.Identity{UserID: uuid.New(), Role: authguard.RolePatient}
}

func TestUpdateStatusErrorCodes(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		// An illegal move is the caller's mistake, not a conflict.
		{"illegal transition", appointment.ErrInvalidTransition, http.StatusBadRequest},
		// A lost compare-and-set race is a genuine conflict.
		{"stale status", appointment.ErrStatusChanged, http.StatusConflict},
		{"not the doctor", appointment.ErrNotOwner, http.StatusForbidden},
		{"unknown appointment", appointment.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &appointmentServiceMock{
				transition: func(ctx context.Context, doctorID, apptID uuid.UUID, to entappt.Status) (*repo.Appointment, error) {
					return nil, tt.serviceErr
				},
			}
			h := NewAppointmentHandler(nil, svc)
			app := newAppointmentTestApp(h, doctorIdentity())

			req := httptest.NewRequest(http.MethodPatch,
				"/appointments/"+uuid.NewString()+"/status",
				strings.NewReader(`{"status":"completed"}`))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestBookErrorCodes(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"past date", booking.ErrPastDate, http.StatusBadRequest},
		{"empty symptoms", booking.ErrEmptySymptoms, http.StatusBadRequest},
		// The daily cap is a validation limit, same class as past date.
		{"day full", booking.ErrDayFull, http.StatusBadRequest},
		{"allocator contention", booking.ErrContention, http.StatusConflict},
		{"unknown doctor", booking.ErrDoctorNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bk := &bookingServiceMock{
				book: func(ctx context.Context, patientID uuid.UUID, req booking.BookRequest) (*booking.Booking, error) {
					return nil, tt.serviceErr
				},
			}
			h := NewAppointmentHandler(bk, nil)
			app := newAppointmentTestApp(h, patientIdentity())

			body := `{"doctorId":"` + uuid.NewString() + `","date":"2030-01-02","symptoms":"fever"}`
			req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestListRejectsMalformedQuery(t *testing.T) {
	svc := &appointmentServiceMock{
		listForPatient: func(ctx context.Context, patientID uuid.UUID, req appointment.ListRequest) ([]*repo.Appointment, error) {
			t.Error("service should not be called for a malformed query")
			return nil, nil
		},
	}
	h := NewAppointmentHandler(nil, svc)
	app := newAppointmentTestApp(h, patientIdentity())

	req := httptest.NewRequest(http.MethodGet, "/appointments?page=abc", nil)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}
