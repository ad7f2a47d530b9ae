package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Tushar123097/hospital-backend/internal/repo"
	entappt "github.com/Tushar123097/hospital-backend/internal/repo/appointment"
	"github.com/Tushar123097/hospital-backend/internal/repo/enttest"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1",
		strings.ReplaceAll(t.Name(), "/", "_"))
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func createAppointment(t *testing.T, client *repo.Client, doctorID, patientID uuid.UUID) *repo.Appointment {
	t.Helper()
	day := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	appt, err := client.Appointment.Create().
		SetDoctorID(doctorID).
		SetPatientID(patientID).
		SetDate(day).
		SetToken(1).
		SetSymptoms("chest pain").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	return appt
}

func TestTransitionRejectsOtherDoctor(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	svc := New(client, nil)

	doctorID := uuid.New()
	appt := createAppointment(t, client, doctorID, uuid.New())

	_, err := svc.Transition(ctx, uuid.New(), appt.ID, entappt.StatusConfirmed)
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("err = %v, want ErrNotOwner", err)
	}

	// The rejected call must not have touched the record.
	got, err := client.Appointment.Get(ctx, appt.ID)
	if err != nil {
		t.Fatalf("reload appointment: %v", err)
	}
	if got.Status != entappt.StatusWaiting {
		t.Errorf("status = %s, want waiting", got.Status)
	}
}

func TestCancelRejectsOtherPatient(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	svc := New(client, nil)

	patientID := uuid.New()
	appt := createAppointment(t, client, uuid.New(), patientID)

	if _, err := svc.CancelByPatient(ctx, uuid.New(), appt.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("err = %v, want ErrNotOwner", err)
	}
}

func TestTransitionIllegalMove(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	svc := New(client, nil)

	doctorID := uuid.New()
	appt := createAppointment(t, client, doctorID, uuid.New())

	// waiting → completed skips confirmation.
	_, err := svc.Transition(ctx, doctorID, appt.ID, entappt.StatusCompleted)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestTransitionConfirmSetsTimestamp(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	svc := New(client, nil)

	doctorID := uuid.New()
	appt := createAppointment(t, client, doctorID, uuid.New())

	got, err := svc.Transition(ctx, doctorID, appt.ID, entappt.StatusConfirmed)
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if got.Status != entappt.StatusConfirmed {
		t.Errorf("status = %s, want confirmed", got.Status)
	}
	if got.ConfirmedAt == nil {
		t.Error("ConfirmedAt not set")
	}
}

func TestCancelledAppointmentStaysCancelled(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	svc := New(client, nil)

	doctorID := uuid.New()
	patientID := uuid.New()
	appt := createAppointment(t, client, doctorID, patientID)

	if _, err := svc.CancelByPatient(ctx, patientID, appt.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// Terminal states accept no further moves, from either side.
	if _, err := svc.Transition(ctx, doctorID, appt.ID, entappt.StatusConfirmed); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("doctor err = %v, want ErrInvalidTransition", err)
	}
	if _, err := svc.CancelByPatient(ctx, patientID, appt.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("patient err = %v, want ErrInvalidTransition", err)
	}
}
