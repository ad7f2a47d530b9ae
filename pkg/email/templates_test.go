package email

import (
	"strings"
	"testing"
)

func testEmailData() AppointmentEmailData {
	return AppointmentEmailData{
		RecipientName:  "Ravi Kumar",
		RecipientEmail: "ravi@example.com",
		DoctorName:     "Anita Sharma",
		PatientName:    "Ravi Kumar",
		Date:           "2026-03-14",
		SlotLabel:      "09:45",
		Token:          4,
	}
}

func TestBuildBookingConfirmedEmail(t *testing.T) {
	m := BuildBookingConfirmedEmail(testEmailData())

	if len(m.To) != 1 || m.To[0] != "ravi@example.com" {
		t.Errorf("To = %v, want the recipient email", m.To)
	}
	if !strings.Contains(m.Subject, "Dr. Anita Sharma") {
		t.Errorf("subject %q missing doctor name", m.Subject)
	}
	for _, want := range []string{"Ravi Kumar", "2026-03-14", "09:45", "#4"} {
		if !strings.Contains(m.TextBody, want) {
			t.Errorf("text body missing %q", want)
		}
		if !strings.Contains(m.HTMLBody, want) {
			t.Errorf("html body missing %q", want)
		}
	}
}

func TestBuildStatusChangedEmail(t *testing.T) {
	data := testEmailData()
	data.OldStatus = "waiting"
	data.NewStatus = "confirmed"

	m := BuildStatusChangedEmail(data)

	if len(m.To) != 1 || m.To[0] != "ravi@example.com" {
		t.Errorf("To = %v, want the recipient email", m.To)
	}
	if !strings.Contains(m.Subject, "confirmed") {
		t.Errorf("subject %q missing new status", m.Subject)
	}
	if !strings.Contains(m.TextBody, "waiting") || !strings.Contains(m.TextBody, "confirmed") {
		t.Errorf("text body should name both statuses:\n%s", m.TextBody)
	}
}

func TestBuildEmailFallbacks(t *testing.T) {
	m := BuildBookingConfirmedEmail(AppointmentEmailData{
		RecipientEmail: "x@example.com",
		DoctorName:     "Doe",
		Date:           "2026-01-02",
		SlotLabel:      "09:00",
		Token:          1,
	})
	if !strings.Contains(m.TextBody, "Hi there,") {
		t.Errorf("expected greeting fallback, got:\n%s", m.TextBody)
	}
	if !strings.Contains(m.TextBody, "The Hospital Team") {
		t.Errorf("expected app name fallback, got:\n%s", m.TextBody)
	}
}
