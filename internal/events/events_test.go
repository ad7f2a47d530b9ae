package events

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestSubjects(t *testing.T) {
	id := uuid.MustParse("0194f2c3-1111-7aaa-8bbb-ccccdddd0001")

	booked := SubjectBooked(id)
	if booked != "hospital.appointment.booked."+id.String() {
		t.Errorf("SubjectBooked = %q", booked)
	}
	status := SubjectStatus(id)
	if status != "hospital.appointment.status."+id.String() {
		t.Errorf("SubjectStatus = %q", status)
	}

	// Subjects must match their subscription wildcards: same prefix, and the
	// ID segment must not introduce extra token separators.
	for _, s := range []struct {
		subject, wildcard string
	}{
		{booked, SubjectBookedWildcard},
		{status, SubjectStatusWildcard},
	} {
		prefix := strings.TrimSuffix(s.wildcard, "*")
		if !strings.HasPrefix(s.subject, prefix) {
			t.Errorf("subject %q does not match wildcard %q", s.subject, s.wildcard)
		}
		rest := strings.TrimPrefix(s.subject, prefix)
		if strings.Contains(rest, ".") {
			t.Errorf("ID segment %q spans multiple subject tokens", rest)
		}
	}
}

func TestStatusChangeRoundTrip(t *testing.T) {
	in := StatusChange{
		AppointmentID: uuid.New(),
		OldStatus:     "waiting",
		NewStatus:     "confirmed",
	}

	b, err := in.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	out, err := UnmarshalStatusChange(b)
	if err != nil {
		t.Fatalf("UnmarshalStatusChange: %v", err)
	}
	if out != in {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestUnmarshalStatusChangeRejectsGarbage(t *testing.T) {
	if _, err := UnmarshalStatusChange([]byte("not json")); err == nil {
		t.Error("expected error for malformed payload")
	}
}
