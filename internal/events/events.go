// Package events defines the NATS subjects and payloads shared by the
// services that publish and the workers that consume them.
package events

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

const (
	// SubjectBookedPrefix is followed by the appointment ID. The payload is
	// the appointment ID as a plain string; consumers re-fetch the record.
	SubjectBookedPrefix = "hospital.appointment.booked."

	// SubjectStatusPrefix is followed by the appointment ID. The payload is
	// a JSON StatusChange, since the previous status is not recoverable
	// from the database after the update.
	SubjectStatusPrefix = "hospital.appointment.status."

	// SubjectBookedWildcard and SubjectStatusWildcard are the subscription
	// forms of the subjects above.
	SubjectBookedWildcard = "hospital.appointment.booked.*"
	SubjectStatusWildcard = "hospital.appointment.status.*"
)

// SubjectBooked returns the publish subject for a booked appointment.
func SubjectBooked(appointmentID uuid.UUID) string {
	return SubjectBookedPrefix + appointmentID.String()
}

// SubjectStatus returns the publish subject for a status change.
func SubjectStatus(appointmentID uuid.UUID) string {
	return SubjectStatusPrefix + appointmentID.String()
}

// StatusChange is the payload of a status event.
type StatusChange struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	OldStatus     string    `json:"old_status"`
	NewStatus     string    `json:"new_status"`
}

// Marshal encodes the payload for publishing.
func (s StatusChange) Marshal() ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal status change: %w", err)
	}
	return b, nil
}

// UnmarshalStatusChange decodes a status event payload.
func UnmarshalStatusChange(data []byte) (StatusChange, error) {
	var s StatusChange
	if err := json.Unmarshal(data, &s); err != nil {
		return StatusChange{}, fmt.Errorf("unmarshal status change: %w", err)
	}
	return s, nil
}
