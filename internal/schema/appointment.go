package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a patient's booked visit with a doctor on a calendar day.
// The token is the queue position for that (doctor, day); it is assigned once
// and never reused, even if the appointment is later cancelled. Appointments
// are never deleted — cancellation is a status, not a removal.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.Time("date").
			Comment("Calendar day of the visit, stored as midnight UTC"),

		field.Int("token").
			Positive().
			Immutable().
			Comment("Queue position within (doctor_id, date), starting at 1"),

		field.Enum("status").
			Values("waiting", "confirmed", "completed", "cancelled").
			Default("waiting"),

		field.Text("symptoms").
			NotEmpty(),

		field.Time("confirmed_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		// Backstop for the allocator: two appointments can never share a
		// token on the same doctor/day.
		index.Fields("doctor_id", "date", "token").
			Unique(),
		index.Fields("doctor_id", "date"),
		index.Fields("patient_id"),
	}
}
