package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/Tushar123097/hospital-backend/internal/schema/schematype"
)

// DoctorProfile extends a User (role=doctor) with clinical credentials and
// public-facing booking information. A row is created empty at doctor signup;
// the doctor fills it in later. A profile is "complete" — and the doctor
// bookable — once specialty, degree, experience and fee are all set.
type DoctorProfile struct {
	ent.Schema
}

func (DoctorProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (DoctorProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id (1:1)"),

		field.String("specialty").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("degree").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("experience").
			Optional().
			Nillable().
			MaxLen(50).
			Comment("Experience band for display, e.g. \"5-10 years\""),

		field.Int64("fee").
			Default(0).
			NonNegative().
			Comment("Consultation fee; 0 means not set yet"),

		field.String("image").
			Optional().
			Nillable().
			Comment("Public profile image URL"),

		field.JSON("availability", []schematype.AvailabilitySlot{}).
			Optional().
			Comment("Ordered weekly availability declared by the doctor"),
	}
}

func (DoctorProfile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("doctor", User.Type).
			Ref("doctor_profile").
			Unique().
			Required().
			Field("doctor_id"),
	}
}
