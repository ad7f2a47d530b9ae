package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User is a patient or doctor account. The role is fixed at signup and never
// changes; everything role-specific for doctors lives on DoctorProfile.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(100),

		field.String("email").
			Unique().
			NotEmpty().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.Enum("role").
			Values("patient", "doctor").
			Immutable(),

		field.String("password_hash").
			Sensitive(),

		field.Enum("status").
			Values("ACTIVE", "SUSPENDED").
			Default("ACTIVE"),

		// audit
		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("doctor_profile", DoctorProfile.Type).
			Unique(),
	}
}
