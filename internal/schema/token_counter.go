package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TokenCounter is the per-(doctor, day) queue-token high-water mark. The
// allocator bumps value with a conditional update so that concurrent bookings
// for the same doctor/day serialize: issued tokens for a key are always
// exactly {1..N}, no duplicates, no gaps.
type TokenCounter struct {
	ent.Schema
}

func (TokenCounter) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (TokenCounter) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Immutable().
			Comment("FK → users.id"),

		field.Time("date").
			Immutable().
			Comment("Calendar day, stored as midnight UTC"),

		field.Int("value").
			NonNegative().
			Comment("Highest token issued so far for this doctor/day"),
	}
}

func (TokenCounter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "date").
			Unique(),
	}
}
