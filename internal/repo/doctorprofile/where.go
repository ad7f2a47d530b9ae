// Code generated by ent, DO NOT EDIT.

package doctorprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Tushar123097/hospital-backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldDoctorID, v))
}

// Specialty applies equality check predicate on the "specialty" field. It's identical to SpecialtyEQ.
func Specialty(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldSpecialty, v))
}

// Degree applies equality check predicate on the "degree" field. It's identical to DegreeEQ.
func Degree(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldDegree, v))
}

// Experience applies equality check predicate on the "experience" field. It's identical to ExperienceEQ.
func Experience(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldExperience, v))
}

// Fee applies equality check predicate on the "fee" field. It's identical to FeeEQ.
func Fee(v int64) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldFee, v))
}

// Image applies equality check predicate on the "image" field. It's identical to ImageEQ.
func Image(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldImage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotIn(FieldDoctorID, vs...))
}

// SpecialtyEQ applies the EQ predicate on the "specialty" field.
func SpecialtyEQ(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldSpecialty, v))
}

// SpecialtyNEQ applies the NEQ predicate on the "specialty" field.
func SpecialtyNEQ(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNEQ(FieldSpecialty, v))
}

// SpecialtyIn applies the In predicate on the "specialty" field.
func SpecialtyIn(vs ...string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIn(FieldSpecialty, vs...))
}

// SpecialtyNotIn applies the NotIn predicate on the "specialty" field.
func SpecialtyNotIn(vs ...string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotIn(FieldSpecialty, vs...))
}

// SpecialtyGT applies the GT predicate on the "specialty" field.
func SpecialtyGT(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGT(FieldSpecialty, v))
}

// SpecialtyGTE applies the GTE predicate on the "specialty" field.
func SpecialtyGTE(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGTE(FieldSpecialty, v))
}

// SpecialtyLT applies the LT predicate on the "specialty" field.
func SpecialtyLT(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLT(FieldSpecialty, v))
}

// SpecialtyLTE applies the LTE predicate on the "specialty" field.
func SpecialtyLTE(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLTE(FieldSpecialty, v))
}

// SpecialtyContains applies the Contains predicate on the "specialty" field.
func SpecialtyContains(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldContains(FieldSpecialty, v))
}

// SpecialtyHasPrefix applies the HasPrefix predicate on the "specialty" field.
func SpecialtyHasPrefix(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldHasPrefix(FieldSpecialty, v))
}

// SpecialtyHasSuffix applies the HasSuffix predicate on the "specialty" field.
func SpecialtyHasSuffix(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldHasSuffix(FieldSpecialty, v))
}

// SpecialtyIsNil applies the IsNil predicate on the "specialty" field.
func SpecialtyIsNil() predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIsNull(FieldSpecialty))
}

// SpecialtyNotNil applies the NotNil predicate on the "specialty" field.
func SpecialtyNotNil() predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotNull(FieldSpecialty))
}

// SpecialtyEqualFold applies the EqualFold predicate on the "specialty" field.
func SpecialtyEqualFold(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEqualFold(FieldSpecialty, v))
}

// SpecialtyContainsFold applies the ContainsFold predicate on the "specialty" field.
func SpecialtyContainsFold(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldContainsFold(FieldSpecialty, v))
}

// DegreeEQ applies the EQ predicate on the "degree" field.
func DegreeEQ(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldDegree, v))
}

// DegreeNEQ applies the NEQ predicate on the "degree" field.
func DegreeNEQ(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNEQ(FieldDegree, v))
}

// DegreeIn applies the In predicate on the "degree" field.
func DegreeIn(vs ...string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIn(FieldDegree, vs...))
}

// DegreeNotIn applies the NotIn predicate on the "degree" field.
func DegreeNotIn(vs ...string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotIn(FieldDegree, vs...))
}

// DegreeGT applies the GT predicate on the "degree" field.
func DegreeGT(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGT(FieldDegree, v))
}

// DegreeGTE applies the GTE predicate on the "degree" field.
func DegreeGTE(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGTE(FieldDegree, v))
}

// DegreeLT applies the LT predicate on the "degree" field.
func DegreeLT(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLT(FieldDegree, v))
}

// DegreeLTE applies the LTE predicate on the "degree" field.
func DegreeLTE(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLTE(FieldDegree, v))
}

// DegreeContains applies the Contains predicate on the "degree" field.
func DegreeContains(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldContains(FieldDegree, v))
}

// DegreeHasPrefix applies the HasPrefix predicate on the "degree" field.
func DegreeHasPrefix(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldHasPrefix(FieldDegree, v))
}

// DegreeHasSuffix applies the HasSuffix predicate on the "degree" field.
func DegreeHasSuffix(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldHasSuffix(FieldDegree, v))
}

// DegreeIsNil applies the IsNil predicate on the "degree" field.
func DegreeIsNil() predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIsNull(FieldDegree))
}

// DegreeNotNil applies the NotNil predicate on the "degree" field.
func DegreeNotNil() predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotNull(FieldDegree))
}

// DegreeEqualFold applies the EqualFold predicate on the "degree" field.
func DegreeEqualFold(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEqualFold(FieldDegree, v))
}

// DegreeContainsFold applies the ContainsFold predicate on the "degree" field.
func DegreeContainsFold(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldContainsFold(FieldDegree, v))
}

// ExperienceEQ applies the EQ predicate on the "experience" field.
func ExperienceEQ(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldExperience, v))
}

// ExperienceNEQ applies the NEQ predicate on the "experience" field.
func ExperienceNEQ(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNEQ(FieldExperience, v))
}

// ExperienceIn applies the In predicate on the "experience" field.
func ExperienceIn(vs ...string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIn(FieldExperience, vs...))
}

// ExperienceNotIn applies the NotIn predicate on the "experience" field.
func ExperienceNotIn(vs ...string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotIn(FieldExperience, vs...))
}

// ExperienceGT applies the GT predicate on the "experience" field.
func ExperienceGT(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGT(FieldExperience, v))
}

// ExperienceGTE applies the GTE predicate on the "experience" field.
func ExperienceGTE(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGTE(FieldExperience, v))
}

// ExperienceLT applies the LT predicate on the "experience" field.
func ExperienceLT(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLT(FieldExperience, v))
}

// ExperienceLTE applies the LTE predicate on the "experience" field.
func ExperienceLTE(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLTE(FieldExperience, v))
}

// ExperienceContains applies the Contains predicate on the "experience" field.
func ExperienceContains(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldContains(FieldExperience, v))
}

// ExperienceHasPrefix applies the HasPrefix predicate on the "experience" field.
func ExperienceHasPrefix(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldHasPrefix(FieldExperience, v))
}

// ExperienceHasSuffix applies the HasSuffix predicate on the "experience" field.
func ExperienceHasSuffix(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldHasSuffix(FieldExperience, v))
}

// ExperienceIsNil applies the IsNil predicate on the "experience" field.
func ExperienceIsNil() predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIsNull(FieldExperience))
}

// ExperienceNotNil applies the NotNil predicate on the "experience" field.
func ExperienceNotNil() predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotNull(FieldExperience))
}

// ExperienceEqualFold applies the EqualFold predicate on the "experience" field.
func ExperienceEqualFold(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEqualFold(FieldExperience, v))
}

// ExperienceContainsFold applies the ContainsFold predicate on the "experience" field.
func ExperienceContainsFold(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldContainsFold(FieldExperience, v))
}

// FeeEQ applies the EQ predicate on the "fee" field.
func FeeEQ(v int64) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldFee, v))
}

// FeeNEQ applies the NEQ predicate on the "fee" field.
func FeeNEQ(v int64) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNEQ(FieldFee, v))
}

// FeeIn applies the In predicate on the "fee" field.
func FeeIn(vs ...int64) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIn(FieldFee, vs...))
}

// FeeNotIn applies the NotIn predicate on the "fee" field.
func FeeNotIn(vs ...int64) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotIn(FieldFee, vs...))
}

// FeeGT applies the GT predicate on the "fee" field.
func FeeGT(v int64) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGT(FieldFee, v))
}

// FeeGTE applies the GTE predicate on the "fee" field.
func FeeGTE(v int64) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGTE(FieldFee, v))
}

// FeeLT applies the LT predicate on the "fee" field.
func FeeLT(v int64) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLT(FieldFee, v))
}

// FeeLTE applies the LTE predicate on the "fee" field.
func FeeLTE(v int64) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLTE(FieldFee, v))
}

// ImageEQ applies the EQ predicate on the "image" field.
func ImageEQ(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEQ(FieldImage, v))
}

// ImageNEQ applies the NEQ predicate on the "image" field.
func ImageNEQ(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNEQ(FieldImage, v))
}

// ImageIn applies the In predicate on the "image" field.
func ImageIn(vs ...string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIn(FieldImage, vs...))
}

// ImageNotIn applies the NotIn predicate on the "image" field.
func ImageNotIn(vs ...string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotIn(FieldImage, vs...))
}

// ImageGT applies the GT predicate on the "image" field.
func ImageGT(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGT(FieldImage, v))
}

// ImageGTE applies the GTE predicate on the "image" field.
func ImageGTE(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldGTE(FieldImage, v))
}

// ImageLT applies the LT predicate on the "image" field.
func ImageLT(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLT(FieldImage, v))
}

// ImageLTE applies the LTE predicate on the "image" field.
func ImageLTE(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldLTE(FieldImage, v))
}

// ImageContains applies the Contains predicate on the "image" field.
func ImageContains(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldContains(FieldImage, v))
}

// ImageHasPrefix applies the HasPrefix predicate on the "image" field.
func ImageHasPrefix(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldHasPrefix(FieldImage, v))
}

// ImageHasSuffix applies the HasSuffix predicate on the "image" field.
func ImageHasSuffix(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldHasSuffix(FieldImage, v))
}

// ImageIsNil applies the IsNil predicate on the "image" field.
func ImageIsNil() predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIsNull(FieldImage))
}

// ImageNotNil applies the NotNil predicate on the "image" field.
func ImageNotNil() predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotNull(FieldImage))
}

// ImageEqualFold applies the EqualFold predicate on the "image" field.
func ImageEqualFold(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldEqualFold(FieldImage, v))
}

// ImageContainsFold applies the ContainsFold predicate on the "image" field.
func ImageContainsFold(v string) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldContainsFold(FieldImage, v))
}

// AvailabilityIsNil applies the IsNil predicate on the "availability" field.
func AvailabilityIsNil() predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldIsNull(FieldAvailability))
}

// AvailabilityNotNil applies the NotNil predicate on the "availability" field.
func AvailabilityNotNil() predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.FieldNotNull(FieldAvailability))
}

// HasDoctor applies the HasEdge predicate on the "doctor" edge.
func HasDoctor() predicate.DoctorProfile {
	return predicate.DoctorProfile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, DoctorTable, DoctorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDoctorWith applies the HasEdge predicate on the "doctor" edge with a given conditions (other predicates).
func HasDoctorWith(preds ...predicate.User) predicate.DoctorProfile {
	return predicate.DoctorProfile(func(s *sql.Selector) {
		step := newDoctorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DoctorProfile) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DoctorProfile) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DoctorProfile) predicate.DoctorProfile {
	return predicate.DoctorProfile(sql.NotPredicates(p))
}
