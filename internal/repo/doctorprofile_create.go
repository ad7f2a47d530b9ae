// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Tushar123097/hospital-backend/internal/repo/doctorprofile"
	"github.com/Tushar123097/hospital-backend/internal/repo/user"
	"github.com/Tushar123097/hospital-backend/internal/schema/schematype"
	"github.com/google/uuid"
)

// DoctorProfileCreate is the builder for creating a DoctorProfile entity.
type DoctorProfileCreate struct {
	config
	mutation *DoctorProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DoctorProfileCreate) SetCreatedAt(v time.Time) *DoctorProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DoctorProfileCreate) SetNillableCreatedAt(v *time.Time) *DoctorProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DoctorProfileCreate) SetUpdatedAt(v time.Time) *DoctorProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DoctorProfileCreate) SetNillableUpdatedAt(v *time.Time) *DoctorProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *DoctorProfileCreate) SetDoctorID(v uuid.UUID) *DoctorProfileCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetSpecialty sets the "specialty" field.
func (_c *DoctorProfileCreate) SetSpecialty(v string) *DoctorProfileCreate {
	_c.mutation.SetSpecialty(v)
	return _c
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_c *DoctorProfileCreate) SetNillableSpecialty(v *string) *DoctorProfileCreate {
	if v != nil {
		_c.SetSpecialty(*v)
	}
	return _c
}

// SetDegree sets the "degree" field.
func (_c *DoctorProfileCreate) SetDegree(v string) *DoctorProfileCreate {
	_c.mutation.SetDegree(v)
	return _c
}

// SetNillableDegree sets the "degree" field if the given value is not nil.
func (_c *DoctorProfileCreate) SetNillableDegree(v *string) *DoctorProfileCreate {
	if v != nil {
		_c.SetDegree(*v)
	}
	return _c
}

// SetExperience sets the "experience" field.
func (_c *DoctorProfileCreate) SetExperience(v string) *DoctorProfileCreate {
	_c.mutation.SetExperience(v)
	return _c
}

// SetNillableExperience sets the "experience" field if the given value is not nil.
func (_c *DoctorProfileCreate) SetNillableExperience(v *string) *DoctorProfileCreate {
	if v != nil {
		_c.SetExperience(*v)
	}
	return _c
}

// SetFee sets the "fee" field.
func (_c *DoctorProfileCreate) SetFee(v int64) *DoctorProfileCreate {
	_c.mutation.SetFee(v)
	return _c
}

// SetNillableFee sets the "fee" field if the given value is not nil.
func (_c *DoctorProfileCreate) SetNillableFee(v *int64) *DoctorProfileCreate {
	if v != nil {
		_c.SetFee(*v)
	}
	return _c
}

// SetImage sets the "image" field.
func (_c *DoctorProfileCreate) SetImage(v string) *DoctorProfileCreate {
	_c.mutation.SetImage(v)
	return _c
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_c *DoctorProfileCreate) SetNillableImage(v *string) *DoctorProfileCreate {
	if v != nil {
		_c.SetImage(*v)
	}
	return _c
}

// SetAvailability sets the "availability" field.
func (_c *DoctorProfileCreate) SetAvailability(v []schematype.AvailabilitySlot) *DoctorProfileCreate {
	_c.mutation.SetAvailability(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DoctorProfileCreate) SetID(v uuid.UUID) *DoctorProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DoctorProfileCreate) SetNillableID(v *uuid.UUID) *DoctorProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDoctor sets the "doctor" edge to the User entity.
func (_c *DoctorProfileCreate) SetDoctor(v *User) *DoctorProfileCreate {
	return _c.SetDoctorID(v.ID)
}

// Mutation returns the DoctorProfileMutation object of the builder.
func (_c *DoctorProfileCreate) Mutation() *DoctorProfileMutation {
	return _c.mutation
}

// Save creates the DoctorProfile in the database.
func (_c *DoctorProfileCreate) Save(ctx context.Context) (*DoctorProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoctorProfileCreate) SaveX(ctx context.Context) *DoctorProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoctorProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doctorprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := doctorprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Fee(); !ok {
		v := doctorprofile.DefaultFee
		_c.mutation.SetFee(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := doctorprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoctorProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DoctorProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "DoctorProfile.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "DoctorProfile.doctor_id"`)}
	}
	if v, ok := _c.mutation.Specialty(); ok {
		if err := doctorprofile.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "DoctorProfile.specialty": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Degree(); ok {
		if err := doctorprofile.DegreeValidator(v); err != nil {
			return &ValidationError{Name: "degree", err: fmt.Errorf(`repo: validator failed for field "DoctorProfile.degree": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Experience(); ok {
		if err := doctorprofile.ExperienceValidator(v); err != nil {
			return &ValidationError{Name: "experience", err: fmt.Errorf(`repo: validator failed for field "DoctorProfile.experience": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Fee(); !ok {
		return &ValidationError{Name: "fee", err: errors.New(`repo: missing required field "DoctorProfile.fee"`)}
	}
	if v, ok := _c.mutation.Fee(); ok {
		if err := doctorprofile.FeeValidator(v); err != nil {
			return &ValidationError{Name: "fee", err: fmt.Errorf(`repo: validator failed for field "DoctorProfile.fee": %w`, err)}
		}
	}
	if len(_c.mutation.DoctorIDs()) == 0 {
		return &ValidationError{Name: "doctor", err: errors.New(`repo: missing required edge "DoctorProfile.doctor"`)}
	}
	return nil
}

func (_c *DoctorProfileCreate) sqlSave(ctx context.Context) (*DoctorProfile, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DoctorProfileCreate) createSpec() (*DoctorProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &DoctorProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doctorprofile.Table, sqlgraph.NewFieldSpec(doctorprofile.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doctorprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(doctorprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Specialty(); ok {
		_spec.SetField(doctorprofile.FieldSpecialty, field.TypeString, value)
		_node.Specialty = &value
	}
	if value, ok := _c.mutation.Degree(); ok {
		_spec.SetField(doctorprofile.FieldDegree, field.TypeString, value)
		_node.Degree = &value
	}
	if value, ok := _c.mutation.Experience(); ok {
		_spec.SetField(doctorprofile.FieldExperience, field.TypeString, value)
		_node.Experience = &value
	}
	if value, ok := _c.mutation.Fee(); ok {
		_spec.SetField(doctorprofile.FieldFee, field.TypeInt64, value)
		_node.Fee = value
	}
	if value, ok := _c.mutation.Image(); ok {
		_spec.SetField(doctorprofile.FieldImage, field.TypeString, value)
		_node.Image = &value
	}
	if value, ok := _c.mutation.Availability(); ok {
		_spec.SetField(doctorprofile.FieldAvailability, field.TypeJSON, value)
		_node.Availability = value
	}
	if nodes := _c.mutation.DoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   doctorprofile.DoctorTable,
			Columns: []string{doctorprofile.DoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DoctorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DoctorProfile.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorProfileCreate) OnConflict(opts ...sql.ConflictOption) *DoctorProfileUpsertOne {
	_c.conflict = opts
	return &DoctorProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DoctorProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorProfileCreate) OnConflictColumns(columns ...string) *DoctorProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorProfileUpsertOne{
		create: _c,
	}
}

type (
	// DoctorProfileUpsertOne is the builder for "upsert"-ing
	//  one DoctorProfile node.
	DoctorProfileUpsertOne struct {
		create *DoctorProfileCreate
	}

	// DoctorProfileUpsert is the "OnConflict" setter.
	DoctorProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorProfileUpsert) SetUpdatedAt(v time.Time) *DoctorProfileUpsert {
	u.Set(doctorprofile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorProfileUpsert) UpdateUpdatedAt() *DoctorProfileUpsert {
	u.SetExcluded(doctorprofile.FieldUpdatedAt)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *DoctorProfileUpsert) SetDoctorID(v uuid.UUID) *DoctorProfileUpsert {
	u.Set(doctorprofile.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DoctorProfileUpsert) UpdateDoctorID() *DoctorProfileUpsert {
	u.SetExcluded(doctorprofile.FieldDoctorID)
	return u
}

// SetSpecialty sets the "specialty" field.
func (u *DoctorProfileUpsert) SetSpecialty(v string) *DoctorProfileUpsert {
	u.Set(doctorprofile.FieldSpecialty, v)
	return u
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *DoctorProfileUpsert) UpdateSpecialty() *DoctorProfileUpsert {
	u.SetExcluded(doctorprofile.FieldSpecialty)
	return u
}

// ClearSpecialty clears the value of the "specialty" field.
func (u *DoctorProfileUpsert) ClearSpecialty() *DoctorProfileUpsert {
	u.SetNull(doctorprofile.FieldSpecialty)
	return u
}

// SetDegree sets the "degree" field.
func (u *DoctorProfileUpsert) SetDegree(v string) *DoctorProfileUpsert {
	u.Set(doctorprofile.FieldDegree, v)
	return u
}

// UpdateDegree sets the "degree" field to the value that was provided on create.
func (u *DoctorProfileUpsert) UpdateDegree() *DoctorProfileUpsert {
	u.SetExcluded(doctorprofile.FieldDegree)
	return u
}

// ClearDegree clears the value of the "degree" field.
func (u *DoctorProfileUpsert) ClearDegree() *DoctorProfileUpsert {
	u.SetNull(doctorprofile.FieldDegree)
	return u
}

// SetExperience sets the "experience" field.
func (u *DoctorProfileUpsert) SetExperience(v string) *DoctorProfileUpsert {
	u.Set(doctorprofile.FieldExperience, v)
	return u
}

// UpdateExperience sets the "experience" field to the value that was provided on create.
func (u *DoctorProfileUpsert) UpdateExperience() *DoctorProfileUpsert {
	u.SetExcluded(doctorprofile.FieldExperience)
	return u
}

// ClearExperience clears the value of the "experience" field.
func (u *DoctorProfileUpsert) ClearExperience() *DoctorProfileUpsert {
	u.SetNull(doctorprofile.FieldExperience)
	return u
}

// SetFee sets the "fee" field.
func (u *DoctorProfileUpsert) SetFee(v int64) *DoctorProfileUpsert {
	u.Set(doctorprofile.FieldFee, v)
	return u
}

// UpdateFee sets the "fee" field to the value that was provided on create.
func (u *DoctorProfileUpsert) UpdateFee() *DoctorProfileUpsert {
	u.SetExcluded(doctorprofile.FieldFee)
	return u
}

// AddFee adds v to the "fee" field.
func (u *DoctorProfileUpsert) AddFee(v int64) *DoctorProfileUpsert {
	u.Add(doctorprofile.FieldFee, v)
	return u
}

// SetImage sets the "image" field.
func (u *DoctorProfileUpsert) SetImage(v string) *DoctorProfileUpsert {
	u.Set(doctorprofile.FieldImage, v)
	return u
}

// UpdateImage sets the "image" field to the value that was provided on create.
func (u *DoctorProfileUpsert) UpdateImage() *DoctorProfileUpsert {
	u.SetExcluded(doctorprofile.FieldImage)
	return u
}

// ClearImage clears the value of the "image" field.
func (u *DoctorProfileUpsert) ClearImage() *DoctorProfileUpsert {
	u.SetNull(doctorprofile.FieldImage)
	return u
}

// SetAvailability sets the "availability" field.
func (u *DoctorProfileUpsert) SetAvailability(v []schematype.AvailabilitySlot) *DoctorProfileUpsert {
	u.Set(doctorprofile.FieldAvailability, v)
	return u
}

// UpdateAvailability sets the "availability" field to the value that was provided on create.
func (u *DoctorProfileUpsert) UpdateAvailability() *DoctorProfileUpsert {
	u.SetExcluded(doctorprofile.FieldAvailability)
	return u
}

// ClearAvailability clears the value of the "availability" field.
func (u *DoctorProfileUpsert) ClearAvailability() *DoctorProfileUpsert {
	u.SetNull(doctorprofile.FieldAvailability)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DoctorProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctorprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorProfileUpsertOne) UpdateNewValues() *DoctorProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(doctorprofile.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(doctorprofile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DoctorProfile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DoctorProfileUpsertOne) Ignore() *DoctorProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorProfileUpsertOne) DoNothing() *DoctorProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorProfileCreate.OnConflict
// documentation for more info.
func (u *DoctorProfileUpsertOne) Update(set func(*DoctorProfileUpsert)) *DoctorProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorProfileUpsertOne) SetUpdatedAt(v time.Time) *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorProfileUpsertOne) UpdateUpdatedAt() *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *DoctorProfileUpsertOne) SetDoctorID(v uuid.UUID) *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DoctorProfileUpsertOne) UpdateDoctorID() *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.UpdateDoctorID()
	})
}

// SetSpecialty sets the "specialty" field.
func (u *DoctorProfileUpsertOne) SetSpecialty(v string) *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.SetSpecialty(v)
	})
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *DoctorProfileUpsertOne) UpdateSpecialty() *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.UpdateSpecialty()
	})
}

// ClearSpecialty clears the value of the "specialty" field.
func (u *DoctorProfileUpsertOne) ClearSpecialty() *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.ClearSpecialty()
	})
}

// SetDegree sets the "degree" field.
func (u *DoctorProfileUpsertOne) SetDegree(v string) *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.SetDegree(v)
	})
}

// UpdateDegree sets the "degree" field to the value that was provided on create.
func (u *DoctorProfileUpsertOne) UpdateDegree() *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.UpdateDegree()
	})
}

// ClearDegree clears the value of the "degree" field.
func (u *DoctorProfileUpsertOne) ClearDegree() *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.ClearDegree()
	})
}

// SetExperience sets the "experience" field.
func (u *DoctorProfileUpsertOne) SetExperience(v string) *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.SetExperience(v)
	})
}

// UpdateExperience sets the "experience" field to the value that was provided on create.
func (u *DoctorProfileUpsertOne) UpdateExperience() *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.UpdateExperience()
	})
}

// ClearExperience clears the value of the "experience" field.
func (u *DoctorProfileUpsertOne) ClearExperience() *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.ClearExperience()
	})
}

// SetFee sets the "fee" field.
func (u *DoctorProfileUpsertOne) SetFee(v int64) *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.SetFee(v)
	})
}

// AddFee adds v to the "fee" field.
func (u *DoctorProfileUpsertOne) AddFee(v int64) *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.AddFee(v)
	})
}

// UpdateFee sets the "fee" field to the value that was provided on create.
func (u *DoctorProfileUpsertOne) UpdateFee() *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.UpdateFee()
	})
}

// SetImage sets the "image" field.
func (u *DoctorProfileUpsertOne) SetImage(v string) *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.SetImage(v)
	})
}

// UpdateImage sets the "image" field to the value that was provided on create.
func (u *DoctorProfileUpsertOne) UpdateImage() *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.UpdateImage()
	})
}

// ClearImage clears the value of the "image" field.
func (u *DoctorProfileUpsertOne) ClearImage() *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.ClearImage()
	})
}

// SetAvailability sets the "availability" field.
func (u *DoctorProfileUpsertOne) SetAvailability(v []schematype.AvailabilitySlot) *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.SetAvailability(v)
	})
}

// UpdateAvailability sets the "availability" field to the value that was provided on create.
func (u *DoctorProfileUpsertOne) UpdateAvailability() *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.UpdateAvailability()
	})
}

// ClearAvailability clears the value of the "availability" field.
func (u *DoctorProfileUpsertOne) ClearAvailability() *DoctorProfileUpsertOne {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.ClearAvailability()
	})
}

// Exec executes the query.
func (u *DoctorProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DoctorProfileUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DoctorProfileUpsertOne.ID is not supported by MySQL driver. Use DoctorProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DoctorProfileUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DoctorProfileCreateBulk is the builder for creating many DoctorProfile entities in bulk.
type DoctorProfileCreateBulk struct {
	config
	err      error
	builders []*DoctorProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the DoctorProfile entities in the database.
func (_c *DoctorProfileCreateBulk) Save(ctx context.Context) ([]*DoctorProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DoctorProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoctorProfileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DoctorProfileCreateBulk) SaveX(ctx context.Context) []*DoctorProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DoctorProfile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *DoctorProfileUpsertBulk {
	_c.conflict = opts
	return &DoctorProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DoctorProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorProfileCreateBulk) OnConflictColumns(columns ...string) *DoctorProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorProfileUpsertBulk{
		create: _c,
	}
}

// DoctorProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of DoctorProfile nodes.
type DoctorProfileUpsertBulk struct {
	create *DoctorProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DoctorProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctorprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorProfileUpsertBulk) UpdateNewValues() *DoctorProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(doctorprofile.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(doctorprofile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DoctorProfile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DoctorProfileUpsertBulk) Ignore() *DoctorProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorProfileUpsertBulk) DoNothing() *DoctorProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorProfileCreateBulk.OnConflict
// documentation for more info.
func (u *DoctorProfileUpsertBulk) Update(set func(*DoctorProfileUpsert)) *DoctorProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorProfileUpsertBulk) SetUpdatedAt(v time.Time) *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorProfileUpsertBulk) UpdateUpdatedAt() *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *DoctorProfileUpsertBulk) SetDoctorID(v uuid.UUID) *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DoctorProfileUpsertBulk) UpdateDoctorID() *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.UpdateDoctorID()
	})
}

// SetSpecialty sets the "specialty" field.
func (u *DoctorProfileUpsertBulk) SetSpecialty(v string) *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.SetSpecialty(v)
	})
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *DoctorProfileUpsertBulk) UpdateSpecialty() *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.UpdateSpecialty()
	})
}

// ClearSpecialty clears the value of the "specialty" field.
func (u *DoctorProfileUpsertBulk) ClearSpecialty() *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.ClearSpecialty()
	})
}

// SetDegree sets the "degree" field.
func (u *DoctorProfileUpsertBulk) SetDegree(v string) *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.SetDegree(v)
	})
}

// UpdateDegree sets the "degree" field to the value that was provided on create.
func (u *DoctorProfileUpsertBulk) UpdateDegree() *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.UpdateDegree()
	})
}

// ClearDegree clears the value of the "degree" field.
func (u *DoctorProfileUpsertBulk) ClearDegree() *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.ClearDegree()
	})
}

// SetExperience sets the "experience" field.
func (u *DoctorProfileUpsertBulk) SetExperience(v string) *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.SetExperience(v)
	})
}

// UpdateExperience sets the "experience" field to the value that was provided on create.
func (u *DoctorProfileUpsertBulk) UpdateExperience() *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.UpdateExperience()
	})
}

// ClearExperience clears the value of the "experience" field.
func (u *DoctorProfileUpsertBulk) ClearExperience() *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.ClearExperience()
	})
}

// SetFee sets the "fee" field.
func (u *DoctorProfileUpsertBulk) SetFee(v int64) *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.SetFee(v)
	})
}

// AddFee adds v to the "fee" field.
func (u *DoctorProfileUpsertBulk) AddFee(v int64) *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.AddFee(v)
	})
}

// UpdateFee sets the "fee" field to the value that was provided on create.
func (u *DoctorProfileUpsertBulk) UpdateFee() *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.UpdateFee()
	})
}

// SetImage sets the "image" field.
func (u *DoctorProfileUpsertBulk) SetImage(v string) *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.SetImage(v)
	})
}

// UpdateImage sets the "image" field to the value that was provided on create.
func (u *DoctorProfileUpsertBulk) UpdateImage() *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.UpdateImage()
	})
}

// ClearImage clears the value of the "image" field.
func (u *DoctorProfileUpsertBulk) ClearImage() *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.ClearImage()
	})
}

// SetAvailability sets the "availability" field.
func (u *DoctorProfileUpsertBulk) SetAvailability(v []schematype.AvailabilitySlot) *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.SetAvailability(v)
	})
}

// UpdateAvailability sets the "availability" field to the value that was provided on create.
func (u *DoctorProfileUpsertBulk) UpdateAvailability() *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.UpdateAvailability()
	})
}

// ClearAvailability clears the value of the "availability" field.
func (u *DoctorProfileUpsertBulk) ClearAvailability() *DoctorProfileUpsertBulk {
	return u.Update(func(s *DoctorProfileUpsert) {
		s.ClearAvailability()
	})
}

// Exec executes the query.
func (u *DoctorProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DoctorProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
