// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Tushar123097/hospital-backend/internal/repo/doctorprofile"
	"github.com/Tushar123097/hospital-backend/internal/repo/predicate"
	"github.com/Tushar123097/hospital-backend/internal/repo/user"
	"github.com/Tushar123097/hospital-backend/internal/schema/schematype"
	"github.com/google/uuid"
)

// DoctorProfileUpdate is the builder for updating DoctorProfile entities.
type DoctorProfileUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorProfileMutation
}

// Where appends a list predicates to the DoctorProfileUpdate builder.
func (_u *DoctorProfileUpdate) Where(ps ...predicate.DoctorProfile) *DoctorProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorProfileUpdate) SetUpdatedAt(v time.Time) *DoctorProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorProfileUpdate) SetDoctorID(v uuid.UUID) *DoctorProfileUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorProfileUpdate) SetNillableDoctorID(v *uuid.UUID) *DoctorProfileUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *DoctorProfileUpdate) SetSpecialty(v string) *DoctorProfileUpdate {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *DoctorProfileUpdate) SetNillableSpecialty(v *string) *DoctorProfileUpdate {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *DoctorProfileUpdate) ClearSpecialty() *DoctorProfileUpdate {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetDegree sets the "degree" field.
func (_u *DoctorProfileUpdate) SetDegree(v string) *DoctorProfileUpdate {
	_u.mutation.SetDegree(v)
	return _u
}

// SetNillableDegree sets the "degree" field if the given value is not nil.
func (_u *DoctorProfileUpdate) SetNillableDegree(v *string) *DoctorProfileUpdate {
	if v != nil {
		_u.SetDegree(*v)
	}
	return _u
}

// ClearDegree clears the value of the "degree" field.
func (_u *DoctorProfileUpdate) ClearDegree() *DoctorProfileUpdate {
	_u.mutation.ClearDegree()
	return _u
}

// SetExperience sets the "experience" field.
func (_u *DoctorProfileUpdate) SetExperience(v string) *DoctorProfileUpdate {
	_u.mutation.SetExperience(v)
	return _u
}

// SetNillableExperience sets the "experience" field if the given value is not nil.
func (_u *DoctorProfileUpdate) SetNillableExperience(v *string) *DoctorProfileUpdate {
	if v != nil {
		_u.SetExperience(*v)
	}
	return _u
}

// ClearExperience clears the value of the "experience" field.
func (_u *DoctorProfileUpdate) ClearExperience() *DoctorProfileUpdate {
	_u.mutation.ClearExperience()
	return _u
}

// SetFee sets the "fee" field.
func (_u *DoctorProfileUpdate) SetFee(v int64) *DoctorProfileUpdate {
	_u.mutation.ResetFee()
	_u.mutation.SetFee(v)
	return _u
}

// SetNillableFee sets the "fee" field if the given value is not nil.
func (_u *DoctorProfileUpdate) SetNillableFee(v *int64) *DoctorProfileUpdate {
	if v != nil {
		_u.SetFee(*v)
	}
	return _u
}

// AddFee adds value to the "fee" field.
func (_u *DoctorProfileUpdate) AddFee(v int64) *DoctorProfileUpdate {
	_u.mutation.AddFee(v)
	return _u
}

// SetImage sets the "image" field.
func (_u *DoctorProfileUpdate) SetImage(v string) *DoctorProfileUpdate {
	_u.mutation.SetImage(v)
	return _u
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_u *DoctorProfileUpdate) SetNillableImage(v *string) *DoctorProfileUpdate {
	if v != nil {
		_u.SetImage(*v)
	}
	return _u
}

// ClearImage clears the value of the "image" field.
func (_u *DoctorProfileUpdate) ClearImage() *DoctorProfileUpdate {
	_u.mutation.ClearImage()
	return _u
}

// SetAvailability sets the "availability" field.
func (_u *DoctorProfileUpdate) SetAvailability(v []schematype.AvailabilitySlot) *DoctorProfileUpdate {
	_u.mutation.SetAvailability(v)
	return _u
}

// AppendAvailability appends value to the "availability" field.
func (_u *DoctorProfileUpdate) AppendAvailability(v []schematype.AvailabilitySlot) *DoctorProfileUpdate {
	_u.mutation.AppendAvailability(v)
	return _u
}

// ClearAvailability clears the value of the "availability" field.
func (_u *DoctorProfileUpdate) ClearAvailability() *DoctorProfileUpdate {
	_u.mutation.ClearAvailability()
	return _u
}

// SetDoctor sets the "doctor" edge to the User entity.
func (_u *DoctorProfileUpdate) SetDoctor(v *User) *DoctorProfileUpdate {
	return _u.SetDoctorID(v.ID)
}

// Mutation returns the DoctorProfileMutation object of the builder.
func (_u *DoctorProfileUpdate) Mutation() *DoctorProfileMutation {
	return _u.mutation
}

// ClearDoctor clears the "doctor" edge to the User entity.
func (_u *DoctorProfileUpdate) ClearDoctor() *DoctorProfileUpdate {
	_u.mutation.ClearDoctor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctorprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorProfileUpdate) check() error {
	if v, ok := _u.mutation.Specialty(); ok {
		if err := doctorprofile.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "DoctorProfile.specialty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Degree(); ok {
		if err := doctorprofile.DegreeValidator(v); err != nil {
			return &ValidationError{Name: "degree", err: fmt.Errorf(`repo: validator failed for field "DoctorProfile.degree": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Experience(); ok {
		if err := doctorprofile.ExperienceValidator(v); err != nil {
			return &ValidationError{Name: "experience", err: fmt.Errorf(`repo: validator failed for field "DoctorProfile.experience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fee(); ok {
		if err := doctorprofile.FeeValidator(v); err != nil {
			return &ValidationError{Name: "fee", err: fmt.Errorf(`repo: validator failed for field "DoctorProfile.fee": %w`, err)}
		}
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DoctorProfile.doctor"`)
	}
	return nil
}

func (_u *DoctorProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctorprofile.Table, doctorprofile.Columns, sqlgraph.NewFieldSpec(doctorprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctorprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(doctorprofile.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(doctorprofile.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.Degree(); ok {
		_spec.SetField(doctorprofile.FieldDegree, field.TypeString, value)
	}
	if _u.mutation.DegreeCleared() {
		_spec.ClearField(doctorprofile.FieldDegree, field.TypeString)
	}
	if value, ok := _u.mutation.Experience(); ok {
		_spec.SetField(doctorprofile.FieldExperience, field.TypeString, value)
	}
	if _u.mutation.ExperienceCleared() {
		_spec.ClearField(doctorprofile.FieldExperience, field.TypeString)
	}
	if value, ok := _u.mutation.Fee(); ok {
		_spec.SetField(doctorprofile.FieldFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFee(); ok {
		_spec.AddField(doctorprofile.FieldFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Image(); ok {
		_spec.SetField(doctorprofile.FieldImage, field.TypeString, value)
	}
	if _u.mutation.ImageCleared() {
		_spec.ClearField(doctorprofile.FieldImage, field.TypeString)
	}
	if value, ok := _u.mutation.Availability(); ok {
		_spec.SetField(doctorprofile.FieldAvailability, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAvailability(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, doctorprofile.FieldAvailability, value)
		})
	}
	if _u.mutation.AvailabilityCleared() {
		_spec.ClearField(doctorprofile.FieldAvailability, field.TypeJSON)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorProfileUpdateOne is the builder for updating a single DoctorProfile entity.
type DoctorProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorProfileUpdateOne) SetUpdatedAt(v time.Time) *DoctorProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorProfileUpdateOne) SetDoctorID(v uuid.UUID) *DoctorProfileUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorProfileUpdateOne) SetNillableDoctorID(v *uuid.UUID) *DoctorProfileUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *DoctorProfileUpdateOne) SetSpecialty(v string) *DoctorProfileUpdateOne {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *DoctorProfileUpdateOne) SetNillableSpecialty(v *string) *DoctorProfileUpdateOne {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *DoctorProfileUpdateOne) ClearSpecialty() *DoctorProfileUpdateOne {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetDegree sets the "degree" field.
func (_u *DoctorProfileUpdateOne) SetDegree(v string) *DoctorProfileUpdateOne {
	_u.mutation.SetDegree(v)
	return _u
}

// SetNillableDegree sets the "degree" field if the given value is not nil.
func (_u *DoctorProfileUpdateOne) SetNillableDegree(v *string) *DoctorProfileUpdateOne {
	if v != nil {
		_u.SetDegree(*v)
	}
	return _u
}

// ClearDegree clears the value of the "degree" field.
func (_u *DoctorProfileUpdateOne) ClearDegree() *DoctorProfileUpdateOne {
	_u.mutation.ClearDegree()
	return _u
}

// SetExperience sets the "experience" field.
func (_u *DoctorProfileUpdateOne) SetExperience(v string) *DoctorProfileUpdateOne {
	_u.mutation.SetExperience(v)
	return _u
}

// SetNillableExperience sets the "experience" field if the given value is not nil.
func (_u *DoctorProfileUpdateOne) SetNillableExperience(v *string) *DoctorProfileUpdateOne {
	if v != nil {
		_u.SetExperience(*v)
	}
	return _u
}

// ClearExperience clears the value of the "experience" field.
func (_u *DoctorProfileUpdateOne) ClearExperience() *DoctorProfileUpdateOne {
	_u.mutation.ClearExperience()
	return _u
}

// SetFee sets the "fee" field.
func (_u *DoctorProfileUpdateOne) SetFee(v int64) *DoctorProfileUpdateOne {
	_u.mutation.ResetFee()
	_u.mutation.SetFee(v)
	return _u
}

// SetNillableFee sets the "fee" field if the given value is not nil.
func (_u *DoctorProfileUpdateOne) SetNillableFee(v *int64) *DoctorProfileUpdateOne {
	if v != nil {
		_u.SetFee(*v)
	}
	return _u
}

// AddFee adds value to the "fee" field.
func (_u *DoctorProfileUpdateOne) AddFee(v int64) *DoctorProfileUpdateOne {
	_u.mutation.AddFee(v)
	return _u
}

// SetImage sets the "image" field.
func (_u *DoctorProfileUpdateOne) SetImage(v string) *DoctorProfileUpdateOne {
	_u.mutation.SetImage(v)
	return _u
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_u *DoctorProfileUpdateOne) SetNillableImage(v *string) *DoctorProfileUpdateOne {
	if v != nil {
		_u.SetImage(*v)
	}
	return _u
}

// ClearImage clears the value of the "image" field.
func (_u *DoctorProfileUpdateOne) ClearImage() *DoctorProfileUpdateOne {
	_u.mutation.ClearImage()
	return _u
}

// SetAvailability sets the "availability" field.
func (_u *DoctorProfileUpdateOne) SetAvailability(v []schematype.AvailabilitySlot) *DoctorProfileUpdateOne {
	_u.mutation.SetAvailability(v)
	return _u
}

// AppendAvailability appends value to the "availability" field.
func (_u *DoctorProfileUpdateOne) AppendAvailability(v []schematype.AvailabilitySlot) *DoctorProfileUpdateOne {
	_u.mutation.AppendAvailability(v)
	return _u
}

// ClearAvailability clears the value of the "availability" field.
func (_u *DoctorProfileUpdateOne) ClearAvailability() *DoctorProfileUpdateOne {
	_u.mutation.ClearAvailability()
	return _u
}

// SetDoctor sets the "doctor" edge to the User entity.
func (_u *DoctorProfileUpdateOne) SetDoctor(v *User) *DoctorProfileUpdateOne {
	return _u.SetDoctorID(v.ID)
}

// Mutation returns the DoctorProfileMutation object of the builder.
func (_u *DoctorProfileUpdateOne) Mutation() *DoctorProfileMutation {
	return _u.mutation
}

// ClearDoctor clears the "doctor" edge to the User entity.
func (_u *DoctorProfileUpdateOne) ClearDoctor() *DoctorProfileUpdateOne {
	_u.mutation.ClearDoctor()
	return _u
}

// Where appends a list predicates to the DoctorProfileUpdate builder.
func (_u *DoctorProfileUpdateOne) Where(ps ...predicate.DoctorProfile) *DoctorProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorProfileUpdateOne) Select(field string, fields ...string) *DoctorProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DoctorProfile entity.
func (_u *DoctorProfileUpdateOne) Save(ctx context.Context) (*DoctorProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorProfileUpdateOne) SaveX(ctx context.Context) *DoctorProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctorprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Specialty(); ok {
		if err := doctorprofile.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "DoctorProfile.specialty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Degree(); ok {
		if err := doctorprofile.DegreeValidator(v); err != nil {
			return &ValidationError{Name: "degree", err: fmt.Errorf(`repo: validator failed for field "DoctorProfile.degree": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Experience(); ok {
		if err := doctorprofile.ExperienceValidator(v); err != nil {
			return &ValidationError{Name: "experience", err: fmt.Errorf(`repo: validator failed for field "DoctorProfile.experience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fee(); ok {
		if err := doctorprofile.FeeValidator(v); err != nil {
			return &ValidationError{Name: "fee", err: fmt.Errorf(`repo: validator failed for field "DoctorProfile.fee": %w`, err)}
		}
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DoctorProfile.doctor"`)
	}
	return nil
}

func (_u *DoctorProfileUpdateOne) sqlSave(ctx context.Context) (_node *DoctorProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctorprofile.Table, doctorprofile.Columns, sqlgraph.NewFieldSpec(doctorprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DoctorProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctorprofile.FieldID)
		for _, f := range fields {
			if !doctorprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctorprofile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctorprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(doctorprofile.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(doctorprofile.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.Degree(); ok {
		_spec.SetField(doctorprofile.FieldDegree, field.TypeString, value)
	}
	if _u.mutation.DegreeCleared() {
		_spec.ClearField(doctorprofile.FieldDegree, field.TypeString)
	}
	if value, ok := _u.mutation.Experience(); ok {
		_spec.SetField(doctorprofile.FieldExperience, field.TypeString, value)
	}
	if _u.mutation.ExperienceCleared() {
		_spec.ClearField(doctorprofile.FieldExperience, field.TypeString)
	}
	if value, ok := _u.mutation.Fee(); ok {
		_spec.SetField(doctorprofile.FieldFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFee(); ok {
		_spec.AddField(doctorprofile.FieldFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Image(); ok {
		_spec.SetField(doctorprofile.FieldImage, field.TypeString, value)
	}
	if _u.mutation.ImageCleared() {
		_spec.ClearField(doctorprofile.FieldImage, field.TypeString)
	}
	if value, ok := _u.mutation.Availability(); ok {
		_spec.SetField(doctorprofile.FieldAvailability, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAvailability(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, doctorprofile.FieldAvailability, value)
		})
	}
	if _u.mutation.AvailabilityCleared() {
		_spec.ClearField(doctorprofile.FieldAvailability, field.TypeJSON)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DoctorProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
