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
	"github.com/Tushar123097/hospital-backend/internal/repo/tokencounter"
	"github.com/google/uuid"
)

// TokenCounterCreate is the builder for creating a TokenCounter entity.
type TokenCounterCreate struct {
	config
	mutation *TokenCounterMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *TokenCounterCreate) SetCreatedAt(v time.Time) *TokenCounterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TokenCounterCreate) SetNillableCreatedAt(v *time.Time) *TokenCounterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TokenCounterCreate) SetUpdatedAt(v time.Time) *TokenCounterCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TokenCounterCreate) SetNillableUpdatedAt(v *time.Time) *TokenCounterCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *TokenCounterCreate) SetDoctorID(v uuid.UUID) *TokenCounterCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *TokenCounterCreate) SetDate(v time.Time) *TokenCounterCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *TokenCounterCreate) SetValue(v int) *TokenCounterCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TokenCounterCreate) SetID(v uuid.UUID) *TokenCounterCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TokenCounterCreate) SetNillableID(v *uuid.UUID) *TokenCounterCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TokenCounterMutation object of the builder.
func (_c *TokenCounterCreate) Mutation() *TokenCounterMutation {
	return _c.mutation
}

// Save creates the TokenCounter in the database.
func (_c *TokenCounterCreate) Save(ctx context.Context) (*TokenCounter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TokenCounterCreate) SaveX(ctx context.Context) *TokenCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenCounterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenCounterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TokenCounterCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tokencounter.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tokencounter.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tokencounter.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TokenCounterCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TokenCounter.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "TokenCounter.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "TokenCounter.doctor_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`repo: missing required field "TokenCounter.date"`)}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`repo: missing required field "TokenCounter.value"`)}
	}
	if v, ok := _c.mutation.Value(); ok {
		if err := tokencounter.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`repo: validator failed for field "TokenCounter.value": %w`, err)}
		}
	}
	return nil
}

func (_c *TokenCounterCreate) sqlSave(ctx context.Context) (*TokenCounter, error) {
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

func (_c *TokenCounterCreate) createSpec() (*TokenCounter, *sqlgraph.CreateSpec) {
	var (
		_node = &TokenCounter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tokencounter.Table, sqlgraph.NewFieldSpec(tokencounter.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tokencounter.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tokencounter.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(tokencounter.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(tokencounter.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(tokencounter.FieldValue, field.TypeInt, value)
		_node.Value = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TokenCounter.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TokenCounterUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TokenCounterCreate) OnConflict(opts ...sql.ConflictOption) *TokenCounterUpsertOne {
	_c.conflict = opts
	return &TokenCounterUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TokenCounter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TokenCounterCreate) OnConflictColumns(columns ...string) *TokenCounterUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TokenCounterUpsertOne{
		create: _c,
	}
}

type (
	// TokenCounterUpsertOne is the builder for "upsert"-ing
	//  one TokenCounter node.
	TokenCounterUpsertOne struct {
		create *TokenCounterCreate
	}

	// TokenCounterUpsert is the "OnConflict" setter.
	TokenCounterUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *TokenCounterUpsert) SetUpdatedAt(v time.Time) *TokenCounterUpsert {
	u.Set(tokencounter.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TokenCounterUpsert) UpdateUpdatedAt() *TokenCounterUpsert {
	u.SetExcluded(tokencounter.FieldUpdatedAt)
	return u
}

// SetValue sets the "value" field.
func (u *TokenCounterUpsert) SetValue(v int) *TokenCounterUpsert {
	u.Set(tokencounter.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *TokenCounterUpsert) UpdateValue() *TokenCounterUpsert {
	u.SetExcluded(tokencounter.FieldValue)
	return u
}

// AddValue adds v to the "value" field.
func (u *TokenCounterUpsert) AddValue(v int) *TokenCounterUpsert {
	u.Add(tokencounter.FieldValue, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TokenCounter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tokencounter.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TokenCounterUpsertOne) UpdateNewValues() *TokenCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(tokencounter.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(tokencounter.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.DoctorID(); exists {
			s.SetIgnore(tokencounter.FieldDoctorID)
		}
		if _, exists := u.create.mutation.Date(); exists {
			s.SetIgnore(tokencounter.FieldDate)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TokenCounter.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TokenCounterUpsertOne) Ignore() *TokenCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TokenCounterUpsertOne) DoNothing() *TokenCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TokenCounterCreate.OnConflict
// documentation for more info.
func (u *TokenCounterUpsertOne) Update(set func(*TokenCounterUpsert)) *TokenCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TokenCounterUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TokenCounterUpsertOne) SetUpdatedAt(v time.Time) *TokenCounterUpsertOne {
	return u.Update(func(s *TokenCounterUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TokenCounterUpsertOne) UpdateUpdatedAt() *TokenCounterUpsertOne {
	return u.Update(func(s *TokenCounterUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValue sets the "value" field.
func (u *TokenCounterUpsertOne) SetValue(v int) *TokenCounterUpsertOne {
	return u.Update(func(s *TokenCounterUpsert) {
		s.SetValue(v)
	})
}

// AddValue adds v to the "value" field.
func (u *TokenCounterUpsertOne) AddValue(v int) *TokenCounterUpsertOne {
	return u.Update(func(s *TokenCounterUpsert) {
		s.AddValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *TokenCounterUpsertOne) UpdateValue() *TokenCounterUpsertOne {
	return u.Update(func(s *TokenCounterUpsert) {
		s.UpdateValue()
	})
}

// Exec executes the query.
func (u *TokenCounterUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TokenCounterCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TokenCounterUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TokenCounterUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: TokenCounterUpsertOne.ID is not supported by MySQL driver. Use TokenCounterUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TokenCounterUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TokenCounterCreateBulk is the builder for creating many TokenCounter entities in bulk.
type TokenCounterCreateBulk struct {
	config
	err      error
	builders []*TokenCounterCreate
	conflict []sql.ConflictOption
}

// Save creates the TokenCounter entities in the database.
func (_c *TokenCounterCreateBulk) Save(ctx context.Context) ([]*TokenCounter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TokenCounter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TokenCounterMutation)
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
func (_c *TokenCounterCreateBulk) SaveX(ctx context.Context) []*TokenCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenCounterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenCounterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TokenCounter.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TokenCounterUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TokenCounterCreateBulk) OnConflict(opts ...sql.ConflictOption) *TokenCounterUpsertBulk {
	_c.conflict = opts
	return &TokenCounterUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TokenCounter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TokenCounterCreateBulk) OnConflictColumns(columns ...string) *TokenCounterUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TokenCounterUpsertBulk{
		create: _c,
	}
}

// TokenCounterUpsertBulk is the builder for "upsert"-ing
// a bulk of TokenCounter nodes.
type TokenCounterUpsertBulk struct {
	create *TokenCounterCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TokenCounter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tokencounter.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TokenCounterUpsertBulk) UpdateNewValues() *TokenCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(tokencounter.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(tokencounter.FieldCreatedAt)
			}
			if _, exists := b.mutation.DoctorID(); exists {
				s.SetIgnore(tokencounter.FieldDoctorID)
			}
			if _, exists := b.mutation.Date(); exists {
				s.SetIgnore(tokencounter.FieldDate)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TokenCounter.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TokenCounterUpsertBulk) Ignore() *TokenCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TokenCounterUpsertBulk) DoNothing() *TokenCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TokenCounterCreateBulk.OnConflict
// documentation for more info.
func (u *TokenCounterUpsertBulk) Update(set func(*TokenCounterUpsert)) *TokenCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TokenCounterUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TokenCounterUpsertBulk) SetUpdatedAt(v time.Time) *TokenCounterUpsertBulk {
	return u.Update(func(s *TokenCounterUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TokenCounterUpsertBulk) UpdateUpdatedAt() *TokenCounterUpsertBulk {
	return u.Update(func(s *TokenCounterUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValue sets the "value" field.
func (u *TokenCounterUpsertBulk) SetValue(v int) *TokenCounterUpsertBulk {
	return u.Update(func(s *TokenCounterUpsert) {
		s.SetValue(v)
	})
}

// AddValue adds v to the "value" field.
func (u *TokenCounterUpsertBulk) AddValue(v int) *TokenCounterUpsertBulk {
	return u.Update(func(s *TokenCounterUpsert) {
		s.AddValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *TokenCounterUpsertBulk) UpdateValue() *TokenCounterUpsertBulk {
	return u.Update(func(s *TokenCounterUpsert) {
		s.UpdateValue()
	})
}

// Exec executes the query.
func (u *TokenCounterUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the TokenCounterCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TokenCounterCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TokenCounterUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
