// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adityakr/prepdrill/ent/profile"
)

// ProfileCreate is the builder for creating a Profile entity.
type ProfileCreate struct {
	config
	mutation *ProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetExamName sets the "exam_name" field.
func (_c *ProfileCreate) SetExamName(v string) *ProfileCreate {
	_c.mutation.SetExamName(v)
	return _c
}

// SetTargetScore sets the "target_score" field.
func (_c *ProfileCreate) SetTargetScore(v int) *ProfileCreate {
	_c.mutation.SetTargetScore(v)
	return _c
}

// SetNillableTargetScore sets the "target_score" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableTargetScore(v *int) *ProfileCreate {
	if v != nil {
		_c.SetTargetScore(*v)
	}
	return _c
}

// SetStreakCount sets the "streak_count" field.
func (_c *ProfileCreate) SetStreakCount(v int) *ProfileCreate {
	_c.mutation.SetStreakCount(v)
	return _c
}

// SetNillableStreakCount sets the "streak_count" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableStreakCount(v *int) *ProfileCreate {
	if v != nil {
		_c.SetStreakCount(*v)
	}
	return _c
}

// SetZone sets the "zone" field.
func (_c *ProfileCreate) SetZone(v string) *ProfileCreate {
	_c.mutation.SetZone(v)
	return _c
}

// SetNillableZone sets the "zone" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableZone(v *string) *ProfileCreate {
	if v != nil {
		_c.SetZone(*v)
	}
	return _c
}

// SetExamDate sets the "exam_date" field.
func (_c *ProfileCreate) SetExamDate(v time.Time) *ProfileCreate {
	_c.mutation.SetExamDate(v)
	return _c
}

// SetNillableExamDate sets the "exam_date" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableExamDate(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetExamDate(*v)
	}
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *ProfileCreate) SetGroupID(v string) *ProfileCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableGroupID(v *string) *ProfileCreate {
	if v != nil {
		_c.SetGroupID(*v)
	}
	return _c
}

// SetRegion sets the "region" field.
func (_c *ProfileCreate) SetRegion(v string) *ProfileCreate {
	_c.mutation.SetRegion(v)
	return _c
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableRegion(v *string) *ProfileCreate {
	if v != nil {
		_c.SetRegion(*v)
	}
	return _c
}

// SetTargetLevel sets the "target_level" field.
func (_c *ProfileCreate) SetTargetLevel(v string) *ProfileCreate {
	_c.mutation.SetTargetLevel(v)
	return _c
}

// SetNillableTargetLevel sets the "target_level" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableTargetLevel(v *string) *ProfileCreate {
	if v != nil {
		_c.SetTargetLevel(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProfileCreate) SetID(v string) *ProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProfileMutation object of the builder.
func (_c *ProfileCreate) Mutation() *ProfileMutation {
	return _c.mutation
}

// Save creates the Profile in the database.
func (_c *ProfileCreate) Save(ctx context.Context) (*Profile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileCreate) SaveX(ctx context.Context) *Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileCreate) defaults() {
	if _, ok := _c.mutation.TargetScore(); !ok {
		v := profile.DefaultTargetScore
		_c.mutation.SetTargetScore(v)
	}
	if _, ok := _c.mutation.StreakCount(); !ok {
		v := profile.DefaultStreakCount
		_c.mutation.SetStreakCount(v)
	}
	if _, ok := _c.mutation.Zone(); !ok {
		v := profile.DefaultZone
		_c.mutation.SetZone(v)
	}
	if _, ok := _c.mutation.ExamDate(); !ok {
		v := profile.DefaultExamDate()
		_c.mutation.SetExamDate(v)
	}
	if _, ok := _c.mutation.GroupID(); !ok {
		v := profile.DefaultGroupID
		_c.mutation.SetGroupID(v)
	}
	if _, ok := _c.mutation.Region(); !ok {
		v := profile.DefaultRegion
		_c.mutation.SetRegion(v)
	}
	if _, ok := _c.mutation.TargetLevel(); !ok {
		v := profile.DefaultTargetLevel
		_c.mutation.SetTargetLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileCreate) check() error {
	if _, ok := _c.mutation.ExamName(); !ok {
		return &ValidationError{Name: "exam_name", err: errors.New(`ent: missing required field "Profile.exam_name"`)}
	}
	if v, ok := _c.mutation.ExamName(); ok {
		if err := profile.ExamNameValidator(v); err != nil {
			return &ValidationError{Name: "exam_name", err: fmt.Errorf(`ent: validator failed for field "Profile.exam_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetScore(); !ok {
		return &ValidationError{Name: "target_score", err: errors.New(`ent: missing required field "Profile.target_score"`)}
	}
	if _, ok := _c.mutation.StreakCount(); !ok {
		return &ValidationError{Name: "streak_count", err: errors.New(`ent: missing required field "Profile.streak_count"`)}
	}
	if _, ok := _c.mutation.Zone(); !ok {
		return &ValidationError{Name: "zone", err: errors.New(`ent: missing required field "Profile.zone"`)}
	}
	if _, ok := _c.mutation.ExamDate(); !ok {
		return &ValidationError{Name: "exam_date", err: errors.New(`ent: missing required field "Profile.exam_date"`)}
	}
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "Profile.group_id"`)}
	}
	if _, ok := _c.mutation.Region(); !ok {
		return &ValidationError{Name: "region", err: errors.New(`ent: missing required field "Profile.region"`)}
	}
	if _, ok := _c.mutation.TargetLevel(); !ok {
		return &ValidationError{Name: "target_level", err: errors.New(`ent: missing required field "Profile.target_level"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := profile.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Profile.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ProfileCreate) sqlSave(ctx context.Context) (*Profile, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Profile.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProfileCreate) createSpec() (*Profile, *sqlgraph.CreateSpec) {
	var (
		_node = &Profile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profile.Table, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExamName(); ok {
		_spec.SetField(profile.FieldExamName, field.TypeString, value)
		_node.ExamName = value
	}
	if value, ok := _c.mutation.TargetScore(); ok {
		_spec.SetField(profile.FieldTargetScore, field.TypeInt, value)
		_node.TargetScore = value
	}
	if value, ok := _c.mutation.StreakCount(); ok {
		_spec.SetField(profile.FieldStreakCount, field.TypeInt, value)
		_node.StreakCount = value
	}
	if value, ok := _c.mutation.Zone(); ok {
		_spec.SetField(profile.FieldZone, field.TypeString, value)
		_node.Zone = value
	}
	if value, ok := _c.mutation.ExamDate(); ok {
		_spec.SetField(profile.FieldExamDate, field.TypeTime, value)
		_node.ExamDate = value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(profile.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.Region(); ok {
		_spec.SetField(profile.FieldRegion, field.TypeString, value)
		_node.Region = value
	}
	if value, ok := _c.mutation.TargetLevel(); ok {
		_spec.SetField(profile.FieldTargetLevel, field.TypeString, value)
		_node.TargetLevel = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Profile.Create().
//		SetExamName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProfileUpsert) {
//			SetExamName(v+v).
//		}).
//		Exec(ctx)
func (_c *ProfileCreate) OnConflict(opts ...sql.ConflictOption) *ProfileUpsertOne {
	_c.conflict = opts
	return &ProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProfileCreate) OnConflictColumns(columns ...string) *ProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProfileUpsertOne{
		create: _c,
	}
}

type (
	// ProfileUpsertOne is the builder for "upsert"-ing
	//  one Profile node.
	ProfileUpsertOne struct {
		create *ProfileCreate
	}

	// ProfileUpsert is the "OnConflict" setter.
	ProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetExamName sets the "exam_name" field.
func (u *ProfileUpsert) SetExamName(v string) *ProfileUpsert {
	u.Set(profile.FieldExamName, v)
	return u
}

// UpdateExamName sets the "exam_name" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateExamName() *ProfileUpsert {
	u.SetExcluded(profile.FieldExamName)
	return u
}

// SetTargetScore sets the "target_score" field.
func (u *ProfileUpsert) SetTargetScore(v int) *ProfileUpsert {
	u.Set(profile.FieldTargetScore, v)
	return u
}

// UpdateTargetScore sets the "target_score" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateTargetScore() *ProfileUpsert {
	u.SetExcluded(profile.FieldTargetScore)
	return u
}

// AddTargetScore adds v to the "target_score" field.
func (u *ProfileUpsert) AddTargetScore(v int) *ProfileUpsert {
	u.Add(profile.FieldTargetScore, v)
	return u
}

// SetStreakCount sets the "streak_count" field.
func (u *ProfileUpsert) SetStreakCount(v int) *ProfileUpsert {
	u.Set(profile.FieldStreakCount, v)
	return u
}

// UpdateStreakCount sets the "streak_count" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateStreakCount() *ProfileUpsert {
	u.SetExcluded(profile.FieldStreakCount)
	return u
}

// AddStreakCount adds v to the "streak_count" field.
func (u *ProfileUpsert) AddStreakCount(v int) *ProfileUpsert {
	u.Add(profile.FieldStreakCount, v)
	return u
}

// SetZone sets the "zone" field.
func (u *ProfileUpsert) SetZone(v string) *ProfileUpsert {
	u.Set(profile.FieldZone, v)
	return u
}

// UpdateZone sets the "zone" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateZone() *ProfileUpsert {
	u.SetExcluded(profile.FieldZone)
	return u
}

// SetExamDate sets the "exam_date" field.
func (u *ProfileUpsert) SetExamDate(v time.Time) *ProfileUpsert {
	u.Set(profile.FieldExamDate, v)
	return u
}

// UpdateExamDate sets the "exam_date" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateExamDate() *ProfileUpsert {
	u.SetExcluded(profile.FieldExamDate)
	return u
}

// SetGroupID sets the "group_id" field.
func (u *ProfileUpsert) SetGroupID(v string) *ProfileUpsert {
	u.Set(profile.FieldGroupID, v)
	return u
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateGroupID() *ProfileUpsert {
	u.SetExcluded(profile.FieldGroupID)
	return u
}

// SetRegion sets the "region" field.
func (u *ProfileUpsert) SetRegion(v string) *ProfileUpsert {
	u.Set(profile.FieldRegion, v)
	return u
}

// UpdateRegion sets the "region" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateRegion() *ProfileUpsert {
	u.SetExcluded(profile.FieldRegion)
	return u
}

// SetTargetLevel sets the "target_level" field.
func (u *ProfileUpsert) SetTargetLevel(v string) *ProfileUpsert {
	u.Set(profile.FieldTargetLevel, v)
	return u
}

// UpdateTargetLevel sets the "target_level" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateTargetLevel() *ProfileUpsert {
	u.SetExcluded(profile.FieldTargetLevel)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(profile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProfileUpsertOne) UpdateNewValues() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(profile.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProfileUpsertOne) Ignore() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProfileUpsertOne) DoNothing() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProfileCreate.OnConflict
// documentation for more info.
func (u *ProfileUpsertOne) Update(set func(*ProfileUpsert)) *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetExamName sets the "exam_name" field.
func (u *ProfileUpsertOne) SetExamName(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetExamName(v)
	})
}

// UpdateExamName sets the "exam_name" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateExamName() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateExamName()
	})
}

// SetTargetScore sets the "target_score" field.
func (u *ProfileUpsertOne) SetTargetScore(v int) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetTargetScore(v)
	})
}

// AddTargetScore adds v to the "target_score" field.
func (u *ProfileUpsertOne) AddTargetScore(v int) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.AddTargetScore(v)
	})
}

// UpdateTargetScore sets the "target_score" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateTargetScore() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateTargetScore()
	})
}

// SetStreakCount sets the "streak_count" field.
func (u *ProfileUpsertOne) SetStreakCount(v int) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetStreakCount(v)
	})
}

// AddStreakCount adds v to the "streak_count" field.
func (u *ProfileUpsertOne) AddStreakCount(v int) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.AddStreakCount(v)
	})
}

// UpdateStreakCount sets the "streak_count" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateStreakCount() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateStreakCount()
	})
}

// SetZone sets the "zone" field.
func (u *ProfileUpsertOne) SetZone(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetZone(v)
	})
}

// UpdateZone sets the "zone" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateZone() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateZone()
	})
}

// SetExamDate sets the "exam_date" field.
func (u *ProfileUpsertOne) SetExamDate(v time.Time) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetExamDate(v)
	})
}

// UpdateExamDate sets the "exam_date" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateExamDate() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateExamDate()
	})
}

// SetGroupID sets the "group_id" field.
func (u *ProfileUpsertOne) SetGroupID(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateGroupID() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateGroupID()
	})
}

// SetRegion sets the "region" field.
func (u *ProfileUpsertOne) SetRegion(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetRegion(v)
	})
}

// UpdateRegion sets the "region" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateRegion() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateRegion()
	})
}

// SetTargetLevel sets the "target_level" field.
func (u *ProfileUpsertOne) SetTargetLevel(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetTargetLevel(v)
	})
}

// UpdateTargetLevel sets the "target_level" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateTargetLevel() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateTargetLevel()
	})
}

// Exec executes the query.
func (u *ProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProfileUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProfileUpsertOne.ID is not supported by MySQL driver. Use ProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProfileUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProfileCreateBulk is the builder for creating many Profile entities in bulk.
type ProfileCreateBulk struct {
	config
	err      error
	builders []*ProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the Profile entities in the database.
func (_c *ProfileCreateBulk) Save(ctx context.Context) ([]*Profile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Profile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileMutation)
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
func (_c *ProfileCreateBulk) SaveX(ctx context.Context) []*Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Profile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProfileUpsert) {
//			SetExamName(v+v).
//		}).
//		Exec(ctx)
func (_c *ProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProfileUpsertBulk {
	_c.conflict = opts
	return &ProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProfileCreateBulk) OnConflictColumns(columns ...string) *ProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProfileUpsertBulk{
		create: _c,
	}
}

// ProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of Profile nodes.
type ProfileUpsertBulk struct {
	create *ProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(profile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProfileUpsertBulk) UpdateNewValues() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(profile.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProfileUpsertBulk) Ignore() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProfileUpsertBulk) DoNothing() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProfileCreateBulk.OnConflict
// documentation for more info.
func (u *ProfileUpsertBulk) Update(set func(*ProfileUpsert)) *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetExamName sets the "exam_name" field.
func (u *ProfileUpsertBulk) SetExamName(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetExamName(v)
	})
}

// UpdateExamName sets the "exam_name" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateExamName() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateExamName()
	})
}

// SetTargetScore sets the "target_score" field.
func (u *ProfileUpsertBulk) SetTargetScore(v int) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetTargetScore(v)
	})
}

// AddTargetScore adds v to the "target_score" field.
func (u *ProfileUpsertBulk) AddTargetScore(v int) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.AddTargetScore(v)
	})
}

// UpdateTargetScore sets the "target_score" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateTargetScore() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateTargetScore()
	})
}

// SetStreakCount sets the "streak_count" field.
func (u *ProfileUpsertBulk) SetStreakCount(v int) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetStreakCount(v)
	})
}

// AddStreakCount adds v to the "streak_count" field.
func (u *ProfileUpsertBulk) AddStreakCount(v int) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.AddStreakCount(v)
	})
}

// UpdateStreakCount sets the "streak_count" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateStreakCount() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateStreakCount()
	})
}

// SetZone sets the "zone" field.
func (u *ProfileUpsertBulk) SetZone(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetZone(v)
	})
}

// UpdateZone sets the "zone" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateZone() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateZone()
	})
}

// SetExamDate sets the "exam_date" field.
func (u *ProfileUpsertBulk) SetExamDate(v time.Time) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetExamDate(v)
	})
}

// UpdateExamDate sets the "exam_date" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateExamDate() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateExamDate()
	})
}

// SetGroupID sets the "group_id" field.
func (u *ProfileUpsertBulk) SetGroupID(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateGroupID() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateGroupID()
	})
}

// SetRegion sets the "region" field.
func (u *ProfileUpsertBulk) SetRegion(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetRegion(v)
	})
}

// UpdateRegion sets the "region" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateRegion() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateRegion()
	})
}

// SetTargetLevel sets the "target_level" field.
func (u *ProfileUpsertBulk) SetTargetLevel(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetTargetLevel(v)
	})
}

// UpdateTargetLevel sets the "target_level" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateTargetLevel() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateTargetLevel()
	})
}

// Exec executes the query.
func (u *ProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
