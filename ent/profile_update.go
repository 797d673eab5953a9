// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adityakr/prepdrill/ent/predicate"
	"github.com/adityakr/prepdrill/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExamName sets the "exam_name" field.
func (_u *ProfileUpdate) SetExamName(v string) *ProfileUpdate {
	_u.mutation.SetExamName(v)
	return _u
}

// SetNillableExamName sets the "exam_name" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableExamName(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetExamName(*v)
	}
	return _u
}

// SetTargetScore sets the "target_score" field.
func (_u *ProfileUpdate) SetTargetScore(v int) *ProfileUpdate {
	_u.mutation.ResetTargetScore()
	_u.mutation.SetTargetScore(v)
	return _u
}

// SetNillableTargetScore sets the "target_score" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableTargetScore(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetTargetScore(*v)
	}
	return _u
}

// AddTargetScore adds value to the "target_score" field.
func (_u *ProfileUpdate) AddTargetScore(v int) *ProfileUpdate {
	_u.mutation.AddTargetScore(v)
	return _u
}

// SetStreakCount sets the "streak_count" field.
func (_u *ProfileUpdate) SetStreakCount(v int) *ProfileUpdate {
	_u.mutation.ResetStreakCount()
	_u.mutation.SetStreakCount(v)
	return _u
}

// SetNillableStreakCount sets the "streak_count" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableStreakCount(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetStreakCount(*v)
	}
	return _u
}

// AddStreakCount adds value to the "streak_count" field.
func (_u *ProfileUpdate) AddStreakCount(v int) *ProfileUpdate {
	_u.mutation.AddStreakCount(v)
	return _u
}

// SetZone sets the "zone" field.
func (_u *ProfileUpdate) SetZone(v string) *ProfileUpdate {
	_u.mutation.SetZone(v)
	return _u
}

// SetNillableZone sets the "zone" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableZone(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetZone(*v)
	}
	return _u
}

// SetExamDate sets the "exam_date" field.
func (_u *ProfileUpdate) SetExamDate(v time.Time) *ProfileUpdate {
	_u.mutation.SetExamDate(v)
	return _u
}

// SetNillableExamDate sets the "exam_date" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableExamDate(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetExamDate(*v)
	}
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *ProfileUpdate) SetGroupID(v string) *ProfileUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableGroupID(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetRegion sets the "region" field.
func (_u *ProfileUpdate) SetRegion(v string) *ProfileUpdate {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableRegion(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// SetTargetLevel sets the "target_level" field.
func (_u *ProfileUpdate) SetTargetLevel(v string) *ProfileUpdate {
	_u.mutation.SetTargetLevel(v)
	return _u
}

// SetNillableTargetLevel sets the "target_level" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableTargetLevel(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetTargetLevel(*v)
	}
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.ExamName(); ok {
		if err := profile.ExamNameValidator(v); err != nil {
			return &ValidationError{Name: "exam_name", err: fmt.Errorf(`ent: validator failed for field "Profile.exam_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExamName(); ok {
		_spec.SetField(profile.FieldExamName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetScore(); ok {
		_spec.SetField(profile.FieldTargetScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetScore(); ok {
		_spec.AddField(profile.FieldTargetScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakCount(); ok {
		_spec.SetField(profile.FieldStreakCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakCount(); ok {
		_spec.AddField(profile.FieldStreakCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Zone(); ok {
		_spec.SetField(profile.FieldZone, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamDate(); ok {
		_spec.SetField(profile.FieldExamDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(profile.FieldGroupID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(profile.FieldRegion, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLevel(); ok {
		_spec.SetField(profile.FieldTargetLevel, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetExamName sets the "exam_name" field.
func (_u *ProfileUpdateOne) SetExamName(v string) *ProfileUpdateOne {
	_u.mutation.SetExamName(v)
	return _u
}

// SetNillableExamName sets the "exam_name" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableExamName(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetExamName(*v)
	}
	return _u
}

// SetTargetScore sets the "target_score" field.
func (_u *ProfileUpdateOne) SetTargetScore(v int) *ProfileUpdateOne {
	_u.mutation.ResetTargetScore()
	_u.mutation.SetTargetScore(v)
	return _u
}

// SetNillableTargetScore sets the "target_score" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableTargetScore(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetTargetScore(*v)
	}
	return _u
}

// AddTargetScore adds value to the "target_score" field.
func (_u *ProfileUpdateOne) AddTargetScore(v int) *ProfileUpdateOne {
	_u.mutation.AddTargetScore(v)
	return _u
}

// SetStreakCount sets the "streak_count" field.
func (_u *ProfileUpdateOne) SetStreakCount(v int) *ProfileUpdateOne {
	_u.mutation.ResetStreakCount()
	_u.mutation.SetStreakCount(v)
	return _u
}

// SetNillableStreakCount sets the "streak_count" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableStreakCount(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetStreakCount(*v)
	}
	return _u
}

// AddStreakCount adds value to the "streak_count" field.
func (_u *ProfileUpdateOne) AddStreakCount(v int) *ProfileUpdateOne {
	_u.mutation.AddStreakCount(v)
	return _u
}

// SetZone sets the "zone" field.
func (_u *ProfileUpdateOne) SetZone(v string) *ProfileUpdateOne {
	_u.mutation.SetZone(v)
	return _u
}

// SetNillableZone sets the "zone" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableZone(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetZone(*v)
	}
	return _u
}

// SetExamDate sets the "exam_date" field.
func (_u *ProfileUpdateOne) SetExamDate(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetExamDate(v)
	return _u
}

// SetNillableExamDate sets the "exam_date" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableExamDate(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetExamDate(*v)
	}
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *ProfileUpdateOne) SetGroupID(v string) *ProfileUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableGroupID(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetRegion sets the "region" field.
func (_u *ProfileUpdateOne) SetRegion(v string) *ProfileUpdateOne {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableRegion(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// SetTargetLevel sets the "target_level" field.
func (_u *ProfileUpdateOne) SetTargetLevel(v string) *ProfileUpdateOne {
	_u.mutation.SetTargetLevel(v)
	return _u
}

// SetNillableTargetLevel sets the "target_level" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableTargetLevel(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetTargetLevel(*v)
	}
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.ExamName(); ok {
		if err := profile.ExamNameValidator(v); err != nil {
			return &ValidationError{Name: "exam_name", err: fmt.Errorf(`ent: validator failed for field "Profile.exam_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
	if value, ok := _u.mutation.ExamName(); ok {
		_spec.SetField(profile.FieldExamName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetScore(); ok {
		_spec.SetField(profile.FieldTargetScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetScore(); ok {
		_spec.AddField(profile.FieldTargetScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakCount(); ok {
		_spec.SetField(profile.FieldStreakCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakCount(); ok {
		_spec.AddField(profile.FieldStreakCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Zone(); ok {
		_spec.SetField(profile.FieldZone, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamDate(); ok {
		_spec.SetField(profile.FieldExamDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(profile.FieldGroupID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(profile.FieldRegion, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLevel(); ok {
		_spec.SetField(profile.FieldTargetLevel, field.TypeString, value)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
