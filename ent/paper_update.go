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
	"github.com/adityakr/prepdrill/ent/paper"
	"github.com/adityakr/prepdrill/ent/predicate"
)

// PaperUpdate is the builder for updating Paper entities.
type PaperUpdate struct {
	config
	hooks    []Hook
	mutation *PaperMutation
}

// Where appends a list predicates to the PaperUpdate builder.
func (_u *PaperUpdate) Where(ps ...predicate.Paper) *PaperUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *PaperUpdate) SetOwnerID(v string) *PaperUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableOwnerID(v *string) *PaperUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PaperUpdate) SetStatus(v string) *PaperUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableStatus(v *string) *PaperUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *PaperUpdate) SetScore(v int) *PaperUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableScore(v *int) *PaperUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PaperUpdate) AddScore(v int) *PaperUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *PaperUpdate) SetAccuracy(v int) *PaperUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableAccuracy(v *int) *PaperUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *PaperUpdate) AddAccuracy(v int) *PaperUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *PaperUpdate) SetDifficultyLevel(v int) *PaperUpdate {
	_u.mutation.ResetDifficultyLevel()
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableDifficultyLevel(v *int) *PaperUpdate {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// AddDifficultyLevel adds value to the "difficulty_level" field.
func (_u *PaperUpdate) AddDifficultyLevel(v int) *PaperUpdate {
	_u.mutation.AddDifficultyLevel(v)
	return _u
}

// SetRecoveryMode sets the "recovery_mode" field.
func (_u *PaperUpdate) SetRecoveryMode(v bool) *PaperUpdate {
	_u.mutation.SetRecoveryMode(v)
	return _u
}

// SetNillableRecoveryMode sets the "recovery_mode" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableRecoveryMode(v *bool) *PaperUpdate {
	if v != nil {
		_u.SetRecoveryMode(*v)
	}
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *PaperUpdate) SetSubmittedAt(v time.Time) *PaperUpdate {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableSubmittedAt(v *time.Time) *PaperUpdate {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *PaperUpdate) ClearSubmittedAt() *PaperUpdate {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_u *PaperUpdate) SetUnlockedAt(v time.Time) *PaperUpdate {
	_u.mutation.SetUnlockedAt(v)
	return _u
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableUnlockedAt(v *time.Time) *PaperUpdate {
	if v != nil {
		_u.SetUnlockedAt(*v)
	}
	return _u
}

// ClearUnlockedAt clears the value of the "unlocked_at" field.
func (_u *PaperUpdate) ClearUnlockedAt() *PaperUpdate {
	_u.mutation.ClearUnlockedAt()
	return _u
}

// Mutation returns the PaperMutation object of the builder.
func (_u *PaperUpdate) Mutation() *PaperMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaperUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaperUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaperUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaperUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaperUpdate) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := paper.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Paper.owner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PaperUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paper.Table, paper.Columns, sqlgraph.NewFieldSpec(paper.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(paper.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(paper.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(paper.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(paper.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(paper.FieldAccuracy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(paper.FieldAccuracy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(paper.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(paper.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecoveryMode(); ok {
		_spec.SetField(paper.FieldRecoveryMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(paper.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(paper.FieldSubmittedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UnlockedAt(); ok {
		_spec.SetField(paper.FieldUnlockedAt, field.TypeTime, value)
	}
	if _u.mutation.UnlockedAtCleared() {
		_spec.ClearField(paper.FieldUnlockedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paper.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaperUpdateOne is the builder for updating a single Paper entity.
type PaperUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaperMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *PaperUpdateOne) SetOwnerID(v string) *PaperUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableOwnerID(v *string) *PaperUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PaperUpdateOne) SetStatus(v string) *PaperUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableStatus(v *string) *PaperUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *PaperUpdateOne) SetScore(v int) *PaperUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableScore(v *int) *PaperUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PaperUpdateOne) AddScore(v int) *PaperUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *PaperUpdateOne) SetAccuracy(v int) *PaperUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableAccuracy(v *int) *PaperUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *PaperUpdateOne) AddAccuracy(v int) *PaperUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *PaperUpdateOne) SetDifficultyLevel(v int) *PaperUpdateOne {
	_u.mutation.ResetDifficultyLevel()
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableDifficultyLevel(v *int) *PaperUpdateOne {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// AddDifficultyLevel adds value to the "difficulty_level" field.
func (_u *PaperUpdateOne) AddDifficultyLevel(v int) *PaperUpdateOne {
	_u.mutation.AddDifficultyLevel(v)
	return _u
}

// SetRecoveryMode sets the "recovery_mode" field.
func (_u *PaperUpdateOne) SetRecoveryMode(v bool) *PaperUpdateOne {
	_u.mutation.SetRecoveryMode(v)
	return _u
}

// SetNillableRecoveryMode sets the "recovery_mode" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableRecoveryMode(v *bool) *PaperUpdateOne {
	if v != nil {
		_u.SetRecoveryMode(*v)
	}
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *PaperUpdateOne) SetSubmittedAt(v time.Time) *PaperUpdateOne {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableSubmittedAt(v *time.Time) *PaperUpdateOne {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *PaperUpdateOne) ClearSubmittedAt() *PaperUpdateOne {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_u *PaperUpdateOne) SetUnlockedAt(v time.Time) *PaperUpdateOne {
	_u.mutation.SetUnlockedAt(v)
	return _u
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableUnlockedAt(v *time.Time) *PaperUpdateOne {
	if v != nil {
		_u.SetUnlockedAt(*v)
	}
	return _u
}

// ClearUnlockedAt clears the value of the "unlocked_at" field.
func (_u *PaperUpdateOne) ClearUnlockedAt() *PaperUpdateOne {
	_u.mutation.ClearUnlockedAt()
	return _u
}

// Mutation returns the PaperMutation object of the builder.
func (_u *PaperUpdateOne) Mutation() *PaperMutation {
	return _u.mutation
}

// Where appends a list predicates to the PaperUpdate builder.
func (_u *PaperUpdateOne) Where(ps ...predicate.Paper) *PaperUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaperUpdateOne) Select(field string, fields ...string) *PaperUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Paper entity.
func (_u *PaperUpdateOne) Save(ctx context.Context) (*Paper, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaperUpdateOne) SaveX(ctx context.Context) *Paper {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaperUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaperUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaperUpdateOne) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := paper.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Paper.owner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PaperUpdateOne) sqlSave(ctx context.Context) (_node *Paper, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paper.Table, paper.Columns, sqlgraph.NewFieldSpec(paper.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Paper.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paper.FieldID)
		for _, f := range fields {
			if !paper.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paper.FieldID {
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
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(paper.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(paper.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(paper.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(paper.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(paper.FieldAccuracy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(paper.FieldAccuracy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(paper.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(paper.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecoveryMode(); ok {
		_spec.SetField(paper.FieldRecoveryMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(paper.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(paper.FieldSubmittedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UnlockedAt(); ok {
		_spec.SetField(paper.FieldUnlockedAt, field.TypeTime, value)
	}
	if _u.mutation.UnlockedAtCleared() {
		_spec.ClearField(paper.FieldUnlockedAt, field.TypeTime)
	}
	_node = &Paper{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paper.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
