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
	"github.com/adityakr/prepdrill/ent/paper"
)

// PaperCreate is the builder for creating a Paper entity.
type PaperCreate struct {
	config
	mutation *PaperMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOwnerID sets the "owner_id" field.
func (_c *PaperCreate) SetOwnerID(v string) *PaperCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PaperCreate) SetStatus(v string) *PaperCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PaperCreate) SetNillableStatus(v *string) *PaperCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *PaperCreate) SetScore(v int) *PaperCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *PaperCreate) SetNillableScore(v *int) *PaperCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *PaperCreate) SetAccuracy(v int) *PaperCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_c *PaperCreate) SetNillableAccuracy(v *int) *PaperCreate {
	if v != nil {
		_c.SetAccuracy(*v)
	}
	return _c
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_c *PaperCreate) SetDifficultyLevel(v int) *PaperCreate {
	_c.mutation.SetDifficultyLevel(v)
	return _c
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_c *PaperCreate) SetNillableDifficultyLevel(v *int) *PaperCreate {
	if v != nil {
		_c.SetDifficultyLevel(*v)
	}
	return _c
}

// SetRecoveryMode sets the "recovery_mode" field.
func (_c *PaperCreate) SetRecoveryMode(v bool) *PaperCreate {
	_c.mutation.SetRecoveryMode(v)
	return _c
}

// SetNillableRecoveryMode sets the "recovery_mode" field if the given value is not nil.
func (_c *PaperCreate) SetNillableRecoveryMode(v *bool) *PaperCreate {
	if v != nil {
		_c.SetRecoveryMode(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PaperCreate) SetCreatedAt(v time.Time) *PaperCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PaperCreate) SetNillableCreatedAt(v *time.Time) *PaperCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *PaperCreate) SetSubmittedAt(v time.Time) *PaperCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *PaperCreate) SetNillableSubmittedAt(v *time.Time) *PaperCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_c *PaperCreate) SetUnlockedAt(v time.Time) *PaperCreate {
	_c.mutation.SetUnlockedAt(v)
	return _c
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_c *PaperCreate) SetNillableUnlockedAt(v *time.Time) *PaperCreate {
	if v != nil {
		_c.SetUnlockedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PaperCreate) SetID(v string) *PaperCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PaperMutation object of the builder.
func (_c *PaperCreate) Mutation() *PaperMutation {
	return _c.mutation
}

// Save creates the Paper in the database.
func (_c *PaperCreate) Save(ctx context.Context) (*Paper, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaperCreate) SaveX(ctx context.Context) *Paper {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaperCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaperCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaperCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := paper.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := paper.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		v := paper.DefaultAccuracy
		_c.mutation.SetAccuracy(v)
	}
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		v := paper.DefaultDifficultyLevel
		_c.mutation.SetDifficultyLevel(v)
	}
	if _, ok := _c.mutation.RecoveryMode(); !ok {
		v := paper.DefaultRecoveryMode
		_c.mutation.SetRecoveryMode(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := paper.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaperCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Paper.owner_id"`)}
	}
	if v, ok := _c.mutation.OwnerID(); ok {
		if err := paper.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Paper.owner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Paper.status"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Paper.score"`)}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "Paper.accuracy"`)}
	}
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		return &ValidationError{Name: "difficulty_level", err: errors.New(`ent: missing required field "Paper.difficulty_level"`)}
	}
	if _, ok := _c.mutation.RecoveryMode(); !ok {
		return &ValidationError{Name: "recovery_mode", err: errors.New(`ent: missing required field "Paper.recovery_mode"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Paper.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := paper.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Paper.id": %w`, err)}
		}
	}
	return nil
}

func (_c *PaperCreate) sqlSave(ctx context.Context) (*Paper, error) {
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
			return nil, fmt.Errorf("unexpected Paper.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PaperCreate) createSpec() (*Paper, *sqlgraph.CreateSpec) {
	var (
		_node = &Paper{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paper.Table, sqlgraph.NewFieldSpec(paper.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(paper.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(paper.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(paper.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(paper.FieldAccuracy, field.TypeInt, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.DifficultyLevel(); ok {
		_spec.SetField(paper.FieldDifficultyLevel, field.TypeInt, value)
		_node.DifficultyLevel = value
	}
	if value, ok := _c.mutation.RecoveryMode(); ok {
		_spec.SetField(paper.FieldRecoveryMode, field.TypeBool, value)
		_node.RecoveryMode = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(paper.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(paper.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = value
	}
	if value, ok := _c.mutation.UnlockedAt(); ok {
		_spec.SetField(paper.FieldUnlockedAt, field.TypeTime, value)
		_node.UnlockedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Paper.Create().
//		SetOwnerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaperUpsert) {
//			SetOwnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *PaperCreate) OnConflict(opts ...sql.ConflictOption) *PaperUpsertOne {
	_c.conflict = opts
	return &PaperUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Paper.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaperCreate) OnConflictColumns(columns ...string) *PaperUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaperUpsertOne{
		create: _c,
	}
}

type (
	// PaperUpsertOne is the builder for "upsert"-ing
	//  one Paper node.
	PaperUpsertOne struct {
		create *PaperCreate
	}

	// PaperUpsert is the "OnConflict" setter.
	PaperUpsert struct {
		*sql.UpdateSet
	}
)

// SetOwnerID sets the "owner_id" field.
func (u *PaperUpsert) SetOwnerID(v string) *PaperUpsert {
	u.Set(paper.FieldOwnerID, v)
	return u
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *PaperUpsert) UpdateOwnerID() *PaperUpsert {
	u.SetExcluded(paper.FieldOwnerID)
	return u
}

// SetStatus sets the "status" field.
func (u *PaperUpsert) SetStatus(v string) *PaperUpsert {
	u.Set(paper.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PaperUpsert) UpdateStatus() *PaperUpsert {
	u.SetExcluded(paper.FieldStatus)
	return u
}

// SetScore sets the "score" field.
func (u *PaperUpsert) SetScore(v int) *PaperUpsert {
	u.Set(paper.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *PaperUpsert) UpdateScore() *PaperUpsert {
	u.SetExcluded(paper.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *PaperUpsert) AddScore(v int) *PaperUpsert {
	u.Add(paper.FieldScore, v)
	return u
}

// SetAccuracy sets the "accuracy" field.
func (u *PaperUpsert) SetAccuracy(v int) *PaperUpsert {
	u.Set(paper.FieldAccuracy, v)
	return u
}

// UpdateAccuracy sets the "accuracy" field to the value that was provided on create.
func (u *PaperUpsert) UpdateAccuracy() *PaperUpsert {
	u.SetExcluded(paper.FieldAccuracy)
	return u
}

// AddAccuracy adds v to the "accuracy" field.
func (u *PaperUpsert) AddAccuracy(v int) *PaperUpsert {
	u.Add(paper.FieldAccuracy, v)
	return u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (u *PaperUpsert) SetDifficultyLevel(v int) *PaperUpsert {
	u.Set(paper.FieldDifficultyLevel, v)
	return u
}

// UpdateDifficultyLevel sets the "difficulty_level" field to the value that was provided on create.
func (u *PaperUpsert) UpdateDifficultyLevel() *PaperUpsert {
	u.SetExcluded(paper.FieldDifficultyLevel)
	return u
}

// AddDifficultyLevel adds v to the "difficulty_level" field.
func (u *PaperUpsert) AddDifficultyLevel(v int) *PaperUpsert {
	u.Add(paper.FieldDifficultyLevel, v)
	return u
}

// SetRecoveryMode sets the "recovery_mode" field.
func (u *PaperUpsert) SetRecoveryMode(v bool) *PaperUpsert {
	u.Set(paper.FieldRecoveryMode, v)
	return u
}

// UpdateRecoveryMode sets the "recovery_mode" field to the value that was provided on create.
func (u *PaperUpsert) UpdateRecoveryMode() *PaperUpsert {
	u.SetExcluded(paper.FieldRecoveryMode)
	return u
}

// SetSubmittedAt sets the "submitted_at" field.
func (u *PaperUpsert) SetSubmittedAt(v time.Time) *PaperUpsert {
	u.Set(paper.FieldSubmittedAt, v)
	return u
}

// UpdateSubmittedAt sets the "submitted_at" field to the value that was provided on create.
func (u *PaperUpsert) UpdateSubmittedAt() *PaperUpsert {
	u.SetExcluded(paper.FieldSubmittedAt)
	return u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (u *PaperUpsert) ClearSubmittedAt() *PaperUpsert {
	u.SetNull(paper.FieldSubmittedAt)
	return u
}

// SetUnlockedAt sets the "unlocked_at" field.
func (u *PaperUpsert) SetUnlockedAt(v time.Time) *PaperUpsert {
	u.Set(paper.FieldUnlockedAt, v)
	return u
}

// UpdateUnlockedAt sets the "unlocked_at" field to the value that was provided on create.
func (u *PaperUpsert) UpdateUnlockedAt() *PaperUpsert {
	u.SetExcluded(paper.FieldUnlockedAt)
	return u
}

// ClearUnlockedAt clears the value of the "unlocked_at" field.
func (u *PaperUpsert) ClearUnlockedAt() *PaperUpsert {
	u.SetNull(paper.FieldUnlockedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Paper.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paper.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaperUpsertOne) UpdateNewValues() *PaperUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(paper.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(paper.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Paper.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PaperUpsertOne) Ignore() *PaperUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaperUpsertOne) DoNothing() *PaperUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaperCreate.OnConflict
// documentation for more info.
func (u *PaperUpsertOne) Update(set func(*PaperUpsert)) *PaperUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaperUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *PaperUpsertOne) SetOwnerID(v string) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateOwnerID() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateOwnerID()
	})
}

// SetStatus sets the "status" field.
func (u *PaperUpsertOne) SetStatus(v string) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateStatus() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateStatus()
	})
}

// SetScore sets the "score" field.
func (u *PaperUpsertOne) SetScore(v int) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *PaperUpsertOne) AddScore(v int) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateScore() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateScore()
	})
}

// SetAccuracy sets the "accuracy" field.
func (u *PaperUpsertOne) SetAccuracy(v int) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetAccuracy(v)
	})
}

// AddAccuracy adds v to the "accuracy" field.
func (u *PaperUpsertOne) AddAccuracy(v int) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.AddAccuracy(v)
	})
}

// UpdateAccuracy sets the "accuracy" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateAccuracy() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateAccuracy()
	})
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (u *PaperUpsertOne) SetDifficultyLevel(v int) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetDifficultyLevel(v)
	})
}

// AddDifficultyLevel adds v to the "difficulty_level" field.
func (u *PaperUpsertOne) AddDifficultyLevel(v int) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.AddDifficultyLevel(v)
	})
}

// UpdateDifficultyLevel sets the "difficulty_level" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateDifficultyLevel() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateDifficultyLevel()
	})
}

// SetRecoveryMode sets the "recovery_mode" field.
func (u *PaperUpsertOne) SetRecoveryMode(v bool) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetRecoveryMode(v)
	})
}

// UpdateRecoveryMode sets the "recovery_mode" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateRecoveryMode() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateRecoveryMode()
	})
}

// SetSubmittedAt sets the "submitted_at" field.
func (u *PaperUpsertOne) SetSubmittedAt(v time.Time) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetSubmittedAt(v)
	})
}

// UpdateSubmittedAt sets the "submitted_at" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateSubmittedAt() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateSubmittedAt()
	})
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (u *PaperUpsertOne) ClearSubmittedAt() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.ClearSubmittedAt()
	})
}

// SetUnlockedAt sets the "unlocked_at" field.
func (u *PaperUpsertOne) SetUnlockedAt(v time.Time) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetUnlockedAt(v)
	})
}

// UpdateUnlockedAt sets the "unlocked_at" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateUnlockedAt() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateUnlockedAt()
	})
}

// ClearUnlockedAt clears the value of the "unlocked_at" field.
func (u *PaperUpsertOne) ClearUnlockedAt() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.ClearUnlockedAt()
	})
}

// Exec executes the query.
func (u *PaperUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PaperCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaperUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PaperUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PaperUpsertOne.ID is not supported by MySQL driver. Use PaperUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PaperUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PaperCreateBulk is the builder for creating many Paper entities in bulk.
type PaperCreateBulk struct {
	config
	err      error
	builders []*PaperCreate
	conflict []sql.ConflictOption
}

// Save creates the Paper entities in the database.
func (_c *PaperCreateBulk) Save(ctx context.Context) ([]*Paper, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Paper, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaperMutation)
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
func (_c *PaperCreateBulk) SaveX(ctx context.Context) []*Paper {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaperCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaperCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Paper.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaperUpsert) {
//			SetOwnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *PaperCreateBulk) OnConflict(opts ...sql.ConflictOption) *PaperUpsertBulk {
	_c.conflict = opts
	return &PaperUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Paper.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaperCreateBulk) OnConflictColumns(columns ...string) *PaperUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaperUpsertBulk{
		create: _c,
	}
}

// PaperUpsertBulk is the builder for "upsert"-ing
// a bulk of Paper nodes.
type PaperUpsertBulk struct {
	create *PaperCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Paper.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paper.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaperUpsertBulk) UpdateNewValues() *PaperUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(paper.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(paper.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Paper.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PaperUpsertBulk) Ignore() *PaperUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaperUpsertBulk) DoNothing() *PaperUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaperCreateBulk.OnConflict
// documentation for more info.
func (u *PaperUpsertBulk) Update(set func(*PaperUpsert)) *PaperUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaperUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *PaperUpsertBulk) SetOwnerID(v string) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateOwnerID() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateOwnerID()
	})
}

// SetStatus sets the "status" field.
func (u *PaperUpsertBulk) SetStatus(v string) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateStatus() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateStatus()
	})
}

// SetScore sets the "score" field.
func (u *PaperUpsertBulk) SetScore(v int) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *PaperUpsertBulk) AddScore(v int) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateScore() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateScore()
	})
}

// SetAccuracy sets the "accuracy" field.
func (u *PaperUpsertBulk) SetAccuracy(v int) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetAccuracy(v)
	})
}

// AddAccuracy adds v to the "accuracy" field.
func (u *PaperUpsertBulk) AddAccuracy(v int) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.AddAccuracy(v)
	})
}

// UpdateAccuracy sets the "accuracy" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateAccuracy() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateAccuracy()
	})
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (u *PaperUpsertBulk) SetDifficultyLevel(v int) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetDifficultyLevel(v)
	})
}

// AddDifficultyLevel adds v to the "difficulty_level" field.
func (u *PaperUpsertBulk) AddDifficultyLevel(v int) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.AddDifficultyLevel(v)
	})
}

// UpdateDifficultyLevel sets the "difficulty_level" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateDifficultyLevel() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateDifficultyLevel()
	})
}

// SetRecoveryMode sets the "recovery_mode" field.
func (u *PaperUpsertBulk) SetRecoveryMode(v bool) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetRecoveryMode(v)
	})
}

// UpdateRecoveryMode sets the "recovery_mode" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateRecoveryMode() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateRecoveryMode()
	})
}

// SetSubmittedAt sets the "submitted_at" field.
func (u *PaperUpsertBulk) SetSubmittedAt(v time.Time) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetSubmittedAt(v)
	})
}

// UpdateSubmittedAt sets the "submitted_at" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateSubmittedAt() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateSubmittedAt()
	})
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (u *PaperUpsertBulk) ClearSubmittedAt() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.ClearSubmittedAt()
	})
}

// SetUnlockedAt sets the "unlocked_at" field.
func (u *PaperUpsertBulk) SetUnlockedAt(v time.Time) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetUnlockedAt(v)
	})
}

// UpdateUnlockedAt sets the "unlocked_at" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateUnlockedAt() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateUnlockedAt()
	})
}

// ClearUnlockedAt clears the value of the "unlocked_at" field.
func (u *PaperUpsertBulk) ClearUnlockedAt() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.ClearUnlockedAt()
	})
}

// Exec executes the query.
func (u *PaperUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PaperCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PaperCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaperUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
