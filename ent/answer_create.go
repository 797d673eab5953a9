// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adityakr/prepdrill/ent/answer"
)

// AnswerCreate is the builder for creating a Answer entity.
type AnswerCreate struct {
	config
	mutation *AnswerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPaperID sets the "paper_id" field.
func (_c *AnswerCreate) SetPaperID(v string) *AnswerCreate {
	_c.mutation.SetPaperID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AnswerCreate) SetQuestionID(v string) *AnswerCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetUserAnswer sets the "user_answer" field.
func (_c *AnswerCreate) SetUserAnswer(v string) *AnswerCreate {
	_c.mutation.SetUserAnswer(v)
	return _c
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableUserAnswer(v *string) *AnswerCreate {
	if v != nil {
		_c.SetUserAnswer(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AnswerCreate) SetCorrect(v bool) *AnswerCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_c *AnswerCreate) SetTimeSpentSecs(v int) *AnswerCreate {
	_c.mutation.SetTimeSpentSecs(v)
	return _c
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableTimeSpentSecs(v *int) *AnswerCreate {
	if v != nil {
		_c.SetTimeSpentSecs(*v)
	}
	return _c
}

// SetMistakeCategory sets the "mistake_category" field.
func (_c *AnswerCreate) SetMistakeCategory(v string) *AnswerCreate {
	_c.mutation.SetMistakeCategory(v)
	return _c
}

// SetNillableMistakeCategory sets the "mistake_category" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableMistakeCategory(v *string) *AnswerCreate {
	if v != nil {
		_c.SetMistakeCategory(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnswerCreate) SetID(v string) *AnswerCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AnswerMutation object of the builder.
func (_c *AnswerCreate) Mutation() *AnswerMutation {
	return _c.mutation
}

// Save creates the Answer in the database.
func (_c *AnswerCreate) Save(ctx context.Context) (*Answer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerCreate) SaveX(ctx context.Context) *Answer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerCreate) defaults() {
	if _, ok := _c.mutation.UserAnswer(); !ok {
		v := answer.DefaultUserAnswer
		_c.mutation.SetUserAnswer(v)
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		v := answer.DefaultTimeSpentSecs
		_c.mutation.SetTimeSpentSecs(v)
	}
	if _, ok := _c.mutation.MistakeCategory(); !ok {
		v := answer.DefaultMistakeCategory
		_c.mutation.SetMistakeCategory(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerCreate) check() error {
	if _, ok := _c.mutation.PaperID(); !ok {
		return &ValidationError{Name: "paper_id", err: errors.New(`ent: missing required field "Answer.paper_id"`)}
	}
	if v, ok := _c.mutation.PaperID(); ok {
		if err := answer.PaperIDValidator(v); err != nil {
			return &ValidationError{Name: "paper_id", err: fmt.Errorf(`ent: validator failed for field "Answer.paper_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "Answer.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := answer.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Answer.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserAnswer(); !ok {
		return &ValidationError{Name: "user_answer", err: errors.New(`ent: missing required field "Answer.user_answer"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "Answer.correct"`)}
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		return &ValidationError{Name: "time_spent_secs", err: errors.New(`ent: missing required field "Answer.time_spent_secs"`)}
	}
	if _, ok := _c.mutation.MistakeCategory(); !ok {
		return &ValidationError{Name: "mistake_category", err: errors.New(`ent: missing required field "Answer.mistake_category"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := answer.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Answer.id": %w`, err)}
		}
	}
	return nil
}

func (_c *AnswerCreate) sqlSave(ctx context.Context) (*Answer, error) {
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
			return nil, fmt.Errorf("unexpected Answer.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnswerCreate) createSpec() (*Answer, *sqlgraph.CreateSpec) {
	var (
		_node = &Answer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answer.Table, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PaperID(); ok {
		_spec.SetField(answer.FieldPaperID, field.TypeString, value)
		_node.PaperID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(answer.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.UserAnswer(); ok {
		_spec.SetField(answer.FieldUserAnswer, field.TypeString, value)
		_node.UserAnswer = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(answer.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.TimeSpentSecs(); ok {
		_spec.SetField(answer.FieldTimeSpentSecs, field.TypeInt, value)
		_node.TimeSpentSecs = value
	}
	if value, ok := _c.mutation.MistakeCategory(); ok {
		_spec.SetField(answer.FieldMistakeCategory, field.TypeString, value)
		_node.MistakeCategory = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Answer.Create().
//		SetPaperID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnswerUpsert) {
//			SetPaperID(v+v).
//		}).
//		Exec(ctx)
func (_c *AnswerCreate) OnConflict(opts ...sql.ConflictOption) *AnswerUpsertOne {
	_c.conflict = opts
	return &AnswerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Answer.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnswerCreate) OnConflictColumns(columns ...string) *AnswerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnswerUpsertOne{
		create: _c,
	}
}

type (
	// AnswerUpsertOne is the builder for "upsert"-ing
	//  one Answer node.
	AnswerUpsertOne struct {
		create *AnswerCreate
	}

	// AnswerUpsert is the "OnConflict" setter.
	AnswerUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserAnswer sets the "user_answer" field.
func (u *AnswerUpsert) SetUserAnswer(v string) *AnswerUpsert {
	u.Set(answer.FieldUserAnswer, v)
	return u
}

// UpdateUserAnswer sets the "user_answer" field to the value that was provided on create.
func (u *AnswerUpsert) UpdateUserAnswer() *AnswerUpsert {
	u.SetExcluded(answer.FieldUserAnswer)
	return u
}

// SetCorrect sets the "correct" field.
func (u *AnswerUpsert) SetCorrect(v bool) *AnswerUpsert {
	u.Set(answer.FieldCorrect, v)
	return u
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AnswerUpsert) UpdateCorrect() *AnswerUpsert {
	u.SetExcluded(answer.FieldCorrect)
	return u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (u *AnswerUpsert) SetTimeSpentSecs(v int) *AnswerUpsert {
	u.Set(answer.FieldTimeSpentSecs, v)
	return u
}

// UpdateTimeSpentSecs sets the "time_spent_secs" field to the value that was provided on create.
func (u *AnswerUpsert) UpdateTimeSpentSecs() *AnswerUpsert {
	u.SetExcluded(answer.FieldTimeSpentSecs)
	return u
}

// AddTimeSpentSecs adds v to the "time_spent_secs" field.
func (u *AnswerUpsert) AddTimeSpentSecs(v int) *AnswerUpsert {
	u.Add(answer.FieldTimeSpentSecs, v)
	return u
}

// SetMistakeCategory sets the "mistake_category" field.
func (u *AnswerUpsert) SetMistakeCategory(v string) *AnswerUpsert {
	u.Set(answer.FieldMistakeCategory, v)
	return u
}

// UpdateMistakeCategory sets the "mistake_category" field to the value that was provided on create.
func (u *AnswerUpsert) UpdateMistakeCategory() *AnswerUpsert {
	u.SetExcluded(answer.FieldMistakeCategory)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Answer.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(answer.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnswerUpsertOne) UpdateNewValues() *AnswerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(answer.FieldID)
		}
		if _, exists := u.create.mutation.PaperID(); exists {
			s.SetIgnore(answer.FieldPaperID)
		}
		if _, exists := u.create.mutation.QuestionID(); exists {
			s.SetIgnore(answer.FieldQuestionID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Answer.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AnswerUpsertOne) Ignore() *AnswerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnswerUpsertOne) DoNothing() *AnswerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnswerCreate.OnConflict
// documentation for more info.
func (u *AnswerUpsertOne) Update(set func(*AnswerUpsert)) *AnswerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnswerUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserAnswer sets the "user_answer" field.
func (u *AnswerUpsertOne) SetUserAnswer(v string) *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.SetUserAnswer(v)
	})
}

// UpdateUserAnswer sets the "user_answer" field to the value that was provided on create.
func (u *AnswerUpsertOne) UpdateUserAnswer() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateUserAnswer()
	})
}

// SetCorrect sets the "correct" field.
func (u *AnswerUpsertOne) SetCorrect(v bool) *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AnswerUpsertOne) UpdateCorrect() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateCorrect()
	})
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (u *AnswerUpsertOne) SetTimeSpentSecs(v int) *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.SetTimeSpentSecs(v)
	})
}

// AddTimeSpentSecs adds v to the "time_spent_secs" field.
func (u *AnswerUpsertOne) AddTimeSpentSecs(v int) *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.AddTimeSpentSecs(v)
	})
}

// UpdateTimeSpentSecs sets the "time_spent_secs" field to the value that was provided on create.
func (u *AnswerUpsertOne) UpdateTimeSpentSecs() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateTimeSpentSecs()
	})
}

// SetMistakeCategory sets the "mistake_category" field.
func (u *AnswerUpsertOne) SetMistakeCategory(v string) *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.SetMistakeCategory(v)
	})
}

// UpdateMistakeCategory sets the "mistake_category" field to the value that was provided on create.
func (u *AnswerUpsertOne) UpdateMistakeCategory() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateMistakeCategory()
	})
}

// Exec executes the query.
func (u *AnswerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnswerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnswerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AnswerUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AnswerUpsertOne.ID is not supported by MySQL driver. Use AnswerUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AnswerUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AnswerCreateBulk is the builder for creating many Answer entities in bulk.
type AnswerCreateBulk struct {
	config
	err      error
	builders []*AnswerCreate
	conflict []sql.ConflictOption
}

// Save creates the Answer entities in the database.
func (_c *AnswerCreateBulk) Save(ctx context.Context) ([]*Answer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Answer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerMutation)
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
func (_c *AnswerCreateBulk) SaveX(ctx context.Context) []*Answer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Answer.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnswerUpsert) {
//			SetPaperID(v+v).
//		}).
//		Exec(ctx)
func (_c *AnswerCreateBulk) OnConflict(opts ...sql.ConflictOption) *AnswerUpsertBulk {
	_c.conflict = opts
	return &AnswerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Answer.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnswerCreateBulk) OnConflictColumns(columns ...string) *AnswerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnswerUpsertBulk{
		create: _c,
	}
}

// AnswerUpsertBulk is the builder for "upsert"-ing
// a bulk of Answer nodes.
type AnswerUpsertBulk struct {
	create *AnswerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Answer.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(answer.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnswerUpsertBulk) UpdateNewValues() *AnswerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(answer.FieldID)
			}
			if _, exists := b.mutation.PaperID(); exists {
				s.SetIgnore(answer.FieldPaperID)
			}
			if _, exists := b.mutation.QuestionID(); exists {
				s.SetIgnore(answer.FieldQuestionID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Answer.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AnswerUpsertBulk) Ignore() *AnswerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnswerUpsertBulk) DoNothing() *AnswerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnswerCreateBulk.OnConflict
// documentation for more info.
func (u *AnswerUpsertBulk) Update(set func(*AnswerUpsert)) *AnswerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnswerUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserAnswer sets the "user_answer" field.
func (u *AnswerUpsertBulk) SetUserAnswer(v string) *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.SetUserAnswer(v)
	})
}

// UpdateUserAnswer sets the "user_answer" field to the value that was provided on create.
func (u *AnswerUpsertBulk) UpdateUserAnswer() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateUserAnswer()
	})
}

// SetCorrect sets the "correct" field.
func (u *AnswerUpsertBulk) SetCorrect(v bool) *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AnswerUpsertBulk) UpdateCorrect() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateCorrect()
	})
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (u *AnswerUpsertBulk) SetTimeSpentSecs(v int) *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.SetTimeSpentSecs(v)
	})
}

// AddTimeSpentSecs adds v to the "time_spent_secs" field.
func (u *AnswerUpsertBulk) AddTimeSpentSecs(v int) *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.AddTimeSpentSecs(v)
	})
}

// UpdateTimeSpentSecs sets the "time_spent_secs" field to the value that was provided on create.
func (u *AnswerUpsertBulk) UpdateTimeSpentSecs() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateTimeSpentSecs()
	})
}

// SetMistakeCategory sets the "mistake_category" field.
func (u *AnswerUpsertBulk) SetMistakeCategory(v string) *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.SetMistakeCategory(v)
	})
}

// UpdateMistakeCategory sets the "mistake_category" field to the value that was provided on create.
func (u *AnswerUpsertBulk) UpdateMistakeCategory() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateMistakeCategory()
	})
}

// Exec executes the query.
func (u *AnswerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AnswerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnswerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnswerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
