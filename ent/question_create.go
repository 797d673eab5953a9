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
	"github.com/adityakr/prepdrill/ent/question"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPaperID sets the "paper_id" field.
func (_c *QuestionCreate) SetPaperID(v string) *QuestionCreate {
	_c.mutation.SetPaperID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *QuestionCreate) SetPosition(v int) *QuestionCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetSection sets the "section" field.
func (_c *QuestionCreate) SetSection(v string) *QuestionCreate {
	_c.mutation.SetSection(v)
	return _c
}

// SetText sets the "text" field.
func (_c *QuestionCreate) SetText(v string) *QuestionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *QuestionCreate) SetOptions(v []string) *QuestionCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *QuestionCreate) SetCorrectAnswer(v string) *QuestionCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetVerifiedSource sets the "verified_source" field.
func (_c *QuestionCreate) SetVerifiedSource(v bool) *QuestionCreate {
	_c.mutation.SetVerifiedSource(v)
	return _c
}

// SetNillableVerifiedSource sets the "verified_source" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableVerifiedSource(v *bool) *QuestionCreate {
	if v != nil {
		_c.SetVerifiedSource(*v)
	}
	return _c
}

// SetTrapExplanation sets the "trap_explanation" field.
func (_c *QuestionCreate) SetTrapExplanation(v string) *QuestionCreate {
	_c.mutation.SetTrapExplanation(v)
	return _c
}

// SetNillableTrapExplanation sets the "trap_explanation" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableTrapExplanation(v *string) *QuestionCreate {
	if v != nil {
		_c.SetTrapExplanation(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionCreate) SetID(v string) *QuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.VerifiedSource(); !ok {
		v := question.DefaultVerifiedSource
		_c.mutation.SetVerifiedSource(v)
	}
	if _, ok := _c.mutation.TrapExplanation(); !ok {
		v := question.DefaultTrapExplanation
		_c.mutation.SetTrapExplanation(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.PaperID(); !ok {
		return &ValidationError{Name: "paper_id", err: errors.New(`ent: missing required field "Question.paper_id"`)}
	}
	if v, ok := _c.mutation.PaperID(); ok {
		if err := question.PaperIDValidator(v); err != nil {
			return &ValidationError{Name: "paper_id", err: fmt.Errorf(`ent: validator failed for field "Question.paper_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Question.position"`)}
	}
	if _, ok := _c.mutation.Section(); !ok {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required field "Question.section"`)}
	}
	if v, ok := _c.mutation.Section(); ok {
		if err := question.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "Question.section": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Question.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := question.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Question.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Options(); !ok {
		return &ValidationError{Name: "options", err: errors.New(`ent: missing required field "Question.options"`)}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "Question.correct_answer"`)}
	}
	if v, ok := _c.mutation.CorrectAnswer(); ok {
		if err := question.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "Question.correct_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VerifiedSource(); !ok {
		return &ValidationError{Name: "verified_source", err: errors.New(`ent: missing required field "Question.verified_source"`)}
	}
	if _, ok := _c.mutation.TrapExplanation(); !ok {
		return &ValidationError{Name: "trap_explanation", err: errors.New(`ent: missing required field "Question.trap_explanation"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := question.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Question.id": %w`, err)}
		}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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
			return nil, fmt.Errorf("unexpected Question.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PaperID(); ok {
		_spec.SetField(question.FieldPaperID, field.TypeString, value)
		_node.PaperID = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(question.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Section(); ok {
		_spec.SetField(question.FieldSection, field.TypeString, value)
		_node.Section = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(question.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.VerifiedSource(); ok {
		_spec.SetField(question.FieldVerifiedSource, field.TypeBool, value)
		_node.VerifiedSource = value
	}
	if value, ok := _c.mutation.TrapExplanation(); ok {
		_spec.SetField(question.FieldTrapExplanation, field.TypeString, value)
		_node.TrapExplanation = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.Create().
//		SetPaperID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetPaperID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertOne {
	_c.conflict = opts
	return &QuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflictColumns(columns ...string) *QuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertOne{
		create: _c,
	}
}

type (
	// QuestionUpsertOne is the builder for "upsert"-ing
	//  one Question node.
	QuestionUpsertOne struct {
		create *QuestionCreate
	}

	// QuestionUpsert is the "OnConflict" setter.
	QuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetSection sets the "section" field.
func (u *QuestionUpsert) SetSection(v string) *QuestionUpsert {
	u.Set(question.FieldSection, v)
	return u
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateSection() *QuestionUpsert {
	u.SetExcluded(question.FieldSection)
	return u
}

// SetText sets the "text" field.
func (u *QuestionUpsert) SetText(v string) *QuestionUpsert {
	u.Set(question.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateText() *QuestionUpsert {
	u.SetExcluded(question.FieldText)
	return u
}

// SetOptions sets the "options" field.
func (u *QuestionUpsert) SetOptions(v []string) *QuestionUpsert {
	u.Set(question.FieldOptions, v)
	return u
}

// UpdateOptions sets the "options" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateOptions() *QuestionUpsert {
	u.SetExcluded(question.FieldOptions)
	return u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *QuestionUpsert) SetCorrectAnswer(v string) *QuestionUpsert {
	u.Set(question.FieldCorrectAnswer, v)
	return u
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateCorrectAnswer() *QuestionUpsert {
	u.SetExcluded(question.FieldCorrectAnswer)
	return u
}

// SetVerifiedSource sets the "verified_source" field.
func (u *QuestionUpsert) SetVerifiedSource(v bool) *QuestionUpsert {
	u.Set(question.FieldVerifiedSource, v)
	return u
}

// UpdateVerifiedSource sets the "verified_source" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateVerifiedSource() *QuestionUpsert {
	u.SetExcluded(question.FieldVerifiedSource)
	return u
}

// SetTrapExplanation sets the "trap_explanation" field.
func (u *QuestionUpsert) SetTrapExplanation(v string) *QuestionUpsert {
	u.Set(question.FieldTrapExplanation, v)
	return u
}

// UpdateTrapExplanation sets the "trap_explanation" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateTrapExplanation() *QuestionUpsert {
	u.SetExcluded(question.FieldTrapExplanation)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(question.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionUpsertOne) UpdateNewValues() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(question.FieldID)
		}
		if _, exists := u.create.mutation.PaperID(); exists {
			s.SetIgnore(question.FieldPaperID)
		}
		if _, exists := u.create.mutation.Position(); exists {
			s.SetIgnore(question.FieldPosition)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionUpsertOne) Ignore() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertOne) DoNothing() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreate.OnConflict
// documentation for more info.
func (u *QuestionUpsertOne) Update(set func(*QuestionUpsert)) *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetSection sets the "section" field.
func (u *QuestionUpsertOne) SetSection(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateSection() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateSection()
	})
}

// SetText sets the "text" field.
func (u *QuestionUpsertOne) SetText(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateText() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateText()
	})
}

// SetOptions sets the "options" field.
func (u *QuestionUpsertOne) SetOptions(v []string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetOptions(v)
	})
}

// UpdateOptions sets the "options" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateOptions() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateOptions()
	})
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *QuestionUpsertOne) SetCorrectAnswer(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetCorrectAnswer(v)
	})
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateCorrectAnswer() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateCorrectAnswer()
	})
}

// SetVerifiedSource sets the "verified_source" field.
func (u *QuestionUpsertOne) SetVerifiedSource(v bool) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetVerifiedSource(v)
	})
}

// UpdateVerifiedSource sets the "verified_source" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateVerifiedSource() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateVerifiedSource()
	})
}

// SetTrapExplanation sets the "trap_explanation" field.
func (u *QuestionUpsertOne) SetTrapExplanation(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetTrapExplanation(v)
	})
}

// UpdateTrapExplanation sets the "trap_explanation" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateTrapExplanation() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateTrapExplanation()
	})
}

// Exec executes the query.
func (u *QuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QuestionUpsertOne.ID is not supported by MySQL driver. Use QuestionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetPaperID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertBulk {
	_c.conflict = opts
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflictColumns(columns ...string) *QuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// QuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of Question nodes.
type QuestionUpsertBulk struct {
	create *QuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(question.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionUpsertBulk) UpdateNewValues() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(question.FieldID)
			}
			if _, exists := b.mutation.PaperID(); exists {
				s.SetIgnore(question.FieldPaperID)
			}
			if _, exists := b.mutation.Position(); exists {
				s.SetIgnore(question.FieldPosition)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionUpsertBulk) Ignore() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertBulk) DoNothing() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionUpsertBulk) Update(set func(*QuestionUpsert)) *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetSection sets the "section" field.
func (u *QuestionUpsertBulk) SetSection(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateSection() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateSection()
	})
}

// SetText sets the "text" field.
func (u *QuestionUpsertBulk) SetText(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateText() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateText()
	})
}

// SetOptions sets the "options" field.
func (u *QuestionUpsertBulk) SetOptions(v []string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetOptions(v)
	})
}

// UpdateOptions sets the "options" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateOptions() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateOptions()
	})
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *QuestionUpsertBulk) SetCorrectAnswer(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetCorrectAnswer(v)
	})
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateCorrectAnswer() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateCorrectAnswer()
	})
}

// SetVerifiedSource sets the "verified_source" field.
func (u *QuestionUpsertBulk) SetVerifiedSource(v bool) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetVerifiedSource(v)
	})
}

// UpdateVerifiedSource sets the "verified_source" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateVerifiedSource() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateVerifiedSource()
	})
}

// SetTrapExplanation sets the "trap_explanation" field.
func (u *QuestionUpsertBulk) SetTrapExplanation(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetTrapExplanation(v)
	})
}

// UpdateTrapExplanation sets the "trap_explanation" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateTrapExplanation() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateTrapExplanation()
	})
}

// Exec executes the query.
func (u *QuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
