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
	"github.com/deebya/codetutor/ent/predicate"
	"github.com/deebya/codetutor/ent/quizresult"
)

// QuizResultUpdate is the builder for updating QuizResult entities.
type QuizResultUpdate struct {
	config
	hooks    []Hook
	mutation *QuizResultMutation
}

// Where appends a list predicates to the QuizResultUpdate builder.
func (_u *QuizResultUpdate) Where(ps ...predicate.QuizResult) *QuizResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuizResultUpdate) SetUpdatedAt(v time.Time) *QuizResultUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuizResultUpdate) SetUserID(v string) *QuizResultUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableUserID(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *QuizResultUpdate) SetLanguage(v string) *QuizResultUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableLanguage(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *QuizResultUpdate) SetTopicID(v string) *QuizResultUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableTopicID(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizResultUpdate) SetScore(v float64) *QuizResultUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableScore(v *float64) *QuizResultUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizResultUpdate) AddScore(v float64) *QuizResultUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *QuizResultUpdate) SetMaxScore(v float64) *QuizResultUpdate {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableMaxScore(v *float64) *QuizResultUpdate {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *QuizResultUpdate) AddMaxScore(v float64) *QuizResultUpdate {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *QuizResultUpdate) SetPercentage(v float64) *QuizResultUpdate {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillablePercentage(v *float64) *QuizResultUpdate {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *QuizResultUpdate) AddPercentage(v float64) *QuizResultUpdate {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *QuizResultUpdate) SetPassed(v bool) *QuizResultUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillablePassed(v *bool) *QuizResultUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *QuizResultUpdate) SetAttempt(v int) *QuizResultUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableAttempt(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *QuizResultUpdate) AddAttempt(v int) *QuizResultUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *QuizResultUpdate) SetDurationSecs(v int) *QuizResultUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableDurationSecs(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *QuizResultUpdate) AddDurationSecs(v int) *QuizResultUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *QuizResultUpdate) SetAnswers(v map[string]string) *QuizResultUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *QuizResultUpdate) ClearAnswers() *QuizResultUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// Mutation returns the QuizResultMutation object of the builder.
func (_u *QuizResultUpdate) Mutation() *QuizResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizResultUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuizResultUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quizresult.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResultUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := quizresult.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizResult.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := quizresult.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "QuizResult.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := quizresult.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "QuizResult.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresult.Table, quizresult.Columns, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quizresult.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizresult.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(quizresult.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(quizresult.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(quizresult.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(quizresult.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(quizresult.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(quizresult.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(quizresult.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(quizresult.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(quizresult.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(quizresult.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(quizresult.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(quizresult.FieldAnswers, field.TypeJSON, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(quizresult.FieldAnswers, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizResultUpdateOne is the builder for updating a single QuizResult entity.
type QuizResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizResultMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuizResultUpdateOne) SetUpdatedAt(v time.Time) *QuizResultUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuizResultUpdateOne) SetUserID(v string) *QuizResultUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableUserID(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *QuizResultUpdateOne) SetLanguage(v string) *QuizResultUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableLanguage(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *QuizResultUpdateOne) SetTopicID(v string) *QuizResultUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableTopicID(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizResultUpdateOne) SetScore(v float64) *QuizResultUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableScore(v *float64) *QuizResultUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizResultUpdateOne) AddScore(v float64) *QuizResultUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *QuizResultUpdateOne) SetMaxScore(v float64) *QuizResultUpdateOne {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableMaxScore(v *float64) *QuizResultUpdateOne {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *QuizResultUpdateOne) AddMaxScore(v float64) *QuizResultUpdateOne {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *QuizResultUpdateOne) SetPercentage(v float64) *QuizResultUpdateOne {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillablePercentage(v *float64) *QuizResultUpdateOne {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *QuizResultUpdateOne) AddPercentage(v float64) *QuizResultUpdateOne {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *QuizResultUpdateOne) SetPassed(v bool) *QuizResultUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillablePassed(v *bool) *QuizResultUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *QuizResultUpdateOne) SetAttempt(v int) *QuizResultUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableAttempt(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *QuizResultUpdateOne) AddAttempt(v int) *QuizResultUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *QuizResultUpdateOne) SetDurationSecs(v int) *QuizResultUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableDurationSecs(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *QuizResultUpdateOne) AddDurationSecs(v int) *QuizResultUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *QuizResultUpdateOne) SetAnswers(v map[string]string) *QuizResultUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *QuizResultUpdateOne) ClearAnswers() *QuizResultUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// Mutation returns the QuizResultMutation object of the builder.
func (_u *QuizResultUpdateOne) Mutation() *QuizResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizResultUpdate builder.
func (_u *QuizResultUpdateOne) Where(ps ...predicate.QuizResult) *QuizResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizResultUpdateOne) Select(field string, fields ...string) *QuizResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizResult entity.
func (_u *QuizResultUpdateOne) Save(ctx context.Context) (*QuizResult, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultUpdateOne) SaveX(ctx context.Context) *QuizResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuizResultUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quizresult.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResultUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := quizresult.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizResult.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := quizresult.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "QuizResult.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := quizresult.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "QuizResult.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizResultUpdateOne) sqlSave(ctx context.Context) (_node *QuizResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresult.Table, quizresult.Columns, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizresult.FieldID)
		for _, f := range fields {
			if !quizresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizresult.FieldID {
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
		_spec.SetField(quizresult.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizresult.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(quizresult.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(quizresult.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(quizresult.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(quizresult.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(quizresult.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(quizresult.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(quizresult.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(quizresult.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(quizresult.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(quizresult.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(quizresult.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(quizresult.FieldAnswers, field.TypeJSON, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(quizresult.FieldAnswers, field.TypeJSON)
	}
	_node = &QuizResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
