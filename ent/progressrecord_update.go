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
	"github.com/deebya/codetutor/ent/progressrecord"
)

// ProgressRecordUpdate is the builder for updating ProgressRecord entities.
type ProgressRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdate) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressRecordUpdate) SetUpdatedAt(v time.Time) *ProgressRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProgressRecordUpdate) SetUserID(v string) *ProgressRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableUserID(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ProgressRecordUpdate) SetLanguage(v string) *ProgressRecordUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableLanguage(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ProgressRecordUpdate) SetTopicID(v string) *ProgressRecordUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableTopicID(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProgressRecordUpdate) SetStatus(v string) *ProgressRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableStatus(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletion sets the "completion" field.
func (_u *ProgressRecordUpdate) SetCompletion(v float64) *ProgressRecordUpdate {
	_u.mutation.ResetCompletion()
	_u.mutation.SetCompletion(v)
	return _u
}

// SetNillableCompletion sets the "completion" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableCompletion(v *float64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetCompletion(*v)
	}
	return _u
}

// AddCompletion adds value to the "completion" field.
func (_u *ProgressRecordUpdate) AddCompletion(v float64) *ProgressRecordUpdate {
	_u.mutation.AddCompletion(v)
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *ProgressRecordUpdate) SetBestScore(v float64) *ProgressRecordUpdate {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableBestScore(v *float64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *ProgressRecordUpdate) AddBestScore(v float64) *ProgressRecordUpdate {
	_u.mutation.AddBestScore(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *ProgressRecordUpdate) SetTimeSpentSecs(v int) *ProgressRecordUpdate {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableTimeSpentSecs(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *ProgressRecordUpdate) AddTimeSpentSecs(v int) *ProgressRecordUpdate {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ProgressRecordUpdate) SetAttempts(v int) *ProgressRecordUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableAttempts(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ProgressRecordUpdate) AddAttempts(v int) *ProgressRecordUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ProgressRecordUpdate) SetCompleted(v bool) *ProgressRecordUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableCompleted(v *bool) *ProgressRecordUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetLastAccessed sets the "last_accessed" field.
func (_u *ProgressRecordUpdate) SetLastAccessed(v time.Time) *ProgressRecordUpdate {
	_u.mutation.SetLastAccessed(v)
	return _u
}

// SetNillableLastAccessed sets the "last_accessed" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableLastAccessed(v *time.Time) *ProgressRecordUpdate {
	if v != nil {
		_u.SetLastAccessed(*v)
	}
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdate) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progressrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := progressrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := progressrecord.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := progressrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progressrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(progressrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(progressrecord.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(progressrecord.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(progressrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completion(); ok {
		_spec.SetField(progressrecord.FieldCompletion, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletion(); ok {
		_spec.AddField(progressrecord.FieldCompletion, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(progressrecord.FieldBestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(progressrecord.FieldBestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(progressrecord.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(progressrecord.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(progressrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(progressrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(progressrecord.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastAccessed(); ok {
		_spec.SetField(progressrecord.FieldLastAccessed, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressRecordUpdateOne is the builder for updating a single ProgressRecord entity.
type ProgressRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressRecordUpdateOne) SetUpdatedAt(v time.Time) *ProgressRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProgressRecordUpdateOne) SetUserID(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableUserID(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ProgressRecordUpdateOne) SetLanguage(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableLanguage(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ProgressRecordUpdateOne) SetTopicID(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableTopicID(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProgressRecordUpdateOne) SetStatus(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableStatus(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletion sets the "completion" field.
func (_u *ProgressRecordUpdateOne) SetCompletion(v float64) *ProgressRecordUpdateOne {
	_u.mutation.ResetCompletion()
	_u.mutation.SetCompletion(v)
	return _u
}

// SetNillableCompletion sets the "completion" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableCompletion(v *float64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetCompletion(*v)
	}
	return _u
}

// AddCompletion adds value to the "completion" field.
func (_u *ProgressRecordUpdateOne) AddCompletion(v float64) *ProgressRecordUpdateOne {
	_u.mutation.AddCompletion(v)
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *ProgressRecordUpdateOne) SetBestScore(v float64) *ProgressRecordUpdateOne {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableBestScore(v *float64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *ProgressRecordUpdateOne) AddBestScore(v float64) *ProgressRecordUpdateOne {
	_u.mutation.AddBestScore(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *ProgressRecordUpdateOne) SetTimeSpentSecs(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableTimeSpentSecs(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *ProgressRecordUpdateOne) AddTimeSpentSecs(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ProgressRecordUpdateOne) SetAttempts(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableAttempts(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ProgressRecordUpdateOne) AddAttempts(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ProgressRecordUpdateOne) SetCompleted(v bool) *ProgressRecordUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableCompleted(v *bool) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetLastAccessed sets the "last_accessed" field.
func (_u *ProgressRecordUpdateOne) SetLastAccessed(v time.Time) *ProgressRecordUpdateOne {
	_u.mutation.SetLastAccessed(v)
	return _u
}

// SetNillableLastAccessed sets the "last_accessed" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableLastAccessed(v *time.Time) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetLastAccessed(*v)
	}
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdateOne) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdateOne) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressRecordUpdateOne) Select(field string, fields ...string) *ProgressRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressRecord entity.
func (_u *ProgressRecordUpdateOne) Save(ctx context.Context) (*ProgressRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) SaveX(ctx context.Context) *ProgressRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progressrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := progressrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := progressrecord.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := progressrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdateOne) sqlSave(ctx context.Context) (_node *ProgressRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressrecord.FieldID)
		for _, f := range fields {
			if !progressrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressrecord.FieldID {
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
		_spec.SetField(progressrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(progressrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(progressrecord.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(progressrecord.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(progressrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completion(); ok {
		_spec.SetField(progressrecord.FieldCompletion, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletion(); ok {
		_spec.AddField(progressrecord.FieldCompletion, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(progressrecord.FieldBestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(progressrecord.FieldBestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(progressrecord.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(progressrecord.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(progressrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(progressrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(progressrecord.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastAccessed(); ok {
		_spec.SetField(progressrecord.FieldLastAccessed, field.TypeTime, value)
	}
	_node = &ProgressRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
