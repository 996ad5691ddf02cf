// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rmagpantay/aral/ent/predicate"
	"github.com/rmagpantay/aral/ent/resultevent"
)

// ResultEventUpdate is the builder for updating ResultEvent entities.
type ResultEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResultEventMutation
}

// Where appends a list predicates to the ResultEventUpdate builder.
func (_u *ResultEventUpdate) Where(ps ...predicate.ResultEvent) *ResultEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResultID sets the "result_id" field.
func (_u *ResultEventUpdate) SetResultID(v string) *ResultEventUpdate {
	_u.mutation.SetResultID(v)
	return _u
}

// SetNillableResultID sets the "result_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableResultID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetResultID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ResultEventUpdate) SetUserID(v string) *ResultEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableUserID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *ResultEventUpdate) SetAssessmentID(v string) *ResultEventUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableAssessmentID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ResultEventUpdate) SetSubject(v string) *ResultEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableSubject(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ResultEventUpdate) SetScore(v int) *ResultEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableScore(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ResultEventUpdate) AddScore(v int) *ResultEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *ResultEventUpdate) SetPercentage(v float64) *ResultEventUpdate {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillablePercentage(v *float64) *ResultEventUpdate {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *ResultEventUpdate) AddPercentage(v float64) *ResultEventUpdate {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetPisaProjection sets the "pisa_projection" field.
func (_u *ResultEventUpdate) SetPisaProjection(v int) *ResultEventUpdate {
	_u.mutation.ResetPisaProjection()
	_u.mutation.SetPisaProjection(v)
	return _u
}

// SetNillablePisaProjection sets the "pisa_projection" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillablePisaProjection(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetPisaProjection(*v)
	}
	return _u
}

// AddPisaProjection adds value to the "pisa_projection" field.
func (_u *ResultEventUpdate) AddPisaProjection(v int) *ResultEventUpdate {
	_u.mutation.AddPisaProjection(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *ResultEventUpdate) SetDurationMinutes(v int) *ResultEventUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableDurationMinutes(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *ResultEventUpdate) AddDurationMinutes(v int) *ResultEventUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// Mutation returns the ResultEventMutation object of the builder.
func (_u *ResultEventUpdate) Mutation() *ResultEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResultEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResultEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultEventUpdate) check() error {
	if v, ok := _u.mutation.ResultID(); ok {
		if err := resultevent.ResultIDValidator(v); err != nil {
			return &ValidationError{Name: "result_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.result_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := resultevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := resultevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := resultevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultevent.Table, resultevent.Columns, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResultID(); ok {
		_spec.SetField(resultevent.FieldResultID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(resultevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(resultevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(resultevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(resultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(resultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(resultevent.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(resultevent.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PisaProjection(); ok {
		_spec.SetField(resultevent.FieldPisaProjection, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPisaProjection(); ok {
		_spec.AddField(resultevent.FieldPisaProjection, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(resultevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(resultevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResultEventUpdateOne is the builder for updating a single ResultEvent entity.
type ResultEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResultEventMutation
}

// SetResultID sets the "result_id" field.
func (_u *ResultEventUpdateOne) SetResultID(v string) *ResultEventUpdateOne {
	_u.mutation.SetResultID(v)
	return _u
}

// SetNillableResultID sets the "result_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableResultID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetResultID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ResultEventUpdateOne) SetUserID(v string) *ResultEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableUserID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *ResultEventUpdateOne) SetAssessmentID(v string) *ResultEventUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableAssessmentID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ResultEventUpdateOne) SetSubject(v string) *ResultEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableSubject(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ResultEventUpdateOne) SetScore(v int) *ResultEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableScore(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ResultEventUpdateOne) AddScore(v int) *ResultEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *ResultEventUpdateOne) SetPercentage(v float64) *ResultEventUpdateOne {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillablePercentage(v *float64) *ResultEventUpdateOne {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *ResultEventUpdateOne) AddPercentage(v float64) *ResultEventUpdateOne {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetPisaProjection sets the "pisa_projection" field.
func (_u *ResultEventUpdateOne) SetPisaProjection(v int) *ResultEventUpdateOne {
	_u.mutation.ResetPisaProjection()
	_u.mutation.SetPisaProjection(v)
	return _u
}

// SetNillablePisaProjection sets the "pisa_projection" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillablePisaProjection(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetPisaProjection(*v)
	}
	return _u
}

// AddPisaProjection adds value to the "pisa_projection" field.
func (_u *ResultEventUpdateOne) AddPisaProjection(v int) *ResultEventUpdateOne {
	_u.mutation.AddPisaProjection(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *ResultEventUpdateOne) SetDurationMinutes(v int) *ResultEventUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableDurationMinutes(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *ResultEventUpdateOne) AddDurationMinutes(v int) *ResultEventUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// Mutation returns the ResultEventMutation object of the builder.
func (_u *ResultEventUpdateOne) Mutation() *ResultEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResultEventUpdate builder.
func (_u *ResultEventUpdateOne) Where(ps ...predicate.ResultEvent) *ResultEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResultEventUpdateOne) Select(field string, fields ...string) *ResultEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResultEvent entity.
func (_u *ResultEventUpdateOne) Save(ctx context.Context) (*ResultEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultEventUpdateOne) SaveX(ctx context.Context) *ResultEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResultEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultEventUpdateOne) check() error {
	if v, ok := _u.mutation.ResultID(); ok {
		if err := resultevent.ResultIDValidator(v); err != nil {
			return &ValidationError{Name: "result_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.result_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := resultevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := resultevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := resultevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultEventUpdateOne) sqlSave(ctx context.Context) (_node *ResultEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultevent.Table, resultevent.Columns, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResultEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resultevent.FieldID)
		for _, f := range fields {
			if !resultevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resultevent.FieldID {
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
	if value, ok := _u.mutation.ResultID(); ok {
		_spec.SetField(resultevent.FieldResultID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(resultevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(resultevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(resultevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(resultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(resultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(resultevent.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(resultevent.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PisaProjection(); ok {
		_spec.SetField(resultevent.FieldPisaProjection, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPisaProjection(); ok {
		_spec.AddField(resultevent.FieldPisaProjection, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(resultevent.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(resultevent.FieldDurationMinutes, field.TypeInt, value)
	}
	_node = &ResultEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
