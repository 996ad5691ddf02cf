// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rmagpantay/aral/ent/analyticsevent"
)

// AnalyticsEventCreate is the builder for creating a AnalyticsEvent entity.
type AnalyticsEventCreate struct {
	config
	mutation *AnalyticsEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnalyticsEventCreate) SetSequence(v int64) *AnalyticsEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnalyticsEventCreate) SetTimestamp(v time.Time) *AnalyticsEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnalyticsEventCreate) SetNillableTimestamp(v *time.Time) *AnalyticsEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *AnalyticsEventCreate) SetName(v string) *AnalyticsEventCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AnalyticsEventCreate) SetUserID(v string) *AnalyticsEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *AnalyticsEventCreate) SetNillableUserID(v *string) *AnalyticsEventCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *AnalyticsEventCreate) SetAssessmentID(v string) *AnalyticsEventCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_c *AnalyticsEventCreate) SetNillableAssessmentID(v *string) *AnalyticsEventCreate {
	if v != nil {
		_c.SetAssessmentID(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *AnalyticsEventCreate) SetSubject(v string) *AnalyticsEventCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *AnalyticsEventCreate) SetNillableSubject(v *string) *AnalyticsEventCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetPercentage sets the "percentage" field.
func (_c *AnalyticsEventCreate) SetPercentage(v float64) *AnalyticsEventCreate {
	_c.mutation.SetPercentage(v)
	return _c
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_c *AnalyticsEventCreate) SetNillablePercentage(v *float64) *AnalyticsEventCreate {
	if v != nil {
		_c.SetPercentage(*v)
	}
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *AnalyticsEventCreate) SetDurationMinutes(v int) *AnalyticsEventCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_c *AnalyticsEventCreate) SetNillableDurationMinutes(v *int) *AnalyticsEventCreate {
	if v != nil {
		_c.SetDurationMinutes(*v)
	}
	return _c
}

// SetMethod sets the "method" field.
func (_c *AnalyticsEventCreate) SetMethod(v string) *AnalyticsEventCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_c *AnalyticsEventCreate) SetNillableMethod(v *string) *AnalyticsEventCreate {
	if v != nil {
		_c.SetMethod(*v)
	}
	return _c
}

// Mutation returns the AnalyticsEventMutation object of the builder.
func (_c *AnalyticsEventCreate) Mutation() *AnalyticsEventMutation {
	return _c.mutation
}

// Save creates the AnalyticsEvent in the database.
func (_c *AnalyticsEventCreate) Save(ctx context.Context) (*AnalyticsEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalyticsEventCreate) SaveX(ctx context.Context) *AnalyticsEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalyticsEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalyticsEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalyticsEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := analyticsevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		v := analyticsevent.DefaultPercentage
		_c.mutation.SetPercentage(v)
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		v := analyticsevent.DefaultDurationMinutes
		_c.mutation.SetDurationMinutes(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalyticsEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnalyticsEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnalyticsEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AnalyticsEvent.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := analyticsevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AnalyticsEvent.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		return &ValidationError{Name: "percentage", err: errors.New(`ent: missing required field "AnalyticsEvent.percentage"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "AnalyticsEvent.duration_minutes"`)}
	}
	return nil
}

func (_c *AnalyticsEventCreate) sqlSave(ctx context.Context) (*AnalyticsEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalyticsEventCreate) createSpec() (*AnalyticsEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalyticsEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analyticsevent.Table, sqlgraph.NewFieldSpec(analyticsevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(analyticsevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(analyticsevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(analyticsevent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(analyticsevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(analyticsevent.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(analyticsevent.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Percentage(); ok {
		_spec.SetField(analyticsevent.FieldPercentage, field.TypeFloat64, value)
		_node.Percentage = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(analyticsevent.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(analyticsevent.FieldMethod, field.TypeString, value)
		_node.Method = value
	}
	return _node, _spec
}

// AnalyticsEventCreateBulk is the builder for creating many AnalyticsEvent entities in bulk.
type AnalyticsEventCreateBulk struct {
	config
	err      error
	builders []*AnalyticsEventCreate
}

// Save creates the AnalyticsEvent entities in the database.
func (_c *AnalyticsEventCreateBulk) Save(ctx context.Context) ([]*AnalyticsEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalyticsEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalyticsEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *AnalyticsEventCreateBulk) SaveX(ctx context.Context) []*AnalyticsEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalyticsEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalyticsEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
