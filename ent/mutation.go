// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adaptivecat/planner/ent/attempt"
	"github.com/adaptivecat/planner/ent/mastery"
	"github.com/adaptivecat/planner/ent/predicate"
	"github.com/adaptivecat/planner/ent/pyqquestion"
	"github.com/adaptivecat/planner/ent/question"
	"github.com/adaptivecat/planner/ent/session"
	"github.com/adaptivecat/planner/ent/sessionpack"
	"github.com/adaptivecat/planner/ent/studentcoverage"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttempt         = "Attempt"
	TypeMastery         = "Mastery"
	TypePYQQuestion     = "PYQQuestion"
	TypeQuestion        = "Question"
	TypeSession         = "Session"
	TypeSessionPack     = "SessionPack"
	TypeStudentCoverage = "StudentCoverage"
)

// AttemptMutation represents an operation that mutates the Attempt nodes in the graph.
type AttemptMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	student_id            *string
	question_id           *string
	correct               *bool
	time_taken_seconds    *int
	addtime_taken_seconds *int
	created_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Attempt, error)
	predicates            []predicate.Attempt
}

var _ ent.Mutation = (*AttemptMutation)(nil)

// attemptOption allows management of the mutation configuration using functional options.
type attemptOption func(*AttemptMutation)

// newAttemptMutation creates new mutation for the Attempt entity.
func newAttemptMutation(c config, op Op, opts ...attemptOption) *AttemptMutation {
	m := &AttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptID sets the ID field of the mutation.
func withAttemptID(id string) attemptOption {
	return func(m *AttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *Attempt
		)
		m.oldValue = func(ctx context.Context) (*Attempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttempt sets the old Attempt of the mutation.
func withAttempt(node *Attempt) attemptOption {
	return func(m *AttemptMutation) {
		m.oldValue = func(context.Context) (*Attempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Attempt entities.
func (m *AttemptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *AttemptMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *AttemptMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *AttemptMutation) ResetStudentID() {
	m.student_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AttemptMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AttemptMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AttemptMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetCorrect sets the "correct" field.
func (m *AttemptMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AttemptMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AttemptMutation) ResetCorrect() {
	m.correct = nil
}

// SetTimeTakenSeconds sets the "time_taken_seconds" field.
func (m *AttemptMutation) SetTimeTakenSeconds(i int) {
	m.time_taken_seconds = &i
	m.addtime_taken_seconds = nil
}

// TimeTakenSeconds returns the value of the "time_taken_seconds" field in the mutation.
func (m *AttemptMutation) TimeTakenSeconds() (r int, exists bool) {
	v := m.time_taken_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeTakenSeconds returns the old "time_taken_seconds" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldTimeTakenSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeTakenSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeTakenSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeTakenSeconds: %w", err)
	}
	return oldValue.TimeTakenSeconds, nil
}

// AddTimeTakenSeconds adds i to the "time_taken_seconds" field.
func (m *AttemptMutation) AddTimeTakenSeconds(i int) {
	if m.addtime_taken_seconds != nil {
		*m.addtime_taken_seconds += i
	} else {
		m.addtime_taken_seconds = &i
	}
}

// AddedTimeTakenSeconds returns the value that was added to the "time_taken_seconds" field in this mutation.
func (m *AttemptMutation) AddedTimeTakenSeconds() (r int, exists bool) {
	v := m.addtime_taken_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeTakenSeconds resets all changes to the "time_taken_seconds" field.
func (m *AttemptMutation) ResetTimeTakenSeconds() {
	m.time_taken_seconds = nil
	m.addtime_taken_seconds = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AttemptMutation builder.
func (m *AttemptMutation) Where(ps ...predicate.Attempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attempt).
func (m *AttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.student_id != nil {
		fields = append(fields, attempt.FieldStudentID)
	}
	if m.question_id != nil {
		fields = append(fields, attempt.FieldQuestionID)
	}
	if m.correct != nil {
		fields = append(fields, attempt.FieldCorrect)
	}
	if m.time_taken_seconds != nil {
		fields = append(fields, attempt.FieldTimeTakenSeconds)
	}
	if m.created_at != nil {
		fields = append(fields, attempt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldStudentID:
		return m.StudentID()
	case attempt.FieldQuestionID:
		return m.QuestionID()
	case attempt.FieldCorrect:
		return m.Correct()
	case attempt.FieldTimeTakenSeconds:
		return m.TimeTakenSeconds()
	case attempt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attempt.FieldStudentID:
		return m.OldStudentID(ctx)
	case attempt.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case attempt.FieldCorrect:
		return m.OldCorrect(ctx)
	case attempt.FieldTimeTakenSeconds:
		return m.OldTimeTakenSeconds(ctx)
	case attempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Attempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case attempt.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case attempt.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case attempt.FieldTimeTakenSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeTakenSeconds(v)
		return nil
	case attempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptMutation) AddedFields() []string {
	var fields []string
	if m.addtime_taken_seconds != nil {
		fields = append(fields, attempt.FieldTimeTakenSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldTimeTakenSeconds:
		return m.AddedTimeTakenSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldTimeTakenSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeTakenSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Attempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptMutation) ResetField(name string) error {
	switch name {
	case attempt.FieldStudentID:
		m.ResetStudentID()
		return nil
	case attempt.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case attempt.FieldCorrect:
		m.ResetCorrect()
		return nil
	case attempt.FieldTimeTakenSeconds:
		m.ResetTimeTakenSeconds()
		return nil
	case attempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Attempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Attempt edge %s", name)
}

// MasteryMutation represents an operation that mutates the Mastery nodes in the graph.
type MasteryMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	student_id          *string
	subcategory         *string
	type_of_question    *string
	accuracy_easy       *float64
	addaccuracy_easy    *float64
	accuracy_medium     *float64
	addaccuracy_medium  *float64
	accuracy_hard       *float64
	addaccuracy_hard    *float64
	efficiency_score    *float64
	addefficiency_score *float64
	exposure_count      *int
	addexposure_count   *int
	mastery_pct         *float64
	addmastery_pct      *float64
	last_activity_at    *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Mastery, error)
	predicates          []predicate.Mastery
}

var _ ent.Mutation = (*MasteryMutation)(nil)

// masteryOption allows management of the mutation configuration using functional options.
type masteryOption func(*MasteryMutation)

// newMasteryMutation creates new mutation for the Mastery entity.
func newMasteryMutation(c config, op Op, opts ...masteryOption) *MasteryMutation {
	m := &MasteryMutation{
		config:        c,
		op:            op,
		typ:           TypeMastery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMasteryID sets the ID field of the mutation.
func withMasteryID(id string) masteryOption {
	return func(m *MasteryMutation) {
		var (
			err   error
			once  sync.Once
			value *Mastery
		)
		m.oldValue = func(ctx context.Context) (*Mastery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Mastery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMastery sets the old Mastery of the mutation.
func withMastery(node *Mastery) masteryOption {
	return func(m *MasteryMutation) {
		m.oldValue = func(context.Context) (*Mastery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MasteryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MasteryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Mastery entities.
func (m *MasteryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MasteryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MasteryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Mastery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *MasteryMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *MasteryMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *MasteryMutation) ResetStudentID() {
	m.student_id = nil
}

// SetSubcategory sets the "subcategory" field.
func (m *MasteryMutation) SetSubcategory(s string) {
	m.subcategory = &s
}

// Subcategory returns the value of the "subcategory" field in the mutation.
func (m *MasteryMutation) Subcategory() (r string, exists bool) {
	v := m.subcategory
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcategory returns the old "subcategory" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldSubcategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcategory: %w", err)
	}
	return oldValue.Subcategory, nil
}

// ResetSubcategory resets all changes to the "subcategory" field.
func (m *MasteryMutation) ResetSubcategory() {
	m.subcategory = nil
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (m *MasteryMutation) SetTypeOfQuestion(s string) {
	m.type_of_question = &s
}

// TypeOfQuestion returns the value of the "type_of_question" field in the mutation.
func (m *MasteryMutation) TypeOfQuestion() (r string, exists bool) {
	v := m.type_of_question
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeOfQuestion returns the old "type_of_question" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldTypeOfQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeOfQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeOfQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeOfQuestion: %w", err)
	}
	return oldValue.TypeOfQuestion, nil
}

// ClearTypeOfQuestion clears the value of the "type_of_question" field.
func (m *MasteryMutation) ClearTypeOfQuestion() {
	m.type_of_question = nil
	m.clearedFields[mastery.FieldTypeOfQuestion] = struct{}{}
}

// TypeOfQuestionCleared returns if the "type_of_question" field was cleared in this mutation.
func (m *MasteryMutation) TypeOfQuestionCleared() bool {
	_, ok := m.clearedFields[mastery.FieldTypeOfQuestion]
	return ok
}

// ResetTypeOfQuestion resets all changes to the "type_of_question" field.
func (m *MasteryMutation) ResetTypeOfQuestion() {
	m.type_of_question = nil
	delete(m.clearedFields, mastery.FieldTypeOfQuestion)
}

// SetAccuracyEasy sets the "accuracy_easy" field.
func (m *MasteryMutation) SetAccuracyEasy(f float64) {
	m.accuracy_easy = &f
	m.addaccuracy_easy = nil
}

// AccuracyEasy returns the value of the "accuracy_easy" field in the mutation.
func (m *MasteryMutation) AccuracyEasy() (r float64, exists bool) {
	v := m.accuracy_easy
	if v == nil {
		return
	}
	return *v, true
}

// OldAccuracyEasy returns the old "accuracy_easy" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldAccuracyEasy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccuracyEasy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccuracyEasy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccuracyEasy: %w", err)
	}
	return oldValue.AccuracyEasy, nil
}

// AddAccuracyEasy adds f to the "accuracy_easy" field.
func (m *MasteryMutation) AddAccuracyEasy(f float64) {
	if m.addaccuracy_easy != nil {
		*m.addaccuracy_easy += f
	} else {
		m.addaccuracy_easy = &f
	}
}

// AddedAccuracyEasy returns the value that was added to the "accuracy_easy" field in this mutation.
func (m *MasteryMutation) AddedAccuracyEasy() (r float64, exists bool) {
	v := m.addaccuracy_easy
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccuracyEasy resets all changes to the "accuracy_easy" field.
func (m *MasteryMutation) ResetAccuracyEasy() {
	m.accuracy_easy = nil
	m.addaccuracy_easy = nil
}

// SetAccuracyMedium sets the "accuracy_medium" field.
func (m *MasteryMutation) SetAccuracyMedium(f float64) {
	m.accuracy_medium = &f
	m.addaccuracy_medium = nil
}

// AccuracyMedium returns the value of the "accuracy_medium" field in the mutation.
func (m *MasteryMutation) AccuracyMedium() (r float64, exists bool) {
	v := m.accuracy_medium
	if v == nil {
		return
	}
	return *v, true
}

// OldAccuracyMedium returns the old "accuracy_medium" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldAccuracyMedium(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccuracyMedium is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccuracyMedium requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccuracyMedium: %w", err)
	}
	return oldValue.AccuracyMedium, nil
}

// AddAccuracyMedium adds f to the "accuracy_medium" field.
func (m *MasteryMutation) AddAccuracyMedium(f float64) {
	if m.addaccuracy_medium != nil {
		*m.addaccuracy_medium += f
	} else {
		m.addaccuracy_medium = &f
	}
}

// AddedAccuracyMedium returns the value that was added to the "accuracy_medium" field in this mutation.
func (m *MasteryMutation) AddedAccuracyMedium() (r float64, exists bool) {
	v := m.addaccuracy_medium
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccuracyMedium resets all changes to the "accuracy_medium" field.
func (m *MasteryMutation) ResetAccuracyMedium() {
	m.accuracy_medium = nil
	m.addaccuracy_medium = nil
}

// SetAccuracyHard sets the "accuracy_hard" field.
func (m *MasteryMutation) SetAccuracyHard(f float64) {
	m.accuracy_hard = &f
	m.addaccuracy_hard = nil
}

// AccuracyHard returns the value of the "accuracy_hard" field in the mutation.
func (m *MasteryMutation) AccuracyHard() (r float64, exists bool) {
	v := m.accuracy_hard
	if v == nil {
		return
	}
	return *v, true
}

// OldAccuracyHard returns the old "accuracy_hard" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldAccuracyHard(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccuracyHard is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccuracyHard requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccuracyHard: %w", err)
	}
	return oldValue.AccuracyHard, nil
}

// AddAccuracyHard adds f to the "accuracy_hard" field.
func (m *MasteryMutation) AddAccuracyHard(f float64) {
	if m.addaccuracy_hard != nil {
		*m.addaccuracy_hard += f
	} else {
		m.addaccuracy_hard = &f
	}
}

// AddedAccuracyHard returns the value that was added to the "accuracy_hard" field in this mutation.
func (m *MasteryMutation) AddedAccuracyHard() (r float64, exists bool) {
	v := m.addaccuracy_hard
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccuracyHard resets all changes to the "accuracy_hard" field.
func (m *MasteryMutation) ResetAccuracyHard() {
	m.accuracy_hard = nil
	m.addaccuracy_hard = nil
}

// SetEfficiencyScore sets the "efficiency_score" field.
func (m *MasteryMutation) SetEfficiencyScore(f float64) {
	m.efficiency_score = &f
	m.addefficiency_score = nil
}

// EfficiencyScore returns the value of the "efficiency_score" field in the mutation.
func (m *MasteryMutation) EfficiencyScore() (r float64, exists bool) {
	v := m.efficiency_score
	if v == nil {
		return
	}
	return *v, true
}

// OldEfficiencyScore returns the old "efficiency_score" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldEfficiencyScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEfficiencyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEfficiencyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEfficiencyScore: %w", err)
	}
	return oldValue.EfficiencyScore, nil
}

// AddEfficiencyScore adds f to the "efficiency_score" field.
func (m *MasteryMutation) AddEfficiencyScore(f float64) {
	if m.addefficiency_score != nil {
		*m.addefficiency_score += f
	} else {
		m.addefficiency_score = &f
	}
}

// AddedEfficiencyScore returns the value that was added to the "efficiency_score" field in this mutation.
func (m *MasteryMutation) AddedEfficiencyScore() (r float64, exists bool) {
	v := m.addefficiency_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetEfficiencyScore resets all changes to the "efficiency_score" field.
func (m *MasteryMutation) ResetEfficiencyScore() {
	m.efficiency_score = nil
	m.addefficiency_score = nil
}

// SetExposureCount sets the "exposure_count" field.
func (m *MasteryMutation) SetExposureCount(i int) {
	m.exposure_count = &i
	m.addexposure_count = nil
}

// ExposureCount returns the value of the "exposure_count" field in the mutation.
func (m *MasteryMutation) ExposureCount() (r int, exists bool) {
	v := m.exposure_count
	if v == nil {
		return
	}
	return *v, true
}

// OldExposureCount returns the old "exposure_count" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldExposureCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExposureCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExposureCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExposureCount: %w", err)
	}
	return oldValue.ExposureCount, nil
}

// AddExposureCount adds i to the "exposure_count" field.
func (m *MasteryMutation) AddExposureCount(i int) {
	if m.addexposure_count != nil {
		*m.addexposure_count += i
	} else {
		m.addexposure_count = &i
	}
}

// AddedExposureCount returns the value that was added to the "exposure_count" field in this mutation.
func (m *MasteryMutation) AddedExposureCount() (r int, exists bool) {
	v := m.addexposure_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetExposureCount resets all changes to the "exposure_count" field.
func (m *MasteryMutation) ResetExposureCount() {
	m.exposure_count = nil
	m.addexposure_count = nil
}

// SetMasteryPct sets the "mastery_pct" field.
func (m *MasteryMutation) SetMasteryPct(f float64) {
	m.mastery_pct = &f
	m.addmastery_pct = nil
}

// MasteryPct returns the value of the "mastery_pct" field in the mutation.
func (m *MasteryMutation) MasteryPct() (r float64, exists bool) {
	v := m.mastery_pct
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryPct returns the old "mastery_pct" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldMasteryPct(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryPct: %w", err)
	}
	return oldValue.MasteryPct, nil
}

// AddMasteryPct adds f to the "mastery_pct" field.
func (m *MasteryMutation) AddMasteryPct(f float64) {
	if m.addmastery_pct != nil {
		*m.addmastery_pct += f
	} else {
		m.addmastery_pct = &f
	}
}

// AddedMasteryPct returns the value that was added to the "mastery_pct" field in this mutation.
func (m *MasteryMutation) AddedMasteryPct() (r float64, exists bool) {
	v := m.addmastery_pct
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryPct resets all changes to the "mastery_pct" field.
func (m *MasteryMutation) ResetMasteryPct() {
	m.mastery_pct = nil
	m.addmastery_pct = nil
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *MasteryMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *MasteryMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldLastActivityAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *MasteryMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MasteryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MasteryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MasteryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the MasteryMutation builder.
func (m *MasteryMutation) Where(ps ...predicate.Mastery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MasteryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MasteryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Mastery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MasteryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MasteryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Mastery).
func (m *MasteryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MasteryMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.student_id != nil {
		fields = append(fields, mastery.FieldStudentID)
	}
	if m.subcategory != nil {
		fields = append(fields, mastery.FieldSubcategory)
	}
	if m.type_of_question != nil {
		fields = append(fields, mastery.FieldTypeOfQuestion)
	}
	if m.accuracy_easy != nil {
		fields = append(fields, mastery.FieldAccuracyEasy)
	}
	if m.accuracy_medium != nil {
		fields = append(fields, mastery.FieldAccuracyMedium)
	}
	if m.accuracy_hard != nil {
		fields = append(fields, mastery.FieldAccuracyHard)
	}
	if m.efficiency_score != nil {
		fields = append(fields, mastery.FieldEfficiencyScore)
	}
	if m.exposure_count != nil {
		fields = append(fields, mastery.FieldExposureCount)
	}
	if m.mastery_pct != nil {
		fields = append(fields, mastery.FieldMasteryPct)
	}
	if m.last_activity_at != nil {
		fields = append(fields, mastery.FieldLastActivityAt)
	}
	if m.updated_at != nil {
		fields = append(fields, mastery.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MasteryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mastery.FieldStudentID:
		return m.StudentID()
	case mastery.FieldSubcategory:
		return m.Subcategory()
	case mastery.FieldTypeOfQuestion:
		return m.TypeOfQuestion()
	case mastery.FieldAccuracyEasy:
		return m.AccuracyEasy()
	case mastery.FieldAccuracyMedium:
		return m.AccuracyMedium()
	case mastery.FieldAccuracyHard:
		return m.AccuracyHard()
	case mastery.FieldEfficiencyScore:
		return m.EfficiencyScore()
	case mastery.FieldExposureCount:
		return m.ExposureCount()
	case mastery.FieldMasteryPct:
		return m.MasteryPct()
	case mastery.FieldLastActivityAt:
		return m.LastActivityAt()
	case mastery.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MasteryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mastery.FieldStudentID:
		return m.OldStudentID(ctx)
	case mastery.FieldSubcategory:
		return m.OldSubcategory(ctx)
	case mastery.FieldTypeOfQuestion:
		return m.OldTypeOfQuestion(ctx)
	case mastery.FieldAccuracyEasy:
		return m.OldAccuracyEasy(ctx)
	case mastery.FieldAccuracyMedium:
		return m.OldAccuracyMedium(ctx)
	case mastery.FieldAccuracyHard:
		return m.OldAccuracyHard(ctx)
	case mastery.FieldEfficiencyScore:
		return m.OldEfficiencyScore(ctx)
	case mastery.FieldExposureCount:
		return m.OldExposureCount(ctx)
	case mastery.FieldMasteryPct:
		return m.OldMasteryPct(ctx)
	case mastery.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	case mastery.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Mastery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mastery.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case mastery.FieldSubcategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcategory(v)
		return nil
	case mastery.FieldTypeOfQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeOfQuestion(v)
		return nil
	case mastery.FieldAccuracyEasy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccuracyEasy(v)
		return nil
	case mastery.FieldAccuracyMedium:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccuracyMedium(v)
		return nil
	case mastery.FieldAccuracyHard:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccuracyHard(v)
		return nil
	case mastery.FieldEfficiencyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEfficiencyScore(v)
		return nil
	case mastery.FieldExposureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExposureCount(v)
		return nil
	case mastery.FieldMasteryPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryPct(v)
		return nil
	case mastery.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	case mastery.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Mastery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MasteryMutation) AddedFields() []string {
	var fields []string
	if m.addaccuracy_easy != nil {
		fields = append(fields, mastery.FieldAccuracyEasy)
	}
	if m.addaccuracy_medium != nil {
		fields = append(fields, mastery.FieldAccuracyMedium)
	}
	if m.addaccuracy_hard != nil {
		fields = append(fields, mastery.FieldAccuracyHard)
	}
	if m.addefficiency_score != nil {
		fields = append(fields, mastery.FieldEfficiencyScore)
	}
	if m.addexposure_count != nil {
		fields = append(fields, mastery.FieldExposureCount)
	}
	if m.addmastery_pct != nil {
		fields = append(fields, mastery.FieldMasteryPct)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MasteryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mastery.FieldAccuracyEasy:
		return m.AddedAccuracyEasy()
	case mastery.FieldAccuracyMedium:
		return m.AddedAccuracyMedium()
	case mastery.FieldAccuracyHard:
		return m.AddedAccuracyHard()
	case mastery.FieldEfficiencyScore:
		return m.AddedEfficiencyScore()
	case mastery.FieldExposureCount:
		return m.AddedExposureCount()
	case mastery.FieldMasteryPct:
		return m.AddedMasteryPct()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mastery.FieldAccuracyEasy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccuracyEasy(v)
		return nil
	case mastery.FieldAccuracyMedium:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccuracyMedium(v)
		return nil
	case mastery.FieldAccuracyHard:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccuracyHard(v)
		return nil
	case mastery.FieldEfficiencyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEfficiencyScore(v)
		return nil
	case mastery.FieldExposureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExposureCount(v)
		return nil
	case mastery.FieldMasteryPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryPct(v)
		return nil
	}
	return fmt.Errorf("unknown Mastery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MasteryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mastery.FieldTypeOfQuestion) {
		fields = append(fields, mastery.FieldTypeOfQuestion)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MasteryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MasteryMutation) ClearField(name string) error {
	switch name {
	case mastery.FieldTypeOfQuestion:
		m.ClearTypeOfQuestion()
		return nil
	}
	return fmt.Errorf("unknown Mastery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MasteryMutation) ResetField(name string) error {
	switch name {
	case mastery.FieldStudentID:
		m.ResetStudentID()
		return nil
	case mastery.FieldSubcategory:
		m.ResetSubcategory()
		return nil
	case mastery.FieldTypeOfQuestion:
		m.ResetTypeOfQuestion()
		return nil
	case mastery.FieldAccuracyEasy:
		m.ResetAccuracyEasy()
		return nil
	case mastery.FieldAccuracyMedium:
		m.ResetAccuracyMedium()
		return nil
	case mastery.FieldAccuracyHard:
		m.ResetAccuracyHard()
		return nil
	case mastery.FieldEfficiencyScore:
		m.ResetEfficiencyScore()
		return nil
	case mastery.FieldExposureCount:
		m.ResetExposureCount()
		return nil
	case mastery.FieldMasteryPct:
		m.ResetMasteryPct()
		return nil
	case mastery.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	case mastery.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Mastery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MasteryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MasteryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MasteryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MasteryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MasteryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MasteryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MasteryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Mastery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MasteryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Mastery edge %s", name)
}

// PYQQuestionMutation represents an operation that mutates the PYQQuestion nodes in the graph.
type PYQQuestionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	stem                   *string
	category               *string
	subcategory            *string
	type_of_question       *string
	difficulty_band        *pyqquestion.DifficultyBand
	difficulty_score       *float64
	adddifficulty_score    *float64
	pyq_frequency_score    *float64
	addpyq_frequency_score *float64
	core_concepts          *string
	solution_method        *string
	concept_difficulty     *string
	operations_required    *string
	problem_structure      *string
	concept_keywords       *string
	is_active              *bool
	quality_verified       *bool
	created_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*PYQQuestion, error)
	predicates             []predicate.PYQQuestion
}

var _ ent.Mutation = (*PYQQuestionMutation)(nil)

// pyqquestionOption allows management of the mutation configuration using functional options.
type pyqquestionOption func(*PYQQuestionMutation)

// newPYQQuestionMutation creates new mutation for the PYQQuestion entity.
func newPYQQuestionMutation(c config, op Op, opts ...pyqquestionOption) *PYQQuestionMutation {
	m := &PYQQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypePYQQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPYQQuestionID sets the ID field of the mutation.
func withPYQQuestionID(id string) pyqquestionOption {
	return func(m *PYQQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *PYQQuestion
		)
		m.oldValue = func(ctx context.Context) (*PYQQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PYQQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPYQQuestion sets the old PYQQuestion of the mutation.
func withPYQQuestion(node *PYQQuestion) pyqquestionOption {
	return func(m *PYQQuestionMutation) {
		m.oldValue = func(context.Context) (*PYQQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PYQQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PYQQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PYQQuestion entities.
func (m *PYQQuestionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PYQQuestionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PYQQuestionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PYQQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStem sets the "stem" field.
func (m *PYQQuestionMutation) SetStem(s string) {
	m.stem = &s
}

// Stem returns the value of the "stem" field in the mutation.
func (m *PYQQuestionMutation) Stem() (r string, exists bool) {
	v := m.stem
	if v == nil {
		return
	}
	return *v, true
}

// OldStem returns the old "stem" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldStem(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStem: %w", err)
	}
	return oldValue.Stem, nil
}

// ResetStem resets all changes to the "stem" field.
func (m *PYQQuestionMutation) ResetStem() {
	m.stem = nil
}

// SetCategory sets the "category" field.
func (m *PYQQuestionMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *PYQQuestionMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *PYQQuestionMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[pyqquestion.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *PYQQuestionMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[pyqquestion.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *PYQQuestionMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, pyqquestion.FieldCategory)
}

// SetSubcategory sets the "subcategory" field.
func (m *PYQQuestionMutation) SetSubcategory(s string) {
	m.subcategory = &s
}

// Subcategory returns the value of the "subcategory" field in the mutation.
func (m *PYQQuestionMutation) Subcategory() (r string, exists bool) {
	v := m.subcategory
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcategory returns the old "subcategory" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldSubcategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcategory: %w", err)
	}
	return oldValue.Subcategory, nil
}

// ClearSubcategory clears the value of the "subcategory" field.
func (m *PYQQuestionMutation) ClearSubcategory() {
	m.subcategory = nil
	m.clearedFields[pyqquestion.FieldSubcategory] = struct{}{}
}

// SubcategoryCleared returns if the "subcategory" field was cleared in this mutation.
func (m *PYQQuestionMutation) SubcategoryCleared() bool {
	_, ok := m.clearedFields[pyqquestion.FieldSubcategory]
	return ok
}

// ResetSubcategory resets all changes to the "subcategory" field.
func (m *PYQQuestionMutation) ResetSubcategory() {
	m.subcategory = nil
	delete(m.clearedFields, pyqquestion.FieldSubcategory)
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (m *PYQQuestionMutation) SetTypeOfQuestion(s string) {
	m.type_of_question = &s
}

// TypeOfQuestion returns the value of the "type_of_question" field in the mutation.
func (m *PYQQuestionMutation) TypeOfQuestion() (r string, exists bool) {
	v := m.type_of_question
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeOfQuestion returns the old "type_of_question" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldTypeOfQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeOfQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeOfQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeOfQuestion: %w", err)
	}
	return oldValue.TypeOfQuestion, nil
}

// ClearTypeOfQuestion clears the value of the "type_of_question" field.
func (m *PYQQuestionMutation) ClearTypeOfQuestion() {
	m.type_of_question = nil
	m.clearedFields[pyqquestion.FieldTypeOfQuestion] = struct{}{}
}

// TypeOfQuestionCleared returns if the "type_of_question" field was cleared in this mutation.
func (m *PYQQuestionMutation) TypeOfQuestionCleared() bool {
	_, ok := m.clearedFields[pyqquestion.FieldTypeOfQuestion]
	return ok
}

// ResetTypeOfQuestion resets all changes to the "type_of_question" field.
func (m *PYQQuestionMutation) ResetTypeOfQuestion() {
	m.type_of_question = nil
	delete(m.clearedFields, pyqquestion.FieldTypeOfQuestion)
}

// SetDifficultyBand sets the "difficulty_band" field.
func (m *PYQQuestionMutation) SetDifficultyBand(pb pyqquestion.DifficultyBand) {
	m.difficulty_band = &pb
}

// DifficultyBand returns the value of the "difficulty_band" field in the mutation.
func (m *PYQQuestionMutation) DifficultyBand() (r pyqquestion.DifficultyBand, exists bool) {
	v := m.difficulty_band
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyBand returns the old "difficulty_band" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldDifficultyBand(ctx context.Context) (v pyqquestion.DifficultyBand, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyBand: %w", err)
	}
	return oldValue.DifficultyBand, nil
}

// ClearDifficultyBand clears the value of the "difficulty_band" field.
func (m *PYQQuestionMutation) ClearDifficultyBand() {
	m.difficulty_band = nil
	m.clearedFields[pyqquestion.FieldDifficultyBand] = struct{}{}
}

// DifficultyBandCleared returns if the "difficulty_band" field was cleared in this mutation.
func (m *PYQQuestionMutation) DifficultyBandCleared() bool {
	_, ok := m.clearedFields[pyqquestion.FieldDifficultyBand]
	return ok
}

// ResetDifficultyBand resets all changes to the "difficulty_band" field.
func (m *PYQQuestionMutation) ResetDifficultyBand() {
	m.difficulty_band = nil
	delete(m.clearedFields, pyqquestion.FieldDifficultyBand)
}

// SetDifficultyScore sets the "difficulty_score" field.
func (m *PYQQuestionMutation) SetDifficultyScore(f float64) {
	m.difficulty_score = &f
	m.adddifficulty_score = nil
}

// DifficultyScore returns the value of the "difficulty_score" field in the mutation.
func (m *PYQQuestionMutation) DifficultyScore() (r float64, exists bool) {
	v := m.difficulty_score
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyScore returns the old "difficulty_score" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldDifficultyScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyScore: %w", err)
	}
	return oldValue.DifficultyScore, nil
}

// AddDifficultyScore adds f to the "difficulty_score" field.
func (m *PYQQuestionMutation) AddDifficultyScore(f float64) {
	if m.adddifficulty_score != nil {
		*m.adddifficulty_score += f
	} else {
		m.adddifficulty_score = &f
	}
}

// AddedDifficultyScore returns the value that was added to the "difficulty_score" field in this mutation.
func (m *PYQQuestionMutation) AddedDifficultyScore() (r float64, exists bool) {
	v := m.adddifficulty_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearDifficultyScore clears the value of the "difficulty_score" field.
func (m *PYQQuestionMutation) ClearDifficultyScore() {
	m.difficulty_score = nil
	m.adddifficulty_score = nil
	m.clearedFields[pyqquestion.FieldDifficultyScore] = struct{}{}
}

// DifficultyScoreCleared returns if the "difficulty_score" field was cleared in this mutation.
func (m *PYQQuestionMutation) DifficultyScoreCleared() bool {
	_, ok := m.clearedFields[pyqquestion.FieldDifficultyScore]
	return ok
}

// ResetDifficultyScore resets all changes to the "difficulty_score" field.
func (m *PYQQuestionMutation) ResetDifficultyScore() {
	m.difficulty_score = nil
	m.adddifficulty_score = nil
	delete(m.clearedFields, pyqquestion.FieldDifficultyScore)
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (m *PYQQuestionMutation) SetPyqFrequencyScore(f float64) {
	m.pyq_frequency_score = &f
	m.addpyq_frequency_score = nil
}

// PyqFrequencyScore returns the value of the "pyq_frequency_score" field in the mutation.
func (m *PYQQuestionMutation) PyqFrequencyScore() (r float64, exists bool) {
	v := m.pyq_frequency_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPyqFrequencyScore returns the old "pyq_frequency_score" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldPyqFrequencyScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPyqFrequencyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPyqFrequencyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPyqFrequencyScore: %w", err)
	}
	return oldValue.PyqFrequencyScore, nil
}

// AddPyqFrequencyScore adds f to the "pyq_frequency_score" field.
func (m *PYQQuestionMutation) AddPyqFrequencyScore(f float64) {
	if m.addpyq_frequency_score != nil {
		*m.addpyq_frequency_score += f
	} else {
		m.addpyq_frequency_score = &f
	}
}

// AddedPyqFrequencyScore returns the value that was added to the "pyq_frequency_score" field in this mutation.
func (m *PYQQuestionMutation) AddedPyqFrequencyScore() (r float64, exists bool) {
	v := m.addpyq_frequency_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearPyqFrequencyScore clears the value of the "pyq_frequency_score" field.
func (m *PYQQuestionMutation) ClearPyqFrequencyScore() {
	m.pyq_frequency_score = nil
	m.addpyq_frequency_score = nil
	m.clearedFields[pyqquestion.FieldPyqFrequencyScore] = struct{}{}
}

// PyqFrequencyScoreCleared returns if the "pyq_frequency_score" field was cleared in this mutation.
func (m *PYQQuestionMutation) PyqFrequencyScoreCleared() bool {
	_, ok := m.clearedFields[pyqquestion.FieldPyqFrequencyScore]
	return ok
}

// ResetPyqFrequencyScore resets all changes to the "pyq_frequency_score" field.
func (m *PYQQuestionMutation) ResetPyqFrequencyScore() {
	m.pyq_frequency_score = nil
	m.addpyq_frequency_score = nil
	delete(m.clearedFields, pyqquestion.FieldPyqFrequencyScore)
}

// SetCoreConcepts sets the "core_concepts" field.
func (m *PYQQuestionMutation) SetCoreConcepts(s string) {
	m.core_concepts = &s
}

// CoreConcepts returns the value of the "core_concepts" field in the mutation.
func (m *PYQQuestionMutation) CoreConcepts() (r string, exists bool) {
	v := m.core_concepts
	if v == nil {
		return
	}
	return *v, true
}

// OldCoreConcepts returns the old "core_concepts" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldCoreConcepts(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoreConcepts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoreConcepts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoreConcepts: %w", err)
	}
	return oldValue.CoreConcepts, nil
}

// ClearCoreConcepts clears the value of the "core_concepts" field.
func (m *PYQQuestionMutation) ClearCoreConcepts() {
	m.core_concepts = nil
	m.clearedFields[pyqquestion.FieldCoreConcepts] = struct{}{}
}

// CoreConceptsCleared returns if the "core_concepts" field was cleared in this mutation.
func (m *PYQQuestionMutation) CoreConceptsCleared() bool {
	_, ok := m.clearedFields[pyqquestion.FieldCoreConcepts]
	return ok
}

// ResetCoreConcepts resets all changes to the "core_concepts" field.
func (m *PYQQuestionMutation) ResetCoreConcepts() {
	m.core_concepts = nil
	delete(m.clearedFields, pyqquestion.FieldCoreConcepts)
}

// SetSolutionMethod sets the "solution_method" field.
func (m *PYQQuestionMutation) SetSolutionMethod(s string) {
	m.solution_method = &s
}

// SolutionMethod returns the value of the "solution_method" field in the mutation.
func (m *PYQQuestionMutation) SolutionMethod() (r string, exists bool) {
	v := m.solution_method
	if v == nil {
		return
	}
	return *v, true
}

// OldSolutionMethod returns the old "solution_method" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldSolutionMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolutionMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolutionMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolutionMethod: %w", err)
	}
	return oldValue.SolutionMethod, nil
}

// ClearSolutionMethod clears the value of the "solution_method" field.
func (m *PYQQuestionMutation) ClearSolutionMethod() {
	m.solution_method = nil
	m.clearedFields[pyqquestion.FieldSolutionMethod] = struct{}{}
}

// SolutionMethodCleared returns if the "solution_method" field was cleared in this mutation.
func (m *PYQQuestionMutation) SolutionMethodCleared() bool {
	_, ok := m.clearedFields[pyqquestion.FieldSolutionMethod]
	return ok
}

// ResetSolutionMethod resets all changes to the "solution_method" field.
func (m *PYQQuestionMutation) ResetSolutionMethod() {
	m.solution_method = nil
	delete(m.clearedFields, pyqquestion.FieldSolutionMethod)
}

// SetConceptDifficulty sets the "concept_difficulty" field.
func (m *PYQQuestionMutation) SetConceptDifficulty(s string) {
	m.concept_difficulty = &s
}

// ConceptDifficulty returns the value of the "concept_difficulty" field in the mutation.
func (m *PYQQuestionMutation) ConceptDifficulty() (r string, exists bool) {
	v := m.concept_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptDifficulty returns the old "concept_difficulty" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldConceptDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptDifficulty: %w", err)
	}
	return oldValue.ConceptDifficulty, nil
}

// ClearConceptDifficulty clears the value of the "concept_difficulty" field.
func (m *PYQQuestionMutation) ClearConceptDifficulty() {
	m.concept_difficulty = nil
	m.clearedFields[pyqquestion.FieldConceptDifficulty] = struct{}{}
}

// ConceptDifficultyCleared returns if the "concept_difficulty" field was cleared in this mutation.
func (m *PYQQuestionMutation) ConceptDifficultyCleared() bool {
	_, ok := m.clearedFields[pyqquestion.FieldConceptDifficulty]
	return ok
}

// ResetConceptDifficulty resets all changes to the "concept_difficulty" field.
func (m *PYQQuestionMutation) ResetConceptDifficulty() {
	m.concept_difficulty = nil
	delete(m.clearedFields, pyqquestion.FieldConceptDifficulty)
}

// SetOperationsRequired sets the "operations_required" field.
func (m *PYQQuestionMutation) SetOperationsRequired(s string) {
	m.operations_required = &s
}

// OperationsRequired returns the value of the "operations_required" field in the mutation.
func (m *PYQQuestionMutation) OperationsRequired() (r string, exists bool) {
	v := m.operations_required
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationsRequired returns the old "operations_required" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldOperationsRequired(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationsRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationsRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationsRequired: %w", err)
	}
	return oldValue.OperationsRequired, nil
}

// ClearOperationsRequired clears the value of the "operations_required" field.
func (m *PYQQuestionMutation) ClearOperationsRequired() {
	m.operations_required = nil
	m.clearedFields[pyqquestion.FieldOperationsRequired] = struct{}{}
}

// OperationsRequiredCleared returns if the "operations_required" field was cleared in this mutation.
func (m *PYQQuestionMutation) OperationsRequiredCleared() bool {
	_, ok := m.clearedFields[pyqquestion.FieldOperationsRequired]
	return ok
}

// ResetOperationsRequired resets all changes to the "operations_required" field.
func (m *PYQQuestionMutation) ResetOperationsRequired() {
	m.operations_required = nil
	delete(m.clearedFields, pyqquestion.FieldOperationsRequired)
}

// SetProblemStructure sets the "problem_structure" field.
func (m *PYQQuestionMutation) SetProblemStructure(s string) {
	m.problem_structure = &s
}

// ProblemStructure returns the value of the "problem_structure" field in the mutation.
func (m *PYQQuestionMutation) ProblemStructure() (r string, exists bool) {
	v := m.problem_structure
	if v == nil {
		return
	}
	return *v, true
}

// OldProblemStructure returns the old "problem_structure" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldProblemStructure(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProblemStructure is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProblemStructure requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProblemStructure: %w", err)
	}
	return oldValue.ProblemStructure, nil
}

// ClearProblemStructure clears the value of the "problem_structure" field.
func (m *PYQQuestionMutation) ClearProblemStructure() {
	m.problem_structure = nil
	m.clearedFields[pyqquestion.FieldProblemStructure] = struct{}{}
}

// ProblemStructureCleared returns if the "problem_structure" field was cleared in this mutation.
func (m *PYQQuestionMutation) ProblemStructureCleared() bool {
	_, ok := m.clearedFields[pyqquestion.FieldProblemStructure]
	return ok
}

// ResetProblemStructure resets all changes to the "problem_structure" field.
func (m *PYQQuestionMutation) ResetProblemStructure() {
	m.problem_structure = nil
	delete(m.clearedFields, pyqquestion.FieldProblemStructure)
}

// SetConceptKeywords sets the "concept_keywords" field.
func (m *PYQQuestionMutation) SetConceptKeywords(s string) {
	m.concept_keywords = &s
}

// ConceptKeywords returns the value of the "concept_keywords" field in the mutation.
func (m *PYQQuestionMutation) ConceptKeywords() (r string, exists bool) {
	v := m.concept_keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptKeywords returns the old "concept_keywords" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldConceptKeywords(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptKeywords: %w", err)
	}
	return oldValue.ConceptKeywords, nil
}

// ClearConceptKeywords clears the value of the "concept_keywords" field.
func (m *PYQQuestionMutation) ClearConceptKeywords() {
	m.concept_keywords = nil
	m.clearedFields[pyqquestion.FieldConceptKeywords] = struct{}{}
}

// ConceptKeywordsCleared returns if the "concept_keywords" field was cleared in this mutation.
func (m *PYQQuestionMutation) ConceptKeywordsCleared() bool {
	_, ok := m.clearedFields[pyqquestion.FieldConceptKeywords]
	return ok
}

// ResetConceptKeywords resets all changes to the "concept_keywords" field.
func (m *PYQQuestionMutation) ResetConceptKeywords() {
	m.concept_keywords = nil
	delete(m.clearedFields, pyqquestion.FieldConceptKeywords)
}

// SetIsActive sets the "is_active" field.
func (m *PYQQuestionMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PYQQuestionMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PYQQuestionMutation) ResetIsActive() {
	m.is_active = nil
}

// SetQualityVerified sets the "quality_verified" field.
func (m *PYQQuestionMutation) SetQualityVerified(b bool) {
	m.quality_verified = &b
}

// QualityVerified returns the value of the "quality_verified" field in the mutation.
func (m *PYQQuestionMutation) QualityVerified() (r bool, exists bool) {
	v := m.quality_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityVerified returns the old "quality_verified" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldQualityVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityVerified: %w", err)
	}
	return oldValue.QualityVerified, nil
}

// ResetQualityVerified resets all changes to the "quality_verified" field.
func (m *PYQQuestionMutation) ResetQualityVerified() {
	m.quality_verified = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PYQQuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PYQQuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PYQQuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PYQQuestionMutation builder.
func (m *PYQQuestionMutation) Where(ps ...predicate.PYQQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PYQQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PYQQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PYQQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PYQQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PYQQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PYQQuestion).
func (m *PYQQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PYQQuestionMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.stem != nil {
		fields = append(fields, pyqquestion.FieldStem)
	}
	if m.category != nil {
		fields = append(fields, pyqquestion.FieldCategory)
	}
	if m.subcategory != nil {
		fields = append(fields, pyqquestion.FieldSubcategory)
	}
	if m.type_of_question != nil {
		fields = append(fields, pyqquestion.FieldTypeOfQuestion)
	}
	if m.difficulty_band != nil {
		fields = append(fields, pyqquestion.FieldDifficultyBand)
	}
	if m.difficulty_score != nil {
		fields = append(fields, pyqquestion.FieldDifficultyScore)
	}
	if m.pyq_frequency_score != nil {
		fields = append(fields, pyqquestion.FieldPyqFrequencyScore)
	}
	if m.core_concepts != nil {
		fields = append(fields, pyqquestion.FieldCoreConcepts)
	}
	if m.solution_method != nil {
		fields = append(fields, pyqquestion.FieldSolutionMethod)
	}
	if m.concept_difficulty != nil {
		fields = append(fields, pyqquestion.FieldConceptDifficulty)
	}
	if m.operations_required != nil {
		fields = append(fields, pyqquestion.FieldOperationsRequired)
	}
	if m.problem_structure != nil {
		fields = append(fields, pyqquestion.FieldProblemStructure)
	}
	if m.concept_keywords != nil {
		fields = append(fields, pyqquestion.FieldConceptKeywords)
	}
	if m.is_active != nil {
		fields = append(fields, pyqquestion.FieldIsActive)
	}
	if m.quality_verified != nil {
		fields = append(fields, pyqquestion.FieldQualityVerified)
	}
	if m.created_at != nil {
		fields = append(fields, pyqquestion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PYQQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pyqquestion.FieldStem:
		return m.Stem()
	case pyqquestion.FieldCategory:
		return m.Category()
	case pyqquestion.FieldSubcategory:
		return m.Subcategory()
	case pyqquestion.FieldTypeOfQuestion:
		return m.TypeOfQuestion()
	case pyqquestion.FieldDifficultyBand:
		return m.DifficultyBand()
	case pyqquestion.FieldDifficultyScore:
		return m.DifficultyScore()
	case pyqquestion.FieldPyqFrequencyScore:
		return m.PyqFrequencyScore()
	case pyqquestion.FieldCoreConcepts:
		return m.CoreConcepts()
	case pyqquestion.FieldSolutionMethod:
		return m.SolutionMethod()
	case pyqquestion.FieldConceptDifficulty:
		return m.ConceptDifficulty()
	case pyqquestion.FieldOperationsRequired:
		return m.OperationsRequired()
	case pyqquestion.FieldProblemStructure:
		return m.ProblemStructure()
	case pyqquestion.FieldConceptKeywords:
		return m.ConceptKeywords()
	case pyqquestion.FieldIsActive:
		return m.IsActive()
	case pyqquestion.FieldQualityVerified:
		return m.QualityVerified()
	case pyqquestion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PYQQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pyqquestion.FieldStem:
		return m.OldStem(ctx)
	case pyqquestion.FieldCategory:
		return m.OldCategory(ctx)
	case pyqquestion.FieldSubcategory:
		return m.OldSubcategory(ctx)
	case pyqquestion.FieldTypeOfQuestion:
		return m.OldTypeOfQuestion(ctx)
	case pyqquestion.FieldDifficultyBand:
		return m.OldDifficultyBand(ctx)
	case pyqquestion.FieldDifficultyScore:
		return m.OldDifficultyScore(ctx)
	case pyqquestion.FieldPyqFrequencyScore:
		return m.OldPyqFrequencyScore(ctx)
	case pyqquestion.FieldCoreConcepts:
		return m.OldCoreConcepts(ctx)
	case pyqquestion.FieldSolutionMethod:
		return m.OldSolutionMethod(ctx)
	case pyqquestion.FieldConceptDifficulty:
		return m.OldConceptDifficulty(ctx)
	case pyqquestion.FieldOperationsRequired:
		return m.OldOperationsRequired(ctx)
	case pyqquestion.FieldProblemStructure:
		return m.OldProblemStructure(ctx)
	case pyqquestion.FieldConceptKeywords:
		return m.OldConceptKeywords(ctx)
	case pyqquestion.FieldIsActive:
		return m.OldIsActive(ctx)
	case pyqquestion.FieldQualityVerified:
		return m.OldQualityVerified(ctx)
	case pyqquestion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PYQQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PYQQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pyqquestion.FieldStem:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStem(v)
		return nil
	case pyqquestion.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case pyqquestion.FieldSubcategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcategory(v)
		return nil
	case pyqquestion.FieldTypeOfQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeOfQuestion(v)
		return nil
	case pyqquestion.FieldDifficultyBand:
		v, ok := value.(pyqquestion.DifficultyBand)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyBand(v)
		return nil
	case pyqquestion.FieldDifficultyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyScore(v)
		return nil
	case pyqquestion.FieldPyqFrequencyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPyqFrequencyScore(v)
		return nil
	case pyqquestion.FieldCoreConcepts:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoreConcepts(v)
		return nil
	case pyqquestion.FieldSolutionMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolutionMethod(v)
		return nil
	case pyqquestion.FieldConceptDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptDifficulty(v)
		return nil
	case pyqquestion.FieldOperationsRequired:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationsRequired(v)
		return nil
	case pyqquestion.FieldProblemStructure:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProblemStructure(v)
		return nil
	case pyqquestion.FieldConceptKeywords:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptKeywords(v)
		return nil
	case pyqquestion.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case pyqquestion.FieldQualityVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityVerified(v)
		return nil
	case pyqquestion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PYQQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PYQQuestionMutation) AddedFields() []string {
	var fields []string
	if m.adddifficulty_score != nil {
		fields = append(fields, pyqquestion.FieldDifficultyScore)
	}
	if m.addpyq_frequency_score != nil {
		fields = append(fields, pyqquestion.FieldPyqFrequencyScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PYQQuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pyqquestion.FieldDifficultyScore:
		return m.AddedDifficultyScore()
	case pyqquestion.FieldPyqFrequencyScore:
		return m.AddedPyqFrequencyScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PYQQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pyqquestion.FieldDifficultyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficultyScore(v)
		return nil
	case pyqquestion.FieldPyqFrequencyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPyqFrequencyScore(v)
		return nil
	}
	return fmt.Errorf("unknown PYQQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PYQQuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pyqquestion.FieldCategory) {
		fields = append(fields, pyqquestion.FieldCategory)
	}
	if m.FieldCleared(pyqquestion.FieldSubcategory) {
		fields = append(fields, pyqquestion.FieldSubcategory)
	}
	if m.FieldCleared(pyqquestion.FieldTypeOfQuestion) {
		fields = append(fields, pyqquestion.FieldTypeOfQuestion)
	}
	if m.FieldCleared(pyqquestion.FieldDifficultyBand) {
		fields = append(fields, pyqquestion.FieldDifficultyBand)
	}
	if m.FieldCleared(pyqquestion.FieldDifficultyScore) {
		fields = append(fields, pyqquestion.FieldDifficultyScore)
	}
	if m.FieldCleared(pyqquestion.FieldPyqFrequencyScore) {
		fields = append(fields, pyqquestion.FieldPyqFrequencyScore)
	}
	if m.FieldCleared(pyqquestion.FieldCoreConcepts) {
		fields = append(fields, pyqquestion.FieldCoreConcepts)
	}
	if m.FieldCleared(pyqquestion.FieldSolutionMethod) {
		fields = append(fields, pyqquestion.FieldSolutionMethod)
	}
	if m.FieldCleared(pyqquestion.FieldConceptDifficulty) {
		fields = append(fields, pyqquestion.FieldConceptDifficulty)
	}
	if m.FieldCleared(pyqquestion.FieldOperationsRequired) {
		fields = append(fields, pyqquestion.FieldOperationsRequired)
	}
	if m.FieldCleared(pyqquestion.FieldProblemStructure) {
		fields = append(fields, pyqquestion.FieldProblemStructure)
	}
	if m.FieldCleared(pyqquestion.FieldConceptKeywords) {
		fields = append(fields, pyqquestion.FieldConceptKeywords)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PYQQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PYQQuestionMutation) ClearField(name string) error {
	switch name {
	case pyqquestion.FieldCategory:
		m.ClearCategory()
		return nil
	case pyqquestion.FieldSubcategory:
		m.ClearSubcategory()
		return nil
	case pyqquestion.FieldTypeOfQuestion:
		m.ClearTypeOfQuestion()
		return nil
	case pyqquestion.FieldDifficultyBand:
		m.ClearDifficultyBand()
		return nil
	case pyqquestion.FieldDifficultyScore:
		m.ClearDifficultyScore()
		return nil
	case pyqquestion.FieldPyqFrequencyScore:
		m.ClearPyqFrequencyScore()
		return nil
	case pyqquestion.FieldCoreConcepts:
		m.ClearCoreConcepts()
		return nil
	case pyqquestion.FieldSolutionMethod:
		m.ClearSolutionMethod()
		return nil
	case pyqquestion.FieldConceptDifficulty:
		m.ClearConceptDifficulty()
		return nil
	case pyqquestion.FieldOperationsRequired:
		m.ClearOperationsRequired()
		return nil
	case pyqquestion.FieldProblemStructure:
		m.ClearProblemStructure()
		return nil
	case pyqquestion.FieldConceptKeywords:
		m.ClearConceptKeywords()
		return nil
	}
	return fmt.Errorf("unknown PYQQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PYQQuestionMutation) ResetField(name string) error {
	switch name {
	case pyqquestion.FieldStem:
		m.ResetStem()
		return nil
	case pyqquestion.FieldCategory:
		m.ResetCategory()
		return nil
	case pyqquestion.FieldSubcategory:
		m.ResetSubcategory()
		return nil
	case pyqquestion.FieldTypeOfQuestion:
		m.ResetTypeOfQuestion()
		return nil
	case pyqquestion.FieldDifficultyBand:
		m.ResetDifficultyBand()
		return nil
	case pyqquestion.FieldDifficultyScore:
		m.ResetDifficultyScore()
		return nil
	case pyqquestion.FieldPyqFrequencyScore:
		m.ResetPyqFrequencyScore()
		return nil
	case pyqquestion.FieldCoreConcepts:
		m.ResetCoreConcepts()
		return nil
	case pyqquestion.FieldSolutionMethod:
		m.ResetSolutionMethod()
		return nil
	case pyqquestion.FieldConceptDifficulty:
		m.ResetConceptDifficulty()
		return nil
	case pyqquestion.FieldOperationsRequired:
		m.ResetOperationsRequired()
		return nil
	case pyqquestion.FieldProblemStructure:
		m.ResetProblemStructure()
		return nil
	case pyqquestion.FieldConceptKeywords:
		m.ResetConceptKeywords()
		return nil
	case pyqquestion.FieldIsActive:
		m.ResetIsActive()
		return nil
	case pyqquestion.FieldQualityVerified:
		m.ResetQualityVerified()
		return nil
	case pyqquestion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PYQQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PYQQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PYQQuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PYQQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PYQQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PYQQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PYQQuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PYQQuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PYQQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PYQQuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PYQQuestion edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	stem                      *string
	admin_answer              *string
	admin_solution            *string
	principle_to_remember     *string
	image_ref                 *string
	category                  *string
	subcategory               *string
	type_of_question          *string
	difficulty_band           *question.DifficultyBand
	difficulty_score          *float64
	adddifficulty_score       *float64
	pyq_frequency_score       *float64
	addpyq_frequency_score    *float64
	right_answer              *string
	core_concepts             *string
	solution_method           *string
	concept_difficulty        *string
	operations_required       *string
	problem_structure         *string
	concept_keywords          *string
	is_active                 *bool
	quality_verified          *bool
	concept_extraction_status *question.ConceptExtractionStatus
	failing_criteria          *string
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*Question, error)
	predicates                []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id string) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Question entities.
func (m *QuestionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStem sets the "stem" field.
func (m *QuestionMutation) SetStem(s string) {
	m.stem = &s
}

// Stem returns the value of the "stem" field in the mutation.
func (m *QuestionMutation) Stem() (r string, exists bool) {
	v := m.stem
	if v == nil {
		return
	}
	return *v, true
}

// OldStem returns the old "stem" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldStem(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStem: %w", err)
	}
	return oldValue.Stem, nil
}

// ResetStem resets all changes to the "stem" field.
func (m *QuestionMutation) ResetStem() {
	m.stem = nil
}

// SetAdminAnswer sets the "admin_answer" field.
func (m *QuestionMutation) SetAdminAnswer(s string) {
	m.admin_answer = &s
}

// AdminAnswer returns the value of the "admin_answer" field in the mutation.
func (m *QuestionMutation) AdminAnswer() (r string, exists bool) {
	v := m.admin_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminAnswer returns the old "admin_answer" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldAdminAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminAnswer: %w", err)
	}
	return oldValue.AdminAnswer, nil
}

// ResetAdminAnswer resets all changes to the "admin_answer" field.
func (m *QuestionMutation) ResetAdminAnswer() {
	m.admin_answer = nil
}

// SetAdminSolution sets the "admin_solution" field.
func (m *QuestionMutation) SetAdminSolution(s string) {
	m.admin_solution = &s
}

// AdminSolution returns the value of the "admin_solution" field in the mutation.
func (m *QuestionMutation) AdminSolution() (r string, exists bool) {
	v := m.admin_solution
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminSolution returns the old "admin_solution" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldAdminSolution(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminSolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminSolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminSolution: %w", err)
	}
	return oldValue.AdminSolution, nil
}

// ClearAdminSolution clears the value of the "admin_solution" field.
func (m *QuestionMutation) ClearAdminSolution() {
	m.admin_solution = nil
	m.clearedFields[question.FieldAdminSolution] = struct{}{}
}

// AdminSolutionCleared returns if the "admin_solution" field was cleared in this mutation.
func (m *QuestionMutation) AdminSolutionCleared() bool {
	_, ok := m.clearedFields[question.FieldAdminSolution]
	return ok
}

// ResetAdminSolution resets all changes to the "admin_solution" field.
func (m *QuestionMutation) ResetAdminSolution() {
	m.admin_solution = nil
	delete(m.clearedFields, question.FieldAdminSolution)
}

// SetPrincipleToRemember sets the "principle_to_remember" field.
func (m *QuestionMutation) SetPrincipleToRemember(s string) {
	m.principle_to_remember = &s
}

// PrincipleToRemember returns the value of the "principle_to_remember" field in the mutation.
func (m *QuestionMutation) PrincipleToRemember() (r string, exists bool) {
	v := m.principle_to_remember
	if v == nil {
		return
	}
	return *v, true
}

// OldPrincipleToRemember returns the old "principle_to_remember" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPrincipleToRemember(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrincipleToRemember is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrincipleToRemember requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrincipleToRemember: %w", err)
	}
	return oldValue.PrincipleToRemember, nil
}

// ClearPrincipleToRemember clears the value of the "principle_to_remember" field.
func (m *QuestionMutation) ClearPrincipleToRemember() {
	m.principle_to_remember = nil
	m.clearedFields[question.FieldPrincipleToRemember] = struct{}{}
}

// PrincipleToRememberCleared returns if the "principle_to_remember" field was cleared in this mutation.
func (m *QuestionMutation) PrincipleToRememberCleared() bool {
	_, ok := m.clearedFields[question.FieldPrincipleToRemember]
	return ok
}

// ResetPrincipleToRemember resets all changes to the "principle_to_remember" field.
func (m *QuestionMutation) ResetPrincipleToRemember() {
	m.principle_to_remember = nil
	delete(m.clearedFields, question.FieldPrincipleToRemember)
}

// SetImageRef sets the "image_ref" field.
func (m *QuestionMutation) SetImageRef(s string) {
	m.image_ref = &s
}

// ImageRef returns the value of the "image_ref" field in the mutation.
func (m *QuestionMutation) ImageRef() (r string, exists bool) {
	v := m.image_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldImageRef returns the old "image_ref" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldImageRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageRef: %w", err)
	}
	return oldValue.ImageRef, nil
}

// ClearImageRef clears the value of the "image_ref" field.
func (m *QuestionMutation) ClearImageRef() {
	m.image_ref = nil
	m.clearedFields[question.FieldImageRef] = struct{}{}
}

// ImageRefCleared returns if the "image_ref" field was cleared in this mutation.
func (m *QuestionMutation) ImageRefCleared() bool {
	_, ok := m.clearedFields[question.FieldImageRef]
	return ok
}

// ResetImageRef resets all changes to the "image_ref" field.
func (m *QuestionMutation) ResetImageRef() {
	m.image_ref = nil
	delete(m.clearedFields, question.FieldImageRef)
}

// SetCategory sets the "category" field.
func (m *QuestionMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *QuestionMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *QuestionMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[question.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *QuestionMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[question.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *QuestionMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, question.FieldCategory)
}

// SetSubcategory sets the "subcategory" field.
func (m *QuestionMutation) SetSubcategory(s string) {
	m.subcategory = &s
}

// Subcategory returns the value of the "subcategory" field in the mutation.
func (m *QuestionMutation) Subcategory() (r string, exists bool) {
	v := m.subcategory
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcategory returns the old "subcategory" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSubcategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcategory: %w", err)
	}
	return oldValue.Subcategory, nil
}

// ClearSubcategory clears the value of the "subcategory" field.
func (m *QuestionMutation) ClearSubcategory() {
	m.subcategory = nil
	m.clearedFields[question.FieldSubcategory] = struct{}{}
}

// SubcategoryCleared returns if the "subcategory" field was cleared in this mutation.
func (m *QuestionMutation) SubcategoryCleared() bool {
	_, ok := m.clearedFields[question.FieldSubcategory]
	return ok
}

// ResetSubcategory resets all changes to the "subcategory" field.
func (m *QuestionMutation) ResetSubcategory() {
	m.subcategory = nil
	delete(m.clearedFields, question.FieldSubcategory)
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (m *QuestionMutation) SetTypeOfQuestion(s string) {
	m.type_of_question = &s
}

// TypeOfQuestion returns the value of the "type_of_question" field in the mutation.
func (m *QuestionMutation) TypeOfQuestion() (r string, exists bool) {
	v := m.type_of_question
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeOfQuestion returns the old "type_of_question" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTypeOfQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeOfQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeOfQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeOfQuestion: %w", err)
	}
	return oldValue.TypeOfQuestion, nil
}

// ClearTypeOfQuestion clears the value of the "type_of_question" field.
func (m *QuestionMutation) ClearTypeOfQuestion() {
	m.type_of_question = nil
	m.clearedFields[question.FieldTypeOfQuestion] = struct{}{}
}

// TypeOfQuestionCleared returns if the "type_of_question" field was cleared in this mutation.
func (m *QuestionMutation) TypeOfQuestionCleared() bool {
	_, ok := m.clearedFields[question.FieldTypeOfQuestion]
	return ok
}

// ResetTypeOfQuestion resets all changes to the "type_of_question" field.
func (m *QuestionMutation) ResetTypeOfQuestion() {
	m.type_of_question = nil
	delete(m.clearedFields, question.FieldTypeOfQuestion)
}

// SetDifficultyBand sets the "difficulty_band" field.
func (m *QuestionMutation) SetDifficultyBand(qb question.DifficultyBand) {
	m.difficulty_band = &qb
}

// DifficultyBand returns the value of the "difficulty_band" field in the mutation.
func (m *QuestionMutation) DifficultyBand() (r question.DifficultyBand, exists bool) {
	v := m.difficulty_band
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyBand returns the old "difficulty_band" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDifficultyBand(ctx context.Context) (v question.DifficultyBand, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyBand: %w", err)
	}
	return oldValue.DifficultyBand, nil
}

// ClearDifficultyBand clears the value of the "difficulty_band" field.
func (m *QuestionMutation) ClearDifficultyBand() {
	m.difficulty_band = nil
	m.clearedFields[question.FieldDifficultyBand] = struct{}{}
}

// DifficultyBandCleared returns if the "difficulty_band" field was cleared in this mutation.
func (m *QuestionMutation) DifficultyBandCleared() bool {
	_, ok := m.clearedFields[question.FieldDifficultyBand]
	return ok
}

// ResetDifficultyBand resets all changes to the "difficulty_band" field.
func (m *QuestionMutation) ResetDifficultyBand() {
	m.difficulty_band = nil
	delete(m.clearedFields, question.FieldDifficultyBand)
}

// SetDifficultyScore sets the "difficulty_score" field.
func (m *QuestionMutation) SetDifficultyScore(f float64) {
	m.difficulty_score = &f
	m.adddifficulty_score = nil
}

// DifficultyScore returns the value of the "difficulty_score" field in the mutation.
func (m *QuestionMutation) DifficultyScore() (r float64, exists bool) {
	v := m.difficulty_score
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyScore returns the old "difficulty_score" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDifficultyScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyScore: %w", err)
	}
	return oldValue.DifficultyScore, nil
}

// AddDifficultyScore adds f to the "difficulty_score" field.
func (m *QuestionMutation) AddDifficultyScore(f float64) {
	if m.adddifficulty_score != nil {
		*m.adddifficulty_score += f
	} else {
		m.adddifficulty_score = &f
	}
}

// AddedDifficultyScore returns the value that was added to the "difficulty_score" field in this mutation.
func (m *QuestionMutation) AddedDifficultyScore() (r float64, exists bool) {
	v := m.adddifficulty_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearDifficultyScore clears the value of the "difficulty_score" field.
func (m *QuestionMutation) ClearDifficultyScore() {
	m.difficulty_score = nil
	m.adddifficulty_score = nil
	m.clearedFields[question.FieldDifficultyScore] = struct{}{}
}

// DifficultyScoreCleared returns if the "difficulty_score" field was cleared in this mutation.
func (m *QuestionMutation) DifficultyScoreCleared() bool {
	_, ok := m.clearedFields[question.FieldDifficultyScore]
	return ok
}

// ResetDifficultyScore resets all changes to the "difficulty_score" field.
func (m *QuestionMutation) ResetDifficultyScore() {
	m.difficulty_score = nil
	m.adddifficulty_score = nil
	delete(m.clearedFields, question.FieldDifficultyScore)
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (m *QuestionMutation) SetPyqFrequencyScore(f float64) {
	m.pyq_frequency_score = &f
	m.addpyq_frequency_score = nil
}

// PyqFrequencyScore returns the value of the "pyq_frequency_score" field in the mutation.
func (m *QuestionMutation) PyqFrequencyScore() (r float64, exists bool) {
	v := m.pyq_frequency_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPyqFrequencyScore returns the old "pyq_frequency_score" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPyqFrequencyScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPyqFrequencyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPyqFrequencyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPyqFrequencyScore: %w", err)
	}
	return oldValue.PyqFrequencyScore, nil
}

// AddPyqFrequencyScore adds f to the "pyq_frequency_score" field.
func (m *QuestionMutation) AddPyqFrequencyScore(f float64) {
	if m.addpyq_frequency_score != nil {
		*m.addpyq_frequency_score += f
	} else {
		m.addpyq_frequency_score = &f
	}
}

// AddedPyqFrequencyScore returns the value that was added to the "pyq_frequency_score" field in this mutation.
func (m *QuestionMutation) AddedPyqFrequencyScore() (r float64, exists bool) {
	v := m.addpyq_frequency_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearPyqFrequencyScore clears the value of the "pyq_frequency_score" field.
func (m *QuestionMutation) ClearPyqFrequencyScore() {
	m.pyq_frequency_score = nil
	m.addpyq_frequency_score = nil
	m.clearedFields[question.FieldPyqFrequencyScore] = struct{}{}
}

// PyqFrequencyScoreCleared returns if the "pyq_frequency_score" field was cleared in this mutation.
func (m *QuestionMutation) PyqFrequencyScoreCleared() bool {
	_, ok := m.clearedFields[question.FieldPyqFrequencyScore]
	return ok
}

// ResetPyqFrequencyScore resets all changes to the "pyq_frequency_score" field.
func (m *QuestionMutation) ResetPyqFrequencyScore() {
	m.pyq_frequency_score = nil
	m.addpyq_frequency_score = nil
	delete(m.clearedFields, question.FieldPyqFrequencyScore)
}

// SetRightAnswer sets the "right_answer" field.
func (m *QuestionMutation) SetRightAnswer(s string) {
	m.right_answer = &s
}

// RightAnswer returns the value of the "right_answer" field in the mutation.
func (m *QuestionMutation) RightAnswer() (r string, exists bool) {
	v := m.right_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldRightAnswer returns the old "right_answer" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldRightAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRightAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRightAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRightAnswer: %w", err)
	}
	return oldValue.RightAnswer, nil
}

// ClearRightAnswer clears the value of the "right_answer" field.
func (m *QuestionMutation) ClearRightAnswer() {
	m.right_answer = nil
	m.clearedFields[question.FieldRightAnswer] = struct{}{}
}

// RightAnswerCleared returns if the "right_answer" field was cleared in this mutation.
func (m *QuestionMutation) RightAnswerCleared() bool {
	_, ok := m.clearedFields[question.FieldRightAnswer]
	return ok
}

// ResetRightAnswer resets all changes to the "right_answer" field.
func (m *QuestionMutation) ResetRightAnswer() {
	m.right_answer = nil
	delete(m.clearedFields, question.FieldRightAnswer)
}

// SetCoreConcepts sets the "core_concepts" field.
func (m *QuestionMutation) SetCoreConcepts(s string) {
	m.core_concepts = &s
}

// CoreConcepts returns the value of the "core_concepts" field in the mutation.
func (m *QuestionMutation) CoreConcepts() (r string, exists bool) {
	v := m.core_concepts
	if v == nil {
		return
	}
	return *v, true
}

// OldCoreConcepts returns the old "core_concepts" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCoreConcepts(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoreConcepts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoreConcepts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoreConcepts: %w", err)
	}
	return oldValue.CoreConcepts, nil
}

// ClearCoreConcepts clears the value of the "core_concepts" field.
func (m *QuestionMutation) ClearCoreConcepts() {
	m.core_concepts = nil
	m.clearedFields[question.FieldCoreConcepts] = struct{}{}
}

// CoreConceptsCleared returns if the "core_concepts" field was cleared in this mutation.
func (m *QuestionMutation) CoreConceptsCleared() bool {
	_, ok := m.clearedFields[question.FieldCoreConcepts]
	return ok
}

// ResetCoreConcepts resets all changes to the "core_concepts" field.
func (m *QuestionMutation) ResetCoreConcepts() {
	m.core_concepts = nil
	delete(m.clearedFields, question.FieldCoreConcepts)
}

// SetSolutionMethod sets the "solution_method" field.
func (m *QuestionMutation) SetSolutionMethod(s string) {
	m.solution_method = &s
}

// SolutionMethod returns the value of the "solution_method" field in the mutation.
func (m *QuestionMutation) SolutionMethod() (r string, exists bool) {
	v := m.solution_method
	if v == nil {
		return
	}
	return *v, true
}

// OldSolutionMethod returns the old "solution_method" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSolutionMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolutionMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolutionMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolutionMethod: %w", err)
	}
	return oldValue.SolutionMethod, nil
}

// ClearSolutionMethod clears the value of the "solution_method" field.
func (m *QuestionMutation) ClearSolutionMethod() {
	m.solution_method = nil
	m.clearedFields[question.FieldSolutionMethod] = struct{}{}
}

// SolutionMethodCleared returns if the "solution_method" field was cleared in this mutation.
func (m *QuestionMutation) SolutionMethodCleared() bool {
	_, ok := m.clearedFields[question.FieldSolutionMethod]
	return ok
}

// ResetSolutionMethod resets all changes to the "solution_method" field.
func (m *QuestionMutation) ResetSolutionMethod() {
	m.solution_method = nil
	delete(m.clearedFields, question.FieldSolutionMethod)
}

// SetConceptDifficulty sets the "concept_difficulty" field.
func (m *QuestionMutation) SetConceptDifficulty(s string) {
	m.concept_difficulty = &s
}

// ConceptDifficulty returns the value of the "concept_difficulty" field in the mutation.
func (m *QuestionMutation) ConceptDifficulty() (r string, exists bool) {
	v := m.concept_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptDifficulty returns the old "concept_difficulty" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldConceptDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptDifficulty: %w", err)
	}
	return oldValue.ConceptDifficulty, nil
}

// ClearConceptDifficulty clears the value of the "concept_difficulty" field.
func (m *QuestionMutation) ClearConceptDifficulty() {
	m.concept_difficulty = nil
	m.clearedFields[question.FieldConceptDifficulty] = struct{}{}
}

// ConceptDifficultyCleared returns if the "concept_difficulty" field was cleared in this mutation.
func (m *QuestionMutation) ConceptDifficultyCleared() bool {
	_, ok := m.clearedFields[question.FieldConceptDifficulty]
	return ok
}

// ResetConceptDifficulty resets all changes to the "concept_difficulty" field.
func (m *QuestionMutation) ResetConceptDifficulty() {
	m.concept_difficulty = nil
	delete(m.clearedFields, question.FieldConceptDifficulty)
}

// SetOperationsRequired sets the "operations_required" field.
func (m *QuestionMutation) SetOperationsRequired(s string) {
	m.operations_required = &s
}

// OperationsRequired returns the value of the "operations_required" field in the mutation.
func (m *QuestionMutation) OperationsRequired() (r string, exists bool) {
	v := m.operations_required
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationsRequired returns the old "operations_required" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldOperationsRequired(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationsRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationsRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationsRequired: %w", err)
	}
	return oldValue.OperationsRequired, nil
}

// ClearOperationsRequired clears the value of the "operations_required" field.
func (m *QuestionMutation) ClearOperationsRequired() {
	m.operations_required = nil
	m.clearedFields[question.FieldOperationsRequired] = struct{}{}
}

// OperationsRequiredCleared returns if the "operations_required" field was cleared in this mutation.
func (m *QuestionMutation) OperationsRequiredCleared() bool {
	_, ok := m.clearedFields[question.FieldOperationsRequired]
	return ok
}

// ResetOperationsRequired resets all changes to the "operations_required" field.
func (m *QuestionMutation) ResetOperationsRequired() {
	m.operations_required = nil
	delete(m.clearedFields, question.FieldOperationsRequired)
}

// SetProblemStructure sets the "problem_structure" field.
func (m *QuestionMutation) SetProblemStructure(s string) {
	m.problem_structure = &s
}

// ProblemStructure returns the value of the "problem_structure" field in the mutation.
func (m *QuestionMutation) ProblemStructure() (r string, exists bool) {
	v := m.problem_structure
	if v == nil {
		return
	}
	return *v, true
}

// OldProblemStructure returns the old "problem_structure" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldProblemStructure(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProblemStructure is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProblemStructure requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProblemStructure: %w", err)
	}
	return oldValue.ProblemStructure, nil
}

// ClearProblemStructure clears the value of the "problem_structure" field.
func (m *QuestionMutation) ClearProblemStructure() {
	m.problem_structure = nil
	m.clearedFields[question.FieldProblemStructure] = struct{}{}
}

// ProblemStructureCleared returns if the "problem_structure" field was cleared in this mutation.
func (m *QuestionMutation) ProblemStructureCleared() bool {
	_, ok := m.clearedFields[question.FieldProblemStructure]
	return ok
}

// ResetProblemStructure resets all changes to the "problem_structure" field.
func (m *QuestionMutation) ResetProblemStructure() {
	m.problem_structure = nil
	delete(m.clearedFields, question.FieldProblemStructure)
}

// SetConceptKeywords sets the "concept_keywords" field.
func (m *QuestionMutation) SetConceptKeywords(s string) {
	m.concept_keywords = &s
}

// ConceptKeywords returns the value of the "concept_keywords" field in the mutation.
func (m *QuestionMutation) ConceptKeywords() (r string, exists bool) {
	v := m.concept_keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptKeywords returns the old "concept_keywords" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldConceptKeywords(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptKeywords: %w", err)
	}
	return oldValue.ConceptKeywords, nil
}

// ClearConceptKeywords clears the value of the "concept_keywords" field.
func (m *QuestionMutation) ClearConceptKeywords() {
	m.concept_keywords = nil
	m.clearedFields[question.FieldConceptKeywords] = struct{}{}
}

// ConceptKeywordsCleared returns if the "concept_keywords" field was cleared in this mutation.
func (m *QuestionMutation) ConceptKeywordsCleared() bool {
	_, ok := m.clearedFields[question.FieldConceptKeywords]
	return ok
}

// ResetConceptKeywords resets all changes to the "concept_keywords" field.
func (m *QuestionMutation) ResetConceptKeywords() {
	m.concept_keywords = nil
	delete(m.clearedFields, question.FieldConceptKeywords)
}

// SetIsActive sets the "is_active" field.
func (m *QuestionMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *QuestionMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *QuestionMutation) ResetIsActive() {
	m.is_active = nil
}

// SetQualityVerified sets the "quality_verified" field.
func (m *QuestionMutation) SetQualityVerified(b bool) {
	m.quality_verified = &b
}

// QualityVerified returns the value of the "quality_verified" field in the mutation.
func (m *QuestionMutation) QualityVerified() (r bool, exists bool) {
	v := m.quality_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityVerified returns the old "quality_verified" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQualityVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityVerified: %w", err)
	}
	return oldValue.QualityVerified, nil
}

// ResetQualityVerified resets all changes to the "quality_verified" field.
func (m *QuestionMutation) ResetQualityVerified() {
	m.quality_verified = nil
}

// SetConceptExtractionStatus sets the "concept_extraction_status" field.
func (m *QuestionMutation) SetConceptExtractionStatus(qes question.ConceptExtractionStatus) {
	m.concept_extraction_status = &qes
}

// ConceptExtractionStatus returns the value of the "concept_extraction_status" field in the mutation.
func (m *QuestionMutation) ConceptExtractionStatus() (r question.ConceptExtractionStatus, exists bool) {
	v := m.concept_extraction_status
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptExtractionStatus returns the old "concept_extraction_status" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldConceptExtractionStatus(ctx context.Context) (v question.ConceptExtractionStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptExtractionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptExtractionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptExtractionStatus: %w", err)
	}
	return oldValue.ConceptExtractionStatus, nil
}

// ResetConceptExtractionStatus resets all changes to the "concept_extraction_status" field.
func (m *QuestionMutation) ResetConceptExtractionStatus() {
	m.concept_extraction_status = nil
}

// SetFailingCriteria sets the "failing_criteria" field.
func (m *QuestionMutation) SetFailingCriteria(s string) {
	m.failing_criteria = &s
}

// FailingCriteria returns the value of the "failing_criteria" field in the mutation.
func (m *QuestionMutation) FailingCriteria() (r string, exists bool) {
	v := m.failing_criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldFailingCriteria returns the old "failing_criteria" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldFailingCriteria(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailingCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailingCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailingCriteria: %w", err)
	}
	return oldValue.FailingCriteria, nil
}

// ClearFailingCriteria clears the value of the "failing_criteria" field.
func (m *QuestionMutation) ClearFailingCriteria() {
	m.failing_criteria = nil
	m.clearedFields[question.FieldFailingCriteria] = struct{}{}
}

// FailingCriteriaCleared returns if the "failing_criteria" field was cleared in this mutation.
func (m *QuestionMutation) FailingCriteriaCleared() bool {
	_, ok := m.clearedFields[question.FieldFailingCriteria]
	return ok
}

// ResetFailingCriteria resets all changes to the "failing_criteria" field.
func (m *QuestionMutation) ResetFailingCriteria() {
	m.failing_criteria = nil
	delete(m.clearedFields, question.FieldFailingCriteria)
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QuestionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QuestionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QuestionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.stem != nil {
		fields = append(fields, question.FieldStem)
	}
	if m.admin_answer != nil {
		fields = append(fields, question.FieldAdminAnswer)
	}
	if m.admin_solution != nil {
		fields = append(fields, question.FieldAdminSolution)
	}
	if m.principle_to_remember != nil {
		fields = append(fields, question.FieldPrincipleToRemember)
	}
	if m.image_ref != nil {
		fields = append(fields, question.FieldImageRef)
	}
	if m.category != nil {
		fields = append(fields, question.FieldCategory)
	}
	if m.subcategory != nil {
		fields = append(fields, question.FieldSubcategory)
	}
	if m.type_of_question != nil {
		fields = append(fields, question.FieldTypeOfQuestion)
	}
	if m.difficulty_band != nil {
		fields = append(fields, question.FieldDifficultyBand)
	}
	if m.difficulty_score != nil {
		fields = append(fields, question.FieldDifficultyScore)
	}
	if m.pyq_frequency_score != nil {
		fields = append(fields, question.FieldPyqFrequencyScore)
	}
	if m.right_answer != nil {
		fields = append(fields, question.FieldRightAnswer)
	}
	if m.core_concepts != nil {
		fields = append(fields, question.FieldCoreConcepts)
	}
	if m.solution_method != nil {
		fields = append(fields, question.FieldSolutionMethod)
	}
	if m.concept_difficulty != nil {
		fields = append(fields, question.FieldConceptDifficulty)
	}
	if m.operations_required != nil {
		fields = append(fields, question.FieldOperationsRequired)
	}
	if m.problem_structure != nil {
		fields = append(fields, question.FieldProblemStructure)
	}
	if m.concept_keywords != nil {
		fields = append(fields, question.FieldConceptKeywords)
	}
	if m.is_active != nil {
		fields = append(fields, question.FieldIsActive)
	}
	if m.quality_verified != nil {
		fields = append(fields, question.FieldQualityVerified)
	}
	if m.concept_extraction_status != nil {
		fields = append(fields, question.FieldConceptExtractionStatus)
	}
	if m.failing_criteria != nil {
		fields = append(fields, question.FieldFailingCriteria)
	}
	if m.created_at != nil {
		fields = append(fields, question.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, question.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldStem:
		return m.Stem()
	case question.FieldAdminAnswer:
		return m.AdminAnswer()
	case question.FieldAdminSolution:
		return m.AdminSolution()
	case question.FieldPrincipleToRemember:
		return m.PrincipleToRemember()
	case question.FieldImageRef:
		return m.ImageRef()
	case question.FieldCategory:
		return m.Category()
	case question.FieldSubcategory:
		return m.Subcategory()
	case question.FieldTypeOfQuestion:
		return m.TypeOfQuestion()
	case question.FieldDifficultyBand:
		return m.DifficultyBand()
	case question.FieldDifficultyScore:
		return m.DifficultyScore()
	case question.FieldPyqFrequencyScore:
		return m.PyqFrequencyScore()
	case question.FieldRightAnswer:
		return m.RightAnswer()
	case question.FieldCoreConcepts:
		return m.CoreConcepts()
	case question.FieldSolutionMethod:
		return m.SolutionMethod()
	case question.FieldConceptDifficulty:
		return m.ConceptDifficulty()
	case question.FieldOperationsRequired:
		return m.OperationsRequired()
	case question.FieldProblemStructure:
		return m.ProblemStructure()
	case question.FieldConceptKeywords:
		return m.ConceptKeywords()
	case question.FieldIsActive:
		return m.IsActive()
	case question.FieldQualityVerified:
		return m.QualityVerified()
	case question.FieldConceptExtractionStatus:
		return m.ConceptExtractionStatus()
	case question.FieldFailingCriteria:
		return m.FailingCriteria()
	case question.FieldCreatedAt:
		return m.CreatedAt()
	case question.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldStem:
		return m.OldStem(ctx)
	case question.FieldAdminAnswer:
		return m.OldAdminAnswer(ctx)
	case question.FieldAdminSolution:
		return m.OldAdminSolution(ctx)
	case question.FieldPrincipleToRemember:
		return m.OldPrincipleToRemember(ctx)
	case question.FieldImageRef:
		return m.OldImageRef(ctx)
	case question.FieldCategory:
		return m.OldCategory(ctx)
	case question.FieldSubcategory:
		return m.OldSubcategory(ctx)
	case question.FieldTypeOfQuestion:
		return m.OldTypeOfQuestion(ctx)
	case question.FieldDifficultyBand:
		return m.OldDifficultyBand(ctx)
	case question.FieldDifficultyScore:
		return m.OldDifficultyScore(ctx)
	case question.FieldPyqFrequencyScore:
		return m.OldPyqFrequencyScore(ctx)
	case question.FieldRightAnswer:
		return m.OldRightAnswer(ctx)
	case question.FieldCoreConcepts:
		return m.OldCoreConcepts(ctx)
	case question.FieldSolutionMethod:
		return m.OldSolutionMethod(ctx)
	case question.FieldConceptDifficulty:
		return m.OldConceptDifficulty(ctx)
	case question.FieldOperationsRequired:
		return m.OldOperationsRequired(ctx)
	case question.FieldProblemStructure:
		return m.OldProblemStructure(ctx)
	case question.FieldConceptKeywords:
		return m.OldConceptKeywords(ctx)
	case question.FieldIsActive:
		return m.OldIsActive(ctx)
	case question.FieldQualityVerified:
		return m.OldQualityVerified(ctx)
	case question.FieldConceptExtractionStatus:
		return m.OldConceptExtractionStatus(ctx)
	case question.FieldFailingCriteria:
		return m.OldFailingCriteria(ctx)
	case question.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case question.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldStem:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStem(v)
		return nil
	case question.FieldAdminAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminAnswer(v)
		return nil
	case question.FieldAdminSolution:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminSolution(v)
		return nil
	case question.FieldPrincipleToRemember:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrincipleToRemember(v)
		return nil
	case question.FieldImageRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageRef(v)
		return nil
	case question.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case question.FieldSubcategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcategory(v)
		return nil
	case question.FieldTypeOfQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeOfQuestion(v)
		return nil
	case question.FieldDifficultyBand:
		v, ok := value.(question.DifficultyBand)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyBand(v)
		return nil
	case question.FieldDifficultyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyScore(v)
		return nil
	case question.FieldPyqFrequencyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPyqFrequencyScore(v)
		return nil
	case question.FieldRightAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRightAnswer(v)
		return nil
	case question.FieldCoreConcepts:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoreConcepts(v)
		return nil
	case question.FieldSolutionMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolutionMethod(v)
		return nil
	case question.FieldConceptDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptDifficulty(v)
		return nil
	case question.FieldOperationsRequired:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationsRequired(v)
		return nil
	case question.FieldProblemStructure:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProblemStructure(v)
		return nil
	case question.FieldConceptKeywords:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptKeywords(v)
		return nil
	case question.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case question.FieldQualityVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityVerified(v)
		return nil
	case question.FieldConceptExtractionStatus:
		v, ok := value.(question.ConceptExtractionStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptExtractionStatus(v)
		return nil
	case question.FieldFailingCriteria:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailingCriteria(v)
		return nil
	case question.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case question.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.adddifficulty_score != nil {
		fields = append(fields, question.FieldDifficultyScore)
	}
	if m.addpyq_frequency_score != nil {
		fields = append(fields, question.FieldPyqFrequencyScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldDifficultyScore:
		return m.AddedDifficultyScore()
	case question.FieldPyqFrequencyScore:
		return m.AddedPyqFrequencyScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldDifficultyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficultyScore(v)
		return nil
	case question.FieldPyqFrequencyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPyqFrequencyScore(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldAdminSolution) {
		fields = append(fields, question.FieldAdminSolution)
	}
	if m.FieldCleared(question.FieldPrincipleToRemember) {
		fields = append(fields, question.FieldPrincipleToRemember)
	}
	if m.FieldCleared(question.FieldImageRef) {
		fields = append(fields, question.FieldImageRef)
	}
	if m.FieldCleared(question.FieldCategory) {
		fields = append(fields, question.FieldCategory)
	}
	if m.FieldCleared(question.FieldSubcategory) {
		fields = append(fields, question.FieldSubcategory)
	}
	if m.FieldCleared(question.FieldTypeOfQuestion) {
		fields = append(fields, question.FieldTypeOfQuestion)
	}
	if m.FieldCleared(question.FieldDifficultyBand) {
		fields = append(fields, question.FieldDifficultyBand)
	}
	if m.FieldCleared(question.FieldDifficultyScore) {
		fields = append(fields, question.FieldDifficultyScore)
	}
	if m.FieldCleared(question.FieldPyqFrequencyScore) {
		fields = append(fields, question.FieldPyqFrequencyScore)
	}
	if m.FieldCleared(question.FieldRightAnswer) {
		fields = append(fields, question.FieldRightAnswer)
	}
	if m.FieldCleared(question.FieldCoreConcepts) {
		fields = append(fields, question.FieldCoreConcepts)
	}
	if m.FieldCleared(question.FieldSolutionMethod) {
		fields = append(fields, question.FieldSolutionMethod)
	}
	if m.FieldCleared(question.FieldConceptDifficulty) {
		fields = append(fields, question.FieldConceptDifficulty)
	}
	if m.FieldCleared(question.FieldOperationsRequired) {
		fields = append(fields, question.FieldOperationsRequired)
	}
	if m.FieldCleared(question.FieldProblemStructure) {
		fields = append(fields, question.FieldProblemStructure)
	}
	if m.FieldCleared(question.FieldConceptKeywords) {
		fields = append(fields, question.FieldConceptKeywords)
	}
	if m.FieldCleared(question.FieldFailingCriteria) {
		fields = append(fields, question.FieldFailingCriteria)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldAdminSolution:
		m.ClearAdminSolution()
		return nil
	case question.FieldPrincipleToRemember:
		m.ClearPrincipleToRemember()
		return nil
	case question.FieldImageRef:
		m.ClearImageRef()
		return nil
	case question.FieldCategory:
		m.ClearCategory()
		return nil
	case question.FieldSubcategory:
		m.ClearSubcategory()
		return nil
	case question.FieldTypeOfQuestion:
		m.ClearTypeOfQuestion()
		return nil
	case question.FieldDifficultyBand:
		m.ClearDifficultyBand()
		return nil
	case question.FieldDifficultyScore:
		m.ClearDifficultyScore()
		return nil
	case question.FieldPyqFrequencyScore:
		m.ClearPyqFrequencyScore()
		return nil
	case question.FieldRightAnswer:
		m.ClearRightAnswer()
		return nil
	case question.FieldCoreConcepts:
		m.ClearCoreConcepts()
		return nil
	case question.FieldSolutionMethod:
		m.ClearSolutionMethod()
		return nil
	case question.FieldConceptDifficulty:
		m.ClearConceptDifficulty()
		return nil
	case question.FieldOperationsRequired:
		m.ClearOperationsRequired()
		return nil
	case question.FieldProblemStructure:
		m.ClearProblemStructure()
		return nil
	case question.FieldConceptKeywords:
		m.ClearConceptKeywords()
		return nil
	case question.FieldFailingCriteria:
		m.ClearFailingCriteria()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldStem:
		m.ResetStem()
		return nil
	case question.FieldAdminAnswer:
		m.ResetAdminAnswer()
		return nil
	case question.FieldAdminSolution:
		m.ResetAdminSolution()
		return nil
	case question.FieldPrincipleToRemember:
		m.ResetPrincipleToRemember()
		return nil
	case question.FieldImageRef:
		m.ResetImageRef()
		return nil
	case question.FieldCategory:
		m.ResetCategory()
		return nil
	case question.FieldSubcategory:
		m.ResetSubcategory()
		return nil
	case question.FieldTypeOfQuestion:
		m.ResetTypeOfQuestion()
		return nil
	case question.FieldDifficultyBand:
		m.ResetDifficultyBand()
		return nil
	case question.FieldDifficultyScore:
		m.ResetDifficultyScore()
		return nil
	case question.FieldPyqFrequencyScore:
		m.ResetPyqFrequencyScore()
		return nil
	case question.FieldRightAnswer:
		m.ResetRightAnswer()
		return nil
	case question.FieldCoreConcepts:
		m.ResetCoreConcepts()
		return nil
	case question.FieldSolutionMethod:
		m.ResetSolutionMethod()
		return nil
	case question.FieldConceptDifficulty:
		m.ResetConceptDifficulty()
		return nil
	case question.FieldOperationsRequired:
		m.ResetOperationsRequired()
		return nil
	case question.FieldProblemStructure:
		m.ResetProblemStructure()
		return nil
	case question.FieldConceptKeywords:
		m.ResetConceptKeywords()
		return nil
	case question.FieldIsActive:
		m.ResetIsActive()
		return nil
	case question.FieldQualityVerified:
		m.ResetQualityVerified()
		return nil
	case question.FieldConceptExtractionStatus:
		m.ResetConceptExtractionStatus()
		return nil
	case question.FieldFailingCriteria:
		m.ResetFailingCriteria()
		return nil
	case question.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case question.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Question edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op              Op
	typ             string
	id              *string
	student_id      *string
	sess_seq        *int
	addsess_seq     *int
	status          *session.Status
	idempotency_key *string
	phase_info      *string
	created_at      *time.Time
	started_at      *time.Time
	ended_at        *time.Time
	clearedFields   map[string]struct{}
	pack            *string
	clearedpack     bool
	done            bool
	oldValue        func(context.Context) (*Session, error)
	predicates      []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *SessionMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *SessionMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *SessionMutation) ResetStudentID() {
	m.student_id = nil
}

// SetSessSeq sets the "sess_seq" field.
func (m *SessionMutation) SetSessSeq(i int) {
	m.sess_seq = &i
	m.addsess_seq = nil
}

// SessSeq returns the value of the "sess_seq" field in the mutation.
func (m *SessionMutation) SessSeq() (r int, exists bool) {
	v := m.sess_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSessSeq returns the old "sess_seq" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSessSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessSeq: %w", err)
	}
	return oldValue.SessSeq, nil
}

// AddSessSeq adds i to the "sess_seq" field.
func (m *SessionMutation) AddSessSeq(i int) {
	if m.addsess_seq != nil {
		*m.addsess_seq += i
	} else {
		m.addsess_seq = &i
	}
}

// AddedSessSeq returns the value that was added to the "sess_seq" field in this mutation.
func (m *SessionMutation) AddedSessSeq() (r int, exists bool) {
	v := m.addsess_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessSeq resets all changes to the "sess_seq" field.
func (m *SessionMutation) ResetSessSeq() {
	m.sess_seq = nil
	m.addsess_seq = nil
}

// SetStatus sets the "status" field.
func (m *SessionMutation) SetStatus(s session.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionMutation) Status() (r session.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStatus(ctx context.Context) (v session.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionMutation) ResetStatus() {
	m.status = nil
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *SessionMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *SessionMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldIdempotencyKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (m *SessionMutation) ClearIdempotencyKey() {
	m.idempotency_key = nil
	m.clearedFields[session.FieldIdempotencyKey] = struct{}{}
}

// IdempotencyKeyCleared returns if the "idempotency_key" field was cleared in this mutation.
func (m *SessionMutation) IdempotencyKeyCleared() bool {
	_, ok := m.clearedFields[session.FieldIdempotencyKey]
	return ok
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *SessionMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
	delete(m.clearedFields, session.FieldIdempotencyKey)
}

// SetPhaseInfo sets the "phase_info" field.
func (m *SessionMutation) SetPhaseInfo(s string) {
	m.phase_info = &s
}

// PhaseInfo returns the value of the "phase_info" field in the mutation.
func (m *SessionMutation) PhaseInfo() (r string, exists bool) {
	v := m.phase_info
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseInfo returns the old "phase_info" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPhaseInfo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseInfo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseInfo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseInfo: %w", err)
	}
	return oldValue.PhaseInfo, nil
}

// ClearPhaseInfo clears the value of the "phase_info" field.
func (m *SessionMutation) ClearPhaseInfo() {
	m.phase_info = nil
	m.clearedFields[session.FieldPhaseInfo] = struct{}{}
}

// PhaseInfoCleared returns if the "phase_info" field was cleared in this mutation.
func (m *SessionMutation) PhaseInfoCleared() bool {
	_, ok := m.clearedFields[session.FieldPhaseInfo]
	return ok
}

// ResetPhaseInfo resets all changes to the "phase_info" field.
func (m *SessionMutation) ResetPhaseInfo() {
	m.phase_info = nil
	delete(m.clearedFields, session.FieldPhaseInfo)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *SessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[session.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *SessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, session.FieldStartedAt)
}

// SetEndedAt sets the "ended_at" field.
func (m *SessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *SessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *SessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[session.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *SessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *SessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, session.FieldEndedAt)
}

// SetPackID sets the "pack" edge to the SessionPack entity by id.
func (m *SessionMutation) SetPackID(id string) {
	m.pack = &id
}

// ClearPack clears the "pack" edge to the SessionPack entity.
func (m *SessionMutation) ClearPack() {
	m.clearedpack = true
}

// PackCleared reports if the "pack" edge to the SessionPack entity was cleared.
func (m *SessionMutation) PackCleared() bool {
	return m.clearedpack
}

// PackID returns the "pack" edge ID in the mutation.
func (m *SessionMutation) PackID() (id string, exists bool) {
	if m.pack != nil {
		return *m.pack, true
	}
	return
}

// PackIDs returns the "pack" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PackID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) PackIDs() (ids []string) {
	if id := m.pack; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPack resets all changes to the "pack" edge.
func (m *SessionMutation) ResetPack() {
	m.pack = nil
	m.clearedpack = false
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.student_id != nil {
		fields = append(fields, session.FieldStudentID)
	}
	if m.sess_seq != nil {
		fields = append(fields, session.FieldSessSeq)
	}
	if m.status != nil {
		fields = append(fields, session.FieldStatus)
	}
	if m.idempotency_key != nil {
		fields = append(fields, session.FieldIdempotencyKey)
	}
	if m.phase_info != nil {
		fields = append(fields, session.FieldPhaseInfo)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, session.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, session.FieldEndedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldStudentID:
		return m.StudentID()
	case session.FieldSessSeq:
		return m.SessSeq()
	case session.FieldStatus:
		return m.Status()
	case session.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case session.FieldPhaseInfo:
		return m.PhaseInfo()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldStartedAt:
		return m.StartedAt()
	case session.FieldEndedAt:
		return m.EndedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldStudentID:
		return m.OldStudentID(ctx)
	case session.FieldSessSeq:
		return m.OldSessSeq(ctx)
	case session.FieldStatus:
		return m.OldStatus(ctx)
	case session.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case session.FieldPhaseInfo:
		return m.OldPhaseInfo(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case session.FieldEndedAt:
		return m.OldEndedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case session.FieldSessSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessSeq(v)
		return nil
	case session.FieldStatus:
		v, ok := value.(session.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case session.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case session.FieldPhaseInfo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseInfo(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case session.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addsess_seq != nil {
		fields = append(fields, session.FieldSessSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldSessSeq:
		return m.AddedSessSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldSessSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessSeq(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldIdempotencyKey) {
		fields = append(fields, session.FieldIdempotencyKey)
	}
	if m.FieldCleared(session.FieldPhaseInfo) {
		fields = append(fields, session.FieldPhaseInfo)
	}
	if m.FieldCleared(session.FieldStartedAt) {
		fields = append(fields, session.FieldStartedAt)
	}
	if m.FieldCleared(session.FieldEndedAt) {
		fields = append(fields, session.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldIdempotencyKey:
		m.ClearIdempotencyKey()
		return nil
	case session.FieldPhaseInfo:
		m.ClearPhaseInfo()
		return nil
	case session.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case session.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldStudentID:
		m.ResetStudentID()
		return nil
	case session.FieldSessSeq:
		m.ResetSessSeq()
		return nil
	case session.FieldStatus:
		m.ResetStatus()
		return nil
	case session.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case session.FieldPhaseInfo:
		m.ResetPhaseInfo()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case session.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.pack != nil {
		edges = append(edges, session.EdgePack)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgePack:
		if id := m.pack; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpack {
		edges = append(edges, session.EdgePack)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgePack:
		return m.clearedpack
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	case session.EdgePack:
		m.ClearPack()
		return nil
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgePack:
		m.ResetPack()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// SessionPackMutation represents an operation that mutates the SessionPack nodes in the graph.
type SessionPackMutation struct {
	config
	op             Op
	typ            string
	id             *string
	question_ids   *string
	telemetry      *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*SessionPack, error)
	predicates     []predicate.SessionPack
}

var _ ent.Mutation = (*SessionPackMutation)(nil)

// sessionpackOption allows management of the mutation configuration using functional options.
type sessionpackOption func(*SessionPackMutation)

// newSessionPackMutation creates new mutation for the SessionPack entity.
func newSessionPackMutation(c config, op Op, opts ...sessionpackOption) *SessionPackMutation {
	m := &SessionPackMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionPack,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionPackID sets the ID field of the mutation.
func withSessionPackID(id string) sessionpackOption {
	return func(m *SessionPackMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionPack
		)
		m.oldValue = func(ctx context.Context) (*SessionPack, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionPack.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionPack sets the old SessionPack of the mutation.
func withSessionPack(node *SessionPack) sessionpackOption {
	return func(m *SessionPackMutation) {
		m.oldValue = func(context.Context) (*SessionPack, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionPackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionPackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionPack entities.
func (m *SessionPackMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionPackMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionPackMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionPack.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SessionPackMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionPackMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionPack entity.
// If the SessionPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionPackMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionPackMutation) ResetSessionID() {
	m.session = nil
}

// SetQuestionIds sets the "question_ids" field.
func (m *SessionPackMutation) SetQuestionIds(s string) {
	m.question_ids = &s
}

// QuestionIds returns the value of the "question_ids" field in the mutation.
func (m *SessionPackMutation) QuestionIds() (r string, exists bool) {
	v := m.question_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionIds returns the old "question_ids" field's value of the SessionPack entity.
// If the SessionPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionPackMutation) OldQuestionIds(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionIds: %w", err)
	}
	return oldValue.QuestionIds, nil
}

// ResetQuestionIds resets all changes to the "question_ids" field.
func (m *SessionPackMutation) ResetQuestionIds() {
	m.question_ids = nil
}

// SetTelemetry sets the "telemetry" field.
func (m *SessionPackMutation) SetTelemetry(s string) {
	m.telemetry = &s
}

// Telemetry returns the value of the "telemetry" field in the mutation.
func (m *SessionPackMutation) Telemetry() (r string, exists bool) {
	v := m.telemetry
	if v == nil {
		return
	}
	return *v, true
}

// OldTelemetry returns the old "telemetry" field's value of the SessionPack entity.
// If the SessionPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionPackMutation) OldTelemetry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTelemetry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTelemetry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTelemetry: %w", err)
	}
	return oldValue.Telemetry, nil
}

// ResetTelemetry resets all changes to the "telemetry" field.
func (m *SessionPackMutation) ResetTelemetry() {
	m.telemetry = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionPackMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionPackMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SessionPack entity.
// If the SessionPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionPackMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionPackMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *SessionPackMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[sessionpack.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *SessionPackMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SessionPackMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SessionPackMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the SessionPackMutation builder.
func (m *SessionPackMutation) Where(ps ...predicate.SessionPack) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionPackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionPackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionPack, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionPackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionPackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionPack).
func (m *SessionPackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionPackMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session != nil {
		fields = append(fields, sessionpack.FieldSessionID)
	}
	if m.question_ids != nil {
		fields = append(fields, sessionpack.FieldQuestionIds)
	}
	if m.telemetry != nil {
		fields = append(fields, sessionpack.FieldTelemetry)
	}
	if m.created_at != nil {
		fields = append(fields, sessionpack.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionPackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionpack.FieldSessionID:
		return m.SessionID()
	case sessionpack.FieldQuestionIds:
		return m.QuestionIds()
	case sessionpack.FieldTelemetry:
		return m.Telemetry()
	case sessionpack.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionPackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionpack.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionpack.FieldQuestionIds:
		return m.OldQuestionIds(ctx)
	case sessionpack.FieldTelemetry:
		return m.OldTelemetry(ctx)
	case sessionpack.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionPack field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionPackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionpack.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionpack.FieldQuestionIds:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionIds(v)
		return nil
	case sessionpack.FieldTelemetry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTelemetry(v)
		return nil
	case sessionpack.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionPack field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionPackMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionPackMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionPackMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SessionPack numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionPackMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionPackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionPackMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionPack nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionPackMutation) ResetField(name string) error {
	switch name {
	case sessionpack.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionpack.FieldQuestionIds:
		m.ResetQuestionIds()
		return nil
	case sessionpack.FieldTelemetry:
		m.ResetTelemetry()
		return nil
	case sessionpack.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionPack field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionPackMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, sessionpack.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionPackMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessionpack.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionPackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionPackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionPackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, sessionpack.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionPackMutation) EdgeCleared(name string) bool {
	switch name {
	case sessionpack.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionPackMutation) ClearEdge(name string) error {
	switch name {
	case sessionpack.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown SessionPack unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionPackMutation) ResetEdge(name string) error {
	switch name {
	case sessionpack.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown SessionPack edge %s", name)
}

// StudentCoverageMutation represents an operation that mutates the StudentCoverage nodes in the graph.
type StudentCoverageMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	student_id            *string
	subcategory           *string
	type_of_question      *string
	sessions_seen         *int
	addsessions_seen      *int
	first_seen_session    *int
	addfirst_seen_session *int
	last_seen_session     *int
	addlast_seen_session  *int
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*StudentCoverage, error)
	predicates            []predicate.StudentCoverage
}

var _ ent.Mutation = (*StudentCoverageMutation)(nil)

// studentcoverageOption allows management of the mutation configuration using functional options.
type studentcoverageOption func(*StudentCoverageMutation)

// newStudentCoverageMutation creates new mutation for the StudentCoverage entity.
func newStudentCoverageMutation(c config, op Op, opts ...studentcoverageOption) *StudentCoverageMutation {
	m := &StudentCoverageMutation{
		config:        c,
		op:            op,
		typ:           TypeStudentCoverage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudentCoverageID sets the ID field of the mutation.
func withStudentCoverageID(id string) studentcoverageOption {
	return func(m *StudentCoverageMutation) {
		var (
			err   error
			once  sync.Once
			value *StudentCoverage
		)
		m.oldValue = func(ctx context.Context) (*StudentCoverage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudentCoverage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudentCoverage sets the old StudentCoverage of the mutation.
func withStudentCoverage(node *StudentCoverage) studentcoverageOption {
	return func(m *StudentCoverageMutation) {
		m.oldValue = func(context.Context) (*StudentCoverage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudentCoverageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudentCoverageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StudentCoverage entities.
func (m *StudentCoverageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudentCoverageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudentCoverageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudentCoverage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *StudentCoverageMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *StudentCoverageMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the StudentCoverage entity.
// If the StudentCoverage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentCoverageMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *StudentCoverageMutation) ResetStudentID() {
	m.student_id = nil
}

// SetSubcategory sets the "subcategory" field.
func (m *StudentCoverageMutation) SetSubcategory(s string) {
	m.subcategory = &s
}

// Subcategory returns the value of the "subcategory" field in the mutation.
func (m *StudentCoverageMutation) Subcategory() (r string, exists bool) {
	v := m.subcategory
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcategory returns the old "subcategory" field's value of the StudentCoverage entity.
// If the StudentCoverage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentCoverageMutation) OldSubcategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcategory: %w", err)
	}
	return oldValue.Subcategory, nil
}

// ResetSubcategory resets all changes to the "subcategory" field.
func (m *StudentCoverageMutation) ResetSubcategory() {
	m.subcategory = nil
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (m *StudentCoverageMutation) SetTypeOfQuestion(s string) {
	m.type_of_question = &s
}

// TypeOfQuestion returns the value of the "type_of_question" field in the mutation.
func (m *StudentCoverageMutation) TypeOfQuestion() (r string, exists bool) {
	v := m.type_of_question
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeOfQuestion returns the old "type_of_question" field's value of the StudentCoverage entity.
// If the StudentCoverage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentCoverageMutation) OldTypeOfQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeOfQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeOfQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeOfQuestion: %w", err)
	}
	return oldValue.TypeOfQuestion, nil
}

// ResetTypeOfQuestion resets all changes to the "type_of_question" field.
func (m *StudentCoverageMutation) ResetTypeOfQuestion() {
	m.type_of_question = nil
}

// SetSessionsSeen sets the "sessions_seen" field.
func (m *StudentCoverageMutation) SetSessionsSeen(i int) {
	m.sessions_seen = &i
	m.addsessions_seen = nil
}

// SessionsSeen returns the value of the "sessions_seen" field in the mutation.
func (m *StudentCoverageMutation) SessionsSeen() (r int, exists bool) {
	v := m.sessions_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionsSeen returns the old "sessions_seen" field's value of the StudentCoverage entity.
// If the StudentCoverage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentCoverageMutation) OldSessionsSeen(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionsSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionsSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionsSeen: %w", err)
	}
	return oldValue.SessionsSeen, nil
}

// AddSessionsSeen adds i to the "sessions_seen" field.
func (m *StudentCoverageMutation) AddSessionsSeen(i int) {
	if m.addsessions_seen != nil {
		*m.addsessions_seen += i
	} else {
		m.addsessions_seen = &i
	}
}

// AddedSessionsSeen returns the value that was added to the "sessions_seen" field in this mutation.
func (m *StudentCoverageMutation) AddedSessionsSeen() (r int, exists bool) {
	v := m.addsessions_seen
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionsSeen resets all changes to the "sessions_seen" field.
func (m *StudentCoverageMutation) ResetSessionsSeen() {
	m.sessions_seen = nil
	m.addsessions_seen = nil
}

// SetFirstSeenSession sets the "first_seen_session" field.
func (m *StudentCoverageMutation) SetFirstSeenSession(i int) {
	m.first_seen_session = &i
	m.addfirst_seen_session = nil
}

// FirstSeenSession returns the value of the "first_seen_session" field in the mutation.
func (m *StudentCoverageMutation) FirstSeenSession() (r int, exists bool) {
	v := m.first_seen_session
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenSession returns the old "first_seen_session" field's value of the StudentCoverage entity.
// If the StudentCoverage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentCoverageMutation) OldFirstSeenSession(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenSession is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenSession requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenSession: %w", err)
	}
	return oldValue.FirstSeenSession, nil
}

// AddFirstSeenSession adds i to the "first_seen_session" field.
func (m *StudentCoverageMutation) AddFirstSeenSession(i int) {
	if m.addfirst_seen_session != nil {
		*m.addfirst_seen_session += i
	} else {
		m.addfirst_seen_session = &i
	}
}

// AddedFirstSeenSession returns the value that was added to the "first_seen_session" field in this mutation.
func (m *StudentCoverageMutation) AddedFirstSeenSession() (r int, exists bool) {
	v := m.addfirst_seen_session
	if v == nil {
		return
	}
	return *v, true
}

// ClearFirstSeenSession clears the value of the "first_seen_session" field.
func (m *StudentCoverageMutation) ClearFirstSeenSession() {
	m.first_seen_session = nil
	m.addfirst_seen_session = nil
	m.clearedFields[studentcoverage.FieldFirstSeenSession] = struct{}{}
}

// FirstSeenSessionCleared returns if the "first_seen_session" field was cleared in this mutation.
func (m *StudentCoverageMutation) FirstSeenSessionCleared() bool {
	_, ok := m.clearedFields[studentcoverage.FieldFirstSeenSession]
	return ok
}

// ResetFirstSeenSession resets all changes to the "first_seen_session" field.
func (m *StudentCoverageMutation) ResetFirstSeenSession() {
	m.first_seen_session = nil
	m.addfirst_seen_session = nil
	delete(m.clearedFields, studentcoverage.FieldFirstSeenSession)
}

// SetLastSeenSession sets the "last_seen_session" field.
func (m *StudentCoverageMutation) SetLastSeenSession(i int) {
	m.last_seen_session = &i
	m.addlast_seen_session = nil
}

// LastSeenSession returns the value of the "last_seen_session" field in the mutation.
func (m *StudentCoverageMutation) LastSeenSession() (r int, exists bool) {
	v := m.last_seen_session
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenSession returns the old "last_seen_session" field's value of the StudentCoverage entity.
// If the StudentCoverage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentCoverageMutation) OldLastSeenSession(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenSession is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenSession requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenSession: %w", err)
	}
	return oldValue.LastSeenSession, nil
}

// AddLastSeenSession adds i to the "last_seen_session" field.
func (m *StudentCoverageMutation) AddLastSeenSession(i int) {
	if m.addlast_seen_session != nil {
		*m.addlast_seen_session += i
	} else {
		m.addlast_seen_session = &i
	}
}

// AddedLastSeenSession returns the value that was added to the "last_seen_session" field in this mutation.
func (m *StudentCoverageMutation) AddedLastSeenSession() (r int, exists bool) {
	v := m.addlast_seen_session
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastSeenSession clears the value of the "last_seen_session" field.
func (m *StudentCoverageMutation) ClearLastSeenSession() {
	m.last_seen_session = nil
	m.addlast_seen_session = nil
	m.clearedFields[studentcoverage.FieldLastSeenSession] = struct{}{}
}

// LastSeenSessionCleared returns if the "last_seen_session" field was cleared in this mutation.
func (m *StudentCoverageMutation) LastSeenSessionCleared() bool {
	_, ok := m.clearedFields[studentcoverage.FieldLastSeenSession]
	return ok
}

// ResetLastSeenSession resets all changes to the "last_seen_session" field.
func (m *StudentCoverageMutation) ResetLastSeenSession() {
	m.last_seen_session = nil
	m.addlast_seen_session = nil
	delete(m.clearedFields, studentcoverage.FieldLastSeenSession)
}

// Where appends a list predicates to the StudentCoverageMutation builder.
func (m *StudentCoverageMutation) Where(ps ...predicate.StudentCoverage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudentCoverageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudentCoverageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudentCoverage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudentCoverageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudentCoverageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudentCoverage).
func (m *StudentCoverageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudentCoverageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.student_id != nil {
		fields = append(fields, studentcoverage.FieldStudentID)
	}
	if m.subcategory != nil {
		fields = append(fields, studentcoverage.FieldSubcategory)
	}
	if m.type_of_question != nil {
		fields = append(fields, studentcoverage.FieldTypeOfQuestion)
	}
	if m.sessions_seen != nil {
		fields = append(fields, studentcoverage.FieldSessionsSeen)
	}
	if m.first_seen_session != nil {
		fields = append(fields, studentcoverage.FieldFirstSeenSession)
	}
	if m.last_seen_session != nil {
		fields = append(fields, studentcoverage.FieldLastSeenSession)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudentCoverageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studentcoverage.FieldStudentID:
		return m.StudentID()
	case studentcoverage.FieldSubcategory:
		return m.Subcategory()
	case studentcoverage.FieldTypeOfQuestion:
		return m.TypeOfQuestion()
	case studentcoverage.FieldSessionsSeen:
		return m.SessionsSeen()
	case studentcoverage.FieldFirstSeenSession:
		return m.FirstSeenSession()
	case studentcoverage.FieldLastSeenSession:
		return m.LastSeenSession()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudentCoverageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studentcoverage.FieldStudentID:
		return m.OldStudentID(ctx)
	case studentcoverage.FieldSubcategory:
		return m.OldSubcategory(ctx)
	case studentcoverage.FieldTypeOfQuestion:
		return m.OldTypeOfQuestion(ctx)
	case studentcoverage.FieldSessionsSeen:
		return m.OldSessionsSeen(ctx)
	case studentcoverage.FieldFirstSeenSession:
		return m.OldFirstSeenSession(ctx)
	case studentcoverage.FieldLastSeenSession:
		return m.OldLastSeenSession(ctx)
	}
	return nil, fmt.Errorf("unknown StudentCoverage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentCoverageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studentcoverage.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case studentcoverage.FieldSubcategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcategory(v)
		return nil
	case studentcoverage.FieldTypeOfQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeOfQuestion(v)
		return nil
	case studentcoverage.FieldSessionsSeen:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionsSeen(v)
		return nil
	case studentcoverage.FieldFirstSeenSession:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenSession(v)
		return nil
	case studentcoverage.FieldLastSeenSession:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenSession(v)
		return nil
	}
	return fmt.Errorf("unknown StudentCoverage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudentCoverageMutation) AddedFields() []string {
	var fields []string
	if m.addsessions_seen != nil {
		fields = append(fields, studentcoverage.FieldSessionsSeen)
	}
	if m.addfirst_seen_session != nil {
		fields = append(fields, studentcoverage.FieldFirstSeenSession)
	}
	if m.addlast_seen_session != nil {
		fields = append(fields, studentcoverage.FieldLastSeenSession)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudentCoverageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studentcoverage.FieldSessionsSeen:
		return m.AddedSessionsSeen()
	case studentcoverage.FieldFirstSeenSession:
		return m.AddedFirstSeenSession()
	case studentcoverage.FieldLastSeenSession:
		return m.AddedLastSeenSession()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentCoverageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studentcoverage.FieldSessionsSeen:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionsSeen(v)
		return nil
	case studentcoverage.FieldFirstSeenSession:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFirstSeenSession(v)
		return nil
	case studentcoverage.FieldLastSeenSession:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastSeenSession(v)
		return nil
	}
	return fmt.Errorf("unknown StudentCoverage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudentCoverageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studentcoverage.FieldFirstSeenSession) {
		fields = append(fields, studentcoverage.FieldFirstSeenSession)
	}
	if m.FieldCleared(studentcoverage.FieldLastSeenSession) {
		fields = append(fields, studentcoverage.FieldLastSeenSession)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudentCoverageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudentCoverageMutation) ClearField(name string) error {
	switch name {
	case studentcoverage.FieldFirstSeenSession:
		m.ClearFirstSeenSession()
		return nil
	case studentcoverage.FieldLastSeenSession:
		m.ClearLastSeenSession()
		return nil
	}
	return fmt.Errorf("unknown StudentCoverage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudentCoverageMutation) ResetField(name string) error {
	switch name {
	case studentcoverage.FieldStudentID:
		m.ResetStudentID()
		return nil
	case studentcoverage.FieldSubcategory:
		m.ResetSubcategory()
		return nil
	case studentcoverage.FieldTypeOfQuestion:
		m.ResetTypeOfQuestion()
		return nil
	case studentcoverage.FieldSessionsSeen:
		m.ResetSessionsSeen()
		return nil
	case studentcoverage.FieldFirstSeenSession:
		m.ResetFirstSeenSession()
		return nil
	case studentcoverage.FieldLastSeenSession:
		m.ResetLastSeenSession()
		return nil
	}
	return fmt.Errorf("unknown StudentCoverage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudentCoverageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudentCoverageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudentCoverageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudentCoverageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudentCoverageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudentCoverageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudentCoverageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StudentCoverage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudentCoverageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StudentCoverage edge %s", name)
}
