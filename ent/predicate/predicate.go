// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// Mastery is the predicate function for mastery builders.
type Mastery func(*sql.Selector)

// PYQQuestion is the predicate function for pyqquestion builders.
type PYQQuestion func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// SessionPack is the predicate function for sessionpack builders.
type SessionPack func(*sql.Selector)

// StudentCoverage is the predicate function for studentcoverage builders.
type StudentCoverage func(*sql.Selector)
