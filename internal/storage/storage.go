// Package storage provides the state management for users and courses.
package storage

import (
	"context"
	"strings"

	"github.com/stolasapp/syllabus/internal/storage/db"
)

const (
	// ErrNotFound is returned when a course or user cannot be found.
	ErrNotFound Error = "not found"
	// ErrInternal is returned for any other type of error.
	ErrInternal Error = "internal error"
)

// Error is an error type returned by the storage implementation.
type Error string

// Error satisfies [error].
func (e Error) Error() string { return string(e) }

// FieldError describes a single constraint violation on a record field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError is returned by Create/Update operations when a record
// violates the store's own field constraints (required columns, email shape,
// uniqueness). It carries one entry per violated field so callers can report
// them all at once.
type ValidationError struct {
	Fields []FieldError
}

// Error satisfies [error].
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages(), "; ")
}

// Messages returns the human-readable message for each violated field, in
// declaration order.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return msgs
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Users are the methods on a storage implementation that are responsible for
// accessing and modifying users.
type Users interface {
	// GetUser returns a single user with the specified ID. An [ErrNotFound] is
	// returned if the user ID does not exist.
	GetUser(ctx context.Context, userID uint64) (db.User, error)
	// GetUserByEmail returns a single user with the specified email address,
	// matched exactly and case-sensitively. An [ErrNotFound] is returned if no
	// user has that address.
	GetUserByEmail(ctx context.Context, emailAddress string) (db.User, error)
	// CreateUser inserts a new user. A [*ValidationError] is returned if a
	// required column is missing, the email address is malformed, or the email
	// address is already registered.
	CreateUser(ctx context.Context, user db.User) (db.User, error)
	// DeleteUser removes a user and every course they own. An [ErrNotFound] is
	// returned if the user ID does not exist.
	DeleteUser(ctx context.Context, userID uint64) error
}

// Courses are the methods on a storage implementation that are responsible
// for accessing and modifying courses.
type Courses interface {
	// ListCourses returns every course together with its owning user.
	ListCourses(ctx context.Context) ([]db.ListCoursesRow, error)
	// GetCourse returns a single course with its owning user. An [ErrNotFound]
	// is returned if the course ID does not exist.
	GetCourse(ctx context.Context, courseID uint64) (db.GetCourseRow, error)
	// CreateCourse inserts a new course. A [*ValidationError] is returned if a
	// required column is missing.
	CreateCourse(ctx context.Context, course db.Course) (db.Course, error)
	// UpdateCourse replaces the mutable fields of an existing course. An
	// [ErrNotFound] is returned if the course ID does not exist; a
	// [*ValidationError] if a required column is missing.
	UpdateCourse(ctx context.Context, course db.Course) (db.Course, error)
	// DeleteCourse removes a course. An [ErrNotFound] is returned if the
	// course ID does not exist, including on a repeated delete.
	DeleteCourse(ctx context.Context, courseID uint64) error
}

// Store is the combination interface for [Users] and [Courses].
type Store interface {
	Users
	Courses
	// Close releases any resources held by the store. An error is returned if
	// the store cannot be cleanly closed.
	Close() error
}
