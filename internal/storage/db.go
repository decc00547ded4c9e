package storage

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/influxdata/influxdb/pkg/snowflake"

	"github.com/stolasapp/syllabus/internal/config"
	"github.com/stolasapp/syllabus/internal/storage/db"
)

// Constraint messages surfaced to callers through [ValidationError].
const (
	MsgFirstNameRequired   = "Please enter your first name"
	MsgLastNameRequired    = "Please enter your last name"
	MsgEmailRequired       = "Please enter your email"
	MsgEmailMalformed      = "Please enter a valid email address"
	MsgEmailTaken          = "This email is already registered"
	MsgPasswordRequired    = "Please enter your password"
	MsgTitleRequired       = "Please enter a title"
	MsgDescriptionRequired = "Please enter a description"
	MsgOwnerRequired       = "A course owner is required"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// DB is a [Store] backed by a SQLite database.
type DB struct {
	ids     *snowflake.Generator
	db      *sql.DB
	queries *db.Queries
}

// NewDB initializes a DB with the given config and logger.
func NewDB(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*DB, error) {
	handle, err := db.Open(ctx, logger, cfg.DBFilepath)
	if err != nil {
		return nil, err
	}
	return &DB{
		ids:     snowflake.New(rand.IntN(1023)), //nolint:gosec,mnd // this isn't for crypto
		db:      handle,
		queries: db.New(handle),
	}, nil
}

// Close satisfies the [Store] interface.
func (d *DB) Close() error {
	return d.db.Close()
}

// GetUser satisfies the [Users] interface.
func (d *DB) GetUser(ctx context.Context, userID uint64) (db.User, error) {
	user, err := d.queries.GetUser(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return user, ErrNotFound
	}
	return user, err
}

// GetUserByEmail satisfies the [Users] interface.
func (d *DB) GetUserByEmail(ctx context.Context, emailAddress string) (db.User, error) {
	user, err := d.queries.GetUserByEmail(ctx, emailAddress)
	if errors.Is(err, sql.ErrNoRows) {
		return user, ErrNotFound
	}
	return user, err
}

// CreateUser satisfies the [Users] interface.
func (d *DB) CreateUser(ctx context.Context, user db.User) (db.User, error) {
	if err := validateUser(user); err != nil {
		return db.User{}, err
	}
	if user.ID == 0 {
		user.ID = d.ids.Next()
	}
	created, err := d.queries.InsertUser(ctx, db.InsertUserParams(user))
	if errors.Is(err, sql.ErrNoRows) {
		// the insert is a no-op when the email address is taken
		return db.User{}, &ValidationError{Fields: []FieldError{
			{Field: "emailAddress", Message: MsgEmailTaken},
		}}
	}
	return created, err
}

// DeleteUser satisfies the [Users] interface. The user's courses are removed
// in the same transaction.
func (d *DB) DeleteUser(ctx context.Context, userID uint64) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	qtx := d.queries.WithTx(tx)
	if err = qtx.DeleteUserCourses(ctx, userID); err != nil {
		return err
	}
	affected, err := qtx.DeleteUser(ctx, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

func validateUser(user db.User) error {
	var verr ValidationError
	if strings.TrimSpace(user.FirstName) == "" {
		verr.add("firstName", MsgFirstNameRequired)
	}
	if strings.TrimSpace(user.LastName) == "" {
		verr.add("lastName", MsgLastNameRequired)
	}
	switch {
	case strings.TrimSpace(user.EmailAddress) == "":
		verr.add("emailAddress", MsgEmailRequired)
	case !emailRegex.MatchString(user.EmailAddress):
		verr.add("emailAddress", MsgEmailMalformed)
	}
	if len(user.PasswordHash) == 0 {
		verr.add("password", MsgPasswordRequired)
	}
	return verr.orNil()
}

// ListCourses satisfies the [Courses] interface.
func (d *DB) ListCourses(ctx context.Context) ([]db.ListCoursesRow, error) {
	return d.queries.ListCourses(ctx)
}

// GetCourse satisfies the [Courses] interface.
func (d *DB) GetCourse(ctx context.Context, courseID uint64) (db.GetCourseRow, error) {
	row, err := d.queries.GetCourse(ctx, courseID)
	if errors.Is(err, sql.ErrNoRows) {
		return row, ErrNotFound
	}
	return row, err
}

// CreateCourse satisfies the [Courses] interface.
func (d *DB) CreateCourse(ctx context.Context, course db.Course) (db.Course, error) {
	if err := validateCourse(course); err != nil {
		return db.Course{}, err
	}
	if course.ID == 0 {
		course.ID = d.ids.Next()
	}
	return d.queries.InsertCourse(ctx, db.InsertCourseParams(course))
}

// UpdateCourse satisfies the [Courses] interface. The owner is not changed by
// an update.
func (d *DB) UpdateCourse(ctx context.Context, course db.Course) (db.Course, error) {
	if err := validateCourse(course); err != nil {
		return db.Course{}, err
	}
	updated, err := d.queries.UpdateCourse(ctx, db.UpdateCourseParams{
		Title:           course.Title,
		Description:     course.Description,
		EstimatedTime:   course.EstimatedTime,
		MaterialsNeeded: course.MaterialsNeeded,
		ID:              course.ID,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return updated, ErrNotFound
	}
	return updated, err
}

func validateCourse(course db.Course) error {
	var verr ValidationError
	if strings.TrimSpace(course.Title) == "" {
		verr.add("title", MsgTitleRequired)
	}
	if strings.TrimSpace(course.Description) == "" {
		verr.add("description", MsgDescriptionRequired)
	}
	if course.OwnerID == 0 && course.ID == 0 {
		// updates keep the existing owner, so only creates require one
		verr.add("ownerId", MsgOwnerRequired)
	}
	return verr.orNil()
}

// DeleteCourse satisfies the [Courses] interface.
func (d *DB) DeleteCourse(ctx context.Context, courseID uint64) error {
	affected, err := d.queries.DeleteCourse(ctx, courseID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
