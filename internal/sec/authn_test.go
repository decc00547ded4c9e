package sec

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stolasapp/syllabus/internal/storage"
	"github.com/stolasapp/syllabus/internal/storage/db"
)

// fakeUsers is a [storage.Users] backed by a map keyed on email address.
type fakeUsers map[string]db.User

func (f fakeUsers) GetUser(_ context.Context, userID uint64) (db.User, error) {
	for _, user := range f {
		if user.ID == userID {
			return user, nil
		}
	}
	return db.User{}, storage.ErrNotFound
}

func (f fakeUsers) GetUserByEmail(_ context.Context, emailAddress string) (db.User, error) {
	user, ok := f[emailAddress]
	if !ok {
		return db.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (f fakeUsers) CreateUser(_ context.Context, user db.User) (db.User, error) {
	f[user.EmailAddress] = user
	return user, nil
}

func (f fakeUsers) DeleteUser(_ context.Context, userID uint64) error {
	for email, user := range f {
		if user.ID == userID {
			delete(f, email)
			return nil
		}
	}
	return storage.ErrNotFound
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw123")
	require.NoError(t, err)

	users := fakeUsers{
		"ada@example.com": {
			ID:           42,
			FirstName:    "Ada",
			LastName:     "Lovelace",
			EmailAddress: "ada@example.com",
			PasswordHash: hash,
		},
	}

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/users", nil)
		req.SetBasicAuth("ada@example.com", "pw123")
		principal, err := Authenticate(t.Context(), req, users)
		require.NoError(t, err)
		assert.Equal(t, Principal{
			ID:           42,
			FirstName:    "Ada",
			LastName:     "Lovelace",
			EmailAddress: "ada@example.com",
		}, principal)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/users", nil)
		_, err := Authenticate(t.Context(), req, users)
		require.ErrorIs(t, err, ErrMissingCredentials)
		assert.True(t, Denied(err))
	})

	t.Run("unknown identifier", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/users", nil)
		req.SetBasicAuth("nobody@example.com", "pw123")
		_, err := Authenticate(t.Context(), req, users)
		require.ErrorIs(t, err, ErrUnknownIdentifier)
		assert.True(t, Denied(err))
	})

	t.Run("secret mismatch", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/users", nil)
		req.SetBasicAuth("ada@example.com", "wrong")
		_, err := Authenticate(t.Context(), req, users)
		require.ErrorIs(t, err, ErrSecretMismatch)
		assert.True(t, Denied(err))
	})

	t.Run("identifier match is case-sensitive", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/users", nil)
		req.SetBasicAuth("Ada@Example.com", "pw123")
		_, err := Authenticate(t.Context(), req, users)
		require.ErrorIs(t, err, ErrUnknownIdentifier)
	})
}

func TestPrincipalContext(t *testing.T) {
	t.Parallel()

	_, ok := GetPrincipal(t.Context())
	assert.False(t, ok)

	want := Principal{ID: 7, FirstName: "Grace"}
	ctx := WithPrincipal(t.Context(), want)
	got, ok := GetPrincipal(ctx)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}
