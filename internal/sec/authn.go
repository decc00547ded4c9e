package sec

import (
	"context"
	"errors"
	"net/http"

	"github.com/stolasapp/syllabus/internal/storage"
)

// Denial reasons. These are logged internally; callers must never surface
// them in a response, so that an unknown identifier and a wrong secret are
// indistinguishable from the outside.
var (
	ErrMissingCredentials = errors.New("authorization header missing or malformed")
	ErrUnknownIdentifier  = errors.New("no user with that email address")
	ErrSecretMismatch     = errors.New("password does not match")
)

// Principal is the authenticated caller's identity, stripped of secret
// material. It is constructed per request and never persisted.
type Principal struct {
	ID           uint64 `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

// Authenticate resolves the caller identity from the request's Authorization
// header. On failure it returns one of the denial reasons above, or the
// store's own error if the lookup itself failed.
func Authenticate(ctx context.Context, req *http.Request, store storage.Users) (Principal, error) {
	creds, ok := ParseAuthorization(req.Header.Get("Authorization"))
	if !ok {
		return Principal{}, ErrMissingCredentials
	}
	user, err := store.GetUserByEmail(ctx, creds.Identifier)
	if errors.Is(err, storage.ErrNotFound) {
		return Principal{}, ErrUnknownIdentifier
	} else if err != nil {
		return Principal{}, err
	}
	if err = ComparePassword(creds.Secret, user.PasswordHash); err != nil {
		return Principal{}, ErrSecretMismatch
	}
	return Principal{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
	}, nil
}

// Denied reports whether err is one of the authentication denial reasons, as
// opposed to an unexpected failure in the store.
func Denied(err error) bool {
	return errors.Is(err, ErrMissingCredentials) ||
		errors.Is(err, ErrUnknownIdentifier) ||
		errors.Is(err, ErrSecretMismatch)
}

type principalKey struct{}

// GetPrincipal returns the authenticated caller identity stored on the
// context, if any.
func GetPrincipal(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(Principal)
	return principal, ok
}

// WithPrincipal stores the authenticated caller identity on the context. The
// authentication middleware injects this for gated routes; this function is
// also a convenience for testing.
func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}
