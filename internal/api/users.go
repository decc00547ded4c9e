package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stolasapp/syllabus/internal/sec"
	"github.com/stolasapp/syllabus/internal/storage/db"
)

type userRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

func (r userRequest) fields() map[string]string {
	return map[string]string{
		"firstName":    r.FirstName,
		"lastName":     r.LastName,
		"emailAddress": r.EmailAddress,
		"password":     r.Password,
	}
}

var userRules = []Rule{
	{Field: "firstName", Message: "Please provide a First Name value"},
	{Field: "lastName", Message: "Please provide a Last Name value"},
	{Field: "emailAddress", Message: "Please provide an Email Address value"},
	{Field: "password", Message: "Please provide a Password value"},
}

// createUser handles POST /users. The route is open: it is how accounts come
// to exist. The password is hashed before the record reaches the store; the
// plaintext goes no further than this handler.
func (h handler) createUser(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if failures := CheckRequired(userRules, req.fields()); len(failures) > 0 {
		return c.JSON(http.StatusBadRequest, failureResponse{Errors: failures})
	}

	hash, err := sec.HashPassword(req.Password)
	if err != nil {
		return err
	}
	if _, err = h.store.CreateUser(c.Request().Context(), db.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		PasswordHash: hash,
	}); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/")
	return c.NoContent(http.StatusCreated)
}

// currentUser handles GET /users: a "who am I" returning only the
// authenticated caller, never the full user list.
func (h handler) currentUser(c echo.Context) error {
	principal, ok := sec.GetPrincipal(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Access Denied"})
	}
	return c.JSON(http.StatusOK, principal)
}
