package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stolasapp/syllabus/internal/sec"
	"github.com/stolasapp/syllabus/internal/storage"
	"github.com/stolasapp/syllabus/internal/storage/db"
)

type courseRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

func (r courseRequest) fields() map[string]string {
	return map[string]string{
		"title":       r.Title,
		"description": r.Description,
	}
}

var courseRules = []Rule{
	{Field: "title", Message: "Please provide a value for the title field"},
	{Field: "description", Message: "Please provide a value for the description field"},
}

const courseNotFound = "Course Not Found"

// listCourses handles GET /courses. The route is open and embeds the owning
// user in each course.
func (h handler) listCourses(c echo.Context) error {
	rows, err := h.store.ListCourses(c.Request().Context())
	if err != nil {
		return err
	}
	courses := make([]courseResponse, len(rows))
	for i, row := range rows {
		courses[i] = toCourseResponse(row.Course, row.User)
	}
	return c.JSON(http.StatusOK, courses)
}

// getCourse handles GET /courses/:id.
func (h handler) getCourse(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: courseNotFound})
	}
	row, err := h.store.GetCourse(c.Request().Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		return c.JSON(http.StatusNotFound, messageResponse{Message: courseNotFound})
	} else if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCourseResponse(row.Course, row.User))
}

// createCourse handles POST /courses. The course is owned by the
// authenticated caller regardless of what the payload claims.
func (h handler) createCourse(c echo.Context) error {
	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if failures := CheckRequired(courseRules, req.fields()); len(failures) > 0 {
		return c.JSON(http.StatusBadRequest, failureResponse{Errors: failures})
	}

	principal, ok := sec.GetPrincipal(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Access Denied"})
	}
	course, err := h.store.CreateCourse(c.Request().Context(), db.Course{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
		OwnerID:         principal.ID,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/courses/%d", course.ID))
	return c.NoContent(http.StatusCreated)
}

// updateCourse handles PUT /courses/:id. Any authenticated user may update
// any course; ownership is recorded but not enforced.
func (h handler) updateCourse(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: courseNotFound})
	}
	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if failures := CheckRequired(courseRules, req.fields()); len(failures) > 0 {
		return c.JSON(http.StatusBadRequest, failureResponse{Errors: failures})
	}

	_, err := h.store.UpdateCourse(c.Request().Context(), db.Course{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	})
	if errors.Is(err, storage.ErrNotFound) {
		return c.JSON(http.StatusNotFound, messageResponse{Message: courseNotFound})
	} else if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// deleteCourse handles DELETE /courses/:id. Deleting an already-deleted
// course reports not-found rather than a second success.
func (h handler) deleteCourse(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: courseNotFound})
	}
	err := h.store.DeleteCourse(c.Request().Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		return c.JSON(http.StatusNotFound, messageResponse{Message: courseNotFound})
	} else if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
