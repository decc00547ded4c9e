package api

import (
	"log/slog"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/stolasapp/syllabus/internal/monitoring"
	"github.com/stolasapp/syllabus/internal/storage"
	"github.com/stolasapp/syllabus/internal/storage/db"
)

type handler struct {
	logger  *slog.Logger
	store   storage.Store
	metrics *monitoring.Metrics
}

// register binds the routes. Course reads and user creation are open; course
// mutation and the current-user lookup require authentication.
func (h handler) register(srv *echo.Echo) {
	auth := requireAuth(h.logger, h.metrics, h.store)

	srv.GET("/courses", h.listCourses)
	srv.GET("/courses/:id", h.getCourse)
	srv.POST("/courses", h.createCourse, auth)
	srv.PUT("/courses/:id", h.updateCourse, auth)
	srv.DELETE("/courses/:id", h.deleteCourse, auth)

	srv.POST("/users", h.createUser)
	srv.GET("/users", h.currentUser, auth)
}

type messageResponse struct {
	Message string `json:"message"`
}

type failureResponse struct {
	Errors []string `json:"errors"`
}

type userResponse struct {
	ID           uint64 `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

type courseResponse struct {
	ID              uint64       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	EstimatedTime   *string      `json:"estimatedTime"`
	MaterialsNeeded *string      `json:"materialsNeeded"`
	OwnerID         uint64       `json:"ownerId"`
	Owner           userResponse `json:"owner"`
}

func toUserResponse(user db.User) userResponse {
	return userResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
	}
}

func toCourseResponse(course db.Course, owner db.User) courseResponse {
	return courseResponse{
		ID:              course.ID,
		Title:           course.Title,
		Description:     course.Description,
		EstimatedTime:   course.EstimatedTime,
		MaterialsNeeded: course.MaterialsNeeded,
		OwnerID:         course.OwnerID,
		Owner:           toUserResponse(owner),
	}
}

// parseID resolves a :id route parameter. Non-numeric IDs cannot match any
// record, so they report ok=false and the caller responds not-found.
func parseID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil
}
