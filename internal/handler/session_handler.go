package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/lms-portal-api/internal/models"
	"github.com/campushub/lms-portal-api/internal/service"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
	"github.com/campushub/lms-portal-api/pkg/response"
)

// SessionHandler exposes class session endpoints, including the
// attendance fan-out on creation.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler constructs a SessionHandler.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// List godoc
// @Summary List class sessions
// @Tags ClassSessions
// @Produce json
// @Param class_offering_id query int false "Filter by class offering"
// @Param q query string false "Search title, room or course"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /class-sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	offeringID, err := queryID(c, "class_offering_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	filter := models.ClassSessionFilter{ClassOfferingID: offeringID, Search: c.Query("q")}
	sessions, err := h.sessions.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sessions, nil)
}

// Get godoc
// @Summary Get one class session
// @Tags ClassSessions
// @Produce json
// @Param id path int true "Session id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /class-sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	session, err := h.sessions.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}

// Create godoc
// @Summary Create a session and provision attendance placeholders
// @Tags ClassSessions
// @Accept json
// @Produce json
// @Param payload body service.CreateSessionRequest true "Session payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /class-sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	var req service.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.sessions.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Update godoc
// @Summary Update a class session
// @Tags ClassSessions
// @Accept json
// @Produce json
// @Param id path int true "Session id"
// @Param payload body service.UpdateSessionRequest true "Session payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /class-sessions/{id} [put]
func (h *SessionHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	session, err := h.sessions.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}

// Delete godoc
// @Summary Delete a class session
// @Tags ClassSessions
// @Param id path int true "Session id"
// @Success 204
// @Security BearerAuth
// @Router /class-sessions/{id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.sessions.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListForStudent godoc
// @Summary List an offering's sessions with one student's attendance
// @Tags ClassSessions
// @Produce json
// @Param student_id path string true "Student id"
// @Param class_offering_id path int true "Class offering id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /class-sessions/by-student/{student_id}/{class_offering_id} [get]
func (h *SessionHandler) ListForStudent(c *gin.Context) {
	offeringID, err := pathID(c, "class_offering_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	rows, err := h.sessions.ListForStudent(c.Request.Context(), c.Param("student_id"), offeringID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows, nil)
}
