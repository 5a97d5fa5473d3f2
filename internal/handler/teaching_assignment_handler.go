package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/lms-portal-api/internal/models"
	"github.com/campushub/lms-portal-api/internal/service"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
	"github.com/campushub/lms-portal-api/pkg/response"
)

// TeachingAssignmentHandler exposes instructor-to-offering mappings.
type TeachingAssignmentHandler struct {
	assignments *service.TeachingAssignmentService
}

// NewTeachingAssignmentHandler constructs a TeachingAssignmentHandler.
func NewTeachingAssignmentHandler(assignments *service.TeachingAssignmentService) *TeachingAssignmentHandler {
	return &TeachingAssignmentHandler{assignments: assignments}
}

// List godoc
// @Summary List teaching assignments
// @Tags TeachingAssignments
// @Produce json
// @Param class_offering_id query int false "Filter by class offering"
// @Param instructor_id query string false "Filter by instructor"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /teaching-assignments [get]
func (h *TeachingAssignmentHandler) List(c *gin.Context) {
	offeringID, err := queryID(c, "class_offering_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	filter := models.TeachingAssignmentFilter{
		ClassOfferingID: offeringID,
		InstructorID:    c.Query("instructor_id"),
	}
	assignments, err := h.assignments.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignments, nil)
}

// Get godoc
// @Summary Get one teaching assignment
// @Tags TeachingAssignments
// @Produce json
// @Param id path int true "Assignment id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /teaching-assignments/{id} [get]
func (h *TeachingAssignmentHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	assignment, err := h.assignments.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignment, nil)
}

// Create godoc
// @Summary Assign an instructor to a class offering
// @Tags TeachingAssignments
// @Accept json
// @Produce json
// @Param payload body service.CreateTeachingAssignmentRequest true "Assignment payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /teaching-assignments [post]
func (h *TeachingAssignmentHandler) Create(c *gin.Context) {
	var req service.CreateTeachingAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	assignment, err := h.assignments.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, assignment)
}

// Delete godoc
// @Summary Delete a teaching assignment
// @Tags TeachingAssignments
// @Param id path int true "Assignment id"
// @Success 204
// @Security BearerAuth
// @Router /teaching-assignments/{id} [delete]
func (h *TeachingAssignmentHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.assignments.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
