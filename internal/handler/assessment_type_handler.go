package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/lms-portal-api/internal/models"
	"github.com/campushub/lms-portal-api/internal/service"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
	"github.com/campushub/lms-portal-api/pkg/response"
)

// AssessmentTypeHandler exposes the weighted components of courses.
type AssessmentTypeHandler struct {
	types *service.AssessmentTypeService
}

// NewAssessmentTypeHandler constructs an AssessmentTypeHandler.
func NewAssessmentTypeHandler(types *service.AssessmentTypeService) *AssessmentTypeHandler {
	return &AssessmentTypeHandler{types: types}
}

// List godoc
// @Summary List assessment types
// @Tags AssessmentTypes
// @Produce json
// @Param course_code query string false "Filter by course"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /assessment-types [get]
func (h *AssessmentTypeHandler) List(c *gin.Context) {
	filter := models.AssessmentTypeFilter{CourseCode: c.Query("course_code"), Label: c.Query("assessment_type")}
	types, err := h.types.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, types, nil)
}

// Get godoc
// @Summary Get one assessment type
// @Tags AssessmentTypes
// @Produce json
// @Param id path int true "Assessment id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /assessment-types/{id} [get]
func (h *AssessmentTypeHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	at, err := h.types.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, at, nil)
}

// Create godoc
// @Summary Create an assessment type
// @Tags AssessmentTypes
// @Accept json
// @Produce json
// @Param payload body service.CreateAssessmentTypeRequest true "Assessment type payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /assessment-types [post]
func (h *AssessmentTypeHandler) Create(c *gin.Context) {
	var req service.CreateAssessmentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	at, err := h.types.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, at)
}

// Update godoc
// @Summary Update an assessment type
// @Tags AssessmentTypes
// @Accept json
// @Produce json
// @Param id path int true "Assessment id"
// @Param payload body service.UpdateAssessmentTypeRequest true "Assessment type payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /assessment-types/{id} [put]
func (h *AssessmentTypeHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateAssessmentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	at, err := h.types.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, at, nil)
}

// Delete godoc
// @Summary Delete an assessment type
// @Tags AssessmentTypes
// @Param id path int true "Assessment id"
// @Success 204
// @Security BearerAuth
// @Router /assessment-types/{id} [delete]
func (h *AssessmentTypeHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.types.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
