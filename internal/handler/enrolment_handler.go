package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/lms-portal-api/internal/models"
	"github.com/campushub/lms-portal-api/internal/service"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
	"github.com/campushub/lms-portal-api/pkg/response"
)

// EnrolmentHandler exposes enrolment endpoints.
type EnrolmentHandler struct {
	enrolments *service.EnrolmentService
}

// NewEnrolmentHandler constructs an EnrolmentHandler.
func NewEnrolmentHandler(enrolments *service.EnrolmentService) *EnrolmentHandler {
	return &EnrolmentHandler{enrolments: enrolments}
}

// List godoc
// @Summary List enrolments
// @Tags Enrolments
// @Produce json
// @Param class_offering_id query int false "Filter by class offering"
// @Param student_id query string false "Filter by student"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /enrolments [get]
func (h *EnrolmentHandler) List(c *gin.Context) {
	offeringID, err := queryID(c, "class_offering_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	filter := models.EnrolmentFilter{ClassOfferingID: offeringID, StudentID: c.Query("student_id")}
	enrolments, err := h.enrolments.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enrolments, nil)
}

// Get godoc
// @Summary Get one enrolment
// @Tags Enrolments
// @Produce json
// @Param id path int true "Enrolment id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /enrolments/{id} [get]
func (h *EnrolmentHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	enrolment, err := h.enrolments.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enrolment, nil)
}

// Create godoc
// @Summary Enrol a student into a class offering
// @Tags Enrolments
// @Accept json
// @Produce json
// @Param payload body service.CreateEnrolmentRequest true "Enrolment payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /enrolments [post]
func (h *EnrolmentHandler) Create(c *gin.Context) {
	var req service.CreateEnrolmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	enrolment, err := h.enrolments.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, enrolment)
}

// UpdateStatus godoc
// @Summary Update an enrolment's status
// @Tags Enrolments
// @Accept json
// @Produce json
// @Param id path int true "Enrolment id"
// @Param payload body service.UpdateEnrolmentStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /enrolments/{id} [put]
func (h *EnrolmentHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateEnrolmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	enrolment, err := h.enrolments.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enrolment, nil)
}

// Delete godoc
// @Summary Delete an enrolment
// @Tags Enrolments
// @Param id path int true "Enrolment id"
// @Success 204
// @Security BearerAuth
// @Router /enrolments/{id} [delete]
func (h *EnrolmentHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.enrolments.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
