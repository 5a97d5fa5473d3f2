package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/lms-portal-api/internal/models"
	"github.com/campushub/lms-portal-api/internal/service"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
	"github.com/campushub/lms-portal-api/pkg/response"
)

// OfferingHandler exposes class offering endpoints.
type OfferingHandler struct {
	offerings *service.OfferingService
}

// NewOfferingHandler constructs an OfferingHandler.
func NewOfferingHandler(offerings *service.OfferingService) *OfferingHandler {
	return &OfferingHandler{offerings: offerings}
}

// List godoc
// @Summary List class offerings
// @Tags ClassOfferings
// @Produce json
// @Param term_id query int false "Filter by term"
// @Param course_code query string false "Filter by course"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /class-offerings [get]
func (h *OfferingHandler) List(c *gin.Context) {
	termID, err := queryID(c, "term_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	filter := models.ClassOfferingFilter{TermID: termID, CourseCode: c.Query("course_code")}
	offerings, err := h.offerings.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, offerings, nil)
}

// Get godoc
// @Summary Get one class offering
// @Tags ClassOfferings
// @Produce json
// @Param id path int true "Class offering id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /class-offerings/{id} [get]
func (h *OfferingHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	offering, err := h.offerings.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, offering, nil)
}

// Create godoc
// @Summary Create a class offering
// @Tags ClassOfferings
// @Accept json
// @Produce json
// @Param payload body service.CreateOfferingRequest true "Offering payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /class-offerings [post]
func (h *OfferingHandler) Create(c *gin.Context) {
	var req service.CreateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	offering, err := h.offerings.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, offering)
}

// Update godoc
// @Summary Update a class offering
// @Tags ClassOfferings
// @Accept json
// @Produce json
// @Param id path int true "Class offering id"
// @Param payload body service.UpdateOfferingRequest true "Offering payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /class-offerings/{id} [put]
func (h *OfferingHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	offering, err := h.offerings.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, offering, nil)
}

// Delete godoc
// @Summary Delete a class offering
// @Tags ClassOfferings
// @Param id path int true "Class offering id"
// @Success 204
// @Security BearerAuth
// @Router /class-offerings/{id} [delete]
func (h *OfferingHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.offerings.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
