package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/lms-portal-api/internal/models"
	"github.com/campushub/lms-portal-api/internal/service"
	"github.com/campushub/lms-portal-api/pkg/response"
)

// LegacyRecordHandler serves the deprecated denormalized
// grades-and-attendance view, read only.
type LegacyRecordHandler struct {
	records *service.LegacyRecordService
}

// NewLegacyRecordHandler constructs a LegacyRecordHandler.
func NewLegacyRecordHandler(records *service.LegacyRecordService) *LegacyRecordHandler {
	return &LegacyRecordHandler{records: records}
}

// List godoc
// @Summary List denormalized grades-and-attendance records (deprecated)
// @Tags GradesAttendance
// @Produce json
// @Param enrolment_id query int false "Filter by enrolment"
// @Param session_id query int false "Filter by session"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /grades-attendance [get]
func (h *LegacyRecordHandler) List(c *gin.Context) {
	enrolmentID, err := queryID(c, "enrolment_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	sessionID, err := queryID(c, "session_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	records, err := h.records.List(c.Request.Context(), models.AttendanceFilter{EnrolmentID: enrolmentID, SessionID: sessionID})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil, map[string]interface{}{"deprecated": true})
}

// ListByOffering godoc
// @Summary List denormalized records of one class offering (deprecated)
// @Tags GradesAttendance
// @Produce json
// @Param id path int true "Class offering id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /grades-attendance/by-class-offering/{id} [get]
func (h *LegacyRecordHandler) ListByOffering(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	records, err := h.records.ListByOffering(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil, map[string]interface{}{"deprecated": true})
}
