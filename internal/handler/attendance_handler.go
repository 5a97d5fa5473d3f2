package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/lms-portal-api/internal/models"
	"github.com/campushub/lms-portal-api/internal/service"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
	"github.com/campushub/lms-portal-api/pkg/response"
)

// AttendanceHandler exposes the attendance state machine.
type AttendanceHandler struct {
	attendance *service.AttendanceService
}

// NewAttendanceHandler constructs an AttendanceHandler.
func NewAttendanceHandler(attendance *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// instructorScope resolves the instructor id enforcing the guarded
// paths: instructors act as themselves, admins act unguarded.
func instructorScope(c *gin.Context) string {
	claims := claimsFromContext(c)
	if claims != nil && claims.Role == models.RoleInstructor {
		return claims.InstructorID
	}
	return ""
}

// List godoc
// @Summary List attendance records
// @Tags Attendance
// @Produce json
// @Param enrolment_id query int false "Filter by enrolment"
// @Param session_id query int false "Filter by session"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
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
	records, err := h.attendance.List(c.Request.Context(), models.AttendanceFilter{EnrolmentID: enrolmentID, SessionID: sessionID})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil)
}

// ListByOffering godoc
// @Summary List attendance records of one class offering
// @Tags Attendance
// @Produce json
// @Param id path int true "Class offering id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /attendance/by-class-offering/{id} [get]
func (h *AttendanceHandler) ListByOffering(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	records, err := h.attendance.ListByOffering(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil)
}

// Upsert godoc
// @Summary Upsert one attendance record
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body service.SetAttendanceRequest true "Attendance payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /attendance [post]
func (h *AttendanceHandler) Upsert(c *gin.Context) {
	var req service.SetAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	record, err := h.attendance.SetStatus(c.Request.Context(), instructorScope(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record, nil)
}

// UpdateStatus godoc
// @Summary Overwrite one attendance record's status
// @Tags Attendance
// @Accept json
// @Produce json
// @Param id path int true "Attendance id"
// @Param payload body object true "Status payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /attendance/{id} [put]
func (h *AttendanceHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req struct {
		AttendanceStatus models.AttendanceStatus `json:"attendance_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	record, err := h.attendance.UpdateStatus(c.Request.Context(), id, req.AttendanceStatus)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record, nil)
}

// MarkPendingByID godoc
// @Summary Set a single attendance record to Pending
// @Tags Attendance
// @Produce json
// @Param id path int true "Attendance id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /attendance/{id}/pending [patch]
func (h *AttendanceHandler) MarkPendingByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	record, err := h.attendance.MarkPendingByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record, nil)
}

// StudentMarkPending godoc
// @Summary Student check-in for a session
// @Tags Attendance
// @Produce json
// @Param student_id path string true "Student id"
// @Param session_id path int true "Session id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /attendance/student/{student_id}/session/{session_id}/pending [patch]
func (h *AttendanceHandler) StudentMarkPending(c *gin.Context) {
	sessionID, err := pathID(c, "session_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	record, err := h.attendance.MarkPending(c.Request.Context(), c.Param("student_id"), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record, nil)
}

// VerifyAll godoc
// @Summary Verify every pending record of a session
// @Tags Attendance
// @Produce json
// @Param session_id path int true "Session id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /attendance/verify-all/{session_id} [patch]
func (h *AttendanceHandler) VerifyAll(c *gin.Context) {
	sessionID, err := pathID(c, "session_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.attendance.VerifyAll(c.Request.Context(), instructorScope(c), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"session_id": result.SessionID, "updated": result.VerifiedCount}, nil)
}

// InstructorRoster godoc
// @Summary Session roster for an instructor
// @Tags Attendance
// @Produce json
// @Param instructor_id path string true "Instructor id"
// @Param session_id path int true "Session id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /attendance/instructor/{instructor_id}/session/{session_id} [get]
func (h *AttendanceHandler) InstructorRoster(c *gin.Context) {
	sessionID, err := pathID(c, "session_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	roster, err := h.attendance.InstructorRoster(c.Request.Context(), c.Param("instructor_id"), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, roster, nil)
}

// InstructorSetStatus godoc
// @Summary Instructor-guarded attendance upsert for a session
// @Tags Attendance
// @Accept json
// @Produce json
// @Param instructor_id path string true "Instructor id"
// @Param session_id path int true "Session id"
// @Param payload body object true "Attendance payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /attendance/instructor/{instructor_id}/session/{session_id} [post]
func (h *AttendanceHandler) InstructorSetStatus(c *gin.Context) {
	sessionID, err := pathID(c, "session_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req struct {
		EnrolmentID int64                   `json:"enrolment_id" binding:"required"`
		Status      models.AttendanceStatus `json:"attendance_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	record, err := h.attendance.SetStatus(c.Request.Context(), c.Param("instructor_id"), service.SetAttendanceRequest{
		EnrolmentID: req.EnrolmentID,
		SessionID:   sessionID,
		Status:      req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record, nil)
}

// Delete godoc
// @Summary Delete one attendance record
// @Tags Attendance
// @Param id path int true "Attendance id"
// @Success 204
// @Security BearerAuth
// @Router /attendance/{id} [delete]
func (h *AttendanceHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.attendance.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
