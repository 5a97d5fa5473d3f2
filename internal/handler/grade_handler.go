package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/lms-portal-api/internal/models"
	"github.com/campushub/lms-portal-api/internal/service"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
	"github.com/campushub/lms-portal-api/pkg/export"
	"github.com/campushub/lms-portal-api/pkg/response"
)

// GradeHandler exposes grade entry, aggregation and export endpoints.
type GradeHandler struct {
	grades *service.GradeService
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
}

// NewGradeHandler constructs a GradeHandler.
func NewGradeHandler(grades *service.GradeService, csv *export.CSVExporter, pdf *export.PDFExporter) *GradeHandler {
	return &GradeHandler{grades: grades, csv: csv, pdf: pdf}
}

// List godoc
// @Summary List grade entries
// @Tags Grades
// @Produce json
// @Param enrolment_id query int false "Filter by enrolment"
// @Param assessment_id query int false "Filter by assessment type"
// @Param class_offering_id query int false "Filter by class offering"
// @Param course_code query string false "Filter by course"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /grades [get]
func (h *GradeHandler) List(c *gin.Context) {
	enrolmentID, err := queryID(c, "enrolment_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	assessmentID, err := queryID(c, "assessment_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	offeringID, err := queryID(c, "class_offering_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	filter := models.GradeFilter{
		EnrolmentID:     enrolmentID,
		AssessmentID:    assessmentID,
		ClassOfferingID: offeringID,
		CourseCode:      c.Query("course_code"),
	}
	grades, err := h.grades.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grades, nil)
}

// ListByOffering godoc
// @Summary List grade entries of one class offering
// @Tags Grades
// @Produce json
// @Param id path int true "Class offering id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /grades/by-class-offering/{id} [get]
func (h *GradeHandler) ListByOffering(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	grades, err := h.grades.List(c.Request.Context(), models.GradeFilter{ClassOfferingID: id})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grades, nil)
}

// Upsert godoc
// @Summary Record or replace one grade entry
// @Tags Grades
// @Accept json
// @Produce json
// @Param payload body service.UpsertGradeRequest true "Grade payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /grades [post]
func (h *GradeHandler) Upsert(c *gin.Context) {
	var req service.UpsertGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	grade, err := h.grades.Upsert(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grade, nil)
}

// Update godoc
// @Summary Update one grade entry
// @Tags Grades
// @Accept json
// @Produce json
// @Param grade_id path int true "Grade id"
// @Param payload body service.UpdateGradeRequest true "Grade payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /grades/{grade_id} [put]
func (h *GradeHandler) Update(c *gin.Context) {
	id, err := pathID(c, "grade_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	grade, err := h.grades.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grade, nil)
}

// Delete godoc
// @Summary Delete one grade entry
// @Tags Grades
// @Param grade_id path int true "Grade id"
// @Success 204
// @Security BearerAuth
// @Router /grades/{grade_id} [delete]
func (h *GradeHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "grade_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.grades.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// StudentCourseGrades godoc
// @Summary Weighted grade breakdown for one student in one offering
// @Tags Grades
// @Produce json
// @Param student_id path string true "Student id"
// @Param class_offering_id path int true "Class offering id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /grades/student/{student_id}/class-offering/{class_offering_id} [get]
func (h *GradeHandler) StudentCourseGrades(c *gin.Context) {
	offeringID, err := pathID(c, "class_offering_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	detail, err := h.grades.StudentCourseGrades(c.Request.Context(), c.Param("student_id"), offeringID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

// StudentSummary godoc
// @Summary Weighted totals across all of a student's offerings
// @Tags Grades
// @Produce json
// @Param student_id path string true "Student id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /grades/student/{student_id}/summary [get]
func (h *GradeHandler) StudentSummary(c *gin.Context) {
	summary, err := h.grades.StudentSummary(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}

// Gradebook godoc
// @Summary Roster of an offering's students with one assessment's scores
// @Tags Grades
// @Produce json
// @Param class_offering_id query int true "Class offering id"
// @Param assessment_id query int true "Assessment id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /grades/gradebook [get]
func (h *GradeHandler) Gradebook(c *gin.Context) {
	offeringID, assessmentID, err := gradebookScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	roster, err := h.grades.Gradebook(c.Request.Context(), offeringID, assessmentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, roster, nil)
}

// GradebookExport godoc
// @Summary Export the gradebook roster as CSV
// @Tags Grades
// @Produce text/csv
// @Param class_offering_id query int true "Class offering id"
// @Param assessment_id query int true "Assessment id"
// @Success 200 {string} string "CSV payload"
// @Security BearerAuth
// @Router /grades/gradebook/export [get]
func (h *GradeHandler) GradebookExport(c *gin.Context) {
	offeringID, assessmentID, err := gradebookScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	headers, rows, err := h.grades.GradebookDataset(c.Request.Context(), offeringID, assessmentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	payload, err := h.csv.Render(export.Dataset{Headers: headers, Rows: rows})
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv"))
		return
	}
	filename := fmt.Sprintf("gradebook_%d_%d.csv", offeringID, assessmentID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", payload)
}

// StudentCourseGradesExport godoc
// @Summary Export one student's weighted breakdown as PDF
// @Tags Grades
// @Produce application/pdf
// @Param student_id path string true "Student id"
// @Param class_offering_id path int true "Class offering id"
// @Success 200 {string} string "PDF payload"
// @Security BearerAuth
// @Router /grades/student/{student_id}/class-offering/{class_offering_id}/export [get]
func (h *GradeHandler) StudentCourseGradesExport(c *gin.Context) {
	offeringID, err := pathID(c, "class_offering_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	studentID := c.Param("student_id")
	title, headers, rows, err := h.grades.CourseGradesDataset(c.Request.Context(), studentID, offeringID)
	if err != nil {
		response.Error(c, err)
		return
	}
	payload, err := h.pdf.Render(export.Dataset{Headers: headers, Rows: rows}, title)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf"))
		return
	}
	filename := fmt.Sprintf("grades_%s_%d.pdf", studentID, offeringID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", payload)
}

func gradebookScope(c *gin.Context) (int64, int64, error) {
	offeringID, err := queryID(c, "class_offering_id")
	if err != nil {
		return 0, 0, err
	}
	assessmentID, err := queryID(c, "assessment_id")
	if err != nil {
		return 0, 0, err
	}
	if offeringID == 0 || assessmentID == 0 {
		return 0, 0, appErrors.Clone(appErrors.ErrValidation, "class_offering_id and assessment_id are required")
	}
	return offeringID, assessmentID, nil
}
