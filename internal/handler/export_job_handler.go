package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/lms-portal-api/internal/service"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
	"github.com/campushub/lms-portal-api/pkg/response"
)

// ExportJobHandler exposes asynchronous grade export rendering.
type ExportJobHandler struct {
	exports *service.ExportJobService
}

// NewExportJobHandler constructs an ExportJobHandler.
func NewExportJobHandler(exports *service.ExportJobService) *ExportJobHandler {
	return &ExportJobHandler{exports: exports}
}

type createExportRequest struct {
	Kind             string `json:"kind" binding:"required"`
	ClassOfferingID  int64  `json:"class_offering_id"`
	AssessmentTypeID int64  `json:"assessment_type_id"`
	StudentID        string `json:"student_id"`
}

// Create godoc
// @Summary Queue a background grade export
// @Tags Grades
// @Accept json
// @Produce json
// @Param payload body createExportRequest true "Export parameters"
// @Success 202 {object} response.Envelope
// @Security BearerAuth
// @Router /grades/exports [post]
func (h *ExportJobHandler) Create(c *gin.Context) {
	var req createExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	var (
		job *service.ExportJob
		err error
	)
	switch req.Kind {
	case service.ExportKindGradebookCSV:
		job, err = h.exports.EnqueueGradebookCSV(req.ClassOfferingID, req.AssessmentTypeID)
	case service.ExportKindCourseGradesPDF:
		job, err = h.exports.EnqueueCourseGradesPDF(req.StudentID, req.ClassOfferingID)
	default:
		err = appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown export kind %q", req.Kind))
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, job, nil)
}

// Get godoc
// @Summary Export job status and download token
// @Tags Grades
// @Produce json
// @Param job_id path string true "Export job id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /grades/exports/{job_id} [get]
func (h *ExportJobHandler) Get(c *gin.Context) {
	detail, err := h.exports.Get(c.Param("job_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

// Download godoc
// @Summary Download a rendered export with a signed token
// @Tags Grades
// @Produce octet-stream
// @Param token query string true "Signed download token"
// @Success 200 {file} binary
// @Router /grades/exports/download [get]
func (h *ExportJobHandler) Download(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "token is required"))
		return
	}
	download, err := h.exports.Download(token)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.FileName))
	c.Data(http.StatusOK, download.ContentType, download.Content)
}
