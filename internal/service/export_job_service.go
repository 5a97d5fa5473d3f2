package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
	"github.com/campushub/lms-portal-api/pkg/export"
	"github.com/campushub/lms-portal-api/pkg/jobs"
	"github.com/campushub/lms-portal-api/pkg/storage"
)

// ExportJobStatus tracks the lifecycle of a background export.
type ExportJobStatus string

const (
	ExportJobQueued  ExportJobStatus = "QUEUED"
	ExportJobRunning ExportJobStatus = "RUNNING"
	ExportJobDone    ExportJobStatus = "DONE"
	ExportJobFailed  ExportJobStatus = "FAILED"
)

const (
	ExportKindGradebookCSV    = "GRADEBOOK_CSV"
	ExportKindCourseGradesPDF = "COURSE_GRADES_PDF"
)

// ExportJob describes one queued or finished export.
type ExportJob struct {
	ID               string          `json:"id"`
	Kind             string          `json:"kind"`
	Status           ExportJobStatus `json:"status"`
	ClassOfferingID  int64           `json:"class_offering_id,omitempty"`
	AssessmentTypeID int64           `json:"assessment_type_id,omitempty"`
	StudentID        string          `json:"student_id,omitempty"`
	FileName         string          `json:"file_name,omitempty"`
	ContentType      string          `json:"content_type,omitempty"`
	Error            string          `json:"error,omitempty"`
	RequestedAt      time.Time       `json:"requested_at"`
	CompletedAt      *time.Time      `json:"completed_at,omitempty"`
}

// ExportJobDetail is the status payload returned to callers, with a
// signed download token once the file is ready.
type ExportJobDetail struct {
	ExportJob
	DownloadToken  string     `json:"download_token,omitempty"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
}

// ExportDownload is a rendered file ready to stream to the client.
type ExportDownload struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportJobService renders gradebook and course-grade exports on a
// background worker pool and serves them through signed download tokens.
type ExportJobService struct {
	grades *GradeService
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	store  *storage.LocalStorage
	signer *storage.SignedURLSigner
	queue  *jobs.Queue
	logger *zap.Logger

	retention time.Duration

	mu      sync.RWMutex
	records map[string]*ExportJob
}

// ExportJobConfig tunes the worker pool and file retention.
type ExportJobConfig struct {
	Workers      int
	RetentionTTL time.Duration
}

func NewExportJobService(grades *GradeService, csv *export.CSVExporter, pdf *export.PDFExporter, store *storage.LocalStorage, signer *storage.SignedURLSigner, cfg ExportJobConfig, logger *zap.Logger) *ExportJobService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.RetentionTTL <= 0 {
		cfg.RetentionTTL = 72 * time.Hour
	}
	s := &ExportJobService{
		grades:    grades,
		csv:       csv,
		pdf:       pdf,
		store:     store,
		signer:    signer,
		logger:    logger,
		retention: cfg.RetentionTTL,
		records:   make(map[string]*ExportJob),
	}
	s.queue = jobs.NewQueue("exports", s.process, jobs.QueueConfig{
		Workers:    cfg.Workers,
		MaxRetries: 1,
		Logger:     logger,
	})
	return s
}

// Start launches the worker pool and a periodic retention sweep.
func (s *ExportJobService) Start(ctx context.Context) {
	s.queue.Start(ctx)
	go s.cleanupLoop(ctx)
}

// Stop drains the worker pool.
func (s *ExportJobService) Stop() {
	s.queue.Stop()
}

// EnqueueGradebookCSV schedules a gradebook export for one offering and
// assessment type.
func (s *ExportJobService) EnqueueGradebookCSV(offeringID, assessmentID int64) (*ExportJob, error) {
	if offeringID <= 0 || assessmentID <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "class_offering_id and assessment_type_id are required")
	}
	job := &ExportJob{
		ID:               uuid.NewString(),
		Kind:             ExportKindGradebookCSV,
		Status:           ExportJobQueued,
		ClassOfferingID:  offeringID,
		AssessmentTypeID: assessmentID,
		RequestedAt:      time.Now().UTC(),
	}
	return s.submit(job)
}

// EnqueueCourseGradesPDF schedules a per-student course grade report.
func (s *ExportJobService) EnqueueCourseGradesPDF(studentID string, offeringID int64) (*ExportJob, error) {
	if studentID == "" || offeringID <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student_id and class_offering_id are required")
	}
	job := &ExportJob{
		ID:              uuid.NewString(),
		Kind:            ExportKindCourseGradesPDF,
		Status:          ExportJobQueued,
		ClassOfferingID: offeringID,
		StudentID:       studentID,
		RequestedAt:     time.Now().UTC(),
	}
	return s.submit(job)
}

func (s *ExportJobService) submit(job *ExportJob) (*ExportJob, error) {
	s.mu.Lock()
	s.records[job.ID] = job
	s.mu.Unlock()

	if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: job.Kind}); err != nil {
		s.mu.Lock()
		delete(s.records, job.ID)
		s.mu.Unlock()
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "failed to queue export")
	}
	snapshot := *job
	return &snapshot, nil
}

// Get returns the job's current state, with a download token once the
// file has been rendered.
func (s *ExportJobService) Get(jobID string) (*ExportJobDetail, error) {
	s.mu.RLock()
	job, ok := s.records[jobID]
	if !ok {
		s.mu.RUnlock()
		return nil, appErrors.Clone(appErrors.ErrNotFound, "export job not found")
	}
	snapshot := *job
	s.mu.RUnlock()

	detail := &ExportJobDetail{ExportJob: snapshot}
	if snapshot.Status == ExportJobDone {
		token, expiresAt, err := s.signer.Generate(snapshot.ID, snapshot.FileName)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "failed to sign download")
		}
		detail.DownloadToken = token
		detail.TokenExpiresAt = &expiresAt
	}
	return detail, nil
}

// Download validates a signed token and returns the stored file.
func (s *ExportJobService) Download(token string) (*ExportDownload, error) {
	jobID, relPath, _, err := s.signer.Parse(token, false)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, http.StatusUnauthorized, "invalid or expired download token")
	}

	contentType := "application/octet-stream"
	s.mu.RLock()
	if job, ok := s.records[jobID]; ok && job.ContentType != "" {
		contentType = job.ContentType
	}
	s.mu.RUnlock()

	file, err := s.store.Open(relPath)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "export file not found")
	}
	defer file.Close() //nolint:errcheck

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "failed to read export file")
	}
	return &ExportDownload{FileName: relPath, ContentType: contentType, Content: content}, nil
}

func (s *ExportJobService) process(ctx context.Context, job jobs.Job) error {
	s.setStatus(job.ID, ExportJobRunning, "", "", "")

	var (
		content     []byte
		fileName    string
		contentType string
		err         error
	)

	s.mu.RLock()
	record, ok := s.records[job.ID]
	if !ok {
		s.mu.RUnlock()
		return nil
	}
	snapshot := *record
	s.mu.RUnlock()

	switch snapshot.Kind {
	case ExportKindGradebookCSV:
		var headers []string
		var rows []map[string]string
		headers, rows, err = s.grades.GradebookDataset(ctx, snapshot.ClassOfferingID, snapshot.AssessmentTypeID)
		if err == nil {
			content, err = s.csv.Render(export.Dataset{Headers: headers, Rows: rows})
		}
		fileName = fmt.Sprintf("gradebook_%d_%d_%s.csv", snapshot.ClassOfferingID, snapshot.AssessmentTypeID, snapshot.ID)
		contentType = "text/csv"
	case ExportKindCourseGradesPDF:
		var title string
		var headers []string
		var rows []map[string]string
		title, headers, rows, err = s.grades.CourseGradesDataset(ctx, snapshot.StudentID, snapshot.ClassOfferingID)
		if err == nil {
			content, err = s.pdf.Render(export.Dataset{Headers: headers, Rows: rows}, title)
		}
		fileName = fmt.Sprintf("course_grades_%s_%d_%s.pdf", snapshot.StudentID, snapshot.ClassOfferingID, snapshot.ID)
		contentType = "application/pdf"
	default:
		err = fmt.Errorf("unknown export kind %s", snapshot.Kind)
	}

	if err == nil {
		_, err = s.store.Save(fileName, content)
	}

	if err != nil {
		s.logger.Sugar().Errorw("export job failed", "job_id", job.ID, "kind", snapshot.Kind, "error", err)
		s.setStatus(job.ID, ExportJobFailed, "", "", err.Error())
		return nil
	}

	s.setStatus(job.ID, ExportJobDone, fileName, contentType, "")
	return nil
}

func (s *ExportJobService) setStatus(jobID string, status ExportJobStatus, fileName, contentType, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.records[jobID]
	if !ok {
		return
	}
	job.Status = status
	job.Error = errMsg
	if fileName != "" {
		job.FileName = fileName
	}
	if contentType != "" {
		job.ContentType = contentType
	}
	if status == ExportJobDone || status == ExportJobFailed {
		now := time.Now().UTC()
		job.CompletedAt = &now
	}
}

func (s *ExportJobService) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := s.store.CleanupOlderThan(s.retention)
			if err != nil {
				s.logger.Sugar().Warnw("export cleanup failed", "error", err)
				continue
			}
			if len(deleted) > 0 {
				s.logger.Sugar().Infow("expired exports removed", "count", len(deleted))
				s.dropRecordsFor(deleted)
			}
		}
	}
}

func (s *ExportJobService) dropRecordsFor(fileNames []string) {
	removed := make(map[string]struct{}, len(fileNames))
	for _, name := range fileNames {
		removed[name] = struct{}{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, job := range s.records {
		if job.FileName == "" {
			continue
		}
		if _, ok := removed[job.FileName]; ok {
			delete(s.records, id)
		}
	}
}
