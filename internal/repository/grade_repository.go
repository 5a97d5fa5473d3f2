package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/lms-portal-api/internal/models"
)

// GradeRepository handles grade rows and the aggregation queries behind the
// gradebook, the per-offering detail and the student summary.
type GradeRepository struct {
	db *sqlx.DB
}

// NewGradeRepository constructs the repository.
func NewGradeRepository(db *sqlx.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

const gradeDetailQuery = `SELECT g.grade_id, g.enrolment_id, g.assessment_id, g.score,
	at.course_code, at.assessment_type AS assessment_label, at.weight,
	e.student_id, e.class_offering_id, e.enrolment_status,
	p.full_name AS student_name, p.email AS student_email
	FROM grade g
	JOIN enrolment e ON e.enrolment_id = g.enrolment_id
	JOIN student s ON s.student_id = e.student_id
	JOIN person p ON p.person_id = s.person_id
	LEFT JOIN assessment_type at ON at.assessment_id = g.assessment_id`

// List returns grade rows with assessment and student context.
func (r *GradeRepository) List(ctx context.Context, filter models.GradeFilter) ([]models.GradeDetail, error) {
	query := gradeDetailQuery
	var conditions []string
	var args []interface{}
	if filter.EnrolmentID != 0 {
		conditions = append(conditions, fmt.Sprintf("g.enrolment_id = $%d", len(args)+1))
		args = append(args, filter.EnrolmentID)
	}
	if filter.AssessmentID != 0 {
		conditions = append(conditions, fmt.Sprintf("g.assessment_id = $%d", len(args)+1))
		args = append(args, filter.AssessmentID)
	}
	if filter.ClassOfferingID != 0 {
		conditions = append(conditions, fmt.Sprintf("e.class_offering_id = $%d", len(args)+1))
		args = append(args, filter.ClassOfferingID)
	}
	if filter.CourseCode != "" {
		conditions = append(conditions, fmt.Sprintf("at.course_code = $%d", len(args)+1))
		args = append(args, filter.CourseCode)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.full_name, g.grade_id"
	var grades []models.GradeDetail
	if err := r.db.SelectContext(ctx, &grades, query, args...); err != nil {
		return nil, fmt.Errorf("list grades: %w", err)
	}
	return grades, nil
}

// FindByID returns one grade row.
func (r *GradeRepository) FindByID(ctx context.Context, id int64) (*models.Grade, error) {
	var grade models.Grade
	if err := r.db.GetContext(ctx, &grade,
		`SELECT grade_id, enrolment_id, assessment_id, score FROM grade WHERE grade_id = $1`, id); err != nil {
		return nil, err
	}
	return &grade, nil
}

// Upsert inserts or overwrites the score for the (enrolment, assessment)
// pair and fills the row's generated ID.
func (r *GradeRepository) Upsert(ctx context.Context, grade *models.Grade) error {
	if err := r.db.GetContext(ctx, &grade.GradeID,
		`INSERT INTO grade (enrolment_id, assessment_id, score)
		VALUES ($1, $2, $3)
		ON CONFLICT (enrolment_id, assessment_id)
		DO UPDATE SET score = EXCLUDED.score
		RETURNING grade_id`,
		grade.EnrolmentID, grade.AssessmentID, grade.Score); err != nil {
		return fmt.Errorf("upsert grade: %w", err)
	}
	return nil
}

// Update partially rewrites a grade with COALESCE semantics.
// Returns sql.ErrNoRows when absent.
func (r *GradeRepository) Update(ctx context.Context, id int64, enrolmentID, assessmentID *int64, score *float64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE grade
		SET enrolment_id = COALESCE($1, enrolment_id),
			assessment_id = COALESCE($2, assessment_id),
			score = COALESCE($3, score)
		WHERE grade_id = $4`,
		enrolmentID, assessmentID, score, id)
	if err != nil {
		return fmt.Errorf("update grade: %w", err)
	}
	return requireAffected(res)
}

// Delete removes a grade row.
func (r *GradeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM grade WHERE grade_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete grade: %w", err)
	}
	return requireAffected(res)
}

// ComponentsForEnrolment returns every assessment type of the offering's
// course left-joined to the enrolment's grade rows, ordered by label.
// Ungraded components carry a nil score.
func (r *GradeRepository) ComponentsForEnrolment(ctx context.Context, enrolmentID, offeringID int64) ([]models.GradeComponent, error) {
	const query = `SELECT at.assessment_id, at.assessment_type, at.weight, g.score
		FROM class_offering co
		JOIN assessment_type at ON at.course_code = co.course_code
		LEFT JOIN grade g ON g.assessment_id = at.assessment_id AND g.enrolment_id = $1
		WHERE co.class_offering_id = $2
		ORDER BY at.assessment_type ASC`
	var components []models.GradeComponent
	if err := r.db.SelectContext(ctx, &components, query, enrolmentID, offeringID); err != nil {
		return nil, fmt.Errorf("grade components: %w", err)
	}
	return components, nil
}

// OfferingsForStudent returns every offering the student is or was enrolled
// in, ordered by term start date descending then course code ascending.
func (r *GradeRepository) OfferingsForStudent(ctx context.Context, studentID string) ([]models.StudentGradeSummaryRow, error) {
	const query = `SELECT e.enrolment_id, e.class_offering_id, co.course_code, c.course_name, t.term_id, t.term_label
		FROM enrolment e
		JOIN class_offering co ON co.class_offering_id = e.class_offering_id
		JOIN course c ON c.course_code = co.course_code
		JOIN term t ON t.term_id = co.term_id
		WHERE e.student_id = $1
		ORDER BY t.start_date DESC, co.course_code ASC`
	var rows []models.StudentGradeSummaryRow
	if err := r.db.SelectContext(ctx, &rows, query, studentID); err != nil {
		return nil, fmt.Errorf("offerings for student: %w", err)
	}
	return rows, nil
}

// GradebookRoster returns every enrolled student of the offering with the
// current score for one assessment, nil when ungraded, ordered by name.
func (r *GradeRepository) GradebookRoster(ctx context.Context, offeringID, assessmentID int64) ([]models.GradebookRow, error) {
	const query = `SELECT e.enrolment_id, s.student_id, p.full_name AS student_name, g.grade_id, g.score
		FROM enrolment e
		JOIN student s ON s.student_id = e.student_id
		JOIN person p ON p.person_id = s.person_id
		LEFT JOIN grade g ON g.enrolment_id = e.enrolment_id AND g.assessment_id = $1
		WHERE e.class_offering_id = $2
		ORDER BY p.full_name ASC`
	var roster []models.GradebookRow
	if err := r.db.SelectContext(ctx, &roster, query, assessmentID, offeringID); err != nil {
		return nil, fmt.Errorf("gradebook roster: %w", err)
	}
	return roster, nil
}
