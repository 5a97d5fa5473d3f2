package models

// Grade is one recorded score for an (enrolment, assessment) pair,
// unique on that pair.
type Grade struct {
	GradeID      int64   `db:"grade_id" json:"grade_id"`
	EnrolmentID  int64   `db:"enrolment_id" json:"enrolment_id"`
	AssessmentID *int64  `db:"assessment_id" json:"assessment_id,omitempty"`
	Score        float64 `db:"score" json:"score"`
}

// GradeDetail enriches the grade with assessment and student context.
type GradeDetail struct {
	Grade
	CourseCode      *string         `db:"course_code" json:"course_code,omitempty"`
	AssessmentLabel *string         `db:"assessment_label" json:"assessment_type,omitempty"`
	Weight          *float64        `db:"weight" json:"weight,omitempty"`
	StudentID       string          `db:"student_id" json:"student_id"`
	ClassOfferingID int64           `db:"class_offering_id" json:"class_offering_id"`
	EnrolmentStatus EnrolmentStatus `db:"enrolment_status" json:"enrolment_status"`
	StudentName     string          `db:"student_name" json:"student_name"`
	StudentEmail    string          `db:"student_email" json:"student_email"`
}

// GradeFilter narrows grade listings.
type GradeFilter struct {
	EnrolmentID     int64
	AssessmentID    int64
	ClassOfferingID int64
	CourseCode      string
}

// GradeComponent is one assessment type of a course left-joined to a
// student's grade row; Score is nil when the component is ungraded.
type GradeComponent struct {
	AssessmentID    int64    `db:"assessment_id" json:"assessment_id"`
	AssessmentLabel string   `db:"assessment_type" json:"assessment_type"`
	Weight          float64  `db:"weight" json:"weight"`
	Score           *float64 `db:"score" json:"score"`
	WeightedScore   *float64 `json:"weighted_score"`
}

// StudentCourseGrades is the gradebook detail for one student in one offering.
type StudentCourseGrades struct {
	StudentID       string           `json:"student_id"`
	ClassOfferingID int64            `json:"class_offering_id"`
	CourseCode      string           `json:"course_code"`
	CourseName      string           `json:"course_name"`
	TermLabel       string           `json:"term_label"`
	Components      []GradeComponent `json:"components"`
	TotalWeighted   float64          `json:"total_weighted"`
}

// StudentGradeSummaryRow is one offering in a student's dashboard rollup.
type StudentGradeSummaryRow struct {
	EnrolmentID     int64   `db:"enrolment_id" json:"enrolment_id"`
	ClassOfferingID int64   `db:"class_offering_id" json:"class_offering_id"`
	CourseCode      string  `db:"course_code" json:"course_code"`
	CourseName      string  `db:"course_name" json:"course_name"`
	TermID          int64   `db:"term_id" json:"term_id"`
	TermLabel       string  `db:"term_label" json:"term_name"`
	TotalWeighted   float64 `json:"total_weighted"`
}

// GradebookRow is one enrolled student with the current score for a single
// assessment; Score/GradeID are nil when ungraded.
type GradebookRow struct {
	EnrolmentID int64    `db:"enrolment_id" json:"enrolment_id"`
	StudentID   string   `db:"student_id" json:"student_id"`
	StudentName string   `db:"student_name" json:"student_name"`
	GradeID     *int64   `db:"grade_id" json:"grade_id,omitempty"`
	Score       *float64 `db:"score" json:"score"`
}
