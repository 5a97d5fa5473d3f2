package models

// AssessmentType defines one gradable component of a course, weighted in
// [0,100]. Weights are not required to sum to 100 across a course.
type AssessmentType struct {
	AssessmentID   int64   `db:"assessment_id" json:"assessment_id"`
	CourseCode     string  `db:"course_code" json:"course_code"`
	AssessmentType string  `db:"assessment_type" json:"assessment_type"`
	Weight         float64 `db:"weight" json:"weight"`
}

// AssessmentTypeDetail adds the course name for listing views.
type AssessmentTypeDetail struct {
	AssessmentType
	CourseName *string `db:"course_name" json:"course_name,omitempty"`
}

// AssessmentTypeFilter narrows assessment type listings.
type AssessmentTypeFilter struct {
	CourseCode string
	Label      string
}
