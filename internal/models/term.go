package models

import "time"

// Term is an academic period.
type Term struct {
	TermID    int64     `db:"term_id" json:"term_id"`
	TermLabel string    `db:"term_label" json:"term_label"`
	StartDate time.Time `db:"start_date" json:"start_date"`
	EndDate   time.Time `db:"end_date" json:"end_date"`
}
