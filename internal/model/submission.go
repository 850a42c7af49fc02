package model

import "time"

// Submission records one calculated result. Grades are keyed by subject
// label; Average is the three-decimal text shown to the student.
type Submission struct {
	ID         int64          `json:"id"`
	Username   string         `json:"username"`
	Semester   string         `json:"semester"`
	Department string         `json:"department"`
	Grades     map[string]int `json:"grades"`
	Average    string         `json:"cgpa"`
	Batch      string         `json:"batch"`
	Regulation int            `json:"regulation"`
	CreatedAt  time.Time      `json:"created_at"`
}

// SubmissionFilter narrows the admin submission listing.
type SubmissionFilter struct {
	Username   string `form:"username"`
	Semester   string `form:"semester"`
	Department string `form:"department"`
	Batch      string `form:"batch"`
	Page       int    `form:"page" binding:"omitempty,gte=1"`
	PerPage    int    `form:"per_page" binding:"omitempty,gte=1,lte=100"`
}

// Normalize fills paging defaults.
func (f *SubmissionFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = 20
	}
}
