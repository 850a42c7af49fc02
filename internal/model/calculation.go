package model

import "github.com/Nithinhelloweb/CGPA-REACT-V1/internal/grading"

// SGPARequest carries one semester's grades keyed by subject id.
type SGPARequest struct {
	Username   string         `json:"username" binding:"required,register"`
	Semester   string         `json:"semester" binding:"required,max=32"`
	Department string         `json:"department" binding:"required,max=32"`
	Batch      string         `json:"batch" binding:"required,batch"`
	Grades     map[string]int `json:"grades" binding:"required,min=1,dive,gradepoint"`
}

// ReportRow is one subject line of a grade report. CreditedCredits is the
// subject credit as text, or "-" when the subject was failed.
type ReportRow struct {
	SubjectID       int     `json:"subject_id"`
	Label           string  `json:"label"`
	DisplayLabel    string  `json:"display_label"`
	Blended         bool    `json:"blended"`
	Credit          float64 `json:"credit"`
	LetterGrade     string  `json:"letter_grade"`
	GradePoint      int     `json:"grade_point"`
	CreditedCredits string  `json:"credited_credits"`
}

// SGPAReport is the computed result of an SGPARequest.
type SGPAReport struct {
	Username       string      `json:"username"`
	Semester       string      `json:"semester"`
	Department     string      `json:"department"`
	Batch          string      `json:"batch"`
	Regulation     int         `json:"regulation"`
	RegulationName string      `json:"regulation_name"`
	Rows           []ReportRow `json:"rows"`
	TotalCredits   float64     `json:"total_credits"`
	SGPA           string      `json:"sgpa"`
	Greeting       string      `json:"greeting"`
	Celebrate      bool        `json:"celebrate"`
}

// CGPARequest carries the per-semester averages to combine.
type CGPARequest struct {
	Terms []grading.TermAverage `json:"terms" binding:"required,min=1,max=20"`
}

// CGPAResult is the combined average.
type CGPAResult struct {
	CGPA         string  `json:"cgpa"`
	Terms        int     `json:"terms"`
	TotalCredits float64 `json:"total_credits"`
	Greeting     string  `json:"greeting"`
	Celebrate    bool    `json:"celebrate"`
}
