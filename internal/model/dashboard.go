package model

// DepartmentStat aggregates submissions of one department.
type DepartmentStat struct {
	Department  string   `json:"department"`
	Submissions int      `json:"submissions"`
	AverageSGPA *float64 `json:"average_sgpa"`
}

// Dashboard consolidates all metrics for the admin dashboard.
type Dashboard struct {
	TotalSubjects     int              `json:"total_subjects"`
	TotalRegulations  int              `json:"total_regulations"`
	ActiveRegulations int              `json:"active_regulations"`
	TotalSubmissions  int              `json:"total_submissions"`
	ByDepartment      []DepartmentStat `json:"by_department"`
	Latest            []Submission     `json:"latest_submissions"`
}
