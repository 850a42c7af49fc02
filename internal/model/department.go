package model

import "strings"

// Department is an entry of the static department directory. Name is the
// spelling the subject catalog uses.
type Department struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	FullName     string `json:"full_name"`
	MaxSemesters int    `json:"max_semesters"`
}

// Departments lists every department offered, in display order.
var Departments = []Department{
	{"cse", "CSE", "Computer Science and Engineering", 8},
	{"aids", "AIDS", "Artificial Intelligence and Data Science", 8},
	{"aiml", "AIML", "Artificial Intelligence and Machine Learning", 8},
	{"ece", "ECE", "Electronics and Communication Engineering", 8},
	{"eee", "EEE", "Electrical and Electronics Engineering", 8},
	{"it", "IT", "Information Technology", 8},
	{"cyber", "CYBER", "Cyber Security", 8},
	{"vlsi", "VLSI", "VLSI Design and Technology", 8},
	{"ft", "FT", "Fashion Technology", 8},
	{"bt", "BT", "Biotechnology", 5},
	{"mech", "MECH", "Mechanical Engineering", 8},
	{"agri", "AGRI", "Agricultural Engineering", 5},
	{"civil", "CIVIL", "Civil Engineering", 5},
	{"bme", "BME", "Biomedical Engineering", 5},
}

// LookupDepartment matches a code or catalog name, ignoring case and
// surrounding space.
func LookupDepartment(value string) (Department, bool) {
	v := strings.TrimSpace(value)
	for _, d := range Departments {
		if strings.EqualFold(d.Code, v) || strings.EqualFold(d.Name, v) {
			return d, true
		}
	}
	return Department{}, false
}
