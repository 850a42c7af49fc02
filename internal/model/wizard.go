package model

import "github.com/Nithinhelloweb/CGPA-REACT-V1/internal/wizard"

// WizardAdvanceRequest carries the selection for the current step.
type WizardAdvanceRequest struct {
	Value string `json:"value" binding:"required,max=64"`
}

// WizardView is a wizard state plus the values a client needs to render it.
type WizardView struct {
	wizard.State
	Step           int      `json:"step"`
	Ready          bool     `json:"ready"`
	SemesterLabel  string   `json:"semester_label,omitempty"`
	RegulationName string   `json:"regulation_name,omitempty"`
	Options        []string `json:"options,omitempty"`
}
