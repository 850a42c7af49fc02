// Package wizard models the four-step selection flow a student walks through
// before grading: batch, department, semester, then grading. A State is a
// plain value; transitions return a new State and never mutate the receiver.
package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/grading"
)

// Stage is the step the wizard is waiting on.
type Stage string

const (
	StageBatch      Stage = "batch"
	StageDepartment Stage = "department"
	StageSemester   Stage = "semester"
	StageGrading    Stage = "grading"
)

var order = []Stage{StageBatch, StageDepartment, StageSemester, StageGrading}

// Transition errors.
var (
	ErrInvalidStep       = errors.New("invalid wizard step")
	ErrUnknownDepartment = errors.New("unknown department")
	ErrInvalidSemester   = errors.New("invalid semester")
)

// Rules supplies the lookups a transition needs. Both are required.
type Rules struct {
	// ResolveRegulation maps a batch to its regulation.
	ResolveRegulation func(batch string) (grading.RegulationID, error)
	// Department returns the canonical department name and its semester
	// count for a user-supplied code or name.
	Department func(value string) (name string, maxSemesters int, ok bool)
}

// State is one student's progress through the selection flow.
type State struct {
	ID           string               `json:"id"`
	Stage        Stage                `json:"stage"`
	Batch        string               `json:"batch,omitempty"`
	Regulation   grading.RegulationID `json:"regulation,omitempty"`
	Department   string               `json:"department,omitempty"`
	MaxSemesters int                  `json:"max_semesters,omitempty"`
	Semester     int                  `json:"semester,omitempty"`
}

// New starts a wizard at the batch stage.
func New(id string) State {
	return State{ID: id, Stage: StageBatch}
}

// Step returns the 1-based position of the current stage.
func (s State) Step() int {
	for i, st := range order {
		if st == s.Stage {
			return i + 1
		}
	}
	return 0
}

// Ready reports whether every selection has been made.
func (s State) Ready() bool {
	return s.Stage == StageGrading
}

// SemesterLabel renders the semester the way the subject catalog stores it.
func (s State) SemesterLabel() string {
	if s.Semester == 0 {
		return ""
	}
	return SemesterLabel(s.Semester)
}

// SemesterLabel renders n as "Sem-n".
func SemesterLabel(n int) string {
	return fmt.Sprintf("Sem-%d", n)
}

// Advance records value for the current stage and moves to the next one.
func (s State) Advance(value string, rules Rules) (State, error) {
	value = strings.TrimSpace(value)
	next := s

	switch s.Stage {
	case StageBatch:
		reg, err := rules.ResolveRegulation(value)
		if err != nil {
			return s, err
		}
		next.Batch = value
		next.Regulation = reg
		next.Stage = StageDepartment

	case StageDepartment:
		name, maxSem, ok := rules.Department(value)
		if !ok {
			return s, fmt.Errorf("%w: %q", ErrUnknownDepartment, value)
		}
		next.Department = name
		next.MaxSemesters = maxSem
		next.Stage = StageSemester

	case StageSemester:
		n, err := ParseSemester(value)
		if err != nil {
			return s, err
		}
		if n > s.MaxSemesters {
			return s, fmt.Errorf("%w: %s has %d semesters", ErrInvalidSemester, s.Department, s.MaxSemesters)
		}
		next.Semester = n
		next.Stage = StageGrading

	default:
		return s, fmt.Errorf("%w: nothing left to select at %s", ErrInvalidStep, s.Stage)
	}
	return next, nil
}

// Back undoes the most recent selection.
func (s State) Back() (State, error) {
	prev := s
	switch s.Stage {
	case StageDepartment:
		prev.Batch, prev.Regulation = "", 0
		prev.Stage = StageBatch
	case StageSemester:
		prev.Department, prev.MaxSemesters = "", 0
		prev.Stage = StageDepartment
	case StageGrading:
		prev.Semester = 0
		prev.Stage = StageSemester
	default:
		return s, fmt.Errorf("%w: already at the first step", ErrInvalidStep)
	}
	return prev, nil
}

// ParseSemester accepts "3", "Sem-3" and "semester-3".
func ParseSemester(value string) (int, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	v = strings.TrimPrefix(v, "semester-")
	v = strings.TrimPrefix(v, "sem-")

	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSemester, value)
	}
	return n, nil
}
