package service

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/grading"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
)

// SubjectCatalog loads the subjects a student grades.
type SubjectCatalog interface {
	ForSelection(ctx context.Context, semester, department, batch string) ([]model.Subject, grading.RegulationID, error)
}

// SubmissionRecorder stores a calculated result.
type SubmissionRecorder interface {
	Record(ctx context.Context, sub model.Submission) error
}

// CalculationService turns grade selections into SGPA and CGPA reports.
type CalculationService struct {
	catalog  SubjectCatalog
	recorder SubmissionRecorder
	log      zerolog.Logger
}

// NewCalculationService creates a new CalculationService.
func NewCalculationService(catalog SubjectCatalog, recorder SubmissionRecorder, log zerolog.Logger) *CalculationService {
	return &CalculationService{
		catalog:  catalog,
		recorder: recorder,
		log:      log.With().Str("component", "calculation_service").Logger(),
	}
}

// EvaluateSGPA builds the report for one semester without recording it.
// Every subject of the selection needs a grade and every grade needs a
// subject.
func (s *CalculationService) EvaluateSGPA(ctx context.Context, req model.SGPARequest) (*model.SGPAReport, error) {
	subjects, regulation, err := s.catalog.ForSelection(ctx, req.Semester, req.Department, req.Batch)
	if err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		return nil, fmt.Errorf("%w: no subjects for %s %s", ErrNotFound, req.Department, req.Semester)
	}

	known := make(map[string]struct{}, len(subjects))
	for _, sub := range subjects {
		known[strconv.Itoa(sub.ID)] = struct{}{}
	}
	var unknown []string
	for key := range req.Grades {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, fmt.Errorf("%w: %s", ErrUnknownSubject, strings.Join(unknown, ", "))
	}

	entries := make([]grading.GradedCredit, 0, len(subjects))
	var missing []string
	for _, sub := range subjects {
		gp, ok := req.Grades[strconv.Itoa(sub.ID)]
		if !ok {
			missing = append(missing, sub.Label)
			continue
		}
		entries = append(entries, grading.GradedCredit{Credit: sub.Credit, GradePoint: grading.GradePoint(gp)})
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrIncompleteGrades, strings.Join(missing, ", "))
	}

	res, err := grading.SGPA(entries)
	if err != nil {
		return nil, err
	}

	rows := make([]model.ReportRow, len(subjects))
	for i, sub := range subjects {
		gp := entries[i].GradePoint
		credited := "-"
		if gp.Passed() {
			credited = strconv.FormatFloat(sub.Credit, 'f', -1, 64)
		}
		blended := grading.IsBlended(sub.Label)
		display := sub.Label
		if blended {
			display = grading.DisplayLabel(sub.Label)
		}
		rows[i] = model.ReportRow{
			SubjectID:       sub.ID,
			Label:           sub.Label,
			DisplayLabel:    display,
			Blended:         blended,
			Credit:          sub.Credit,
			LetterGrade:     gp.Letter(),
			GradePoint:      int(gp),
			CreditedCredits: credited,
		}
	}

	return &model.SGPAReport{
		Username:       req.Username,
		Semester:       req.Semester,
		Department:     req.Department,
		Batch:          req.Batch,
		Regulation:     int(regulation),
		RegulationName: regulation.FullName(),
		Rows:           rows,
		TotalCredits:   res.CreditedCredits,
		SGPA:           res.Average.String(),
		Greeting:       grading.Greeting(res.Average),
		Celebrate:      grading.Celebrate(res.Average),
	}, nil
}

// CalculateSGPA evaluates the request and records the result. A recording
// failure is logged and does not fail the calculation.
func (s *CalculationService) CalculateSGPA(ctx context.Context, req model.SGPARequest) (*model.SGPAReport, error) {
	rep, err := s.EvaluateSGPA(ctx, req)
	if err != nil {
		return nil, err
	}

	grades := make(map[string]int, len(rep.Rows))
	for _, row := range rep.Rows {
		grades[row.Label] = row.GradePoint
	}
	sub := model.Submission{
		Username:   rep.Username,
		Semester:   rep.Semester,
		Department: rep.Department,
		Grades:     grades,
		Average:    rep.SGPA,
		Batch:      rep.Batch,
		Regulation: rep.Regulation,
	}
	if err := s.recorder.Record(ctx, sub); err != nil {
		s.log.Error().Err(err).Str("username", rep.Username).Msg("Failed to record submission")
	}
	return rep, nil
}

// CalculateCGPA combines per-semester averages weighted by credits.
func (s *CalculationService) CalculateCGPA(req model.CGPARequest) (*model.CGPAResult, error) {
	avg, err := grading.CGPA(req.Terms)
	if err != nil {
		return nil, err
	}

	var credits float64
	for _, t := range req.Terms {
		credits += t.Credits
	}
	return &model.CGPAResult{
		CGPA:         avg.String(),
		Terms:        len(req.Terms),
		TotalCredits: credits,
		Greeting:     grading.Greeting(avg),
		Celebrate:    grading.Celebrate(avg),
	}, nil
}
