// Package report renders grade reports and submission exports as xlsx
// workbooks.
package report

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
)

const (
	gradeSheet      = "Grade Report"
	submissionSheet = "Submissions"
)

// GradeReport renders one SGPA report: a header block, one row per subject,
// a total credits row and the SGPA.
func GradeReport(r *model.SGPAReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", gradeSheet); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	header := [][]any{
		{"Register Number", r.Username},
		{"Department", r.Department},
		{"Semester", r.Semester},
		{"Batch", r.Batch},
		{"Regulation", r.RegulationName},
	}
	row := 1
	for _, h := range header {
		if err := setRow(f, gradeSheet, row, h); err != nil {
			return nil, err
		}
		row++
	}
	row++

	tableStart := row
	if err := setRow(f, gradeSheet, row, []any{"Subject", "Grade", "Grade Point", "Credits"}); err != nil {
		return nil, err
	}
	row++
	for _, rr := range r.Rows {
		if err := setRow(f, gradeSheet, row, []any{rr.DisplayLabel, rr.LetterGrade, rr.GradePoint, rr.CreditedCredits}); err != nil {
			return nil, err
		}
		row++
	}
	if err := setRow(f, gradeSheet, row, []any{"Total Credits", "", "", formatCredits(r.TotalCredits)}); err != nil {
		return nil, err
	}
	row++
	if err := setRow(f, gradeSheet, row, []any{"SGPA", r.SGPA}); err != nil {
		return nil, err
	}

	if err := boldRow(f, gradeSheet, tableStart, 4, bold); err != nil {
		return nil, err
	}
	if err := boldRow(f, gradeSheet, row, 2, bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(gradeSheet, "A", "A", 48); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(gradeSheet, "B", "D", 14); err != nil {
		return nil, err
	}
	return write(f)
}

// Submissions renders the admin export, one submission per row. Grades are
// spread into one column per distinct subject label.
func Submissions(subs []model.Submission) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", submissionSheet); err != nil {
		return nil, err
	}

	labels := subjectLabels(subs)
	header := []any{"Register Number", "Department", "Semester", "Batch", "Regulation", "SGPA", "Submitted At"}
	for _, l := range labels {
		header = append(header, l)
	}
	if err := setRow(f, submissionSheet, 1, header); err != nil {
		return nil, err
	}

	for i, s := range subs {
		vals := []any{s.Username, s.Department, s.Semester, s.Batch, s.Regulation, s.Average,
			s.CreatedAt.UTC().Format("2006-01-02 15:04:05")}
		for _, l := range labels {
			if gp, ok := s.Grades[l]; ok {
				vals = append(vals, gp)
			} else {
				vals = append(vals, "")
			}
		}
		if err := setRow(f, submissionSheet, i+2, vals); err != nil {
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := boldRow(f, submissionSheet, 1, len(header), bold); err != nil {
		return nil, err
	}
	if err := f.SetPanes(submissionSheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return nil, err
	}
	return write(f)
}

func subjectLabels(subs []model.Submission) []string {
	seen := map[string]struct{}{}
	var labels []string
	for _, s := range subs {
		for l := range s.Grades {
			if _, ok := seen[l]; !ok {
				seen[l] = struct{}{}
				labels = append(labels, l)
			}
		}
	}
	slices.Sort(labels)
	return labels
}

func setRow(f *excelize.File, sheet string, row int, vals []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &vals)
}

func boldRow(f *excelize.File, sheet string, row, cols, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, style)
}

func write(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func formatCredits(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
