package model

import (
	"time"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/grading"
)

// Regulation is a registry row mapping a batch start-year range to a
// regulation id. A nil EndBatchYear leaves the range open.
type Regulation struct {
	ID             int                  `json:"id"`
	Regulation     grading.RegulationID `json:"regulation"`
	Name           string               `json:"name"`
	DisplayName    string               `json:"display_name"`
	StartBatchYear int                  `json:"start_batch_year"`
	EndBatchYear   *int                 `json:"end_batch_year"`
	IsActive       bool                 `json:"is_active"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// Range converts the row into a resolver range.
func (r *Regulation) Range() grading.BatchRange {
	end := grading.OpenEnd
	if r.EndBatchYear != nil {
		end = *r.EndBatchYear
	}
	return grading.BatchRange{Start: r.StartBatchYear, End: end, Regulation: r.Regulation}
}

// RegulationRequest is the payload for creating or updating a registry row.
// Name and DisplayName default to the standard labels when empty.
type RegulationRequest struct {
	Regulation     int    `json:"regulation" binding:"required,gt=0,lt=10000"`
	Name           string `json:"name" binding:"omitempty,max=100"`
	DisplayName    string `json:"display_name" binding:"omitempty,max=100"`
	StartBatchYear int    `json:"start_batch_year" binding:"required,gte=1900,lte=9999"`
	EndBatchYear   *int   `json:"end_batch_year" binding:"omitempty,gtefield=StartBatchYear,lte=9999"`
	IsActive       *bool  `json:"is_active"`
}

// RegulationForBatch is the answer to a batch lookup.
type RegulationForBatch struct {
	Batch      string      `json:"batch"`
	StartYear  int         `json:"start_year"`
	Regulation *Regulation `json:"regulation"`
}
