package service

import "errors"

// Service-level errors mapped to response codes by the handlers.
var (
	ErrNotFound           = errors.New("not found")
	ErrRegulationNotFound = errors.New("regulation not found")
	ErrOverlappingRange   = errors.New("batch range overlaps an active regulation")
	ErrIncompleteGrades   = errors.New("grades missing for some subjects")
	ErrUnknownSubject     = errors.New("grade given for a subject outside the selection")
	ErrWizardNotFound     = errors.New("wizard not found")
)
