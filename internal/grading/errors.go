package grading

import (
	"errors"
	"fmt"
)

// Calculation errors. Callers match them with errors.Is; none of them is fatal.
var (
	ErrInvalidBatchFormat = errors.New("batch has no parseable start year")
	ErrZeroDenominator    = errors.New("total weight is zero, average cannot be calculated")
	ErrInvalidCGPAInput   = errors.New("invalid cgpa input")
	ErrInvalidGradePoint  = errors.New("grade point is not on the grading scale")
	ErrInvalidCredit      = errors.New("credit must be a positive finite number")
	ErrNegativeWeight     = errors.New("weight must not be negative")
	ErrNonFinite          = errors.New("average input is not a finite number")
	ErrInvalidRange       = errors.New("invalid batch range")
)

// InvalidTermError reports the first term that failed CGPA validation.
// The whole calculation is rejected when one is returned.
type InvalidTermError struct {
	Index   int
	Average float64
	Credits float64
	Reason  string
}

func (e *InvalidTermError) Error() string {
	return fmt.Sprintf("term %d: %s", e.Index+1, e.Reason)
}

func (e *InvalidTermError) Unwrap() error {
	return ErrInvalidCGPAInput
}
