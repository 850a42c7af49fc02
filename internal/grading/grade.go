package grading

import (
	"fmt"
	"math"
)

// GradePoint is a position on the 10-point ordinal grading scale.
// Zero marks a failed (U) subject.
type GradePoint int

const (
	GradeU     GradePoint = 0
	GradeC     GradePoint = 4
	GradeCPlus GradePoint = 5
	GradeB     GradePoint = 6
	GradeBPlus GradePoint = 7
	GradeA     GradePoint = 8
	GradeAPlus GradePoint = 9
	GradeO     GradePoint = 10
)

var gradeLetters = map[GradePoint]string{
	GradeO:     "O",
	GradeAPlus: "A+",
	GradeA:     "A",
	GradeBPlus: "B+",
	GradeB:     "B",
	GradeCPlus: "C+",
	GradeC:     "C",
	GradeU:     "U",
}

// Scale lists every valid grade point, best first.
func Scale() []GradePoint {
	return []GradePoint{GradeO, GradeAPlus, GradeA, GradeBPlus, GradeB, GradeCPlus, GradeC, GradeU}
}

// Valid reports whether g is one of the points on the scale.
func (g GradePoint) Valid() bool {
	_, ok := gradeLetters[g]
	return ok
}

// Passed reports whether the subject counts towards the average.
func (g GradePoint) Passed() bool {
	return g > 0
}

// Letter returns the letter grade; anything off the scale reads as U.
func (g GradePoint) Letter() string {
	if l, ok := gradeLetters[g]; ok {
		return l
	}
	return "U"
}

// Contribution is one subject's share of the SGPA numerator and denominator.
type Contribution struct {
	Weighted        float64 `json:"weighted"`
	CreditedCredits float64 `json:"credited_credits"`
}

// Evaluate computes the contribution of a subject worth credit credits graded
// gp. A failed subject drops out of both sums instead of scoring zero.
func Evaluate(gp GradePoint, credit float64) (Contribution, error) {
	if !(credit > 0) || math.IsInf(credit, 0) {
		return Contribution{}, fmt.Errorf("%w: %v", ErrInvalidCredit, credit)
	}
	if gp <= 0 {
		return Contribution{}, nil
	}
	return Contribution{
		Weighted:        float64(gp) * credit,
		CreditedCredits: credit,
	}, nil
}
