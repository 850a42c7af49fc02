package grading

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
)

// roundingScale keeps three decimal places.
const roundingScale = 1000

// WeightedValue is one (weight, value) pair of a weighted average.
type WeightedValue struct {
	Weight float64
	Value  float64
}

// Average is a weighted average already rounded to three decimals.
type Average float64

// String renders the average with exactly three decimals, e.g. "8.000".
func (a Average) String() string {
	return strconv.FormatFloat(float64(a), 'f', 3, 64)
}

// Float64 returns the rounded value.
func (a Average) Float64() float64 {
	return float64(a)
}

// Round3 rounds v to three decimals, halves away from zero.
func Round3(v float64) Average {
	return Average(math.Round(v*roundingScale) / roundingScale)
}

// WeightedAverage returns sum(w*v)/sum(w) rounded to three decimals.
//
// Pairs are summed in a canonical order so the result does not depend on the
// order of the input. An empty input or a zero total weight yields
// ErrZeroDenominator.
func WeightedAverage(pairs []WeightedValue) (Average, error) {
	for _, p := range pairs {
		if !isFinite(p.Weight) || !isFinite(p.Value) {
			return 0, ErrNonFinite
		}
		if p.Weight < 0 {
			return 0, fmt.Errorf("%w: %v", ErrNegativeWeight, p.Weight)
		}
	}

	sorted := slices.Clone(pairs)
	slices.SortFunc(sorted, func(a, b WeightedValue) int {
		if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})

	var numerator, denominator float64
	for _, p := range sorted {
		numerator += p.Weight * p.Value
		denominator += p.Weight
	}
	if denominator == 0 {
		return 0, ErrZeroDenominator
	}

	avg := numerator / denominator
	if !isFinite(avg) {
		return 0, ErrNonFinite
	}
	return Round3(avg), nil
}

// GradedCredit is a subject's credit weight and the grade point scored in it.
type GradedCredit struct {
	Credit     float64
	GradePoint GradePoint
}

// SGPAResult carries the per-subject contributions next to the average so
// reports can show credited credits without re-evaluating.
type SGPAResult struct {
	Contributions   []Contribution
	CreditedCredits float64
	WeightedSum     float64
	Average         Average
}

// SGPA evaluates every entry and averages the grade points of the passed
// subjects by credit. When every subject failed the contributions are still
// returned alongside ErrZeroDenominator.
func SGPA(entries []GradedCredit) (SGPAResult, error) {
	res := SGPAResult{Contributions: make([]Contribution, 0, len(entries))}
	pairs := make([]WeightedValue, 0, len(entries))

	for i, e := range entries {
		if !e.GradePoint.Valid() {
			return SGPAResult{}, fmt.Errorf("entry %d: %w: %d", i+1, ErrInvalidGradePoint, e.GradePoint)
		}
		c, err := Evaluate(e.GradePoint, e.Credit)
		if err != nil {
			return SGPAResult{}, fmt.Errorf("entry %d: %w", i+1, err)
		}

		res.Contributions = append(res.Contributions, c)
		res.CreditedCredits += c.CreditedCredits
		res.WeightedSum += c.Weighted
		if c.CreditedCredits > 0 {
			pairs = append(pairs, WeightedValue{Weight: c.CreditedCredits, Value: float64(e.GradePoint)})
		}
	}

	avg, err := WeightedAverage(pairs)
	if err != nil {
		return res, err
	}
	res.Average = avg
	return res, nil
}

// TermAverage is one completed semester: its SGPA and its credit total.
type TermAverage struct {
	Average float64 `json:"sgpa"`
	Credits float64 `json:"credits"`
}

// MaxGradePoint bounds any term average.
const MaxGradePoint = float64(GradeO)

func (t TermAverage) validate(i int) error {
	fail := func(reason string) error {
		return &InvalidTermError{Index: i, Average: t.Average, Credits: t.Credits, Reason: reason}
	}
	switch {
	case !isFinite(t.Average) || !isFinite(t.Credits):
		return fail("sgpa and credits must be numbers")
	case t.Average <= 0:
		return fail("sgpa must be greater than 0")
	case t.Average > MaxGradePoint:
		return fail("sgpa cannot be greater than 10")
	case t.Credits <= 0:
		return fail("credits must be greater than 0")
	}
	return nil
}

// CGPA validates every term before averaging the SGPAs by credits. One bad
// row rejects the whole input.
func CGPA(terms []TermAverage) (Average, error) {
	pairs := make([]WeightedValue, 0, len(terms))
	for i, t := range terms {
		if err := t.validate(i); err != nil {
			return 0, err
		}
		pairs = append(pairs, WeightedValue{Weight: t.Credits, Value: t.Average})
	}
	return WeightedAverage(pairs)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
