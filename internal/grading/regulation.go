// Package grading holds the grade-point arithmetic shared by every calculator
// endpoint: batch to regulation resolution, per-subject contributions, the
// blended-course tag and the rounded weighted average behind SGPA and CGPA.
//
// Everything here is pure and safe for concurrent use.
package grading

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// RegulationID identifies a curriculum rule generation by the two-digit year
// it was introduced in (21, 25, 29, 33, ...).
type RegulationID int

const (
	Regulation21 RegulationID = 21
	Regulation25 RegulationID = 25
	Regulation29 RegulationID = 29
	Regulation33 RegulationID = 33

	// DefaultRegulation applies to every start year outside the known ranges.
	DefaultRegulation = Regulation21
)

// OpenEnd marks a BatchRange that has no upper bound.
const OpenEnd = math.MaxInt32

// DisplayName renders the short label, e.g. "25regulation".
func (id RegulationID) DisplayName() string {
	if id == 0 {
		return ""
	}
	return fmt.Sprintf("%dregulation", int(id))
}

// FullName renders the long label, e.g. "2025 Regulation".
func (id RegulationID) FullName() string {
	if id == 0 {
		return ""
	}
	year := int(id)
	if year < 100 {
		year += 2000
	}
	return fmt.Sprintf("%d Regulation", year)
}

// BatchRange maps an inclusive range of batch start years to a regulation.
type BatchRange struct {
	Start      int          `json:"start"`
	End        int          `json:"end"`
	Regulation RegulationID `json:"regulation"`
}

// Contains reports whether year falls inside the range.
func (r BatchRange) Contains(year int) bool {
	return year >= r.Start && year <= r.End
}

// RangeTable is an ordered set of non-overlapping batch ranges plus the
// regulation used when no range matches.
type RangeTable struct {
	Ranges  []BatchRange
	Default RegulationID
}

// DefaultTable is the built-in batch year table.
var DefaultTable = RangeTable{
	Ranges: []BatchRange{
		{Start: 2025, End: 2028, Regulation: Regulation25},
		{Start: 2029, End: 2032, Regulation: Regulation29},
		{Start: 2033, End: 2036, Regulation: Regulation33},
	},
	Default: DefaultRegulation,
}

// NewRangeTable sorts ranges by start year and rejects inverted or
// overlapping ranges.
func NewRangeTable(def RegulationID, ranges ...BatchRange) (RangeTable, error) {
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b BatchRange) int { return a.Start - b.Start })

	for i, r := range sorted {
		if r.End < r.Start {
			return RangeTable{}, fmt.Errorf("%w: %d-%d ends before it starts", ErrInvalidRange, r.Start, r.End)
		}
		if r.Regulation <= 0 {
			return RangeTable{}, fmt.Errorf("%w: %d-%d has no regulation", ErrInvalidRange, r.Start, r.End)
		}
		if i > 0 && sorted[i-1].End >= r.Start {
			prev := sorted[i-1]
			return RangeTable{}, fmt.Errorf("%w: %d-%d overlaps %d-%d",
				ErrInvalidRange, prev.Start, prev.End, r.Start, r.End)
		}
	}
	return RangeTable{Ranges: sorted, Default: def}, nil
}

// Match returns the regulation of the range containing year, if any.
func (t RangeTable) Match(year int) (RegulationID, bool) {
	for _, r := range t.Ranges {
		if r.Contains(year) {
			return r.Regulation, true
		}
	}
	return 0, false
}

// Lookup returns the matching regulation or the table default.
func (t RangeTable) Lookup(year int) RegulationID {
	if id, ok := t.Match(year); ok {
		return id
	}
	return t.Default
}

// Resolve maps a batch string to a regulation using this table.
func (t RangeTable) Resolve(batch string) (RegulationID, error) {
	year, err := ParseStartYear(batch)
	if err != nil {
		return 0, err
	}
	return t.Lookup(year), nil
}

// ResolveRegulation maps a "<startYear>-<endYear>" batch to its regulation
// using the built-in table. Only the start year matters.
func ResolveRegulation(batch string) (RegulationID, error) {
	return DefaultTable.Resolve(batch)
}

// Resolver consults Override before falling back to Base. The service layer
// fills Override from the active rows of the regulation registry.
type Resolver struct {
	Override RangeTable
	Base     RangeTable
}

// Resolve maps batch to a regulation, preferring Override ranges.
func (r Resolver) Resolve(batch string) (RegulationID, error) {
	year, err := ParseStartYear(batch)
	if err != nil {
		return 0, err
	}
	if id, ok := r.Override.Match(year); ok {
		return id, nil
	}
	return r.Base.Lookup(year), nil
}

// ParseStartYear extracts the leading integer before the first '-'.
// Leading spaces and a '+' sign are skipped; anything after the digits is
// ignored.
func ParseStartYear(batch string) (int, error) {
	head, _, _ := strings.Cut(batch, "-")
	head = strings.TrimLeftFunc(head, unicode.IsSpace)
	head = strings.TrimPrefix(head, "+")

	n := 0
	for n < len(head) && head[n] >= '0' && head[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBatchFormat, batch)
	}

	// A digit run too long for int still parses; Atoi saturates it to
	// math.MaxInt, which falls outside every bounded range.
	year, err := strconv.Atoi(head[:n])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBatchFormat, batch)
	}
	return year, nil
}
