package grading_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/grading"
)

func TestResolveRegulation_Examples(t *testing.T) {
	cases := []struct {
		batch string
		want  grading.RegulationID
	}{
		{"2025-2029", 25},
		{"2029-2033", 29},
		{"2021-2025", 21},
		{"2024-2028", 21},
		{"2033-2037", 33},
		{"2037-2041", 21},
		{"1999-2003", 21},
		{"99999999999999999999-1", 21},
	}
	for _, tc := range cases {
		t.Run(tc.batch, func(t *testing.T) {
			got, err := grading.ResolveRegulation(tc.batch)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Every start year from 2015 to 2045 against the built-in table.
func TestResolveRegulation_BoundaryMatrix(t *testing.T) {
	want := func(year int) grading.RegulationID {
		switch {
		case year >= 2025 && year <= 2028:
			return 25
		case year >= 2029 && year <= 2032:
			return 29
		case year >= 2033 && year <= 2036:
			return 33
		default:
			return 21
		}
	}

	for year := 2015; year <= 2045; year++ {
		batch := fmt.Sprintf("%d-%d", year, year+4)
		got, err := grading.ResolveRegulation(batch)
		require.NoError(t, err, batch)
		assert.Equal(t, want(year), got, batch)
	}

	edges := map[int]grading.RegulationID{
		2024: 21, 2025: 25, 2028: 25, 2029: 29, 2032: 29, 2033: 33,
		2036: 33, // the 2033-2036 range is inclusive; 2036 is not a default-21 year
		2037: 21,
	}
	for year, id := range edges {
		got, err := grading.ResolveRegulation(fmt.Sprintf("%d-9999", year))
		require.NoError(t, err)
		assert.Equal(t, id, got, "start year %d", year)
	}
}

func TestResolveRegulation_IgnoresEndYear(t *testing.T) {
	base, err := grading.ResolveRegulation("2026-2030")
	require.NoError(t, err)

	for _, batch := range []string{"2026-2000", "2026-", "2026", "2026-abc", "2026-2030-2034", " 2026-2030", "+2026-1"} {
		got, err := grading.ResolveRegulation(batch)
		require.NoError(t, err, batch)
		assert.Equal(t, base, got, batch)
	}
}

func TestResolveRegulation_Unparseable(t *testing.T) {
	for _, batch := range []string{"not-a-batch", "", "-2025", "abc2025-2029", "   ", "--"} {
		_, err := grading.ResolveRegulation(batch)
		require.Error(t, err, batch)
		assert.True(t, errors.Is(err, grading.ErrInvalidBatchFormat), batch)
	}
}

func TestParseStartYear_OverlongDigitRun(t *testing.T) {
	year, err := grading.ParseStartYear("99999999999999999999-1")
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, year)
}

func TestParseStartYear_TrailingText(t *testing.T) {
	year, err := grading.ParseStartYear("2027abc-2031")
	require.NoError(t, err)
	assert.Equal(t, 2027, year)
}

func TestRegulationNames(t *testing.T) {
	assert.Equal(t, "21regulation", grading.Regulation21.DisplayName())
	assert.Equal(t, "2025 Regulation", grading.Regulation25.FullName())
	assert.Equal(t, "2033 Regulation", grading.Regulation33.FullName())
	assert.Equal(t, "2040 Regulation", grading.RegulationID(2040).FullName())
	assert.Empty(t, grading.RegulationID(0).DisplayName())
	assert.Empty(t, grading.RegulationID(0).FullName())
}

func TestNewRangeTable(t *testing.T) {
	table, err := grading.NewRangeTable(21,
		grading.BatchRange{Start: 2029, End: 2032, Regulation: 29},
		grading.BatchRange{Start: 2021, End: 2024, Regulation: 21},
	)
	require.NoError(t, err)
	require.Len(t, table.Ranges, 2)
	assert.Equal(t, 2021, table.Ranges[0].Start, "ranges are sorted by start year")

	_, err = grading.NewRangeTable(21,
		grading.BatchRange{Start: 2021, End: 2025, Regulation: 21},
		grading.BatchRange{Start: 2025, End: 2028, Regulation: 25},
	)
	assert.ErrorIs(t, err, grading.ErrInvalidRange)

	_, err = grading.NewRangeTable(21, grading.BatchRange{Start: 2030, End: 2029, Regulation: 29})
	assert.ErrorIs(t, err, grading.ErrInvalidRange)

	_, err = grading.NewRangeTable(21, grading.BatchRange{Start: 2030, End: 2031})
	assert.ErrorIs(t, err, grading.ErrInvalidRange)
}

func TestResolver_OverrideTakesPrecedence(t *testing.T) {
	override, err := grading.NewRangeTable(0,
		grading.BatchRange{Start: 2024, End: 2026, Regulation: 25},
		grading.BatchRange{Start: 2040, End: grading.OpenEnd, Regulation: 40},
	)
	require.NoError(t, err)
	r := grading.Resolver{Override: override, Base: grading.DefaultTable}

	cases := map[string]grading.RegulationID{
		"2024-2028": 25, // override
		"2027-2031": 25, // base
		"2030-2034": 29, // base
		"2038-2042": 21, // base default
		"2051-2055": 40, // open-ended override
	}
	for batch, want := range cases {
		got, err := r.Resolve(batch)
		require.NoError(t, err, batch)
		assert.Equal(t, want, got, batch)
	}

	_, err = r.Resolve("n/a")
	assert.ErrorIs(t, err, grading.ErrInvalidBatchFormat)
}

func TestResolver_EmptyOverrideMatchesBuiltIn(t *testing.T) {
	r := grading.Resolver{Base: grading.DefaultTable}
	for year := 2018; year <= 2040; year++ {
		batch := fmt.Sprintf("%d-%d", year, year+4)
		a, errA := r.Resolve(batch)
		b, errB := grading.ResolveRegulation(batch)
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, b, a, batch)
	}
}
