package service_test

import (
	"context"
	"slices"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/config"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/grading"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/service"
)

// inmemRegulations is an in-memory RegulationRepository.
type inmemRegulations struct {
	rows   []model.Regulation
	nextID int
}

func (r *inmemRegulations) List(_ context.Context, activeOnly bool) ([]model.Regulation, error) {
	out := []model.Regulation{}
	for _, row := range r.rows {
		if !activeOnly || row.IsActive {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *inmemRegulations) GetByID(_ context.Context, id int) (*model.Regulation, error) {
	for _, row := range r.rows {
		if row.ID == id {
			return &row, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *inmemRegulations) GetByRegulation(_ context.Context, reg grading.RegulationID) (*model.Regulation, error) {
	for _, row := range r.rows {
		if row.Regulation == reg {
			return &row, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *inmemRegulations) Create(_ context.Context, m *model.Regulation) error {
	r.nextID++
	m.ID = r.nextID
	r.rows = append(r.rows, *m)
	return nil
}

func (r *inmemRegulations) Update(_ context.Context, m *model.Regulation) error {
	for i := range r.rows {
		if r.rows[i].ID == m.ID {
			r.rows[i] = *m
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *inmemRegulations) Delete(_ context.Context, id int) error {
	i := slices.IndexFunc(r.rows, func(m model.Regulation) bool { return m.ID == id })
	if i < 0 {
		return pgx.ErrNoRows
	}
	r.rows = slices.Delete(r.rows, i, i+1)
	return nil
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func newRegulationService(t *testing.T) (*service.RegulationService, *inmemRegulations) {
	t.Helper()
	repo := &inmemRegulations{}
	svc := service.NewRegulationService(repo, nil, &config.Config{}, zerolog.Nop())

	ctx := context.Background()
	seed := []model.RegulationRequest{
		{Regulation: 21, StartBatchYear: 2021, EndBatchYear: intPtr(2024)},
		{Regulation: 25, StartBatchYear: 2025, EndBatchYear: intPtr(2028)},
		{Regulation: 29, StartBatchYear: 2029, EndBatchYear: intPtr(2032), IsActive: boolPtr(false)},
	}
	for _, req := range seed {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}
	return svc, repo
}

func TestRegulationService_CreateDefaultsNames(t *testing.T) {
	_, repo := newRegulationService(t)

	assert.Equal(t, "2021 Regulation", repo.rows[0].Name)
	assert.Equal(t, "21regulation", repo.rows[0].DisplayName)
	assert.True(t, repo.rows[0].IsActive)
	assert.False(t, repo.rows[2].IsActive)
}

func TestRegulationService_RejectsOverlappingActiveRange(t *testing.T) {
	svc, _ := newRegulationService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, model.RegulationRequest{Regulation: 27, StartBatchYear: 2027})
	assert.ErrorIs(t, err, service.ErrOverlappingRange)

	// inactive rows never collide
	_, err = svc.Create(ctx, model.RegulationRequest{Regulation: 27, StartBatchYear: 2027, IsActive: boolPtr(false)})
	assert.NoError(t, err)

	// updating a row in place does not collide with itself
	_, err = svc.Update(ctx, 2, model.RegulationRequest{Regulation: 25, StartBatchYear: 2025, EndBatchYear: intPtr(2029)})
	assert.NoError(t, err)

	_, err = svc.Update(ctx, 99, model.RegulationRequest{Regulation: 25, StartBatchYear: 2040})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestRegulationService_RegistryTakesPrecedence(t *testing.T) {
	svc, _ := newRegulationService(t)
	ctx := context.Background()

	// open-ended active range from 2040
	_, err := svc.Create(ctx, model.RegulationRequest{Regulation: 40, StartBatchYear: 2040})
	require.NoError(t, err)

	cases := map[string]grading.RegulationID{
		"2023-2027": 21, // registry
		"2026-2030": 25, // registry
		"2030-2034": 29, // inactive in registry, built-in table
		"2038-2042": 21, // built-in default
		"2045-2049": 40, // registry, open ended
	}
	for batch, want := range cases {
		got, err := svc.ResolveBatch(ctx, batch)
		require.NoError(t, err, batch)
		assert.Equal(t, want, got, batch)
	}

	_, err = svc.ResolveBatch(ctx, "batch")
	assert.ErrorIs(t, err, grading.ErrInvalidBatchFormat)
}

func TestRegulationService_ForBatch(t *testing.T) {
	svc, _ := newRegulationService(t)
	ctx := context.Background()

	res, err := svc.ForBatch(ctx, "2026-2030")
	require.NoError(t, err)
	assert.Equal(t, 2026, res.StartYear)
	assert.Equal(t, grading.Regulation25, res.Regulation.Regulation)

	_, err = svc.ForBatch(ctx, "2034-2038")
	assert.ErrorIs(t, err, service.ErrRegulationNotFound, "33 has no registry row")

	_, err = svc.ForBatch(ctx, "")
	assert.ErrorIs(t, err, grading.ErrInvalidBatchFormat)
}

func TestRegulationService_Delete(t *testing.T) {
	svc, repo := newRegulationService(t)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 1))
	assert.Len(t, repo.rows, 2)
	assert.ErrorIs(t, svc.Delete(ctx, 1), service.ErrNotFound)
}
