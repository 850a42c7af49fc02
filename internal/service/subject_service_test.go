package service_test

import (
	"context"
	"strings"
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

// inmemSubjects is an in-memory SubjectRepository with the same matching
// rules as the SQL one.
type inmemSubjects struct {
	rows    []model.Subject
	lastReq model.SubjectFilter
}

func fold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func (r *inmemSubjects) List(_ context.Context, f model.SubjectFilter) ([]model.Subject, error) {
	r.lastReq = f
	out := []model.Subject{}
	for _, s := range r.rows {
		if (f.Semester == "" || fold(s.Semester, f.Semester)) &&
			(f.Department == "" || fold(s.Department, f.Department)) &&
			(f.Batch == "" || s.Batch == strings.TrimSpace(f.Batch)) &&
			(f.Regulation == 0 || s.Regulation == f.Regulation) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *inmemSubjects) ListBatches(_ context.Context, _ model.BatchFilter) ([]string, error) {
	return []string{"2025-2029", "2024-2028"}, nil
}

func (r *inmemSubjects) GetByID(_ context.Context, id int) (*model.Subject, error) {
	for _, s := range r.rows {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *inmemSubjects) Create(_ context.Context, s *model.Subject) error {
	s.ID = len(r.rows) + 1
	r.rows = append(r.rows, *s)
	return nil
}

func (r *inmemSubjects) Update(_ context.Context, s *model.Subject) error {
	for i := range r.rows {
		if r.rows[i].ID == s.ID {
			r.rows[i] = *s
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *inmemSubjects) Delete(_ context.Context, id int) error {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

type builtInResolver struct{}

func (builtInResolver) ResolveBatch(_ context.Context, batch string) (grading.RegulationID, error) {
	return grading.ResolveRegulation(batch)
}

func newSubjectService(t *testing.T) (*service.SubjectService, *inmemSubjects) {
	t.Helper()
	repo := &inmemSubjects{}
	svc := service.NewSubjectService(repo, builtInResolver{}, nil, &config.Config{}, zerolog.Nop())

	for _, req := range []model.SubjectRequest{
		{Label: "Algorithms (21IT301)", Credit: 3, Semester: "Sem-3", Department: "IT", Batch: "2024-2028", Regulation: 21},
		{Label: "Cloud Lab (21IT321) ", Credit: 4, Semester: " Sem-3", Department: "IT", Batch: "2024-2028", Regulation: 21},
		{Label: "Web Lab (25IT42)", Credit: 2, Semester: "Sem-3", Department: "IT", Batch: "2025-2029", Regulation: 25},
	} {
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	}
	return svc, repo
}

func TestSubjectService_ListDerivesRegulation(t *testing.T) {
	svc, repo := newSubjectService(t)

	subs, err := svc.List(context.Background(), model.SubjectFilter{Semester: "sem-3 ", Department: "it", Batch: "2024-2028"})
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, 21, repo.lastReq.Regulation)
	assert.False(t, subs[0].Blended)
	assert.True(t, subs[1].Blended)
	assert.Equal(t, "Cloud Lab (21IT321)", subs[1].Label, "labels are trimmed on write")

	subs, err = svc.List(context.Background(), model.SubjectFilter{Semester: "Sem-3", Department: "IT", Batch: "2025-2029"})
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, 25, repo.lastReq.Regulation)

	_, err = svc.List(context.Background(), model.SubjectFilter{Batch: "twenty"})
	assert.ErrorIs(t, err, grading.ErrInvalidBatchFormat)
}

func TestSubjectService_ExplicitRegulationWins(t *testing.T) {
	svc, repo := newSubjectService(t)

	subs, err := svc.List(context.Background(), model.SubjectFilter{Batch: "2024-2028", Regulation: 25})
	require.NoError(t, err)
	assert.Empty(t, subs)
	assert.Equal(t, 25, repo.lastReq.Regulation)
}

func TestSubjectService_ForSelection(t *testing.T) {
	svc, _ := newSubjectService(t)

	subs, reg, err := svc.ForSelection(context.Background(), "Sem-3", "IT", "2025-2029")
	require.NoError(t, err)
	assert.Equal(t, grading.Regulation25, reg)
	require.Len(t, subs, 1)
	assert.True(t, subs[0].Blended)
}

func TestSubjectService_UpdateAndDeleteMissing(t *testing.T) {
	svc, _ := newSubjectService(t)
	ctx := context.Background()

	req := model.SubjectRequest{Label: "Maths (21MA301)", Credit: 4, Semester: "Sem-3", Department: "IT", Batch: "2024-2028", Regulation: 21}
	updated, err := svc.Update(ctx, 1, req)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.ID)

	_, err = svc.Update(ctx, 42, req)
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 42), service.ErrNotFound)
	_, err = svc.GetByID(ctx, 42)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
