package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
)

type fakeSubmissionRepo struct {
	bulkErr  error
	failUser string
	bulk     [][]model.Submission
	singles  []model.Submission
}

func (f *fakeSubmissionRepo) BulkInsert(_ context.Context, subs []model.Submission) error {
	if f.bulkErr != nil {
		return f.bulkErr
	}
	f.bulk = append(f.bulk, append([]model.Submission(nil), subs...))
	return nil
}

func (f *fakeSubmissionRepo) Insert(_ context.Context, s *model.Submission) error {
	if s.Username == f.failUser {
		return errors.New("constraint violation")
	}
	f.singles = append(f.singles, *s)
	return nil
}

func (f *fakeSubmissionRepo) ListPaginated(context.Context, model.SubmissionFilter) ([]model.Submission, int, error) {
	return nil, 0, nil
}

func (f *fakeSubmissionRepo) ListAll(context.Context, model.SubmissionFilter, int) ([]model.Submission, error) {
	return nil, nil
}

func newTestWorker(repo *fakeSubmissionRepo) (*SubmissionWorker, *[][]byte) {
	var requeued [][]byte
	w := NewSubmissionWorker(repo, nil, zerolog.Nop())
	w.requeue = func(_ context.Context, raw []byte) error {
		requeued = append(requeued, raw)
		return nil
	}
	return w, &requeued
}

func batchOf(users ...string) []model.Submission {
	out := make([]model.Submission, len(users))
	for i, u := range users {
		out[i] = model.Submission{Username: u, Average: "8.000", Grades: map[string]int{"A": 8}}
	}
	return out
}

func TestFlushSafe_BulkPath(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	w, requeued := newTestWorker(repo)

	w.flushSafe(context.Background(), batchOf("a", "b", "c"))

	require.Len(t, repo.bulk, 1)
	assert.Len(t, repo.bulk[0], 3)
	assert.Empty(t, repo.singles)
	assert.Empty(t, *requeued)
}

func TestFlushSafe_FallbackAndRequeue(t *testing.T) {
	repo := &fakeSubmissionRepo{bulkErr: errors.New("deadlock"), failUser: "b"}
	w, requeued := newTestWorker(repo)

	w.flushSafe(context.Background(), batchOf("a", "b", "c"))

	require.Len(t, repo.singles, 2)
	assert.Equal(t, "a", repo.singles[0].Username)
	assert.Equal(t, "c", repo.singles[1].Username)

	require.Len(t, *requeued, 1)
	var back model.Submission
	require.NoError(t, json.Unmarshal((*requeued)[0], &back))
	assert.Equal(t, "b", back.Username)
	assert.Equal(t, map[string]int{"A": 8}, back.Grades)
}

func TestFlushSafe_EmptyBatch(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	w, _ := newTestWorker(repo)

	w.flushSafe(context.Background(), nil)
	assert.Empty(t, repo.bulk)
}
