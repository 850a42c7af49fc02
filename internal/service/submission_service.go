package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/config"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/report"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/repository"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/response"
)

// MaxExportRows caps a single spreadsheet export.
const MaxExportRows = 10000

// SubmissionService records calculated results and serves them to admins.
// Writes go through a Redis queue drained by worker.SubmissionWorker.
type SubmissionService struct {
	repo repository.SubmissionRepository
	rdb  *redis.Client
	log  zerolog.Logger
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(repo repository.SubmissionRepository, rdb *redis.Client, log zerolog.Logger) *SubmissionService {
	return &SubmissionService{
		repo: repo,
		rdb:  rdb,
		log:  log.With().Str("component", "submission_service").Logger(),
	}
}

// Record queues a submission for persistence and announces it on the live
// feed channel.
func (s *SubmissionService) Record(ctx context.Context, sub model.Submission) error {
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}
	raw, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("marshal submission: %w", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.RPush(ctx, config.WorkerKey.PersistSubmissionsQueue, raw)
	pipe.Publish(ctx, config.CacheKey.SubmissionFeedChannel(), raw)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("queue submission: %w", err)
	}
	return nil
}

// List returns one page of submissions.
func (s *SubmissionService) List(ctx context.Context, f model.SubmissionFilter) ([]model.Submission, *response.Pagination, error) {
	f.Normalize()
	subs, total, err := s.repo.ListPaginated(ctx, f)
	if err != nil {
		return nil, nil, err
	}
	return subs, response.NewPagination(f.Page, f.PerPage, total), nil
}

// Export renders the matching submissions as a workbook.
func (s *SubmissionService) Export(ctx context.Context, f model.SubmissionFilter) ([]byte, error) {
	subs, err := s.repo.ListAll(ctx, f, MaxExportRows)
	if err != nil {
		return nil, err
	}
	if len(subs) == MaxExportRows {
		s.log.Warn().Int("limit", MaxExportRows).Msg("Submission export truncated")
	}
	return report.Submissions(subs)
}

// Subscribe opens the live submission feed. The caller closes it.
func (s *SubmissionService) Subscribe(ctx context.Context) *redis.PubSub {
	return s.rdb.Subscribe(ctx, config.CacheKey.SubmissionFeedChannel())
}
