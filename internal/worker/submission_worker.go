package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/config"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/repository"
)

const (
	SubmissionBatchSize    = 50
	SubmissionBatchTimeout = 2 * time.Second
	SubmissionPollTimeout  = 1 * time.Second
)

// SubmissionWorker drains the submission queue into PostgreSQL in batches.
type SubmissionWorker struct {
	repo    repository.SubmissionRepository
	rdb     *redis.Client
	log     zerolog.Logger
	requeue func(ctx context.Context, raw []byte) error
}

func NewSubmissionWorker(repo repository.SubmissionRepository, rdb *redis.Client, log zerolog.Logger) *SubmissionWorker {
	w := &SubmissionWorker{
		repo: repo,
		rdb:  rdb,
		log:  log.With().Str("component", "submission_worker").Logger(),
	}
	w.requeue = func(ctx context.Context, raw []byte) error {
		return w.rdb.RPush(ctx, config.WorkerKey.PersistSubmissionsQueue, raw).Err()
	}
	return w
}

// ----------------------------------------------------------------
// Worker loop with batching
// ----------------------------------------------------------------

func (w *SubmissionWorker) Start(ctx context.Context) {
	w.log.Info().Msg("SubmissionWorker started")

	batch := make([]model.Submission, 0, SubmissionBatchSize)
	lastFlush := time.Now()

	for {
		if len(batch) > 0 &&
			(len(batch) >= SubmissionBatchSize || time.Since(lastFlush) >= SubmissionBatchTimeout) {

			w.flushSafe(ctx, batch)
			batch = batch[:0]
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.log.Info().Int("pending", len(batch)).Msg("Shutdown requested. Flushing remaining batch...")
			w.flushSafe(context.Background(), batch)
			return

		default:
			item, err := w.rdb.BLPop(ctx, SubmissionPollTimeout, config.WorkerKey.PersistSubmissionsQueue).Result()
			if err != nil {
				if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}
			if len(item) < 2 {
				continue
			}

			var sub model.Submission
			if err := json.Unmarshal([]byte(item[1]), &sub); err != nil {
				w.log.Error().Err(err).Msg("Invalid JSON payload")
				continue
			}
			if sub.CreatedAt.IsZero() {
				sub.CreatedAt = time.Now().UTC()
			}
			batch = append(batch, sub)
		}
	}
}

// ----------------------------------------------------------------
// Bulk insert with per-row fallback
// ----------------------------------------------------------------

func (w *SubmissionWorker) flushSafe(ctx context.Context, batch []model.Submission) {
	if len(batch) == 0 {
		return
	}

	err := w.repo.BulkInsert(ctx, batch)
	if err == nil {
		w.log.Debug().Int("count", len(batch)).Msg("Submissions persisted")
		return
	}
	w.log.Warn().Err(err).Int("count", len(batch)).Msg("bulk submission insert failed, using fallback")

	for i := range batch {
		sub := batch[i]
		if err := w.repo.Insert(ctx, &sub); err != nil {
			w.log.Error().Err(err).Str("username", sub.Username).Msg("single insert failed, requeueing")
			raw, _ := json.Marshal(sub)
			if err := w.requeue(ctx, raw); err != nil {
				w.log.Error().Err(err).Str("username", sub.Username).Msg("requeue failed, submission dropped")
			}
		}
	}
}
