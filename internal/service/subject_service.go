package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/config"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/grading"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/repository"
)

// BatchResolver maps a batch string to its regulation.
type BatchResolver interface {
	ResolveBatch(ctx context.Context, batch string) (grading.RegulationID, error)
}

// SubjectService serves the subject catalog.
type SubjectService struct {
	repo     repository.SubjectRepository
	resolver BatchResolver
	cache    *catalogCache
	log      zerolog.Logger
}

// NewSubjectService creates a new SubjectService. rdb may be nil.
func NewSubjectService(
	repo repository.SubjectRepository,
	resolver BatchResolver,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) *SubjectService {
	log = log.With().Str("component", "subject_service").Logger()
	return &SubjectService{
		repo:     repo,
		resolver: resolver,
		cache:    newCatalogCache(rdb, cfg.CatalogCacheTTL, log),
		log:      log,
	}
}

// List returns the subjects matching f, each tagged with its blended flag.
// A zero regulation is derived from the batch when one is given.
func (s *SubjectService) List(ctx context.Context, f model.SubjectFilter) ([]model.Subject, error) {
	if f.Regulation == 0 && f.Batch != "" {
		id, err := s.resolver.ResolveBatch(ctx, f.Batch)
		if err != nil {
			return nil, err
		}
		f.Regulation = int(id)
	}

	key := config.CacheKey.SubjectsKey(s.cache.version(ctx), f.Semester, f.Department, f.Batch, f.Regulation)
	var subjects []model.Subject
	if s.cache.get(ctx, key, &subjects) {
		return subjects, nil
	}

	subjects, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range subjects {
		subjects[i].Blended = grading.IsBlended(subjects[i].Label)
	}
	s.cache.set(ctx, key, subjects)
	return subjects, nil
}

// ForSelection loads the subject set a student grades for one semester.
func (s *SubjectService) ForSelection(ctx context.Context, semester, department, batch string) ([]model.Subject, grading.RegulationID, error) {
	id, err := s.resolver.ResolveBatch(ctx, batch)
	if err != nil {
		return nil, 0, err
	}
	subjects, err := s.List(ctx, model.SubjectFilter{
		Semester:   semester,
		Department: department,
		Batch:      batch,
		Regulation: int(id),
	})
	return subjects, id, err
}

// Batches returns the distinct batches, newest first.
func (s *SubjectService) Batches(ctx context.Context, f model.BatchFilter) ([]string, error) {
	key := config.CacheKey.BatchesKey(s.cache.version(ctx), f.Semester, f.Department)
	var batches []string
	if s.cache.get(ctx, key, &batches) {
		return batches, nil
	}

	batches, err := s.repo.ListBatches(ctx, f)
	if err != nil {
		return nil, err
	}
	s.cache.set(ctx, key, batches)
	return batches, nil
}

// GetByID returns one subject.
func (s *SubjectService) GetByID(ctx context.Context, id int) (*model.Subject, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	sub.Blended = grading.IsBlended(sub.Label)
	return sub, nil
}

// Create adds a subject to the catalog.
func (s *SubjectService) Create(ctx context.Context, req model.SubjectRequest) (*model.Subject, error) {
	sub := subjectFromRequest(req)
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	s.cache.bump(ctx)

	s.log.Info().Int("id", sub.ID).Str("label", sub.Label).Msg("Subject created")
	return sub, nil
}

// Update replaces every field of a subject.
func (s *SubjectService) Update(ctx context.Context, id int, req model.SubjectRequest) (*model.Subject, error) {
	sub := subjectFromRequest(req)
	sub.ID = id
	if err := s.repo.Update(ctx, sub); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.cache.bump(ctx)
	return sub, nil
}

// Delete removes a subject.
func (s *SubjectService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.cache.bump(ctx)
	return nil
}

func subjectFromRequest(req model.SubjectRequest) *model.Subject {
	label := strings.TrimSpace(req.Label)
	return &model.Subject{
		Label:      label,
		Credit:     req.Credit,
		Semester:   strings.TrimSpace(req.Semester),
		Department: strings.TrimSpace(req.Department),
		Batch:      strings.TrimSpace(req.Batch),
		Regulation: req.Regulation,
		Blended:    grading.IsBlended(label),
	}
}
