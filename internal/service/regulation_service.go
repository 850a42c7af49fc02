package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/config"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/grading"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/repository"
)

// RegulationService manages the regulation registry and resolves batches
// against it. Active registry ranges take precedence over the built-in table.
type RegulationService struct {
	repo  repository.RegulationRepository
	cache *catalogCache
	log   zerolog.Logger
}

// NewRegulationService creates a new RegulationService. rdb may be nil.
func NewRegulationService(repo repository.RegulationRepository, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *RegulationService {
	log = log.With().Str("component", "regulation_service").Logger()
	return &RegulationService{
		repo:  repo,
		cache: newCatalogCache(rdb, cfg.CatalogCacheTTL, log),
		log:   log,
	}
}

// List returns every registry row.
func (s *RegulationService) List(ctx context.Context) ([]model.Regulation, error) {
	return s.repo.List(ctx, false)
}

// ListActive returns the active rows, served from cache when possible.
func (s *RegulationService) ListActive(ctx context.Context) ([]model.Regulation, error) {
	key := config.CacheKey.ActiveRegulationsKey(s.cache.version(ctx))

	var regs []model.Regulation
	if s.cache.get(ctx, key, &regs) {
		return regs, nil
	}

	regs, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	s.cache.set(ctx, key, regs)
	return regs, nil
}

// Resolver builds a resolver from the active registry rows.
func (s *RegulationService) Resolver(ctx context.Context) (grading.Resolver, error) {
	regs, err := s.ListActive(ctx)
	if err != nil {
		return grading.Resolver{}, err
	}

	ranges := make([]grading.BatchRange, 0, len(regs))
	for i := range regs {
		ranges = append(ranges, regs[i].Range())
	}
	override, err := grading.NewRangeTable(0, ranges...)
	if err != nil {
		// writes reject overlaps, so this only happens with hand-edited rows
		s.log.Error().Err(err).Msg("active regulations overlap, using built-in table")
		override = grading.RangeTable{}
	}
	return grading.Resolver{Override: override, Base: grading.DefaultTable}, nil
}

// ResolveBatch maps a batch string to its regulation.
func (s *RegulationService) ResolveBatch(ctx context.Context, batch string) (grading.RegulationID, error) {
	r, err := s.Resolver(ctx)
	if err != nil {
		return 0, err
	}
	return r.Resolve(batch)
}

// ForBatch resolves batch and loads the matching registry row.
func (s *RegulationService) ForBatch(ctx context.Context, batch string) (*model.RegulationForBatch, error) {
	year, err := grading.ParseStartYear(batch)
	if err != nil {
		return nil, err
	}
	id, err := s.ResolveBatch(ctx, batch)
	if err != nil {
		return nil, err
	}

	reg, err := s.repo.GetByRegulation(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrRegulationNotFound, id.DisplayName())
		}
		return nil, err
	}
	return &model.RegulationForBatch{Batch: batch, StartYear: year, Regulation: reg}, nil
}

// Create adds a registry row.
func (s *RegulationService) Create(ctx context.Context, req model.RegulationRequest) (*model.Regulation, error) {
	reg := &model.Regulation{IsActive: true}
	applyRegulationRequest(reg, req)

	if err := s.checkOverlap(ctx, reg); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, err
	}
	s.cache.bump(ctx)

	s.log.Info().Int("id", reg.ID).Int("regulation", int(reg.Regulation)).Msg("Regulation created")
	return reg, nil
}

// Update replaces a registry row.
func (s *RegulationService) Update(ctx context.Context, id int, req model.RegulationRequest) (*model.Regulation, error) {
	reg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	applyRegulationRequest(reg, req)

	if err := s.checkOverlap(ctx, reg); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, reg); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.cache.bump(ctx)
	return reg, nil
}

// Delete removes a registry row.
func (s *RegulationService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.cache.bump(ctx)
	return nil
}

func applyRegulationRequest(reg *model.Regulation, req model.RegulationRequest) {
	reg.Regulation = grading.RegulationID(req.Regulation)
	reg.Name = req.Name
	if reg.Name == "" {
		reg.Name = reg.Regulation.FullName()
	}
	reg.DisplayName = req.DisplayName
	if reg.DisplayName == "" {
		reg.DisplayName = reg.Regulation.DisplayName()
	}
	reg.StartBatchYear = req.StartBatchYear
	reg.EndBatchYear = req.EndBatchYear
	if req.IsActive != nil {
		reg.IsActive = *req.IsActive
	}
}

// checkOverlap rejects an active row whose range collides with another
// active row. Inactive rows never collide.
func (s *RegulationService) checkOverlap(ctx context.Context, reg *model.Regulation) error {
	if !reg.IsActive {
		return nil
	}
	active, err := s.repo.List(ctx, true)
	if err != nil {
		return err
	}

	ranges := []grading.BatchRange{reg.Range()}
	for i := range active {
		if active[i].ID != reg.ID {
			ranges = append(ranges, active[i].Range())
		}
	}
	if _, err := grading.NewRangeTable(0, ranges...); err != nil {
		return fmt.Errorf("%w: %v", ErrOverlappingRange, err)
	}
	return nil
}
