package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/config"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/grading"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/wizard"
)

// WizardStore persists wizard states.
type WizardStore interface {
	Load(ctx context.Context, id string) (wizard.State, error)
	Save(ctx context.Context, s wizard.State) error
}

// WizardCatalog is the part of the subject catalog the wizard reads.
type WizardCatalog interface {
	Batches(ctx context.Context, f model.BatchFilter) ([]string, error)
	List(ctx context.Context, f model.SubjectFilter) ([]model.Subject, error)
}

// WizardService drives the batch, department, semester, grading selection
// flow on top of a WizardStore.
type WizardService struct {
	store    WizardStore
	catalog  WizardCatalog
	resolver BatchResolver
}

// NewWizardService creates a new WizardService.
func NewWizardService(store WizardStore, catalog WizardCatalog, resolver BatchResolver) *WizardService {
	return &WizardService{store: store, catalog: catalog, resolver: resolver}
}

// Start opens a fresh wizard.
func (s *WizardService) Start(ctx context.Context) (*model.WizardView, error) {
	st := wizard.New(uuid.NewString())
	if err := s.store.Save(ctx, st); err != nil {
		return nil, err
	}
	return s.view(ctx, st)
}

// Get returns the current state of a wizard.
func (s *WizardService) Get(ctx context.Context, id string) (*model.WizardView, error) {
	st, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, st)
}

// Advance records value for the current step.
func (s *WizardService) Advance(ctx context.Context, id, value string) (*model.WizardView, error) {
	st, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := st.Advance(value, s.rules(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return nil, err
	}
	return s.view(ctx, next)
}

// Back undoes the latest selection.
func (s *WizardService) Back(ctx context.Context, id string) (*model.WizardView, error) {
	st, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	prev, err := st.Back()
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, prev); err != nil {
		return nil, err
	}
	return s.view(ctx, prev)
}

// Subjects lists the subjects to grade once every selection is made.
func (s *WizardService) Subjects(ctx context.Context, id string) ([]model.Subject, error) {
	st, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !st.Ready() {
		return nil, fmt.Errorf("%w: selection incomplete at %s", wizard.ErrInvalidStep, st.Stage)
	}
	return s.catalog.List(ctx, model.SubjectFilter{
		Semester:   st.SemesterLabel(),
		Department: st.Department,
		Batch:      st.Batch,
		Regulation: int(st.Regulation),
	})
}

func (s *WizardService) rules(ctx context.Context) wizard.Rules {
	return wizard.Rules{
		ResolveRegulation: func(batch string) (grading.RegulationID, error) {
			return s.resolver.ResolveBatch(ctx, batch)
		},
		Department: func(value string) (string, int, bool) {
			d, ok := model.LookupDepartment(value)
			return d.Name, d.MaxSemesters, ok
		},
	}
}

func (s *WizardService) view(ctx context.Context, st wizard.State) (*model.WizardView, error) {
	v := &model.WizardView{
		State:          st,
		Step:           st.Step(),
		Ready:          st.Ready(),
		SemesterLabel:  st.SemesterLabel(),
		RegulationName: st.Regulation.FullName(),
	}

	switch st.Stage {
	case wizard.StageBatch:
		batches, err := s.catalog.Batches(ctx, model.BatchFilter{})
		if err != nil {
			return nil, err
		}
		v.Options = batches
	case wizard.StageDepartment:
		for _, d := range model.Departments {
			v.Options = append(v.Options, d.Code)
		}
	case wizard.StageSemester:
		for n := 1; n <= st.MaxSemesters; n++ {
			v.Options = append(v.Options, wizard.SemesterLabel(n))
		}
	}
	return v, nil
}

// redisWizardStore keeps each wizard as a JSON value that expires after ttl
// of inactivity.
type redisWizardStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisWizardStore creates a Redis-backed WizardStore.
func NewRedisWizardStore(rdb *redis.Client, ttl time.Duration) WizardStore {
	return &redisWizardStore{rdb: rdb, ttl: ttl}
}

func (r *redisWizardStore) Load(ctx context.Context, id string) (wizard.State, error) {
	raw, err := r.rdb.Get(ctx, config.CacheKey.WizardKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return wizard.State{}, ErrWizardNotFound
		}
		return wizard.State{}, err
	}

	var st wizard.State
	if err := json.Unmarshal(raw, &st); err != nil {
		return wizard.State{}, fmt.Errorf("decode wizard %s: %w", id, err)
	}
	return st, nil
}

func (r *redisWizardStore) Save(ctx context.Context, st wizard.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, config.CacheKey.WizardKey(st.ID), raw, r.ttl).Err()
}
