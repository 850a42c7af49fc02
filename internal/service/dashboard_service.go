package service

import (
	"context"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/repository"
)

// latestSubmissions is how many recent submissions the dashboard shows.
const latestSubmissions = 10

// DashboardService handles admin dashboard business logic.
type DashboardService struct {
	repo        *repository.DashboardRepository
	submissions repository.SubmissionRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo *repository.DashboardRepository, submissions repository.SubmissionRepository) *DashboardService {
	return &DashboardService{repo: repo, submissions: submissions}
}

// GetDashboardData gathers counts, per-department stats and the latest
// submissions.
func (s *DashboardService) GetDashboardData(ctx context.Context) (*model.Dashboard, error) {
	data := &model.Dashboard{}
	if err := s.repo.GetSummaryCounts(ctx, data); err != nil {
		return nil, err
	}

	stats, err := s.repo.GetDepartmentStats(ctx)
	if err != nil {
		return nil, err
	}
	data.ByDepartment = stats

	latest, err := s.submissions.ListAll(ctx, model.SubmissionFilter{}, latestSubmissions)
	if err != nil {
		return nil, err
	}
	data.Latest = latest

	return data, nil
}
