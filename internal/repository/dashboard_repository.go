package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
)

// DashboardRepository handles admin dashboard data access.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// GetSummaryCounts retrieves the high-level metrics for the dashboard.
func (r *DashboardRepository) GetSummaryCounts(ctx context.Context, d *model.Dashboard) error {
	return r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM subjects),
			(SELECT COUNT(*) FROM regulations),
			(SELECT COUNT(*) FROM regulations WHERE is_active),
			(SELECT COUNT(*) FROM submissions)`,
	).Scan(&d.TotalSubjects, &d.TotalRegulations, &d.ActiveRegulations, &d.TotalSubmissions)
}

// GetDepartmentStats counts submissions per department with their mean average.
func (r *DashboardRepository) GetDepartmentStats(ctx context.Context) ([]model.DepartmentStat, error) {
	query := `
		SELECT
			UPPER(TRIM(department)) AS dept,
			COUNT(*),
			ROUND(AVG(cgpa::numeric), 3)::float8
		FROM submissions
		GROUP BY dept
		ORDER BY COUNT(*) DESC, dept ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []model.DepartmentStat{}
	for rows.Next() {
		var s model.DepartmentStat
		if err := rows.Scan(&s.Department, &s.Submissions, &s.AverageSGPA); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
