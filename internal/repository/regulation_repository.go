package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/grading"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
)

// RegulationRepository is the data access contract for the regulation registry.
type RegulationRepository interface {
	List(ctx context.Context, activeOnly bool) ([]model.Regulation, error)
	GetByID(ctx context.Context, id int) (*model.Regulation, error)
	GetByRegulation(ctx context.Context, reg grading.RegulationID) (*model.Regulation, error)
	Create(ctx context.Context, reg *model.Regulation) error
	Update(ctx context.Context, reg *model.Regulation) error
	Delete(ctx context.Context, id int) error
}

type regulationRepository struct {
	pool *pgxpool.Pool
}

func NewRegulationRepository(pool *pgxpool.Pool) RegulationRepository {
	return &regulationRepository{pool: pool}
}

const regulationColumns = `id, regulation, name, display_name, start_batch_year, end_batch_year, is_active, created_at, updated_at`

func scanRegulation(row pgx.Row, m *model.Regulation) error {
	return row.Scan(&m.ID, &m.Regulation, &m.Name, &m.DisplayName, &m.StartBatchYear,
		&m.EndBatchYear, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
}

func (r *regulationRepository) List(ctx context.Context, activeOnly bool) ([]model.Regulation, error) {
	query := `
		SELECT ` + regulationColumns + `
		FROM regulations
		WHERE ($1::bool = FALSE OR is_active)
		ORDER BY regulation ASC, start_batch_year ASC
	`
	rows, err := r.pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := []model.Regulation{}
	for rows.Next() {
		var m model.Regulation
		if err := scanRegulation(rows, &m); err != nil {
			return nil, err
		}
		regs = append(regs, m)
	}
	return regs, rows.Err()
}

func (r *regulationRepository) GetByID(ctx context.Context, id int) (*model.Regulation, error) {
	m := &model.Regulation{}
	row := r.pool.QueryRow(ctx, `SELECT `+regulationColumns+` FROM regulations WHERE id = $1`, id)
	if err := scanRegulation(row, m); err != nil {
		return nil, err
	}
	return m, nil
}

// GetByRegulation prefers an active row when several share the id.
func (r *regulationRepository) GetByRegulation(ctx context.Context, reg grading.RegulationID) (*model.Regulation, error) {
	query := `
		SELECT ` + regulationColumns + `
		FROM regulations
		WHERE regulation = $1
		ORDER BY is_active DESC, id ASC
		LIMIT 1
	`
	m := &model.Regulation{}
	if err := scanRegulation(r.pool.QueryRow(ctx, query, reg), m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *regulationRepository) Create(ctx context.Context, m *model.Regulation) error {
	query := `
		INSERT INTO regulations (regulation, name, display_name, start_batch_year, end_batch_year, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query, m.Regulation, m.Name, m.DisplayName, m.StartBatchYear, m.EndBatchYear, m.IsActive).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *regulationRepository) Update(ctx context.Context, m *model.Regulation) error {
	query := `
		UPDATE regulations
		SET regulation = $1, name = $2, display_name = $3, start_batch_year = $4,
		    end_batch_year = $5, is_active = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
		RETURNING created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query, m.Regulation, m.Name, m.DisplayName, m.StartBatchYear, m.EndBatchYear, m.IsActive, m.ID).
		Scan(&m.CreatedAt, &m.UpdatedAt)
}

func (r *regulationRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM regulations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
