package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
)

// SubjectRepository is the data access contract for the subject catalog.
type SubjectRepository interface {
	List(ctx context.Context, f model.SubjectFilter) ([]model.Subject, error)
	ListBatches(ctx context.Context, f model.BatchFilter) ([]string, error)
	GetByID(ctx context.Context, id int) (*model.Subject, error)
	Create(ctx context.Context, s *model.Subject) error
	Update(ctx context.Context, s *model.Subject) error
	Delete(ctx context.Context, id int) error
}

type subjectRepository struct {
	pool *pgxpool.Pool
}

func NewSubjectRepository(pool *pgxpool.Pool) SubjectRepository {
	return &subjectRepository{pool: pool}
}

const subjectColumns = `id, label, credit, semester, department, batch, regulation, created_at, updated_at`

func scanSubject(row pgx.Row, s *model.Subject) error {
	return row.Scan(&s.ID, &s.Label, &s.Credit, &s.Semester, &s.Department,
		&s.Batch, &s.Regulation, &s.CreatedAt, &s.UpdatedAt)
}

// List matches semester and department case-insensitively after trimming.
// Empty filter fields match everything.
func (r *subjectRepository) List(ctx context.Context, f model.SubjectFilter) ([]model.Subject, error) {
	query := `
		SELECT ` + subjectColumns + `
		FROM subjects
		WHERE ($1::text = '' OR LOWER(TRIM(semester)) = LOWER(TRIM($1::text)))
		  AND ($2::text = '' OR LOWER(TRIM(department)) = LOWER(TRIM($2::text)))
		  AND ($3::text = '' OR batch = TRIM($3::text))
		  AND ($4::int = 0 OR regulation = $4::int)
		ORDER BY id ASC
	`
	rows, err := r.pool.Query(ctx, query, f.Semester, f.Department, f.Batch, f.Regulation)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjects := []model.Subject{}
	for rows.Next() {
		var s model.Subject
		if err := scanSubject(rows, &s); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

func (r *subjectRepository) ListBatches(ctx context.Context, f model.BatchFilter) ([]string, error) {
	query := `
		SELECT DISTINCT batch
		FROM subjects
		WHERE ($1::text = '' OR LOWER(TRIM(semester)) = LOWER(TRIM($1::text)))
		  AND ($2::text = '' OR LOWER(TRIM(department)) = LOWER(TRIM($2::text)))
		ORDER BY batch DESC
	`
	rows, err := r.pool.Query(ctx, query, f.Semester, f.Department)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	batches := []string{}
	for rows.Next() {
		var b string
		if err := rows.Scan(&b); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

func (r *subjectRepository) GetByID(ctx context.Context, id int) (*model.Subject, error) {
	s := &model.Subject{}
	row := r.pool.QueryRow(ctx, `SELECT `+subjectColumns+` FROM subjects WHERE id = $1`, id)
	if err := scanSubject(row, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *subjectRepository) Create(ctx context.Context, s *model.Subject) error {
	query := `
		INSERT INTO subjects (label, credit, semester, department, batch, regulation)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query, s.Label, s.Credit, s.Semester, s.Department, s.Batch, s.Regulation).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update returns pgx.ErrNoRows when the subject does not exist.
func (r *subjectRepository) Update(ctx context.Context, s *model.Subject) error {
	query := `
		UPDATE subjects
		SET label = $1, credit = $2, semester = $3, department = $4, batch = $5, regulation = $6,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
		RETURNING created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query, s.Label, s.Credit, s.Semester, s.Department, s.Batch, s.Regulation, s.ID).
		Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *subjectRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
