package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
)

// SubmissionRepository is the data access contract for recorded results.
type SubmissionRepository interface {
	BulkInsert(ctx context.Context, subs []model.Submission) error
	Insert(ctx context.Context, sub *model.Submission) error
	ListPaginated(ctx context.Context, f model.SubmissionFilter) ([]model.Submission, int, error)
	ListAll(ctx context.Context, f model.SubmissionFilter, limit int) ([]model.Submission, error)
}

type submissionRepository struct {
	pool *pgxpool.Pool
}

func NewSubmissionRepository(pool *pgxpool.Pool) SubmissionRepository {
	return &submissionRepository{pool: pool}
}

const submissionColumns = `id, username, semester, department, grades, cgpa, batch, regulation, created_at`

const submissionWhere = `
	WHERE ($1::text = '' OR username = $1::text)
	  AND ($2::text = '' OR LOWER(semester) = LOWER($2::text))
	  AND ($3::text = '' OR LOWER(department) = LOWER($3::text))
	  AND ($4::text = '' OR batch = $4::text)
`

func scanSubmission(row pgx.Row, s *model.Submission) error {
	return row.Scan(&s.ID, &s.Username, &s.Semester, &s.Department, &s.Grades,
		&s.Average, &s.Batch, &s.Regulation, &s.CreatedAt)
}

// BulkInsert writes every submission in a single statement.
func (r *submissionRepository) BulkInsert(ctx context.Context, subs []model.Submission) error {
	n := len(subs)
	if n == 0 {
		return nil
	}

	usernames := make([]string, 0, n)
	semesters := make([]string, 0, n)
	departments := make([]string, 0, n)
	grades := make([]string, 0, n)
	averages := make([]string, 0, n)
	batches := make([]string, 0, n)
	regulations := make([]int, 0, n)
	createdAts := make([]time.Time, 0, n)

	for _, s := range subs {
		raw, err := json.Marshal(s.Grades)
		if err != nil {
			return err
		}
		usernames = append(usernames, s.Username)
		semesters = append(semesters, s.Semester)
		departments = append(departments, s.Department)
		grades = append(grades, string(raw))
		averages = append(averages, s.Average)
		batches = append(batches, s.Batch)
		regulations = append(regulations, s.Regulation)
		createdAts = append(createdAts, s.CreatedAt)
	}

	query := `
		INSERT INTO submissions (username, semester, department, grades, cgpa, batch, regulation, created_at)
		SELECT u.username, u.semester, u.department, u.grades::jsonb, u.cgpa, u.batch, u.regulation, u.created_at
		FROM UNNEST(
			$1::text[],
			$2::text[],
			$3::text[],
			$4::text[],
			$5::text[],
			$6::text[],
			$7::int[],
			$8::timestamptz[]
		) AS u (username, semester, department, grades, cgpa, batch, regulation, created_at)
	`
	_, err := r.pool.Exec(ctx, query,
		usernames, semesters, departments, grades, averages, batches, regulations, createdAts)
	return err
}

func (r *submissionRepository) Insert(ctx context.Context, s *model.Submission) error {
	query := `
		INSERT INTO submissions (username, semester, department, grades, cgpa, batch, regulation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		s.Username, s.Semester, s.Department, s.Grades, s.Average, s.Batch, s.Regulation, s.CreatedAt,
	).Scan(&s.ID)
}

// ListPaginated returns one page, newest first, plus the total match count.
func (r *submissionRepository) ListPaginated(ctx context.Context, f model.SubmissionFilter) ([]model.Submission, int, error) {
	f.Normalize()
	args := []any{f.Username, f.Semester, f.Department, f.Batch}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM submissions`+submissionWhere, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + submissionColumns + ` FROM submissions` + submissionWhere +
		` ORDER BY created_at DESC, id DESC LIMIT $5 OFFSET $6`
	subs, err := r.query(ctx, query, append(args, f.PerPage, (f.Page-1)*f.PerPage)...)
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

// ListAll returns up to limit matches, newest first.
func (r *submissionRepository) ListAll(ctx context.Context, f model.SubmissionFilter, limit int) ([]model.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions` + submissionWhere +
		` ORDER BY created_at DESC, id DESC LIMIT $5`
	return r.query(ctx, query, f.Username, f.Semester, f.Department, f.Batch, limit)
}

func (r *submissionRepository) query(ctx context.Context, query string, args ...any) ([]model.Submission, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []model.Submission{}
	for rows.Next() {
		var s model.Submission
		if err := scanSubmission(rows, &s); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}
