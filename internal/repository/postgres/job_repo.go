package postgres

import (
	"context"
	"errors"

	"futuro-do-trabalho-api/internal/domain"

	"github.com/jackc/pgx/v5"
)

type jobRepo struct {
	db DB
}

func NewJobRepository(db DB) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Fetch(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT id, title, description, area, published_at FROM jobs ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(&job.ID, &job.Title, &job.Description, &job.Area, &job.PublishedAt); err != nil {
			return nil, err
		}
		job.Candidates = []domain.Candidate{}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Second pass attaches candidates. The reverse collection is a join over
	// the foreign key, not state the job carries.
	candQuery := `SELECT id, name, skills, job_id FROM candidates ORDER BY id`
	candRows, err := r.db.Query(ctx, candQuery)
	if err != nil {
		return nil, err
	}
	defer candRows.Close()

	byJob := make(map[int64][]domain.Candidate)
	for candRows.Next() {
		var cand domain.Candidate
		if err := candRows.Scan(&cand.ID, &cand.Name, &cand.Skills, &cand.JobID); err != nil {
			return nil, err
		}
		byJob[cand.JobID] = append(byJob[cand.JobID], cand)
	}
	if err := candRows.Err(); err != nil {
		return nil, err
	}

	for i := range jobs {
		if cands, ok := byJob[jobs[i].ID]; ok {
			jobs[i].Candidates = cands
		}
	}
	return jobs, nil
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT id, title, description, area, published_at FROM jobs WHERE id = $1`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(&job.ID, &job.Title, &job.Description, &job.Area, &job.PublishedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	candQuery := `SELECT id, name, skills, job_id FROM candidates WHERE job_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, candQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	job.Candidates = []domain.Candidate{}
	for rows.Next() {
		var cand domain.Candidate
		if err := rows.Scan(&cand.ID, &cand.Name, &cand.Skills, &cand.JobID); err != nil {
			return nil, err
		}
		job.Candidates = append(job.Candidates, cand)
	}
	return &job, rows.Err()
}

func (r *jobRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM jobs WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (title, description, area, published_at) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRow(ctx, query, job.Title, job.Description, job.Area, job.PublishedAt).Scan(&job.ID)
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	// published_at is deliberately absent: it is set once at creation.
	query := `UPDATE jobs SET title = $2, description = $3, area = $4 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, job.ID, job.Title, job.Description, job.Area)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	// ON DELETE CASCADE on candidates.job_id removes the job's candidates in
	// the same statement.
	query := `DELETE FROM jobs WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
