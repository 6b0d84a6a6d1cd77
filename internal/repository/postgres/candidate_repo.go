package postgres

import (
	"context"
	"errors"

	"futuro-do-trabalho-api/internal/domain"

	"github.com/jackc/pgx/v5"
)

type candidateRepo struct {
	db DB
}

func NewCandidateRepository(db DB) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

const candidateWithJobQuery = `
	SELECT c.id, c.name, c.skills, c.job_id,
	       j.id, j.title, j.description, j.area, j.published_at
	FROM candidates c
	JOIN jobs j ON c.job_id = j.id`

func scanCandidateWithJob(row pgx.Row) (*domain.Candidate, error) {
	var cand domain.Candidate
	var job domain.Job
	err := row.Scan(
		&cand.ID, &cand.Name, &cand.Skills, &cand.JobID,
		&job.ID, &job.Title, &job.Description, &job.Area, &job.PublishedAt,
	)
	if err != nil {
		return nil, err
	}
	cand.Job = &job
	return &cand, nil
}

func (r *candidateRepo) Fetch(ctx context.Context) ([]domain.Candidate, error) {
	rows, err := r.db.Query(ctx, candidateWithJobQuery+` ORDER BY c.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		cand, err := scanCandidateWithJob(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *cand)
	}
	return candidates, rows.Err()
}

func (r *candidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	cand, err := scanCandidateWithJob(r.db.QueryRow(ctx, candidateWithJobQuery+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return cand, nil
}

func (r *candidateRepo) FetchByJobID(ctx context.Context, jobID int64) ([]domain.Candidate, error) {
	rows, err := r.db.Query(ctx, candidateWithJobQuery+` WHERE c.job_id = $1 ORDER BY c.id`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		cand, err := scanCandidateWithJob(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *cand)
	}
	return candidates, rows.Err()
}

func (r *candidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `INSERT INTO candidates (name, skills, job_id) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRow(ctx, query, candidate.Name, candidate.Skills, candidate.JobID).Scan(&candidate.ID)
}

func (r *candidateRepo) Update(ctx context.Context, candidate *domain.Candidate) error {
	query := `UPDATE candidates SET name = $2, skills = $3, job_id = $4 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, candidate.ID, candidate.Name, candidate.Skills, candidate.JobID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM candidates WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
