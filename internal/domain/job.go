package domain

import (
	"context"
	"time"
)

type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"titulo"`
	Description string    `json:"descricao"`
	Area        string    `json:"area"`
	PublishedAt time.Time `json:"dataPublicacao"`
	// Candidates is derived from the candidates.job_id foreign key; the
	// repository fills it on reads, it is never written through the job.
	// Nil (null in JSON) when the job is nested inside a candidate.
	Candidates []Candidate `json:"candidatos"`
}

type CreateJobInput struct {
	Title       string `json:"titulo" validate:"required"`
	Description string `json:"descricao" validate:"required"`
	Area        string `json:"area" validate:"required"`
}

// UpdateJobInput is a partial update: blank fields are left untouched.
// PublishedAt is set once at creation and never updatable.
type UpdateJobInput struct {
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
	Area        string `json:"area"`
}

type JobRepository interface {
	Fetch(ctx context.Context) ([]Job, error)
	GetByID(ctx context.Context, id int64) (*Job, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, job *Job) error
	Update(ctx context.Context, job *Job) error
	// Delete removes the job and, through the storage-level cascade, every
	// candidate referencing it.
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	ListJobs(ctx context.Context) ([]Job, error)
	GetJob(ctx context.Context, id int64) (*Job, error)
	CreateJob(ctx context.Context, input CreateJobInput) (*Job, error)
	UpdateJob(ctx context.Context, id int64, input UpdateJobInput) (*Job, error)
	DeleteJob(ctx context.Context, id int64) error
}
