package domain

import "context"

type Candidate struct {
	ID     int64  `json:"id"`
	Name   string `json:"nome"`
	Skills string `json:"habilidades"`
	JobID  int64  `json:"vagaId"`
	// Job is attached by the repository on reads. Nil (omitted in JSON) when
	// the candidate is nested inside its job, breaking the cycle.
	Job *Job `json:"vaga,omitempty"`
}

type CreateCandidateInput struct {
	Name   string `json:"nome" validate:"required"`
	Skills string `json:"habilidades" validate:"required"`
	JobID  int64  `json:"vagaId"`
}

// UpdateCandidateInput is a partial update: blank fields are left untouched.
// JobID is a pointer so that "absent" and "reassign to job N" are distinct.
type UpdateCandidateInput struct {
	Name   string `json:"nome"`
	Skills string `json:"habilidades"`
	JobID  *int64 `json:"vagaId"`
}

type CandidateRepository interface {
	Fetch(ctx context.Context) ([]Candidate, error)
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	FetchByJobID(ctx context.Context, jobID int64) ([]Candidate, error)
	Create(ctx context.Context, candidate *Candidate) error
	Update(ctx context.Context, candidate *Candidate) error
	Delete(ctx context.Context, id int64) error
}

type CandidateUsecase interface {
	ListCandidates(ctx context.Context) ([]Candidate, error)
	GetCandidate(ctx context.Context, id int64) (*Candidate, error)
	ListCandidatesForJob(ctx context.Context, jobID int64) ([]Candidate, error)
	CreateCandidate(ctx context.Context, input CreateCandidateInput) (*Candidate, error)
	UpdateCandidate(ctx context.Context, id int64, input UpdateCandidateInput) (*Candidate, error)
	DeleteCandidate(ctx context.Context, id int64) error
}
