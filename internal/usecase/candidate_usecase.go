package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"futuro-do-trabalho-api/internal/domain"
	"futuro-do-trabalho-api/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

func candidateNotFound(id int64) *apperror.AppError {
	return apperror.NotFound(fmt.Sprintf("Candidato com ID %d não encontrado.", id))
}

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	jobRepo       domain.JobRepository
	validate      *validator.Validate
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository, jobRepo domain.JobRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		validate:      validate,
	}
}

func (u *candidateUsecase) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	return u.candidateRepo.Fetch(ctx)
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id int64) (*domain.Candidate, error) {
	candidate, err := u.candidateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, candidateNotFound(id)
		}
		return nil, err
	}
	return candidate, nil
}

func (u *candidateUsecase) ListCandidatesForJob(ctx context.Context, jobID int64) ([]domain.Candidate, error) {
	if err := u.requireJob(ctx, jobID); err != nil {
		return nil, err
	}
	return u.candidateRepo.FetchByJobID(ctx, jobID)
}

func (u *candidateUsecase) CreateCandidate(ctx context.Context, input domain.CreateCandidateInput) (*domain.Candidate, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Skills = strings.TrimSpace(input.Skills)

	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest("Nome e Habilidades são obrigatórios.")
	}

	// Referential check: the job must exist before the candidate is accepted.
	if err := u.requireJob(ctx, input.JobID); err != nil {
		return nil, err
	}

	candidate := &domain.Candidate{
		Name:   input.Name,
		Skills: input.Skills,
		JobID:  input.JobID,
	}
	if err := u.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, err
	}

	// Reload so the response carries the job attached.
	return u.candidateRepo.GetByID(ctx, candidate.ID)
}

func (u *candidateUsecase) UpdateCandidate(ctx context.Context, id int64, input domain.UpdateCandidateInput) (*domain.Candidate, error) {
	candidate, err := u.candidateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, candidateNotFound(id)
		}
		return nil, err
	}

	// Reassigning the job repeats the referential check against the new id.
	if input.JobID != nil && *input.JobID != candidate.JobID {
		if err := u.requireJob(ctx, *input.JobID); err != nil {
			return nil, err
		}
		candidate.JobID = *input.JobID
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		candidate.Name = name
	}
	if skills := strings.TrimSpace(input.Skills); skills != "" {
		candidate.Skills = skills
	}

	if err := u.candidateRepo.Update(ctx, candidate); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, candidateNotFound(id)
		}
		return nil, err
	}

	return u.candidateRepo.GetByID(ctx, id)
}

func (u *candidateUsecase) DeleteCandidate(ctx context.Context, id int64) error {
	if err := u.candidateRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return candidateNotFound(id)
		}
		return err
	}
	return nil
}

func (u *candidateUsecase) requireJob(ctx context.Context, jobID int64) error {
	exists, err := u.jobRepo.Exists(ctx, jobID)
	if err != nil {
		return err
	}
	if !exists {
		return jobNotFound(jobID)
	}
	return nil
}
