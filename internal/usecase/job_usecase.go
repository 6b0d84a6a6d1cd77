package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"futuro-do-trabalho-api/internal/domain"
	"futuro-do-trabalho-api/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

func jobNotFound(id int64) *apperror.AppError {
	return apperror.NotFound(fmt.Sprintf("Vaga com ID %d não encontrada.", id))
}

type jobUsecase struct {
	jobRepo  domain.JobRepository
	validate *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:  jobRepo,
		validate: validate,
	}
}

func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return u.jobRepo.Fetch(ctx)
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, jobNotFound(id)
		}
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, input domain.CreateJobInput) (*domain.Job, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Area = strings.TrimSpace(input.Area)

	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest("Título, Descrição e Área são obrigatórios.")
	}

	job := &domain.Job{
		Title:       input.Title,
		Description: input.Description,
		Area:        input.Area,
		PublishedAt: time.Now().UTC(),
		Candidates:  []domain.Candidate{},
	}
	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id int64, input domain.UpdateJobInput) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, jobNotFound(id)
		}
		return nil, err
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		job.Title = title
	}
	if description := strings.TrimSpace(input.Description); description != "" {
		job.Description = description
	}
	if area := strings.TrimSpace(input.Area); area != "" {
		job.Area = area
	}

	if err := u.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, jobNotFound(id)
		}
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id int64) error {
	if err := u.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return jobNotFound(id)
		}
		return err
	}
	return nil
}
