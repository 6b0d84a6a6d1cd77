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

const msgDuplicateEmail = "Já existe um usuário com este email."

func userNotFound(id int64) *apperror.AppError {
	return apperror.NotFound(fmt.Sprintf("Usuário com ID %d não encontrado.", id))
}

type userUsecase struct {
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewUserUsecase(userRepo domain.UserRepository, validate *validator.Validate) domain.UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		validate: validate,
	}
}

func (u *userUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return u.userRepo.Fetch(ctx)
}

func (u *userUsecase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, userNotFound(id)
		}
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) CreateUser(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Role = strings.TrimSpace(input.Role)

	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest("Nome, Email e Tipo são obrigatórios.")
	}

	// Pre-check for the friendly message; the UNIQUE constraint is the real
	// guarantee under concurrent creates.
	if _, err := u.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperror.BadRequest(msgDuplicateEmail)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	user := &domain.User{
		Name:  input.Name,
		Email: input.Email,
		Role:  input.Role,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apperror.BadRequest(msgDuplicateEmail)
		}
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, id int64, input domain.UpdateUserInput) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, userNotFound(id)
		}
		return nil, err
	}

	if email := strings.TrimSpace(input.Email); email != "" && email != user.Email {
		other, err := u.userRepo.GetByEmail(ctx, email)
		if err == nil && other.ID != id {
			return nil, apperror.BadRequest(msgDuplicateEmail)
		}
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		user.Email = email
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		user.Name = name
	}
	if role := strings.TrimSpace(input.Role); role != "" {
		user.Role = role
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			return nil, apperror.BadRequest(msgDuplicateEmail)
		case errors.Is(err, domain.ErrNotFound):
			return nil, userNotFound(id)
		}
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, id int64) error {
	if err := u.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return userNotFound(id)
		}
		return err
	}
	return nil
}
