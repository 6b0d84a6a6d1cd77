package domain

import (
	"context"
	"errors"
)

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicateEmail = errors.New("email already in use")
)

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"tipo"`
}

// CreateUserInput carries the fields required to register a user. All three
// are mandatory; the usecase validates them before touching storage.
type CreateUserInput struct {
	Name  string `json:"nome" validate:"required"`
	Email string `json:"email" validate:"required"`
	Role  string `json:"tipo" validate:"required"`
}

// UpdateUserInput is a partial update: blank fields are left untouched.
type UpdateUserInput struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"tipo"`
}

type UserRepository interface {
	Fetch(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
}

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*User, error)
	UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*User, error)
	DeleteUser(ctx context.Context, id int64) error
}
