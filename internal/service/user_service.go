// internal/service/user_service.go
package service

import (
	"context"
	"fmt"

	"msgboard/internal/domain"
	"msgboard/internal/repository"
)

// UserService defines the interface for user-related operations. Each
// operation issues exactly one store round trip; there are no
// multi-statement transactions in this service.
type UserService interface {
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) ([]domain.User, error)
	Create(ctx context.Context, params domain.CreateUserParams) (*domain.User, error)
	Update(ctx context.Context, id int64, params domain.UpdateUserParams) (*domain.User, error)
	Delete(ctx context.Context, id int64) (*domain.User, error)
}

// userService implements the UserService interface.
type userService struct {
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(dbExecutor repository.DBExecutor, userRepo repository.UserRepository) UserService {
	return &userService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
	}
}

func (s *userService) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx, s.dbExecutor, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) ([]domain.User, error) {
	users, err := s.userRepo.GetByID(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return users, nil
}

func (s *userService) Create(ctx context.Context, params domain.CreateUserParams) (*domain.User, error) {
	user, err := s.userRepo.Insert(ctx, s.dbExecutor, params)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Update applies a partial or full update; the handlers decide which fields
// are present, the repository only touches those fields.
func (s *userService) Update(ctx context.Context, id int64, params domain.UpdateUserParams) (*domain.User, error) {
	user, err := s.userRepo.Update(ctx, s.dbExecutor, id, params)
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.Delete(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, fmt.Errorf("delete user %d: %w", id, err)
	}
	return user, nil
}
