package services

import (
	"context"

	"github.com/flowdesk/flowdesk/internal/models"
	repository "github.com/flowdesk/flowdesk/internal/repositories"
)

type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, name, email string) (*models.User, error) {
	return s.repo.Create(ctx, name, email)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies the given fields, then re-reads the full record.
func (s *UserService) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
