package services

import (
	"context"

	"github.com/flowdesk/flowdesk/internal/models"
	repository "github.com/flowdesk/flowdesk/internal/repositories"
)

type ProjectService struct {
	repo *repository.ProjectRepository
}

func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// Create persists a new project. Relations are not populated on the
// returned record.
func (s *ProjectService) Create(ctx context.Context, name, description, startDate, endDate string) (*models.Project, error) {
	return s.repo.Create(ctx, name, description, startDate, endDate)
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.repo.List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*models.Project, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies the given fields, then re-reads the record with its
// relations attached rather than returning the patch result.
func (s *ProjectService) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Project, error) {
	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
