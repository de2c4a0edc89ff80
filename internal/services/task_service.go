package services

import (
	"context"

	"github.com/flowdesk/flowdesk/internal/models"
	repository "github.com/flowdesk/flowdesk/internal/repositories"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Create persists a new task. Foreign keys are not checked here; a
// dangling projectId or userId surfaces as a storage error.
func (s *TaskService) Create(ctx context.Context, title, description string, status models.TaskStatus, deadline, projectID, userID string) (*models.Task, error) {
	return s.repo.Create(ctx, title, description, status, deadline, projectID, userID)
}

func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) Get(ctx context.Context, id string) (*models.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) FindByProject(ctx context.Context, projectID string) ([]models.Task, error) {
	return s.repo.FindByProject(ctx, projectID)
}

// Update applies the given fields, then re-reads the record with its
// relations attached rather than returning the patch result.
func (s *TaskService) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Task, error) {
	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
