package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flowdesk/flowdesk/internal/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, name, description, startDate, endDate string) (*models.Project, error) {
	project := &models.Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, err
	}

	return project, nil
}

// List returns all projects with their tasks eagerly attached.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	// Initialized so an empty table serializes as [] rather than null.
	projects := []models.Project{}
	err := r.db.WithContext(ctx).Preload("Tasks").Find(&projects).Error
	return projects, err
}

// FindByID returns one project with its tasks and each task's user attached.
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("Tasks").
		Preload("Tasks.User").
		First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Project{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id).Error
}
