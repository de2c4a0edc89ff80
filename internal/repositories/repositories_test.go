package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/flowdesk/flowdesk/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Project{}, &models.Task{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func seed(t *testing.T, db *gorm.DB) (*models.User, *models.Project) {
	t.Helper()
	ctx := context.Background()

	user, err := NewUserRepository(db).Create(ctx, "Alice", "alice@example.com")
	require.NoError(t, err)

	project, err := NewProjectRepository(db).Create(ctx, "Website Redesign", "Complete redesign", "2026-01-10", "2026-03-10")
	require.NoError(t, err)

	return user, project
}

func TestUserRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user, err := repo.Create(ctx, "Alice", "alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	fetched, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", fetched.Name)
	assert.Equal(t, "alice@example.com", fetched.Email)

	err = repo.Update(ctx, user.ID, map[string]interface{}{"name": "Alice B"})
	require.NoError(t, err)

	fetched, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice B", fetched.Name)
	assert.Equal(t, "alice@example.com", fetched.Email)

	require.NoError(t, repo.Delete(ctx, user.ID))

	_, err = repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_DuplicateEmailAllowed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, "Alice", "same@example.com")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "Bob", "same@example.com")
	require.NoError(t, err)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestProjectRepository_GetWithRelations(t *testing.T) {
	db := setupTestDB(t)
	user, project := seed(t, db)
	ctx := context.Background()

	taskRepo := NewTaskRepository(db)
	_, err := taskRepo.Create(ctx, "Design homepage mockup", "Wireframes", models.StatusTodo, "2026-01-20", project.ID, user.ID)
	require.NoError(t, err)

	fetched, err := NewProjectRepository(db).FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Website Redesign", fetched.Name)
	assert.Equal(t, "Complete redesign", fetched.Description)
	assert.Equal(t, "2026-01-10", fetched.StartDate)
	assert.Equal(t, "2026-03-10", fetched.EndDate)
	require.Len(t, fetched.Tasks, 1)
	require.NotNil(t, fetched.Tasks[0].User)
	assert.Equal(t, "Alice", fetched.Tasks[0].User.Name)
}

func TestProjectRepository_ListAttachesTasks(t *testing.T) {
	db := setupTestDB(t)
	user, project := seed(t, db)
	ctx := context.Background()

	taskRepo := NewTaskRepository(db)
	_, err := taskRepo.Create(ctx, "Task A", "Desc", models.StatusTodo, "2026-01-20", project.ID, user.ID)
	require.NoError(t, err)

	projects, err := NewProjectRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Len(t, projects[0].Tasks, 1)
}

func TestTaskRepository_FindByProject(t *testing.T) {
	db := setupTestDB(t)
	user, project := seed(t, db)
	ctx := context.Background()

	projectRepo := NewProjectRepository(db)
	other, err := projectRepo.Create(ctx, "Other", "Other project", "2026-02-01", "2026-04-01")
	require.NoError(t, err)

	taskRepo := NewTaskRepository(db)
	t1, err := taskRepo.Create(ctx, "Task One", "Desc", models.StatusTodo, "2026-01-20", project.ID, user.ID)
	require.NoError(t, err)
	t2, err := taskRepo.Create(ctx, "Task Two", "Desc", models.StatusInProgress, "2026-01-25", project.ID, user.ID)
	require.NoError(t, err)
	_, err = taskRepo.Create(ctx, "Elsewhere", "Desc", models.StatusTodo, "2026-01-30", other.ID, user.ID)
	require.NoError(t, err)

	tasks, err := taskRepo.FindByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	ids := map[string]bool{tasks[0].ID: true, tasks[1].ID: true}
	assert.True(t, ids[t1.ID])
	assert.True(t, ids[t2.ID])

	for _, task := range tasks {
		require.NotNil(t, task.User)
		assert.Equal(t, "Alice", task.User.Name)
	}

	empty, err := taskRepo.FindByProject(ctx, "no-such-project")
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)
}

func TestTaskRepository_ListAttachesProjectAndUser(t *testing.T) {
	db := setupTestDB(t)
	user, project := seed(t, db)
	ctx := context.Background()

	taskRepo := NewTaskRepository(db)
	_, err := taskRepo.Create(ctx, "Task", "Desc", models.StatusTodo, "2026-01-20", project.ID, user.ID)
	require.NoError(t, err)

	tasks, err := taskRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].Project)
	require.NotNil(t, tasks[0].User)
	assert.Equal(t, project.ID, tasks[0].Project.ID)
	assert.Equal(t, user.ID, tasks[0].User.ID)
}

func TestDelete_SilentWhenAbsent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	assert.NoError(t, NewUserRepository(db).Delete(ctx, "missing"))
	assert.NoError(t, NewProjectRepository(db).Delete(ctx, "missing"))
	assert.NoError(t, NewTaskRepository(db).Delete(ctx, "missing"))
}

func TestDeleteProject_DoesNotRemoveUsers(t *testing.T) {
	db := setupTestDB(t)
	user, project := seed(t, db)
	ctx := context.Background()

	require.NoError(t, NewProjectRepository(db).Delete(ctx, project.ID))

	fetched, err := NewUserRepository(db).FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)
}

func TestDeleteUser_DoesNotRemoveUnrelatedTasks(t *testing.T) {
	db := setupTestDB(t)
	user, project := seed(t, db)
	ctx := context.Background()

	userRepo := NewUserRepository(db)
	other, err := userRepo.Create(ctx, "Bob", "bob@example.com")
	require.NoError(t, err)

	taskRepo := NewTaskRepository(db)
	task, err := taskRepo.Create(ctx, "Task", "Desc", models.StatusTodo, "2026-01-20", project.ID, user.ID)
	require.NoError(t, err)

	require.NoError(t, userRepo.Delete(ctx, other.ID))

	fetched, err := taskRepo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, fetched.ID)
}
