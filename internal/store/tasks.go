package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/monocle-dev/taskboard/internal/models"
	"github.com/monocle-dev/taskboard/internal/types"
	"gorm.io/gorm"
)

type TaskStore struct {
	db *gorm.DB
}

func NewTaskStore(db *gorm.DB) *TaskStore {
	return &TaskStore{db: db}
}

func (s *TaskStore) Create(ctx context.Context, task *models.Task) error {
	return translate(s.db.WithContext(ctx).Create(task).Error)
}

func (s *TaskStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task

	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		return nil, translate(err)
	}

	return &task, nil
}

// ListByProject returns the project's tasks newest first. An empty status
// matches every task.
func (s *TaskStore) ListByProject(ctx context.Context, projectID uuid.UUID, status string) ([]models.Task, error) {
	query := s.db.WithContext(ctx).Where("project_id = ?", projectID)

	if status != "" {
		query = query.Where("status = ?", status)
	}

	tasks := make([]models.Task, 0)

	if err := query.Order("created_at DESC").Order("id DESC").Find(&tasks).Error; err != nil {
		return nil, translate(err)
	}

	return tasks, nil
}

func (s *TaskStore) Update(ctx context.Context, task *models.Task, updates map[string]interface{}) error {
	db := s.db.WithContext(ctx)

	if len(updates) > 0 {
		if err := db.Model(task).Updates(updates).Error; err != nil {
			return translate(err)
		}
	}

	return translate(db.Where("id = ?", task.ID).First(task).Error)
}

func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{})

	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return types.ErrNotFound
	}

	return nil
}
