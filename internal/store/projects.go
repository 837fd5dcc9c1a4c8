package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/monocle-dev/taskboard/internal/models"
	"github.com/monocle-dev/taskboard/internal/types"
	"gorm.io/gorm"
)

type ProjectFilter struct {
	Query  string
	Offset int
	Limit  int
}

type ProjectStore struct {
	db *gorm.DB
}

func NewProjectStore(db *gorm.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

func (s *ProjectStore) Create(ctx context.Context, project *models.Project) error {
	return translate(s.db.WithContext(ctx).Create(project).Error)
}

func (s *ProjectStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project

	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, translate(err)
	}

	return &project, nil
}

// ListByOwner returns the owner's projects newest first.
func (s *ProjectStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter ProjectFilter) ([]models.Project, error) {
	query := s.db.WithContext(ctx).Where("owner_id = ?", ownerID)

	if filter.Query != "" {
		query = query.Where(`LOWER(title) LIKE ? ESCAPE '\'`, containsPattern(filter.Query))
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	projects := make([]models.Project, 0)

	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Offset(filter.Offset).
		Find(&projects).Error

	if err != nil {
		return nil, translate(err)
	}

	return projects, nil
}

// Update applies the column map and reloads the project.
func (s *ProjectStore) Update(ctx context.Context, project *models.Project, updates map[string]interface{}) error {
	db := s.db.WithContext(ctx)

	if len(updates) > 0 {
		if err := db.Model(project).Updates(updates).Error; err != nil {
			return translate(err)
		}
	}

	return translate(db.Where("id = ?", project.ID).First(project).Error)
}

// DeleteWithTasks removes the project's tasks and then the project inside a
// single transaction, so a failure leaves both in place.
func (s *ProjectStore) DeleteWithTasks(ctx context.Context, id uuid.UUID) error {
	return translate(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Project{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return types.ErrNotFound
		}

		return nil
	}))
}
