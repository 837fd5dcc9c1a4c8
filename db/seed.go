package db

import (
	"context"
	"fmt"
	"time"

	"github.com/monocle-dev/taskboard/internal/auth"
	"github.com/monocle-dev/taskboard/internal/models"
	"github.com/monocle-dev/taskboard/internal/types"
	"gorm.io/gorm"
)

const (
	SeedEmail    = "test@example.com"
	SeedPassword = "Test@123"

	seedProjects        = 2
	seedTasksPerProject = 3
)

type SeedResult struct {
	User     models.User
	Projects []models.Project
	Tasks    []models.Task
}

// Seed wipes users, projects and tasks, then writes one demo user with two
// projects of three tasks each. Everything happens in one transaction.
func Seed(ctx context.Context, conn *gorm.DB) (*SeedResult, error) {
	hash, err := auth.HashPassword(SeedPassword)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	result := &SeedResult{}
	statuses := types.Statuses
	now := time.Now()

	err = conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.Task{}, &models.Project{}, &models.User{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("clear %T: %w", model, err)
			}
		}

		result.User = models.User{Name: "Seed User", Email: SeedEmail, PasswordHash: hash}
		if err := tx.Create(&result.User).Error; err != nil {
			return fmt.Errorf("create seed user: %w", err)
		}

		for i := 1; i <= seedProjects; i++ {
			project := models.Project{
				Title:       fmt.Sprintf("Seed Project %d", i),
				Description: fmt.Sprintf("This is a seeded project %d", i),
				Status:      types.StatusTodo,
				OwnerID:     result.User.ID,
			}
			if err := tx.Create(&project).Error; err != nil {
				return fmt.Errorf("create seed project: %w", err)
			}
			result.Projects = append(result.Projects, project)

			for t := 1; t <= seedTasksPerProject; t++ {
				due := now.Add(time.Duration(t) * 24 * time.Hour)
				task := models.Task{
					ProjectID:   project.ID,
					Title:       fmt.Sprintf("Task %d - %s", t, project.Title),
					Description: fmt.Sprintf("Seeded task %d for %s", t, project.Title),
					Status:      statuses[(t-1)%len(statuses)],
					DueDate:     &due,
				}
				if err := tx.Create(&task).Error; err != nil {
					return fmt.Errorf("create seed task: %w", err)
				}
				result.Tasks = append(result.Tasks, task)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}
