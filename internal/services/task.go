package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/monocle-dev/taskboard/internal/models"
	"github.com/monocle-dev/taskboard/internal/types"
)

type TaskInput struct {
	Title       string
	Description string
	Status      string
	DueDate     *time.Time
}

// TaskPatch holds the fields of a partial update; nil means unchanged.
// The parent project is not part of the patch and never changes.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
	DueDate     *time.Time
}

type TaskService struct {
	tasks    TaskRepository
	resolver *OwnershipResolver
}

func NewTaskService(tasks TaskRepository, resolver *OwnershipResolver) *TaskService {
	return &TaskService{tasks: tasks, resolver: resolver}
}

func (s *TaskService) Create(ctx context.Context, ownerID, projectID uuid.UUID, input TaskInput) (*models.Task, error) {
	if _, err := s.ownedProject(ctx, projectID, ownerID); err != nil {
		return nil, err
	}

	task := &models.Task{
		ProjectID:   projectID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Status:      input.Status,
		DueDate:     input.DueDate,
	}
	if task.Status == "" {
		task.Status = types.StatusTodo
	}

	v := types.NewValidationError()
	checkTitle(v, task.Title)
	checkDescription(v, task.Description)
	checkStatus(v, task.Status)
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return task, nil
}

// Update distinguishes a missing task (ErrNotFound) from a task in someone
// else's project (ErrForbidden).
func (s *TaskService) Update(ctx context.Context, ownerID, taskID uuid.UUID, patch TaskPatch) (*models.Task, error) {
	task, err := s.authorizedTask(ctx, taskID, ownerID)
	if err != nil {
		return nil, err
	}

	updates, err := patch.updates()
	if err != nil {
		return nil, err
	}

	if err := s.tasks.Update(ctx, task, updates); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, ownerID, taskID uuid.UUID) error {
	task, err := s.authorizedTask(ctx, taskID, ownerID)
	if err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, task.ID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	return nil
}

// ListByProject returns the project's tasks, optionally restricted to one status.
func (s *TaskService) ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, status string) ([]models.Task, error) {
	if _, err := s.ownedProject(ctx, projectID, ownerID); err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByProject(ctx, projectID, strings.TrimSpace(status))
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

func (s *TaskService) ownedProject(ctx context.Context, projectID, ownerID uuid.UUID) (*models.Project, error) {
	access, project, err := s.resolver.ResolveProject(ctx, projectID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("resolve project: %w", err)
	}
	if access != AccessAuthorized {
		return nil, types.ErrNotFound
	}
	return project, nil
}

func (s *TaskService) authorizedTask(ctx context.Context, taskID, ownerID uuid.UUID) (*models.Task, error) {
	access, task, err := s.resolver.ResolveTask(ctx, taskID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("resolve task: %w", err)
	}

	switch access {
	case AccessAuthorized:
		return task, nil
	case AccessForbidden:
		return nil, types.ErrForbidden
	default:
		return nil, types.ErrNotFound
	}
}

func (p TaskPatch) updates() (map[string]interface{}, error) {
	v := types.NewValidationError()
	updates := make(map[string]interface{})

	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		checkTitle(v, title)
		updates["title"] = title
	}
	if p.Description != nil {
		checkDescription(v, *p.Description)
		updates["description"] = *p.Description
	}
	if p.Status != nil {
		checkStatus(v, *p.Status)
		updates["status"] = *p.Status
	}
	if p.DueDate != nil {
		updates["due_date"] = *p.DueDate
	}

	if err := v.OrNil(); err != nil {
		return nil, err
	}
	return updates, nil
}
