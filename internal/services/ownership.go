package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/monocle-dev/taskboard/internal/models"
	"github.com/monocle-dev/taskboard/internal/types"
)

type Access int

const (
	AccessNotFound Access = iota
	AccessForbidden
	AccessAuthorized
)

func (a Access) String() string {
	switch a {
	case AccessAuthorized:
		return "authorized"
	case AccessForbidden:
		return "forbidden"
	default:
		return "not_found"
	}
}

// OwnershipResolver walks the owner chain (task -> project -> owner) on every
// call. Nothing is cached, so a project deleted between requests is seen.
type OwnershipResolver struct {
	projects ProjectRepository
	tasks    TaskRepository
}

func NewOwnershipResolver(projects ProjectRepository, tasks TaskRepository) *OwnershipResolver {
	return &OwnershipResolver{projects: projects, tasks: tasks}
}

// ResolveProject returns the project only when the access is AccessAuthorized.
// A non-nil error means the lookup itself failed.
func (r *OwnershipResolver) ResolveProject(ctx context.Context, projectID, userID uuid.UUID) (Access, *models.Project, error) {
	project, err := r.projects.FindByID(ctx, projectID)

	if errors.Is(err, types.ErrNotFound) {
		return AccessNotFound, nil, nil
	}
	if err != nil {
		return AccessNotFound, nil, err
	}

	if project.OwnerID != userID {
		return AccessForbidden, nil, nil
	}

	return AccessAuthorized, project, nil
}

// ResolveTask loads the task, then its parent project. A task whose project
// no longer exists resolves to AccessNotFound.
func (r *OwnershipResolver) ResolveTask(ctx context.Context, taskID, userID uuid.UUID) (Access, *models.Task, error) {
	task, err := r.tasks.FindByID(ctx, taskID)

	if errors.Is(err, types.ErrNotFound) {
		return AccessNotFound, nil, nil
	}
	if err != nil {
		return AccessNotFound, nil, err
	}

	access, _, err := r.ResolveProject(ctx, task.ProjectID, userID)
	if err != nil || access != AccessAuthorized {
		return access, nil, err
	}

	return AccessAuthorized, task, nil
}
