package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/monocle-dev/taskboard/internal/models"
	"github.com/monocle-dev/taskboard/internal/store"
	"github.com/monocle-dev/taskboard/internal/types"
)

type ProjectInput struct {
	Title       string
	Description string
	Status      string
}

// ProjectPatch holds the fields of a partial update; nil means unchanged.
type ProjectPatch struct {
	Title       *string
	Description *string
	Status      *string
}

type ListProjectsQuery struct {
	Query string
	Page  int
	Limit int
}

type ProjectDetail struct {
	Project *models.Project `json:"project"`
	Tasks   []models.Task   `json:"tasks"`
}

type ProjectService struct {
	projects ProjectRepository
	tasks    TaskRepository
	resolver *OwnershipResolver
}

func NewProjectService(projects ProjectRepository, tasks TaskRepository, resolver *OwnershipResolver) *ProjectService {
	return &ProjectService{projects: projects, tasks: tasks, resolver: resolver}
}

func (s *ProjectService) Create(ctx context.Context, ownerID uuid.UUID, input ProjectInput) (*models.Project, error) {
	project := &models.Project{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Status:      input.Status,
		OwnerID:     ownerID,
	}
	if project.Status == "" {
		project.Status = types.StatusTodo
	}

	v := types.NewValidationError()
	checkTitle(v, project.Title)
	checkDescription(v, project.Description)
	checkStatus(v, project.Status)
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	return project, nil
}

func (s *ProjectService) List(ctx context.Context, ownerID uuid.UUID, query ListProjectsQuery) ([]models.Project, error) {
	page, limit := normalizePage(query.Page, query.Limit)

	projects, err := s.projects.ListByOwner(ctx, ownerID, store.ProjectFilter{
		Query:  strings.TrimSpace(query.Query),
		Offset: (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

func (s *ProjectService) Get(ctx context.Context, ownerID, projectID uuid.UUID) (*ProjectDetail, error) {
	project, err := s.ownedProject(ctx, projectID, ownerID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByProject(ctx, project.ID, "")
	if err != nil {
		return nil, fmt.Errorf("list project tasks: %w", err)
	}

	return &ProjectDetail{Project: project, Tasks: tasks}, nil
}

func (s *ProjectService) Update(ctx context.Context, ownerID, projectID uuid.UUID, patch ProjectPatch) (*models.Project, error) {
	project, err := s.ownedProject(ctx, projectID, ownerID)
	if err != nil {
		return nil, err
	}

	updates, err := patch.updates()
	if err != nil {
		return nil, err
	}

	if err := s.projects.Update(ctx, project, updates); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, ownerID, projectID uuid.UUID) error {
	project, err := s.ownedProject(ctx, projectID, ownerID)
	if err != nil {
		return err
	}

	if err := s.projects.DeleteWithTasks(ctx, project.ID); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	return nil
}

// ownedProject reports projects owned by someone else as types.ErrNotFound,
// so callers cannot probe for ids they do not own.
func (s *ProjectService) ownedProject(ctx context.Context, projectID, ownerID uuid.UUID) (*models.Project, error) {
	access, project, err := s.resolver.ResolveProject(ctx, projectID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("resolve project: %w", err)
	}
	if access != AccessAuthorized {
		return nil, types.ErrNotFound
	}
	return project, nil
}

func (p ProjectPatch) updates() (map[string]interface{}, error) {
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

	if err := v.OrNil(); err != nil {
		return nil, err
	}
	return updates, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = types.DefaultPage
	}
	if limit < 1 {
		limit = types.DefaultLimit
	}
	if limit > types.MaxLimit {
		limit = types.MaxLimit
	}
	// Keeps (page-1)*limit from overflowing; such a page is past the end anyway.
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}
	return page, limit
}
