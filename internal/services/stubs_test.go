package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/monocle-dev/taskboard/internal/models"
	"github.com/monocle-dev/taskboard/internal/store"
	"github.com/monocle-dev/taskboard/internal/types"
)

type stubUserRepository struct {
	users   map[uuid.UUID]models.User
	lookups int
}

func newStubUserRepository() *stubUserRepository {
	return &stubUserRepository{users: make(map[uuid.UUID]models.User)}
}

func (s *stubUserRepository) Create(ctx context.Context, user *models.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return types.ErrConflict
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *stubUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.lookups++
	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	return nil, types.ErrNotFound
}

func (s *stubUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.lookups++
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, types.ErrNotFound
}

// memoryStore backs both project and task repositories so cascades can be observed.
type memoryStore struct {
	projects map[uuid.UUID]models.Project
	tasks    map[uuid.UUID]models.Task
	clock    time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		projects: make(map[uuid.UUID]models.Project),
		tasks:    make(map[uuid.UUID]models.Task),
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memoryStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

type memoryProjects struct{ *memoryStore }

type memoryTasks struct{ *memoryStore }

func (m memoryProjects) Create(ctx context.Context, project *models.Project) error {
	project.ID = uuid.New()
	project.CreatedAt = m.tick()
	project.UpdatedAt = project.CreatedAt
	m.projects[project.ID] = *project
	return nil
}

func (m memoryProjects) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	if p, ok := m.projects[id]; ok {
		return &p, nil
	}
	return nil, types.ErrNotFound
}

func (m memoryProjects) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter store.ProjectFilter) ([]models.Project, error) {
	out := make([]models.Project, 0)
	for _, p := range m.projects {
		if p.OwnerID != ownerID {
			continue
		}
		if filter.Query != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(filter.Query)) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if filter.Offset >= len(out) {
		return []models.Project{}, nil
	}
	out = out[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m memoryProjects) Update(ctx context.Context, project *models.Project, updates map[string]interface{}) error {
	stored, ok := m.projects[project.ID]
	if !ok {
		return types.ErrNotFound
	}
	for k, v := range updates {
		switch k {
		case "title":
			stored.Title = v.(string)
		case "description":
			stored.Description = v.(string)
		case "status":
			stored.Status = v.(string)
		}
	}
	stored.UpdatedAt = m.tick()
	m.projects[project.ID] = stored
	*project = stored
	return nil
}

func (m memoryProjects) DeleteWithTasks(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.projects[id]; !ok {
		return types.ErrNotFound
	}
	for taskID, t := range m.tasks {
		if t.ProjectID == id {
			delete(m.tasks, taskID)
		}
	}
	delete(m.projects, id)
	return nil
}

func (m memoryTasks) Create(ctx context.Context, task *models.Task) error {
	task.ID = uuid.New()
	task.CreatedAt = m.tick()
	task.UpdatedAt = task.CreatedAt
	m.tasks[task.ID] = *task
	return nil
}

func (m memoryTasks) FindByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	if t, ok := m.tasks[id]; ok {
		return &t, nil
	}
	return nil, types.ErrNotFound
}

func (m memoryTasks) ListByProject(ctx context.Context, projectID uuid.UUID, status string) ([]models.Task, error) {
	out := make([]models.Task, 0)
	for _, t := range m.tasks {
		if t.ProjectID == projectID && (status == "" || t.Status == status) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m memoryTasks) Update(ctx context.Context, task *models.Task, updates map[string]interface{}) error {
	stored, ok := m.tasks[task.ID]
	if !ok {
		return types.ErrNotFound
	}
	for k, v := range updates {
		switch k {
		case "title":
			stored.Title = v.(string)
		case "description":
			stored.Description = v.(string)
		case "status":
			stored.Status = v.(string)
		case "due_date":
			due := v.(time.Time)
			stored.DueDate = &due
		}
	}
	stored.UpdatedAt = m.tick()
	m.tasks[task.ID] = stored
	*task = stored
	return nil
}

func (m memoryTasks) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.tasks[id]; !ok {
		return types.ErrNotFound
	}
	delete(m.tasks, id)
	return nil
}

type fixture struct {
	store    *memoryStore
	projects *ProjectService
	tasks    *TaskService
	resolver *OwnershipResolver
}

func newFixture() *fixture {
	mem := newMemoryStore()
	resolver := NewOwnershipResolver(memoryProjects{mem}, memoryTasks{mem})
	return &fixture{
		store:    mem,
		resolver: resolver,
		projects: NewProjectService(memoryProjects{mem}, memoryTasks{mem}, resolver),
		tasks:    NewTaskService(memoryTasks{mem}, resolver),
	}
}

func strPtr(s string) *string { return &s }
