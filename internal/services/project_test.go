package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/monocle-dev/taskboard/internal/types"
)

func TestCreateProjectSetsOwnerAndDefaultStatus(t *testing.T) {
	f := newFixture()
	owner := uuid.New()

	project, err := f.projects.Create(context.Background(), owner, ProjectInput{Title: "  P1  "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if project.OwnerID != owner {
		t.Fatalf("expected owner %s, got %s", owner, project.OwnerID)
	}
	if project.Title != "P1" || project.Status != types.StatusTodo {
		t.Fatalf("unexpected project: %+v", project)
	}
}

func TestCreateProjectValidatesInput(t *testing.T) {
	f := newFixture()

	_, err := f.projects.Create(context.Background(), uuid.New(), ProjectInput{Title: "   ", Status: "blocked"})
	if !errors.Is(err, types.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	var ve *types.ValidationError
	if !errors.As(err, &ve) || ve.Fields["title"] == "" || ve.Fields["status"] == "" {
		t.Fatalf("expected title and status field errors, got %v", err)
	}
	if len(f.store.projects) != 0 {
		t.Fatal("invalid project must not be persisted")
	}
}

func TestListProjectsOnlyReturnsOwnProjects(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	for i := 0; i < 3; i++ {
		if _, err := f.projects.Create(ctx, alice, ProjectInput{Title: fmt.Sprintf("A%d", i)}); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if _, err := f.projects.Create(ctx, bob, ProjectInput{Title: fmt.Sprintf("B%d", i)}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	projects, err := f.projects.List(ctx, alice, ListProjectsQuery{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(projects) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(projects))
	}
	for _, p := range projects {
		if p.OwnerID != alice {
			t.Fatalf("leaked project %q owned by %s", p.Title, p.OwnerID)
		}
	}
}

func TestListProjectsPaginates(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	owner := uuid.New()

	for i := 0; i < 25; i++ {
		if _, err := f.projects.Create(ctx, owner, ProjectInput{Title: fmt.Sprintf("P%02d", i)}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	page1, err := f.projects.List(ctx, owner, ListProjectsQuery{Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page1) != 20 || page1[0].Title != "P24" {
		t.Fatalf("unexpected page 1: len=%d first=%q", len(page1), page1[0].Title)
	}

	page2, err := f.projects.List(ctx, owner, ListProjectsQuery{Page: 2, Limit: 20})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page2) != 5 || page2[4].Title != "P00" {
		t.Fatalf("unexpected page 2: len=%d", len(page2))
	}

	defaults, err := f.projects.List(ctx, owner, ListProjectsQuery{Page: -3, Limit: 0})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(defaults) != types.DefaultLimit {
		t.Fatalf("expected default limit %d, got %d", types.DefaultLimit, len(defaults))
	}
}

func TestNormalizePage(t *testing.T) {
	cases := []struct{ page, limit, wantPage, wantLimit int }{
		{0, 0, 1, 20},
		{3, 10, 3, 10},
		{1, 1000, 1, 100},
		{-1, -1, 1, 20},
		{math.MaxInt, 20, math.MaxInt / 20, 20},
	}
	for _, tc := range cases {
		page, limit := normalizePage(tc.page, tc.limit)
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Errorf("normalizePage(%d, %d) = %d, %d; want %d, %d", tc.page, tc.limit, page, limit, tc.wantPage, tc.wantLimit)
		}
		if offset := (page - 1) * limit; offset < 0 {
			t.Errorf("normalizePage(%d, %d) yields negative offset %d", tc.page, tc.limit, offset)
		}
	}
}

func TestListProjectsPastTheEndIsEmpty(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	owner := uuid.New()

	if _, err := f.projects.Create(ctx, owner, ProjectInput{Title: "P"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	projects, err := f.projects.List(ctx, owner, ListProjectsQuery{Page: math.MaxInt, Limit: 20})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("expected no projects past the last page, got %d", len(projects))
	}
}

func TestUpdateForeignProjectWithInvalidPatchIsNotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	owner, stranger := uuid.New(), uuid.New()

	project, err := f.projects.Create(ctx, owner, ProjectInput{Title: "P"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := f.projects.Update(ctx, stranger, project.ID, ProjectPatch{Status: strPtr("bogus")}); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before validation, got %v", err)
	}
}

func TestTitleLengthCountsCharacters(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	owner := uuid.New()

	accented := strings.Repeat("é", types.MaxTitleLength)
	if _, err := f.projects.Create(ctx, owner, ProjectInput{Title: accented}); err != nil {
		t.Fatalf("expected %d-character title to be accepted, got %v", types.MaxTitleLength, err)
	}

	tooLong := strings.Repeat("é", types.MaxTitleLength+1)
	if _, err := f.projects.Create(ctx, owner, ProjectInput{Title: tooLong}); !errors.Is(err, types.ErrValidation) {
		t.Fatalf("expected ErrValidation for %d characters, got %v", types.MaxTitleLength+1, err)
	}
}

func TestGetProjectHidesForeignProjects(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	owner, stranger := uuid.New(), uuid.New()

	project, err := f.projects.Create(ctx, owner, ProjectInput{Title: "P"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := f.projects.Get(ctx, stranger, project.ID); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for stranger, got %v", err)
	}
	if _, err := f.projects.Update(ctx, stranger, project.ID, ProjectPatch{Title: strPtr("hijack")}); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on foreign update, got %v", err)
	}
	if err := f.projects.Delete(ctx, stranger, project.ID); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on foreign delete, got %v", err)
	}
	if f.store.projects[project.ID].Title != "P" {
		t.Fatal("foreign update must not mutate the project")
	}
}

func TestGetProjectIncludesTasksNewestFirst(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	owner := uuid.New()

	project, err := f.projects.Create(ctx, owner, ProjectInput{Title: "P"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for _, title := range []string{"first", "second"} {
		if _, err := f.tasks.Create(ctx, owner, project.ID, TaskInput{Title: title}); err != nil {
			t.Fatalf("Create task: %v", err)
		}
	}

	detail, err := f.projects.Get(ctx, owner, project.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if detail.Project.ID != project.ID || len(detail.Tasks) != 2 || detail.Tasks[0].Title != "second" {
		t.Fatalf("unexpected detail: %+v", detail)
	}
}

func TestUpdateProjectMergesOnlyGivenFields(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	owner := uuid.New()

	project, err := f.projects.Create(ctx, owner, ProjectInput{Title: "P", Description: "desc"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := f.projects.Update(ctx, owner, project.ID, ProjectPatch{Status: strPtr(types.StatusDone)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != types.StatusDone || updated.Title != "P" || updated.Description != "desc" || updated.OwnerID != owner {
		t.Fatalf("unexpected project after update: %+v", updated)
	}

	if _, err := f.projects.Update(ctx, owner, project.ID, ProjectPatch{Title: strPtr("")}); !errors.Is(err, types.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty title, got %v", err)
	}
}

func TestDeleteProjectCascadesAndIsNotFoundTwice(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	owner := uuid.New()

	project, err := f.projects.Create(ctx, owner, ProjectInput{Title: "P"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := f.tasks.Create(ctx, owner, project.ID, TaskInput{Title: "t"}); err != nil {
			t.Fatalf("Create task: %v", err)
		}
	}

	if err := f.projects.Delete(ctx, owner, project.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(f.store.tasks) != 0 {
		t.Fatalf("expected tasks to be removed, %d left", len(f.store.tasks))
	}
	if err := f.projects.Delete(ctx, owner, project.ID); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
	if _, err := f.tasks.ListByProject(ctx, owner, project.ID, ""); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound listing tasks of deleted project, got %v", err)
	}
}
