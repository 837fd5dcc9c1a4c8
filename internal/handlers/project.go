package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/monocle-dev/taskboard/internal/models"
	"github.com/monocle-dev/taskboard/internal/services"
	"github.com/monocle-dev/taskboard/internal/types"
	"github.com/monocle-dev/taskboard/internal/utils"
)

type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Status      string `json:"status" binding:"omitempty,oneof=todo in-progress done"`
}

// UpdateProjectRequest fields are validated by ProjectService after the
// ownership check.
type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type ProjectService interface {
	Create(ctx context.Context, ownerID uuid.UUID, input services.ProjectInput) (*models.Project, error)
	List(ctx context.Context, ownerID uuid.UUID, query services.ListProjectsQuery) ([]models.Project, error)
	Get(ctx context.Context, ownerID, projectID uuid.UUID) (*services.ProjectDetail, error)
	Update(ctx context.Context, ownerID, projectID uuid.UUID, patch services.ProjectPatch) (*models.Project, error)
	Delete(ctx context.Context, ownerID, projectID uuid.UUID) error
}

type ProjectHandler struct {
	projects ProjectService
}

func NewProjectHandler(projects ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

func (h *ProjectHandler) CreateProject(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var body CreateProjectRequest

	if !bindJSON(ctx, &body) {
		return
	}

	project, err := h.projects.Create(ctx.Request.Context(), userID, services.ProjectInput{
		Title:       body.Title,
		Description: body.Description,
		Status:      body.Status,
	})

	if err != nil {
		respondError(ctx, err, "Not found")
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) ListProjects(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	projects, err := h.projects.List(ctx.Request.Context(), userID, services.ListProjectsQuery{
		Query: ctx.Query("q"),
		Page:  utils.GetIntQuery(ctx, "page", types.DefaultPage),
		Limit: utils.GetIntQuery(ctx, "limit", types.DefaultLimit),
	})

	if err != nil {
		respondError(ctx, err, "Not found")
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetProject(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	projectID, ok := utils.GetUUIDParam(ctx, "id")
	if !ok {
		respondMessage(ctx, http.StatusNotFound, "Not found")
		return
	}

	detail, err := h.projects.Get(ctx.Request.Context(), userID, projectID)

	if err != nil {
		respondError(ctx, err, "Not found")
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

func (h *ProjectHandler) UpdateProject(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	projectID, ok := utils.GetUUIDParam(ctx, "id")
	if !ok {
		respondMessage(ctx, http.StatusNotFound, "Not found")
		return
	}

	var body UpdateProjectRequest

	if !bindOptionalJSON(ctx, &body) {
		return
	}

	project, err := h.projects.Update(ctx.Request.Context(), userID, projectID, services.ProjectPatch{
		Title:       body.Title,
		Description: body.Description,
		Status:      body.Status,
	})

	if err != nil {
		respondError(ctx, err, "Not found")
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	projectID, ok := utils.GetUUIDParam(ctx, "id")
	if !ok {
		respondMessage(ctx, http.StatusNotFound, "Not found")
		return
	}

	if err := h.projects.Delete(ctx.Request.Context(), userID, projectID); err != nil {
		respondError(ctx, err, "Not found")
		return
	}

	respondMessage(ctx, http.StatusOK, "Deleted")
}

// currentUserID writes a 401 when the auth middleware did not run.
func currentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondMessage(ctx, http.StatusUnauthorized, "User not authenticated")
		return uuid.Nil, false
	}

	return userID, true
}
