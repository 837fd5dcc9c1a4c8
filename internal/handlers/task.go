package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/monocle-dev/taskboard/internal/models"
	"github.com/monocle-dev/taskboard/internal/services"
	"github.com/monocle-dev/taskboard/internal/utils"
)

// Task fields are validated by TaskService after the ownership check.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
}

type TaskService interface {
	Create(ctx context.Context, ownerID, projectID uuid.UUID, input services.TaskInput) (*models.Task, error)
	Update(ctx context.Context, ownerID, taskID uuid.UUID, patch services.TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, ownerID, taskID uuid.UUID) error
	ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, status string) ([]models.Task, error)
}

type TaskHandler struct {
	tasks TaskService
}

func NewTaskHandler(tasks TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func (h *TaskHandler) CreateTask(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	projectID, ok := utils.GetUUIDParam(ctx, "projectId")
	if !ok {
		respondMessage(ctx, http.StatusNotFound, "Project not found")
		return
	}

	var body CreateTaskRequest

	if !bindOptionalJSON(ctx, &body) {
		return
	}

	task, err := h.tasks.Create(ctx.Request.Context(), userID, projectID, services.TaskInput{
		Title:       body.Title,
		Description: body.Description,
		Status:      body.Status,
		DueDate:     body.DueDate,
	})

	if err != nil {
		respondError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) UpdateTask(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	taskID, ok := utils.GetUUIDParam(ctx, "id")
	if !ok {
		respondMessage(ctx, http.StatusNotFound, "Not found")
		return
	}

	var body UpdateTaskRequest

	if !bindOptionalJSON(ctx, &body) {
		return
	}

	task, err := h.tasks.Update(ctx.Request.Context(), userID, taskID, services.TaskPatch{
		Title:       body.Title,
		Description: body.Description,
		Status:      body.Status,
		DueDate:     body.DueDate,
	})

	if err != nil {
		respondError(ctx, err, "Not found")
		return
	}

	ctx.JSON(http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	taskID, ok := utils.GetUUIDParam(ctx, "id")
	if !ok {
		respondMessage(ctx, http.StatusNotFound, "Not found")
		return
	}

	if err := h.tasks.Delete(ctx.Request.Context(), userID, taskID); err != nil {
		respondError(ctx, err, "Not found")
		return
	}

	respondMessage(ctx, http.StatusOK, "Deleted")
}

func (h *TaskHandler) ListProjectTasks(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	projectID, ok := utils.GetUUIDParam(ctx, "projectId")
	if !ok {
		respondMessage(ctx, http.StatusNotFound, "Project not found")
		return
	}

	tasks, err := h.tasks.ListByProject(ctx.Request.Context(), userID, projectID, ctx.Query("status"))

	if err != nil {
		respondError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}
