package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "nitronflow/internal/errors"
	"nitronflow/internal/models"
	"nitronflow/internal/pagination"
	"nitronflow/internal/services"
)

// TaskHandler handles task-board requests.
type TaskHandler struct {
	taskService services.TaskServicer
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService services.TaskServicer) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTaskRequest represents the request payload for creating a task.
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=200"`
	Description string     `json:"description" binding:"omitempty,max=2000"`
	Priority    string     `json:"priority" binding:"omitempty,task_priority"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateTaskRequest represents the request payload for updating a task.
type UpdateTaskRequest struct {
	Title       string     `json:"title" binding:"omitempty,min=1,max=200"`
	Description string     `json:"description" binding:"omitempty,max=2000"`
	Priority    *string    `json:"priority" binding:"omitempty,task_priority"`
	DueDate     *time.Time `json:"due_date"`
}

// MoveTaskRequest represents the request payload for moving a task.
type MoveTaskRequest struct {
	To string `json:"to" binding:"required,task_column"`
}

// CreateTask handles the creation of a new task.
// @Summary     Create a task
// @Description Create a new task in the backlog column
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       request body CreateTaskRequest true "Task details"
// @Success     201 {object} models.Task "Task created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	priority := models.TaskPriorityMedium
	if req.Priority != "" {
		priority = models.TaskPriority(req.Priority)
	}

	task, err := h.taskService.CreateTask(req.Title, req.Description, priority, req.DueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": task})
}

// GetTasks handles listing tasks.
// @Summary     Get tasks
// @Description Get a paginated list of tasks, optionally filtered by column
// @Tags        tasks
// @Produce     json
// @Param       column    query string false "Filter by board column"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Task] "Paginated tasks"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /tasks [get]
func (h *TaskHandler) GetTasks(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var column *models.TaskColumn
	if v := c.Query("column"); v != "" {
		col := models.TaskColumn(v)
		switch col {
		case models.TaskColumnBacklog, models.TaskColumnInProgress, models.TaskColumnReview, models.TaskColumnDone:
			column = &col
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown board column: "+v))
			return
		}
	}

	result, err := h.taskService.GetTasks(page, column)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateTask handles updating a task's fields.
// @Summary     Update a task
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       id      path string            true "Task ID"
// @Param       request body UpdateTaskRequest true "Fields to update"
// @Success     200 {object} models.Task "Task updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Router      /tasks/{id} [patch]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var priority *models.TaskPriority
	if req.Priority != nil {
		p := models.TaskPriority(*req.Priority)
		priority = &p
	}

	task, err := h.taskService.UpdateTask(c.Param("id"), req.Title, req.Description, priority, req.DueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// MoveTask handles moving a task to another board column.
// @Summary     Move a task
// @Description Move a task to another column, enforcing board transitions
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       id      path string          true "Task ID"
// @Param       request body MoveTaskRequest true "Target column"
// @Success     200 {object} models.Task "Task moved"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Failure     409 {object} ErrorResponse "Invalid transition"
// @Router      /tasks/{id}/move [post]
func (h *TaskHandler) MoveTask(c *gin.Context) {
	var req MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	task, err := h.taskService.MoveTask(c.Param("id"), models.TaskColumn(req.To))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// DeleteTask handles deleting a task.
// @Summary     Delete a task
// @Tags        tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     204 "Task deleted"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Router      /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.taskService.DeleteTask(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
