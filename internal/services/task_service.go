package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "nitronflow/internal/errors"
	"nitronflow/internal/models"
	"nitronflow/internal/pagination"
)

// allowedMoves encodes the board's column transitions. Done is terminal.
var allowedMoves = map[models.TaskColumn][]models.TaskColumn{
	models.TaskColumnBacklog:    {models.TaskColumnInProgress},
	models.TaskColumnInProgress: {models.TaskColumnReview, models.TaskColumnBacklog},
	models.TaskColumnReview:     {models.TaskColumnDone, models.TaskColumnInProgress},
	models.TaskColumnDone:       {},
}

// taskService handles task-board business logic.
type taskService struct {
	db *gorm.DB
}

// NewTaskService creates a new TaskServicer.
func NewTaskService(db *gorm.DB) TaskServicer {
	return &taskService{db: db}
}

// CreateTask creates a new task in the backlog column.
func (s *taskService) CreateTask(title, description string, priority models.TaskPriority, dueDate *time.Time) (*models.Task, error) {
	task := &models.Task{
		Title:       title,
		Description: description,
		Column:      models.TaskColumnBacklog,
		Priority:    priority,
		DueDate:     dueDate,
	}

	if err := s.db.Create(task).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return task, nil
}

// GetTasks returns a paginated list of tasks, optionally filtered by column.
func (s *taskService) GetTasks(page pagination.PageRequest, column *models.TaskColumn) (*pagination.PageResponse[models.Task], error) {
	page.Defaults()

	base := s.db.Model(&models.Task{})
	if column != nil {
		base = base.Where("board_column = ?", *column)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var tasks []models.Task
	if err := base.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&tasks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(tasks, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetTaskByID returns a task by ID.
func (s *taskService) GetTaskByID(taskID string) (*models.Task, error) {
	var task models.Task
	if err := s.db.Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &task, nil
}

// UpdateTask updates a task's editable fields. Column changes go through
// MoveTask so the board transitions stay enforced.
func (s *taskService) UpdateTask(taskID, title, description string, priority *models.TaskPriority, dueDate *time.Time) (*models.Task, error) {
	task, err := s.GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if title != "" {
		updates["title"] = title
	}
	if description != "" {
		updates["description"] = description
	}
	if priority != nil {
		updates["priority"] = *priority
	}
	if dueDate != nil {
		updates["due_date"] = dueDate
	}

	if len(updates) > 0 {
		if err := s.db.Model(task).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return task, nil
}

// MoveTask moves a task to another column, enforcing the board's
// transition rules. Arriving in done stamps the completion time.
func (s *taskService) MoveTask(taskID string, to models.TaskColumn) (*models.Task, error) {
	task, err := s.GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range allowedMoves[task.Column] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidTaskMove,
			"Task cannot move from "+string(task.Column)+" to "+string(to))
	}

	updates := map[string]interface{}{"board_column": to}
	if to == models.TaskColumnDone {
		now := time.Now()
		updates["completed_at"] = &now
	}

	if err := s.db.Model(task).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return task, nil
}

// DeleteTask soft-deletes a task.
func (s *taskService) DeleteTask(taskID string) error {
	task, err := s.GetTaskByID(taskID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(task).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
