// Package services contains the business logic for the CRUD-shaped
// modules that have no derived-state engine of their own: the task
// board, CRM leads, and support tickets.
package services

import (
	"time"

	"nitronflow/internal/models"
	"nitronflow/internal/pagination"
)

// TaskServicer defines the task board operations.
type TaskServicer interface {
	CreateTask(title, description string, priority models.TaskPriority, dueDate *time.Time) (*models.Task, error)
	GetTasks(page pagination.PageRequest, column *models.TaskColumn) (*pagination.PageResponse[models.Task], error)
	GetTaskByID(taskID string) (*models.Task, error)
	UpdateTask(taskID, title, description string, priority *models.TaskPriority, dueDate *time.Time) (*models.Task, error)
	MoveTask(taskID string, to models.TaskColumn) (*models.Task, error)
	DeleteTask(taskID string) error
}

// LeadServicer defines the CRM lead operations.
type LeadServicer interface {
	CreateLead(name, company, email, phone string, estimatedValue int64, notes string) (*models.Lead, error)
	GetLeads(page pagination.PageRequest, stage *models.LeadStage) (*pagination.PageResponse[models.Lead], error)
	GetLeadByID(leadID string) (*models.Lead, error)
	UpdateLead(leadID string, name, company, email, phone string, stage *models.LeadStage, estimatedValue *int64, notes *string) (*models.Lead, error)
	DeleteLead(leadID string) error
}

// TicketServicer defines the support ticket operations.
type TicketServicer interface {
	CreateTicket(subject, body, requester string, severity models.TicketSeverity) (*models.Ticket, error)
	GetTickets(page pagination.PageRequest, status *models.TicketStatus) (*pagination.PageResponse[models.Ticket], error)
	GetTicketByID(ticketID string) (*models.Ticket, error)
	UpdateTicket(ticketID string, status *models.TicketStatus, severity *models.TicketSeverity, body *string) (*models.Ticket, error)
	DeleteTicket(ticketID string) error
}
