package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "nitronflow/internal/errors"
	"nitronflow/internal/models"
	"nitronflow/internal/pagination"
)

// ticketService handles support ticket business logic.
type ticketService struct {
	db *gorm.DB
}

// NewTicketService creates a new TicketServicer.
func NewTicketService(db *gorm.DB) TicketServicer {
	return &ticketService{db: db}
}

// CreateTicket opens a new ticket.
func (s *ticketService) CreateTicket(subject, body, requester string, severity models.TicketSeverity) (*models.Ticket, error) {
	ticket := &models.Ticket{
		Subject:   subject,
		Body:      body,
		Requester: requester,
		Status:    models.TicketStatusOpen,
		Severity:  severity,
	}

	if err := s.db.Create(ticket).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return ticket, nil
}

// GetTickets returns a paginated list of tickets, optionally filtered by status.
func (s *ticketService) GetTickets(page pagination.PageRequest, status *models.TicketStatus) (*pagination.PageResponse[models.Ticket], error) {
	page.Defaults()

	base := s.db.Model(&models.Ticket{})
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var tickets []models.Ticket
	if err := base.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&tickets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(tickets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetTicketByID returns a ticket by ID.
func (s *ticketService) GetTicketByID(ticketID string) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := s.db.Where("id = ?", ticketID).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &ticket, nil
}

// UpdateTicket updates a ticket. Moving into resolved stamps the
// resolution time; leaving it clears the stamp.
func (s *ticketService) UpdateTicket(ticketID string, status *models.TicketStatus, severity *models.TicketSeverity, body *string) (*models.Ticket, error) {
	ticket, err := s.GetTicketByID(ticketID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if status != nil {
		updates["status"] = *status
		if *status == models.TicketStatusResolved {
			now := time.Now()
			updates["resolved_at"] = &now
		} else {
			updates["resolved_at"] = nil
		}
	}
	if severity != nil {
		updates["severity"] = *severity
	}
	if body != nil {
		updates["body"] = *body
	}

	if len(updates) > 0 {
		if err := s.db.Model(ticket).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return ticket, nil
}

// DeleteTicket soft-deletes a ticket.
func (s *ticketService) DeleteTicket(ticketID string) error {
	ticket, err := s.GetTicketByID(ticketID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(ticket).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
