package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "nitronflow/internal/errors"
	"nitronflow/internal/models"
	"nitronflow/internal/pagination"
	"nitronflow/internal/services"
)

// TicketHandler handles support ticket requests.
type TicketHandler struct {
	ticketService services.TicketServicer
}

// NewTicketHandler creates a new TicketHandler.
func NewTicketHandler(ticketService services.TicketServicer) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// CreateTicketRequest represents the request payload for opening a ticket.
type CreateTicketRequest struct {
	Subject   string `json:"subject" binding:"required,min=1,max=200"`
	Body      string `json:"body" binding:"omitempty,max=5000"`
	Requester string `json:"requester" binding:"omitempty,max=200"`
	Severity  string `json:"severity" binding:"omitempty,ticket_severity"`
}

// UpdateTicketRequest represents the request payload for updating a ticket.
type UpdateTicketRequest struct {
	Status   *string `json:"status" binding:"omitempty,ticket_status"`
	Severity *string `json:"severity" binding:"omitempty,ticket_severity"`
	Body     *string `json:"body" binding:"omitempty,max=5000"`
}

// CreateTicket handles opening a new ticket.
// @Summary     Open a ticket
// @Tags        tickets
// @Accept      json
// @Produce     json
// @Param       request body CreateTicketRequest true "Ticket details"
// @Success     201 {object} models.Ticket "Ticket opened"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	severity := models.TicketSeverityMedium
	if req.Severity != "" {
		severity = models.TicketSeverity(req.Severity)
	}

	ticket, err := h.ticketService.CreateTicket(req.Subject, req.Body, req.Requester, severity)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ticket": ticket})
}

// GetTickets handles listing tickets.
// @Summary     Get tickets
// @Description Get a paginated list of tickets, optionally filtered by status
// @Tags        tickets
// @Produce     json
// @Param       status    query string false "Filter by status"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Ticket] "Paginated tickets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /tickets [get]
func (h *TicketHandler) GetTickets(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var status *models.TicketStatus
	if v := c.Query("status"); v != "" {
		s := models.TicketStatus(v)
		switch s {
		case models.TicketStatusOpen, models.TicketStatusPending, models.TicketStatusResolved, models.TicketStatusClosed:
			status = &s
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown ticket status: "+v))
			return
		}
	}

	result, err := h.ticketService.GetTickets(page, status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateTicket handles updating a ticket.
// @Summary     Update a ticket
// @Tags        tickets
// @Accept      json
// @Produce     json
// @Param       id      path string              true "Ticket ID"
// @Param       request body UpdateTicketRequest true "Fields to update"
// @Success     200 {object} models.Ticket "Ticket updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Ticket not found"
// @Router      /tickets/{id} [patch]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var status *models.TicketStatus
	if req.Status != nil {
		s := models.TicketStatus(*req.Status)
		status = &s
	}
	var severity *models.TicketSeverity
	if req.Severity != nil {
		s := models.TicketSeverity(*req.Severity)
		severity = &s
	}

	ticket, err := h.ticketService.UpdateTicket(c.Param("id"), status, severity, req.Body)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

// DeleteTicket handles deleting a ticket.
// @Summary     Delete a ticket
// @Tags        tickets
// @Produce     json
// @Param       id path string true "Ticket ID"
// @Success     204 "Ticket deleted"
// @Failure     404 {object} ErrorResponse "Ticket not found"
// @Router      /tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	if err := h.ticketService.DeleteTicket(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
