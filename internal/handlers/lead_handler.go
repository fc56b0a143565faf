package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "nitronflow/internal/errors"
	"nitronflow/internal/models"
	"nitronflow/internal/pagination"
	"nitronflow/internal/services"
)

// LeadHandler handles CRM lead requests.
type LeadHandler struct {
	leadService services.LeadServicer
}

// NewLeadHandler creates a new LeadHandler.
func NewLeadHandler(leadService services.LeadServicer) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// CreateLeadRequest represents the request payload for creating a lead.
type CreateLeadRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=200"`
	Company        string `json:"company" binding:"omitempty,max=200"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone" binding:"omitempty,max=30"`
	EstimatedValue int64  `json:"estimated_value" binding:"gte=0"`
	Notes          string `json:"notes" binding:"omitempty,max=2000"`
}

// UpdateLeadRequest represents the request payload for updating a lead.
type UpdateLeadRequest struct {
	Name           string  `json:"name" binding:"omitempty,min=1,max=200"`
	Company        string  `json:"company" binding:"omitempty,max=200"`
	Email          string  `json:"email" binding:"omitempty,email"`
	Phone          string  `json:"phone" binding:"omitempty,max=30"`
	Stage          *string `json:"stage" binding:"omitempty,lead_stage"`
	EstimatedValue *int64  `json:"estimated_value" binding:"omitempty,gte=0"`
	Notes          *string `json:"notes" binding:"omitempty,max=2000"`
}

// CreateLead handles the creation of a new lead.
// @Summary     Create a lead
// @Description Create a new lead at the start of the pipeline
// @Tags        leads
// @Accept      json
// @Produce     json
// @Param       request body CreateLeadRequest true "Lead details"
// @Success     201 {object} models.Lead "Lead created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	lead, err := h.leadService.CreateLead(req.Name, req.Company, req.Email, req.Phone, req.EstimatedValue, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"lead": lead})
}

// GetLeads handles listing leads.
// @Summary     Get leads
// @Description Get a paginated list of leads, optionally filtered by stage
// @Tags        leads
// @Produce     json
// @Param       stage     query string false "Filter by pipeline stage"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Lead] "Paginated leads"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /leads [get]
func (h *LeadHandler) GetLeads(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var stage *models.LeadStage
	if v := c.Query("stage"); v != "" {
		s := models.LeadStage(v)
		switch s {
		case models.LeadStageNew, models.LeadStageContacted, models.LeadStageQualified, models.LeadStageWon, models.LeadStageLost:
			stage = &s
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown pipeline stage: "+v))
			return
		}
	}

	result, err := h.leadService.GetLeads(page, stage)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateLead handles updating a lead.
// @Summary     Update a lead
// @Tags        leads
// @Accept      json
// @Produce     json
// @Param       id      path string            true "Lead ID"
// @Param       request body UpdateLeadRequest true "Fields to update"
// @Success     200 {object} models.Lead "Lead updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Lead not found"
// @Router      /leads/{id} [patch]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var stage *models.LeadStage
	if req.Stage != nil {
		s := models.LeadStage(*req.Stage)
		stage = &s
	}

	lead, err := h.leadService.UpdateLead(c.Param("id"), req.Name, req.Company, req.Email, req.Phone, stage, req.EstimatedValue, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lead": lead})
}

// DeleteLead handles deleting a lead.
// @Summary     Delete a lead
// @Tags        leads
// @Produce     json
// @Param       id path string true "Lead ID"
// @Success     204 "Lead deleted"
// @Failure     404 {object} ErrorResponse "Lead not found"
// @Router      /leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	if err := h.leadService.DeleteLead(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
