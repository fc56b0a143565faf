package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "nitronflow/internal/errors"
	"nitronflow/internal/ledger"
	"nitronflow/internal/models"
)

// LedgerHandler exposes the ledger engines over HTTP. It is a pure
// presentation layer: it reads derived values and calls the engines'
// mutation entry points.
type LedgerHandler struct {
	engines map[models.LedgerKind]*ledger.Engine
}

// NewLedgerHandler creates a LedgerHandler over the given engines,
// keyed by ledger kind.
func NewLedgerHandler(engines map[models.LedgerKind]*ledger.Engine) *LedgerHandler {
	return &LedgerHandler{engines: engines}
}

func (h *LedgerHandler) engine(c *gin.Context) (*ledger.Engine, error) {
	kind, err := parseLedgerKind(c)
	if err != nil {
		return nil, err
	}
	eng, ok := h.engines[kind]
	if !ok {
		return nil, apperrors.ErrUnknownLedger
	}
	return eng, nil
}

// CreateEntryRequest represents the request payload for recording a ledger entry.
type CreateEntryRequest struct {
	Description string    `json:"description" binding:"required,min=1,max=200"`
	Amount      int64     `json:"amount" binding:"gte=0"`
	Direction   string    `json:"direction" binding:"required,entry_direction"`
	Category    string    `json:"category" binding:"omitempty,max=100"`
	Date        time.Time `json:"date" binding:"required"`
	Paid        bool      `json:"paid"`
}

// UpdateEntryRequest represents the request payload for a partial entry update.
type UpdateEntryRequest struct {
	Description *string    `json:"description" binding:"omitempty,min=1,max=200"`
	Amount      *int64     `json:"amount" binding:"omitempty,gte=0"`
	Category    *string    `json:"category" binding:"omitempty,max=100"`
	Date        *time.Time `json:"date"`
}

// CreateEntry handles recording a new ledger entry.
// @Summary     Record a ledger entry
// @Description Record an income or expense entry in the given ledger
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Param       kind    path string             true "Ledger kind (personal or business)"
// @Param       request body CreateEntryRequest true "Entry details"
// @Success     201 {object} models.LedgerEntry "Entry recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Unknown ledger"
// @Router      /ledgers/{kind}/entries [post]
func (h *LedgerHandler) CreateEntry(c *gin.Context) {
	eng, err := h.engine(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entry := &models.LedgerEntry{
		Description: req.Description,
		Amount:      req.Amount,
		Direction:   models.EntryDirection(req.Direction),
		Category:    req.Category,
		Date:        req.Date,
		Paid:        req.Paid,
	}
	if err := eng.RecordEntry(entry); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// GetEntries handles listing the ledger's entries together with the
// derived summary and health classification.
// @Summary     List ledger entries
// @Description List all entries of the given ledger with its derived summary
// @Tags        ledger
// @Produce     json
// @Param       kind path string true "Ledger kind (personal or business)"
// @Success     200 {object} map[string]interface{} "Entries and summary"
// @Failure     404 {object} ErrorResponse "Unknown ledger"
// @Router      /ledgers/{kind}/entries [get]
func (h *LedgerHandler) GetEntries(c *gin.Context) {
	eng, err := h.engine(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": eng.Entries(),
		"summary": eng.Summary(),
		"health":  eng.ClassifyHealth(),
	})
}

// UpdateEntry handles a partial update of a ledger entry.
// @Summary     Update a ledger entry
// @Description Merge the provided fields into an existing entry
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Param       kind    path string             true "Ledger kind (personal or business)"
// @Param       id      path string             true "Entry ID"
// @Param       request body UpdateEntryRequest true "Fields to update"
// @Success     200 {object} models.LedgerEntry "Entry updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Router      /ledgers/{kind}/entries/{id} [patch]
func (h *LedgerHandler) UpdateEntry(c *gin.Context) {
	eng, err := h.engine(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entry, err := eng.UpdateEntry(c.Param("id"), ledger.EntryUpdate{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        req.Date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// DeleteEntry handles removing a ledger entry.
// @Summary     Delete a ledger entry
// @Tags        ledger
// @Produce     json
// @Param       kind path string true "Ledger kind (personal or business)"
// @Param       id   path string true "Entry ID"
// @Success     204 "Entry deleted"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Router      /ledgers/{kind}/entries/{id} [delete]
func (h *LedgerHandler) DeleteEntry(c *gin.Context) {
	eng, err := h.engine(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := eng.RemoveEntry(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkPaid handles toggling the paid state of an expense entry.
// @Summary     Toggle an entry's paid state
// @Description Mark an expense entry paid, or unpaid if it already is
// @Tags        ledger
// @Produce     json
// @Param       kind path string true "Ledger kind (personal or business)"
// @Param       id   path string true "Entry ID"
// @Success     200 {object} models.LedgerEntry "Entry updated"
// @Failure     400 {object} ErrorResponse "Entry is not an expense"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Router      /ledgers/{kind}/entries/{id}/pay [post]
func (h *LedgerHandler) MarkPaid(c *gin.Context) {
	eng, err := h.engine(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := eng.MarkPaid(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// Rollover handles the daily sweep of unpaid obligations.
// @Summary     Roll unpaid obligations
// @Description Run the once-daily sweep that reschedules unpaid expenses
// @Tags        ledger
// @Produce     json
// @Param       kind path string true "Ledger kind (personal or business)"
// @Success     200 {object} map[string]int "Number of entries moved"
// @Failure     404 {object} ErrorResponse "Unknown ledger"
// @Router      /ledgers/{kind}/rollover [post]
func (h *LedgerHandler) Rollover(c *gin.Context) {
	eng, err := h.engine(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	moved := eng.RollUnpaidObligations()
	c.JSON(http.StatusOK, gin.H{"moved": moved})
}

// GetSummary handles reading the derived balance view.
// @Summary     Get ledger summary
// @Description Read the derived balances and health classification
// @Tags        ledger
// @Produce     json
// @Param       kind path string true "Ledger kind (personal or business)"
// @Success     200 {object} ledger.Summary "Derived balances"
// @Failure     404 {object} ErrorResponse "Unknown ledger"
// @Router      /ledgers/{kind}/summary [get]
func (h *LedgerHandler) GetSummary(c *gin.Context) {
	eng, err := h.engine(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": eng.Summary(),
		"health":  eng.ClassifyHealth(),
	})
}
