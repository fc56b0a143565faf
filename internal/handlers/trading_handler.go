package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "nitronflow/internal/errors"
	"nitronflow/internal/models"
	"nitronflow/internal/trading"
)

// TradingHandler exposes the trading risk-limit engine over HTTP.
type TradingHandler struct {
	engine *trading.Engine
}

// NewTradingHandler creates a TradingHandler.
func NewTradingHandler(engine *trading.Engine) *TradingHandler {
	return &TradingHandler{engine: engine}
}

// CreateExecutionRequest represents the request payload for journaling a trade.
type CreateExecutionRequest struct {
	Asset      string     `json:"asset" binding:"required,min=1,max=30"`
	Side       string     `json:"side" binding:"required,trade_side"`
	Outcome    string     `json:"outcome" binding:"required,trade_outcome"`
	EntryValue int64      `json:"entry_value" binding:"gte=0"`
	ProfitLoss int64      `json:"profit_loss"`
	ExecutedAt *time.Time `json:"executed_at"`
}

// RiskConfigRequest represents the request payload for activating a risk configuration.
type RiskConfigRequest struct {
	Capital          int64   `json:"capital" binding:"required,gt=0"`
	DailyGoalPercent float64 `json:"daily_goal_percent" binding:"gte=0"`
	StopGainPercent  float64 `json:"stop_gain_percent" binding:"gte=0"`
	StopLossPercent  float64 `json:"stop_loss_percent" binding:"gte=0"`
	MaxEntryValue    int64   `json:"max_entry_value" binding:"gte=0"`
	DailyTradeLimit  int     `json:"daily_trade_limit" binding:"required,gt=0"`
}

// CreateExecution handles journaling a trade execution.
// @Summary     Record a trade execution
// @Description Journal a trade and re-evaluate the daily risk lockout
// @Tags        trading
// @Accept      json
// @Produce     json
// @Param       request body CreateExecutionRequest true "Execution details"
// @Success     201 {object} models.TradeExecution "Execution recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     423 {object} ErrorResponse "Session locked"
// @Router      /trading/executions [post]
func (h *TradingHandler) CreateExecution(c *gin.Context) {
	var req CreateExecutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	exec := &models.TradeExecution{
		Asset:      req.Asset,
		Side:       models.TradeSide(req.Side),
		Outcome:    models.TradeOutcome(req.Outcome),
		EntryValue: req.EntryValue,
		ProfitLoss: req.ProfitLoss,
	}
	if req.ExecutedAt != nil {
		exec.ExecutedAt = *req.ExecutedAt
	}

	if err := h.engine.RecordExecution(exec); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"execution": exec, "session": h.engine.Session()})
}

// GetExecutions handles listing the full trade journal.
// @Summary     List trade executions
// @Tags        trading
// @Produce     json
// @Success     200 {object} map[string]interface{} "Journal"
// @Router      /trading/executions [get]
func (h *TradingHandler) GetExecutions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"executions": h.engine.Executions()})
}

// GetStatistics handles reading the aggregate journal statistics.
// @Summary     Get journal statistics
// @Description Trade counts, win rate, and total P&L over the whole journal
// @Tags        trading
// @Produce     json
// @Success     200 {object} trading.Stats "Statistics"
// @Router      /trading/statistics [get]
func (h *TradingHandler) GetStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Statistics())
}

// GetSession handles reading today's derived trading state.
// @Summary     Get today's session
// @Description Today's P&L, trade count, thresholds, and lockout state
// @Tags        trading
// @Produce     json
// @Success     200 {object} trading.Session "Session"
// @Router      /trading/session [get]
func (h *TradingHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Session())
}

// GetConfig handles reading the active risk configuration.
// @Summary     Get the risk configuration
// @Tags        trading
// @Produce     json
// @Success     200 {object} models.RiskConfig "Active configuration"
// @Failure     404 {object} ErrorResponse "No configuration set"
// @Router      /trading/config [get]
func (h *TradingHandler) GetConfig(c *gin.Context) {
	cfg := h.engine.Config()
	if cfg == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrNotFound, "No risk configuration is active"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"config": cfg})
}

// PutConfig handles activating a risk configuration.
// @Summary     Set the risk configuration
// @Description Validate and activate a risk configuration atomically
// @Tags        trading
// @Accept      json
// @Produce     json
// @Param       request body RiskConfigRequest true "Configuration"
// @Success     200 {object} models.RiskConfig "Active configuration"
// @Failure     400 {object} ErrorResponse "Invalid configuration"
// @Router      /trading/config [put]
func (h *TradingHandler) PutConfig(c *gin.Context) {
	var req RiskConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	cfg, err := h.engine.SetConfig(models.RiskConfig{
		Capital:          req.Capital,
		DailyGoalPercent: req.DailyGoalPercent,
		StopGainPercent:  req.StopGainPercent,
		StopLossPercent:  req.StopLossPercent,
		MaxEntryValue:    req.MaxEntryValue,
		DailyTradeLimit:  req.DailyTradeLimit,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"config": cfg})
}

// Unlock handles the explicit administrative unlock.
// @Summary     Unlock the trading session
// @Description Clear the lockout; the engine never does this by itself
// @Tags        trading
// @Produce     json
// @Success     200 {object} models.RiskConfig "Unlocked configuration"
// @Failure     400 {object} ErrorResponse "No configuration set"
// @Router      /trading/config/unlock [post]
func (h *TradingHandler) Unlock(c *gin.Context) {
	cfg, err := h.engine.Unlock()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"config": cfg})
}
