// Package trading implements the risk-limit engine behind the trading
// journal. The engine owns an append-only execution list in memory,
// recomputes today's results on every record, and flips a one-way
// lockout once any configured threshold is breached.
package trading

import (
	"sync"

	"github.com/shopspring/decimal"

	"nitronflow/internal/clock"
	apperrors "nitronflow/internal/errors"
	"nitronflow/internal/logger"
	"nitronflow/internal/models"
	"nitronflow/internal/uuid"
)

// Store is the persistence collaborator for trade executions and the
// risk configuration. The engine calls it after each mutation and once
// at startup; in-memory state is updated regardless of write success.
type Store interface {
	SaveExecution(exec *models.TradeExecution) error
	LoadExecutions() ([]models.TradeExecution, error)
	SaveConfig(cfg *models.RiskConfig) error
	LoadConfig() (*models.RiskConfig, error)
}

// Stats aggregates the full journal. WinRate is a percentage; money
// values are in currency minor units.
type Stats struct {
	TotalTrades int     `json:"total_trades"`
	Gains       int     `json:"gains"`
	Losses      int     `json:"losses"`
	WinRate     float64 `json:"win_rate"`
	TotalPnL    int64   `json:"total_pnl"`
}

// Session is the derived view of today's trading state.
type Session struct {
	TodayPnL         int64             `json:"today_pnl"`
	TradesToday      int               `json:"trades_today"`
	StopGainAbsolute int64             `json:"stop_gain_absolute"`
	StopLossAbsolute int64             `json:"stop_loss_absolute"`
	DailyGoal        int64             `json:"daily_goal"`
	DailyTradeLimit  int               `json:"daily_trade_limit"`
	Locked           bool              `json:"locked"`
	LockReason       models.LockReason `json:"lock_reason,omitempty"`
}

// Engine enforces daily risk boundaries over the execution list.
type Engine struct {
	mu    sync.Mutex
	store Store
	clk   clock.Clock

	execs []models.TradeExecution
	cfg   *models.RiskConfig
}

// New creates an Engine with the given collaborators. Call Load before
// first use.
func New(store Store, clk clock.Clock) *Engine {
	return &Engine{store: store, clk: clk}
}

// Load populates the execution list and the active risk configuration
// from the store. A missing configuration is not an error; the journal
// works without one, it just enforces nothing.
func (e *Engine) Load() error {
	execs, err := e.store.LoadExecutions()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	cfg, err := e.store.LoadConfig()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.execs = execs
	e.cfg = cfg
	return nil
}

// SetConfig validates and activates a risk configuration atomically: a
// malformed configuration is rejected whole and the previous one stays
// active. An existing lockout carries over; replacing the configuration
// is not a way around Unlock.
func (e *Engine) SetConfig(cfg models.RiskConfig) (*models.RiskConfig, error) {
	if cfg.Capital <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidRiskConfig, "capital must be positive")
	}
	if cfg.DailyTradeLimit <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidRiskConfig, "daily trade limit must be positive")
	}
	if cfg.StopGainPercent < 0 || cfg.StopLossPercent < 0 || cfg.DailyGoalPercent < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidRiskConfig, "percentages must not be negative")
	}
	if cfg.MaxEntryValue < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidRiskConfig, "max entry value must not be negative")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cfg != nil {
		cfg.ID = e.cfg.ID
		cfg.Locked = e.cfg.Locked
		cfg.LockReason = e.cfg.LockReason
	} else {
		cfg.Locked = false
		cfg.LockReason = ""
	}
	e.cfg = &cfg
	e.persistConfig()
	e.evaluateLockoutLocked()
	out := *e.cfg
	return &out, nil
}

// Config returns a copy of the active configuration, or nil when none
// has been set.
func (e *Engine) Config() *models.RiskConfig {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cfg == nil {
		return nil
	}
	out := *e.cfg
	return &out
}

// RecordExecution validates and appends an execution, then re-evaluates
// the lockout. Recording is refused while the session is locked.
func (e *Engine) RecordExecution(exec *models.TradeExecution) error {
	if exec.Asset == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "asset is required")
	}
	if exec.Side != models.TradeSideBuy && exec.Side != models.TradeSideSell {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "side must be buy or sell")
	}
	if exec.Outcome != models.TradeOutcomeGain && exec.Outcome != models.TradeOutcomeLoss {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "outcome must be gain or loss")
	}
	if exec.EntryValue < 0 {
		return apperrors.ErrInvalidAmount
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cfg != nil && e.cfg.Locked {
		return apperrors.ErrTradingLocked
	}

	if exec.ID == "" {
		exec.ID = uuid.NewAt(e.clk.Now())
	}
	if exec.ExecutedAt.IsZero() {
		exec.ExecutedAt = e.clk.Now()
	}

	e.execs = append(e.execs, *exec)
	if err := e.store.SaveExecution(exec); err != nil {
		logger.Get().Errorw("trading store save failed", "id", exec.ID, "error", err)
	}
	e.evaluateLockoutLocked()
	return nil
}

// TodaysExecutions returns the executions recorded on the current
// calendar day, in insertion order.
func (e *Engine) TodaysExecutions() []models.TradeExecution {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.todaysLocked()
}

// TodaysPnL sums profit and loss over today's executions.
func (e *Engine) TodaysPnL() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.todaysPnLLocked()
}

// Executions returns a copy of the full journal.
func (e *Engine) Executions() []models.TradeExecution {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.TradeExecution, len(e.execs))
	copy(out, e.execs)
	return out
}

// Statistics aggregates the full journal. An empty journal reports a
// zero win rate rather than dividing by zero.
func (e *Engine) Statistics() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	var stats Stats
	for i := range e.execs {
		stats.TotalTrades++
		stats.TotalPnL += e.execs[i].ProfitLoss
		switch e.execs[i].Outcome {
		case models.TradeOutcomeGain:
			stats.Gains++
		case models.TradeOutcomeLoss:
			stats.Losses++
		}
	}
	if stats.TotalTrades > 0 {
		stats.WinRate = float64(stats.Gains) / float64(stats.TotalTrades) * 100
	}
	return stats
}

// Session returns the derived view of today's trading state.
func (e *Engine) Session() Session {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Session{
		TodayPnL:    e.todaysPnLLocked(),
		TradesToday: len(e.todaysLocked()),
	}
	if e.cfg != nil {
		s.StopGainAbsolute = thresholdAbs(e.cfg.Capital, e.cfg.StopGainPercent)
		s.StopLossAbsolute = thresholdAbs(e.cfg.Capital, e.cfg.StopLossPercent)
		s.DailyGoal = thresholdAbs(e.cfg.Capital, e.cfg.DailyGoalPercent)
		s.DailyTradeLimit = e.cfg.DailyTradeLimit
		s.Locked = e.cfg.Locked
		s.LockReason = e.cfg.LockReason
	}
	return s
}

// Unlock clears the lockout. The engine never does this on its own; it
// is the explicit administrative action the lockout invariant calls for.
func (e *Engine) Unlock() (*models.RiskConfig, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cfg == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidRiskConfig, "no risk configuration is active")
	}
	e.cfg.Locked = false
	e.cfg.LockReason = ""
	e.persistConfig()
	out := *e.cfg
	return &out, nil
}

// evaluateLockoutLocked checks today's results against the thresholds in
// fixed priority order: stop gain, then stop loss, then trade count. The
// first match wins. A zero-percent stop threshold is treated as disabled
// rather than a standing lock at P&L zero. Once locked it is a no-op, so
// an existing reason is never overwritten. Callers must hold e.mu.
func (e *Engine) evaluateLockoutLocked() {
	if e.cfg == nil || e.cfg.Locked {
		return
	}

	pnl := e.todaysPnLLocked()
	stopGain := thresholdAbs(e.cfg.Capital, e.cfg.StopGainPercent)
	stopLoss := thresholdAbs(e.cfg.Capital, e.cfg.StopLossPercent)
	switch {
	case stopGain > 0 && pnl >= stopGain:
		e.lockLocked(models.LockReasonStopGain)
	case stopLoss > 0 && pnl <= -stopLoss:
		e.lockLocked(models.LockReasonStopLoss)
	case len(e.todaysLocked()) >= e.cfg.DailyTradeLimit:
		e.lockLocked(models.LockReasonTradeLimit)
	}
}

func (e *Engine) lockLocked(reason models.LockReason) {
	e.cfg.Locked = true
	e.cfg.LockReason = reason
	e.persistConfig()
	logger.Get().Infow("trading session locked", "reason", reason)
}

func (e *Engine) todaysLocked() []models.TradeExecution {
	today := e.clk.Now()
	var out []models.TradeExecution
	for i := range e.execs {
		if clock.SameDay(e.execs[i].ExecutedAt, today) {
			out = append(out, e.execs[i])
		}
	}
	return out
}

func (e *Engine) todaysPnLLocked() int64 {
	var pnl int64
	for _, exec := range e.todaysLocked() {
		pnl += exec.ProfitLoss
	}
	return pnl
}

func (e *Engine) persistConfig() {
	if err := e.store.SaveConfig(e.cfg); err != nil {
		logger.Get().Errorw("risk config save failed", "error", err)
	}
}

// thresholdAbs converts a percentage of capital into an absolute amount
// in minor units, using exact decimal arithmetic so that thresholds land
// on whole cents.
func thresholdAbs(capital int64, percent float64) int64 {
	return decimal.NewFromInt(capital).
		Mul(decimal.NewFromFloat(percent)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}
