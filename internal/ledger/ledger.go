// Package ledger implements the rollover engine behind the personal and
// business cash-flow views. The engine owns its entry list in memory and
// recomputes the derived balances after every mutation and on every
// read, since the period buckets move with the calendar; durability is
// delegated to an injected Store and time to an injected Clock.
package ledger

import (
	"sync"
	"time"

	"nitronflow/internal/clock"
	apperrors "nitronflow/internal/errors"
	"nitronflow/internal/logger"
	"nitronflow/internal/models"
	"nitronflow/internal/uuid"
)

// PriorPeriodPolicy controls how prior-period expenses count toward the
// carried balance. The personal ledger treats every prior expense as
// settled with the passage of time; the business ledger only counts
// expenses that were actually marked paid.
type PriorPeriodPolicy string

const (
	PolicyRequirePaid    PriorPeriodPolicy = "require_paid"
	PolicyIgnorePaidFlag PriorPeriodPolicy = "ignore_paid_flag"
)

// Health is a coarse classification of the current-period balance.
type Health string

const (
	HealthHealthy  Health = "healthy"
	HealthCaution  Health = "caution"
	HealthCritical Health = "critical"
)

// defaultCautionFloor is the balance (in cents) at or below which the
// ledger is considered critical rather than merely cautionary.
const defaultCautionFloor int64 = -10_000_00

// Store is the persistence collaborator for ledger entries. The engine
// calls it after each mutation and once at startup; in-memory state is
// updated regardless of whether the write succeeds.
type Store interface {
	Save(entry *models.LedgerEntry) error
	Delete(id string) error
	LoadAll() ([]models.LedgerEntry, error)
}

// Summary holds the derived balance view over the entry list. All values
// are in currency minor units.
type Summary struct {
	CurrentIncome        int64 `json:"current_income"`
	CurrentExpense       int64 `json:"current_expense"`
	CarriedBalance       int64 `json:"carried_balance"`
	CurrentPeriodBalance int64 `json:"current_period_balance"`
}

// EntryUpdate carries the fields of a partial entry update. Nil fields
// are left unchanged.
type EntryUpdate struct {
	Description *string
	Amount      *int64
	Category    *string
	Date        *time.Time
}

// Engine maintains the derived balance view for one ledger.
type Engine struct {
	mu           sync.Mutex
	store        Store
	clk          clock.Clock
	policy       PriorPeriodPolicy
	cautionFloor int64

	entries []models.LedgerEntry
	summary Summary
}

// Option customizes an Engine.
type Option func(*Engine)

// WithCautionFloor overrides the balance threshold (in cents) that
// separates caution from critical.
func WithCautionFloor(floor int64) Option {
	return func(e *Engine) { e.cautionFloor = floor }
}

// New creates an Engine with the given collaborators. Call Load before
// first use to populate the entry list from the store.
func New(store Store, clk clock.Clock, policy PriorPeriodPolicy, opts ...Option) *Engine {
	e := &Engine{
		store:        store,
		clk:          clk,
		policy:       policy,
		cautionFloor: defaultCautionFloor,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load populates the in-memory entry list from the store. It is called
// once at startup; a summary is computed immediately after.
func (e *Engine) Load() error {
	entries, err := e.store.LoadAll()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries = entries
	e.recomputeLocked()
	return nil
}

// RecordEntry validates and appends a new entry, then recomputes the
// summary. Income entries are realized immediately and never carry a
// paid state.
func (e *Engine) RecordEntry(entry *models.LedgerEntry) error {
	if entry.Amount < 0 {
		return apperrors.ErrInvalidAmount
	}
	if entry.Direction != models.EntryDirectionIncome && entry.Direction != models.EntryDirectionExpense {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "direction must be income or expense")
	}
	if entry.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "entry date is required")
	}
	if entry.ID == "" {
		entry.ID = uuid.NewAt(e.clk.Now())
	}
	if entry.Direction == models.EntryDirectionIncome {
		entry.Paid = false
		entry.PaymentDate = nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries = append(e.entries, *entry)
	e.persist(entry)
	e.recomputeLocked()
	return nil
}

// UpdateEntry merges the non-nil fields of upd into the matching entry
// and recomputes. Referencing an unknown id is an explicit error, not a
// silent no-op, so callers can tell "nothing happened" from "succeeded".
func (e *Engine) UpdateEntry(id string, upd EntryUpdate) (*models.LedgerEntry, error) {
	if upd.Amount != nil && *upd.Amount < 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	entry := e.findLocked(id)
	if entry == nil {
		return nil, apperrors.ErrEntryNotFound
	}

	if upd.Description != nil {
		entry.Description = *upd.Description
	}
	if upd.Amount != nil {
		entry.Amount = *upd.Amount
	}
	if upd.Category != nil {
		entry.Category = *upd.Category
	}
	if upd.Date != nil {
		entry.Date = *upd.Date
	}

	e.persist(entry)
	e.recomputeLocked()
	out := *entry
	return &out, nil
}

// RemoveEntry deletes the matching entry and recomputes.
func (e *Engine) RemoveEntry(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.entries {
		if e.entries[i].ID == id {
			e.entries = append(e.entries[:i], e.entries[i+1:]...)
			if err := e.store.Delete(id); err != nil {
				logger.Get().Errorw("ledger store delete failed", "id", id, "error", err)
			}
			e.recomputeLocked()
			return nil
		}
	}
	return apperrors.ErrEntryNotFound
}

// MarkPaid toggles the paid flag on an expense entry, stamping or
// clearing the payment date, and recomputes.
func (e *Engine) MarkPaid(id string) (*models.LedgerEntry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	entry := e.findLocked(id)
	if entry == nil {
		return nil, apperrors.ErrEntryNotFound
	}
	if entry.Direction != models.EntryDirectionExpense {
		return nil, apperrors.ErrEntryNotExpense
	}

	if entry.Paid {
		entry.Paid = false
		entry.PaymentDate = nil
	} else {
		today := clock.DayStart(e.clk.Now())
		entry.Paid = true
		entry.PaymentDate = &today
	}

	e.persist(entry)
	e.recomputeLocked()
	out := *entry
	return &out, nil
}

// Recompute rebuilds the summary from the full entry list and today's
// date. It is a pure rescan: calling it twice without a mutation in
// between yields identical output.
func (e *Engine) Recompute() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recomputeLocked()
	return e.summary
}

// Summary returns the derived balance view. It rescans rather than
// serving the snapshot from the last mutation: the period buckets depend
// on today's date, so a view computed in one month goes stale the moment
// the calendar rolls over, even with no writes in between.
func (e *Engine) Summary() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recomputeLocked()
	return e.summary
}

// ClassifyHealth maps the current-period balance to a coarse health
// classification: positive is healthy, at or below the caution floor is
// critical, anything in between is caution. Like Summary, it rescans so
// the classification tracks today's period boundaries.
func (e *Engine) ClassifyHealth() Health {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recomputeLocked()
	balance := e.summary.CurrentPeriodBalance
	switch {
	case balance > 0:
		return HealthHealthy
	case balance > e.cautionFloor:
		return HealthCaution
	default:
		return HealthCritical
	}
}

// Entries returns a copy of the entry list in insertion order.
func (e *Engine) Entries() []models.LedgerEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.LedgerEntry, len(e.entries))
	copy(out, e.entries)
	return out
}

// findLocked returns a pointer into the entry slice, or nil. Callers
// must hold e.mu.
func (e *Engine) findLocked(id string) *models.LedgerEntry {
	for i := range e.entries {
		if e.entries[i].ID == id {
			return &e.entries[i]
		}
	}
	return nil
}

// persist writes an entry to the store without blocking engine state on
// the result. The in-memory list is the source of truth for the UI; a
// failed write leaves storage behind until the next successful one.
func (e *Engine) persist(entry *models.LedgerEntry) {
	if err := e.store.Save(entry); err != nil {
		logger.Get().Errorw("ledger store save failed", "id", entry.ID, "error", err)
	}
}

// recomputeLocked partitions entries into the current period and prior
// periods and rebuilds the summary. Callers must hold e.mu.
//
// Unpaid current-period expenses do not reduce the balance until marked
// paid: the view reflects realized cash, not accrued obligations. Prior
// periods follow the engine's policy. Future-dated entries count nowhere.
func (e *Engine) recomputeLocked() {
	today := e.clk.Now()
	var sum Summary
	var priorIncome, priorExpense int64

	for i := range e.entries {
		entry := &e.entries[i]
		switch {
		case clock.SamePeriod(entry.Date, today):
			if entry.Direction == models.EntryDirectionIncome {
				sum.CurrentIncome += entry.Amount
			} else if entry.Paid {
				sum.CurrentExpense += entry.Amount
			}
		case clock.BeforePeriod(entry.Date, today):
			if entry.Direction == models.EntryDirectionIncome {
				priorIncome += entry.Amount
			} else if e.policy == PolicyIgnorePaidFlag || entry.Paid {
				priorExpense += entry.Amount
			}
		}
	}

	sum.CarriedBalance = priorIncome - priorExpense
	sum.CurrentPeriodBalance = sum.CarriedBalance + sum.CurrentIncome - sum.CurrentExpense
	e.summary = sum
}
