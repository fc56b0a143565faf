package ledger

import (
	"time"

	"nitronflow/internal/clock"
	"nitronflow/internal/models"
)

// RollUnpaidObligations runs the once-daily administrative sweep that
// reschedules unpaid expenses into the next period. It returns the number
// of entries moved.
//
// On the first day of the month the sweep targets unpaid expenses dated
// in the immediately preceding month and moves them to the same
// day-of-month in the current month. On any other day it targets unpaid
// expenses earlier in the current month and moves them to the same
// day-of-month in the next month.
//
// An entry is swept at most once: the sweep sets RolledOver and skips
// entries that already carry it, so repeated calls within the same day
// move nothing further. The flag is never reset, so an entry that goes
// unpaid through a second cycle stays out of future sweeps; settling it
// is a manual action from then on.
func (e *Engine) RollUnpaidObligations() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := clock.DayStart(e.clk.Now())
	moved := 0

	for i := range e.entries {
		entry := &e.entries[i]
		if entry.Direction != models.EntryDirectionExpense || entry.Paid || entry.RolledOver {
			continue
		}

		var eligible bool
		var target time.Time
		if today.Day() == 1 {
			// First of the month: sweep last month's leftovers into this one.
			prev := time.Date(today.Year(), today.Month()-1, 1, 0, 0, 0, 0, today.Location())
			eligible = clock.SamePeriod(entry.Date, prev)
			target = sameDayIn(entry.Date, today.Year(), today.Month())
		} else {
			eligible = clock.SamePeriod(entry.Date, today) && clock.DayStart(entry.Date).Before(today)
			next := time.Date(today.Year(), today.Month()+1, 1, 0, 0, 0, 0, today.Location())
			target = sameDayIn(entry.Date, next.Year(), next.Month())
		}
		if !eligible {
			continue
		}

		entry.Date = target
		entry.RolledOver = true
		e.persist(entry)
		moved++
	}

	if moved > 0 {
		e.recomputeLocked()
	}
	return moved
}

// sameDayIn places the day-of-month of src into the given month,
// clamped to that month's last day. Without the clamp a day-31 entry
// swept into a shorter month would normalize past it entirely.
func sameDayIn(src time.Time, year int, month time.Month) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, src.Location()).Day()
	day := src.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, src.Location())
}
