package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"nitronflow/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestEntry creates a ledger entry with the given shape.
func CreateTestEntry(t *testing.T, db *gorm.DB, kind models.LedgerKind, direction models.EntryDirection, amount int64, date time.Time, paid bool) *models.LedgerEntry {
	t.Helper()

	entry := &models.LedgerEntry{
		Kind:        kind,
		Description: fmt.Sprintf("Test Entry %d", nextID()),
		Amount:      amount,
		Direction:   direction,
		Category:    "general",
		Date:        date,
		Paid:        paid,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test entry: %v", err)
	}
	return entry
}

// CreateTestExecution creates a trade execution.
func CreateTestExecution(t *testing.T, db *gorm.DB, outcome models.TradeOutcome, pnl int64, at time.Time) *models.TradeExecution {
	t.Helper()

	exec := &models.TradeExecution{
		Asset:      fmt.Sprintf("ASSET%d", nextID()),
		Side:       models.TradeSideBuy,
		Outcome:    outcome,
		EntryValue: 100_00,
		ProfitLoss: pnl,
		ExecutedAt: at,
	}
	if err := db.Create(exec).Error; err != nil {
		t.Fatalf("failed to create test execution: %v", err)
	}
	return exec
}

// CreateTestTask creates a task in the given column.
func CreateTestTask(t *testing.T, db *gorm.DB, column models.TaskColumn) *models.Task {
	t.Helper()

	task := &models.Task{
		Title:    fmt.Sprintf("Test Task %d", nextID()),
		Column:   column,
		Priority: models.TaskPriorityMedium,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to create test task: %v", err)
	}
	return task
}

// CreateTestLead creates a lead in the given pipeline stage.
func CreateTestLead(t *testing.T, db *gorm.DB, stage models.LeadStage) *models.Lead {
	t.Helper()

	lead := &models.Lead{
		Name:           fmt.Sprintf("Test Lead %d", nextID()),
		Company:        "Acme",
		Stage:          stage,
		EstimatedValue: 1_000_00,
	}
	if err := db.Create(lead).Error; err != nil {
		t.Fatalf("failed to create test lead: %v", err)
	}
	return lead
}

// CreateTestTicket creates a ticket with the given status.
func CreateTestTicket(t *testing.T, db *gorm.DB, status models.TicketStatus) *models.Ticket {
	t.Helper()

	ticket := &models.Ticket{
		Subject:   fmt.Sprintf("Test Ticket %d", nextID()),
		Requester: "user@test.com",
		Status:    status,
		Severity:  models.TicketSeverityMedium,
	}
	if err := db.Create(ticket).Error; err != nil {
		t.Fatalf("failed to create test ticket: %v", err)
	}
	return ticket
}
