package models

import "time"

// TicketStatus represents the lifecycle state of a support ticket
type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "open"
	TicketStatusPending  TicketStatus = "pending"
	TicketStatusResolved TicketStatus = "resolved"
	TicketStatusClosed   TicketStatus = "closed"
)

// TicketSeverity represents how serious a support ticket is
type TicketSeverity string

const (
	TicketSeverityLow      TicketSeverity = "low"
	TicketSeverityMedium   TicketSeverity = "medium"
	TicketSeverityHigh     TicketSeverity = "high"
	TicketSeverityCritical TicketSeverity = "critical"
)

// Ticket represents a support ticket
type Ticket struct {
	Base
	Subject    string         `gorm:"not null" json:"subject"`
	Body       string         `json:"body"`
	Requester  string         `json:"requester"`
	Status     TicketStatus   `gorm:"not null;default:open" json:"status"`
	Severity   TicketSeverity `gorm:"not null;default:medium" json:"severity"`
	ResolvedAt *time.Time     `json:"resolved_at,omitempty"`
}
