package models

import "time"

// LedgerKind distinguishes the two ledgers the application manages.
// They share one engine but differ in how prior-period expenses count.
type LedgerKind string

const (
	LedgerKindPersonal LedgerKind = "personal"
	LedgerKindBusiness LedgerKind = "business"
)

// EntryDirection represents the direction of a ledger entry
type EntryDirection string

const (
	EntryDirectionIncome  EntryDirection = "income"
	EntryDirectionExpense EntryDirection = "expense"
)

// LedgerEntry represents a single dated income or expense record.
// Amount is stored in currency minor units (cents).
type LedgerEntry struct {
	Base
	Kind        LedgerKind     `gorm:"not null;index" json:"kind"`
	Description string         `gorm:"not null" json:"description"`
	Amount      int64          `gorm:"type:bigint;not null" json:"amount"`
	Direction   EntryDirection `gorm:"not null" json:"direction"`
	Category    string         `json:"category"`
	Date        time.Time      `gorm:"not null;index" json:"date"`

	// Paid applies only to expense entries; income is realized immediately.
	Paid        bool       `gorm:"default:false" json:"paid"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`

	// RolledOver marks an expense that an administrative sweep has already
	// moved into a later period. A rolled entry is never swept again.
	RolledOver bool `gorm:"default:false" json:"rolled_over"`
}
