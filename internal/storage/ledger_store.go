// Package storage provides the GORM-backed persistence collaborators
// the engines write through. Engines treat these as fire-and-forget:
// a failed write is logged upstream and in-memory state moves on.
package storage

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nitronflow/internal/models"
)

// LedgerStore persists the entries of a single ledger.
type LedgerStore struct {
	db   *gorm.DB
	kind models.LedgerKind
}

// NewLedgerStore creates a LedgerStore scoped to one ledger kind.
func NewLedgerStore(db *gorm.DB, kind models.LedgerKind) *LedgerStore {
	return &LedgerStore{db: db, kind: kind}
}

// Save upserts an entry. The store stamps its own ledger kind so an
// engine can never write into the other ledger.
func (s *LedgerStore) Save(entry *models.LedgerEntry) error {
	entry.Kind = s.kind
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(entry).Error
}

// Delete removes an entry by id.
func (s *LedgerStore) Delete(id string) error {
	return s.db.Delete(&models.LedgerEntry{}, "id = ?", id).Error
}

// LoadAll returns every entry of this ledger, oldest date first.
func (s *LedgerStore) LoadAll() ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	err := s.db.Where("kind = ?", s.kind).Order("date ASC").Find(&entries).Error
	return entries, err
}
