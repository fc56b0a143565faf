package storage

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nitronflow/internal/models"
)

// TradingStore persists trade executions and the risk configuration.
type TradingStore struct {
	db *gorm.DB
}

// NewTradingStore creates a TradingStore.
func NewTradingStore(db *gorm.DB) *TradingStore {
	return &TradingStore{db: db}
}

// SaveExecution upserts a trade execution.
func (s *TradingStore) SaveExecution(exec *models.TradeExecution) error {
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(exec).Error
}

// LoadExecutions returns the full journal, oldest execution first.
func (s *TradingStore) LoadExecutions() ([]models.TradeExecution, error) {
	var execs []models.TradeExecution
	err := s.db.Order("executed_at ASC").Find(&execs).Error
	return execs, err
}

// SaveConfig upserts the risk configuration.
func (s *TradingStore) SaveConfig(cfg *models.RiskConfig) error {
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(cfg).Error
}

// LoadConfig returns the most recently created configuration, or nil
// when none has been stored yet.
func (s *TradingStore) LoadConfig() (*models.RiskConfig, error) {
	var cfg models.RiskConfig
	err := s.db.Order("created_at DESC").First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
