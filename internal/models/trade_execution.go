package models

import "time"

// TradeSide represents the direction of a trade execution
type TradeSide string

const (
	TradeSideBuy  TradeSide = "buy"
	TradeSideSell TradeSide = "sell"
)

// TradeOutcome represents the trader-reported result of an execution
type TradeOutcome string

const (
	TradeOutcomeGain TradeOutcome = "gain"
	TradeOutcomeLoss TradeOutcome = "loss"
)

// TradeExecution represents a single journaled trade. EntryValue and
// ProfitLoss are stored in currency minor units (cents).
//
// Outcome and ProfitLoss are authored independently by the trader; the
// engine does not derive one from the other and does not reject a gain
// with a negative P&L. Statistics count Outcome, money math sums ProfitLoss.
type TradeExecution struct {
	Base
	Asset      string       `gorm:"not null" json:"asset"`
	Side       TradeSide    `gorm:"not null" json:"side"`
	Outcome    TradeOutcome `gorm:"not null" json:"outcome"`
	EntryValue int64        `gorm:"type:bigint;not null" json:"entry_value"`
	ProfitLoss int64        `gorm:"type:bigint;not null" json:"profit_loss"`
	ExecutedAt time.Time    `gorm:"not null;index" json:"executed_at"`
}
