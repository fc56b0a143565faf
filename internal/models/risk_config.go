package models

// LockReason identifies which risk threshold locked the trading session
type LockReason string

const (
	LockReasonStopGain   LockReason = "stop_gain"
	LockReasonStopLoss   LockReason = "stop_loss"
	LockReasonTradeLimit LockReason = "trade_limit"
)

// RiskConfig holds the trader's daily risk boundaries. Capital and
// MaxEntryValue are stored in currency minor units (cents); the percent
// fields are percentages of Capital.
type RiskConfig struct {
	Base
	Capital          int64   `gorm:"type:bigint;not null" json:"capital"`
	DailyGoalPercent float64 `gorm:"not null" json:"daily_goal_percent"`
	StopGainPercent  float64 `gorm:"not null" json:"stop_gain_percent"`
	StopLossPercent  float64 `gorm:"not null" json:"stop_loss_percent"`

	// MaxEntryValue is an advisory per-trade ceiling shown to the trader;
	// the engine does not enforce it.
	MaxEntryValue int64 `gorm:"type:bigint" json:"max_entry_value"`

	DailyTradeLimit int `gorm:"not null" json:"daily_trade_limit"`

	// Locked is set once any threshold is breached and is never cleared by
	// the engine itself; unlocking is an explicit configuration action.
	Locked     bool       `gorm:"default:false" json:"locked"`
	LockReason LockReason `json:"lock_reason,omitempty"`
}
