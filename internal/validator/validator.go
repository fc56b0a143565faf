// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("entry_direction", validateEntryDirection)
		_ = v.RegisterValidation("trade_side", validateTradeSide)
		_ = v.RegisterValidation("trade_outcome", validateTradeOutcome)
		_ = v.RegisterValidation("task_column", validateTaskColumn)
		_ = v.RegisterValidation("task_priority", validateTaskPriority)
		_ = v.RegisterValidation("lead_stage", validateLeadStage)
		_ = v.RegisterValidation("ticket_status", validateTicketStatus)
		_ = v.RegisterValidation("ticket_severity", validateTicketSeverity)
	}
}

func validateEntryDirection(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateTradeSide(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "buy", "sell":
		return true
	}
	return false
}

func validateTradeOutcome(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "gain", "loss":
		return true
	}
	return false
}

func validateTaskColumn(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "backlog", "in_progress", "review", "done":
		return true
	}
	return false
}

func validateTaskPriority(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "low", "medium", "high":
		return true
	}
	return false
}

func validateLeadStage(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "new", "contacted", "qualified", "won", "lost":
		return true
	}
	return false
}

func validateTicketStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "open", "pending", "resolved", "closed":
		return true
	}
	return false
}

func validateTicketSeverity(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "low", "medium", "high", "critical":
		return true
	}
	return false
}
