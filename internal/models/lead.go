package models

// LeadStage represents where a lead sits in the sales pipeline
type LeadStage string

const (
	LeadStageNew       LeadStage = "new"
	LeadStageContacted LeadStage = "contacted"
	LeadStageQualified LeadStage = "qualified"
	LeadStageWon       LeadStage = "won"
	LeadStageLost      LeadStage = "lost"
)

// Lead represents a CRM lead. EstimatedValue is stored in currency
// minor units (cents).
type Lead struct {
	Base
	Name           string    `gorm:"not null" json:"name"`
	Company        string    `json:"company"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Stage          LeadStage `gorm:"not null;default:new" json:"stage"`
	EstimatedValue int64     `gorm:"type:bigint" json:"estimated_value"`
	Notes          string    `json:"notes"`
}
