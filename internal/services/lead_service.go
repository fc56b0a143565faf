package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "nitronflow/internal/errors"
	"nitronflow/internal/models"
	"nitronflow/internal/pagination"
)

// leadService handles CRM lead business logic.
type leadService struct {
	db *gorm.DB
}

// NewLeadService creates a new LeadServicer.
func NewLeadService(db *gorm.DB) LeadServicer {
	return &leadService{db: db}
}

// CreateLead creates a new lead at the start of the pipeline.
func (s *leadService) CreateLead(name, company, email, phone string, estimatedValue int64, notes string) (*models.Lead, error) {
	if estimatedValue < 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	lead := &models.Lead{
		Name:           name,
		Company:        company,
		Email:          email,
		Phone:          phone,
		Stage:          models.LeadStageNew,
		EstimatedValue: estimatedValue,
		Notes:          notes,
	}

	if err := s.db.Create(lead).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return lead, nil
}

// GetLeads returns a paginated list of leads, optionally filtered by stage.
func (s *leadService) GetLeads(page pagination.PageRequest, stage *models.LeadStage) (*pagination.PageResponse[models.Lead], error) {
	page.Defaults()

	base := s.db.Model(&models.Lead{})
	if stage != nil {
		base = base.Where("stage = ?", *stage)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var leads []models.Lead
	if err := base.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&leads).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(leads, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetLeadByID returns a lead by ID.
func (s *leadService) GetLeadByID(leadID string) (*models.Lead, error) {
	var lead models.Lead
	if err := s.db.Where("id = ?", leadID).First(&lead).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &lead, nil
}

// UpdateLead updates a lead's fields, including its pipeline stage.
func (s *leadService) UpdateLead(leadID string, name, company, email, phone string, stage *models.LeadStage, estimatedValue *int64, notes *string) (*models.Lead, error) {
	if estimatedValue != nil && *estimatedValue < 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	lead, err := s.GetLeadByID(leadID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if company != "" {
		updates["company"] = company
	}
	if email != "" {
		updates["email"] = email
	}
	if phone != "" {
		updates["phone"] = phone
	}
	if stage != nil {
		updates["stage"] = *stage
	}
	if estimatedValue != nil {
		updates["estimated_value"] = *estimatedValue
	}
	if notes != nil {
		updates["notes"] = *notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(lead).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return lead, nil
}

// DeleteLead soft-deletes a lead.
func (s *leadService) DeleteLead(leadID string) error {
	lead, err := s.GetLeadByID(leadID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(lead).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
