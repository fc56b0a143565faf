package services

import (
	"testing"

	"nitronflow/internal/models"
	"nitronflow/internal/pagination"
	"nitronflow/internal/testutil"
)

func TestCreateLead(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLeadService(db)

		lead, err := svc.CreateLead("Maria", "Acme", "maria@acme.com", "555-0101", 5_000_00, "inbound")
		testutil.AssertNoError(t, err)

		if lead.Stage != models.LeadStageNew {
			t.Errorf("new leads must start in stage new, got %s", lead.Stage)
		}
		if lead.EstimatedValue != 5_000_00 {
			t.Errorf("expected estimated value 500000, got %d", lead.EstimatedValue)
		}
	})

	t.Run("negative_value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLeadService(db)

		_, err := svc.CreateLead("Maria", "Acme", "", "", -1, "")
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")
	})
}

func TestGetLeads(t *testing.T) {
	t.Run("filter_by_stage", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLeadService(db)

		testutil.CreateTestLead(t, db, models.LeadStageNew)
		testutil.CreateTestLead(t, db, models.LeadStageWon)
		testutil.CreateTestLead(t, db, models.LeadStageWon)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		stage := models.LeadStageWon
		result, err := svc.GetLeads(page, &stage)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 won leads, got %d", result.TotalItems)
		}
	})
}

func TestUpdateLead(t *testing.T) {
	t.Run("stage_advance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLeadService(db)
		lead := testutil.CreateTestLead(t, db, models.LeadStageNew)

		stage := models.LeadStageContacted
		updated, err := svc.UpdateLead(lead.ID, "", "", "", "", &stage, nil, nil)
		testutil.AssertNoError(t, err)
		if updated.Stage != models.LeadStageContacted {
			t.Errorf("expected stage contacted, got %s", updated.Stage)
		}
	})

	t.Run("unknown_lead", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLeadService(db)

		_, err := svc.UpdateLead("missing", "x", "", "", "", nil, nil, nil)
		testutil.AssertAppError(t, err, "LEAD_NOT_FOUND")
	})
}

func TestDeleteLead(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLeadService(db)
		lead := testutil.CreateTestLead(t, db, models.LeadStageNew)

		testutil.AssertNoError(t, svc.DeleteLead(lead.ID))
		_, err := svc.GetLeadByID(lead.ID)
		testutil.AssertAppError(t, err, "LEAD_NOT_FOUND")
	})
}
