package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestLedgerFlow_RecordAndSummarize(t *testing.T) {
	app := setupApp(t)

	// Income of $1000.00 and a paid expense of $300.00, both this month.
	rec := app.request("POST", "/api/v1/ledgers/personal/entries",
		`{"description":"Salary","amount":100000,"direction":"income","date":"2026-08-01T00:00:00Z"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/ledgers/personal/entries",
		`{"description":"Rent","amount":30000,"direction":"expense","date":"2026-08-03T00:00:00Z","paid":true}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/ledgers/personal/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	summary := result["summary"].(map[string]interface{})
	if summary["current_income"].(float64) != 100000 {
		t.Errorf("expected current income 100000, got %v", summary["current_income"])
	}
	if summary["current_expense"].(float64) != 30000 {
		t.Errorf("expected current expense 30000, got %v", summary["current_expense"])
	}
	if summary["current_period_balance"].(float64) != 70000 {
		t.Errorf("expected balance 70000, got %v", summary["current_period_balance"])
	}
	if result["health"] != "healthy" {
		t.Errorf("expected healthy, got %v", result["health"])
	}
}

func TestLedgerFlow_SummaryFollowsMonthBoundary(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/ledgers/personal/entries",
		`{"description":"Salary","amount":100000,"direction":"income","date":"2026-08-01T00:00:00Z"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Cross into September with no writes in between. The August income
	// must show up as carried balance, not current income.
	app.Clock.Set(time.Date(2026, time.September, 2, 10, 0, 0, 0, time.UTC))

	rec = app.request("GET", "/api/v1/ledgers/personal/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["current_income"].(float64) != 0 {
		t.Errorf("expected current income 0 after the boundary, got %v", summary["current_income"])
	}
	if summary["carried_balance"].(float64) != 100000 {
		t.Errorf("expected carried balance 100000, got %v", summary["carried_balance"])
	}
}

func TestLedgerFlow_UnpaidExpenseUntilMarkedPaid(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/ledgers/personal/entries",
		`{"description":"Electric bill","amount":12000,"direction":"expense","date":"2026-08-10T00:00:00Z"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	entry := parseJSON(t, rec)["entry"].(map[string]interface{})
	entryID := entry["id"].(string)

	// Unpaid expense does not count against the balance.
	rec = app.request("GET", "/api/v1/ledgers/personal/summary", "")
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["current_expense"].(float64) != 0 {
		t.Fatalf("expected unpaid expense excluded, got %v", summary["current_expense"])
	}

	// Paying it brings it into the balance.
	rec = app.request("POST", "/api/v1/ledgers/personal/entries/"+entryID+"/pay", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	paid := parseJSON(t, rec)["entry"].(map[string]interface{})
	if paid["paid"].(bool) != true {
		t.Errorf("expected entry paid")
	}
	if paid["payment_date"] == nil {
		t.Errorf("expected payment date to be stamped")
	}

	rec = app.request("GET", "/api/v1/ledgers/personal/summary", "")
	summary = parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["current_expense"].(float64) != 12000 {
		t.Errorf("expected current expense 12000, got %v", summary["current_expense"])
	}

	// Paying again toggles it back off.
	rec = app.request("POST", "/api/v1/ledgers/personal/entries/"+entryID+"/pay", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	unpaid := parseJSON(t, rec)["entry"].(map[string]interface{})
	if unpaid["paid"].(bool) != false {
		t.Errorf("expected entry unpaid after second toggle")
	}
}

func TestLedgerFlow_RolloverMovesUnpaidObligations(t *testing.T) {
	app := setupApp(t)

	// Unpaid expense dated Aug 5; clock starts Aug 15, so it is overdue.
	rec := app.request("POST", "/api/v1/ledgers/personal/entries",
		`{"description":"Invoice","amount":5000,"direction":"expense","date":"2026-08-05T00:00:00Z"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/ledgers/personal/rollover", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if moved := parseJSON(t, rec)["moved"].(float64); moved != 1 {
		t.Fatalf("expected 1 entry moved, got %v", moved)
	}

	// The entry now sits on the same day next month and is marked rolled.
	rec = app.request("GET", "/api/v1/ledgers/personal/entries", "")
	entries := parseJSON(t, rec)["entries"].([]interface{})
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	moved := entries[0].(map[string]interface{})
	date, err := time.Parse(time.RFC3339, moved["date"].(string))
	if err != nil {
		t.Fatalf("failed to parse date: %v", err)
	}
	if date.Month() != time.September || date.Day() != 5 {
		t.Errorf("expected entry moved to Sep 5, got %v", date)
	}
	if moved["rolled_over"].(bool) != true {
		t.Errorf("expected entry marked rolled over")
	}

	// A second sweep the same day moves nothing.
	rec = app.request("POST", "/api/v1/ledgers/personal/rollover", "")
	if movedAgain := parseJSON(t, rec)["moved"].(float64); movedAgain != 0 {
		t.Errorf("expected idempotent sweep, got %v moved", movedAgain)
	}
}

func TestLedgerFlow_KindsAreIsolated(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/ledgers/business/entries",
		`{"description":"Consulting","amount":250000,"direction":"income","date":"2026-08-02T00:00:00Z"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/ledgers/personal/entries", "")
	if entries := parseJSON(t, rec)["entries"].([]interface{}); len(entries) != 0 {
		t.Errorf("expected personal ledger empty, got %d entries", len(entries))
	}

	rec = app.request("GET", "/api/v1/ledgers/business/entries", "")
	if entries := parseJSON(t, rec)["entries"].([]interface{}); len(entries) != 1 {
		t.Errorf("expected 1 business entry, got %d", len(entries))
	}
}

func TestLedgerFlow_Errors(t *testing.T) {
	app := setupApp(t)

	t.Run("unknown_kind", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/ledgers/corporate/summary", "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("update_missing_entry", func(t *testing.T) {
		rec := app.request("PATCH", "/api/v1/ledgers/personal/entries/no-such-id",
			`{"description":"x"}`)
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("pay_income_entry", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/ledgers/personal/entries",
			`{"description":"Bonus","amount":10000,"direction":"income","date":"2026-08-01T00:00:00Z"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		id := parseJSON(t, rec)["entry"].(map[string]interface{})["id"].(string)

		rec = app.request("POST", fmt.Sprintf("/api/v1/ledgers/personal/entries/%s/pay", id), "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("negative_amount", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/ledgers/personal/entries",
			`{"description":"Refund","amount":-100,"direction":"income","date":"2026-08-01T00:00:00Z"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}
