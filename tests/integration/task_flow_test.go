package integration

import (
	"net/http"
	"testing"
)

func TestTaskFlow_MoveAcrossBoard(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/tasks",
		`{"title":"Write onboarding doc","priority":"high"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	task := parseJSON(t, rec)["task"].(map[string]interface{})
	taskID := task["id"].(string)
	if task["column"] != "backlog" {
		t.Fatalf("expected new task in backlog, got %v", task["column"])
	}

	// Walk the full chain: backlog -> in_progress -> review -> done.
	for _, column := range []string{"in_progress", "review", "done"} {
		rec = app.request("POST", "/api/v1/tasks/"+taskID+"/move", `{"to":"`+column+`"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("move to %s: expected 200, got %d: %s", column, rec.Code, rec.Body.String())
		}
	}
	done := parseJSON(t, rec)["task"].(map[string]interface{})
	if done["completed_at"] == nil {
		t.Errorf("expected completed_at stamped on done")
	}

	// Done is terminal.
	rec = app.request("POST", "/api/v1/tasks/"+taskID+"/move", `{"to":"backlog"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 moving out of done, got %d", rec.Code)
	}
}

func TestTaskFlow_SkippingColumnsRejected(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/tasks", `{"title":"Fix login"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	taskID := parseJSON(t, rec)["task"].(map[string]interface{})["id"].(string)

	rec = app.request("POST", "/api/v1/tasks/"+taskID+"/move", `{"to":"done"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 skipping to done, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestTaskFlow_FilterByColumn(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/tasks", `{"title":"A"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	movedID := parseJSON(t, rec)["task"].(map[string]interface{})["id"].(string)

	rec = app.request("POST", "/api/v1/tasks", `{"title":"B"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/tasks/"+movedID+"/move", `{"to":"in_progress"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/tasks?column=in_progress", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total_items"].(float64) != 1 {
		t.Errorf("expected 1 in_progress task, got %v", result["total_items"])
	}

	rec = app.request("GET", "/api/v1/tasks?column=sideways", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown column filter, got %d", rec.Code)
	}
}

func TestTaskFlow_DeleteTask(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/tasks", `{"title":"Temp"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	taskID := parseJSON(t, rec)["task"].(map[string]interface{})["id"].(string)

	rec = app.request("DELETE", "/api/v1/tasks/"+taskID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/tasks", "")
	if result := parseJSON(t, rec); result["total_items"].(float64) != 0 {
		t.Errorf("expected 0 tasks after delete, got %v", result["total_items"])
	}
}
