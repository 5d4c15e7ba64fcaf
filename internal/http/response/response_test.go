package response

import (
	"encoding/json/v2"
	"net/http/httptest"
	"testing"
)

func TestJSONWritesPlainBody(t *testing.T) {
	rec := httptest.NewRecorder()

	Success(rec, map[string]any{"total": 3}, nil)

	if rec.Code != 200 {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("content type: got %q", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["total"] != float64(3) {
		t.Errorf("total: got %v", body["total"])
	}
	// No envelope keys.
	if _, ok := body["data"]; ok {
		t.Error("body should not be wrapped in an envelope")
	}
}

func TestErrorBody(t *testing.T) {
	rec := httptest.NewRecorder()

	BadRequest(rec, "file extension not allowed", nil)

	if rec.Code != 400 {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["error"] != "file extension not allowed" {
		t.Errorf("error: got %q", body["error"])
	}
}

func TestNoContent(t *testing.T) {
	rec := httptest.NewRecorder()

	NoContent(rec)

	if rec.Code != 204 {
		t.Fatalf("status: got %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body should be empty, got %q", rec.Body.String())
	}
}
