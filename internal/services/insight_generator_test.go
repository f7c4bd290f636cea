package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"forecast-market/internal/llm"
	"forecast-market/internal/models"
)

func TestModelGeneratorSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Strong YES lean based on volume."}}]}`))
	}))
	defer server.Close()

	gen := NewModelInsightGenerator(llm.NewClient(server.URL, "test-key", "test-model"))
	insight := gen.Generate(context.Background(), models.Market{ID: 5, Title: "Test"})

	if insight.MarketID != 5 {
		t.Errorf("Expected market id 5, got %d", insight.MarketID)
	}
	if insight.Summary != "Strong YES lean based on volume." {
		t.Errorf("Expected model text as summary, got %q", insight.Summary)
	}
	if insight.Confidence != 0.7 {
		t.Errorf("Expected confidence 0.7, got %f", insight.Confidence)
	}
}

func TestModelGeneratorCallFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	gen := NewModelInsightGenerator(llm.NewClient(server.URL, "test-key", "test-model"))
	insight := gen.Generate(context.Background(), models.Market{ID: 5})

	if insight.Confidence != 0.3 {
		t.Errorf("Expected diagnostic confidence 0.3, got %f", insight.Confidence)
	}
	if insight.Summary == "" {
		t.Error("Expected diagnostic summary")
	}
}
