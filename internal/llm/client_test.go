package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChat(t *testing.T) {
	var captured ChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Unexpected auth header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello back"}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", "test-model")
	text, err := client.Chat(context.Background(), []ChatMessage{
		{Role: RoleSystem, Content: "be brief"},
		{Role: RoleUser, Content: "hello"},
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if text != "hello back" {
		t.Errorf("Expected response text, got %q", text)
	}

	if captured.Model != "test-model" {
		t.Errorf("Expected model test-model, got %q", captured.Model)
	}
	if len(captured.Messages) != 2 || captured.Messages[1].Content != "hello" {
		t.Errorf("Unexpected messages %+v", captured.Messages)
	}
}

func TestChatServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "test-model")
	if _, err := client.Chat(context.Background(), []ChatMessage{{Role: RoleUser, Content: "hi"}}); err == nil {
		t.Fatal("Expected error on 500 response")
	}
}

func TestChatNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "test-model")
	if _, err := client.Chat(context.Background(), []ChatMessage{{Role: RoleUser, Content: "hi"}}); err == nil {
		t.Fatal("Expected error on empty choices")
	}
}
