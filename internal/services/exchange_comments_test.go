package services

import (
	"strings"
	"testing"
)

func TestAddComment(t *testing.T) {
	svc := newTestExchange()

	id, err := svc.AddComment(1, "hello", "alice")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if id != 1 {
		t.Errorf("Expected comment id 1, got %d", id)
	}

	comments := svc.MarketComments(1)
	if len(comments) != 1 {
		t.Fatalf("Expected 1 comment, got %d", len(comments))
	}
	if comments[0].Content != "hello" || comments[0].Author != "alice" {
		t.Errorf("Unexpected comment %+v", comments[0])
	}
}

func TestAddCommentValidation(t *testing.T) {
	svc := newTestExchange()

	if _, err := svc.AddComment(1, "", "alice"); !IsValidation(err) {
		t.Errorf("Expected validation error for empty content, got %v", err)
	}

	long := strings.Repeat("x", 501)
	if _, err := svc.AddComment(1, long, "alice"); !IsValidation(err) {
		t.Errorf("Expected validation error for 501 chars, got %v", err)
	}

	// Exactly 500 characters is allowed
	if _, err := svc.AddComment(1, strings.Repeat("x", 500), "alice"); err != nil {
		t.Errorf("Expected 500 chars accepted, got %v", err)
	}
}

func TestAddCommentCountsRunes(t *testing.T) {
	svc := newTestExchange()

	// 500 multibyte runes is well over 500 bytes but still valid
	content := strings.Repeat("é", 500)
	if _, err := svc.AddComment(1, content, "alice"); err != nil {
		t.Errorf("Expected 500 runes accepted, got %v", err)
	}

	if _, err := svc.AddComment(1, strings.Repeat("é", 501), "alice"); !IsValidation(err) {
		t.Errorf("Expected validation error for 501 runes, got %v", err)
	}
}

func TestAddCommentOnUnknownMarket(t *testing.T) {
	svc := newTestExchange()

	// Comments are not checked against the market store
	id, err := svc.AddComment(999, "early comment", "alice")
	if err != nil {
		t.Fatalf("Expected orphan comment accepted, got %v", err)
	}
	if id == 0 {
		t.Error("Expected a comment id")
	}

	comments := svc.MarketComments(999)
	if len(comments) != 1 {
		t.Errorf("Expected orphan comment retrievable, got %d", len(comments))
	}
}

func TestCommentIDsContinueAfterRejection(t *testing.T) {
	svc := newTestExchange()

	if _, err := svc.AddComment(1, "", "alice"); err == nil {
		t.Fatal("Expected rejection")
	}

	id, err := svc.AddComment(1, "first", "alice")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if id != 1 {
		t.Errorf("Rejected comments must not consume ids, got %d", id)
	}
}
