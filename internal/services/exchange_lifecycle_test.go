package services

import (
	"errors"
	"testing"

	"forecast-market/internal/models"
)

func TestMarketLifecycle(t *testing.T) {
	svc := newTestExchange()

	id, err := svc.CreateMarket("t", "d", "c", 2000000000, "alice")
	if err != nil {
		t.Fatalf("CreateMarket failed: %v", err)
	}

	if err := svc.ApproveMarket(id); err != nil {
		t.Fatalf("ApproveMarket failed: %v", err)
	}
	m, _ := svc.Market(id)
	if m.Status != models.StatusActive {
		t.Errorf("Expected active after approval, got %s", m.Status)
	}

	if err := svc.CloseMarket(id); err != nil {
		t.Fatalf("CloseMarket failed: %v", err)
	}
	m, _ = svc.Market(id)
	if m.Status != models.StatusClosed {
		t.Errorf("Expected closed, got %s", m.Status)
	}

	if err := svc.ResolveMarket(id, true); err != nil {
		t.Fatalf("ResolveMarket failed: %v", err)
	}
	m, _ = svc.Market(id)
	if m.Status != models.StatusResolved {
		t.Errorf("Expected resolved, got %s", m.Status)
	}
	if m.ResolvedOutcome == nil || *m.ResolvedOutcome != true {
		t.Error("Expected resolved outcome YES")
	}
}

func TestInvalidTransitions(t *testing.T) {
	svc := newTestExchange()

	id, _ := svc.CreateMarket("t", "d", "c", 0, "alice")

	// pending -> closed and pending -> resolved are rejected
	if err := svc.CloseMarket(id); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition closing pending market, got %v", err)
	}
	if err := svc.ResolveMarket(id, true); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition resolving pending market, got %v", err)
	}

	// active markets cannot be approved again or resolved directly
	if err := svc.ApproveMarket(id); err != nil {
		t.Fatalf("ApproveMarket failed: %v", err)
	}
	if err := svc.ApproveMarket(id); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition re-approving, got %v", err)
	}
	if err := svc.ResolveMarket(id, true); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition resolving active market, got %v", err)
	}

	// unknown market
	if err := svc.ApproveMarket(999); !errors.Is(err, ErrMarketNotFound) {
		t.Errorf("Expected ErrMarketNotFound, got %v", err)
	}
}

func TestResolveOnlyOnce(t *testing.T) {
	svc := newTestExchange()

	if err := svc.CloseMarket(1); err != nil {
		t.Fatalf("CloseMarket failed: %v", err)
	}
	if err := svc.ResolveMarket(1, false); err != nil {
		t.Fatalf("ResolveMarket failed: %v", err)
	}

	if err := svc.ResolveMarket(1, true); !errors.Is(err, ErrAlreadyResolved) {
		t.Errorf("Expected ErrAlreadyResolved, got %v", err)
	}

	// The first outcome sticks
	m, _ := svc.Market(1)
	if m.ResolvedOutcome == nil || *m.ResolvedOutcome != false {
		t.Error("Expected original outcome NO preserved")
	}
}

func TestClosedMarketRejectsTrades(t *testing.T) {
	svc := newTestExchange()

	if err := svc.CloseMarket(1); err != nil {
		t.Fatalf("CloseMarket failed: %v", err)
	}
	if _, err := svc.BuyShares(1, true, 100, "alice"); !errors.Is(err, ErrMarketNotActive) {
		t.Errorf("Expected ErrMarketNotActive on closed market, got %v", err)
	}
}

func TestCloseExpired(t *testing.T) {
	svc := newTestExchange()
	svc.now = func() uint64 { return 1767225600 }

	// Market 1 closes exactly at 1767225600; markets 2 and 3 close later
	closed := svc.CloseExpired()
	if closed != 1 {
		t.Fatalf("Expected 1 market closed, got %d", closed)
	}

	m1, _ := svc.Market(1)
	if m1.Status != models.StatusClosed {
		t.Errorf("Expected market 1 closed, got %s", m1.Status)
	}
	m2, _ := svc.Market(2)
	if m2.Status != models.StatusActive {
		t.Errorf("Expected market 2 still active, got %s", m2.Status)
	}

	// A second sweep finds nothing new
	if closed := svc.CloseExpired(); closed != 0 {
		t.Errorf("Expected no further closes, got %d", closed)
	}
}
