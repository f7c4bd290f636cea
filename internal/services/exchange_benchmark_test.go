package services

import (
	"fmt"
	"testing"

	"forecast-market/internal/models"
)

func BenchmarkCalculatePrice(b *testing.B) {
	for i := 0; i < b.N; i++ {
		CalculatePrice(450, 550, i%2 == 0, 100)
	}
}

func BenchmarkBuyShares(b *testing.B) {
	svc := newTestExchange()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.BuyShares(1, i%2 == 0, 10, "bench-trader"); err != nil {
			b.Fatalf("BuyShares failed: %v", err)
		}
	}
}

func BenchmarkLeaderboard(b *testing.B) {
	svc := newTestExchange()
	for i := 0; i < 1000; i++ {
		trader := models.Principal(fmt.Sprintf("trader-%04d", i))
		if _, err := svc.BuyShares(1, true, uint64(i+1), trader); err != nil {
			b.Fatalf("BuyShares failed: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		svc.Leaderboard()
	}
}

func BenchmarkMarketTrades(b *testing.B) {
	svc := newTestExchange()
	for i := 0; i < 5000; i++ {
		if _, err := svc.BuyShares(1+uint64(i%3), true, 10, "bench-trader"); err != nil {
			b.Fatalf("BuyShares failed: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		svc.MarketTrades(1)
	}
}
