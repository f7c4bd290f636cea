package services

import (
	"context"
	"reflect"
	"testing"

	"forecast-market/internal/models"
)

// countingGenerator records how often it runs and stamps each insight with
// the call count, so cache hits are distinguishable from regenerations.
type countingGenerator struct {
	calls int
	now   func() uint64
}

func (g *countingGenerator) Generate(_ context.Context, market models.Market) models.AIInsight {
	g.calls++
	return models.AIInsight{
		MarketID:    market.ID,
		Summary:     "generated",
		Confidence:  float64(g.calls),
		Risks:       []string{"stub"},
		GeneratedAt: g.now(),
	}
}

func newInsightTestExchange(start uint64) (*ExchangeService, *countingGenerator, *uint64) {
	clock := start
	gen := &countingGenerator{now: func() uint64 { return clock }}
	svc := NewExchangeService(gen)
	svc.Seed()
	svc.now = func() uint64 { return clock }
	return svc, gen, &clock
}

func TestInsightCaching(t *testing.T) {
	svc, gen, clock := newInsightTestExchange(2000000000)

	// Seeded insights are long stale at this clock, so the first request
	// regenerates
	first, ok := svc.AIInsight(context.Background(), 1)
	if !ok {
		t.Fatal("Expected insight for market 1")
	}
	if gen.calls != 1 {
		t.Fatalf("Expected 1 generation, got %d", gen.calls)
	}

	// Within the hour the cached copy is served unchanged
	*clock += 3599
	second, ok := svc.AIInsight(context.Background(), 1)
	if !ok {
		t.Fatal("Expected cached insight")
	}
	if gen.calls != 1 {
		t.Errorf("Expected no regeneration within an hour, got %d calls", gen.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Cached insight differs: %+v vs %+v", first, second)
	}

	// At exactly one hour the cache is stale
	*clock += 1
	third, ok := svc.AIInsight(context.Background(), 1)
	if !ok {
		t.Fatal("Expected regenerated insight")
	}
	if gen.calls != 2 {
		t.Errorf("Expected regeneration after an hour, got %d calls", gen.calls)
	}
	if third.Confidence != 2 {
		t.Errorf("Expected fresh insight, got %+v", third)
	}
}

func TestSeededInsightServedFresh(t *testing.T) {
	// Clock inside the freshness window of the seeded insight for market 1
	svc, gen, _ := newInsightTestExchange(1767292799)

	insight, ok := svc.AIInsight(context.Background(), 1)
	if !ok {
		t.Fatal("Expected seeded insight")
	}
	if gen.calls != 0 {
		t.Errorf("Expected seeded insight served without generation, got %d calls", gen.calls)
	}
	if insight.Confidence != 0.72 {
		t.Errorf("Expected seeded confidence 0.72, got %f", insight.Confidence)
	}
}

func TestInsightUnknownMarket(t *testing.T) {
	svc, gen, _ := newInsightTestExchange(2000000000)

	if _, ok := svc.AIInsight(context.Background(), 999); ok {
		t.Error("Expected no insight for unknown market")
	}
	if gen.calls != 0 {
		t.Errorf("Unknown market must not trigger generation, got %d calls", gen.calls)
	}

	// And nothing was cached
	snap := svc.ExportSnapshot()
	for _, insight := range snap.Insights {
		if insight.MarketID == 999 {
			t.Error("Unknown market must not leave a cache entry")
		}
	}
}

func TestTemplateGenerator(t *testing.T) {
	gen := NewTemplateInsightGenerator()
	market := models.Market{ID: 7, Title: "Test market"}

	insight := gen.Generate(context.Background(), market)
	if insight.MarketID != 7 {
		t.Errorf("Expected market id 7, got %d", insight.MarketID)
	}
	if insight.Confidence != 0.75 {
		t.Errorf("Expected confidence 0.75, got %f", insight.Confidence)
	}
	if len(insight.Risks) != 3 {
		t.Errorf("Expected 3 risks, got %d", len(insight.Risks))
	}
	if insight.PredictionLean == nil || !*insight.PredictionLean {
		t.Error("Expected YES lean")
	}
}

func TestModelGeneratorWithoutClient(t *testing.T) {
	gen := NewModelInsightGenerator(nil)
	insight := gen.Generate(context.Background(), models.Market{ID: 1})

	if insight.Confidence != 0.1 {
		t.Errorf("Expected configuration-error confidence 0.1, got %f", insight.Confidence)
	}
	if len(insight.Risks) != 1 || insight.Risks[0] != "Configuration error" {
		t.Errorf("Unexpected risks %v", insight.Risks)
	}
}
