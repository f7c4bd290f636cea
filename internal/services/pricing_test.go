package services

import "testing"

func TestCalculatePriceYesSide(t *testing.T) {
	// Seed market 1 shape: 450 yes shares, buying 100 YES.
	// impact = 100*1000/(1000+450) = 68 (truncated)
	price := CalculatePrice(450, 550, true, 100)
	if price != 568 {
		t.Errorf("Expected price 568, got %d", price)
	}
}

func TestCalculatePriceNoSide(t *testing.T) {
	// Mirror of the YES vector: 450 no shares, buying 100 NO.
	price := CalculatePrice(550, 450, false, 100)
	if price != 432 {
		t.Errorf("Expected price 432, got %d", price)
	}
}

func TestCalculatePriceBalancedMarket(t *testing.T) {
	// 500/500 market: impact = 100*1000/1500 = 66
	yes := CalculatePrice(500, 500, true, 100)
	if yes != 566 {
		t.Errorf("Expected YES price 566, got %d", yes)
	}

	no := CalculatePrice(500, 500, false, 100)
	if no != 434 {
		t.Errorf("Expected NO price 434, got %d", no)
	}
}

func TestCalculatePriceImpactCap(t *testing.T) {
	// A huge order saturates the impact cap of 450 on both sides
	yes := CalculatePrice(500, 500, true, 10_000_000)
	if yes != 950 {
		t.Errorf("Expected capped YES price 950, got %d", yes)
	}

	no := CalculatePrice(500, 500, false, 10_000_000)
	if no != 50 {
		t.Errorf("Expected capped NO price 50, got %d", no)
	}
}

func TestCalculatePriceBounds(t *testing.T) {
	shapes := []struct {
		yesShares, noShares uint64
	}{
		{0, 0},
		{1, 1},
		{450, 550},
		{500, 500},
		{1_000_000, 3},
		{3, 1_000_000},
	}
	amounts := []uint64{1, 10, 100, 1000, 100_000, 10_000_000}

	for _, shape := range shapes {
		for _, amount := range amounts {
			yes := CalculatePrice(shape.yesShares, shape.noShares, true, amount)
			if yes < 500 || yes > 950 {
				t.Errorf("YES price %d out of [500, 950] for shares %d/%d amount %d",
					yes, shape.yesShares, shape.noShares, amount)
			}

			no := CalculatePrice(shape.yesShares, shape.noShares, false, amount)
			if no < 50 || no > 500 {
				t.Errorf("NO price %d out of [50, 500] for shares %d/%d amount %d",
					no, shape.yesShares, shape.noShares, amount)
			}
		}
	}
}

func TestCalculatePriceMonotonicInAmount(t *testing.T) {
	// Bigger buys never execute cheaper (YES) or dearer (NO)
	var prevYes, prevNo uint64 = 0, 1000
	for amount := uint64(1); amount <= 5000; amount += 7 {
		yes := CalculatePrice(450, 550, true, amount)
		if yes < prevYes {
			t.Fatalf("YES price decreased from %d to %d at amount %d", prevYes, yes, amount)
		}
		prevYes = yes

		no := CalculatePrice(450, 550, false, amount)
		if no > prevNo {
			t.Fatalf("NO price increased from %d to %d at amount %d", prevNo, no, amount)
		}
		prevNo = no
	}
}

func TestCalculatePriceMoreSharesDampenImpact(t *testing.T) {
	thin := CalculatePrice(100, 100, true, 200)
	deep := CalculatePrice(10_000, 10_000, true, 200)
	if deep >= thin {
		t.Errorf("Expected deeper side to dampen impact: thin %d, deep %d", thin, deep)
	}
}
