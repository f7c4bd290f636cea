package services

import "forecast-market/internal/models"

// Seed installs the sample markets and insights used when the process starts
// without a snapshot. Sample markets start out active (unlike caller-created
// markets, which await validation) and the market id counter continues after
// them.
func (s *ExchangeService) Seed() {
	leanYes := true
	leanNo := false

	sampleMarkets := []models.Market{
		{
			ID:           1,
			Title:        "Will Bitcoin reach $150,000 by end of 2025?",
			Description:  "This market resolves to YES if Bitcoin (BTC) reaches or exceeds $150,000 USD by December 31, 2025.",
			Category:     "Cryptocurrency",
			Creator:      models.AnonymousPrincipal,
			CloseDate:    1767225600,
			Status:       models.StatusActive,
			YesShares:    450,
			NoShares:     550,
			YesLiquidity: 4500,
			NoLiquidity:  5500,
			TotalVolume:  2500,
			CreatedAt:    1737273600,
		},
		{
			ID:           2,
			Title:        "Will OpenAI release GPT-5 in 2025?",
			Description:  "This market resolves to YES if OpenAI officially releases a model called GPT-5 during 2025.",
			Category:     "Technology",
			Creator:      models.AnonymousPrincipal,
			CloseDate:    1767292799,
			Status:       models.StatusActive,
			YesShares:    600,
			NoShares:     400,
			YesLiquidity: 6000,
			NoLiquidity:  4000,
			TotalVolume:  1800,
			CreatedAt:    1737273600,
		},
		{
			ID:           3,
			Title:        "Will Tesla stock reach $500 by Q2 2025?",
			Description:  "This market resolves to YES if Tesla (TSLA) stock price reaches or exceeds $500 USD before June 30, 2025.",
			Category:     "Finance",
			Creator:      models.AnonymousPrincipal,
			CloseDate:    1767292799,
			Status:       models.StatusActive,
			YesShares:    300,
			NoShares:     700,
			YesLiquidity: 3000,
			NoLiquidity:  7000,
			TotalVolume:  1200,
			CreatedAt:    1737273600,
		},
	}

	sampleInsights := []models.AIInsight{
		{
			MarketID:       1,
			Summary:        "Bitcoin has shown strong institutional adoption and macroeconomic factors favor crypto. However, regulatory uncertainty remains a risk.",
			Confidence:     0.72,
			Risks:          []string{"Regulatory crackdowns", "Market volatility", "Macro economic shifts"},
			PredictionLean: &leanYes,
			GeneratedAt:    1767292799,
		},
		{
			MarketID:       2,
			Summary:        "OpenAI is likely to continue their rapid development cycle. GPT-5 announcement is probable given competitive pressure from other AI companies.",
			Confidence:     0.65,
			Risks:          []string{"Technical setbacks", "Compute resource limitations", "Safety concerns"},
			PredictionLean: &leanYes,
			GeneratedAt:    1767292799,
		},
		{
			MarketID:       3,
			Summary:        "Tesla faces production challenges and increased EV competition. Stock price target seems ambitious given current market conditions.",
			Confidence:     0.58,
			Risks:          []string{"Production delays", "Increased competition", "Economic recession"},
			PredictionLean: &leanNo,
			GeneratedAt:    1737273600,
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range sampleMarkets {
		m := sampleMarkets[i]
		s.markets[m.ID] = &m
	}
	for _, insight := range sampleInsights {
		s.insights[insight.MarketID] = insight
	}

	s.nextMarketID = uint64(len(sampleMarkets)) + 1
}
