package services

import (
	"context"
	"fmt"
	"log"

	"forecast-market/internal/llm"
	"forecast-market/internal/models"
)

// InsightGenerator produces an analysis for a market. Implementations never
// fail: any problem degrades to a low-confidence insight so callers of the
// insight endpoint never see an error.
type InsightGenerator interface {
	Generate(ctx context.Context, market models.Market) models.AIInsight
}

// TemplateInsightGenerator is the default strategy: a deterministic,
// locally-built analysis that needs no network access.
type TemplateInsightGenerator struct {
	now func() uint64
}

// NewTemplateInsightGenerator creates the local generator.
func NewTemplateInsightGenerator() *TemplateInsightGenerator {
	return &TemplateInsightGenerator{now: unixNow}
}

// Generate builds the templated insight for a market.
func (g *TemplateInsightGenerator) Generate(_ context.Context, market models.Market) models.AIInsight {
	leanYes := true
	return models.AIInsight{
		MarketID: market.ID,
		Summary: fmt.Sprintf(
			"AI Analysis for '%s': Based on current market trends and sentiment analysis, this prediction market shows interesting dynamics. The market sentiment appears to be driven by recent news and social media discussions. Consider both bullish and bearish scenarios before making investment decisions.",
			market.Title,
		),
		Confidence: 0.75,
		Risks: []string{
			"Market volatility due to external events",
			"Limited trading volume may affect price discovery",
			"Information asymmetry between participants",
		},
		PredictionLean: &leanYes,
		GeneratedAt:    g.now(),
	}
}

// ModelInsightGenerator asks the remote model service for an analysis. A
// failed call degrades to a diagnostic low-confidence insight; a missing
// client degrades further to a configuration-error insight.
type ModelInsightGenerator struct {
	client *llm.Client
	now    func() uint64
}

// NewModelInsightGenerator creates the remote-backed generator. client may
// be nil when the model service is not configured.
func NewModelInsightGenerator(client *llm.Client) *ModelInsightGenerator {
	return &ModelInsightGenerator{client: client, now: unixNow}
}

// Generate requests a fresh analysis from the model service.
func (g *ModelInsightGenerator) Generate(ctx context.Context, market models.Market) models.AIInsight {
	if g.client == nil {
		return models.AIInsight{
			MarketID:    market.ID,
			Summary:     "Invalid model service configuration. Please check the setup.",
			Confidence:  0.1,
			Risks:       []string{"Configuration error"},
			GeneratedAt: g.now(),
		}
	}

	prompt := fmt.Sprintf(
		"Analyze this prediction market and provide insights:\n\n"+
			"Title: %s\n"+
			"Description: %s\n"+
			"Category: %s\n\n"+
			"Current state:\n"+
			"- Yes liquidity: %d\n"+
			"- No liquidity: %d\n"+
			"- Total volume: %d\n"+
			"- Status: %s\n\n"+
			"Please provide:\n"+
			"1. A brief analysis summary (2-3 sentences)\n"+
			"2. Your prediction (YES/NO) with confidence level (0-1)\n"+
			"3. Key risk factors (list 2-3 main risks)\n\n"+
			"Format your response as JSON with keys: summary, prediction, confidence, risks",
		market.Title,
		market.Description,
		market.Category,
		market.YesLiquidity,
		market.NoLiquidity,
		market.TotalVolume,
		market.Status,
	)

	messages := []llm.ChatMessage{
		{
			Role:    llm.RoleSystem,
			Content: "You are an expert financial analyst specializing in prediction markets. Provide clear, objective analysis based on market data.",
		},
		{
			Role:    llm.RoleUser,
			Content: prompt,
		},
	}

	response, err := g.client.Chat(ctx, messages)
	if err != nil {
		log.Printf("Insight generation failed for market %d: %v", market.ID, err)
		return models.AIInsight{
			MarketID:    market.ID,
			Summary:     fmt.Sprintf("AI analysis call failed: %v. The model service may be offline or unreachable.", err),
			Confidence:  0.3,
			Risks:       []string{"AI analysis temporarily unavailable", "Check model service status"},
			GeneratedAt: g.now(),
		}
	}

	return g.parseResponse(response, market.ID)
}

// parseResponse turns the raw model output into an insight. The response is
// requested as JSON but models do not reliably comply, so the text is kept
// as the summary with default confidence and risks.
func (g *ModelInsightGenerator) parseResponse(response string, marketID uint64) models.AIInsight {
	return models.AIInsight{
		MarketID:    marketID,
		Summary:     response,
		Confidence:  0.7,
		Risks:       []string{"Market volatility", "Unexpected events"},
		GeneratedAt: g.now(),
	}
}
