package jobs

import (
	"log"
	"time"

	"forecast-market/internal/services"
)

// MarketCloserJob periodically closes active markets whose close date has
// passed. It covers the markets an operator never closes by hand.
type MarketCloserJob struct {
	exchange *services.ExchangeService
}

func NewMarketCloserJob(exchange *services.ExchangeService) *MarketCloserJob {
	return &MarketCloserJob{exchange: exchange}
}

// Start begins the periodic close sweep
func (j *MarketCloserJob) Start(interval time.Duration) {
	go func() {
		// Run immediately on start
		if n := j.exchange.CloseExpired(); n > 0 {
			log.Printf("Closed %d expired markets on startup", n)
		}

		// Then run periodically
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if n := j.exchange.CloseExpired(); n > 0 {
				log.Printf("Closed %d expired markets", n)
			}
		}
	}()
}
