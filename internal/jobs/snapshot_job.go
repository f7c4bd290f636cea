package jobs

import (
	"log"
	"time"

	"forecast-market/internal/services"
)

// SnapshotJob periodically persists the exchange state so a restart loses at
// most one interval of activity. The final save on shutdown happens in main,
// not here.
type SnapshotJob struct {
	exchange  *services.ExchangeService
	snapshots *services.SnapshotService
}

func NewSnapshotJob(exchange *services.ExchangeService, snapshots *services.SnapshotService) *SnapshotJob {
	return &SnapshotJob{
		exchange:  exchange,
		snapshots: snapshots,
	}
}

// Start begins the periodic snapshot job
func (j *SnapshotJob) Start(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if err := j.snapshots.Save(j.exchange.ExportSnapshot()); err != nil {
				log.Printf("Snapshot save error: %v", err)
			}
		}
	}()
}
