package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"forecast-market/internal/models"
)

// SnapshotService persists exchange snapshots through GORM. It implements
// the hosting side of the durability contract: the exchange itself stays
// purely in-memory, this service only carries its state across restarts.
type SnapshotService struct {
	db *gorm.DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *gorm.DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// Save replaces the stored snapshot with snap. The write is transactional:
// a crash mid-save leaves the previous snapshot intact on engines with
// transactional DDL-free deletes (both SQLite and PostgreSQL here).
func (s *SnapshotService) Save(snap Snapshot) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		tables := []interface{}{
			&models.MarketRecord{},
			&models.TradeRecord{},
			&models.ProfileRecord{},
			&models.CommentRecord{},
			&models.InsightRecord{},
			&models.EngineStateRecord{},
		}
		for _, table := range tables {
			if err := tx.Where("1 = 1").Delete(table).Error; err != nil {
				return fmt.Errorf("failed to clear snapshot table %T: %w", table, err)
			}
		}

		for _, m := range snap.Markets {
			record := models.ToMarketRecord(m)
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to save market %d: %w", m.ID, err)
			}
		}
		for i, t := range snap.Trades {
			record := models.ToTradeRecord(t, uint64(i))
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to save trade %d: %w", t.ID, err)
			}
		}
		for _, p := range snap.Profiles {
			record := models.ToProfileRecord(p)
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to save profile %s: %w", p.Principal, err)
			}
		}
		for i, c := range snap.Comments {
			record := models.ToCommentRecord(c, uint64(i))
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to save comment %d: %w", c.ID, err)
			}
		}
		for _, insight := range snap.Insights {
			record := models.ToInsightRecord(insight)
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to save insight for market %d: %w", insight.MarketID, err)
			}
		}

		state := models.EngineStateRecord{
			ID:            1,
			NextMarketID:  snap.NextMarketID,
			NextTradeID:   snap.NextTradeID,
			NextCommentID: snap.NextCommentID,
			Treasury:      snap.Treasury,
			SavedAt:       unixNow(),
		}
		if err := tx.Create(&state).Error; err != nil {
			return fmt.Errorf("failed to save engine state: %w", err)
		}

		return nil
	})
}

// Load reads the stored snapshot. The second return value is false when no
// snapshot has ever been saved.
func (s *SnapshotService) Load() (Snapshot, bool, error) {
	var state models.EngineStateRecord
	if err := s.db.First(&state, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, fmt.Errorf("failed to load engine state: %w", err)
	}

	snap := Snapshot{
		NextMarketID:  state.NextMarketID,
		NextTradeID:   state.NextTradeID,
		NextCommentID: state.NextCommentID,
		Treasury:      state.Treasury,
	}

	var marketRecords []models.MarketRecord
	if err := s.db.Find(&marketRecords).Error; err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to load markets: %w", err)
	}
	for _, r := range marketRecords {
		snap.Markets = append(snap.Markets, r.ToMarket())
	}

	var tradeRecords []models.TradeRecord
	if err := s.db.Order("seq").Find(&tradeRecords).Error; err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to load trades: %w", err)
	}
	for _, r := range tradeRecords {
		snap.Trades = append(snap.Trades, r.ToTrade())
	}

	var profileRecords []models.ProfileRecord
	if err := s.db.Find(&profileRecords).Error; err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to load profiles: %w", err)
	}
	for _, r := range profileRecords {
		snap.Profiles = append(snap.Profiles, r.ToProfile())
	}

	var commentRecords []models.CommentRecord
	if err := s.db.Order("seq").Find(&commentRecords).Error; err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to load comments: %w", err)
	}
	for _, r := range commentRecords {
		snap.Comments = append(snap.Comments, r.ToComment())
	}

	var insightRecords []models.InsightRecord
	if err := s.db.Find(&insightRecords).Error; err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to load insights: %w", err)
	}
	for _, r := range insightRecords {
		snap.Insights = append(snap.Insights, r.ToInsight())
	}

	return snap, true, nil
}
