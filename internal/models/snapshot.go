package models

import "encoding/json"

// Snapshot record types for the persistence hooks. The in-memory aggregate
// is the source of truth while the process runs; these rows only carry its
// state across restarts. List-valued fields are stored as JSON text so the
// schema stays portable between SQLite and PostgreSQL.

// MarketRecord mirrors Market as a snapshot row.
type MarketRecord struct {
	ID              uint64 `gorm:"primaryKey" json:"id"`
	Title           string `gorm:"size:500;not null" json:"title"`
	Description     string `gorm:"type:text" json:"description"`
	Category        string `gorm:"size:50" json:"category"`
	Creator         string `gorm:"size:128" json:"creator"`
	CloseDate       uint64 `json:"close_date"`
	Status          string `gorm:"size:50" json:"status"`
	YesShares       uint64 `json:"yes_shares"`
	NoShares        uint64 `json:"no_shares"`
	YesLiquidity    uint64 `json:"yes_liquidity"`
	NoLiquidity     uint64 `json:"no_liquidity"`
	TotalVolume     uint64 `json:"total_volume"`
	CreatedAt       uint64 `json:"created_at"`
	ResolvedOutcome *bool  `json:"resolved_outcome"`
}

// TableName specifies the table name for MarketRecord.
func (MarketRecord) TableName() string {
	return "snapshot_markets"
}

// TradeRecord mirrors Trade as a snapshot row.
type TradeRecord struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	Seq       uint64 `gorm:"autoIncrement:false;index" json:"seq"`
	MarketID  uint64 `gorm:"index" json:"market_id"`
	Trader    string `gorm:"size:128" json:"trader"`
	IsYes     bool   `json:"is_yes"`
	Shares    uint64 `json:"shares"`
	Price     uint64 `json:"price"`
	Timestamp uint64 `json:"timestamp"`
}

// TableName specifies the table name for TradeRecord.
func (TradeRecord) TableName() string {
	return "snapshot_trades"
}

// ProfileRecord mirrors UserProfile as a snapshot row.
type ProfileRecord struct {
	Principal             string `gorm:"primaryKey;size:128" json:"principal"`
	Username              string `gorm:"size:64" json:"username"`
	XP                    uint64 `json:"xp"`
	TotalTrades           uint64 `json:"total_trades"`
	SuccessfulPredictions uint64 `json:"successful_predictions"`
	BadgesJSON            string `gorm:"type:text" json:"badges_json"`
	CreatedAt             uint64 `json:"created_at"`
}

// TableName specifies the table name for ProfileRecord.
func (ProfileRecord) TableName() string {
	return "snapshot_profiles"
}

// CommentRecord mirrors MarketComment as a snapshot row.
type CommentRecord struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	Seq       uint64 `gorm:"autoIncrement:false;index" json:"seq"`
	MarketID  uint64 `gorm:"index" json:"market_id"`
	Author    string `gorm:"size:128" json:"author"`
	Content   string `gorm:"size:500" json:"content"`
	Timestamp uint64 `json:"timestamp"`
}

// TableName specifies the table name for CommentRecord.
func (CommentRecord) TableName() string {
	return "snapshot_comments"
}

// InsightRecord mirrors AIInsight as a snapshot row.
type InsightRecord struct {
	MarketID       uint64  `gorm:"primaryKey" json:"market_id"`
	Summary        string  `gorm:"type:text" json:"summary"`
	Confidence     float64 `json:"confidence"`
	RisksJSON      string  `gorm:"type:text" json:"risks_json"`
	PredictionLean *bool   `json:"prediction_lean"`
	GeneratedAt    uint64  `json:"generated_at"`
}

// TableName specifies the table name for InsightRecord.
func (InsightRecord) TableName() string {
	return "snapshot_insights"
}

// EngineStateRecord holds the counters and treasury as a single row.
type EngineStateRecord struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	NextMarketID  uint64 `json:"next_market_id"`
	NextTradeID   uint64 `json:"next_trade_id"`
	NextCommentID uint64 `json:"next_comment_id"`
	Treasury      uint64 `json:"treasury"`
	SavedAt       uint64 `json:"saved_at"`
}

// TableName specifies the table name for EngineStateRecord.
func (EngineStateRecord) TableName() string {
	return "snapshot_engine_state"
}

// ToMarketRecord converts a Market to its snapshot row.
func ToMarketRecord(m Market) MarketRecord {
	return MarketRecord{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		Category:        m.Category,
		Creator:         string(m.Creator),
		CloseDate:       m.CloseDate,
		Status:          string(m.Status),
		YesShares:       m.YesShares,
		NoShares:        m.NoShares,
		YesLiquidity:    m.YesLiquidity,
		NoLiquidity:     m.NoLiquidity,
		TotalVolume:     m.TotalVolume,
		CreatedAt:       m.CreatedAt,
		ResolvedOutcome: m.ResolvedOutcome,
	}
}

// ToMarket converts a snapshot row back to a Market.
func (r MarketRecord) ToMarket() Market {
	return Market{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Category:        r.Category,
		Creator:         Principal(r.Creator),
		CloseDate:       r.CloseDate,
		Status:          MarketStatus(r.Status),
		YesShares:       r.YesShares,
		NoShares:        r.NoShares,
		YesLiquidity:    r.YesLiquidity,
		NoLiquidity:     r.NoLiquidity,
		TotalVolume:     r.TotalVolume,
		CreatedAt:       r.CreatedAt,
		ResolvedOutcome: r.ResolvedOutcome,
	}
}

// ToTradeRecord converts a Trade at log position seq to its snapshot row.
func ToTradeRecord(t Trade, seq uint64) TradeRecord {
	return TradeRecord{
		ID:        t.ID,
		Seq:       seq,
		MarketID:  t.MarketID,
		Trader:    string(t.Trader),
		IsYes:     t.IsYes,
		Shares:    t.Shares,
		Price:     t.Price,
		Timestamp: t.Timestamp,
	}
}

// ToTrade converts a snapshot row back to a Trade.
func (r TradeRecord) ToTrade() Trade {
	return Trade{
		ID:        r.ID,
		MarketID:  r.MarketID,
		Trader:    Principal(r.Trader),
		IsYes:     r.IsYes,
		Shares:    r.Shares,
		Price:     r.Price,
		Timestamp: r.Timestamp,
	}
}

// ToProfileRecord converts a UserProfile to its snapshot row.
func ToProfileRecord(p UserProfile) ProfileRecord {
	badges, _ := json.Marshal(p.Badges)
	return ProfileRecord{
		Principal:             string(p.Principal),
		Username:              p.Username,
		XP:                    p.XP,
		TotalTrades:           p.TotalTrades,
		SuccessfulPredictions: p.SuccessfulPredictions,
		BadgesJSON:            string(badges),
		CreatedAt:             p.CreatedAt,
	}
}

// ToProfile converts a snapshot row back to a UserProfile.
func (r ProfileRecord) ToProfile() UserProfile {
	var badges []string
	if r.BadgesJSON != "" {
		_ = json.Unmarshal([]byte(r.BadgesJSON), &badges)
	}
	return UserProfile{
		Principal:             Principal(r.Principal),
		Username:              r.Username,
		XP:                    r.XP,
		TotalTrades:           r.TotalTrades,
		SuccessfulPredictions: r.SuccessfulPredictions,
		Badges:                badges,
		CreatedAt:             r.CreatedAt,
	}
}

// ToCommentRecord converts a MarketComment at log position seq to its
// snapshot row.
func ToCommentRecord(c MarketComment, seq uint64) CommentRecord {
	return CommentRecord{
		ID:        c.ID,
		Seq:       seq,
		MarketID:  c.MarketID,
		Author:    string(c.Author),
		Content:   c.Content,
		Timestamp: c.Timestamp,
	}
}

// ToComment converts a snapshot row back to a MarketComment.
func (r CommentRecord) ToComment() MarketComment {
	return MarketComment{
		ID:        r.ID,
		MarketID:  r.MarketID,
		Author:    Principal(r.Author),
		Content:   r.Content,
		Timestamp: r.Timestamp,
	}
}

// ToInsightRecord converts an AIInsight to its snapshot row.
func ToInsightRecord(i AIInsight) InsightRecord {
	risks, _ := json.Marshal(i.Risks)
	return InsightRecord{
		MarketID:       i.MarketID,
		Summary:        i.Summary,
		Confidence:     i.Confidence,
		RisksJSON:      string(risks),
		PredictionLean: i.PredictionLean,
		GeneratedAt:    i.GeneratedAt,
	}
}

// ToInsight converts a snapshot row back to an AIInsight.
func (r InsightRecord) ToInsight() AIInsight {
	var risks []string
	if r.RisksJSON != "" {
		_ = json.Unmarshal([]byte(r.RisksJSON), &risks)
	}
	return AIInsight{
		MarketID:       r.MarketID,
		Summary:        r.Summary,
		Confidence:     r.Confidence,
		Risks:          risks,
		PredictionLean: r.PredictionLean,
		GeneratedAt:    r.GeneratedAt,
	}
}
