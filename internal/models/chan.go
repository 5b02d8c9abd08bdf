package models

import "time"

// ChanSentiment is one scored 4chan post produced by the sentiment analyzer.
type ChanSentiment struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ContentID      string    `json:"content_id" gorm:"uniqueIndex:ux_chan_sentiment;not null"`
	Board          string    `json:"board" gorm:"uniqueIndex:ux_chan_sentiment;index;not null"`
	ThreadID       *string   `json:"thread_id" gorm:"uniqueIndex:ux_chan_sentiment"` // nil for thread openers
	CreatedUTC     time.Time `json:"created_utc" gorm:"index;not null"`
	SentimentScore *float64  `json:"sentiment_score"`
}

// TableName sets the table name for the ChanSentiment model
func (ChanSentiment) TableName() string {
	return "chan_sentiment_analysis"
}

// ChanToxicity is one scored 4chan post produced by the toxicity analyzer.
type ChanToxicity struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ContentID     string    `json:"content_id" gorm:"uniqueIndex:ux_chan_toxicity;not null"`
	Board         string    `json:"board" gorm:"uniqueIndex:ux_chan_toxicity;index;not null"`
	ThreadID      *string   `json:"thread_id" gorm:"uniqueIndex:ux_chan_toxicity"`
	CreatedUTC    time.Time `json:"created_utc" gorm:"index;not null"`
	ToxicityScore *float64  `json:"toxicity_score"`
}

// TableName sets the table name for the ChanToxicity model
func (ChanToxicity) TableName() string {
	return "chan_toxicity_analysis"
}
