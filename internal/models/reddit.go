package models

import "time"

// RedditSentiment is one scored Reddit post or comment produced by the
// sentiment analyzer. Media flags are recorded for posts only.
type RedditSentiment struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ContentID      string    `json:"content_id" gorm:"uniqueIndex:ux_reddit_sentiment;not null"`
	ContentType    string    `json:"content_type" gorm:"index;not null"` // "post" or "comment"
	Subreddit      string    `json:"subreddit" gorm:"uniqueIndex:ux_reddit_sentiment;index;not null"`
	ThreadID       *string   `json:"thread_id" gorm:"uniqueIndex:ux_reddit_sentiment"` // nil for top-level posts
	CreatedUTC     time.Time `json:"created_utc" gorm:"index;not null"`
	SentimentScore *float64  `json:"sentiment_score"`

	// Media flags derived from the post body by the crawler.
	HasText  bool `json:"has_text" gorm:"default:false"`
	HasImage bool `json:"has_image" gorm:"default:false"`
	HasVideo bool `json:"has_video" gorm:"default:false"`
	HasLink  bool `json:"has_link" gorm:"default:false"`
}

// TableName sets the table name for the RedditSentiment model
func (RedditSentiment) TableName() string {
	return "reddit_sentiment_analysis"
}

// RedditToxicity is one scored Reddit post or comment produced by the
// toxicity analyzer, along with the raw engagement counters.
type RedditToxicity struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ContentID     string    `json:"content_id" gorm:"uniqueIndex:ux_reddit_toxicity;not null"`
	ContentType   string    `json:"content_type" gorm:"index;not null"`
	Subreddit     string    `json:"subreddit" gorm:"uniqueIndex:ux_reddit_toxicity;index;not null"`
	ThreadID      *string   `json:"thread_id" gorm:"uniqueIndex:ux_reddit_toxicity"`
	CreatedUTC    time.Time `json:"created_utc" gorm:"index;not null"`
	ToxicityScore *float64  `json:"toxicity_score"`
	Score         int       `json:"score" gorm:"default:0"`
	NumComments   int       `json:"num_comments" gorm:"default:0"`
}

// TableName sets the table name for the RedditToxicity model
func (RedditToxicity) TableName() string {
	return "reddit_toxicity_analysis"
}
