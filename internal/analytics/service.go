// Package analytics implements the read-side aggregation queries over the
// crawler databases. Every method is a stateless read; callers may invoke
// them concurrently.
package analytics

import (
	"context"
	"sort"

	"social-pulse/internal/database"
	"social-pulse/internal/mediatype"
	"social-pulse/internal/models"

	"gorm.io/gorm"
)

// Platform identifiers accepted by the API.
const (
	PlatformReddit = "reddit"
	PlatformChan   = "4chan"

	// TotalCommunity selects all groups of a platform.
	TotalCommunity = "total"
)

// Metric identifiers accepted by the API.
const (
	MetricSentiment = "sentiment"
	MetricToxicity  = "toxicity"
)

// Service runs aggregation queries against the per-platform stores.
type Service struct {
	reddit *gorm.DB
	chans  *gorm.DB
}

// NewService creates an analytics service over the given stores.
func NewService(stores database.Stores) *Service {
	return &Service{
		reddit: stores.Reddit,
		chans:  stores.Chan,
	}
}

// NormalizePlatform maps accepted platform spellings ("chan" is an alias for
// "4chan") to their canonical identifier.
func NormalizePlatform(p string) (string, bool) {
	switch p {
	case PlatformReddit:
		return PlatformReddit, true
	case PlatformChan, "chan":
		return PlatformChan, true
	}
	return "", false
}

// Subreddits returns the distinct subreddits that have at least one scored
// post, ascending.
func (s *Service) Subreddits(ctx context.Context) ([]string, error) {
	var subreddits []string
	err := s.reddit.WithContext(ctx).
		Model(&models.RedditSentiment{}).
		Where("content_type = ?", "post").
		Distinct("subreddit").
		Order("subreddit").
		Pluck("subreddit", &subreddits).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return subreddits, nil
}

// Boards returns the distinct 4chan boards that have at least one scored
// post, ascending.
func (s *Service) Boards(ctx context.Context) ([]string, error) {
	var boards []string
	err := s.chans.WithContext(ctx).
		Model(&models.ChanSentiment{}).
		Distinct("board").
		Order("board").
		Pluck("board", &boards).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return boards, nil
}

// EngagementPoint pairs a post's toxicity score with its engagement score.
type EngagementPoint struct {
	ToxicityScore   float64 `json:"toxicity_score"`
	EngagementScore float64 `json:"engagement_score"`
}

// ToxicityEngagement returns (toxicity, engagement) pairs for all scored
// posts in a subreddit. Engagement is the mean of the post score and its
// comment count, matching what the crawlers record.
func (s *Service) ToxicityEngagement(ctx context.Context, subreddit string) ([]EngagementPoint, error) {
	var rows []struct {
		ToxicityScore float64
		Score         int
		NumComments   int
	}
	err := s.reddit.WithContext(ctx).
		Model(&models.RedditToxicity{}).
		Select("toxicity_score, score, num_comments").
		Where("subreddit = ?", subreddit).
		Where("content_type = ?", "post").
		Where("toxicity_score IS NOT NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, storeErr(err)
	}

	points := make([]EngagementPoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, EngagementPoint{
			ToxicityScore:   r.ToxicityScore,
			EngagementScore: float64(r.Score+r.NumComments) / 2,
		})
	}
	return points, nil
}

// MediaMetric holds the average scores of a derived media category.
type MediaMetric struct {
	DerivedMediaType string  `json:"derived_media_type"`
	AvgSentiment     float64 `json:"avg_sentiment"`
	AvgToxicity      float64 `json:"avg_toxicity"`
}

// MediaMetrics classifies a subreddit's posts by derived media type and
// averages sentiment and toxicity per category, sorted by category label.
// Posts are joined across the sentiment and toxicity tables on content id;
// unmatched or unclassifiable rows are dropped.
func (s *Service) MediaMetrics(ctx context.Context, subreddit string) ([]MediaMetric, error) {
	var rows []struct {
		HasText        bool
		HasImage       bool
		HasVideo       bool
		HasLink        bool
		SentimentScore float64
		ToxicityScore  float64
	}
	err := s.reddit.WithContext(ctx).
		Model(&models.RedditSentiment{}).
		Select("reddit_sentiment_analysis.has_text, reddit_sentiment_analysis.has_image, "+
			"reddit_sentiment_analysis.has_video, reddit_sentiment_analysis.has_link, "+
			"reddit_sentiment_analysis.sentiment_score, t.toxicity_score").
		Joins("JOIN reddit_toxicity_analysis t ON t.content_id = reddit_sentiment_analysis.content_id "+
			"AND t.content_type = reddit_sentiment_analysis.content_type").
		Where("reddit_sentiment_analysis.content_type = ?", "post").
		Where("reddit_sentiment_analysis.subreddit = ?", subreddit).
		Where("reddit_sentiment_analysis.sentiment_score IS NOT NULL").
		Where("t.toxicity_score IS NOT NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, storeErr(err)
	}

	type agg struct {
		sentiment float64
		toxicity  float64
		n         int
	}
	byType := make(map[string]*agg)
	for _, r := range rows {
		label, ok := mediatype.Classify(mediatype.Flags{
			Text:  r.HasText,
			Image: r.HasImage,
			Video: r.HasVideo,
			Link:  r.HasLink,
		})
		if !ok {
			continue
		}
		a := byType[label]
		if a == nil {
			a = &agg{}
			byType[label] = a
		}
		a.sentiment += r.SentimentScore
		a.toxicity += r.ToxicityScore
		a.n++
	}

	metrics := make([]MediaMetric, 0, len(byType))
	for label, a := range byType {
		metrics = append(metrics, MediaMetric{
			DerivedMediaType: label,
			AvgSentiment:     a.sentiment / float64(a.n),
			AvgToxicity:      a.toxicity / float64(a.n),
		})
	}
	sort.Slice(metrics, func(i, j int) bool {
		return metrics[i].DerivedMediaType < metrics[j].DerivedMediaType
	})
	return metrics, nil
}

// SentimentSeries returns the sentiment scores for one community of a
// platform, or for the whole platform when community is "total".
func (s *Service) SentimentSeries(ctx context.Context, platform, community string) ([]float64, error) {
	canonical, ok := NormalizePlatform(platform)
	if !ok {
		return nil, ErrUnknownPlatform
	}

	var scores []float64
	var err error
	switch canonical {
	case PlatformReddit:
		q := s.reddit.WithContext(ctx).
			Model(&models.RedditSentiment{}).
			Where("content_type = ?", "post").
			Where("sentiment_score IS NOT NULL")
		if community != TotalCommunity {
			q = q.Where("subreddit = ?", community)
		}
		err = q.Pluck("sentiment_score", &scores).Error
	case PlatformChan:
		q := s.chans.WithContext(ctx).
			Model(&models.ChanSentiment{}).
			Where("sentiment_score IS NOT NULL")
		if community != TotalCommunity {
			q = q.Where("board = ?", community)
		}
		err = q.Pluck("sentiment_score", &scores).Error
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return scores, nil
}
