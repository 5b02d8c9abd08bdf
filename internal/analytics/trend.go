package analytics

import (
	"context"
	"sort"
	"time"

	"social-pulse/internal/models"

	"gorm.io/gorm"
)

// TrendPoint is one hourly average for a (platform, metric) series.
type TrendPoint struct {
	Platform string    `json:"platform"`
	Metric   string    `json:"metric"`
	Time     time.Time `json:"time"`
	Value    float64   `json:"value"`
}

// Display names used in trend responses.
var platformLabels = map[string]string{
	PlatformReddit: "Reddit",
	PlatformChan:   "4chan",
}

type scoredRow struct {
	CreatedUTC time.Time
	Score      float64
}

// TrendData averages the requested metric per hour bucket for each requested
// platform, over [start, end]. Hours with no contributing records are
// omitted. Only records with a non-null score for the metric contribute.
func (s *Service) TrendData(ctx context.Context, platforms, metrics []string, start, end time.Time) ([]TrendPoint, error) {
	if start.After(end) {
		return nil, ErrInvalidRange
	}

	requested := make(map[string]bool, len(platforms))
	for _, p := range platforms {
		canonical, ok := NormalizePlatform(p)
		if !ok {
			return nil, ErrUnknownPlatform
		}
		requested[canonical] = true
	}
	wantMetric := make(map[string]bool, len(metrics))
	for _, m := range metrics {
		wantMetric[m] = true
	}

	var data []TrendPoint
	appendSeries := func(platform, metric string, rows []scoredRow) {
		data = append(data, bucketHourly(platformLabels[platform], metric, rows)...)
	}

	if requested[PlatformReddit] {
		if wantMetric[MetricSentiment] {
			rows, err := scoredRows(ctx, s.reddit, &models.RedditSentiment{}, "sentiment_score", start, end)
			if err != nil {
				return nil, err
			}
			appendSeries(PlatformReddit, MetricSentiment, rows)
		}
		if wantMetric[MetricToxicity] {
			rows, err := scoredRows(ctx, s.reddit, &models.RedditToxicity{}, "toxicity_score", start, end)
			if err != nil {
				return nil, err
			}
			appendSeries(PlatformReddit, MetricToxicity, rows)
		}
	}
	if requested[PlatformChan] {
		if wantMetric[MetricSentiment] {
			rows, err := scoredRows(ctx, s.chans, &models.ChanSentiment{}, "sentiment_score", start, end)
			if err != nil {
				return nil, err
			}
			appendSeries(PlatformChan, MetricSentiment, rows)
		}
		if wantMetric[MetricToxicity] {
			rows, err := scoredRows(ctx, s.chans, &models.ChanToxicity{}, "toxicity_score", start, end)
			if err != nil {
				return nil, err
			}
			appendSeries(PlatformChan, MetricToxicity, rows)
		}
	}

	return data, nil
}

// scoredRows fetches (created_utc, score) rows for one metric column with
// the range filter and null exclusion applied in SQL. Bucketing happens in
// Go so the same query runs against Postgres and the SQLite test fixture.
func scoredRows(ctx context.Context, db *gorm.DB, model interface{}, column string, start, end time.Time) ([]scoredRow, error) {
	var rows []scoredRow
	err := db.WithContext(ctx).
		Model(model).
		Select("created_utc, " + column + " AS score").
		Where(column+" IS NOT NULL").
		Where("created_utc BETWEEN ? AND ?", start, end).
		Scan(&rows).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return rows, nil
}

// bucketHourly truncates each row to its hour and averages scores per
// bucket, returning points in ascending time order.
func bucketHourly(platformLabel, metric string, rows []scoredRow) []TrendPoint {
	type agg struct {
		sum float64
		n   int
	}
	buckets := make(map[time.Time]*agg)
	for _, r := range rows {
		hour := r.CreatedUTC.UTC().Truncate(time.Hour)
		a := buckets[hour]
		if a == nil {
			a = &agg{}
			buckets[hour] = a
		}
		a.sum += r.Score
		a.n++
	}

	points := make([]TrendPoint, 0, len(buckets))
	for hour, a := range buckets {
		points = append(points, TrendPoint{
			Platform: platformLabel,
			Metric:   metric,
			Time:     hour,
			Value:    a.sum / float64(a.n),
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Time.Before(points[j].Time)
	})
	return points
}
