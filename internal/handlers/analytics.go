package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"social-pulse/internal/analytics"
	"social-pulse/internal/stats"

	"github.com/gin-gonic/gin"
)

const histogramBins = 50

// AnalyticsHandler handles the dashboard's aggregation endpoints.
type AnalyticsHandler struct {
	svc *analytics.Service
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(svc *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// GetTrendData handles GET /api/trend-data
func (h *AnalyticsHandler) GetTrendData(c *gin.Context) {
	platforms := queryList(c, "platforms")
	metrics := queryList(c, "metrics")
	if len(platforms) == 0 || len(metrics) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "platforms and metrics parameters are required"})
		return
	}
	for _, m := range metrics {
		if m != analytics.MetricSentiment && m != analytics.MetricToxicity {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown metric: " + m})
			return
		}
	}

	now := time.Now().UTC()
	start, err := parseDate(c.Query("start_date"), now.AddDate(0, 0, -7))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}
	end, err := parseDate(c.Query("end_date"), now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
		return
	}

	data, err := h.svc.TrendData(c.Request.Context(), platforms, metrics, start, end)
	if err != nil {
		h.fail(c, err)
		return
	}
	if data == nil {
		data = []analytics.TrendPoint{}
	}
	c.JSON(http.StatusOK, data)
}

// GetSubreddits handles GET /api/subreddits
func (h *AnalyticsHandler) GetSubreddits(c *gin.Context) {
	subs, err := h.svc.Subreddits(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	if subs == nil {
		subs = []string{}
	}
	c.JSON(http.StatusOK, subs)
}

// GetToxicityEngagement handles GET /api/toxicity-engagement
func (h *AnalyticsHandler) GetToxicityEngagement(c *gin.Context) {
	subreddit := c.Query("subreddit")
	if subreddit == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subreddit parameter is required"})
		return
	}

	points, err := h.svc.ToxicityEngagement(c.Request.Context(), subreddit)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := gin.H{
		"scatter_data": points,
		"stats":        nil,
	}

	// Correlation needs at least two pairs; with fewer the scatter is still
	// worth returning.
	if len(points) >= 2 {
		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for i, p := range points {
			xs[i] = p.ToxicityScore
			ys[i] = p.EngagementScore
		}

		biv, err := stats.Correlate(xs, ys)
		if err == nil {
			tox, _ := stats.Describe(xs)
			eng, _ := stats.Describe(ys)
			resp["stats"] = gin.H{
				"r_squared":       biv.RSquared,
				"correlation":     biv.Correlation,
				"mean_toxicity":   tox.Mean,
				"mean_engagement": eng.Mean,
				"sample_size":     len(points),
				"trendline":       biv.Trendline,
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

// GetSentimentDistribution handles GET /api/sentiment-distribution
func (h *AnalyticsHandler) GetSentimentDistribution(c *gin.Context) {
	platform := c.Query("platform")
	community := c.Query("community")
	if platform == "" || community == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "platform and community parameters are required"})
		return
	}

	scores, err := h.svc.SentimentSeries(c.Request.Context(), platform, community)
	if err != nil {
		h.fail(c, err)
		return
	}

	if len(scores) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"distribution": gin.H{"bins": []float64{}, "values": []float64{}},
			"stats":        nil,
		})
		return
	}

	dist, err := stats.Histogram(scores, histogramBins)
	if err != nil {
		h.fail(c, err)
		return
	}
	desc, err := stats.Describe(scores)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"distribution": dist,
		"stats":        desc,
	})
}

// GetMediaMetrics handles GET /api/media-metrics/*subreddit
func (h *AnalyticsHandler) GetMediaMetrics(c *gin.Context) {
	subreddit := strings.TrimPrefix(c.Param("subreddit"), "/")
	if decoded, err := url.PathUnescape(subreddit); err == nil {
		subreddit = decoded
	}
	if subreddit == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subreddit path segment is required"})
		return
	}

	metrics, err := h.svc.MediaMetrics(c.Request.Context(), subreddit)
	if err != nil {
		h.fail(c, err)
		return
	}
	if metrics == nil {
		metrics = []analytics.MediaMetric{}
	}
	c.JSON(http.StatusOK, metrics)
}

// GetPlatformsMetadata handles GET /api/platforms-metadata
func (h *AnalyticsHandler) GetPlatformsMetadata(c *gin.Context) {
	subreddits, err := h.svc.Subreddits(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	boards, err := h.svc.Boards(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reddit": gin.H{
			"name":        "Reddit",
			"communities": append(subreddits, analytics.TotalCommunity),
		},
		"chan": gin.H{
			"name":        "4chan",
			"communities": append(boards, analytics.TotalCommunity),
		},
	})
}

// HealthCheck handles GET /health
func (h *AnalyticsHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "social-pulse",
	})
}

// fail maps analytics and statistics errors onto HTTP statuses: bad
// parameters get 400, store or computation failures get 500.
func (h *AnalyticsHandler) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, analytics.ErrInvalidRange) || errors.Is(err, analytics.ErrUnknownPlatform) {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// queryList reads a repeated query parameter, accepting both the bare key
// and the bracketed form chart libraries tend to send.
func queryList(c *gin.Context, key string) []string {
	values := c.QueryArray(key)
	if len(values) == 0 {
		values = c.QueryArray(key + "[]")
	}
	return values
}

// parseDate accepts RFC 3339 timestamps or bare ISO dates, falling back to
// def when the parameter is absent.
func parseDate(s string, def time.Time) (time.Time, error) {
	if s == "" {
		return def, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
