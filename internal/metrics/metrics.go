package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	matchesRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "career_matches_recorded_total",
		Help: "Total number of matches recorded, by mode",
	}, []string{"mode"})

	campaignTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "career_campaign_transitions_total",
		Help: "Total number of campaign state transitions",
	}, []string{"mode", "transition"})

	milestonesPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "career_milestones_published_total",
		Help: "Total number of milestones sent to the activity feed",
	}, []string{"kind", "outcome"})

	analyticsDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "career_analytics_duration_seconds",
		Help:    "Duration of a full analytics computation for one player",
		Buckets: prometheus.DefBuckets,
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "career_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "status_code"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "career_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
)

func MatchRecorded(mode string) {
	matchesRecorded.WithLabelValues(mode).Inc()
}

func CampaignTransition(mode, transition string) {
	campaignTransitions.WithLabelValues(mode, transition).Inc()
}

func MilestonePublished(kind string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	milestonesPublished.WithLabelValues(kind, outcome).Inc()
}

func ObserveAnalytics(start time.Time) {
	analyticsDuration.Observe(time.Since(start).Seconds())
}

func ObserveRequest(method string, status int, start time.Time) {
	httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}
