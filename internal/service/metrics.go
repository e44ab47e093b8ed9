package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSuccess      = "success"
	outcomeFetchFailure = "fetch_failure"
	outcomeInvalid      = "invalid_input"
)

var (
	pageAnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "perfsmell_page_analyses_total",
			Help: "Total number of page analyses by outcome",
		},
		[]string{"outcome"},
	)

	smellScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "perfsmell_score",
			Help:    "Distribution of computed performance smell scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	fetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "perfsmell_fetch_duration_seconds",
			Help:    "Duration of page fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(pageAnalysesTotal, smellScore, fetchDuration)
}
