// Package metrics exposes Prometheus counters for the write paths.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CommentsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tat_comments_published_total",
		Help: "The total number of published comments",
	})

	CitationsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tat_citations_total",
		Help: "The total number of recorded citations",
	})

	EndorsementsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tat_endorsements_total",
		Help: "The total number of recorded endorsements",
	})

	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tat_submissions_total",
		Help: "The total number of article submissions by outcome",
	}, []string{"outcome"})

	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tat_rate_limited_total",
		Help: "The total number of rate limited requests by action",
	}, []string{"action"})
)

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
