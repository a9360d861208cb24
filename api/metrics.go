package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	productEvaluationsServed prometheus.Counter
	productSearches          *prometheus.CounterVec
	waitlistSignups          prometheus.Counter
	scansProcessed           prometheus.Counter
	httpRequestDuration      *prometheus.HistogramVec
)

func init() {
	productEvaluationsServed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "product_evaluations_served_total",
			Help: "Total number of enriched product evaluations served.",
		},
	)
	productSearches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_searches_total",
			Help: "Total number of product searches by outcome (empty, hit, miss).",
		},
		[]string{"outcome"},
	)
	waitlistSignups = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "waitlist_signups_total",
			Help: "Total number of successful waitlist signups.",
		},
	)
	scansProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "scans_processed_total",
			Help: "Total number of processed product scans.",
		},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route, method and status.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)
	prometheus.MustRegister(productEvaluationsServed, productSearches, waitlistSignups, scansProcessed, httpRequestDuration)
}

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestDuration.
			WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
