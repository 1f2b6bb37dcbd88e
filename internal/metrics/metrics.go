// Package metrics exposes Prometheus counters for HTTP traffic, login
// outcomes and activity log writes.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	LoginSucceeded = "success"
	LoginRejected  = "rejected"
	LoginFailed    = "error"
)

type Collector struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	loginAttempts  *prometheus.CounterVec
	activityWrites *prometheus.CounterVec
}

// NewCollector registers every metric on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	collector := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "emotrack_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "emotrack_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "emotrack_login_attempts_total",
			Help: "Login attempts by outcome",
		}, []string{"outcome"}),
		activityWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "emotrack_activity_log_writes_total",
			Help: "Activity log writes by action tag and outcome",
		}, []string{"action", "outcome"}),
	}

	reg.MustRegister(
		collector.httpRequests,
		collector.httpDuration,
		collector.loginAttempts,
		collector.activityWrites,
	)
	return collector
}

func (collector *Collector) ObserveLogin(outcome string) {
	collector.loginAttempts.WithLabelValues(outcome).Inc()
}

func (collector *Collector) ObserveActivity(action string, persisted bool) {
	outcome := "persisted"
	if !persisted {
		outcome = "failed"
	}
	collector.activityWrites.WithLabelValues(action, outcome).Inc()
}

// Middleware labels requests with the matched route pattern rather than the
// raw path, so ids never become label values.
func (collector *Collector) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		started := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
		}

		route := c.Route().Path
		collector.httpRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		collector.httpDuration.WithLabelValues(route).Observe(time.Since(started).Seconds())
		return err
	}
}

// Handler serves the Prometheus text exposition for gatherer.
func Handler(gatherer prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}
