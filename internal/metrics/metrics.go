package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"helpbot/internal/db"
)

var (
	responsesDesc = prometheus.NewDesc(
		"helpbot_responses_total",
		"Total chat responses by source",
		[]string{"source"},
		nil,
	)

	inferenceAvailable = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "helpbot_inference_available",
		Help: "Whether the extractive QA capability initialized at startup (1) or the service is in knowledge-base-only mode (0)",
	})
)

// ResponseCollector is a custom Prometheus collector that reads response
// counts per source from the interaction log on each scrape.
type ResponseCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *ResponseCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- responsesDesc
}

// Collect queries the database for per-source totals and emits them as
// counters.
func (c *ResponseCollector) Collect(ch chan<- prometheus.Metric) {
	counts, err := c.db.CountBySource(context.Background())
	if err != nil {
		slog.Error("failed to collect response metrics", "error", err)
		return
	}
	for _, sc := range counts {
		ch <- prometheus.MustNewConstMetric(
			responsesDesc,
			prometheus.CounterValue,
			float64(sc.Count),
			sc.Source,
		)
	}
}

var initOnce sync.Once

// Init registers the collectors. Must be called once at startup.
func Init(database *db.DB, inferenceUp bool) {
	initOnce.Do(func() {
		prometheus.MustRegister(&ResponseCollector{db: database})
		prometheus.MustRegister(inferenceAvailable)
		if inferenceUp {
			inferenceAvailable.Set(1)
		}
	})
}
