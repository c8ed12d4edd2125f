package httpapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vivid_generations_total",
		Help: "Number of artworks generated, by resolved style.",
	}, []string{"style"})

	generationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vivid_generation_duration_seconds",
		Help:    "Wall time of a full generation, including encoding-free pipeline work only.",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
	})
)

func observeGeneration(style string, d time.Duration) {
	generationsTotal.WithLabelValues(style).Inc()
	generationDuration.Observe(d.Seconds())
}
