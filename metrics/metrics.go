package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SchedulesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "scoringames",
		Subsystem: "scheduling",
		Name:      "schedules_generated_total",
		Help:      "Schedules generated, by competition mode.",
	}, []string{"mode"})

	GenerationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "scoringames",
		Subsystem: "scheduling",
		Name:      "generation_duration_seconds",
		Help:      "Wall time spent generating a schedule.",
		Buckets:   prometheus.DefBuckets,
	})

	RoundsAdvanced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "scoringames",
		Subsystem: "progression",
		Name:      "rounds_advanced_total",
		Help:      "Bracket rounds accepted and advanced.",
	})

	SchedulesPublished = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "scoringames",
		Subsystem: "scheduling",
		Name:      "schedules_published_total",
		Help:      "Publish operations performed.",
	})
)
