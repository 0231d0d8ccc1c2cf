// Package metrics содержит Prometheus-метрики хранилища статистики.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы применения события к статистике.
const (
	OutcomeCommitted = "committed"
	OutcomeNoop      = "noop"
	OutcomeDuplicate = "duplicate"
	OutcomeConflict  = "conflict"
	OutcomeTimeout   = "timeout"
	OutcomeError     = "error"
)

const (
	namespace = "contribution_tracker"
	subsystem = "stats_store"
)

// StatsCollector собирает метрики оптимистичных обновлений статистики.
type StatsCollector struct {
	enabled   bool
	attempts  prometheus.Counter
	conflicts prometheus.Counter
	outcomes  *prometheus.CounterVec
	duration  prometheus.Histogram
}

// NewStatsCollector регистрирует метрики в registry. При enabled == false
// метрики не регистрируются, а методы ничего не делают.
func NewStatsCollector(registry prometheus.Registerer, enabled bool) *StatsCollector {
	c := &StatsCollector{enabled: enabled}
	if !enabled {
		return c
	}

	auto := promauto.With(registry)
	c.attempts = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "attempts_total",
		Help:      "Total number of read-modify-write attempts against user stats",
	})
	c.conflicts = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "version_conflicts_total",
		Help:      "Total number of conditional writes rejected because of a version change",
	})
	c.outcomes = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "apply_total",
			Help:      "Total number of applied events by outcome",
		},
		[]string{"outcome"},
	)
	c.duration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "apply_duration_seconds",
		Help:      "Time spent applying one event including retries",
		Buckets:   prometheus.DefBuckets,
	})
	return c
}

// ObserveAttempt учитывает одну попытку чтения-изменения-записи.
func (c *StatsCollector) ObserveAttempt() {
	if c == nil || !c.enabled {
		return
	}
	c.attempts.Inc()
}

// ObserveConflict учитывает отклонённую условную запись.
func (c *StatsCollector) ObserveConflict() {
	if c == nil || !c.enabled {
		return
	}
	c.conflicts.Inc()
}

// ObserveOutcome учитывает итог применения события и его длительность.
func (c *StatsCollector) ObserveOutcome(outcome string, elapsed time.Duration) {
	if c == nil || !c.enabled {
		return
	}
	c.outcomes.WithLabelValues(outcome).Inc()
	c.duration.Observe(elapsed.Seconds())
}
