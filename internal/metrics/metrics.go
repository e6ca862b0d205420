// Package metrics exports sweep and ingestion counters to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"ad-budget/internal/core/port"
)

const namespace = "adbudget"

// Spend outcomes recorded by ObserveSpend.
const (
	SpendAccepted = "accepted"
	SpendPaused   = "paused"
	SpendRejected = "rejected"
	SpendFailed   = "failed"
)

// Metrics groups the collectors. A nil *Metrics is valid and records
// nothing, which keeps tests free of registry setup.
type Metrics struct {
	sweepRuns     *prometheus.CounterVec
	sweepRecords  *prometheus.CounterVec
	sweepDuration *prometheus.HistogramVec
	spendEvents   *prometheus.CounterVec
	spendAmount   prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		sweepRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_runs_total",
			Help:      "Completed sweeps by name and result.",
		}, []string{"sweep", "result"}),
		sweepRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_records_total",
			Help:      "Records visited by sweeps, split by outcome.",
		}, []string{"sweep", "outcome"}),
		sweepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sweep_duration_seconds",
			Help:      "Wall time of one sweep.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"sweep"}),
		spendEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spend_events_total",
			Help:      "Spend ingestion calls by outcome.",
		}, []string{"outcome"}),
		spendAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spend_amount_total",
			Help:      "Sum of accepted spend amounts.",
		}),
	}
	reg.MustRegister(m.sweepRuns, m.sweepRecords, m.sweepDuration, m.spendEvents, m.spendAmount)
	return m
}

// ObserveSweep records the outcome of one sweep.
func (m *Metrics) ObserveSweep(report port.SweepReport, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.sweepRuns.WithLabelValues(report.Name, result).Inc()
	m.sweepRecords.WithLabelValues(report.Name, "processed").Add(float64(report.Processed))
	m.sweepRecords.WithLabelValues(report.Name, "changed").Add(float64(report.Changed))
	m.sweepRecords.WithLabelValues(report.Name, "skipped").Add(float64(report.Skipped))
	m.sweepRecords.WithLabelValues(report.Name, "failed").Add(float64(report.Failed))
	m.sweepDuration.WithLabelValues(report.Name).Observe(elapsed.Seconds())
}

// ObserveSpend records one ingestion call. amount is only added for
// accepted or paused outcomes.
func (m *Metrics) ObserveSpend(outcome string, amount decimal.Decimal) {
	if m == nil {
		return
	}
	m.spendEvents.WithLabelValues(outcome).Inc()
	if outcome == SpendAccepted || outcome == SpendPaused {
		m.spendAmount.Add(amount.InexactFloat64())
	}
}
