package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"ad-budget/internal/core/port"
)

func TestObserveSweep(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveSweep(port.SweepReport{Name: "dayparting", Processed: 5, Changed: 2, Failed: 1}, time.Second, errors.New("boom"))
	m.ObserveSweep(port.SweepReport{Name: "dayparting", Processed: 5}, time.Second, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.sweepRuns.WithLabelValues("dayparting", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sweepRuns.WithLabelValues("dayparting", "ok")))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.sweepRecords.WithLabelValues("dayparting", "processed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.sweepRecords.WithLabelValues("dayparting", "changed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sweepRecords.WithLabelValues("dayparting", "failed")))
}

func TestObserveSpend(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveSpend(SpendAccepted, decimal.RequireFromString("12.5"))
	m.ObserveSpend(SpendPaused, decimal.RequireFromString("7.5"))
	m.ObserveSpend(SpendRejected, decimal.RequireFromString("-1"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.spendEvents.WithLabelValues(SpendAccepted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.spendEvents.WithLabelValues(SpendRejected)))
	assert.Equal(t, 20.0, testutil.ToFloat64(m.spendAmount))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveSweep(port.SweepReport{Name: "x"}, time.Millisecond, nil)
		m.ObserveSpend(SpendAccepted, decimal.NewFromInt(1))
	})
}
