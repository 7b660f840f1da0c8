// Package telemetry serves Prometheus metrics and live frame snapshots for debugging
package telemetry

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lixenwraith/gamefeel/engine"
	"github.com/lixenwraith/gamefeel/event"
	"github.com/lixenwraith/gamefeel/parameter"
	"github.com/lixenwraith/gamefeel/status"
)

// Metrics owns a private registry so several worlds can coexist in one process
// Label values are bounded: event type names and status keys only
type Metrics struct {
	Registry  *prometheus.Registry
	frameTime prometheus.Histogram
	events    *prometheus.CounterVec
	paused    prometheus.Gauge
}

func NewMetrics(reg *status.Registry) *Metrics {
	r := prometheus.NewRegistry()
	factory := promauto.With(r)

	m := &Metrics{
		Registry: r,
		frameTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: parameter.DebugMetricsNamespace,
			Name:      "frame_seconds",
			Help:      "Simulated frame delta",
			Buckets:   []float64{0.004, 0.008, 0.016, 0.033, 0.05, 0.1},
		}),
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: parameter.DebugMetricsNamespace,
			Name:      "events_total",
			Help:      "Semantic game events emitted",
		}, []string{"type"}),
		paused: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: parameter.DebugMetricsNamespace,
			Name:      "paused",
			Help:      "1 while the game is paused",
		}),
	}

	// Pre-create series so scrapes show zeros before the first event
	for _, et := range event.Types() {
		m.events.WithLabelValues(event.GetEventName(et))
	}

	r.MustRegister(newStatusCollector(reg))
	return m
}

// Hook returns a scheduler frame hook feeding the metrics
func (m *Metrics) Hook() engine.FrameHook {
	return func(w *engine.World, batch []event.GameEvent) {
		m.frameTime.Observe(w.Resources.Time.DeltaSeconds)
		for _, ev := range batch {
			m.events.WithLabelValues(event.GetEventName(ev.Type)).Inc()
		}
		if w.Resources.Game.Paused {
			m.paused.Set(1)
		} else {
			m.paused.Set(0)
		}
	}
}

// statusCollector exports the status registry as gauges at scrape time
type statusCollector struct {
	reg       *status.Registry
	intDesc   *prometheus.Desc
	floatDesc *prometheus.Desc
	boolDesc  *prometheus.Desc
}

func newStatusCollector(reg *status.Registry) *statusCollector {
	ns := parameter.DebugMetricsNamespace
	return &statusCollector{
		reg:       reg,
		intDesc:   prometheus.NewDesc(ns+"_status_int", "Integer status value", []string{"key"}, nil),
		floatDesc: prometheus.NewDesc(ns+"_status_float", "Float status value", []string{"key"}, nil),
		boolDesc:  prometheus.NewDesc(ns+"_status_bool", "Boolean status value", []string{"key"}, nil),
	}
}

func (c *statusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.intDesc
	ch <- c.floatDesc
	ch <- c.boolDesc
}

func (c *statusCollector) Collect(ch chan<- prometheus.Metric) {
	c.reg.Ints.Range(func(key string, v *atomic.Int64) {
		ch <- prometheus.MustNewConstMetric(c.intDesc, prometheus.GaugeValue, float64(v.Load()), key)
	})
	c.reg.Floats.Range(func(key string, v *status.Float64) {
		ch <- prometheus.MustNewConstMetric(c.floatDesc, prometheus.GaugeValue, v.Load(), key)
	})
	c.reg.Bools.Range(func(key string, v *atomic.Bool) {
		val := 0.0
		if v.Load() {
			val = 1
		}
		ch <- prometheus.MustNewConstMetric(c.boolDesc, prometheus.GaugeValue, val, key)
	})
}
