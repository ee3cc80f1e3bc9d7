// Package iometrics collects counters of an enrichment run and writes them
// in the Prometheus text format, for example for the node-exporter
// textfile collector.
package iometrics

import (
	"context"
	"path/filepath"
	"time"

	"github.com/gnames/gnsys"
	"github.com/pitchwise/tjdelta/pkg/sources"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tjdelta"

// Manager holds run metrics on its own registry, so Go runtime metrics
// are not mixed in.
type Manager struct {
	registry *prometheus.Registry

	fetches     *prometheus.CounterVec
	cache       *prometheus.CounterVec
	cells       *prometheus.CounterVec
	cellsFilled prometheus.Counter
	subjects    *prometheus.CounterVec
	duration    prometheus.Gauge
	lastRun     prometheus.Gauge
}

// New creates a Manager with all metrics registered.
func New() *Manager {
	m := &Manager{registry: prometheus.NewRegistry()}
	auto := promauto.With(m.registry)

	m.fetches = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tracking",
		Name:      "fetches_total",
		Help:      "Pitch-tracking fetches by outcome (ok, empty, error).",
	}, []string{"outcome"})

	m.cache = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tracking",
		Name:      "cache_lookups_total",
		Help:      "Pitch event cache lookups by result (hit, miss).",
	}, []string{"result"})

	m.cells = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "enrich",
		Name:      "cells_total",
		Help:      "Expanded cells by metric and status (reused, computed, skipped).",
	}, []string{"metric", "status"})

	m.cellsFilled = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "enrich",
		Name:      "cells_filled_total",
		Help:      "Cells that went from undefined to defined.",
	})

	m.subjects = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "enrich",
		Name:      "subjects_total",
		Help:      "Expanded subjects by outcome (updated, unchanged, no_data).",
	}, []string{"outcome"})

	m.duration = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "enrich",
		Name:      "duration_seconds",
		Help:      "Duration of the last enrichment run.",
	})

	m.lastRun = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "enrich",
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix time when the last enrichment run finished.",
	})

	return m
}

// Registry gives access to the metrics, mostly for tests.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// AddCells counts expanded cells of one metric with a given status.
func (m *Manager) AddCells(metric, status string, n int) {
	if n <= 0 {
		return
	}
	m.cells.WithLabelValues(metric, status).Add(float64(n))
}

// AddFilled counts cells that received a value.
func (m *Manager) AddFilled(n int) {
	if n > 0 {
		m.cellsFilled.Add(float64(n))
	}
}

// IncSubject counts a subject by outcome.
func (m *Manager) IncSubject(outcome string) {
	m.subjects.WithLabelValues(outcome).Inc()
}

// SetCacheStats records cache hits and misses of a run.
func (m *Manager) SetCacheStats(hits, misses int64) {
	m.cache.WithLabelValues("hit").Add(float64(hits))
	m.cache.WithLabelValues("miss").Add(float64(misses))
}

// Finish records the run duration and finishing time.
func (m *Manager) Finish(d time.Duration) {
	m.duration.Set(d.Seconds())
	m.lastRun.SetToCurrentTime()
}

// Tracking wraps a tracking source and counts fetch outcomes.
func (m *Manager) Tracking(src sources.Tracking) sources.Tracking {
	return sources.TrackingFunc(func(
		ctx context.Context,
		trackingID int,
		start, end time.Time,
	) ([]sources.PitchEvent, error) {
		res, err := src.FetchEvents(ctx, trackingID, start, end)
		switch {
		case err != nil:
			m.fetches.WithLabelValues("error").Inc()
		case len(res) == 0:
			m.fetches.WithLabelValues("empty").Inc()
		default:
			m.fetches.WithLabelValues("ok").Inc()
		}
		return res, err
	})
}

// WriteTextfile writes all metrics to path atomically.
func (m *Manager) WriteTextfile(path string) error {
	if err := gnsys.MakeDir(filepath.Dir(path)); err != nil {
		return WriteError(path, err)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return WriteError(path, err)
	}
	return nil
}
