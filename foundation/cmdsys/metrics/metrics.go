// File: metrics.go
// Title: Command System Metrics
// Description: Prometheus collectors for resolution outcomes, resolution
//              latency and handler executions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package metrics exposes Prometheus collectors for the command system.
// A nil *Collector is valid and records nothing.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name
const Namespace = "cmdsys"

// Label values
const (
	OutcomeOK     = "ok"
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Collector groups the command system metrics
type Collector struct {
	resolutions        *prometheus.CounterVec
	resolutionDuration prometheus.Histogram
	executions         *prometheus.CounterVec
}

// New creates the collectors and registers them on reg. A nil reg gets a
// private registry. Collectors already registered on reg are reused.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	c := &Collector{
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "resolutions_total",
				Help:      "Total number of command resolutions by outcome",
			},
			[]string{"outcome"},
		),
		resolutionDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "resolution_duration_seconds",
				Help:      "Command resolution duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
		executions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "executions_total",
				Help:      "Total number of handler executions by status",
			},
			[]string{"status"},
		),
	}

	var err error
	if c.resolutions, err = register(reg, c.resolutions); err != nil {
		return nil, err
	}
	if c.resolutionDuration, err = register(reg, c.resolutionDuration); err != nil {
		return nil, err
	}
	if c.executions, err = register(reg, c.executions); err != nil {
		return nil, err
	}
	return c, nil
}

// register adds c to reg. When an identical collector is already there, as
// after rebuilding an engine on the same registry, the existing one is
// shared.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(T); ok {
			return existing, nil
		}
	}
	return c, err
}

// ObserveResolution records one resolution. outcome is OutcomeOK or the
// error kind.
func (c *Collector) ObserveResolution(outcome string, d time.Duration) {
	if c == nil {
		return
	}
	c.resolutions.WithLabelValues(outcome).Inc()
	c.resolutionDuration.Observe(d.Seconds())
}

// ObserveExecution records one handler execution
func (c *Collector) ObserveExecution(success bool) {
	if c == nil {
		return
	}
	status := StatusSuccess
	if !success {
		status = StatusFailure
	}
	c.executions.WithLabelValues(status).Inc()
}
