// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package spanstrings

import (
	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/redact"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds a point-in-time snapshot of a Store's resource usage.
type Metrics struct {
	// ArenaSize is the number of arena bytes handed out, including the
	// reserved first byte and the guard byte after each allocation.
	ArenaSize int64
	// ArenaCapacity is the size of the arena's backing buffer.
	ArenaCapacity int64
	// Allocations is the number of arena allocations.
	Allocations int64
	// Interned is the number of distinct byte strings interned.
	Interned int64
}

// Metrics returns a snapshot of the store's metrics.
func (s *Store) Metrics() Metrics {
	return Metrics{
		ArenaSize:     int64(s.arena.Size()),
		ArenaCapacity: int64(s.arena.Capacity()),
		Allocations:   int64(s.arena.Allocations()),
		Interned:      int64(s.interned.n),
	}
}

// String implements fmt.Stringer.
func (m Metrics) String() string {
	return redact.StringWithoutMarkers(m)
}

// SafeFormat implements redact.SafeFormatter.
func (m Metrics) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("arena: %s of %s in %d allocations; interned: %d",
		crhumanize.Bytes(m.ArenaSize, crhumanize.Compact, crhumanize.OmitI),
		crhumanize.Bytes(m.ArenaCapacity, crhumanize.Compact, crhumanize.OmitI),
		redact.Safe(m.Allocations), redact.Safe(m.Interned))
}

type collector struct {
	s           *Store
	size        *prometheus.Desc
	capacity    *prometheus.Desc
	allocations *prometheus.Desc
	interned    *prometheus.Desc
}

// NewCollector returns a prometheus.Collector exporting the metrics of s as
// gauges. Collection reads the store, so it must not run concurrently with
// other operations on s.
func NewCollector(s *Store) prometheus.Collector {
	return &collector{
		s: s,
		size: prometheus.NewDesc("spanstrings_arena_size_bytes",
			"Number of arena bytes handed out.", nil, nil),
		capacity: prometheus.NewDesc("spanstrings_arena_capacity_bytes",
			"Size of the arena's backing buffer.", nil, nil),
		allocations: prometheus.NewDesc("spanstrings_arena_allocations",
			"Number of arena allocations.", nil, nil),
		interned: prometheus.NewDesc("spanstrings_interned_spans",
			"Number of distinct byte strings interned.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.capacity
	ch <- c.allocations
	ch <- c.interned
}

// Collect implements prometheus.Collector.
func (c *collector) Collect(ch chan<- prometheus.Metric) {
	m := c.s.Metrics()
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(m.ArenaSize))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(m.ArenaCapacity))
	ch <- prometheus.MustNewConstMetric(c.allocations, prometheus.GaugeValue, float64(m.Allocations))
	ch <- prometheus.MustNewConstMetric(c.interned, prometheus.GaugeValue, float64(m.Interned))
}
