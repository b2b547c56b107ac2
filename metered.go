// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import (
	"unsafe"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"
)

// AllocatorMetrics holds the collectors a MeteredAllocator reports to.
// Nil fields are skipped.
type AllocatorMetrics struct {
	AllocateBytes  prometheus.Counter
	AllocateBlocks prometheus.Counter
	InuseBytes     prometheus.Gauge
	InuseBlocks    prometheus.Gauge
}

// NewAllocatorMetrics returns unregistered collectors named
// <namespace>_<subsystem>_{allocate_bytes_total,allocate_blocks_total,inuse_bytes,inuse_blocks}.
func NewAllocatorMetrics(namespace, subsystem string) *AllocatorMetrics {
	return &AllocatorMetrics{
		AllocateBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocate_bytes_total",
			Help:      "Bytes handed out by the allocator.",
		}),
		AllocateBlocks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocate_blocks_total",
			Help:      "Blocks handed out by the allocator.",
		}),
		InuseBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "inuse_bytes",
			Help:      "Bytes allocated and not yet released.",
		}),
		InuseBlocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "inuse_blocks",
			Help:      "Blocks allocated and not yet released.",
		}),
	}
}

// Register registers every non-nil collector with r.
func (m *AllocatorMetrics) Register(r prometheus.Registerer) error {
	var err error
	for _, c := range m.collectors() {
		err = multierr.Append(err, r.Register(c))
	}
	return err
}

func (m *AllocatorMetrics) collectors() []prometheus.Collector {
	var cs []prometheus.Collector
	if m.AllocateBytes != nil {
		cs = append(cs, m.AllocateBytes)
	}
	if m.AllocateBlocks != nil {
		cs = append(cs, m.AllocateBlocks)
	}
	if m.InuseBytes != nil {
		cs = append(cs, m.InuseBytes)
	}
	if m.InuseBlocks != nil {
		cs = append(cs, m.InuseBlocks)
	}
	return cs
}

// MeteredAllocator forwards to an upstream allocator and accounts every
// block it hands out and takes back.
type MeteredAllocator[T any] struct {
	upstream Allocator[T]
	metrics  *AllocatorMetrics
}

var _ Allocator[int] = (*MeteredAllocator[int])(nil)

// NewMeteredAllocator wraps upstream, RawAllocator when nil.
func NewMeteredAllocator[T any](upstream Allocator[T], metrics *AllocatorMetrics) *MeteredAllocator[T] {
	if upstream == nil {
		upstream = RawAllocator[T]{}
	}
	if metrics == nil {
		metrics = new(AllocatorMetrics)
	}
	return &MeteredAllocator[T]{upstream: upstream, metrics: metrics}
}

// Raw reports whether the upstream allocator is raw.
func (m *MeteredAllocator[T]) Raw() bool { return m.upstream.Raw() }

// Allocate forwards to the upstream allocator.
func (m *MeteredAllocator[T]) Allocate(n int) ([]T, error) {
	block, err := m.upstream.Allocate(n)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		m.account(n, 1)
	}
	return block, nil
}

// Deallocate forwards to the upstream allocator. The block counts as
// released once the upstream accepted it, even when destructors failed.
func (m *MeteredAllocator[T]) Deallocate(block []T, n int) error {
	if err := checkRelease(block, n); err != nil {
		return err
	}
	err := m.upstream.Deallocate(block, n)
	if n > 0 {
		m.account(-n, -1)
	}
	return err
}

func (m *MeteredAllocator[T]) account(slots, blocks int) {
	bytes := float64(slots) * float64(unsafe.Sizeof(*new(T)))
	if blocks > 0 {
		if m.metrics.AllocateBytes != nil {
			m.metrics.AllocateBytes.Add(bytes)
		}
		if m.metrics.AllocateBlocks != nil {
			m.metrics.AllocateBlocks.Add(float64(blocks))
		}
	}
	if m.metrics.InuseBytes != nil {
		m.metrics.InuseBytes.Add(bytes)
	}
	if m.metrics.InuseBlocks != nil {
		m.metrics.InuseBlocks.Add(float64(blocks))
	}
}
