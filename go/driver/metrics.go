// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package driver

import (
	"github.com/Fantom-foundation/cps/go/evm"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects statistics on the frames run by a Driver. A nil *Metrics
// records nothing.
type Metrics struct {
	interrupts *prometheus.CounterVec
	frames     *prometheus.CounterVec
	depth      prometheus.Histogram
}

// NewMetrics creates the driver metrics and registers them with the given
// registerer.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		interrupts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cps",
			Subsystem: "driver",
			Name:      "interrupts_total",
			Help:      "Number of sub-calls serviced by kind.",
		}, []string{"kind"}),
		frames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cps",
			Subsystem: "driver",
			Name:      "frames_total",
			Help:      "Number of completed frames by kind and exit status.",
		}, []string{"kind", "status"}),
		depth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cps",
			Subsystem: "driver",
			Name:      "max_depth",
			Help:      "Deepest frame nesting reached per message.",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 64, 256, 1024},
		}),
	}
	for _, collector := range []prometheus.Collector{m.interrupts, m.frames, m.depth} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) interrupt(kind evm.CallKind) {
	if m == nil {
		return
	}
	m.interrupts.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) frame(kind evm.CallKind, reason evm.ExitReason) {
	if m == nil {
		return
	}
	m.frames.WithLabelValues(kind.String(), reason.Status.String()).Inc()
}

func (m *Metrics) maxDepth(depth int) {
	if m == nil {
		return
	}
	m.depth.Observe(float64(depth))
}
