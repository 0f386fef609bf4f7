// Copyright 2024 The Solaris Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/logrange/linker"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/solarisdb/splaymemo/golibs/logging"
)

// Metrics collects the benchmark measurements in its own prometheus registry
type Metrics struct {
	Registry *prometheus.Registry

	evalDuration *prometheus.HistogramVec
	lookups      *prometheus.CounterVec
	rotations    prometheus.Counter
	logger       logging.Logger
}

const (
	strategyLRU      = "lru"
	strategySplay    = "splay"
	strategyNoCache  = "nocache"
	strategyRangeLRU = "range_lru"
)

var _ linker.Shutdowner = (*Metrics)(nil)

// NewMetrics creates the Metrics with the new registry
func NewMetrics() *Metrics {
	m := &Metrics{Registry: prometheus.NewRegistry(), logger: logging.NewLogger("bench.Metrics")}
	m.evalDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "splaymemo_eval_duration_seconds",
		Help:    "Duration of one measured evaluation by the memoization strategy",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
	}, []string{"strategy"})
	m.lookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "splaymemo_lookups_total",
		Help: "Memo table lookups by the strategy and the result (hit or miss)",
	}, []string{"strategy", "result"})
	m.rotations = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "splaymemo_splay_rotations_total",
		Help: "Rotations made by the splay trees",
	})
	m.Registry.MustRegister(m.evalDuration, m.lookups, m.rotations)
	return m
}

func (m *Metrics) observeEval(strategy string, seconds float64) {
	m.evalDuration.WithLabelValues(strategy).Observe(seconds)
}

func (m *Metrics) addLookups(strategy string, hits, misses uint64) {
	m.lookups.WithLabelValues(strategy, "hit").Add(float64(hits))
	m.lookups.WithLabelValues(strategy, "miss").Add(float64(misses))
}

func (m *Metrics) addRotations(n uint64) {
	m.rotations.Add(float64(n))
}

// Snapshot returns the current values: counters by "name{label=value,...}" and the
// histograms as the "_count" and "_sum" values.
func (m *Metrics) Snapshot() (map[string]float64, error) {
	mfs, err := m.Registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("could not gather metrics: %w", err)
	}
	res := map[string]float64{}
	for _, mf := range mfs {
		for _, mt := range mf.GetMetric() {
			var labels []string
			for _, lp := range mt.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			switch {
			case mt.GetCounter() != nil:
				res[name] = mt.GetCounter().GetValue()
			case mt.GetHistogram() != nil:
				res[name+"_count"] = float64(mt.GetHistogram().GetSampleCount())
				res[name+"_sum"] = mt.GetHistogram().GetSampleSum()
			}
		}
	}
	return res, nil
}

// WriteText writes the snapshot sorted by the names
func (m *Metrics) WriteText(w io.Writer) error {
	snap, err := m.Snapshot()
	if err != nil {
		return err
	}
	names := make([]string, 0, len(snap))
	for n := range snap {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if _, err := fmt.Fprintf(w, "%s %s\n", n, humanize.Ftoa(snap[n])); err != nil {
			return err
		}
	}
	return nil
}

// Shutdown implements linker.Shutdowner
func (m *Metrics) Shutdown() {
	snap, err := m.Snapshot()
	if err != nil {
		m.logger.Warnf("could not collect the metrics: %v", err)
		return
	}
	m.logger.Debugf("final metrics: %v", snap)
}
