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
	"bytes"
	"context"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/solarisdb/splaymemo/golibs/errors"
	"github.com/solarisdb/splaymemo/pkg/rangesum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	cfg := GetDefaultConfig()
	cfg.From, cfg.To, cfg.Step, cfg.Repeat = 0, 30, 10, 2
	cfg.RangeSum = rangesum.WorkloadConfig{Size: 10, Queries: 500, UpdateRatio: 0.1, MaxValue: 100, Seed: 5}
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	assert.Nil(t, GetDefaultConfig().Validate())

	cfg := GetDefaultConfig()
	cfg.Step = 0
	assert.True(t, errors.Is(cfg.Validate(), errors.ErrInvalid))

	cfg = GetDefaultConfig()
	cfg.To = -1
	assert.True(t, errors.Is(cfg.Validate(), errors.ErrInvalid))

	cfg = GetDefaultConfig()
	cfg.Repeat = 0
	assert.True(t, errors.Is(cfg.Validate(), errors.ErrInvalid))

	cfg = GetDefaultConfig()
	cfg.MaxDepth = -1
	assert.True(t, errors.Is(cfg.Validate(), errors.ErrInvalid))
}

func TestConfig_Points(t *testing.T) {
	pts := GetDefaultConfig().Points()
	assert.Equal(t, 20, len(pts))
	assert.Equal(t, 0, pts[0])
	assert.Equal(t, 950, pts[19])
	assert.Equal(t, []int{3, 5, 7}, Config{From: 3, To: 8, Step: 2}.Points())
}

func TestRunner_RunFibonacci(t *testing.T) {
	r := NewRunner(testConfig())
	require.Nil(t, r.Init(context.Background()))

	res, err := r.RunFibonacci(context.Background())
	require.Nil(t, err)
	require.Equal(t, 4, len(res))
	for i, d := range []int{1, 2, 4, 6} {
		assert.Equal(t, i*10, res[i].N)
		assert.Equal(t, d, res[i].Digits)
	}
	assert.True(t, res[3].Rotations > 0)
	assert.Equal(t, uint64(29), res[3].SplayStats.Misses)
	assert.Equal(t, uint64(29), res[3].LRUStats.Misses)

	snap, err := r.Metrics.Snapshot()
	require.Nil(t, err)
	assert.Equal(t, float64(8), snap["splaymemo_eval_duration_seconds{strategy=lru}_count"])
	assert.Equal(t, float64(8), snap["splaymemo_eval_duration_seconds{strategy=splay}_count"])
	assert.True(t, snap["splaymemo_splay_rotations_total"] > 0)
}

func TestRunner_LRUDepthExceeded(t *testing.T) {
	cfg := testConfig()
	cfg.From, cfg.To, cfg.Step, cfg.Repeat = 200, 200, 1, 1
	cfg.MaxDepth = 50
	r := NewRunner(cfg)
	require.Nil(t, r.Init(context.Background()))

	// the LRU evaluator has no fallback
	_, err := r.RunFibonacci(context.Background())
	assert.True(t, errors.Is(err, errors.ErrExhausted))
}

func TestRunner_Canceled(t *testing.T) {
	r := NewRunner(testConfig())
	require.Nil(t, r.Init(context.Background()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := r.RunFibonacci(ctx)
	assert.True(t, errors.Is(err, errors.ErrCanceled))
	assert.Equal(t, 0, len(res))
}

func TestRunner_InitInvalid(t *testing.T) {
	cfg := testConfig()
	cfg.Repeat = 0
	assert.True(t, errors.Is(NewRunner(cfg).Init(context.Background()), errors.ErrInvalid))
}

func TestRunner_RunRangeSum(t *testing.T) {
	r := NewRunner(testConfig())
	require.Nil(t, r.Init(context.Background()))

	res, err := r.RunRangeSum(context.Background())
	require.Nil(t, err)
	assert.Equal(t, 10, res.Size)
	assert.Equal(t, 500, res.Queries)
	assert.True(t, res.Hits > 0)
	assert.True(t, res.Misses > 0)

	snap, err := r.Metrics.Snapshot()
	require.Nil(t, err)
	assert.Equal(t, float64(res.Hits), snap["splaymemo_lookups_total{result=hit,strategy=range_lru}"])
}

func TestReport(t *testing.T) {
	r := NewRunner(testConfig())
	require.Nil(t, r.Init(context.Background()))
	rep := NewReport()
	var err error
	rep.Fibonacci, err = r.RunFibonacci(context.Background())
	require.Nil(t, err)
	rs, err := r.RunRangeSum(context.Background())
	require.Nil(t, err)
	rep.RangeSum = &rs

	var buf bytes.Buffer
	require.Nil(t, rep.WriteTable(&buf))
	out := buf.String()
	assert.Contains(t, out, rep.RunID)
	assert.Contains(t, out, "Splay Tree Time (s)")
	assert.Contains(t, out, "with LRU cache")

	buf.Reset()
	require.Nil(t, rep.WriteYAML(&buf))
	var rep2 Report
	require.Nil(t, yaml.Unmarshal(buf.Bytes(), &rep2))
	assert.Equal(t, rep.RunID, rep2.RunID)
	assert.Equal(t, rep.Fibonacci, rep2.Fibonacci)
	assert.Equal(t, *rep.RangeSum, *rep2.RangeSum)
}

func TestMetrics_WriteText(t *testing.T) {
	m := NewMetrics()
	m.addRotations(1500)
	var buf bytes.Buffer
	require.Nil(t, m.WriteText(&buf))
	assert.Equal(t, "splaymemo_splay_rotations_total 1500\n", buf.String())
	m.Shutdown()
}
