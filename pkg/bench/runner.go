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
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/logrange/linker"
	"github.com/solarisdb/splaymemo/golibs/errors"
	"github.com/solarisdb/splaymemo/golibs/logging"
	"github.com/solarisdb/splaymemo/pkg/memo"
	"github.com/solarisdb/splaymemo/pkg/rangesum"
)

type (
	// Runner measures the memoization strategies
	Runner struct {
		Metrics *Metrics `inject:""`

		cfg    Config
		logger logging.Logger
	}

	// FibResult contains the measurements for one Fibonacci argument
	FibResult struct {
		N int `json:"n"`
		// LRU and Splay are the average durations of one evaluation
		LRU   time.Duration `json:"lru"`
		Splay time.Duration `json:"splay"`
		// Rotations is the number of the splay tree rotations of one evaluation
		Rotations uint64 `json:"rotations"`
		// SplayStats and LRUStats are the memo table counters of one evaluation
		SplayStats memo.Stats `json:"splayStats"`
		LRUStats   memo.Stats `json:"lruStats"`
		// Digits is the number of decimal digits of the value
		Digits int `json:"digits"`
	}

	// RangeSumResult contains the range sum workload measurements
	RangeSumResult struct {
		Size     int           `json:"size"`
		Queries  int           `json:"queries"`
		NoCache  time.Duration `json:"noCache"`
		Cached   time.Duration `json:"cached"`
		Hits     uint64        `json:"hits"`
		Misses   uint64        `json:"misses"`
		Checksum int64         `json:"checksum"`
	}
)

var _ linker.Initializer = (*Runner)(nil)

// NewRunner returns the Runner for the config. The Metrics may be injected, otherwise
// the Runner creates its own in Init.
func NewRunner(cfg Config) *Runner {
	return &Runner{cfg: cfg, logger: logging.NewLogger("bench.Runner")}
}

// Init implements linker.Initializer
func (r *Runner) Init(ctx context.Context) error {
	if err := r.cfg.Validate(); err != nil {
		return err
	}
	if r.Metrics == nil {
		r.Metrics = NewMetrics()
	}
	return nil
}

// RunFibonacci measures both strategies for every argument of the config. The LRU
// evaluator is created once per argument, so the repetitions after the first one are
// served from the cache. The splay tree is created for every repetition.
func (r *Runner) RunFibonacci(ctx context.Context) ([]FibResult, error) {
	points := r.cfg.Points()
	res := make([]FibResult, 0, len(points))
	for _, n := range points {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("interrupted before n=%d: %w", n, errors.ErrCanceled)
		}
		fr, err := r.measureFib(n)
		if err != nil {
			return res, err
		}
		r.logger.Debugf("n=%d lru=%s splay=%s rotations=%d", n, fr.LRU, fr.Splay, fr.Rotations)
		res = append(res, fr)
	}
	return res, nil
}

func (r *Runner) measureFib(n int) (FibResult, error) {
	fr := FibResult{N: n}
	mcfg := memo.Config{MaxDepth: r.cfg.MaxDepth, Capacity: r.cfg.LRUCapacity}

	le, err := memo.NewLRUEvaluator(memo.Fibonacci(), mcfg)
	if err != nil {
		return fr, err
	}
	var lruVal *big.Int
	var total time.Duration
	for i := 0; i < r.cfg.Repeat; i++ {
		start := time.Now()
		lruVal, err = le.Eval(n)
		d := time.Since(start)
		if err != nil {
			return fr, fmt.Errorf("LRU evaluation of n=%d failed: %w", n, err)
		}
		r.Metrics.observeEval(strategyLRU, d.Seconds())
		total += d
	}
	fr.LRU = total / time.Duration(r.cfg.Repeat)
	fr.LRUStats = le.Stats()
	r.Metrics.addLookups(strategyLRU, fr.LRUStats.Hits, fr.LRUStats.Misses)
	le.Clear()

	var splayVal *big.Int
	total = 0
	for i := 0; i < r.cfg.Repeat; i++ {
		start := time.Now()
		se, err := memo.NewSplayEvaluator(memo.Fibonacci(), mcfg)
		if err != nil {
			return fr, err
		}
		splayVal, err = se.EvalWithFallback(n)
		d := time.Since(start)
		if err != nil {
			return fr, fmt.Errorf("splay evaluation of n=%d failed: %w", n, err)
		}
		r.Metrics.observeEval(strategySplay, d.Seconds())
		total += d
		fr.Rotations = se.Tree().Rotations()
		fr.SplayStats = se.Stats()
		r.Metrics.addRotations(fr.Rotations)
		r.Metrics.addLookups(strategySplay, fr.SplayStats.Hits, fr.SplayStats.Misses)
	}
	fr.Splay = total / time.Duration(r.cfg.Repeat)

	if lruVal.Cmp(splayVal) != 0 {
		return fr, fmt.Errorf("the strategies disagree for n=%d: lru=%s splay=%s: %w", n, lruVal, splayVal, errors.ErrInternal)
	}
	fr.Digits = len(splayVal.String())
	return fr, nil
}

// RunRangeSum runs the same random workload against the plain array and the cached one
func (r *Runner) RunRangeSum(ctx context.Context) (RangeSumResult, error) {
	res := RangeSumResult{Size: r.cfg.RangeSum.Size, Queries: r.cfg.RangeSum.Queries}
	w, err := rangesum.NewWorkload(r.cfg.RangeSum)
	if err != nil {
		return res, err
	}

	start := time.Now()
	plain, err := w.Run(w.CopyArray())
	if err != nil {
		return res, err
	}
	res.NoCache = time.Since(start)
	r.Metrics.observeEval(strategyNoCache, res.NoCache.Seconds())

	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("interrupted before the cached run: %w", errors.ErrCanceled)
	}

	ca, err := rangesum.NewCachedArray(w.CopyArray(), r.cfg.RangeSumCacheSize)
	if err != nil {
		return res, err
	}
	start = time.Now()
	cached, err := w.Run(ca)
	if err != nil {
		return res, err
	}
	res.Cached = time.Since(start)
	r.Metrics.observeEval(strategyRangeLRU, res.Cached.Seconds())

	if plain != cached {
		return res, fmt.Errorf("the range sums disagree: plain=%d cached=%d: %w", plain, cached, errors.ErrInternal)
	}
	s := ca.Stats()
	res.Hits, res.Misses, res.Checksum = s.Hits, s.Misses, plain
	r.Metrics.addLookups(strategyRangeLRU, s.Hits, s.Misses)
	return res, nil
}
