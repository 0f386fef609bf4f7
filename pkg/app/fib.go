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

package app

import (
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/solarisdb/splaymemo/golibs/errors"
	"github.com/solarisdb/splaymemo/pkg/memo"
)

const (
	StrategySplay = "splay"
	StrategyLRU   = "lru"
	StrategyBoth  = "both"
)

// Fib evaluates the n-th Fibonacci number with the strategy and writes the value, the
// time and the memo table counters to w. The splay strategy falls back to the iterative
// evaluation when the recursion goes deeper than cfg.Bench.MaxDepth.
func Fib(cfg *Config, n int, strategy string, w io.Writer) error {
	if n < 0 {
		return fmt.Errorf("n=%d must not be negative: %w", n, errors.ErrInvalid)
	}
	mcfg := memo.Config{MaxDepth: cfg.Bench.MaxDepth, Capacity: cfg.Bench.LRUCapacity}

	var evals []func() (*big.Int, memo.Stats, error)
	if strategy == StrategySplay || strategy == StrategyBoth {
		evals = append(evals, func() (*big.Int, memo.Stats, error) {
			e, err := memo.NewSplayEvaluator(memo.Fibonacci(), mcfg)
			if err != nil {
				return nil, memo.Stats{}, err
			}
			v, err := e.EvalWithFallback(n)
			return v, e.Stats(), err
		})
	}
	if strategy == StrategyLRU || strategy == StrategyBoth {
		evals = append(evals, func() (*big.Int, memo.Stats, error) {
			e, err := memo.NewLRUEvaluator(memo.Fibonacci(), mcfg)
			if err != nil {
				return nil, memo.Stats{}, err
			}
			v, err := e.Eval(n)
			return v, e.Stats(), err
		})
	}
	if len(evals) == 0 {
		return fmt.Errorf("unknown strategy %q, expecting splay, lru or both: %w", strategy, errors.ErrInvalid)
	}

	names := []string{StrategySplay, StrategyLRU}
	if strategy == StrategyLRU {
		names = names[1:]
	}
	var first *big.Int
	for i, eval := range evals {
		start := time.Now()
		v, st, err := eval()
		if err != nil {
			return fmt.Errorf("%s evaluation of F(%d) failed: %w", names[i], n, err)
		}
		if first == nil {
			first = v
			fmt.Fprintf(w, "F(%d) = %s (%s digits)\n", n, v, humanize.Comma(int64(len(v.String()))))
		} else if first.Cmp(v) != 0 {
			return fmt.Errorf("the strategies disagree for F(%d): %w", n, errors.ErrInternal)
		}
		if _, err := fmt.Fprintf(w, "%s: %s, %s\n", names[i], time.Since(start), st); err != nil {
			return err
		}
	}
	return nil
}
