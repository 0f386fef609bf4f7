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

package memo

import (
	"fmt"

	"github.com/solarisdb/splaymemo/golibs/errors"
	"github.com/solarisdb/splaymemo/golibs/logging"
	"github.com/solarisdb/splaymemo/pkg/splay"
)

// SplayEvaluator evaluates a Recurrence memoizing the values in a splay tree
type SplayEvaluator[V any] struct {
	rec    Recurrence[V]
	cfg    Config
	tree   *splay.Tree[int, V]
	stats  Stats
	logger logging.Logger
}

var _ Evaluator[int] = (*SplayEvaluator[int])(nil)

// NewSplayEvaluator returns the evaluator with the new tree, which contains the
// recurrence Seeds.
func NewSplayEvaluator[V any](rec Recurrence[V], cfg Config) (*SplayEvaluator[V], error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("MaxDepth=%d must not be negative: %w", cfg.MaxDepth, errors.ErrInvalid)
	}
	e := &SplayEvaluator[V]{rec: rec, cfg: cfg, tree: splay.NewOrdered[int, V]()}
	e.logger = logging.NewLogger("memo.SplayEvaluator")
	for _, s := range rec.Seeds {
		e.tree.Insert(s, rec.Base(s))
	}
	return e, nil
}

// Eval returns the value for n evaluating it recursively. The values computed
// before an error stay in the tree. A negative n returns an error wrapping
// errors.ErrInvalid.
func (e *SplayEvaluator[V]) Eval(n int) (V, error) {
	if err := checkArg(n); err != nil {
		return *new(V), err
	}
	return e.eval(n, 1)
}

func (e *SplayEvaluator[V]) eval(n, depth int) (V, error) {
	if n < e.rec.Threshold {
		return e.rec.Base(n), nil
	}
	if v, ok := e.lookup(n); ok {
		return v, nil
	}
	if e.cfg.MaxDepth > 0 && depth > e.cfg.MaxDepth {
		return *new(V), fmt.Errorf("could not evaluate n=%d, the depth %d is over the limit %d: %w", n, depth, e.cfg.MaxDepth, ErrDepthExceeded)
	}

	deps := e.rec.Deps(n)
	vals := make([]V, len(deps))
	for i, d := range deps {
		v, err := e.eval(d, depth+1)
		if err != nil {
			return *new(V), err
		}
		vals[i] = v
	}
	v := e.rec.Combine(vals)
	e.tree.Insert(n, v)
	return v, nil
}

// EvalIterative returns the value for n. It uses the explicit stack instead of
// the recursion, so the depth is not limited. A negative n returns an error wrapping
// errors.ErrInvalid.
func (e *SplayEvaluator[V]) EvalIterative(n int) (V, error) {
	if err := checkArg(n); err != nil {
		return *new(V), err
	}
	if n < e.rec.Threshold {
		return e.rec.Base(n), nil
	}
	stack := []int{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if _, ok := e.lookup(top); ok {
			stack = stack[:len(stack)-1]
			continue
		}

		deps := e.rec.Deps(top)
		vals := make([]V, len(deps))
		ready := true
		for i, d := range deps {
			if d < e.rec.Threshold {
				vals[i] = e.rec.Base(d)
				continue
			}
			v, ok := e.lookup(d)
			if !ok {
				stack = append(stack, d)
				ready = false
				continue
			}
			vals[i] = v
		}
		if ready {
			e.tree.Insert(top, e.rec.Combine(vals))
			stack = stack[:len(stack)-1]
		}
	}
	v, _ := e.tree.Search(n)
	return v, nil
}

// EvalWithFallback evaluates n recursively and switches to EvalIterative if the
// recursion depth is exceeded.
func (e *SplayEvaluator[V]) EvalWithFallback(n int) (V, error) {
	v, err := e.Eval(n)
	if errors.Is(err, ErrDepthExceeded) {
		e.logger.Debugf("n=%d: %v, falling back to the iterative evaluation", n, err)
		return e.EvalIterative(n)
	}
	return v, err
}

// Tree returns the tree with the memoized values
func (e *SplayEvaluator[V]) Tree() *splay.Tree[int, V] {
	return e.tree
}

// Stats returns the tree lookups counters
func (e *SplayEvaluator[V]) Stats() Stats {
	return e.stats
}

func (e *SplayEvaluator[V]) lookup(n int) (V, bool) {
	e.stats.Lookups++
	v, ok := e.tree.Search(n)
	if ok {
		e.stats.Hits++
	} else {
		e.stats.Misses++
	}
	return v, ok
}
