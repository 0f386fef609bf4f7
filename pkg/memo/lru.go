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

	"github.com/solarisdb/splaymemo/golibs/container/lru"
	"github.com/solarisdb/splaymemo/golibs/errors"
)

// LRUEvaluator evaluates a Recurrence memoizing the values in the fixed-capacity
// LRU cache. The values pulled out of the cache are computed again when needed.
type LRUEvaluator[V any] struct {
	rec   Recurrence[V]
	cfg   Config
	cache *lru.Cache[int, V]
	depth int
}

var _ Evaluator[int] = (*LRUEvaluator[int])(nil)

// NewLRUEvaluator returns the evaluator with the empty cache of cfg.Capacity size
// (DefaultLRUCapacity if it is 0).
func NewLRUEvaluator[V any](rec Recurrence[V], cfg Config) (*LRUEvaluator[V], error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("MaxDepth=%d must not be negative: %w", cfg.MaxDepth, errors.ErrInvalid)
	}
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultLRUCapacity
	}
	e := &LRUEvaluator[V]{rec: rec, cfg: cfg}
	cache, err := lru.NewCache[int, V](cfg.Capacity, e.create, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create the LRU cache: %w", err)
	}
	e.cache = cache
	return e, nil
}

// Eval returns the value for n. A negative n returns an error wrapping errors.ErrInvalid.
func (e *LRUEvaluator[V]) Eval(n int) (V, error) {
	if err := checkArg(n); err != nil {
		return *new(V), err
	}
	if n < e.rec.Threshold {
		return e.rec.Base(n), nil
	}
	return e.cache.GetOrCreate(n)
}

// Clear removes all the memoized values and returns their number
func (e *LRUEvaluator[V]) Clear() int {
	return e.cache.Clear()
}

// Len returns the number of memoized values
func (e *LRUEvaluator[V]) Len() int {
	return e.cache.Len()
}

// Stats returns the cache counters
func (e *LRUEvaluator[V]) Stats() Stats {
	s := e.cache.Stats()
	return Stats{Lookups: s.Hits + s.Misses, Hits: s.Hits, Misses: s.Misses}
}

// create is called by the cache for a missing n
func (e *LRUEvaluator[V]) create(n int) (V, error) {
	e.depth++
	defer func() { e.depth-- }()
	if e.cfg.MaxDepth > 0 && e.depth > e.cfg.MaxDepth {
		return *new(V), fmt.Errorf("could not evaluate n=%d, the depth %d is over the limit %d: %w", n, e.depth, e.cfg.MaxDepth, ErrDepthExceeded)
	}

	deps := e.rec.Deps(n)
	vals := make([]V, len(deps))
	for i, d := range deps {
		v, err := e.Eval(d)
		if err != nil {
			return *new(V), err
		}
		vals[i] = v
	}
	return e.rec.Combine(vals), nil
}
