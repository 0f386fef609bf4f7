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
	"math/big"

	"github.com/solarisdb/splaymemo/golibs/errors"
)

type (
	// Recurrence describes a function over integers defined through its values on
	// smaller arguments.
	Recurrence[V any] struct {
		// Threshold is the smallest n, which is not a base case
		Threshold int
		// Base returns the closed form value for n < Threshold and for the Seeds
		Base func(n int) V
		// Seeds are the keys put into every new splay tree directly
		Seeds []int
		// Deps returns the subproblems of n, every one of them must be less than n
		Deps func(n int) []int
		// Combine computes the value of n from the values of Deps(n) in the same order.
		// It must not modify the values.
		Combine func(vals []V) V
	}

	// Config defines the evaluators settings
	Config struct {
		// MaxDepth limits the recursion depth, 0 means unlimited
		MaxDepth int `json:"maxDepth"`
		// Capacity is the LRU cache size, it is not used by SplayEvaluator
		Capacity int `json:"capacity"`
	}

	// Stats contains the memo table counters
	Stats struct {
		Lookups uint64 `json:"lookups"`
		Hits    uint64 `json:"hits"`
		Misses  uint64 `json:"misses"`
	}

	// Evaluator is the common interface of the memoized evaluators
	Evaluator[V any] interface {
		// Eval returns the recurrence value for n
		Eval(n int) (V, error)
		// Stats returns the memo table counters
		Stats() Stats
	}
)

// ErrDepthExceeded is returned when the recursive evaluation goes deeper than
// Config.MaxDepth. It wraps errors.ErrExhausted.
var ErrDepthExceeded = fmt.Errorf("recursion depth exceeded: %w", errors.ErrExhausted)

// DefaultLRUCapacity is the LRU cache capacity used when Config.Capacity is not set
const DefaultLRUCapacity = 1000

// checkArg returns an error wrapping errors.ErrInvalid for a negative n
func checkArg(n int) error {
	if n < 0 {
		return fmt.Errorf("n=%d must not be negative: %w", n, errors.ErrInvalid)
	}
	return nil
}

// Validate checks the recurrence functions are provided
func (r Recurrence[V]) Validate() error {
	if r.Base == nil || r.Deps == nil || r.Combine == nil {
		return fmt.Errorf("the recurrence must define Base, Deps and Combine functions: %w", errors.ErrInvalid)
	}
	return nil
}

// Fibonacci returns the Fibonacci numbers recurrence F(n) = F(n-1) + F(n-2) with
// F(0) = 0 and F(1) = 1. The values are arbitrary precision integers.
func Fibonacci() Recurrence[*big.Int] {
	return Recurrence[*big.Int]{
		Threshold: 2,
		Base: func(n int) *big.Int {
			return big.NewInt(int64(n))
		},
		Seeds: []int{0, 1},
		Deps: func(n int) []int {
			return []int{n - 1, n - 2}
		},
		Combine: func(vals []*big.Int) *big.Int {
			return new(big.Int).Add(vals[0], vals[1])
		},
	}
}

// String returns the Stats in the short form
func (s Stats) String() string {
	return fmt.Sprintf("lookups=%d hits=%d misses=%d", s.Lookups, s.Hits, s.Misses)
}
