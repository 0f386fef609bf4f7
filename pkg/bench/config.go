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

	"github.com/solarisdb/splaymemo/golibs/errors"
	"github.com/solarisdb/splaymemo/pkg/rangesum"
)

type (
	// Config defines the benchmark runs
	Config struct {
		// From, To and Step define the Fibonacci arguments: From, From+Step, ... <= To
		From int `json:"from"`
		To   int `json:"to"`
		Step int `json:"step"`
		// Repeat is the number of measurements per argument, the average is reported
		Repeat int `json:"repeat"`
		// LRUCapacity is the LRU evaluator cache size
		LRUCapacity int `json:"lruCapacity"`
		// MaxDepth limits the recursion of the evaluators, 0 means unlimited.
		// The splay evaluator falls back to the iterative evaluation when it is exceeded.
		MaxDepth int `json:"maxDepth"`
		// RangeSum defines the range sum workload
		RangeSum rangesum.WorkloadConfig `json:"rangeSum"`
		// RangeSumCacheSize is the range sums cache size
		RangeSumCacheSize int `json:"rangeSumCacheSize"`
	}
)

// GetDefaultConfig returns the default benchmark config: n = 0..950 with the step 50,
// 3 repetitions and the default range sum workload.
func GetDefaultConfig() Config {
	return Config{
		From:              0,
		To:                950,
		Step:              50,
		Repeat:            3,
		LRUCapacity:       1000,
		RangeSum:          rangesum.GetDefaultWorkloadConfig(),
		RangeSumCacheSize: rangesum.DefaultCacheSize,
	}
}

// Validate checks the config values
func (c Config) Validate() error {
	if c.From < 0 || c.To < c.From || c.Step < 1 {
		return fmt.Errorf("invalid arguments range from=%d to=%d step=%d: %w", c.From, c.To, c.Step, errors.ErrInvalid)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("repeat=%d must be positive: %w", c.Repeat, errors.ErrInvalid)
	}
	if c.LRUCapacity < 1 {
		return fmt.Errorf("lruCapacity=%d must be positive: %w", c.LRUCapacity, errors.ErrInvalid)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("maxDepth=%d must not be negative: %w", c.MaxDepth, errors.ErrInvalid)
	}
	return nil
}

// Points returns the Fibonacci arguments of the config
func (c Config) Points() []int {
	var res []int
	for n := c.From; n <= c.To; n += c.Step {
		res = append(res, n)
	}
	return res
}
