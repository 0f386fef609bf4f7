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

package rangesum

import (
	"fmt"
	"math/rand"

	"github.com/solarisdb/splaymemo/golibs/errors"
)

type (
	// QueryKind is either a range sum or an update
	QueryKind int

	// Query is one operation of the Workload. For the range sum A and B are the range
	// ends, for the update they are the index and the new value.
	Query struct {
		Kind QueryKind
		A    int
		B    int
	}

	// Workload is the sequence of queries over an array
	Workload struct {
		Array   Array
		Queries []Query
	}

	// WorkloadConfig defines the random workload parameters
	WorkloadConfig struct {
		// Size is the array length
		Size int `json:"size"`
		// Queries is the number of queries
		Queries int `json:"queries"`
		// UpdateRatio is the probability of the update query in [0, 1]
		UpdateRatio float64 `json:"updateRatio"`
		// MaxValue is the maximum value of the array elements, the minimum is 1
		MaxValue int `json:"maxValue"`
		// Seed initializes the random source
		Seed int64 `json:"seed"`
	}

	// Sumer is implemented by Array and CachedArray
	Sumer interface {
		Sum(l, r int) (int, error)
		Update(i, v int) error
	}
)

const (
	QueryRange QueryKind = iota
	QueryUpdate
)

var (
	_ Sumer = Array(nil)
	_ Sumer = (*CachedArray)(nil)
)

// GetDefaultWorkloadConfig returns the 100000 elements array with 50000 queries, half of them are updates
func GetDefaultWorkloadConfig() WorkloadConfig {
	return WorkloadConfig{Size: 100_000, Queries: 50_000, UpdateRatio: 0.5, MaxValue: 100, Seed: 1}
}

// NewWorkload generates the random workload. The same config always produces the same workload.
func NewWorkload(cfg WorkloadConfig) (*Workload, error) {
	if cfg.Size < 1 || cfg.Queries < 0 || cfg.MaxValue < 1 || cfg.UpdateRatio < 0 || cfg.UpdateRatio > 1 {
		return nil, fmt.Errorf("invalid workload config %+v: %w", cfg, errors.ErrInvalid)
	}
	rnd := rand.New(rand.NewSource(cfg.Seed))
	w := &Workload{Array: make(Array, cfg.Size), Queries: make([]Query, cfg.Queries)}
	for i := range w.Array {
		w.Array[i] = 1 + rnd.Intn(cfg.MaxValue)
	}
	for i := range w.Queries {
		if rnd.Float64() < cfg.UpdateRatio {
			w.Queries[i] = Query{Kind: QueryUpdate, A: rnd.Intn(cfg.Size), B: 1 + rnd.Intn(cfg.MaxValue)}
			continue
		}
		l := rnd.Intn(cfg.Size)
		w.Queries[i] = Query{Kind: QueryRange, A: l, B: l + rnd.Intn(cfg.Size-l)}
	}
	return w, nil
}

// Run executes the queries against s and returns the sum of all the range sums,
// which allows to compare the results of different Sumer implementations.
func (w *Workload) Run(s Sumer) (int64, error) {
	var total int64
	for i, q := range w.Queries {
		switch q.Kind {
		case QueryRange:
			v, err := s.Sum(q.A, q.B)
			if err != nil {
				return 0, fmt.Errorf("query %d: %w", i, err)
			}
			total += int64(v)
		case QueryUpdate:
			if err := s.Update(q.A, q.B); err != nil {
				return 0, fmt.Errorf("query %d: %w", i, err)
			}
		}
	}
	return total, nil
}

// CopyArray returns the copy of the workload array, so several runs may start from the same state
func (w *Workload) CopyArray() Array {
	res := make(Array, len(w.Array))
	copy(res, w.Array)
	return res
}
