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

	"github.com/solarisdb/splaymemo/golibs/container/lru"
	"github.com/solarisdb/splaymemo/golibs/errors"
)

type (
	// Array is a mutable array of integers with range sum queries
	Array []int

	// Range is the [L, R] indexes range, both ends are included
	Range struct {
		L int
		R int
	}

	// CachedArray keeps the range sums in the LRU cache. The cache is invalidated by
	// every update, so it is useful for the read-mostly workloads only.
	CachedArray struct {
		arr   Array
		cache *lru.Cache[Range, int]
	}
)

// DefaultCacheSize is the CachedArray cache capacity used when 0 is provided
const DefaultCacheSize = 1000

// Sum returns the sum of the elements from l to r inclusively
func (a Array) Sum(l, r int) (int, error) {
	if err := a.checkRange(l, r); err != nil {
		return 0, err
	}
	s := 0
	for _, v := range a[l : r+1] {
		s += v
	}
	return s, nil
}

// Update sets the element at the index i to v
func (a Array) Update(i, v int) error {
	if i < 0 || i >= len(a) {
		return fmt.Errorf("the index %d is out of the array bounds [0, %d): %w", i, len(a), errors.ErrInvalid)
	}
	a[i] = v
	return nil
}

func (a Array) checkRange(l, r int) error {
	if l < 0 || r >= len(a) || l > r {
		return fmt.Errorf("the range [%d, %d] is out of the array bounds [0, %d): %w", l, r, len(a), errors.ErrInvalid)
	}
	return nil
}

// NewCachedArray wraps arr into the cache of cacheSize elements (DefaultCacheSize if 0).
// The arr must not be modified directly after the call.
func NewCachedArray(arr Array, cacheSize int) (*CachedArray, error) {
	if cacheSize == 0 {
		cacheSize = DefaultCacheSize
	}
	ca := &CachedArray{arr: arr}
	cache, err := lru.NewCache[Range, int](cacheSize, func(r Range) (int, error) {
		return ca.arr.Sum(r.L, r.R)
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create the range sums cache: %w", err)
	}
	ca.cache = cache
	return ca, nil
}

// Sum returns the sum of the elements from l to r inclusively
func (ca *CachedArray) Sum(l, r int) (int, error) {
	if err := ca.arr.checkRange(l, r); err != nil {
		return 0, err
	}
	return ca.cache.GetOrCreate(Range{L: l, R: r})
}

// Update sets the element at the index i to v and invalidates the cache
func (ca *CachedArray) Update(i, v int) error {
	if err := ca.arr.Update(i, v); err != nil {
		return err
	}
	ca.Invalidate()
	return nil
}

// Invalidate drops all the cached sums and returns their number
func (ca *CachedArray) Invalidate() int {
	return ca.cache.Clear()
}

// Stats returns the cache counters
func (ca *CachedArray) Stats() lru.Stats {
	return ca.cache.Stats()
}

// Len returns the array length
func (ca *CachedArray) Len() int {
	return len(ca.arr)
}
