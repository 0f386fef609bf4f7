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
	"testing"

	"github.com/solarisdb/splaymemo/golibs/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray_Sum(t *testing.T) {
	a := Array{1, 2, 3, 4, 5}
	s, err := a.Sum(0, 4)
	assert.Nil(t, err)
	assert.Equal(t, 15, s)
	s, err = a.Sum(2, 2)
	assert.Nil(t, err)
	assert.Equal(t, 3, s)

	_, err = a.Sum(3, 2)
	assert.True(t, errors.Is(err, errors.ErrInvalid))
	_, err = a.Sum(-1, 2)
	assert.True(t, errors.Is(err, errors.ErrInvalid))
	_, err = a.Sum(0, 5)
	assert.True(t, errors.Is(err, errors.ErrInvalid))

	assert.Nil(t, a.Update(0, 10))
	s, _ = a.Sum(0, 1)
	assert.Equal(t, 12, s)
	assert.True(t, errors.Is(a.Update(5, 1), errors.ErrInvalid))
}

func TestCachedArray_SumAndInvalidate(t *testing.T) {
	ca, err := NewCachedArray(Array{1, 2, 3, 4, 5}, 0)
	require.Nil(t, err)
	assert.Equal(t, 5, ca.Len())

	s, err := ca.Sum(1, 3)
	assert.Nil(t, err)
	assert.Equal(t, 9, s)
	s, _ = ca.Sum(1, 3)
	assert.Equal(t, 9, s)
	assert.Equal(t, uint64(1), ca.Stats().Hits)
	assert.Equal(t, uint64(1), ca.Stats().Misses)

	// the update must not be hidden by the cached value
	assert.Nil(t, ca.Update(2, 30))
	s, _ = ca.Sum(1, 3)
	assert.Equal(t, 36, s)
	assert.Equal(t, uint64(2), ca.Stats().Misses)

	assert.Equal(t, 1, ca.Invalidate())
	assert.Equal(t, 0, ca.Invalidate())

	_, err = ca.Sum(4, 1)
	assert.True(t, errors.Is(err, errors.ErrInvalid))
	assert.True(t, errors.Is(ca.Update(-1, 0), errors.ErrInvalid))

	_, err = NewCachedArray(Array{1}, -5)
	assert.True(t, errors.Is(err, errors.ErrInvalid))
}

func TestWorkload_CachedMatchesPlain(t *testing.T) {
	cfg := WorkloadConfig{Size: 10, Queries: 3000, UpdateRatio: 0.1, MaxValue: 100, Seed: 3}
	w, err := NewWorkload(cfg)
	require.Nil(t, err)
	assert.Equal(t, 10, len(w.Array))
	assert.Equal(t, 3000, len(w.Queries))
	for _, v := range w.Array {
		assert.True(t, v >= 1 && v <= 100)
	}

	plain, err := w.Run(w.CopyArray())
	require.Nil(t, err)

	ca, err := NewCachedArray(w.CopyArray(), 50)
	require.Nil(t, err)
	cached, err := w.Run(ca)
	require.Nil(t, err)
	assert.Equal(t, plain, cached)
	assert.True(t, ca.Stats().Hits > 0)

	w2, _ := NewWorkload(cfg)
	assert.Equal(t, w.Queries, w2.Queries)
}

func TestNewWorkload_Invalid(t *testing.T) {
	for _, cfg := range []WorkloadConfig{
		{Size: 0, Queries: 1, MaxValue: 1},
		{Size: 1, Queries: -1, MaxValue: 1},
		{Size: 1, Queries: 1, MaxValue: 0},
		{Size: 1, Queries: 1, MaxValue: 1, UpdateRatio: 1.5},
	} {
		_, err := NewWorkload(cfg)
		assert.True(t, errors.Is(err, errors.ErrInvalid), "%+v", cfg)
	}
	_, err := NewWorkload(GetDefaultWorkloadConfig())
	assert.Nil(t, err)
}
