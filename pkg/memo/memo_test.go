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
	"math/big"
	"testing"

	"github.com/solarisdb/splaymemo/golibs/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fibLoop(n int) *big.Int {
	if n < 2 {
		return big.NewInt(int64(n))
	}
	a, b := big.NewInt(0), big.NewInt(1)
	for i := 2; i <= n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return b
}

func TestFibonacci_Recurrence(t *testing.T) {
	rec := Fibonacci()
	assert.Nil(t, rec.Validate())
	assert.Equal(t, []int{9, 8}, rec.Deps(10))
	assert.Equal(t, int64(13), rec.Combine([]*big.Int{big.NewInt(5), big.NewInt(8)}).Int64())
	assert.Equal(t, "832040", fibLoop(30).String())

	assert.True(t, errors.Is(Recurrence[int]{}.Validate(), errors.ErrInvalid))
	assert.True(t, errors.Is(ErrDepthExceeded, errors.ErrExhausted))
}

func TestSplayEvaluator_Fib5(t *testing.T) {
	e, err := NewSplayEvaluator(Fibonacci(), Config{})
	require.Nil(t, err)
	tr := e.Tree()
	assert.Equal(t, []int{0, 1}, tr.Keys())

	v, err := e.Eval(5)
	assert.Nil(t, err)
	assert.Equal(t, int64(5), v.Int64())

	expected := []int64{0, 1, 1, 2, 3, 5}
	it := tr.Iterator()
	i := 0
	for it.HasNext() {
		en, _ := it.Next()
		assert.Equal(t, i, en.Key)
		assert.Equal(t, expected[i], en.Value.Int64())
		i++
	}
	it.Close()
	assert.Equal(t, len(expected), i)
	require.Nil(t, tr.Check())

	v, ok := tr.Search(5)
	assert.True(t, ok)
	assert.Equal(t, int64(5), v.Int64())
	assert.Equal(t, 5, tr.Root().Key)
}

func TestSplayEvaluator_Eval(t *testing.T) {
	e, err := NewSplayEvaluator(Fibonacci(), Config{})
	require.Nil(t, err)
	for _, n := range []int{0, 1, 2, 10, 50, 100, 300, 90} {
		v, err := e.Eval(n)
		assert.Nil(t, err)
		assert.Equal(t, fibLoop(n).String(), v.String(), "n=%d", n)
		require.Nil(t, e.Tree().Check())
	}
	// 0, 1 and 2..300
	assert.Equal(t, 301, e.Tree().Len())

	s := e.Stats()
	assert.Equal(t, s.Lookups, s.Hits+s.Misses)
	assert.Equal(t, uint64(299), s.Misses)

	// a warm hit does not compute anything
	before := e.Tree().Len()
	v, err := e.Eval(200)
	assert.Nil(t, err)
	assert.Equal(t, fibLoop(200).String(), v.String())
	assert.Equal(t, before, e.Tree().Len())
	assert.Equal(t, 200, e.Tree().Root().Key)
}

func TestSplayEvaluator_MaxDepth(t *testing.T) {
	e, err := NewSplayEvaluator(Fibonacci(), Config{MaxDepth: 4})
	require.Nil(t, err)
	v, err := e.Eval(5)
	assert.Nil(t, err)
	assert.Equal(t, int64(5), v.Int64())

	e, _ = NewSplayEvaluator(Fibonacci(), Config{MaxDepth: 3})
	_, err = e.Eval(5)
	assert.True(t, errors.Is(err, ErrDepthExceeded))
	assert.True(t, errors.Is(err, errors.ErrExhausted))
	assert.Nil(t, e.Tree().Check())

	_, err = NewSplayEvaluator(Fibonacci(), Config{MaxDepth: -1})
	assert.True(t, errors.Is(err, errors.ErrInvalid))
}

func TestEvaluators_NegativeN(t *testing.T) {
	se, err := NewSplayEvaluator(Fibonacci(), Config{})
	require.Nil(t, err)
	le, err := NewLRUEvaluator(Fibonacci(), Config{})
	require.Nil(t, err)

	v, err := se.Eval(-3)
	assert.True(t, errors.Is(err, errors.ErrInvalid))
	assert.Nil(t, v)
	v, err = se.EvalIterative(-3)
	assert.True(t, errors.Is(err, errors.ErrInvalid))
	assert.Nil(t, v)
	_, err = se.EvalWithFallback(-1)
	assert.True(t, errors.Is(err, errors.ErrInvalid))
	v, err = le.Eval(-3)
	assert.True(t, errors.Is(err, errors.ErrInvalid))
	assert.Nil(t, v)

	// the seeds only, nothing is memoized for the negative arguments
	assert.Equal(t, 2, se.Tree().Len())
	assert.Equal(t, 0, le.Len())
}

func TestSplayEvaluator_EvalIterative(t *testing.T) {
	e, err := NewSplayEvaluator(Fibonacci(), Config{})
	require.Nil(t, err)
	v, err := e.EvalIterative(1)
	require.Nil(t, err)
	assert.Equal(t, int64(1), v.Int64())
	v, err = e.EvalIterative(5000)
	require.Nil(t, err)
	assert.Equal(t, fibLoop(5000).String(), v.String())
	assert.Equal(t, 5001, e.Tree().Len())
	assert.Nil(t, e.Tree().Check())
	assert.Equal(t, 5000, e.Tree().Root().Key)
}

func TestSplayEvaluator_EvalWithFallback(t *testing.T) {
	e, err := NewSplayEvaluator(Fibonacci(), Config{MaxDepth: 100})
	require.Nil(t, err)
	v, err := e.EvalWithFallback(1000)
	assert.Nil(t, err)
	assert.Equal(t, fibLoop(1000).String(), v.String())

	// the table is warm now, so the recursion is not deep anymore
	v, err = e.Eval(1001)
	assert.Nil(t, err)
	assert.Equal(t, fibLoop(1001).String(), v.String())
}

func TestLRUEvaluator_Eval(t *testing.T) {
	e, err := NewLRUEvaluator(Fibonacci(), Config{})
	require.Nil(t, err)
	for _, n := range []int{0, 1, 2, 10, 50, 100, 300} {
		v, err := e.Eval(n)
		assert.Nil(t, err)
		assert.Equal(t, fibLoop(n).String(), v.String(), "n=%d", n)
	}
	assert.Equal(t, 299, e.Len())
	s := e.Stats()
	assert.Equal(t, uint64(299), s.Misses)
	assert.Equal(t, s.Lookups, s.Hits+s.Misses)

	assert.Equal(t, 299, e.Clear())
	assert.Equal(t, 0, e.Len())
}

func TestLRUEvaluator_SmallCapacity(t *testing.T) {
	e, err := NewLRUEvaluator(Fibonacci(), Config{Capacity: 3})
	require.Nil(t, err)
	v, err := e.Eval(60)
	assert.Nil(t, err)
	assert.Equal(t, fibLoop(60).String(), v.String())
	assert.Equal(t, 3, e.Len())

	_, err = NewLRUEvaluator(Fibonacci(), Config{Capacity: -1})
	assert.True(t, errors.Is(err, errors.ErrInvalid))
}

func TestLRUEvaluator_MaxDepth(t *testing.T) {
	e, err := NewLRUEvaluator(Fibonacci(), Config{MaxDepth: 3})
	require.Nil(t, err)
	_, err = e.Eval(5)
	assert.True(t, errors.Is(err, ErrDepthExceeded))

	// the depth counter is restored after the failure
	v, err := e.Eval(4)
	assert.Nil(t, err)
	assert.Equal(t, int64(3), v.Int64())
}

func TestEvaluators_Agree(t *testing.T) {
	se, err := NewSplayEvaluator(Fibonacci(), Config{})
	require.Nil(t, err)
	le, err := NewLRUEvaluator(Fibonacci(), Config{Capacity: 16})
	require.Nil(t, err)
	for _, ev := range []Evaluator[*big.Int]{se, le} {
		for n := 0; n <= 400; n += 37 {
			v, err := ev.Eval(n)
			assert.Nil(t, err)
			assert.Equal(t, fibLoop(n).String(), v.String())
		}
	}
}

func TestSplayEvaluator_CustomRecurrence(t *testing.T) {
	// tribonacci-like: T(n) = T(n-1) + T(n-2) + T(n-3), T(0)=0, T(1)=0, T(2)=1
	rec := Recurrence[int]{
		Threshold: 3,
		Base: func(n int) int {
			if n == 2 {
				return 1
			}
			return 0
		},
		Seeds: []int{0, 1, 2},
		Deps:  func(n int) []int { return []int{n - 1, n - 2, n - 3} },
		Combine: func(vals []int) int {
			return vals[0] + vals[1] + vals[2]
		},
	}
	e, err := NewSplayEvaluator(rec, Config{})
	require.Nil(t, err)
	v, err := e.Eval(10)
	assert.Nil(t, err)
	assert.Equal(t, 81, v)
	v, err = e.EvalIterative(10)
	assert.Nil(t, err)
	assert.Equal(t, 81, v)
}

func BenchmarkSplayEvaluator_Cold(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e, _ := NewSplayEvaluator(Fibonacci(), Config{})
		e.Eval(500)
	}
}

func BenchmarkLRUEvaluator_Cold(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e, _ := NewLRUEvaluator(Fibonacci(), Config{})
		e.Eval(500)
	}
}
