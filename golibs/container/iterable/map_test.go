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

package iterable

import (
	"testing"

	"github.com/solarisdb/splaymemo/golibs/errors"
	"github.com/stretchr/testify/assert"
)

func keysOf[K comparable, V any](im *Map[K, V]) []K {
	return Collect(im.Iterator(), func(e MapEntry[K, V]) K { return e.Key }, []K{})
}

func TestNewMap(t *testing.T) {
	im := NewMap[string, string]()
	it := im.Iterator()
	assert.False(t, it.HasNext())
	e, ok := it.Next()
	assert.False(t, ok)
	assert.Equal(t, MapEntry[string, string]{}, e)
	assert.Nil(t, it.Close())
	assert.Equal(t, 0, im.Len())
}

func TestMap_AddGetRemove(t *testing.T) {
	im := NewMap[int, int]()
	for i := 0; i < 10; i++ {
		assert.Nil(t, im.Add(i, i+1))
	}
	assert.True(t, errors.Is(im.Add(3, 0), errors.ErrExist))
	assert.Equal(t, 10, im.Len())

	v, ok := im.Get(3)
	assert.True(t, ok)
	assert.Equal(t, 4, v)
	_, ok = im.Get(10)
	assert.False(t, ok)

	for i := 1; i < 10; i += 2 {
		im.Remove(i)
	}
	im.Remove(100)
	assert.Equal(t, 5, im.Len())
	assert.Equal(t, []int{0, 2, 4, 6, 8}, keysOf(im))

	im.Remove(0)
	im.Remove(8)
	assert.Equal(t, []int{2, 4, 6}, keysOf(im))
	assert.Nil(t, im.Add(0, 1))
	assert.Equal(t, []int{2, 4, 6, 0}, keysOf(im))
}

func TestMap_First(t *testing.T) {
	im := NewMap[int, int]()
	_, ok := im.First()
	assert.False(t, ok)

	im.Add(1, 1)
	im.Add(2, 3)
	k, ok := im.First()
	assert.True(t, ok)
	assert.Equal(t, 1, k)

	im.Remove(1)
	k, _ = im.First()
	assert.Equal(t, 2, k)

	im.Remove(2)
	_, ok = im.First()
	assert.False(t, ok)
}

func TestMapIterator_RemoveWhileIterating(t *testing.T) {
	im := NewMap[int, int]()
	for i := 0; i < 5; i++ {
		im.Add(i, i*i)
	}
	it := im.Iterator()
	var seen []int
	for it.HasNext() {
		e, ok := it.Next()
		assert.True(t, ok)
		assert.Equal(t, e.Key*e.Key, e.Value)
		seen = append(seen, e.Key)
		im.Remove(e.Key)
		if e.Key == 1 {
			// the element ahead of the iterator is skipped
			im.Remove(2)
		}
	}
	assert.Equal(t, []int{0, 1, 3, 4}, seen)
	assert.Equal(t, 0, im.Len())
}

func TestMapIterator_StandsOnRemoved(t *testing.T) {
	im := NewMap[int, int]()
	for i := 0; i < 4; i++ {
		im.Add(i, i)
	}
	it := im.Iterator()
	e, _ := it.Next()
	assert.Equal(t, 0, e.Key)

	// the iterator points to 1, which is removed together with its successor
	im.Remove(1)
	im.Remove(2)
	assert.True(t, it.HasNext())
	e, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, 3, e.Key)
	assert.False(t, it.HasNext())
}

func TestCollect(t *testing.T) {
	im := NewMap[string, int]()
	assert.Nil(t, im.Add("a", 1))
	assert.Nil(t, im.Add("b", 2))
	assert.Nil(t, im.Add("c", 3))
	vals := Collect(im.Iterator(), func(e MapEntry[string, int]) int { return e.Value * 10 }, []int{0})
	assert.Equal(t, []int{0, 10, 20, 30}, vals)

	keys := Collect[int, int](&EmptyIterator[int]{}, func(v int) int { return v }, nil)
	assert.Equal(t, 0, len(keys))
}
