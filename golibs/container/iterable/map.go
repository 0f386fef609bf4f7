// Copyright 2023 The acquirecloud Authors
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
	"fmt"

	"github.com/solarisdb/splaymemo/golibs/errors"
)

type (
	// Map is the map which keeps its keys in the order they were added. It is not
	// safe for concurrent use.
	//
	// The Map iterators tolerate the map changes: the removed elements are skipped and
	// removing the element just returned by Next() does not break the iteration. The
	// elements added after the iterator reached the end of the map are not returned.
	Map[K comparable, V any] struct {
		vals       map[K]*mapItem[K, V]
		head, tail *mapItem[K, V]
	}

	// MapEntry is a key-value pair of the Map
	MapEntry[K comparable, V any] struct {
		Key   K
		Value V
	}

	// mapItem is the element of the doubly linked list of the Map values. The
	// removed item keeps its next pointer, so an iterator standing on it can move on.
	mapItem[K comparable, V any] struct {
		key        K
		val        V
		prev, next *mapItem[K, V]
		removed    bool
	}

	mapIterator[K comparable, V any] struct {
		ptr *mapItem[K, V]
	}
)

var _ Iterator[MapEntry[int, int]] = (*mapIterator[int, int])(nil)

// NewMap returns the new empty Map
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{vals: make(map[K]*mapItem[K, V])}
}

// Iterator returns the iterator over the map entries in the order they were added
func (im *Map[K, V]) Iterator() Iterator[MapEntry[K, V]] {
	return &mapIterator[K, V]{ptr: im.head}
}

// Add puts the new key-value pair to the end of the map. It returns an error
// wrapping errors.ErrExist if the key is already in the map.
func (im *Map[K, V]) Add(k K, v V) error {
	if _, ok := im.vals[k]; ok {
		return fmt.Errorf("the Map already has value for the key=%v: %w", k, errors.ErrExist)
	}
	mi := &mapItem[K, V]{key: k, val: v, prev: im.tail}
	if im.tail == nil {
		im.head = mi
	} else {
		im.tail.next = mi
	}
	im.tail = mi
	im.vals[k] = mi
	return nil
}

// Get returns the value by its key
func (im *Map[K, V]) Get(k K) (V, bool) {
	if mi, ok := im.vals[k]; ok {
		return mi.val, true
	}
	return *new(V), false
}

// Remove removes the value by its key
func (im *Map[K, V]) Remove(k K) {
	mi, ok := im.vals[k]
	if !ok {
		return
	}
	delete(im.vals, k)
	if mi.prev == nil {
		im.head = mi.next
	} else {
		mi.prev.next = mi.next
	}
	if mi.next == nil {
		im.tail = mi.prev
	} else {
		mi.next.prev = mi.prev
	}
	mi.prev = nil
	mi.val = *new(V)
	mi.removed = true
}

// Len returns current map size
func (im *Map[K, V]) Len() int {
	return len(im.vals)
}

// First returns the first key and whether the map is not empty
func (im *Map[K, V]) First() (K, bool) {
	if im.head == nil {
		return *new(K), false
	}
	return im.head.key, true
}

// HasNext returns true if the iterator has an element to return
func (it *mapIterator[K, V]) HasNext() bool {
	it.skipRemoved()
	return it.ptr != nil
}

// Next returns the current element and moves the iterator to the next one
func (it *mapIterator[K, V]) Next() (MapEntry[K, V], bool) {
	it.skipRemoved()
	if it.ptr == nil {
		return MapEntry[K, V]{}, false
	}
	e := MapEntry[K, V]{Key: it.ptr.key, Value: it.ptr.val}
	it.ptr = it.ptr.next
	return e, true
}

// Close releases the iterator
func (it *mapIterator[K, V]) Close() error {
	it.ptr = nil
	return nil
}

func (it *mapIterator[K, V]) skipRemoved() {
	for it.ptr != nil && it.ptr.removed {
		it.ptr = it.ptr.next
	}
}
