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

package splay

import (
	"github.com/solarisdb/splaymemo/golibs/container/iterable"
)

type (
	// Entry is a key-value pair returned by the tree iterator
	Entry[K, V any] struct {
		Key   K
		Value V
	}

	// inOrderIterator walks the tree in the keys order without splaying. The
	// tree must not be modified while the iterator is in use.
	inOrderIterator[K, V any] struct {
		stack []*Node[K, V]
	}
)

var _ iterable.Iterator[Entry[int, int]] = (*inOrderIterator[int, int])(nil)

// Iterator returns the iterator over the tree entries in the ascending keys order.
// Iterating does not change the tree shape, but Insert and Search do, so the tree
// must not be accessed until the iterator is closed.
func (t *Tree[K, V]) Iterator() iterable.Iterator[Entry[K, V]] {
	if t.root == nil {
		return &iterable.EmptyIterator[Entry[K, V]]{}
	}
	it := &inOrderIterator[K, V]{stack: make([]*Node[K, V], 0, 32)}
	it.pushLeft(t.root)
	return it
}

// Keys returns all the tree keys in the ascending order
func (t *Tree[K, V]) Keys() []K {
	return iterable.Collect(t.Iterator(), func(e Entry[K, V]) K { return e.Key }, make([]K, 0, t.size))
}

func (it *inOrderIterator[K, V]) HasNext() bool {
	return len(it.stack) > 0
}

func (it *inOrderIterator[K, V]) Next() (Entry[K, V], bool) {
	if len(it.stack) == 0 {
		return Entry[K, V]{}, false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeft(n.right)
	return Entry[K, V]{Key: n.Key, Value: n.Value}, true
}

func (it *inOrderIterator[K, V]) Close() error {
	it.stack = nil
	return nil
}

func (it *inOrderIterator[K, V]) pushLeft(n *Node[K, V]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}
