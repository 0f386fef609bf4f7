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
	"sync"
)

// Locked wraps a Tree with an exclusive lock, so the tree may be used by several
// goroutines. Search changes the tree shape, so it needs the exclusive lock too.
type Locked[K, V any] struct {
	lock sync.Mutex
	tree *Tree[K, V]
}

// NewLocked returns the Locked for the tree t. The tree must not be used directly
// after the call.
func NewLocked[K, V any](t *Tree[K, V]) *Locked[K, V] {
	return &Locked[K, V]{tree: t}
}

// Insert is the locked Tree.Insert
func (l *Locked[K, V]) Insert(key K, value V) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.tree.Insert(key, value)
}

// Search is the locked Tree.Search
func (l *Locked[K, V]) Search(key K) (V, bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.tree.Search(key)
}

// Len is the locked Tree.Len
func (l *Locked[K, V]) Len() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.tree.Len()
}

// Keys is the locked Tree.Keys
func (l *Locked[K, V]) Keys() []K {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.tree.Keys()
}

// Do runs f with the tree under the lock. It allows to run several operations atomically.
func (l *Locked[K, V]) Do(f func(t *Tree[K, V])) {
	l.lock.Lock()
	defer l.lock.Unlock()
	f(l.tree)
}
