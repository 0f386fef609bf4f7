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
	"cmp"
)

type (
	// CompareF compares two keys. It returns a negative number if k1 < k2, zero if
	// k1 == k2 and a positive number if k1 > k2. The order must be total.
	CompareF[K any] func(k1, k2 K) int

	// Tree is the splay tree. The zero value is not usable, use New or NewOrdered.
	Tree[K, V any] struct {
		root      *Node[K, V]
		cmpF      CompareF[K]
		size      int
		rotations uint64
	}
)

// New returns an empty tree ordered by cmpF
func New[K, V any](cmpF CompareF[K]) *Tree[K, V] {
	if cmpF == nil {
		panic("splay.New(): the compare function must not be nil")
	}
	return &Tree[K, V]{cmpF: cmpF}
}

// NewOrdered returns an empty tree for the naturally ordered keys
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	return New[K, V](cmp.Compare[K])
}

// Insert puts the value by the key. If the key is already in the tree, its value is
// overwritten. The node of the key becomes the tree root.
func (t *Tree[K, V]) Insert(key K, value V) {
	if t.root == nil {
		t.root = newNode(key, value)
		t.size = 1
		return
	}

	var parent *Node[K, V]
	c := 0
	for n := t.root; n != nil; {
		parent = n
		c = t.cmpF(key, n.Key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			n.Value = value
			t.splay(n)
			return
		}
	}

	n := newNode(key, value)
	n.parent = parent
	if c < 0 {
		parent.left = n
	} else {
		parent.right = n
	}
	t.size++
	t.splay(n)
}

// Search looks for the key and returns its value and true if it is found. The found
// node becomes the root. If the key is not in the tree, the last node visited by the
// search becomes the root and the zero value and false are returned.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	var last *Node[K, V]
	for n := t.root; n != nil; {
		last = n
		c := t.cmpF(key, n.Key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			t.splay(n)
			return n.Value, true
		}
	}
	if last != nil {
		t.splay(last)
	}
	return *new(V), false
}

// Root returns the root node or nil if the tree is empty
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// Len returns the number of keys in the tree
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Rotations returns the number of rotations made since the tree creation. It
// measures the restructuring work of Insert and Search.
func (t *Tree[K, V]) Rotations() uint64 {
	return t.rotations
}

// splay lifts x to the root
func (t *Tree[K, V]) splay(x *Node[K, V]) {
	for x.parent != nil {
		p := x.parent
		switch {
		case p.parent == nil: // zig
			t.rotate(x)
		case x.isLeft() == p.isLeft(): // zig-zig, the parent goes first
			t.rotate(p)
			t.rotate(x)
		default: // zig-zag
			t.rotate(x)
			t.rotate(x)
		}
	}
}

// rotate moves x one level up over its parent keeping the keys order. It does
// nothing for the root.
func (t *Tree[K, V]) rotate(x *Node[K, V]) {
	p := x.parent
	if p == nil {
		return
	}
	g := p.parent

	var b *Node[K, V]
	if p.left == x {
		b = x.right
		p.left, x.right = b, p
	} else {
		b = x.left
		p.right, x.left = b, p
	}
	if b != nil {
		b.parent = p
	}
	p.parent = x
	x.parent = g

	switch {
	case g == nil:
		t.root = x
	case g.left == p:
		g.left = x
	default:
		g.right = x
	}
	t.rotations++
}
