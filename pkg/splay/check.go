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
	"fmt"

	"github.com/solarisdb/splaymemo/golibs/errors"
)

type bounded[K, V any] struct {
	n      *Node[K, V]
	lo, hi *K
}

// Check walks the whole tree and verifies its structure: the keys order, the parent
// references and the nodes count. A broken structure is a bug, so the function is
// intended for tests and debugging. The returned error wraps errors.ErrInternal.
func (t *Tree[K, V]) Check() error {
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("the tree is empty, but its size is %d: %w", t.size, errors.ErrInternal)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("the root %v has the parent %v: %w", t.root.Key, t.root.parent.Key, errors.ErrInternal)
	}

	visited := 0
	stack := []bounded[K, V]{{n: t.root}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := b.n

		// more nodes than the size means a cycle or a lost counter
		if visited++; visited > t.size {
			return fmt.Errorf("visited %d nodes, but the size is %d: %w", visited, t.size, errors.ErrInternal)
		}
		if b.lo != nil && t.cmpF(n.Key, *b.lo) <= 0 {
			return fmt.Errorf("the key %v must be greater than %v: %w", n.Key, *b.lo, errors.ErrInternal)
		}
		if b.hi != nil && t.cmpF(n.Key, *b.hi) >= 0 {
			return fmt.Errorf("the key %v must be less than %v: %w", n.Key, *b.hi, errors.ErrInternal)
		}
		if n.parent != nil && (n.parent.left == n) == (n.parent.right == n) {
			return fmt.Errorf("the node %v must be exactly one child of its parent %v: %w", n.Key, n.parent.Key, errors.ErrInternal)
		}

		if n.left != nil {
			if n.left.parent != n {
				return fmt.Errorf("the left child %v of %v refers to another parent: %w", n.left.Key, n.Key, errors.ErrInternal)
			}
			stack = append(stack, bounded[K, V]{n: n.left, lo: b.lo, hi: &n.Key})
		}
		if n.right != nil {
			if n.right.parent != n {
				return fmt.Errorf("the right child %v of %v refers to another parent: %w", n.right.Key, n.Key, errors.ErrInternal)
			}
			stack = append(stack, bounded[K, V]{n: n.right, lo: &n.Key, hi: b.hi})
		}
	}
	if visited != t.size {
		return fmt.Errorf("visited %d nodes, but the size is %d: %w", visited, t.size, errors.ErrInternal)
	}
	return nil
}

// Height returns the number of nodes on the longest path from the root to a leaf
func (t *Tree[K, V]) Height() int {
	type level struct {
		n *Node[K, V]
		d int
	}
	if t.root == nil {
		return 0
	}
	h := 0
	stack := []level{{t.root, 1}}
	for len(stack) > 0 {
		l := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		h = max(h, l.d)
		if l.n.left != nil {
			stack = append(stack, level{l.n.left, l.d + 1})
		}
		if l.n.right != nil {
			stack = append(stack, level{l.n.right, l.d + 1})
		}
	}
	return h
}
