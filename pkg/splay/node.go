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

// Node is an element of the Tree. The Key is unique within the tree and never changes,
// the Value may be overwritten by Tree.Insert. The node position changes on every splay.
type Node[K, V any] struct {
	Key   K
	Value V

	left   *Node[K, V]
	right  *Node[K, V]
	parent *Node[K, V] // back reference, the node is owned by its parent or the tree
}

func newNode[K, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{Key: key, Value: value}
}

// Left returns the left child or nil
func (n *Node[K, V]) Left() *Node[K, V] {
	return n.left
}

// Right returns the right child or nil
func (n *Node[K, V]) Right() *Node[K, V] {
	return n.right
}

// Parent returns the parent node, it is nil for the root
func (n *Node[K, V]) Parent() *Node[K, V] {
	return n.parent
}

func (n *Node[K, V]) isLeft() bool {
	return n.parent != nil && n.parent.left == n
}
