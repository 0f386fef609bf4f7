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

/*
Package splay contains the self-adjusting binary search tree. Every Insert and Search
moves the touched node to the root by a sequence of zig, zig-zig and zig-zag rotations
(splaying), so the recently accessed keys stay close to the root and a sequence of m
operations over n keys costs O(m log n) in total.

A search for a missing key splays the last node visited on the search path. The tree
is not safe for concurrent use, Search mutates the tree shape. Use Locked to share
one tree between goroutines.
*/
package splay
