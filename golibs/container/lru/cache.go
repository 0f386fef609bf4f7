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

package lru

// Cache is the ECache for the values identified by their keys directly. It keeps
// at most maxSize elements and pulls out the least recently used one when a new
// element does not fit. The missing elements are created by the CreatePoolElemF
// provided to NewCache.
type Cache[K comparable, V any] struct {
	*ECache[K, K, V]
}

func identity[K any](k K) K { return k }

// NewCache returns the Cache of maxSize elements. onDeleteF may be nil.
func NewCache[K comparable, V any](maxSize int, createNewF CreatePoolElemF[K, V], onDeleteF OnDeleteElemF[K, V]) (*Cache[K, V], error) {
	eCache, err := NewECache(maxSize, identity[K], createNewF, onDeleteF)
	if err != nil {
		return nil, err
	}
	return &Cache[K, V]{eCache}, nil
}
