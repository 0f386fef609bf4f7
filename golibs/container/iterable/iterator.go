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

// Iterator moves over an ordered collection. The elements are read with
// HasNext() and Next(), Close() releases the iterator.
type Iterator[V any] interface {
	// HasNext returns true if Next() has an element to return
	HasNext() bool

	// Next returns the current element and moves to the following one. The second
	// value is false and the first one is the zero value when the iterator is over.
	//
	// If the collection is changed between HasNext() and Next() calls, Next() may
	// return false even though HasNext() returned true.
	Next() (V, bool)

	// Close releases the iterator, it must not be used after the call. Every
	// iterator must be closed.
	Close() error
}

// EmptyIterator iterates over nothing
type EmptyIterator[V any] struct{}

var _ Iterator[int] = (*EmptyIterator[int])(nil)

func (ei *EmptyIterator[V]) HasNext() bool {
	return false
}

func (ei *EmptyIterator[V]) Next() (V, bool) {
	return *new(V), false
}

func (ei *EmptyIterator[V]) Close() error {
	return nil
}

// Collect reads it until the end, appends f(v) of every element v to dst and
// returns the result. The iterator is closed before return.
func Collect[V, R any](it Iterator[V], f func(v V) R, dst []R) []R {
	defer it.Close()
	for it.HasNext() {
		v, ok := it.Next()
		if !ok {
			break
		}
		dst = append(dst, f(v))
	}
	return dst
}
