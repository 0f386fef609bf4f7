// Copyright 2023 The acquirecloud Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
/*
Package lru contains the container with limited size capacity and LRU
(Least Recently Used) pull out discipline. The container uses golang generics,
so it can be instantiated for different key and value types.

The cache may create missing elements itself (see GetOrCreate), which makes it
a memoization table for a function of the key.
*/
package lru
