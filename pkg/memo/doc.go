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
Package memo contains memoized evaluators of integer recurrences. A Recurrence
describes the domain: the base cases, the subproblems of n and the way their values
are combined. Two memoization strategies evaluate it:

  - SplayEvaluator keeps the computed values in a splay tree, so the recently probed
    keys are cheap to reach again;
  - LRUEvaluator keeps them in the fixed-capacity LRU cache.

The recursive evaluation is bounded by Config.MaxDepth. Exceeding it returns an error
wrapping ErrDepthExceeded, so the caller may switch to the iterative evaluation
(see SplayEvaluator.EvalIterative and SplayEvaluator.EvalWithFallback).

The evaluators are not safe for concurrent use.
*/
package memo
