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
Package errors contains the general classes of errors the packages of the module use.
The globally defined error variables describe a situation (invalid argument, exhausted
resource, broken invariant etc.) and the callers wrap them with a context:

	return fmt.Errorf("range [%d, %d] is out of the array bounds: %w", l, r, errors.ErrInvalid)

so the situation can be checked with Is() regardless of the message.
*/
package errors
