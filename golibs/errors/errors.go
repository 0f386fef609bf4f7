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
package errors

import (
	"errors"
)

var (
	// ErrExist is returned when an object already exists
	ErrExist = errors.New("already exists")
	// ErrNotExist is returned when an object is not found
	ErrNotExist = errors.New("not exist")
	// ErrInvalid is returned when the arguments of a call are not valid
	ErrInvalid = errors.New("invalid argument")
	// ErrExhausted is returned when a resource limit is reached: a capacity, a depth, a size etc.
	ErrExhausted = errors.New("resource exhausted")
	// ErrInternal reports a broken internal state, which indicates a bug in the code
	ErrInternal = errors.New("internal error")
	// ErrCanceled is returned when an operation is interrupted by its context
	ErrCanceled = errors.New("operation canceled")
)

// Is is the errors.Is shortcut, so the package can be imported instead of the standard one
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is the errors.As shortcut
func As(err error, target any) bool {
	return errors.As(err, target)
}
