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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	assert.True(t, Is(fmt.Errorf("fddd %w", ErrNotExist), ErrNotExist))
	assert.True(t, Is(fmt.Errorf("depth 10: %w", fmt.Errorf("inner: %w", ErrExhausted)), ErrExhausted))
	assert.False(t, Is(fmt.Errorf("fddd %s", ErrNotExist), ErrNotExist))
	assert.False(t, Is(ErrInvalid, ErrInternal))
}

type depthErr struct{ depth int }

func (d depthErr) Error() string { return fmt.Sprintf("depth %d", d.depth) }

func TestAs(t *testing.T) {
	var de depthErr
	assert.True(t, As(fmt.Errorf("eval: %w", depthErr{5}), &de))
	assert.Equal(t, 5, de.depth)
	assert.False(t, As(ErrInvalid, &de))
}
