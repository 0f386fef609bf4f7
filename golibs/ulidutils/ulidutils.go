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

package ulidutils

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/solarisdb/splaymemo/golibs/errors"
)

// New returns new ulid.ULID.
func New() ulid.ULID {
	return ulid.Make()
}

// NewID returns new ulid.ULID in string format. An ID returned earlier is
// lexicographically less than the IDs returned after it within the same process.
func NewID() string {
	return New().String()
}

// Time returns the time the ID was generated at, with the millisecond precision
func Time(id string) (time.Time, error) {
	u, err := ulid.ParseStrict(id)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse ULID=%q: %w", id, errors.ErrInvalid)
	}
	return ulid.Time(u.Time()), nil
}
