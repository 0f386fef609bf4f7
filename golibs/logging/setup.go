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
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/solarisdb/splaymemo/golibs/errors"
)

const (
	// FormatText is the plain text format of the std logger
	FormatText = "text"
	// FormatJSON writes JSON lines via zerolog
	FormatJSON = "json"
	// FormatZap writes JSON lines via the zap production encoder
	FormatZap = "zap"
)

// Setup replaces the current logger settings by the backend for the format provided
// and sets the level. The output goes to w (os.Stdout if nil).
func Setup(format string, lvl Level, w io.Writer) error {
	var cfg Config
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		cfg = newStdConfig(w)
	case FormatJSON:
		cfg = newZerologConfig(w)
	case FormatZap:
		cfg = newZapConfig(w)
	default:
		return fmt.Errorf("unknown log format %q, expecting %s, %s or %s: %w", format, FormatText, FormatJSON, FormatZap, errors.ErrInvalid)
	}
	cfg.SetLevelF(lvl)
	SetConfig(cfg)
	return nil
}
