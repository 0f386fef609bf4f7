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
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	assert.Nil(t, err)
	assert.Equal(t, DEBUG, l)
	l, err = ParseLevel(" Trace ")
	assert.Nil(t, err)
	assert.Equal(t, TRACE, l)
	_, err = ParseLevel("verbose")
	assert.NotNil(t, err)
	assert.Equal(t, "WARN", WARN.String())
	assert.Equal(t, "Level(42)", Level(42).String())
}

func TestStdLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := newStdConfig(&buf)
	cfg.SetLevelF(INFO)
	l := cfg.NewLoggerF("splay")
	l.Infof("hello %d", 1)
	l.Debugf("hidden")
	out := buf.String()
	assert.True(t, strings.Contains(out, "INFO\tsplay: hello 1"))
	assert.False(t, strings.Contains(out, "hidden"))

	cfg.SetLevelF(TRACE)
	assert.Equal(t, TRACE, cfg.GetLevelF())
	l.Tracef("visible")
	assert.True(t, strings.Contains(buf.String(), "visible"))
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := newZerologConfig(&buf)
	l := cfg.NewLoggerF("memo")
	l.Warnf("depth %d", 10)
	l.Debugf("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, 1, len(lines))
	var rec map[string]any
	assert.Nil(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "warn", rec["level"])
	assert.Equal(t, "memo", rec["logger"])
	assert.Equal(t, "depth 10", rec["message"])
}

func TestZapLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := newZapConfig(&buf)
	cfg.SetLevelF(TRACE)
	l := cfg.NewLoggerF("bench")
	l.Tracef("n=%d", 5)

	var rec map[string]any
	assert.Nil(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "debug", rec["level"])
	assert.Equal(t, "bench", rec["logger"])
	assert.Equal(t, "n=5", rec["msg"])

	buf.Reset()
	cfg.SetLevelF(ERROR)
	l.Infof("hidden")
	assert.Equal(t, 0, buf.Len())
}

func TestSetup(t *testing.T) {
	defer SetConfig(newStdConfig(nil))
	var buf bytes.Buffer
	assert.Nil(t, Setup(FormatJSON, DEBUG, &buf))
	assert.Equal(t, DEBUG, GetLevel())
	NewLogger("test").Debugf("ok")
	assert.True(t, strings.Contains(buf.String(), `"logger":"test"`))
	assert.NotNil(t, Setup("xml", INFO, &buf))
}
