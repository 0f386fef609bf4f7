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
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

type (
	stdLogger struct {
		out  *stdOut
		name string
	}

	// stdOut is shared by all loggers built by the same Config
	stdOut struct {
		lock   sync.Mutex
		writer io.Writer
		level  int32
	}
)

// newStdConfig returns the Config for the plain text logger, which writes to w.
// os.Stdout is used if w is nil.
func newStdConfig(w io.Writer) Config {
	if w == nil {
		w = os.Stdout
	}
	out := &stdOut{writer: w, level: int32(INFO)}
	return Config{
		NewLoggerF: func(name string) Logger { return &stdLogger{out: out, name: name} },
		SetLevelF:  func(lvl Level) { atomic.StoreInt32(&out.level, int32(lvl)) },
		GetLevelF:  func() Level { return Level(atomic.LoadInt32(&out.level)) },
	}
}

// Warnf is a function for printing Warn-level messages from the source code
func (sl *stdLogger) Warnf(format string, args ...interface{}) {
	sl.logf(WARN, format, args...)
}

// Infof is a function for printing Info-level messages from the source code
func (sl *stdLogger) Infof(format string, args ...interface{}) {
	sl.logf(INFO, format, args...)
}

// Debugf is a function for printing Debug-level messages from the source code
func (sl *stdLogger) Debugf(format string, args ...interface{}) {
	sl.logf(DEBUG, format, args...)
}

// Tracef is a function for pretty printing Trace-level messages from the source code
func (sl *stdLogger) Tracef(format string, args ...interface{}) {
	sl.logf(TRACE, format, args...)
}

// Errorf is a function for pretty printing Error-level messages from the source code
func (sl *stdLogger) Errorf(format string, args ...interface{}) {
	sl.logf(ERROR, format, args...)
}

func (sl *stdLogger) logf(lvl Level, format string, args ...interface{}) {
	if atomic.LoadInt32(&sl.out.level) < int32(lvl) {
		return
	}
	now := time.Now()
	sl.out.lock.Lock()
	defer sl.out.lock.Unlock()
	fmt.Fprint(sl.out.writer, "[", now.Format("15:04:05.000000"), "] ", levels[lvl], "\t", sl.name, ": ")
	fmt.Fprintf(sl.out.writer, format, args...)
	fmt.Fprintln(sl.out.writer)
}
