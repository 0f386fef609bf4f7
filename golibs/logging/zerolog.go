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
	"io"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

type zeroLogger struct {
	zl    zerolog.Logger
	level *int32
}

var zeroLevels = map[Level]zerolog.Level{
	ERROR: zerolog.ErrorLevel,
	WARN:  zerolog.WarnLevel,
	INFO:  zerolog.InfoLevel,
	DEBUG: zerolog.DebugLevel,
	TRACE: zerolog.TraceLevel,
}

// newZerologConfig returns the Config for JSON lines logging via zerolog. Every logger
// carries its name in the "logger" field.
func newZerologConfig(w io.Writer) Config {
	if w == nil {
		w = os.Stdout
	}
	// the level is filtered by the Config, zerolog must pass everything through
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	base := zerolog.New(w).With().Timestamp().Logger()
	level := int32(INFO)
	return Config{
		NewLoggerF: func(name string) Logger {
			return &zeroLogger{zl: base.With().Str("logger", name).Logger(), level: &level}
		},
		SetLevelF: func(lvl Level) { atomic.StoreInt32(&level, int32(lvl)) },
		GetLevelF: func() Level { return Level(atomic.LoadInt32(&level)) },
	}
}

func (z *zeroLogger) Warnf(format string, args ...interface{}) {
	z.logf(WARN, format, args...)
}

func (z *zeroLogger) Infof(format string, args ...interface{}) {
	z.logf(INFO, format, args...)
}

func (z *zeroLogger) Debugf(format string, args ...interface{}) {
	z.logf(DEBUG, format, args...)
}

func (z *zeroLogger) Tracef(format string, args ...interface{}) {
	z.logf(TRACE, format, args...)
}

func (z *zeroLogger) Errorf(format string, args ...interface{}) {
	z.logf(ERROR, format, args...)
}

func (z *zeroLogger) logf(lvl Level, format string, args ...interface{}) {
	if atomic.LoadInt32(z.level) < int32(lvl) {
		return
	}
	z.zl.WithLevel(zeroLevels[lvl]).Msgf(format, args...)
}
