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

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	sl    *zap.SugaredLogger
	level *int32
}

// newZapConfig returns the Config for the zap production JSON encoder. zap has no
// trace level, so TRACE messages are written with the debug level.
func newZapConfig(w io.Writer) Config {
	if w == nil {
		w = os.Stdout
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(w), zap.NewAtomicLevelAt(zapcore.DebugLevel))
	base := zap.New(core)
	level := int32(INFO)
	return Config{
		NewLoggerF: func(name string) Logger {
			return &zapLogger{sl: base.Named(name).Sugar(), level: &level}
		},
		SetLevelF: func(lvl Level) { atomic.StoreInt32(&level, int32(lvl)) },
		GetLevelF: func() Level { return Level(atomic.LoadInt32(&level)) },
	}
}

func (z *zapLogger) enabled(lvl Level) bool {
	return atomic.LoadInt32(z.level) >= int32(lvl)
}

func (z *zapLogger) Warnf(format string, args ...interface{}) {
	if z.enabled(WARN) {
		z.sl.Warnf(format, args...)
	}
}

func (z *zapLogger) Infof(format string, args ...interface{}) {
	if z.enabled(INFO) {
		z.sl.Infof(format, args...)
	}
}

func (z *zapLogger) Debugf(format string, args ...interface{}) {
	if z.enabled(DEBUG) {
		z.sl.Debugf(format, args...)
	}
}

func (z *zapLogger) Tracef(format string, args ...interface{}) {
	if z.enabled(TRACE) {
		z.sl.Debugf(format, args...)
	}
}

func (z *zapLogger) Errorf(format string, args ...interface{}) {
	if z.enabled(ERROR) {
		z.sl.Errorf(format, args...)
	}
}
