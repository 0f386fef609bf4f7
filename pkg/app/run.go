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

package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/logrange/linker"
	"github.com/solarisdb/splaymemo/golibs/errors"
	"github.com/solarisdb/splaymemo/golibs/logging"
	"github.com/solarisdb/splaymemo/pkg/bench"
)

// Mode selects the benchmark to run
type Mode string

const (
	ModeFibonacci Mode = "fib"
	ModeRangeSum  Mode = "rangesum"
	ModeAll       Mode = "all"
)

// Run is an entry point of the benchmarks. It runs the benchmarks selected by mode
// and writes the report as cfg.Output defines. A cancelled ctx stops the run, the
// report of the results measured so far is written and the error is returned.
func Run(ctx context.Context, cfg *Config, mode Mode) error {
	log := logging.NewLogger("splaymemo")
	if err := cfg.Validate(); err != nil {
		return err
	}
	if mode != ModeFibonacci && mode != ModeRangeSum && mode != ModeAll {
		return fmt.Errorf("unknown mode %q: %w", mode, errors.ErrInvalid)
	}
	log.Infof("starting %s benchmark", mode)
	log.Debugf("config: %s", spew.Sdump(cfg))

	metrics := bench.NewMetrics()
	runner := bench.NewRunner(cfg.Bench)

	inj := linker.New()
	inj.Register(linker.Component{Name: "", Value: metrics})
	inj.Register(linker.Component{Name: "", Value: runner})
	inj.Init(ctx)
	defer inj.Shutdown()

	rep := bench.NewReport()
	err := runBenchmarks(ctx, runner, rep, mode)
	if err != nil && !errors.Is(err, errors.ErrCanceled) {
		return err
	}
	if err != nil {
		log.Warnf("run %s is interrupted, writing the %d measured points: %v", rep.RunID, len(rep.Fibonacci), err)
	} else {
		log.Infof("run %s is done", rep.RunID)
	}
	if werr := writeReport(rep, metrics, cfg.Output); werr != nil {
		return werr
	}
	return err
}

// runBenchmarks fills rep by the benchmarks of mode. The results measured before
// an error stay in rep.
func runBenchmarks(ctx context.Context, runner *bench.Runner, rep *bench.Report, mode Mode) error {
	if mode == ModeFibonacci || mode == ModeAll {
		res, err := runner.RunFibonacci(ctx)
		rep.Fibonacci = res
		if err != nil {
			return err
		}
	}
	if mode == ModeRangeSum || mode == ModeAll {
		res, err := runner.RunRangeSum(ctx)
		if err != nil {
			return err
		}
		rep.RangeSum = &res
	}
	return nil
}

func writeReport(rep *bench.Report, m *bench.Metrics, ocfg OutputConfig) (err error) {
	var w io.Writer = os.Stdout
	if ocfg.Path != "" {
		f, cerr := os.Create(ocfg.Path)
		if cerr != nil {
			return fmt.Errorf("could not create the report file %s: %w", ocfg.Path, cerr)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	if ocfg.Format == OutputYAML {
		err = rep.WriteYAML(w)
	} else {
		err = rep.WriteTable(w)
	}
	if err != nil || !ocfg.Metrics {
		return err
	}
	if _, err = fmt.Fprintln(w); err != nil {
		return err
	}
	return m.WriteText(w)
}
