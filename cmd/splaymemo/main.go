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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/solarisdb/splaymemo/golibs/logging"
	"github.com/solarisdb/splaymemo/pkg/app"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var (
		cfgFile   string
		logLevel  string
		logFormat string
		cfg       *app.Config
	)
	root := &cobra.Command{
		Use:           "splaymemo",
		Short:         "Compares the splay tree and the LRU cache memoization",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// the flags define the logging until the config is built
			lvl, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			if err = logging.Setup(logFormat, lvl, os.Stderr); err != nil {
				return err
			}
			if cfg, err = app.BuildConfig(cfgFile); err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Log.Format = logFormat
			}
			if lvl, err = logging.ParseLevel(cfg.Log.Level); err != nil {
				return err
			}
			return logging.Setup(cfg.Log.Format, lvl, os.Stderr)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "The config file, .yaml or .json")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "The log level: error, warn, info, debug or trace")
	root.PersistentFlags().StringVar(&logFormat, "log-format", logging.FormatText, "The log format: text, json or zap")

	cfgF := func() *app.Config { return cfg }
	root.AddCommand(fibCommand(cfgF), benchCommand(cfgF, "bench", app.ModeFibonacci,
		"Measures the Fibonacci evaluation with both memoization strategies"),
		benchCommand(cfgF, "rangesum", app.ModeRangeSum,
			"Measures the random range sum queries with and without the LRU cache"),
		benchCommand(cfgF, "all", app.ModeAll, "Runs all the benchmarks"))
	return root
}

func fibCommand(cfgF func() *app.Config) *cobra.Command {
	var (
		strategy string
		maxDepth int
	)
	cmd := &cobra.Command{
		Use:   "fib N",
		Short: "Evaluates the N-th Fibonacci number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("N must be an integer: %w", err)
			}
			cfg := cfgF()
			if cmd.Flags().Changed("max-depth") {
				cfg.Bench.MaxDepth = maxDepth
			}
			return app.Fib(cfg, n, strategy, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", app.StrategyBoth, "The memoization strategy: splay, lru or both")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "The recursion depth limit, 0 means unlimited")
	return cmd
}

func benchCommand(cfgF func() *app.Config, use string, mode app.Mode, short string) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cfgF()
			if cmd.Flags().Changed("output") {
				cfg.Output.Format = output
			}
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return app.Run(ctx, cfg, mode)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", app.OutputTable, "The report format: table or yaml")
	return cmd
}
