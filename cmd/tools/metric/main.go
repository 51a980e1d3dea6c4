// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/milvus-io/metricregistry/internal/metricresolver"
	"github.com/milvus-io/metricregistry/pkg/log"
	"github.com/milvus-io/metricregistry/pkg/metrics"
	"github.com/milvus-io/metricregistry/pkg/util/merr"
	"github.com/milvus-io/metricregistry/pkg/util/metric"
	"github.com/milvus-io/metricregistry/pkg/util/paramtable"
)

type resolution struct {
	Input  string `yaml:"input"`
	Metric string `yaml:"metric,omitempty"`
	Code   int32  `yaml:"code"`
	Error  string `yaml:"error,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("metric", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configDir := fs.String("config", "", "config directory, defaults to $MILVUSCONF or ./configs")
	envFile := fs.String("env", ".env", "dotenv file loaded before reading config, ignored when missing")
	format := fs.String("format", "text", "output format, text or yaml")
	dumpMetrics := fs.Bool("metrics", false, "write resolution counters to stderr in prometheus text format")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "usage: metric [-config dir] [-env file] [-format text|yaml] [-metrics] NAME...")
		return 2
	}

	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(stderr, "load %s: %v\n", *envFile, err)
		return 1
	}

	var opts []paramtable.Option
	if *configDir != "" {
		opts = append(opts, paramtable.ConfigDir(*configDir))
	}
	params := paramtable.NewComponentParam(paramtable.NewBaseTable(opts...))
	logCfg := params.LogCfg.Config()
	// stdout carries the results
	logCfg.Output = stderr
	if err := log.Init(logCfg); err != nil {
		fmt.Fprintf(stderr, "init log: %v\n", err)
		return 1
	}
	defer log.Sync()

	registry := prometheus.NewRegistry()
	metrics.RegisterMetricType(registry)

	resolver, err := metricresolver.NewResolver(metric.NewRegistry(), params)
	if err != nil {
		log.Error("failed to init metric resolver", zap.Error(err))
		return 1
	}

	results, failed := resolveAll(resolver, fs.Args())
	if err := printResults(stdout, *format, results); err != nil {
		fmt.Fprintf(stderr, "print: %v\n", err)
		return 1
	}
	if *dumpMetrics {
		if err := writeMetrics(stderr, registry); err != nil {
			fmt.Fprintf(stderr, "metrics: %v\n", err)
			return 1
		}
	}
	if failed {
		return 1
	}
	return 0
}

func resolveAll(resolver *metricresolver.Resolver, names []string) ([]resolution, bool) {
	failed := false
	results := make([]resolution, 0, len(names))
	for _, name := range names {
		t, err := resolver.Resolve(name)
		if err != nil {
			failed = true
			results = append(results, resolution{Input: name, Code: merr.Code(err), Error: err.Error()})
			continue
		}
		results = append(results, resolution{Input: name, Metric: t.String(), Code: int32(t)})
	}
	return results, failed
}

func printResults(w io.Writer, format string, results []resolution) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(results)
	case "text":
		for _, r := range results {
			if r.Error != "" {
				fmt.Fprintf(w, "%s: %s\n", r.Input, r.Error)
				continue
			}
			fmt.Fprintf(w, "%s -> %s (%d)\n", r.Input, r.Metric, r.Code)
		}
		return nil
	}
	return errors.Newf("unknown format %s", format)
}

func writeMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
