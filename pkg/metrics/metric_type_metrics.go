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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	milvusNamespace = "milvus"

	metricTypeSubsystem = "metric_type"

	MetricTypeLabelName = "metric_type"
	ResultLabelName     = "result"

	HitLabel     = "hit"
	MissLabel    = "miss"
	UnknownLabel = "unknown"
)

// MetricTypeResolveTotal counts metric name resolutions by outcome.
var MetricTypeResolveTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: milvusNamespace,
		Subsystem: metricTypeSubsystem,
		Name:      "resolve_total",
		Help:      "counter of metric type name resolutions",
	}, []string{
		MetricTypeLabelName,
		ResultLabelName,
	})

// RegisterMetricType registers the metric type resolution metrics.
func RegisterMetricType(registry prometheus.Registerer) {
	registry.MustRegister(MetricTypeResolveTotal)
}

// ObserveResolve records one resolution. metricType is the canonical name on
// success and ignored on a miss, which is counted under UnknownLabel.
func ObserveResolve(metricType string, ok bool) {
	if !ok {
		MetricTypeResolveTotal.WithLabelValues(UnknownLabel, MissLabel).Inc()
		return
	}
	MetricTypeResolveTotal.WithLabelValues(metricType, HitLabel).Inc()
}
