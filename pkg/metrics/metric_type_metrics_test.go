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
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegisterMetricType(t *testing.T) {
	// Create a new registry to avoid conflicts with global metrics
	registry := prometheus.NewRegistry()
	RegisterMetricType(registry)
	assert.Panics(t, func() { RegisterMetricType(registry) })
}

func TestObserveResolve(t *testing.T) {
	MetricTypeResolveTotal.Reset()

	ObserveResolve("L2", true)
	ObserveResolve("L2", true)
	ObserveResolve("HAMMING", true)
	ObserveResolve("", false)

	assert.Equal(t, float64(2), testutil.ToFloat64(MetricTypeResolveTotal.WithLabelValues("L2", HitLabel)))
	assert.Equal(t, float64(1), testutil.ToFloat64(MetricTypeResolveTotal.WithLabelValues("HAMMING", HitLabel)))
	assert.Equal(t, float64(1), testutil.ToFloat64(MetricTypeResolveTotal.WithLabelValues(UnknownLabel, MissLabel)))
	assert.Equal(t, 3, testutil.CollectAndCount(MetricTypeResolveTotal))
}
