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

package indexparamcheck

import (
	"github.com/milvus-io/milvus-proto/go-api/v2/schemapb"
	"github.com/samber/lo"

	"github.com/milvus-io/metricregistry/pkg/util/merr"
	"github.com/milvus-io/metricregistry/pkg/util/metric"
)

// SupportedMetrics returns the metric types allowed for vectors of dType,
// nil for non-vector types.
func SupportedMetrics(dType schemapb.DataType) []metric.MetricType {
	switch dType {
	case schemapb.DataType_FloatVector:
		return FloatMetrics
	case schemapb.DataType_BinaryVector:
		return BinaryMetrics
	}
	return nil
}

// CheckMetricByValues reports whether t is one of values.
func CheckMetricByValues(t metric.MetricType, values []metric.MetricType) bool {
	return lo.Contains(values, t)
}

// CheckMetricForDataType returns an error unless t can be used with vectors of dType.
func CheckMetricForDataType(t metric.MetricType, dType schemapb.DataType) error {
	supported := SupportedMetrics(dType)
	if supported == nil {
		return merr.WrapErrParameterInvalidMsg("data type %s is not a vector type", dType.String())
	}
	if !CheckMetricByValues(t, supported) {
		return merr.WrapErrParameterInvalidMsg("data_type %s mismatch with metric_type %s, supported: %v",
			dType.String(), t.String(), lo.Map(supported, func(m metric.MetricType, _ int) string { return m.String() }))
	}
	return nil
}
