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
	"testing"

	"github.com/milvus-io/milvus-proto/go-api/v2/schemapb"
	"github.com/stretchr/testify/assert"

	"github.com/milvus-io/metricregistry/pkg/util/merr"
	"github.com/milvus-io/metricregistry/pkg/util/metric"
)

func Test_CheckMetricForDataType(t *testing.T) {
	cases := []struct {
		metric   metric.MetricType
		dType    schemapb.DataType
		errIsNil bool
	}{
		{metric.MetricL2, schemapb.DataType_FloatVector, true},
		{metric.MetricInnerProduct, schemapb.DataType_FloatVector, true},
		{metric.MetricHamming, schemapb.DataType_FloatVector, false},
		{metric.MetricJaccard, schemapb.DataType_BinaryVector, true},
		{metric.MetricTanimoto, schemapb.DataType_BinaryVector, true},
		{metric.MetricHamming, schemapb.DataType_BinaryVector, true},
		{metric.MetricSubstructure, schemapb.DataType_BinaryVector, true},
		{metric.MetricSuperstructure, schemapb.DataType_BinaryVector, true},
		{metric.MetricL2, schemapb.DataType_BinaryVector, false},
		{metric.MetricL2, schemapb.DataType_Int64, false},
		{metric.MetricInvalid, schemapb.DataType_FloatVector, false},
	}

	for _, test := range cases {
		err := CheckMetricForDataType(test.metric, test.dType)
		if test.errIsNil {
			assert.NoError(t, err)
		} else {
			assert.ErrorIs(t, err, merr.ErrParameterInvalid)
		}
	}
}

func Test_SupportedMetrics(t *testing.T) {
	assert.Equal(t, FloatMetrics, SupportedMetrics(schemapb.DataType_FloatVector))
	assert.Equal(t, BinaryMetrics, SupportedMetrics(schemapb.DataType_BinaryVector))
	assert.Nil(t, SupportedMetrics(schemapb.DataType_VarChar))

	for _, m := range FloatMetrics {
		assert.True(t, metric.IsFloatMetric(m))
	}
	for _, m := range BinaryMetrics {
		assert.True(t, metric.IsBinaryMetric(m))
	}
	assert.True(t, CheckMetricByValues(FloatVectorDefaultMetricType, FloatMetrics))
	assert.True(t, CheckMetricByValues(BinaryVectorDefaultMetricType, BinaryMetrics))
}
