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

package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricTypeString(t *testing.T) {
	assert.Equal(t, "L2", MetricL2.String())
	assert.Equal(t, "IP", MetricInnerProduct.String())
	assert.Equal(t, "SUPERSTRUCTURE", MetricSuperstructure.String())
	assert.Equal(t, "Invalid(0)", MetricInvalid.String())
	assert.Equal(t, "Invalid(99)", MetricType(99).String())
}

func TestMetricTypeCategory(t *testing.T) {
	for _, entry := range DefaultEntries() {
		assert.True(t, entry.Type.IsValid())
		assert.NotEqual(t, IsFloatMetric(entry.Type), IsBinaryMetric(entry.Type), entry.Name)
	}
	assert.True(t, IsFloatMetric(MetricL2))
	assert.True(t, IsBinaryMetric(MetricHamming))
	assert.False(t, MetricInvalid.IsValid())
	assert.False(t, IsFloatMetric(MetricInvalid))
	assert.False(t, IsBinaryMetric(MetricInvalid))
}
