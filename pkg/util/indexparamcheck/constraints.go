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

import "github.com/milvus-io/metricregistry/pkg/util/metric"

// FloatMetrics is a set of all metric types supported for float vector.
var FloatMetrics = []metric.MetricType{metric.MetricL2, metric.MetricInnerProduct} // const

// BinaryMetrics is a set of all metric types supported for binary vector.
var BinaryMetrics = []metric.MetricType{metric.MetricJaccard, metric.MetricTanimoto, metric.MetricHamming, metric.MetricSubstructure, metric.MetricSuperstructure} // const

// Defaults applied when index params carry no metric_type.
const (
	FloatVectorDefaultMetricType  = metric.MetricInnerProduct
	BinaryVectorDefaultMetricType = metric.MetricJaccard
)
