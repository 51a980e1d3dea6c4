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

import "github.com/milvus-io/metricregistry/pkg/util/merr"

// MetricTypeNotFoundError is returned when a name matches no registered
// metric type. It matches merr.ErrMetricTypeNotFound.
type MetricTypeNotFoundError struct {
	// Input is the name as the caller passed it, before normalization.
	Input string
}

func (e *MetricTypeNotFoundError) Error() string {
	return "metric type not found: (" + e.Input + ")"
}

func (e *MetricTypeNotFoundError) Unwrap() error {
	return merr.ErrMetricTypeNotFound
}
