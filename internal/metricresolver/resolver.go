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

// Package metricresolver owns the metric registry of a running engine and
// resolves the metric_type of index params against it.
package metricresolver

import (
	"github.com/cockroachdb/errors"
	"github.com/milvus-io/milvus-proto/go-api/v2/schemapb"
	"go.uber.org/zap"

	"github.com/milvus-io/metricregistry/pkg/common"
	"github.com/milvus-io/metricregistry/pkg/log"
	"github.com/milvus-io/metricregistry/pkg/metrics"
	"github.com/milvus-io/metricregistry/pkg/util/indexparamcheck"
	"github.com/milvus-io/metricregistry/pkg/util/metric"
	"github.com/milvus-io/metricregistry/pkg/util/paramtable"
)

type Resolver struct {
	registry *metric.Registry

	defaultFloat  metric.MetricType
	defaultBinary metric.MetricType
}

// NewResolver validates the configured default metric types against registry.
// A misconfigured default is reported here so the engine fails before serving.
func NewResolver(registry *metric.Registry, params *paramtable.ComponentParam) (*Resolver, error) {
	r := &Resolver{registry: registry}

	var err error
	r.defaultFloat, err = r.resolveDefault(&params.CommonCfg.DefaultFloatMetricType, schemapb.DataType_FloatVector)
	if err != nil {
		return nil, err
	}
	r.defaultBinary, err = r.resolveDefault(&params.CommonCfg.DefaultBinaryMetricType, schemapb.DataType_BinaryVector)
	if err != nil {
		return nil, err
	}

	log.Info("metric resolver initialized",
		log.FieldComponent("metricresolver"),
		zap.Strings("metrics", registry.Names()),
		log.FieldMetricType("defaultFloatMetric", r.defaultFloat),
		log.FieldMetricType("defaultBinaryMetric", r.defaultBinary))
	return r, nil
}

func (r *Resolver) resolveDefault(item *paramtable.ParamItem, dType schemapb.DataType) (metric.MetricType, error) {
	t, err := r.registry.Resolve(item.GetValue())
	if err == nil {
		err = indexparamcheck.CheckMetricForDataType(t, dType)
	}
	if err != nil {
		return metric.MetricInvalid, errors.Wrapf(err, "invalid config %s", item.Key)
	}
	return t, nil
}

// Registry returns the registry the resolver was built with.
func (r *Resolver) Registry() *metric.Registry {
	return r.registry
}

// Resolve looks name up in the registry and records the outcome.
func (r *Resolver) Resolve(name string) (metric.MetricType, error) {
	t, err := r.registry.Resolve(name)
	if err != nil {
		metrics.ObserveResolve("", false)
		return t, err
	}
	metrics.ObserveResolve(t.String(), true)
	return t, nil
}

// DefaultMetric returns the configured metric type for vectors of dType.
func (r *Resolver) DefaultMetric(dType schemapb.DataType) (metric.MetricType, error) {
	switch dType {
	case schemapb.DataType_FloatVector:
		return r.defaultFloat, nil
	case schemapb.DataType_BinaryVector:
		return r.defaultBinary, nil
	}
	return metric.MetricInvalid, indexparamcheck.CheckMetricForDataType(metric.MetricInvalid, dType)
}

// ResolveIndexParams returns the metric type selected by the metric_type
// index param, or the default for dType when the param is absent. A present
// but unknown value is an error, never replaced by the default.
func (r *Resolver) ResolveIndexParams(pairs common.KeyValuePairs, dType schemapb.DataType) (metric.MetricType, error) {
	raw, ok := pairs.Get(common.MetricTypeKey)
	if !ok {
		return r.DefaultMetric(dType)
	}
	t, err := r.Resolve(raw)
	if err != nil {
		return metric.MetricInvalid, err
	}
	if err := indexparamcheck.CheckMetricForDataType(t, dType); err != nil {
		return metric.MetricInvalid, err
	}
	return t, nil
}
