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
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/milvus-io/metricregistry/pkg/util/merr"
)

// Entry pairs a canonical name with the metric type it selects.
type Entry struct {
	Name string
	Type MetricType
}

// DefaultEntries returns the fixed registration list of all supported metrics.
func DefaultEntries() []Entry {
	return []Entry{
		{Name: L2, Type: MetricL2},
		{Name: IP, Type: MetricInnerProduct},
		{Name: JACCARD, Type: MetricJaccard},
		{Name: TANIMOTO, Type: MetricTanimoto},
		{Name: HAMMING, Type: MetricHamming},
		{Name: SUBSTRUCTURE, Type: MetricSubstructure},
		{Name: SUPERSTRUCTURE, Type: MetricSuperstructure},
	}
}

// Normalize is applied to names on both registration and lookup.
// Surrounding whitespace is dropped and the rest is lower cased without
// regard to the process locale.
func Normalize(name string) string {
	// cases.Caser keeps state, never share one between goroutines.
	return cases.Lower(language.Und).String(strings.TrimSpace(name))
}

// Registry maps metric names to metric types. It is immutable once built,
// so lookups from any number of goroutines need no locking.
type Registry struct {
	byName map[string]MetricType
	byType map[MetricType]string
}

// BuildTable builds a registry from entries. Every defect in the list is
// reported in the returned error: empty names, unsupported types, and names
// or types registered twice.
func BuildTable(entries []Entry) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]MetricType, len(entries)),
		byType: make(map[MetricType]string, len(entries)),
	}

	var errs []error
	for _, entry := range entries {
		key := Normalize(entry.Name)
		if key == "" {
			errs = append(errs, merr.WrapErrParameterInvalidMsg("empty name for metric type %s", entry.Type))
			continue
		}
		if !entry.Type.IsValid() {
			errs = append(errs, merr.WrapErrParameterInvalidMsg("unsupported metric type %d for name %s", int32(entry.Type), entry.Name))
			continue
		}
		if _, ok := r.byName[key]; ok {
			errs = append(errs, merr.WrapErrMetricTypeConflict(key, "duplicate name"))
			continue
		}
		if _, ok := r.byType[entry.Type]; ok {
			errs = append(errs, merr.WrapErrMetricTypeConflict(entry.Type.String(), "duplicate type"))
			continue
		}
		r.byName[key] = entry.Type
		r.byType[entry.Type] = entry.Name
	}
	if err := merr.Combine(errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// MustBuildTable is like BuildTable but panics on a bad registration list.
func MustBuildTable(entries []Entry) *Registry {
	r, err := BuildTable(entries)
	if err != nil {
		panic(err)
	}
	return r
}

// NewRegistry builds the registry of all supported metric types.
func NewRegistry() *Registry {
	return MustBuildTable(DefaultEntries())
}

// NewLazyRegistry returns a getter which builds the registry on first call.
// Concurrent first callers block until the table is complete.
func NewLazyRegistry() func() *Registry {
	return sync.OnceValue(NewRegistry)
}

// Resolve returns the metric type registered under name, ignoring case and
// surrounding whitespace. An unknown name yields a *MetricTypeNotFoundError
// carrying name exactly as given.
func (r *Registry) Resolve(name string) (MetricType, error) {
	if t, ok := r.byName[Normalize(name)]; ok {
		return t, nil
	}
	return MetricInvalid, &MetricTypeNotFoundError{Input: name}
}

// Name returns the canonical name of t.
func (r *Registry) Name(t MetricType) (string, bool) {
	name, ok := r.byType[t]
	return name, ok
}

// Names returns all canonical names in lexical order.
func (r *Registry) Names() []string {
	names := lo.Values(r.byType)
	sort.Strings(names)
	return names
}

// Len returns the number of registered metric types.
func (r *Registry) Len() int {
	return len(r.byName)
}
