// Copyright (C) 2019-2020 Zilliz. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License
// is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express
// or implied. See the License for the specific language governing permissions and limitations under the License.

package metric

import "fmt"

// MetricType identifies the distance function used to compare two vectors.
type MetricType int32

// MetricType definitions
const (
	// MetricInvalid is the zero value, it is never registered
	MetricInvalid MetricType = iota

	// MetricL2 represents Euclidean distance
	MetricL2

	// MetricInnerProduct represents inner product distance
	MetricInnerProduct

	// MetricJaccard represents jaccard distance
	MetricJaccard

	// MetricTanimoto represents tanimoto distance
	MetricTanimoto

	// MetricHamming represents hamming distance
	MetricHamming

	// MetricSubstructure represents substructure distance
	MetricSubstructure

	// MetricSuperstructure represents superstructure distance
	MetricSuperstructure
)

// Canonical metric names, in the spelling used by knowhere.
const (
	L2             = "L2"
	IP             = "IP"
	JACCARD        = "JACCARD"
	TANIMOTO       = "TANIMOTO"
	HAMMING        = "HAMMING"
	SUBSTRUCTURE   = "SUBSTRUCTURE"
	SUPERSTRUCTURE = "SUPERSTRUCTURE"
)

var canonicalNames = [...]string{
	MetricL2:             L2,
	MetricInnerProduct:   IP,
	MetricJaccard:        JACCARD,
	MetricTanimoto:       TANIMOTO,
	MetricHamming:        HAMMING,
	MetricSubstructure:   SUBSTRUCTURE,
	MetricSuperstructure: SUPERSTRUCTURE,
}

func (t MetricType) String() string {
	if t > MetricInvalid && int(t) < len(canonicalNames) {
		return canonicalNames[t]
	}
	return fmt.Sprintf("Invalid(%d)", int32(t))
}

// IsValid reports whether t is one of the supported metric types.
func (t MetricType) IsValid() bool {
	return t > MetricInvalid && int(t) < len(canonicalNames)
}

// IsFloatMetric reports whether t applies to float vectors.
func IsFloatMetric(t MetricType) bool {
	return t == MetricL2 || t == MetricInnerProduct
}

// IsBinaryMetric reports whether t applies to binary vectors.
func IsBinaryMetric(t MetricType) bool {
	switch t {
	case MetricJaccard, MetricTanimoto, MetricHamming, MetricSubstructure, MetricSuperstructure:
		return true
	}
	return false
}
