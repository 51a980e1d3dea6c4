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

package common

import (
	"github.com/milvus-io/milvus-proto/go-api/v2/commonpb"
	"github.com/samber/lo"
)

type KeyValuePairs []*commonpb.KeyValuePair

func (pairs KeyValuePairs) Clone() KeyValuePairs {
	clone := make(KeyValuePairs, 0, len(pairs))
	for _, pair := range pairs {
		clone = append(clone, &commonpb.KeyValuePair{
			Key:   pair.GetKey(),
			Value: pair.GetValue(),
		})
	}
	return clone
}

func (pairs KeyValuePairs) ToMap() map[string]string {
	return lo.SliceToMap(pairs, func(pair *commonpb.KeyValuePair) (string, string) {
		return pair.GetKey(), pair.GetValue()
	})
}

func (pairs KeyValuePairs) Equal(other KeyValuePairs) bool {
	return MapEqual(pairs.ToMap(), other.ToMap())
}

// Get returns the value of the last pair named key.
func (pairs KeyValuePairs) Get(key string) (string, bool) {
	pair, _, ok := lo.FindLastIndexOf(pairs, func(pair *commonpb.KeyValuePair) bool {
		return pair.GetKey() == key
	})
	if !ok {
		return "", false
	}
	return pair.GetValue(), true
}

func CloneKeyValuePairs(pairs KeyValuePairs) KeyValuePairs {
	return pairs.Clone()
}

func NewKeyValuePairs(kvs map[string]string) KeyValuePairs {
	return lo.MapToSlice(kvs, func(k, v string) *commonpb.KeyValuePair {
		return &commonpb.KeyValuePair{Key: k, Value: v}
	})
}
