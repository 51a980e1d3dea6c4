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
	"testing"

	"github.com/milvus-io/milvus-proto/go-api/v2/commonpb"
	"github.com/stretchr/testify/assert"
)

func TestCloneKeyValuePairs(t *testing.T) {
	type args struct {
		pairs KeyValuePairs
	}
	tests := []struct {
		name string
		args args
		want KeyValuePairs
	}{
		{
			args: args{
				pairs: nil,
			},
		},
		{
			args: args{
				pairs: []*commonpb.KeyValuePair{
					{Key: "k1", Value: "v1"},
					{Key: "k2", Value: "v2"},
					{Key: "k3", Value: "v3"},
					{Key: "k4", Value: "v4"},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clone := CloneKeyValuePairs(tt.args.pairs)
			assert.True(t, clone.Equal(tt.args.pairs))
		})
	}
}

func TestKeyValuePairsGet(t *testing.T) {
	pairs := KeyValuePairs{
		{Key: IndexTypeKey, Value: "HNSW"},
		{Key: MetricTypeKey, Value: "ip"},
		{Key: MetricTypeKey, Value: "L2"},
	}

	v, ok := pairs.Get(MetricTypeKey)
	assert.True(t, ok)
	assert.Equal(t, "L2", v)

	_, ok = pairs.Get(DimKey)
	assert.False(t, ok)

	_, ok = KeyValuePairs(nil).Get(MetricTypeKey)
	assert.False(t, ok)
}

func TestNewKeyValuePairs(t *testing.T) {
	kvs := map[string]string{MetricTypeKey: "HAMMING", DimKey: "128"}
	pairs := NewKeyValuePairs(kvs)
	assert.Len(t, pairs, 2)
	assert.Equal(t, kvs, pairs.ToMap())
	assert.True(t, pairs.Equal(pairs.Clone()))
	assert.False(t, pairs.Equal(KeyValuePairs{{Key: DimKey, Value: "128"}}))
}
