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

package paramtable

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentParam(t *testing.T) {
	params := NewComponentParam(NewBaseTable(ConfigDir(t.TempDir()), SkipEnv()))

	t.Run("test commonConfig", func(t *testing.T) {
		Params := &params.CommonCfg

		assert.Equal(t, "IP", DefaultFloatMetricType)
		assert.Equal(t, "JACCARD", DefaultBinaryMetricType)
		assert.Equal(t, DefaultFloatMetricType, Params.DefaultFloatMetricType.GetValue())
		assert.Equal(t, DefaultBinaryMetricType, Params.DefaultBinaryMetricType.GetValue())

		params.Save(Params.DefaultFloatMetricType.Key, "l2")
		assert.Equal(t, "l2", Params.DefaultFloatMetricType.GetValue())
		params.Reset(Params.DefaultFloatMetricType.Key)
		assert.Equal(t, DefaultFloatMetricType, Params.DefaultFloatMetricType.GetValue())

		params.Save(Params.DefaultBinaryMetricType.Key, "")
		assert.NotPanics(t, func() { Params.DefaultBinaryMetricType.GetValue() })
		assert.Equal(t, "", Params.DefaultBinaryMetricType.GetValue())
		params.Reset(Params.DefaultBinaryMetricType.Key)
		assert.Equal(t, "JACCARD", Params.DefaultBinaryMetricType.GetValue())
	})

	t.Run("test logConfig", func(t *testing.T) {
		cfg := params.LogCfg.Config()
		assert.Equal(t, DefaultLogLevel, cfg.Level)
		assert.Equal(t, DefaultLogFormat, cfg.Format)
		assert.Equal(t, "", cfg.File.Filename)
		assert.Equal(t, DefaultLogMaxSize, cfg.File.MaxSize)
		assert.Equal(t, DefaultLogMaxAge, cfg.File.MaxDays)
		assert.Equal(t, DefaultLogMaxBackups, cfg.File.MaxBackups)

		params.Save(params.LogCfg.MaxSize.Key, "64")
		assert.Equal(t, 64, params.LogCfg.Config().File.MaxSize)
	})
}

func TestComponentParamFromYaml(t *testing.T) {
	dir := t.TempDir()
	content := "common:\n  defaultBinaryMetricType: HAMMING\nlog:\n  format: json\n  file:\n    filename: /tmp/metric.log\n"
	require.NoError(t, os.WriteFile(path.Join(dir, "milvus.yaml"), []byte(content), 0o600))

	params := NewComponentParam(NewBaseTable(ConfigDir(dir), SkipEnv()))
	assert.Equal(t, "HAMMING", params.CommonCfg.DefaultBinaryMetricType.GetValue())
	assert.Equal(t, "json", params.LogCfg.Format.GetValue())
	assert.Equal(t, "/tmp/metric.log", params.LogCfg.Config().File.Filename)
}
