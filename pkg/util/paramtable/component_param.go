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
	"strconv"
	"sync"

	"github.com/milvus-io/metricregistry/pkg/log"
	"github.com/milvus-io/metricregistry/pkg/util/indexparamcheck"
)

var (
	DefaultFloatMetricType  = indexparamcheck.FloatVectorDefaultMetricType.String()
	DefaultBinaryMetricType = indexparamcheck.BinaryVectorDefaultMetricType.String()
)

const (
	DefaultLogMaxSize    = 300
	DefaultLogMaxAge     = 10
	DefaultLogMaxBackups = 20
)

// ComponentParam is used to quickly and easily access all components' configurations.
type ComponentParam struct {
	once      sync.Once
	baseTable *BaseTable

	CommonCfg commonConfig
	LogCfg    logConfig
}

// NewComponentParam returns a ComponentParam initialized from base.
func NewComponentParam(base *BaseTable) *ComponentParam {
	p := &ComponentParam{}
	p.Init(base)
	return p
}

// Init initialize once
func (p *ComponentParam) Init(base *BaseTable) {
	p.once.Do(func() {
		p.baseTable = base
		p.CommonCfg.init(base)
		p.LogCfg.init(base)
	})
}

func (p *ComponentParam) Save(key string, value string) error {
	return p.baseTable.Save(key, value)
}

func (p *ComponentParam) Reset(key string) error {
	return p.baseTable.Reset(key)
}

// /////////////////////////////////////////////////////////////////////////////
// --- common ---
type commonConfig struct {
	DefaultFloatMetricType  ParamItem `refreshable:"false"`
	DefaultBinaryMetricType ParamItem `refreshable:"false"`
}

func (p *commonConfig) init(base *BaseTable) {
	p.DefaultFloatMetricType = ParamItem{
		Key:          "common.defaultFloatMetricType",
		Version:      "2.0.0",
		DefaultValue: DefaultFloatMetricType,
		Doc:          "metric type used for float vector indexes when metric_type is absent",
		Export:       true,
	}
	p.DefaultFloatMetricType.Init(base)

	p.DefaultBinaryMetricType = ParamItem{
		Key:          "common.defaultBinaryMetricType",
		Version:      "2.0.0",
		DefaultValue: DefaultBinaryMetricType,
		Doc:          "metric type used for binary vector indexes when metric_type is absent",
		Export:       true,
	}
	p.DefaultBinaryMetricType.Init(base)
}

// /////////////////////////////////////////////////////////////////////////////
// --- log ---
type logConfig struct {
	Level      ParamItem `refreshable:"false"`
	Format     ParamItem `refreshable:"false"`
	FileName   ParamItem `refreshable:"false"`
	MaxSize    ParamItem `refreshable:"false"`
	MaxAge     ParamItem `refreshable:"false"`
	MaxBackups ParamItem `refreshable:"false"`
}

func (l *logConfig) init(base *BaseTable) {
	l.Level = ParamItem{
		Key:          "log.level",
		DefaultValue: DefaultLogLevel,
		Version:      "2.0.0",
		Doc:          "Only supports debug, info, warn, error, panic, or fatal. Default 'info'.",
		Export:       true,
	}
	l.Level.Init(base)

	l.Format = ParamItem{
		Key:          "log.format",
		DefaultValue: DefaultLogFormat,
		Version:      "2.0.0",
		Doc:          "Milvus log format. Option: text and JSON",
		Export:       true,
	}
	l.Format.Init(base)

	l.FileName = ParamItem{
		Key:     "log.file.filename",
		Version: "2.0.0",
		Doc:     "Log file path, empty means logging to stdout",
		Export:  true,
	}
	l.FileName.Init(base)

	l.MaxSize = ParamItem{
		Key:          "log.file.maxSize",
		DefaultValue: strconv.Itoa(DefaultLogMaxSize),
		Version:      "2.0.0",
		Doc:          "The maximum size of a log file, unit: MB.",
		Export:       true,
	}
	l.MaxSize.Init(base)

	l.MaxAge = ParamItem{
		Key:          "log.file.maxAge",
		DefaultValue: strconv.Itoa(DefaultLogMaxAge),
		Version:      "2.0.0",
		Doc:          "The maximum retention time before a log file is automatically cleared, unit: day.",
		Export:       true,
	}
	l.MaxAge.Init(base)

	l.MaxBackups = ParamItem{
		Key:          "log.file.maxBackups",
		DefaultValue: strconv.Itoa(DefaultLogMaxBackups),
		Version:      "2.0.0",
		Doc:          "The maximum number of log files to back up.",
		Export:       true,
	}
	l.MaxBackups.Init(base)
}

// Config converts the log params into a log.Config.
func (l *logConfig) Config() *log.Config {
	return &log.Config{
		Level:  l.Level.GetValue(),
		Format: l.Format.GetValue(),
		File: log.FileLogConfig{
			Filename:   l.FileName.GetValue(),
			MaxSize:    l.MaxSize.GetAsInt(),
			MaxDays:    l.MaxAge.GetAsInt(),
			MaxBackups: l.MaxBackups.GetAsInt(),
		},
	}
}
