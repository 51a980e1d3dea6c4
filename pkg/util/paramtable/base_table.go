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

package paramtable

import (
	"os"
	"path"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/milvus-io/metricregistry/pkg/log"
)

const (
	DefaultLogFormat  = "text"
	DefaultLogLevel   = "info"
	DefaultEnvPrefix  = "MILVUS"
	DefaultConfDirEnv = "MILVUSCONF"
)

var ErrKeyNotFound = errors.New("key not found")

var defaultYaml = []string{"milvus.yaml", "user.yaml"}

// BaseTable the basics of paramtable
type BaseTable struct {
	mu        sync.RWMutex
	v         *viper.Viper
	overrides map[string]string

	configDir string
	skipEnv   bool
	YamlFiles []string
}

type Option func(*BaseTable)

// Files sets the yaml files to load, relative to the config dir.
func Files(files ...string) Option {
	return func(bt *BaseTable) {
		bt.YamlFiles = files
	}
}

// ConfigDir sets the directory yaml files are loaded from.
func ConfigDir(dir string) Option {
	return func(bt *BaseTable) {
		bt.configDir = dir
	}
}

// SkipEnv disables environment overrides.
func SkipEnv() Option {
	return func(bt *BaseTable) {
		bt.skipEnv = true
	}
}

// NewBaseTable loads yaml files from the config dir and, unless disabled,
// lets MILVUS_ prefixed environment variables override them.
func NewBaseTable(opts ...Option) *BaseTable {
	bt := &BaseTable{
		overrides: make(map[string]string),
	}
	for _, opt := range opts {
		opt(bt)
	}
	bt.init()
	return bt
}

func (gp *BaseTable) init() {
	if len(gp.YamlFiles) == 0 {
		gp.YamlFiles = defaultYaml
	}
	gp.v = viper.New()
	if !gp.skipEnv {
		gp.v.SetEnvPrefix(DefaultEnvPrefix)
		gp.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		gp.v.AutomaticEnv()
	}
	gp.initConfigsFromLocal()
}

func (gp *BaseTable) initConfigsFromLocal() {
	if gp.configDir == "" {
		gp.configDir = gp.initConfPath()
	}
	gp.v.SetConfigType("yaml")
	for _, file := range gp.YamlFiles {
		filePath := path.Join(gp.configDir, file)
		if _, err := os.Stat(filePath); err != nil {
			continue
		}
		gp.v.SetConfigFile(filePath)
		if err := gp.v.MergeInConfig(); err != nil {
			log.Warn("init baseTable with file failed", zap.String("configFile", filePath), zap.Error(err))
		}
	}
}

func (gp *BaseTable) initConfPath() string {
	// check if user set conf dir through env
	if configDir, ok := os.LookupEnv(DefaultConfDirEnv); ok {
		return configDir
	}
	runPath, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return path.Join(runPath, "configs")
}

// GetConfigDir returns the config directory
func (gp *BaseTable) GetConfigDir() string {
	return gp.configDir
}

// Load loads an object with @key.
func (gp *BaseTable) Load(key string) (string, error) {
	key = strings.ToLower(key)
	gp.mu.RLock()
	defer gp.mu.RUnlock()
	if value, ok := gp.overrides[key]; ok {
		return value, nil
	}
	if !gp.v.IsSet(key) {
		return "", errors.Wrap(ErrKeyNotFound, key)
	}
	raw := gp.v.Get(key)
	if items, ok := raw.([]interface{}); ok {
		return strings.Join(cast.ToStringSlice(items), ","), nil
	}
	return cast.ToStringE(raw)
}

func (gp *BaseTable) Get(key string) string {
	return gp.GetWithDefault(key, "")
}

// GetWithDefault loads an object with @key. If the object does not exist, @defaultValue will be returned.
func (gp *BaseTable) GetWithDefault(key, defaultValue string) string {
	str, err := gp.Load(key)
	if err != nil {
		return defaultValue
	}
	return str
}

// Remove Config by key
func (gp *BaseTable) Remove(key string) error {
	gp.mu.Lock()
	defer gp.mu.Unlock()
	delete(gp.overrides, strings.ToLower(key))
	return nil
}

// Update Config
func (gp *BaseTable) Save(key, value string) error {
	gp.mu.Lock()
	defer gp.mu.Unlock()
	gp.overrides[strings.ToLower(key)] = value
	return nil
}

// Reset Config to default value
func (gp *BaseTable) Reset(key string) error {
	return gp.Remove(key)
}

// Keys returns all keys known from files, environment bindings and overrides.
func (gp *BaseTable) Keys() []string {
	gp.mu.RLock()
	defer gp.mu.RUnlock()
	return lo.Uniq(append(gp.v.AllKeys(), lo.Keys(gp.overrides)...))
}
