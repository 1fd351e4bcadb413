// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kaleidoscope

import (
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cast"
	yaml "gopkg.in/yaml.v2"
)

// DefaultCacheSize is the number of parsed sources kept by an Engine when
// the config does not say otherwise.
const DefaultCacheSize = 128

// Config of an Engine.
type Config struct {
	// Operators are binary operators registered on top of the builtin ones,
	// mapped to their precedence.
	Operators map[string]int
	// LogLevel is a logrus level name. Defaults to "info".
	LogLevel string
	// CacheSize is the number of parsed sources to keep. Zero means
	// DefaultCacheSize, a negative value disables the cache.
	CacheSize int
}

// fileConfig is the on-disk representation of Config. Numbers may be
// written as strings.
type fileConfig struct {
	Operators map[string]interface{} `toml:"operators" yaml:"operators"`
	LogLevel  string                 `toml:"log_level" yaml:"log_level"`
	CacheSize interface{}            `toml:"cache_size" yaml:"cache_size"`
}

// LoadConfig reads a config file. The format is chosen by the file
// extension: .toml, .yaml or .yml.
func LoadConfig(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &fc); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownConfigFormat.New(path)
	}

	return fc.toConfig()
}

func (fc *fileConfig) toConfig() (*Config, error) {
	cfg := &Config{LogLevel: fc.LogLevel}

	if fc.CacheSize != nil {
		size, err := cast.ToIntE(fc.CacheSize)
		if err != nil {
			return nil, ErrInvalidConfig.Wrap(err, "cache_size")
		}
		cfg.CacheSize = size
	}

	if len(fc.Operators) > 0 {
		cfg.Operators = make(map[string]int, len(fc.Operators))
		for op, v := range fc.Operators {
			prec, err := cast.ToIntE(v)
			if err != nil {
				return nil, ErrInvalidConfig.Wrap(err, "operators."+op)
			}
			cfg.Operators[op] = prec
		}
	}

	return cfg, nil
}

// normalize returns a copy of the config with defaults filled in.
func (c *Config) normalize() Config {
	if c == nil {
		return Config{LogLevel: "info", CacheSize: DefaultCacheSize}
	}

	out := *c
	if out.LogLevel == "" {
		out.LogLevel = "info"
	}
	if out.CacheSize == 0 {
		out.CacheSize = DefaultCacheSize
	}

	return out
}

// operators returns the configured operators in a stable order.
func (c *Config) operators() []string {
	ops := make([]string, 0, len(c.Operators))
	for op := range c.Operators {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}
