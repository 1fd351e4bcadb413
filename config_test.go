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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "kaleidoscope")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	testCases := []struct {
		name    string
		file    string
		content string
	}{
		{
			"toml",
			"config.toml",
			`log_level = "debug"
cache_size = 16

[operators]
"/" = 30
"=" = "2"
`,
		},
		{
			"yaml",
			"config.yaml",
			`log_level: debug
cache_size: "16"
operators:
  "/": 30
  "=": "2"
`,
		},
		{
			"yml",
			"config.yml",
			`log_level: debug
cache_size: 16
operators: {"/": "30", "=": 2}
`,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			cfg, err := LoadConfig(writeConfig(t, tt.file, tt.content))
			require.NoError(err)
			require.Equal(&Config{
				Operators: map[string]int{"/": 30, "=": 2},
				LogLevel:  "debug",
				CacheSize: 16,
			}, cfg)

			_, err = New(cfg)
			require.NoError(err)
		})
	}
}

func TestLoadConfigEmpty(t *testing.T) {
	require := require.New(t)
	cfg, err := LoadConfig(writeConfig(t, "empty.toml", ""))
	require.NoError(err)
	require.Equal(&Config{}, cfg)
	require.Equal(Config{LogLevel: "info", CacheSize: DefaultCacheSize}, cfg.normalize())
}

func TestLoadConfigErrors(t *testing.T) {
	require := require.New(t)

	_, err := LoadConfig(writeConfig(t, "config.json", `{}`))
	require.True(ErrUnknownConfigFormat.Is(err))

	_, err = LoadConfig(writeConfig(t, "config.yaml", "operators:\n  \"/\": high\n"))
	require.True(ErrInvalidConfig.Is(err))

	_, err = LoadConfig(writeConfig(t, "config.toml", "cache_size = \"big\"\n"))
	require.True(ErrInvalidConfig.Is(err))

	_, err = LoadConfig(writeConfig(t, "config.toml", "log_level = \n"))
	require.Error(err)

	_, err = LoadConfig(filepath.Join(os.TempDir(), "does-not-exist.toml"))
	require.Error(err)
}

func TestNormalize(t *testing.T) {
	require := require.New(t)

	var nilCfg *Config
	require.Equal(Config{LogLevel: "info", CacheSize: DefaultCacheSize}, nilCfg.normalize())
	require.Equal(
		Config{LogLevel: "warn", CacheSize: -1},
		(&Config{LogLevel: "warn", CacheSize: -1}).normalize(),
	)
}
