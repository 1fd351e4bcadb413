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

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrInvalidConfig is returned when a configuration value is not valid.
	ErrInvalidConfig = errors.NewKind("invalid config value for %s")

	// ErrUnknownConfigFormat is returned when the extension of a config file
	// is not one of .toml, .yaml or .yml.
	ErrUnknownConfigFormat = errors.NewKind("unknown config format for file %s")

	// ErrRoundTrip is returned when the canonical form of a source does not
	// reparse to the same trees.
	ErrRoundTrip = errors.NewKind("canonical form does not reparse to the same tree: %s")
)
