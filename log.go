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

import "github.com/sirupsen/logrus"

// ParseIDLogField is the log field carrying the id of a parse.
const ParseIDLogField = "parseID"

// NewLogger returns a logger writing at the given logrus level.
func NewLogger(level string) (*logrus.Entry, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, ErrInvalidConfig.Wrap(err, "log_level")
	}

	l := logrus.New()
	l.SetLevel(lvl)
	return logrus.NewEntry(l), nil
}
