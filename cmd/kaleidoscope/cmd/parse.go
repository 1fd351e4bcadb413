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

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newParseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the syntax tree of every top-level construct",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.engine(cmd)
			if err != nil {
				return err
			}

			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			// Print what could be parsed even if some construct failed.
			nodes, err := e.Parse(cmd.Context(), strings.NewReader(src))
			for _, n := range nodes {
				tree := n.DebugString()
				if !strings.HasSuffix(tree, "\n") {
					tree += "\n"
				}
				fmt.Fprint(cmd.OutOrStdout(), tree)
			}
			return err
		},
	}
}
