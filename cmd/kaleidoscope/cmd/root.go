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
	"io/ioutil"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	kaleidoscope "github.com/dolthub/go-kaleidoscope"
)

var rootCmd = newRootCmd()

// Execute runs the kaleidoscope command line.
func Execute() error {
	return rootCmd.Execute()
}

type options struct {
	cfgFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := new(options)

	root := &cobra.Command{
		Use:   "kaleidoscope",
		Short: "Front end of the Kaleidoscope language",
		Long: `kaleidoscope tokenizes and parses Kaleidoscope source code.

Commands read the file given as argument, or stdin when there is none.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "trace every token and grammar rule")

	root.AddCommand(
		newTokensCmd(opts),
		newParseCmd(opts),
		newFmtCmd(opts),
	)
	return root
}

// engine builds the engine described by the flags. Logs go to the
// command's stderr.
func (o *options) engine(cmd *cobra.Command) (*kaleidoscope.Engine, error) {
	var cfg *kaleidoscope.Config
	if o.cfgFile != "" {
		c, err := kaleidoscope.LoadConfig(o.cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = c
	}

	if o.verbose {
		if cfg == nil {
			cfg = new(kaleidoscope.Config)
		}
		cfg.LogLevel = logrus.TraceLevel.String()
	}

	e, err := kaleidoscope.New(cfg)
	if err != nil {
		return nil, err
	}

	e.Logger().Logger.SetOutput(cmd.ErrOrStderr())
	return e, nil
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		b, err := ioutil.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	in := cmd.InOrStdin()
	if in == nil {
		in = os.Stdin
	}
	b, err := ioutil.ReadAll(in)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
