// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command turtle runs turtle programs and prints or draws the
// resulting paths.
package main

import (
	"os"

	"cogentcore.org/turtle/base/logx"
	"github.com/spf13/cobra"
)

// app holds the state shared by all subcommands.
type app struct {
	config     *Config
	configFile string
	vv, v, q   bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "turtle",
		Short:         "Run 3D turtle programs and output their paths",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(a.vv, a.v, a.q)
			logx.SetDefaultLogger()
			var err error
			if a.configFile != "" {
				a.config, err = LoadConfig(true, a.configFile)
			} else {
				a.config, err = LoadConfig(false, configFiles()...)
			}
			return err
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file to use instead of "+ConfigFile)
	pf.BoolVar(&a.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&a.v, "verbose", "v", false, "show informational messages")
	pf.BoolVarP(&a.q, "quiet", "q", false, "only show errors")

	root.AddCommand(newRunCmd(a), newWatchCmd(a), newCommandsCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Stderr.WriteString(logx.ErrorColor(err.Error()) + "\n")
		os.Exit(1)
	}
}
