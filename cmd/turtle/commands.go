// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/turtle/turtle"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the turtle commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := termenv.NewOutput(cmd.OutOrStdout())
			for _, k := range turtle.KindsValues() {
				name := out.String(fmt.Sprintf("%-12s", k.String())).Bold()
				if _, err := fmt.Fprintf(out, "%s %s\n", name, k.Desc()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
