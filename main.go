// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:          "openhole",
		Short:        "Openhole -- structured meshes of open-hole specimens",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			io.Verbose = verbose
			chk.Verbose = verbose
			if verbose {
				io.PfWhite("\nOpenhole -- structured meshes of open-hole specimens\n\n")
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show messages")
	cmd.AddCommand(geoCmd(), convCmd(), vtuCmd())
	return cmd
}
