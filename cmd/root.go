// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface
package cmd

import (
	"github.com/InsuvaiK/moody/inp"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var (
	cfgFile string // configuration file
	verbose bool   // show messages
)

// newRootCmd builds the command tree. Flags are bound again on every call
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "moody",
		Short: "Reynolds number, friction factor and Moody chart for pipe flows",
		Long: `Computes the Reynolds number and the Darcy friction factor of pipe flows
and draws the Moody chart.

Commands:
  serve  - web pages with the calculator and the chart
  calc   - friction factor of one fluid sample
  chart  - Moody chart as PDF files (and matplotlib figure)`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "configuration file (.mdy)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", true, "show messages")
	root.AddCommand(newServeCmd(), newCalcCmd(), newChartCmd())
	return root
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

// loadConfig reads the configuration and applies the persistent flags
func loadConfig(cmd *cobra.Command) (cfg *inp.Config, err error) {
	cfg, err = inp.ReadConfig(cfgFile)
	if err != nil {
		return
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	io.Verbose = cfg.Verbose
	return
}
