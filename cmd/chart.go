// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/InsuvaiK/moody/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var chartOpts struct {
	savePdf bool
	dirout  string
	mpl     bool
	Re      float64
	f       float64
}

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Compute the Moody chart and save it",
		Example: `  moody chart --savepdf --dirout /tmp/moody
  moody chart --savepdf --re 99700 --f 0.0178 --mpl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("savepdf") {
				cfg.SavePdf = chartOpts.savePdf
			}
			if cmd.Flags().Changed("dirout") {
				cfg.DirOut = chartOpts.dirout
			}
			cc := cfg.ChartConfig()
			if cmd.Flags().Changed("re") || cmd.Flags().Changed("f") {
				if chartOpts.Re <= 0 || chartOpts.f <= 0 {
					return chk.Err("both --re and --f must be positive to mark a point")
				}
				cc.LastRe, cc.LastF = &chartOpts.Re, &chartOpts.f
			}

			chart, err := out.NewChart(cc)
			if err != nil {
				return err
			}
			fnames, err := chart.SavePDF(cfg.DirOut)
			if err != nil {
				return err
			}
			if len(fnames) == 0 && cfg.Verbose {
				io.Pfyel("chart computed; use --savepdf to write PDF files\n")
			}
			if chartOpts.mpl {
				chart.PlotMpl(cfg.DirOut, "moody_chart")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&chartOpts.savePdf, "savepdf", false, "write vertical and horizontal PDF files")
	cmd.Flags().StringVar(&chartOpts.dirout, "dirout", "/tmp/moody", "directory for output files")
	cmd.Flags().BoolVar(&chartOpts.mpl, "mpl", false, "also draw the chart with matplotlib")
	cmd.Flags().Float64Var(&chartOpts.Re, "re", 0, "Reynolds number of point to mark")
	cmd.Flags().Float64Var(&chartOpts.f, "f", 0, "friction factor of point to mark")
	return cmd
}
