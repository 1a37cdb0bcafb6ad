// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/InsuvaiK/moody/mdl/flow"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute Reynolds number and friction factor",
		Example: `  moody calc --viscosity 0.001 --density 997 --velocity 1 --diameter 0.1
  moody calc --velocity 0.01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			sample, err := cfg.Sample()
			if err != nil {
				return err
			}
			for _, f := range []struct {
				name string
				v    *float64
			}{
				{"viscosity", &sample.Viscosity},
				{"density", &sample.Density},
				{"velocity", &sample.Velocity},
				{"diameter", &sample.Diameter},
			} {
				if cmd.Flags().Changed(f.name) {
					*f.v, _ = cmd.Flags().GetFloat64(f.name)
				}
			}
			res, err := flow.Calc(sample)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if cfg.Verbose {
				fmt.Fprintf(w, "\n%v\n", io.ArgsTable("INPUT",
					"viscosity [Pa·s]", "viscosity", sample.Viscosity,
					"density [kg/m³]", "density", sample.Density,
					"velocity [m/s]", "velocity", sample.Velocity,
					"diameter [m]", "diameter", sample.Diameter,
				))
			}
			fmt.Fprintf(w, "The Reynold's number is %v\n", res.Reynolds)
			fmt.Fprintf(w, "%s\n", res.Regime.Describe())
			fmt.Fprintf(w, "The Friction factor of the flow is %v\n", res.Factor)
			return nil
		},
	}

	cmd.Flags().Float64("viscosity", 0.001, "viscosity of the fluid [Pa·s]")
	cmd.Flags().Float64("density", 997, "density [kg/m³]")
	cmd.Flags().Float64("velocity", 1, "velocity/flow speed [m/s]")
	cmd.Flags().Float64("diameter", 0.1, "pipe diameter [m]")
	return cmd
}
