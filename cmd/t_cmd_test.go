// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/InsuvaiK/moody/mdl/flow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes a fresh command tree
func run(args ...string) (string, error) {
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestCalcDefault(t *testing.T) {
	txt, err := run("calc", "--verbose=false")
	require.NoError(t, err)
	assert.Contains(t, txt, "The Reynold's number is 99700")
	assert.Contains(t, txt, "Turbulent flow regime")
	assert.NotContains(t, txt, "INPUT")
}

func TestCalcTransition(t *testing.T) {
	txt, err := run("calc", "--verbose=false",
		"--viscosity", "0.5", "--density", "1000", "--velocity", "1.5", "--diameter", "1")
	require.NoError(t, err)
	assert.Contains(t, txt, "The Reynold's number is 3000")
	assert.Contains(t, txt, "Transition state/flow regime")
	assert.Contains(t, txt, "The Friction factor of the flow is uncertain")
}

func TestCalcFlagsAreNotShared(t *testing.T) {
	_, err := run("calc", "--verbose=false", "--density", "1000", "--diameter", "1", "--viscosity", "0.5")
	require.NoError(t, err)

	// defaults again: 997・1・0.1/0.001
	txt, err := run("calc", "--verbose=false")
	require.NoError(t, err)
	assert.Contains(t, txt, "The Reynold's number is 99700")

	// only velocity given: density and diameter come from the defaults
	txt, err = run("calc", "--verbose=false", "--velocity", "0.01")
	require.NoError(t, err)
	assert.Contains(t, txt, "The Reynold's number is 99")
	assert.Contains(t, txt, "Laminar flow regime")
}

func TestCalcInvalid(t *testing.T) {
	_, err := run("calc", "--verbose=false", "--viscosity", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, flow.ErrInvalidInput)

	_, err = run("calc", "--verbose=false", "--velocity", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, flow.ErrInvalidInput)

	_, err = run("calc", "--verbose=false", "--density", "1e200", "--velocity", "1e200")
	require.Error(t, err)
	assert.ErrorIs(t, err, flow.ErrInvalidInput)
}

func TestChartPointFlags(t *testing.T) {
	_, err := run("chart", "--verbose=false", "--re=-1", "--f", "0.02")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--re and --f")

	_, err = run("chart", "--verbose=false", "--re", "99700")
	require.Error(t, err)
}

func TestChartSavePdf(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "small.mdy")
	require.NoError(t, os.WriteFile(fn, []byte(`{
  "verbose": false,
  "chart": {"nturb": 101, "ncrit": 21, "nlam": 21, "nscan": 500, "seed": 1e7}
}`), 0644))

	_, err := run("chart", "--config", fn, "--dirout", dir, "--re", "99700", "--f", "0.0178")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "vertical_moody_chart.pdf"))

	_, err = run("chart", "--config", fn, "--dirout", dir, "--savepdf")
	require.NoError(t, err)
	for _, name := range []string{"vertical_moody_chart.pdf", "horizontal_moody_chart.pdf"} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), name)
	}
}
