// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/openhole/inp"
	"github.com/cpmech/openhole/out"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(args ...string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(new(strings.Builder))
	cmd.SetErr(new(strings.Builder))
	return cmd.Execute()
}

func readString(t *testing.T, fn string) string {
	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	return string(b)
}

func TestGeoDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run("geo", "--out", dir))

	txt := readString(t, filepath.Join(dir, "open_hole2D.geo"))
	assert.Contains(t, txt, "Physical Surface(1) = {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12};")
	assert.Contains(t, txt, "Save \"open_hole2D.msh\";")
	assert.FileExists(t, filepath.Join(dir, "open_hole2D.json"))
}

func TestGeoConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run("geo", "-o", dir, filepath.Join("inp", "data", "quarter.json")))
	txt := readString(t, filepath.Join(dir, "quarter.geo"))
	assert.Contains(t, txt, "Plane Surface(3) = {9};")
	assert.Contains(t, txt, "Mesh.ElementOrder = 1;")

	// type given by flag wins
	require.NoError(t, run("geo", "-o", dir, "--type", "whole2", filepath.Join("inp", "data", "quarter.json")))
	txt = readString(t, filepath.Join(dir, "quarter.geo"))
	assert.Contains(t, txt, "Plane Surface(8) = {16};")
}

func TestGeoErrors(t *testing.T) {
	dir := t.TempDir()
	err := run("geo", "-o", dir, filepath.Join("inp", "data", "badhole.yaml"))
	require.Error(t, err)
	assert.True(t, inp.IsConfigurationError(err))

	err = run("geo", "-o", dir, "--type", "eighth")
	require.Error(t, err)
	assert.True(t, inp.IsConfigurationError(err))

	assert.Error(t, run("geo", "a.json", "b.json"))

	// hole reaching the boundary of the hole zone
	short := filepath.Join(t.TempDir(), "short.yaml")
	require.NoError(t, os.WriteFile(short, []byte("name: short\ngeometry:\n  lengthsratio_grip2holezone: 0.4\n"), 0644))
	err = run("geo", "-o", dir, short)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hole zone")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run("conv", "-o", dir, filepath.Join("out", "data", "qua9.msh")))
	txt := readString(t, filepath.Join(dir, "Connectivities_and_Coordinates_2D.m"))
	assert.True(t, strings.HasPrefix(txt, "\nMACRO_MODEL.Conectivity = ...\n[\n"))
	assert.Contains(t, txt, "MACRO_MODEL.Coordinates = ...")

	require.NoError(t, run("conv", "-o", dir, filepath.Join("out", "data", "hex27.msh")))
	txt = readString(t, filepath.Join(dir, "Connectivities_and_Coordinates_3D.m"))
	assert.Contains(t, txt, "\nMODEL.Conectivity = ...\n[\n     3        3        4        1        2")
}

func TestConvErrors(t *testing.T) {
	dir := t.TempDir()
	err := run("conv", "--strict", "-o", dir, filepath.Join("out", "data", "qua9.msh"))
	var w *out.ConsistencyWarning
	require.True(t, errors.As(err, &w))
	assert.Equal(t, 2, w.CellId)
	assert.NoFileExists(t, filepath.Join(dir, "Connectivities_and_Coordinates_2D.m"))

	err = run("conv", "-o", dir, "--type", "tri6", filepath.Join("out", "data", "qua9.msh"))
	assert.True(t, inp.IsInputFormatError(err))

	err = run("conv", "-o", dir, filepath.Join("out", "data", "nonexistent.msh"))
	assert.True(t, inp.IsInputFormatError(err))

	assert.Error(t, run("conv"))
}

func TestVtu(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run("vtu", "-o", dir, filepath.Join("out", "data", "qua9.msh")))
	txt := readString(t, filepath.Join(dir, "qua9.vtu"))
	assert.Contains(t, txt, "<VTKFile type=\"UnstructuredGrid\"")
}
