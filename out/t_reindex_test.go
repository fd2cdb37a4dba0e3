// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cpmech/openhole/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func readMsh(tst *testing.T, fn string) *inp.Mesh {
	msh, err := inp.ReadMsh("data", fn)
	if err != nil {
		tst.Fatalf("cannot read mesh: %v", err)
	}
	return msh
}

func Test_reindex01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reindex01. qua9")

	msh := readMsh(tst, "qua9.msh")
	ctype := DefaultCtype(msh)
	chk.String(tst, ctype, "qua9")

	conn, warnings, err := Reindex(msh, ctype, ReindexOptions{DefaultMat: 1})
	if err != nil {
		tst.Errorf("reindex failed: %v", err)
		return
	}
	chk.Ints(tst, "cell ids", conn.CellIds, []int{1, 2})
	chk.Ints(tst, "materials", conn.Mat, []int{1, 1})
	chk.Ints(tst, "cell 1", conn.Verts[0], []int{1, 5, 2, 6, 3, 7, 4, 8, 9})
	chk.Ints(tst, "cell 2", conn.Verts[1], []int{2, 12, 10, 13, 11, 14, 3, 6, 15})
	chk.Int(tst, "number of warnings", len(warnings), 1)
	chk.Int(tst, "untagged cell", warnings[0].CellId, 2)
	chk.Int(tst, "untagged element", warnings[0].FileId, 3)
	io.Pforan("%v\n", warnings[0])

	// mesh is not modified
	chk.Ints(tst, "mesh cell 1", msh.Cells[1].Verts, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})

	// strict policy
	conn, warnings, err = Reindex(msh, ctype, ReindexOptions{Policy: TagFail})
	if conn != nil {
		tst.Errorf("no connectivity must be returned on failure")
	}
	var w *ConsistencyWarning
	if !errors.As(err, &w) {
		tst.Errorf("ConsistencyWarning expected; got %v", err)
		return
	}
	chk.Int(tst, "cell of error", w.CellId, 2)
	chk.Int(tst, "number of warnings", len(warnings), 1)
}

func Test_reindex02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reindex02. hex27")

	msh := readMsh(tst, "hex27.msh")
	ctype := DefaultCtype(msh)
	chk.String(tst, ctype, "hex27")
	chk.Int(tst, "ndim", msh.Ndim, 3)

	conn, warnings, err := Reindex(msh, ctype, ReindexOptions{Policy: TagFail, MatOffset: 1})
	if err != nil {
		tst.Errorf("reindex failed: %v", err)
		return
	}
	chk.Int(tst, "number of warnings", len(warnings), 0)
	chk.Ints(tst, "materials", conn.Mat, []int{3})
	chk.Ints(tst, "cell", conn.Verts[0], []int{3, 4, 1, 2, 7, 8, 5, 6, 11, 12, 9, 10, 19, 20, 17, 18, 15, 16, 13, 14, 25, 24, 21, 23, 22, 26, 27})

	// qua4 cells are available too
	conn, _, err = Reindex(msh, "qua4", ReindexOptions{})
	if err != nil {
		tst.Errorf("reindex failed: %v", err)
		return
	}
	chk.Ints(tst, "qua4", conn.Verts[0], []int{1, 2, 3, 4})
	chk.Ints(tst, "qua4 material", conn.Mat, []int{5})
}

func Test_reindex03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reindex03. errors")

	msh := readMsh(tst, "qua9.msh")

	// absent types are input errors, whether they can be reordered or not
	_, _, err := Reindex(msh, "tri6", ReindexOptions{})
	if !inp.IsInputFormatError(err) {
		tst.Errorf("InputFormatError expected for absent cell type; got %v", err)
	}
	_, _, err = Reindex(readMsh(tst, "hex27.msh"), "qua9", ReindexOptions{})
	if !inp.IsInputFormatError(err) {
		tst.Errorf("InputFormatError expected for absent qua9 cells; got %v", err)
	}
	_, _, err = Reindex(msh, "hex27", ReindexOptions{})
	if !inp.IsInputFormatError(err) {
		tst.Errorf("InputFormatError expected for absent hex27 cells; got %v", err)
	}

	// present but not convertible
	_, _, err = Reindex(msh, "lin3", ReindexOptions{})
	if !inp.IsConfigurationError(err) {
		tst.Errorf("ConfigurationError expected for non-convertible type; got %v", err)
	}
	_, _, err = Reindex(msh, "qua7", ReindexOptions{})
	if !inp.IsConfigurationError(err) {
		tst.Errorf("ConfigurationError expected for unknown type; got %v", err)
	}
}

func Test_matlab01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matlab01")

	chk.String(tst, MatlabPrefix(2), "MACRO_MODEL")
	chk.String(tst, MatlabPrefix(3), "MODEL")
	chk.String(tst, MatlabFilename(2), "Connectivities_and_Coordinates_2D.m")
	chk.String(tst, MatlabFilename(3), "Connectivities_and_Coordinates_3D.m")

	msh := readMsh(tst, "qua9.msh")
	conn, _, err := Reindex(msh, "qua9", ReindexOptions{DefaultMat: 1})
	if err != nil {
		tst.Errorf("reindex failed: %v", err)
		return
	}
	var buf bytes.Buffer
	WriteMatlab(&buf, MatlabPrefix(msh.Ndim), conn, msh)
	io.Pf("%s", buf.String())

	lines := strings.Split(buf.String(), "\n")
	expected := []string{
		"",
		"MACRO_MODEL.Conectivity = ...",
		"[",
		"     1        1        5        2        6        3        7        4        8        9",
		"     1        2       12       10       13       11       14        3        6       15",
		"]",
		";",
		"",
		"MACRO_MODEL.Coordinates = ...",
		"[",
	}
	chk.Strings(tst, "head", lines[:len(expected)], expected)
	chk.String(tst, lines[len(expected)+14], "  3.000000000000000e+00   1.000000000000000e+00   0.000000000000000e+00")
	chk.String(tst, lines[len(expected)+15], "]")
}
