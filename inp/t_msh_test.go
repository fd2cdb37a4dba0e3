// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01. gmsh 2.2")

	msh, err := ReadMsh("data", "qua9.msh")
	if err != nil {
		tst.Errorf("cannot read mesh: %v", err)
		return
	}
	io.Pforan("%v\n", msh)
	chk.String(tst, msh.Format, "msh2")
	chk.Int(tst, "nverts", len(msh.Verts), 15)
	chk.Int(tst, "ncells", len(msh.Cells), 3)
	chk.Int(tst, "ndim", msh.Ndim, 2)
	chk.Strings(tst, "ctypes", msh.Ctypes(), []string{"lin3", "qua9"})
	chk.Float64(tst, "xmax", 1e-15, msh.Xmax, 4)
	chk.Float64(tst, "ymax", 1e-15, msh.Ymax, 2)

	// line element
	c := msh.Cells[0]
	chk.Int(tst, "tag of lin3", c.Tag, 3)
	chk.Ints(tst, "verts of lin3", c.Verts, []int{0, 1, 4})

	// tagged and untagged elements
	chk.Int(tst, "tag of cell 1", msh.Cells[1].Tag, 1)
	chk.Ints(tst, "verts of cell 1", msh.Cells[1].Verts, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})
	chk.Int(tst, "tag of cell 2", msh.Cells[2].Tag, 0)
	chk.Ints(tst, "verts of cell 2", msh.Cells[2].Verts, []int{1, 9, 10, 2, 11, 12, 13, 5, 14})
	chk.Int(tst, "file id of cell 2", msh.Cells[2].FileId, 3)
	chk.Int(tst, "qua9 cells", len(msh.Ctype2cells["qua9"]), 2)
	chk.Int(tst, "cells with tag 0", len(msh.CellTag2cells[0]), 1)
}

func Test_msh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh02. gmsh 4.1")

	msh, err := ReadMsh("data", "qua4v41.msh")
	if err != nil {
		tst.Errorf("cannot read mesh: %v", err)
		return
	}
	chk.String(tst, msh.Format, "msh4")
	chk.Int(tst, "nverts", len(msh.Verts), 4)
	chk.Int(tst, "ncells", len(msh.Cells), 1)
	c := msh.Cells[0]
	chk.String(tst, c.Type, "qua4")
	chk.Int(tst, "tag from entity", c.Tag, 7)
	chk.Int(tst, "file id", c.FileId, 5)
	chk.Ints(tst, "verts", c.Verts, []int{0, 1, 2, 3})
	chk.Int(tst, "node tag of vertex 0", msh.Verts[0].FileId, 11)
	chk.Array(tst, "x of vertex 2", 1e-15, msh.Verts[2].C, []float64{1, 1, 0})
}

func Test_msh03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh03. json")

	msh, err := ReadMsh("data", "hex8.json")
	if err != nil {
		tst.Errorf("cannot read mesh: %v", err)
		return
	}
	chk.String(tst, msh.Format, "json")
	chk.Int(tst, "ndim", msh.Ndim, 3)
	chk.Float64(tst, "zmax", 1e-15, msh.Zmax, 1)
	chk.Int(tst, "tag", msh.Cells[0].Tag, -1)
	if msh.Cells[0].Shp == nil || msh.Cells[0].Shp.Nverts != 8 {
		tst.Errorf("shape of hex8 was not set")
	}
}

func Test_msh04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh04. invalid files")

	header := "$MeshFormat\n2.2 0 8\n$EndMeshFormat\n"
	nodes := "$Nodes\n4\n1 0 0 0\n2 1 0 0\n3 1 1 0\n4 0 1 0\n$EndNodes\n"
	tests := []struct {
		name    string
		content string
	}{
		{"binary", "$MeshFormat\n4.1 1 8\n$EndMeshFormat\n"},
		{"version", "$MeshFormat\n3.0 0 8\n$EndMeshFormat\n"},
		{"noelements", header + nodes},
		{"nonodes", header + "$Elements\n1\n1 3 0 1 2 3 4\n$EndElements\n"},
		{"badnode", header + nodes + "$Elements\n1\n1 3 0 1 2 3 5\n$EndElements\n"},
		{"nnodes", header + nodes + "$Elements\n1\n1 3 0 1 2 3\n$EndElements\n"},
		{"unsupported", header + nodes + "$Elements\n1\n1 99 0 1 2 3 4\n$EndElements\n"},
		{"duplicated", header + "$Nodes\n2\n1 0 0 0\n1 1 0 0\n$EndNodes\n"},
		{"truncated", header + "$Nodes\n4\n1 0 0 0\n"},
		{"coordinate", header + "$Nodes\n1\n1 0 zero 0\n$EndNodes\n"},
		{"json", "{ not json"},
		{"empty", "{ \"verts\":[], \"cells\":[] }"},
		{"onecoord", jsonMesh(`{"id":0,"c":[0]}`, `{"id":0,"tag":1,"type":"qua4","verts":[0,1,2,3]}`)},
		{"fourcoords", jsonMesh(`{"id":0,"c":[0,0,0,0]}`, `{"id":0,"tag":1,"type":"qua4","verts":[0,1,2,3]}`)},
		{"nullvert", jsonMesh(`null`, `{"id":0,"tag":1,"type":"qua4","verts":[0,1,2,3]}`)},
		{"nullcell", jsonMesh(`{"id":0,"c":[0,0]}`, `null`)},
	}

	dir := tst.TempDir()
	for _, t := range tests {
		fn := t.name + ".msh"
		if err := os.WriteFile(filepath.Join(dir, fn), []byte(t.content), 0644); err != nil {
			tst.Fatalf("cannot write file: %v", err)
		}
		msh, err := ReadMsh(dir, fn)
		if err == nil {
			tst.Errorf("%s: error expected", t.name)
			continue
		}
		if msh != nil {
			tst.Errorf("%s: no mesh must be returned on error", t.name)
		}
		io.Pforan("%v\n", err)
		var e *InputFormatError
		if !errors.As(err, &e) {
			tst.Errorf("%s: InputFormatError expected; got %T", t.name, err)
			continue
		}
		chk.String(tst, e.Path, filepath.Join(dir, fn))
	}

	// missing file
	if _, err := ReadMsh("data", "nonexistent.msh"); !IsInputFormatError(err) {
		tst.Errorf("InputFormatError expected; got %v", err)
	}
}

// jsonMesh returns a JSON mesh with four vertices and one cell: the first vertex and the cell are
// given as JSON text
func jsonMesh(vert0, cell0 string) string {
	return `{"verts":[` + vert0 + `,{"id":1,"c":[1,0]},{"id":2,"c":[1,1]},{"id":3,"c":[0,1]}],"cells":[` + cell0 + `]}`
}
