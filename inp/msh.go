// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"encoding/json"
	"math"
	"path/filepath"

	"github.com/cpmech/openhole/shp"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// constants
const Ztol = 1e-7

// Vert holds vertex data
type Vert struct {
	Id  int       `json:"id"`  // id == index in Mesh.Verts
	Tag int       `json:"tag"` // tag
	C   []float64 `json:"c"`   // coordinates (size==2 or 3)

	// derived
	FileId int `json:"-"` // id in the mesh file; e.g. gmsh node tag
}

// Cell holds cell data
type Cell struct {

	// input data
	Id    int    `json:"id"`    // id == index in Mesh.Cells
	Tag   int    `json:"tag"`   // physical (material) tag; 0 => none
	Type  string `json:"type"`  // geometry type; e.g. "qua9"
	Verts []int  `json:"verts"` // vertices (ids in Mesh.Verts)

	// derived
	FileId int        `json:"-"` // id in the mesh file; e.g. gmsh element tag
	Shp    *shp.Shape `json:"-"` // shape structure
}

// Mesh holds a mesh read from a file
type Mesh struct {

	// from file
	Verts []*Vert `json:"verts"` // vertices
	Cells []*Cell `json:"cells"` // cells

	// derived
	FnamePath  string  `json:"-"` // complete filename path
	Format     string  `json:"-"` // "msh2", "msh4" or "json"
	Ndim       int     `json:"-"` // space dimension
	Xmin, Xmax float64 `json:"-"` // min and max x-coordinate
	Ymin, Ymax float64 `json:"-"` // min and max y-coordinate
	Zmin, Zmax float64 `json:"-"` // min and max z-coordinate

	// derived: maps
	CellTag2cells map[int][]*Cell    `json:"-"` // cell tag => set of cells
	Ctype2cells   map[string][]*Cell `json:"-"` // cell type => set of cells
}

// ReadMsh reads a mesh file. Gmsh ASCII files (versions 2.2 and 4.1) are recognised by their
// $MeshFormat header; other files are decoded as JSON: {"verts":[...], "cells":[...]}
func ReadMsh(dir, fn string) (o *Mesh, err error) {

	// read file
	fnpath := filepath.Join(dir, fn)
	b, err := readFile(fnpath)
	if err != nil {
		return nil, &InputFormatError{Path: fnpath, Msg: io.Sf("cannot read file: %v", err)}
	}

	// decode
	if bytes.HasPrefix(bytes.TrimSpace(b), []byte("$MeshFormat")) {
		o, err = parseGmsh(fnpath, b)
		if err != nil {
			return nil, err
		}
	} else {
		o = new(Mesh)
		err = json.Unmarshal(b, o)
		if err != nil {
			return nil, &InputFormatError{Path: fnpath, Msg: io.Sf("cannot decode JSON mesh: %v", err)}
		}
		o.Format = "json"
	}
	o.FnamePath = fnpath

	// derived data
	if err = o.finalise(); err != nil {
		return nil, err
	}
	return
}

// finalise checks the mesh and computes derived data
func (o *Mesh) finalise() (err error) {

	// check
	if len(o.Verts) < 2 {
		return o.fmterr("mesh must have at least 2 vertices")
	}
	if len(o.Cells) < 1 {
		return o.fmterr("mesh must have at least 1 cell")
	}

	// vertices
	for i, v := range o.Verts {
		if v == nil {
			return o.fmterr("vertex %d is null", i)
		}
		if v.Id != i {
			return o.fmterr("vertex ids must be sequential: vertex %d has id %d", i, v.Id)
		}
		if len(v.C) < 2 || len(v.C) > 3 {
			return o.fmterr("vertex %d must have 2 or 3 coordinates", i)
		}
	}

	// vertex related derived data
	o.Ndim = 2
	o.Xmin, o.Ymin = o.Verts[0].C[0], o.Verts[0].C[1]
	o.Zmin = 0
	if len(o.Verts[0].C) > 2 {
		o.Zmin = o.Verts[0].C[2]
	}
	o.Xmax, o.Ymax, o.Zmax = o.Xmin, o.Ymin, o.Zmin
	for _, v := range o.Verts {
		o.Xmin = utl.Min(o.Xmin, v.C[0])
		o.Xmax = utl.Max(o.Xmax, v.C[0])
		o.Ymin = utl.Min(o.Ymin, v.C[1])
		o.Ymax = utl.Max(o.Ymax, v.C[1])
		if len(v.C) > 2 {
			o.Zmin = utl.Min(o.Zmin, v.C[2])
			o.Zmax = utl.Max(o.Zmax, v.C[2])
			if math.Abs(v.C[2]) > Ztol {
				o.Ndim = 3
			}
		}
	}

	// cells
	o.CellTag2cells = make(map[int][]*Cell)
	o.Ctype2cells = make(map[string][]*Cell)
	for i, c := range o.Cells {

		// check id
		if c == nil {
			return o.fmterr("cell %d is null", i)
		}
		if c.Id != i {
			return o.fmterr("cell ids must be sequential: cell %d has id %d", i, c.Id)
		}

		// shape
		c.Shp = shp.Get(c.Type)
		if c.Shp == nil {
			return o.fmterr("cell %d has unknown type %q", i, c.Type)
		}
		if len(c.Verts) != c.Shp.Nverts {
			return o.fmterr("cell %d of type %q must have %d vertices; %d given", i, c.Type, c.Shp.Nverts, len(c.Verts))
		}
		for _, vid := range c.Verts {
			if vid < 0 || vid >= len(o.Verts) {
				return o.fmterr("cell %d refers to non-existent vertex %d", i, vid)
			}
		}
		if c.Shp.Gndim == 3 {
			o.Ndim = 3
		}

		// maps
		o.CellTag2cells[c.Tag] = append(o.CellTag2cells[c.Tag], c)
		o.Ctype2cells[c.Type] = append(o.Ctype2cells[c.Type], c)
	}
	return
}

// Ctypes returns the cell types present in the mesh, sorted by the order of first appearance
func (o *Mesh) Ctypes() (ctypes []string) {
	seen := make(map[string]bool)
	for _, c := range o.Cells {
		if !seen[c.Type] {
			seen[c.Type] = true
			ctypes = append(ctypes, c.Type)
		}
	}
	return
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := io.Sf("{\"id\":%4d, \"tag\":%6d, \"c\":[", o.Id, o.Tag)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Cell
func (o *Cell) String() string {
	l := io.Sf("{\"id\":%d, \"tag\":%d, \"type\":%q, \"verts\":[", o.Id, o.Tag, o.Type)
	for i, x := range o.Verts {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Mesh
func (o Mesh) String() string {
	l := "{\n  \"verts\" : [\n"
	for i, x := range o.Verts {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ],\n  \"cells\" : [\n"
	for i, x := range o.Cells {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ]\n}"
	return l
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func (o *Mesh) fmterr(msg string, prm ...interface{}) *InputFormatError {
	return &InputFormatError{Path: o.FnamePath, Msg: io.Sf(msg, prm...)}
}
