// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/openhole/inp"
	"github.com/cpmech/openhole/shp"

	"github.com/cpmech/gosl/io"
)

// TagPolicy defines what happens when a cell has no physical tag
type TagPolicy int

// policies
const (
	TagWarn TagPolicy = iota // report and use ReindexOptions.DefaultMat
	TagFail                  // stop with an error
)

// ReindexOptions holds options for Reindex
type ReindexOptions struct {
	Policy     TagPolicy // what to do with untagged cells
	DefaultMat int       // material id of untagged cells (TagWarn)
	MatOffset  int       // added to physical tags to obtain material ids
}

// ConsistencyWarning reports a cell without physical tag
type ConsistencyWarning struct {
	CellId int    // id of cell in mesh
	FileId int    // id of cell in mesh file
	Ctype  string // cell type
}

// Error implements the error interface
func (o *ConsistencyWarning) Error() string {
	return io.Sf("cell %d (element %d of type %q) has no physical tag", o.CellId, o.FileId, o.Ctype)
}

// Connectivity holds the connectivity matrix of one cell type in the order expected by the
// analysis tool
type Connectivity struct {
	Ctype   string  // cell type; e.g. "qua9"
	CellIds []int   // [ncells] ids of cells in mesh
	Mat     []int   // [ncells] material ids
	Verts   [][]int // [ncells][nverts] 1-based vertex numbers in target order
}

// DefaultCtype returns the cell type to be reindexed when none is given: qua9 if present,
// otherwise hex27, otherwise the first convertible type found in the mesh
func DefaultCtype(msh *inp.Mesh) string {
	for _, ctype := range []string{"qua9", "hex27"} {
		if len(msh.Ctype2cells[ctype]) > 0 {
			return ctype
		}
	}
	for _, ctype := range msh.Ctypes() {
		if shp.Get(ctype).Convertible() {
			return ctype
		}
	}
	return ""
}

// Reindex selects the cells of type ctype and converts their vertices to the order of the
// analysis tool. Untagged cells (Tag == 0) are handled according to opt.Policy
//  Note: nothing is returned but the warnings found so far if an error happens
func Reindex(msh *inp.Mesh, ctype string, opt ReindexOptions) (o *Connectivity, warnings []*ConsistencyWarning, err error) {

	// shape
	s := shp.Get(ctype)
	if s == nil {
		return nil, nil, &inp.ConfigurationError{Field: "type", Value: ctype, Msg: io.Sf("cell type is not available; use one of %v", shp.Types())}
	}

	// cells
	cells := msh.Ctype2cells[ctype]
	if len(cells) == 0 {
		return nil, nil, &inp.InputFormatError{Path: msh.FnamePath, Msg: io.Sf("mesh has no cells of type %q. types found = %v", ctype, msh.Ctypes())}
	}
	if !s.Convertible() {
		return nil, nil, &inp.ConfigurationError{Field: "type", Value: ctype, Msg: "reordering of cell type is not available"}
	}

	// connectivity
	o = &Connectivity{
		Ctype:   ctype,
		CellIds: make([]int, len(cells)),
		Mat:     make([]int, len(cells)),
		Verts:   make([][]int, len(cells)),
	}
	for i, c := range cells {
		o.CellIds[i] = c.Id
		if c.Tag == 0 {
			w := &ConsistencyWarning{CellId: c.Id, FileId: c.FileId, Ctype: ctype}
			warnings = append(warnings, w)
			if opt.Policy == TagFail {
				return nil, warnings, w
			}
			o.Mat[i] = opt.DefaultMat
		} else {
			o.Mat[i] = c.Tag + opt.MatOffset
		}
		o.Verts[i] = s.Target(c.Verts)
		for j := range o.Verts[i] {
			o.Verts[i][j]++
		}
	}
	return
}
