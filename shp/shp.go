// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shp implements shape structures: node counts, natural coordinates and node orderings
package shp

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Shape holds geometry data of one element type
//
//  The local numbering of vertices is the one used by the mesh generator (gmsh). ToTarget and
//  ToVtk are permutations: the k-th vertex in the other convention is the ToTarget[k]-th (or
//  ToVtk[k]-th) vertex in the generator's convention.
type Shape struct {
	Type      string      // name; e.g. "qua9"
	BasicType string      // geometry of basic element; e.g. "qua9" => "qua4"
	GmshCode  int         // gmsh element type; e.g. "qua9" => 10
	VtkCode   int         // VTK cell type; e.g. "qua9" => 28
	Gndim     int         // geometry of shape; e.g. "lin3" => gnd == 1 (even in 3D simulations)
	Nverts    int         // number of vertices in cell; e.g. "qua8" => 8
	NatCoords [][]float64 // natural coordinates [gndim][nverts]
	ToTarget  []int       // generator => analysis-tool ordering [nverts]; nil if not convertible
	ToVtk     []int       // generator => VTK ordering [nverts]; nil means identity
}

// factory holds all Shapes available
var (
	factory   = make(map[string]*Shape)
	gmshcodes = make(map[int]*Shape)
)

// Get returns an existent Shape structure
//  Note: returns nil if geoType is not available
func Get(geoType string) *Shape {
	return factory[geoType]
}

// GetByGmsh returns the Shape corresponding to a gmsh element type
//  Note: returns nil if code is not available
func GetByGmsh(code int) *Shape {
	return gmshcodes[code]
}

// Types returns the sorted names of all available shapes
func Types() (names []string) {
	for name := range factory {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Convertible tells whether cells of this shape can be reordered to the analysis-tool convention
func (o *Shape) Convertible() bool {
	return o.ToTarget != nil
}

// Target returns the vertices of a cell in the analysis-tool ordering
func (o *Shape) Target(verts []int) []int {
	if o.ToTarget == nil {
		chk.Panic("shape %q cannot be converted to the target ordering", o.Type)
	}
	return Permute(o.ToTarget, verts)
}

// Vtk returns the vertices of a cell in the VTK ordering
func (o *Shape) Vtk(verts []int) []int {
	if o.ToVtk == nil {
		return append([]int{}, verts...)
	}
	return Permute(o.ToVtk, verts)
}

// Permute returns res[k] = conn[perm[k]]
func Permute(perm, conn []int) (res []int) {
	if len(perm) != len(conn) {
		chk.Panic("permutation and connectivity sizes differ: %d != %d", len(perm), len(conn))
	}
	res = make([]int, len(perm))
	for k, i := range perm {
		res[k] = conn[i]
	}
	return
}

// Inverse returns the inverse permutation; i.e. Permute(Inverse(p), Permute(p, c)) == c
func Inverse(perm []int) (inv []int) {
	inv = make([]int, len(perm))
	for k, i := range perm {
		inv[i] = k
	}
	return
}

// IsBijection tells whether perm is a permutation of {0, ..., len(perm)-1}
func IsBijection(perm []int) bool {
	seen := make([]bool, len(perm))
	for _, i := range perm {
		if i < 0 || i >= len(perm) || seen[i] {
			return false
		}
		seen[i] = true
	}
	return true
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// register adds shape to the factory
func register(o *Shape) {
	if len(o.NatCoords) != o.Gndim {
		chk.Panic("shape %q: natural coordinates must have %d rows", o.Type, o.Gndim)
	}
	for _, row := range o.NatCoords {
		if len(row) != o.Nverts {
			chk.Panic("shape %q: natural coordinates must have %d columns", o.Type, o.Nverts)
		}
	}
	if o.ToTarget != nil && (len(o.ToTarget) != o.Nverts || !IsBijection(o.ToTarget)) {
		chk.Panic("shape %q: invalid target permutation", o.Type)
	}
	if o.ToVtk != nil && (len(o.ToVtk) != o.Nverts || !IsBijection(o.ToVtk)) {
		chk.Panic("shape %q: invalid VTK permutation", o.Type)
	}
	factory[o.Type] = o
	gmshcodes[o.GmshCode] = o
}

// natcoords computes natural coordinates from corners and from groups of corners whose
// centroid gives the coordinates of higher-order vertices
//  Input:
//   corners -- [ncorners][gndim]
//   groups  -- [nextra][...] indices of corners
//  Output:
//   R -- [gndim][ncorners+nextra]
func natcoords(corners [][]float64, groups [][]int) (R [][]float64) {
	gndim := len(corners[0])
	nv := len(corners) + len(groups)
	R = make([][]float64, gndim)
	for i := 0; i < gndim; i++ {
		R[i] = make([]float64, nv)
		for m, c := range corners {
			R[i][m] = c[i]
		}
		for k, g := range groups {
			for _, m := range g {
				R[i][len(corners)+k] += corners[m][i]
			}
			R[i][len(corners)+k] /= float64(len(g))
		}
	}
	return
}
