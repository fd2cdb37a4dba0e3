// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// natcoord returns the natural coordinates of vertex m
func natcoord(o *Shape, m int) (r []float64) {
	r = make([]float64, o.Gndim)
	for i := 0; i < o.Gndim; i++ {
		r[i] = o.NatCoords[i][m]
	}
	return
}

func Test_shape01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape01")

	for _, name := range Types() {
		o := Get(name)
		io.Pfyel("--------------------------------- %-6s---------------------------------\n", name)
		chk.String(tst, o.Type, name)
		if GetByGmsh(o.GmshCode) != o {
			tst.Errorf("%s: gmsh code %d does not map back to shape", name, o.GmshCode)
		}
		chk.Int(tst, "rows of NatCoords", len(o.NatCoords), o.Gndim)
		for i := 0; i < o.Gndim; i++ {
			chk.Int(tst, "columns of NatCoords", len(o.NatCoords[i]), o.Nverts)
		}
		if o.ToVtk != nil && !IsBijection(o.ToVtk) {
			tst.Errorf("%s: VTK ordering is not a permutation", name)
		}
		if o.Convertible() && !IsBijection(o.ToTarget) {
			tst.Errorf("%s: target ordering is not a permutation", name)
		}
	}

	if Get("qua7") != nil {
		tst.Errorf("qua7 should not be available")
	}
	if GetByGmsh(999) != nil {
		tst.Errorf("gmsh type 999 should not be available")
	}
}

func Test_shape02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape02. qua9 target ordering walks the perimeter")

	o := Get("qua9")
	chk.Ints(tst, "qua9", o.Target([]int{0, 1, 2, 3, 4, 5, 6, 7, 8}), []int{0, 4, 1, 5, 2, 6, 3, 7, 8})

	// consecutive perimeter vertices are half an edge apart
	for k := 0; k < 8; k++ {
		a := natcoord(o, o.ToTarget[k])
		b := natcoord(o, o.ToTarget[(k+1)%8])
		dist := math.Abs(a[0]-b[0]) + math.Abs(a[1]-b[1])
		chk.Float64(tst, io.Sf("distance %d→%d", k, (k+1)%8), 1e-15, dist, 1)
	}

	// last vertex is the centre
	chk.Array(tst, "centre", 1e-15, natcoord(o, o.ToTarget[8]), []float64{0, 0})

	// counter-clockwise
	a, b := natcoord(o, o.ToTarget[0]), natcoord(o, o.ToTarget[2])
	chk.Float64(tst, "cross", 1e-15, a[0]*b[1]-a[1]*b[0], 2)
}

func Test_shape03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape03. hex27 target ordering")

	o := Get("hex27")
	if !IsBijection(o.ToTarget) {
		tst.Errorf("hex27 target ordering is not a bijection")
		return
	}

	// corners, edges, faces and centre keep their kind
	kind := func(m int) int {
		switch {
		case m < 8:
			return 0
		case m < 20:
			return 1
		case m < 26:
			return 2
		}
		return 3
	}
	for k, m := range o.ToTarget {
		chk.Int(tst, io.Sf("kind of target vertex %d", k), kind(m), kind(k))
	}

	// round trip
	conn := make([]int, 27)
	for i := range conn {
		conn[i] = 100 + i
	}
	res := Permute(Inverse(o.ToTarget), o.Target(conn))
	chk.Ints(tst, "round trip", res, conn)
}

func Test_shape04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape04. VTK orderings")

	vtkEdges := [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}}
	vtkFaces := [][]int{{0, 4, 7, 3}, {1, 2, 6, 5}, {0, 1, 5, 4}, {3, 2, 6, 7}, {0, 1, 2, 3}, {4, 5, 6, 7}}

	centroid := func(o *Shape, verts []int) (c []float64) {
		c = make([]float64, o.Gndim)
		for _, m := range verts {
			for i := 0; i < o.Gndim; i++ {
				c[i] += o.NatCoords[i][m] / float64(len(verts))
			}
		}
		return
	}

	for _, name := range []string{"hex20", "hex27"} {
		o := Get(name)
		vtk := o.Vtk(intRange(o.Nverts))
		for k, e := range vtkEdges {
			chk.Array(tst, io.Sf("%s: vtk edge %d", name, k), 1e-15, natcoord(o, vtk[8+k]), centroid(o, e))
		}
		if name == "hex27" {
			for k, f := range vtkFaces {
				chk.Array(tst, io.Sf("%s: vtk face %d", name, k), 1e-15, natcoord(o, vtk[20+k]), centroid(o, f))
			}
			chk.Array(tst, "hex27: centre", 1e-15, natcoord(o, vtk[26]), []float64{0, 0, 0})
		}
	}

	// identity when no permutation is needed
	chk.Ints(tst, "qua9 vtk", Get("qua9").Vtk([]int{5, 6, 7, 8, 9, 10, 11, 12, 13}), []int{5, 6, 7, 8, 9, 10, 11, 12, 13})
}

func Test_shape05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape05. permutations")

	if IsBijection([]int{0, 1, 1}) {
		tst.Errorf("repeated index accepted")
	}
	if IsBijection([]int{0, 3, 1}) {
		tst.Errorf("out-of-range index accepted")
	}
	p := []int{2, 0, 1}
	chk.Ints(tst, "inverse", Inverse(p), []int{1, 2, 0})
	chk.Ints(tst, "permute", Permute(p, []int{10, 20, 30}), []int{30, 10, 20})

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("Permute should panic on size mismatch")
		}
	}()
	Permute(p, []int{1, 2})
}

func intRange(n int) (res []int) {
	res = make([]int, n)
	for i := range res {
		res[i] = i
	}
	return
}
