// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geo builds the topology of open-hole specimens: points, circle arcs, lines, curve
// loops and the selection of loops to be meshed as structured (transfinite) surfaces
//
//              20-------------13--------12-------------11------------19
//               |              |  \      |      /  |              |
//               |              |    \    4    /    |              |
//               |              |      5--3--3      |              |
//              21-------------14-----6   1   2-----10------------18
//               |              |      7--8--9      |              |
//               |              |    /    |    \    |              |
//               |              |  /      |      \  |              |
//              22-------------15--------16-------------17------------23
//
//  Points 2..9 are on the hole, 10..17 on the boundary of the hole zone and 18..23 on the grips.
package geo

import (
	"github.com/cpmech/openhole/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/spatial/r3"
)

// constants
const (
	NPOINTS = 23 // number of points
	NARCS   = 8  // number of circle arcs
	NLINES  = 26 // number of lines
	NLOOPS  = 16 // number of curve loops
)

// LineRole defines which discretization parameter gives the number of subdivisions of a curve
type LineRole int

// roles
const (
	Transversal LineRole = iota + 1 // across the width => NdivTransv
	HoleLong                        // along the hole zone => NdivLongHole
	Diagonal                        // from the hole to the hole-zone boundary => NdivDiag
	GripLong                        // along the grips => NdivLongGrip
)

// String returns the name of the role
func (o LineRole) String() string {
	switch o {
	case Transversal:
		return "transversal"
	case HoleLong:
		return "holezone-longitudinal"
	case Diagonal:
		return "diagonal"
	case GripLong:
		return "grip-longitudinal"
	}
	return "LineRole(?)"
}

// CurveKind tells whether a curve is a line or a circle arc
type CurveKind int

// kinds
const (
	KindLine CurveKind = iota + 1
	KindArc
)

// String returns the name of the kind
func (o CurveKind) String() string {
	switch o {
	case KindLine:
		return "line"
	case KindArc:
		return "arc"
	}
	return "CurveKind(?)"
}

// Point holds a point
type Point struct {
	Id int    // 1..23
	X  r3.Vec // coordinates
}

// CircleArc holds a circle arc, always smaller than π
type CircleArc struct {
	Id     int      // 1..8
	Start  int      // start point
	Center int      // centre point
	End    int      // end point
	Ndiv   int      // number of subdivisions (nodes along the curve)
	Role   LineRole // Transversal or HoleLong
}

// Line holds a straight line
type Line struct {
	Id    int      // 1..26
	Start int      // start point
	End   int      // end point
	Ndiv  int      // number of subdivisions (nodes along the curve)
	Role  LineRole // role
}

// CurveRef references a curve with orientation
type CurveRef struct {
	Kind CurveKind // line or arc
	Id   int       // id of line or arc
	Sign int       // +1 => from start to end; -1 => from end to start
}

// CurveLoop holds a closed sequence of oriented curves
type CurveLoop struct {
	Id      int        // 1..16
	Curves  []CurveRef // oriented curves; the end of each one is the start of the next one
	Corners []int      // corners for transfinite meshing when the loop has more than 4 curves
}

// Model holds the complete topology. It must not be modified after Build
type Model struct {
	Params   inp.Params  // parameters used to build the model
	Points   []Point     // [NPOINTS] Points[i].Id == i+1
	Arcs     []CircleArc // [NARCS] Arcs[i].Id == i+1
	Lines    []Line      // [NLINES] Lines[i].Id == i+1
	Loops    []CurveLoop // [NLOOPS] Loops[i].Id == i+1
	Surfaces []int       // ids of loops to be meshed
}

// Point returns a point by id
func (o *Model) Point(id int) Point {
	if id < 1 || id > len(o.Points) {
		chk.Panic("point %d does not exist", id)
	}
	return o.Points[id-1]
}

// Arc returns a circle arc by id
func (o *Model) Arc(id int) CircleArc {
	if id < 1 || id > len(o.Arcs) {
		chk.Panic("circle arc %d does not exist", id)
	}
	return o.Arcs[id-1]
}

// Line returns a line by id
func (o *Model) Line(id int) Line {
	if id < 1 || id > len(o.Lines) {
		chk.Panic("line %d does not exist", id)
	}
	return o.Lines[id-1]
}

// Loop returns a curve loop by id
func (o *Model) Loop(id int) CurveLoop {
	if id < 1 || id > len(o.Loops) {
		chk.Panic("curve loop %d does not exist", id)
	}
	return o.Loops[id-1]
}

// Ends returns the first and last points of an oriented curve
func (o *Model) Ends(ref CurveRef) (start, end int) {
	switch ref.Kind {
	case KindLine:
		l := o.Line(ref.Id)
		start, end = l.Start, l.End
	case KindArc:
		a := o.Arc(ref.Id)
		start, end = a.Start, a.End
	default:
		chk.Panic("invalid curve kind %d", ref.Kind)
	}
	if ref.Sign < 0 {
		start, end = end, start
	}
	return
}

// Ndiv returns the number of subdivisions of a curve
func (o *Model) Ndiv(ref CurveRef) int {
	if ref.Kind == KindArc {
		return o.Arc(ref.Id).Ndiv
	}
	return o.Line(ref.Id).Ndiv
}

// Bounds returns the bounding box of all points
func (o *Model) Bounds() (box r3.Box) {
	box.Min, box.Max = o.Points[0].X, o.Points[0].X
	for _, p := range o.Points[1:] {
		box.Min = r3.Vec{X: utl.Min(box.Min.X, p.X.X), Y: utl.Min(box.Min.Y, p.X.Y), Z: utl.Min(box.Min.Z, p.X.Z)}
		box.Max = r3.Vec{X: utl.Max(box.Max.X, p.X.X), Y: utl.Max(box.Max.Y, p.X.Y), Z: utl.Max(box.Max.Z, p.X.Z)}
	}
	return
}

// String returns the signed-curve notation of a reference; e.g. "-L9" or "+A2"
func (o CurveRef) String() string {
	sign, kind := "+", "L"
	if o.Sign < 0 {
		sign = "-"
	}
	if o.Kind == KindArc {
		kind = "A"
	}
	return io.Sf("%s%s%d", sign, kind, o.Id)
}
