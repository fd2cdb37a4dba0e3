// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"github.com/cpmech/openhole/inp"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Build builds the topology of the specimen. The result depends only on p
func Build(p inp.Params) (o *Model) {
	o = &Model{Params: p}
	o.setPoints()
	o.setArcs()
	o.setLines()
	o.setLoops()
	o.Surfaces = Surfaces(p.Type)
	return
}

// Surfaces returns the ids of the loops to be meshed for a geometry type
func Surfaces(gtype inp.GeomType) []int {
	switch gtype {
	case inp.Quarter:
		return []int{1, 2, 9}
	case inp.Half:
		return []int{1, 2, 7, 8, 9, 12}
	case inp.Whole:
		return []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	case inp.Whole2:
		return []int{9, 10, 11, 12, 13, 14, 15, 16}
	}
	chk.Panic("geometry type %d is not available", gtype)
	return nil
}

// setPoints computes the 23 points. All points are shifted by the origin
func (o *Model) setPoints() {
	p := o.Params
	o.Points = make([]Point, 0, NPOINTS)
	add := func(x r2.Vec) {
		o.Points = append(o.Points, Point{
			Id: len(o.Points) + 1,
			X:  r3.Add(r3.Vec{X: x.X, Y: x.Y}, p.Origin),
		})
	}

	// centre of hole
	add(r2.Vec{})

	// hole
	for _, oct := range Octants {
		add(polar(p.HoleDiam/2, oct.Angle(p.Alpha)))
	}

	// boundary of hole zone
	for _, oct := range Octants {
		add(polar(oct.Radius(p), oct.Angle(p.Alpha)))
	}

	// grips
	xg := p.Alpha*p.TotalWidth/2 + p.GripLength
	for _, m := range gripPoints {
		add(r2.Vec{X: m[0] * xg, Y: m[1] * p.TotalWidth / 2})
	}
}

// setArcs sets the 8 circle arcs of the hole
func (o *Model) setArcs() {
	o.Arcs = make([]CircleArc, NARCS)
	for k, oct := range Octants {
		o.Arcs[k] = CircleArc{
			Id:     k + 1,
			Start:  2 + k,
			Center: 1,
			End:    2 + (k+1)%8,
			Ndiv:   oct.Ndiv(o.Params),
			Role:   oct.Sector,
		}
	}
}

// setLines sets the 26 lines
//  1..8   boundary of hole zone
//  9..16  diagonals from the hole to the boundary of the hole zone
//  17..26 grips
func (o *Model) setLines() {
	p := o.Params
	o.Lines = make([]Line, 0, NLINES)
	add := func(start, end int, role LineRole) {
		o.Lines = append(o.Lines, Line{Id: len(o.Lines) + 1, Start: start, End: end, Ndiv: ndiv(p, role), Role: role})
	}
	for k, oct := range Octants {
		add(10+k, 10+(k+1)%8, oct.Sector)
	}
	for k := range Octants {
		add(2+k, 10+k, Diagonal)
	}
	for _, g := range gripLines {
		add(g.Start, g.End, g.Role)
	}
}

// setLoops sets the 16 curve loops, all counter-clockwise
//  1..8   sectors of the hole zone: diagonal, boundary, next diagonal, arc
//  9..12  grips
//  13..16 quadrants of the hole zone made of two sectors each
func (o *Model) setLoops() {
	o.Loops = make([]CurveLoop, 0, NLOOPS)
	add := func(curves ...CurveRef) {
		o.Loops = append(o.Loops, CurveLoop{Id: len(o.Loops) + 1, Curves: curves})
	}
	last := func() *CurveLoop { return &o.Loops[len(o.Loops)-1] }
	for k := range Octants {
		add(lin(9+k), lin(1+k), lin(-(9 + (k+1)%8)), arc(-(1 + k)))
	}
	for _, ids := range gripLoops {
		curves := make([]CurveRef, len(ids))
		for i, id := range ids {
			curves[i] = lin(id)
		}
		add(curves...)
	}
	for q := 0; q < 4; q++ {
		k := 2 * q
		add(lin(9+k), lin(1+k), lin(2+k), lin(-(9 + (k+2)%8)), arc(-(2 + k)), arc(-(1 + k)))
		last().Corners = []int{2 + k, 10 + k, 10 + (k+2)%8, 2 + (k+2)%8}
	}
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// ndiv returns the number of subdivisions corresponding to a role
func ndiv(p inp.Params, role LineRole) int {
	switch role {
	case Transversal:
		return p.NdivTransv
	case HoleLong:
		return p.NdivLongHole
	case Diagonal:
		return p.NdivDiag
	case GripLong:
		return p.NdivLongGrip
	}
	chk.Panic("line role %d is not available", role)
	return 0
}

// lin returns a reference to line |id| oriented by the sign of id
func lin(id int) CurveRef {
	if id < 0 {
		return CurveRef{Kind: KindLine, Id: -id, Sign: -1}
	}
	return CurveRef{Kind: KindLine, Id: id, Sign: 1}
}

// arc returns a reference to arc |id| oriented by the sign of id
func arc(id int) CurveRef {
	if id < 0 {
		return CurveRef{Kind: KindArc, Id: -id, Sign: -1}
	}
	return CurveRef{Kind: KindArc, Id: id, Sign: 1}
}
