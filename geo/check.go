// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// HOLETOL is the relative clearance required between the hole and the boundary of the hole zone
const HOLETOL = 1e-8

// Check runs CheckCounts, CheckNdiv, CheckClosure and CheckHole
func (o *Model) Check() (err error) {
	if err = o.CheckCounts(); err != nil {
		return
	}
	if err = o.CheckNdiv(); err != nil {
		return
	}
	if err = o.CheckClosure(); err != nil {
		return
	}
	return o.CheckHole()
}

// CheckCounts checks the number of entities and their ids
func (o *Model) CheckCounts() error {
	if len(o.Points) != NPOINTS || len(o.Arcs) != NARCS || len(o.Lines) != NLINES || len(o.Loops) != NLOOPS {
		return chk.Err("model must have %d points, %d arcs, %d lines and %d loops. %d, %d, %d and %d found",
			NPOINTS, NARCS, NLINES, NLOOPS, len(o.Points), len(o.Arcs), len(o.Lines), len(o.Loops))
	}
	for i, p := range o.Points {
		if p.Id != i+1 {
			return chk.Err("point at position %d has id %d", i, p.Id)
		}
	}
	for i, a := range o.Arcs {
		if a.Id != i+1 {
			return chk.Err("arc at position %d has id %d", i, a.Id)
		}
	}
	for i, l := range o.Lines {
		if l.Id != i+1 {
			return chk.Err("line at position %d has id %d", i, l.Id)
		}
	}
	for i, l := range o.Loops {
		if l.Id != i+1 {
			return chk.Err("loop at position %d has id %d", i, l.Id)
		}
	}
	if len(o.Surfaces) == 0 {
		return chk.Err("at least one surface must be selected")
	}
	for _, s := range o.Surfaces {
		if s < 1 || s > NLOOPS {
			return chk.Err("selected surface %d does not correspond to a loop", s)
		}
	}
	return nil
}

// CheckNdiv checks that every curve has at least 2 subdivisions
func (o *Model) CheckNdiv() error {
	for _, a := range o.Arcs {
		if a.Ndiv < 2 {
			return chk.Err("arc %d has Ndiv = %d < 2", a.Id, a.Ndiv)
		}
	}
	for _, l := range o.Lines {
		if l.Ndiv < 2 {
			return chk.Err("line %d has Ndiv = %d < 2", l.Id, l.Ndiv)
		}
	}
	return nil
}

// CheckClosure checks that the end of each curve of every loop is the start of the next curve
func (o *Model) CheckClosure() error {
	for _, loop := range o.Loops {
		n := len(loop.Curves)
		if n < 3 {
			return chk.Err("loop %d has %d curves; at least 3 are required", loop.Id, n)
		}
		for i, c := range loop.Curves {
			if c.Sign != 1 && c.Sign != -1 {
				return chk.Err("loop %d: curve %v has invalid sign %d", loop.Id, c, c.Sign)
			}
			_, end := o.Ends(c)
			next := loop.Curves[(i+1)%n]
			start, _ := o.Ends(next)
			if end != start {
				return chk.Err("loop %d is open: %v ends at point %d but %v starts at point %d", loop.Id, c, end, next, start)
			}
		}
		if err := o.checkCorners(loop); err != nil {
			return err
		}
	}
	return nil
}

// CheckHole checks that the hole lies strictly inside the hole zone, i.e. that every point on the
// boundary of the hole zone is farther from the centre than the hole radius. This fails when
// D/2 ≥ α·W/2 and the loops cross themselves
func (o *Model) CheckHole() error {
	r := o.Params.HoleDiam / 2
	centre := o.Point(1).X
	for k := range Octants {
		id := 10 + k
		d := r3.Norm(r3.Sub(o.Point(id).X, centre))
		if d-r <= HOLETOL*r {
			return chk.Err("hole of radius %g reaches the boundary of the hole zone at point %d (distance %g). increase lengthsratio_grip2holezone or reduce hole_diameter", r, id, d)
		}
	}
	return nil
}

// CheckOrientation checks that all loops are counter-clockwise
func (o *Model) CheckOrientation() error {
	for _, loop := range o.Loops {
		if a := o.SignedArea(loop.Id); a <= 0 {
			return chk.Err("loop %d is not counter-clockwise: signed area = %g", loop.Id, a)
		}
	}
	return nil
}

// SignedArea returns the area of the polygon through the points of a loop (in the xy-plane);
// arcs contribute their mid point too. Positive means counter-clockwise
func (o *Model) SignedArea(loopId int) (area float64) {
	poly := o.LoopPolygon(loopId)
	for i, a := range poly {
		area += r2.Cross(a, poly[(i+1)%len(poly)])
	}
	return area / 2
}

// LoopPolygon returns the sequence of points visited by a loop, including the mid points of arcs
func (o *Model) LoopPolygon(loopId int) (poly []r2.Vec) {
	xy := func(id int) r2.Vec {
		x := o.Point(id).X
		return r2.Vec{X: x.X, Y: x.Y}
	}
	for _, c := range o.Loop(loopId).Curves {
		start, end := o.Ends(c)
		poly = append(poly, xy(start))
		if c.Kind == KindArc {
			ctr := xy(o.Arc(c.Id).Center)
			a, b := r2.Sub(xy(start), ctr), r2.Sub(xy(end), ctr)
			mid := r2.Scale(r2.Norm(a), r2.Unit(r2.Add(a, b)))
			poly = append(poly, r2.Add(ctr, mid))
		}
	}
	return
}

// checkCorners checks that loops with more than 4 curves have 4 corners located at curve ends
func (o *Model) checkCorners(loop CurveLoop) error {
	if len(loop.Curves) <= 4 {
		if len(loop.Corners) != 0 {
			return chk.Err("loop %d has %d curves and must not have corners", loop.Id, len(loop.Curves))
		}
		return nil
	}
	if len(loop.Corners) != 4 {
		return chk.Err("loop %d has %d curves and needs 4 corners; %d given", loop.Id, len(loop.Curves), len(loop.Corners))
	}
	starts := make(map[int]bool)
	for _, c := range loop.Curves {
		s, _ := o.Ends(c)
		starts[s] = true
	}
	for _, p := range loop.Corners {
		if !starts[p] {
			return chk.Err("corner %d of loop %d is not on the loop", p, loop.Id)
		}
	}
	return nil
}
