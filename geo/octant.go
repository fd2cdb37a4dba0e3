// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"github.com/cpmech/openhole/inp"

	"gonum.org/v1/gonum/spatial/r2"
)

// Octant describes one of the eight directions from the centre of the hole towards the
// boundary of the hole zone. Octant k gives the hole point 2+k and the hole-zone point 10+k
//
//  angle  = Half·atan2(1,α) + Quarter·π/2
//  radius = Wlong·α·W/2 + Wdiag·W·sqrt(1+α²)/2 + Wtransv·W/2
type Octant struct {
	Half    float64  // multiple of the corner angle atan2(1,α)
	Quarter float64  // multiple of π/2
	Wlong   float64  // weight of the half-length of the hole zone
	Wdiag   float64  // weight of the distance to the corners of the hole zone
	Wtransv float64  // weight of the half-width
	Sector  LineRole // role of the arc and line going from this octant to the next one
	MirrorX int      // octant obtained by reflection x → -x
	MirrorY int      // octant obtained by reflection y → -y
}

// Octants holds the descriptors, counter-clockwise starting at +x
var Octants = [8]Octant{
	{Half: 0, Quarter: 0, Wlong: 1, Sector: Transversal, MirrorX: 4, MirrorY: 0},
	{Half: 1, Quarter: 0, Wdiag: 1, Sector: HoleLong, MirrorX: 3, MirrorY: 7},
	{Half: 0, Quarter: 1, Wtransv: 1, Sector: HoleLong, MirrorX: 2, MirrorY: 6},
	{Half: -1, Quarter: 2, Wdiag: 1, Sector: Transversal, MirrorX: 1, MirrorY: 5},
	{Half: 0, Quarter: 2, Wlong: 1, Sector: Transversal, MirrorX: 0, MirrorY: 4},
	{Half: 1, Quarter: 2, Wdiag: 1, Sector: HoleLong, MirrorX: 7, MirrorY: 3},
	{Half: 0, Quarter: 3, Wtransv: 1, Sector: HoleLong, MirrorX: 6, MirrorY: 2},
	{Half: -1, Quarter: 4, Wdiag: 1, Sector: Transversal, MirrorX: 5, MirrorY: 1},
}

// Angle returns the direction of the octant
func (o Octant) Angle(alpha float64) float64 {
	return o.Half*math.Atan2(1, alpha) + o.Quarter*math.Pi/2
}

// Radius returns the distance from the centre of the hole to the boundary of the hole zone
func (o Octant) Radius(p inp.Params) float64 {
	w := p.TotalWidth
	return o.Wlong*p.Alpha*w/2 + o.Wdiag*w*math.Sqrt(1+p.Alpha*p.Alpha)/2 + o.Wtransv*w/2
}

// Ndiv returns the number of subdivisions of the sector starting at this octant
func (o Octant) Ndiv(p inp.Params) int {
	if o.Sector == Transversal {
		return p.NdivTransv
	}
	return p.NdivLongHole
}

// polar returns the point at distance r along angle a
func polar(r, a float64) r2.Vec {
	return r2.Scale(r, r2.Vec{X: math.Cos(a), Y: math.Sin(a)})
}

// gripLines describes the lines of the grips: the first four belong to the right grip
var gripLines = [10]struct {
	Start, End int
	Role       LineRole
}{
	{10, 18, GripLong},
	{14, 21, GripLong},
	{18, 19, Transversal},
	{19, 11, GripLong},
	{13, 20, GripLong},
	{20, 21, Transversal},
	{21, 22, Transversal},
	{22, 15, GripLong},
	{17, 23, GripLong},
	{23, 18, Transversal},
}

// gripPoints holds the multipliers of (α·W/2+grip, W/2) giving points 18..23
var gripPoints = [6][2]float64{
	{1, 0},
	{1, 1},
	{-1, 1},
	{-1, 0},
	{-1, -1},
	{1, -1},
}

// gripLoops holds the signed line ids of loops 9..12
var gripLoops = [4][4]int{
	{-1, 17, 19, 20},
	{-4, 21, 22, -18},
	{-5, 18, 23, 24},
	{-8, 25, 26, -17},
}
