// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/openhole/geo"
)

// topology holds the model as written to JSON files
type topology struct {
	Params   params  `json:"params"`
	Points   []point `json:"points"`
	Arcs     []curve `json:"arcs"`
	Lines    []curve `json:"lines"`
	Loops    []loop  `json:"loops"`
	Surfaces []int   `json:"surfaces"`
}

type params struct {
	Type          string     `json:"type"`
	TotalWidth    float64    `json:"total_width"`
	HoleDiam      float64    `json:"hole_diameter"`
	GripLength    float64    `json:"grip_length"`
	Alpha         float64    `json:"lengthsratio_grip2holezone"`
	Origin        [3]float64 `json:"origin"`
	NelemTransv   int        `json:"nelements_transv"`
	NelemDiag     int        `json:"nelements_diag"`
	NelemLongHole int        `json:"nelements_long_holezone"`
	NelemLongGrip int        `json:"nelements_long_gripzone"`
	Order         int        `json:"elements_order"`
}

type point struct {
	Id int        `json:"id"`
	X  [3]float64 `json:"x"`
}

type curve struct {
	Id     int    `json:"id"`
	Tag    int    `json:"tag"` // gmsh tag
	Start  int    `json:"start"`
	Center int    `json:"center,omitempty"`
	End    int    `json:"end"`
	Ndiv   int    `json:"ndiv"`
	Role   string `json:"role"`
}

type loop struct {
	Id      int      `json:"id"`
	Curves  []string `json:"curves"` // e.g. "+L9", "-A1"
	Tags    []int    `json:"tags"`   // signed gmsh tags
	Corners []int    `json:"corners,omitempty"`
}

// WriteTopologyJSON writes the model as JSON to be used by other meshing engines
func WriteTopologyJSON(buf *bytes.Buffer, m *geo.Model) (err error) {
	p := m.Params
	t := topology{
		Params: params{
			Type:          p.Type.String(),
			TotalWidth:    p.TotalWidth,
			HoleDiam:      p.HoleDiam,
			GripLength:    p.GripLength,
			Alpha:         p.Alpha,
			Origin:        [3]float64{p.Origin.X, p.Origin.Y, p.Origin.Z},
			NelemTransv:   p.NelemTransv,
			NelemDiag:     p.NelemDiag,
			NelemLongHole: p.NelemLongHole,
			NelemLongGrip: p.NelemLongGrip,
			Order:         p.Order,
		},
		Surfaces: m.Surfaces,
	}
	for _, pt := range m.Points {
		t.Points = append(t.Points, point{Id: pt.Id, X: [3]float64{pt.X.X, pt.X.Y, pt.X.Z}})
	}
	for _, a := range m.Arcs {
		t.Arcs = append(t.Arcs, curve{Id: a.Id, Tag: CurveTag(geo.KindArc, a.Id), Start: a.Start, Center: a.Center, End: a.End, Ndiv: a.Ndiv, Role: a.Role.String()})
	}
	for _, l := range m.Lines {
		t.Lines = append(t.Lines, curve{Id: l.Id, Tag: CurveTag(geo.KindLine, l.Id), Start: l.Start, End: l.End, Ndiv: l.Ndiv, Role: l.Role.String()})
	}
	for _, l := range m.Loops {
		lp := loop{Id: l.Id, Corners: l.Corners}
		for _, c := range l.Curves {
			lp.Curves = append(lp.Curves, c.String())
			lp.Tags = append(lp.Tags, c.Sign*CurveTag(c.Kind, c.Id))
		}
		t.Loops = append(t.Loops, lp)
	}
	b, err := json.MarshalIndent(&t, "", "  ")
	if err != nil {
		return
	}
	buf.Write(b)
	buf.WriteString("\n")
	return
}
