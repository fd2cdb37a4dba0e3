// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/openhole/geo"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// GeoOptions holds options for the gmsh script
type GeoOptions struct {
	Name         string // name of mesh file (without extension) saved by gmsh
	MshVersion   string // mesh file version; e.g. "4.1" or "2.2". empty => gmsh default
	Unstructured bool   // do not add transfinite constraints
}

// CurveTag returns the gmsh tag of a curve: arcs are 1..8 and lines follow them
func CurveTag(kind geo.CurveKind, id int) int {
	switch kind {
	case geo.KindArc:
		return id
	case geo.KindLine:
		return geo.NARCS + id
	}
	chk.Panic("invalid curve kind %d", kind)
	return 0
}

// WriteGeo writes a gmsh script that builds the model, meshes the selected surfaces with
// quadrilaterals and saves the mesh
//
//  Surface k (1..n) is bounded by curve loop m.Surfaces[k-1]; all surfaces belong to
//  Physical Surface(1)
func WriteGeo(buf *bytes.Buffer, m *geo.Model, opt GeoOptions) {
	p := m.Params
	io.Ff(buf, "// open-hole specimen\n// %v\n\n", p)

	// points
	for _, pt := range m.Points {
		io.Ff(buf, "Point(%d) = {%.15g, %.15g, %.15g};\n", pt.Id, pt.X.X, pt.X.Y, pt.X.Z)
	}

	// curves
	io.Ff(buf, "\n")
	for _, a := range m.Arcs {
		io.Ff(buf, "Circle(%d) = {%d, %d, %d};\n", CurveTag(geo.KindArc, a.Id), a.Start, a.Center, a.End)
	}
	for _, l := range m.Lines {
		io.Ff(buf, "Line(%d) = {%d, %d};\n", CurveTag(geo.KindLine, l.Id), l.Start, l.End)
	}

	// loops
	io.Ff(buf, "\n")
	for _, loop := range m.Loops {
		io.Ff(buf, "Curve Loop(%d) = {", loop.Id)
		for i, c := range loop.Curves {
			if i > 0 {
				io.Ff(buf, ", ")
			}
			io.Ff(buf, "%d", c.Sign*CurveTag(c.Kind, c.Id))
		}
		io.Ff(buf, "};\n")
	}

	// surfaces
	io.Ff(buf, "\n")
	for k, id := range m.Surfaces {
		io.Ff(buf, "Plane Surface(%d) = {%d};\n", k+1, id)
	}
	io.Ff(buf, "Physical Surface(1) = {%s};\n", seq(len(m.Surfaces)))

	// constraints
	io.Ff(buf, "\n")
	if !opt.Unstructured {
		for _, a := range m.Arcs {
			io.Ff(buf, "Transfinite Curve{%d} = %d;\n", CurveTag(geo.KindArc, a.Id), a.Ndiv)
		}
		for _, l := range m.Lines {
			io.Ff(buf, "Transfinite Curve{%d} = %d;\n", CurveTag(geo.KindLine, l.Id), l.Ndiv)
		}
		for k, id := range m.Surfaces {
			corners := m.Loop(id).Corners
			if len(corners) > 0 {
				io.Ff(buf, "Transfinite Surface{%d} = {%d, %d, %d, %d};\n", k+1, corners[0], corners[1], corners[2], corners[3])
			} else {
				io.Ff(buf, "Transfinite Surface{%d};\n", k+1)
			}
		}
	}
	for k := range m.Surfaces {
		io.Ff(buf, "Recombine Surface{%d};\n", k+1)
	}

	// mesh
	io.Ff(buf, "\nMesh.RecombineAll = 2;\n")
	io.Ff(buf, "Mesh.ElementOrder = %d;\n", p.Order)
	io.Ff(buf, "Mesh.SecondOrderIncomplete = 0;\n")
	if opt.MshVersion != "" {
		io.Ff(buf, "Mesh.MshFileVersion = %s;\n", opt.MshVersion)
	}
	io.Ff(buf, "Mesh.SurfaceFaces = 1;\n")
	io.Ff(buf, "Mesh.Points = 1;\n")
	io.Ff(buf, "Mesh 2;\n")
	io.Ff(buf, "Save \"%s.msh\";\n", opt.Name)
}

// seq returns "1, 2, ..., n"
func seq(n int) (l string) {
	for i := 1; i <= n; i++ {
		if i > 1 {
			l += ", "
		}
		l += io.Sf("%d", i)
	}
	return
}
