// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the input data: specimen parameters read from JSON/YAML files and
// meshes produced by the external mesh generator
package inp

import (
	"encoding/json"
	"math"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// GeometryData holds the specimen geometry as given in the input file
type GeometryData struct {
	Type       string    `json:"type" yaml:"type"`                                             // Quarter, Half, Whole or Whole2 (case-insensitive)
	TotalWidth float64   `json:"total_width" yaml:"total_width"`                               // grip (total) width
	HoleDiam   float64   `json:"hole_diameter" yaml:"hole_diameter"`                           // hole diameter; hole at the centre of the specimen
	GripLength float64   `json:"grip_length" yaml:"grip_length"`                               // length of each grip zone
	Alpha      float64   `json:"lengthsratio_grip2holezone" yaml:"lengthsratio_grip2holezone"` // half-length of hole zone divided by half-width
	Origin     []float64 `json:"origin" yaml:"origin"`                                         // [x0, y0, z0]; empty => [0, 0, 0]
}

// MeshData holds the discretization data as given in the input file
type MeshData struct {
	NelemTransv   int    `json:"nelements_transv" yaml:"nelements_transv"`               // elements across the width
	NelemDiag     int    `json:"nelements_diag" yaml:"nelements_diag"`                   // elements along the diagonal (radial) lines
	NelemLongHole int    `json:"nelements_long_holezone" yaml:"nelements_long_holezone"` // elements along the hole zone
	NelemLongGrip int    `json:"nelements_long_gripzone" yaml:"nelements_long_gripzone"` // elements along each grip
	Order         int    `json:"elements_order" yaml:"elements_order"`                   // 1 or 2
	Unstructured  bool   `json:"unstructured" yaml:"unstructured"`                       // do not constrain curves and surfaces (free mesh)
	MshVersion    string `json:"msh_version" yaml:"msh_version"`                         // mesh file version written by the engine; e.g. "4.1"
}

// Input holds all data from an input file
type Input struct {

	// input
	Desc     string       `json:"desc" yaml:"desc"`         // description
	DirOut   string       `json:"dirout" yaml:"dirout"`     // directory for output; e.g. /tmp/openhole
	Name     string       `json:"name" yaml:"name"`         // name of generated files; e.g. open_hole2D
	Geometry GeometryData `json:"geometry" yaml:"geometry"` // specimen geometry
	Mesh     MeshData     `json:"mesh" yaml:"mesh"`         // discretization

	// derived
	FnamePath string `json:"-" yaml:"-"` // file read by ReadInput; empty if defaults only
}

// Params holds the validated and normalised parameters. It is a value: copies are independent
type Params struct {

	// geometry
	Type       GeomType // geometry variant
	TotalWidth float64  // W
	HoleDiam   float64  // D
	GripLength float64  // grip length
	Alpha      float64  // hole-zone half-length / (W/2)
	Origin     r3.Vec   // translation applied to every point

	// discretization
	NelemTransv   int // even
	NelemDiag     int // even
	NelemLongHole int // even
	NelemLongGrip int // even
	Order         int // elements order

	// derived: number of subdivisions (nodes) of curves
	NdivTransv   int // NelemTransv/2 + 1
	NdivLongHole int // NelemLongHole/2 + 1
	NdivDiag     int // NelemDiag + 1
	NdivLongGrip int // NelemLongGrip + 1
}

// SetDefault sets default values
func (o *Input) SetDefault() {
	o.DirOut = "/tmp/openhole"
	o.Name = "open_hole2D"
	o.Geometry = GeometryData{
		Type:       "Whole",
		TotalWidth: 500,
		HoleDiam:   250,
		GripLength: 250,
		Alpha:      1,
		Origin:     []float64{0, 0, 0},
	}
	o.Mesh = MeshData{
		NelemTransv:   20,
		NelemDiag:     16,
		NelemLongHole: 20,
		NelemLongGrip: 10,
		Order:         2,
		MshVersion:    "4.1",
	}
}

// ReadInput reads an input file (.json, .yaml or .yml) on top of default values
func ReadInput(fnpath string) (o *Input, err error) {

	// new input
	o = new(Input)
	o.SetDefault()
	o.FnamePath = fnpath

	// read file
	b, err := readFile(fnpath)
	if err != nil {
		return nil, &ConfigurationError{Path: fnpath, Msg: "cannot read input file", Err: err}
	}

	// decode
	switch strings.ToLower(filepath.Ext(fnpath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, &ConfigurationError{Path: fnpath, Msg: "cannot decode input file", Err: err}
	}
	return
}

// Resolve validates the input data and returns the canonical parameters
func (o *Input) Resolve() (p Params, err error) {
	p, err = Resolve(o.Geometry, o.Mesh)
	if err != nil {
		if e, ok := err.(*ConfigurationError); ok {
			e.Path = o.FnamePath
		}
	}
	return
}

// Resolve validates geometry and discretization data and returns the canonical parameters
//  Note: the first invalid parameter found is reported
func Resolve(geom GeometryData, mesh MeshData) (p Params, err error) {

	// geometry
	if err = positive("total_width", geom.TotalWidth); err != nil {
		return
	}
	if err = positive("hole_diameter", geom.HoleDiam); err != nil {
		return
	}
	if geom.HoleDiam >= geom.TotalWidth {
		return p, cfgerr("hole_diameter", geom.HoleDiam, "must be smaller than total_width = %g", geom.TotalWidth)
	}
	if !finite(geom.GripLength) || geom.GripLength < 0 {
		return p, cfgerr("grip_length", geom.GripLength, "must be a non-negative number")
	}
	if err = positive("lengthsratio_grip2holezone", geom.Alpha); err != nil {
		return
	}
	gtype, err := ParseGeomType(geom.Type)
	if err != nil {
		return
	}

	// origin
	var origin r3.Vec
	switch len(geom.Origin) {
	case 0:
	case 3:
		for i, x := range geom.Origin {
			if !finite(x) {
				return p, cfgerr("origin", geom.Origin, "component %d is not a finite number", i)
			}
		}
		origin = r3.Vec{X: geom.Origin[0], Y: geom.Origin[1], Z: geom.Origin[2]}
	default:
		return p, cfgerr("origin", geom.Origin, "must have 3 components")
	}

	// discretization
	if err = positiveEven("nelements_transv", mesh.NelemTransv); err != nil {
		return
	}
	if err = positiveEven("nelements_diag", mesh.NelemDiag); err != nil {
		return
	}
	if err = positiveEven("nelements_long_holezone", mesh.NelemLongHole); err != nil {
		return
	}
	if err = positiveEven("nelements_long_gripzone", mesh.NelemLongGrip); err != nil {
		return
	}
	if mesh.Order != 1 && mesh.Order != 2 {
		return p, cfgerr("elements_order", mesh.Order, "must be 1 or 2")
	}
	switch mesh.MshVersion {
	case "", "2.2", "4.1":
	default:
		return p, cfgerr("msh_version", mesh.MshVersion, "must be 2.2 or 4.1")
	}

	// results
	p = Params{
		Type:          gtype,
		TotalWidth:    geom.TotalWidth,
		HoleDiam:      geom.HoleDiam,
		GripLength:    geom.GripLength,
		Alpha:         geom.Alpha,
		Origin:        origin,
		NelemTransv:   mesh.NelemTransv,
		NelemDiag:     mesh.NelemDiag,
		NelemLongHole: mesh.NelemLongHole,
		NelemLongGrip: mesh.NelemLongGrip,
		Order:         mesh.Order,
		NdivTransv:    mesh.NelemTransv/2 + 1,
		NdivLongHole:  mesh.NelemLongHole/2 + 1,
		NdivDiag:      mesh.NelemDiag + 1,
		NdivLongGrip:  mesh.NelemLongGrip + 1,
	}
	return
}

// String returns a short description of the parameters
func (o Params) String() string {
	return io.Sf("%v W=%g D=%g grip=%g alpha=%g origin=(%g,%g,%g) nelem=[%d %d %d %d] order=%d",
		o.Type, o.TotalWidth, o.HoleDiam, o.GripLength, o.Alpha, o.Origin.X, o.Origin.Y, o.Origin.Z,
		o.NelemTransv, o.NelemDiag, o.NelemLongHole, o.NelemLongGrip, o.Order)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func positive(field string, x float64) error {
	if !finite(x) || x <= 0 {
		return cfgerr(field, x, "must be a positive number")
	}
	return nil
}

func positiveEven(field string, n int) error {
	if n <= 0 || n%2 != 0 {
		return cfgerr(field, n, "must be a positive even integer")
	}
	return nil
}
