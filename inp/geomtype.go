// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "strings"

// GeomType selects which part of the symmetric specimen is meshed
//
//   Quarter => x ≥ 0, y ≥ 0 (hole zone and grip)
//   Half    => y ≥ 0
//   Whole   => complete specimen, hole zone split into 8 wedges
//   Whole2  => complete specimen, hole zone split into 4 composite regions
type GeomType int

// geometry variants
const (
	Quarter GeomType = iota + 1
	Half
	Whole
	Whole2
)

// GeomTypes lists all variants
var GeomTypes = []GeomType{Quarter, Half, Whole, Whole2}

var geomTypeNames = map[GeomType]string{
	Quarter: "Quarter",
	Half:    "Half",
	Whole:   "Whole",
	Whole2:  "Whole2",
}

// ParseGeomType converts a case-insensitive name into a GeomType
func ParseGeomType(s string) (GeomType, error) {
	key := strings.TrimSpace(s)
	for _, g := range GeomTypes {
		if strings.EqualFold(key, geomTypeNames[g]) {
			return g, nil
		}
	}
	return 0, cfgerr("type", s, "geometry type must be one of Quarter, Half, Whole or Whole2")
}

// String returns the canonical name
func (o GeomType) String() string {
	if name, ok := geomTypeNames[o]; ok {
		return name
	}
	return "GeomType(?)"
}

// Valid tells whether o is one of the recognised variants
func (o GeomType) Valid() bool {
	_, ok := geomTypeNames[o]
	return ok
}

// MarshalText implements encoding.TextMarshaler
func (o GeomType) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, cfgerr("type", int(o), "unknown geometry type")
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (o *GeomType) UnmarshalText(b []byte) (err error) {
	*o, err = ParseGeomType(string(b))
	return
}
