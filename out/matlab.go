// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/openhole/inp"

	"github.com/cpmech/gosl/io"
)

// MatlabPrefix returns the name of the structure receiving the data: MACRO_MODEL in 2D and
// MODEL in 3D
func MatlabPrefix(ndim int) string {
	if ndim == 3 {
		return "MODEL"
	}
	return "MACRO_MODEL"
}

// MatlabFilename returns the name of the file with connectivities and coordinates
func MatlabFilename(ndim int) string {
	return io.Sf("Connectivities_and_Coordinates_%dD.m", ndim)
}

// WriteMatlab writes the connectivity matrix (material id followed by vertex numbers) and the
// coordinates of all vertices (3 columns) as MATLAB statements
func WriteMatlab(buf *bytes.Buffer, prefix string, conn *Connectivity, msh *inp.Mesh) {

	// connectivity
	io.Ff(buf, "\n%s.Conectivity = ...\n[\n", prefix)
	for i, verts := range conn.Verts {
		io.Ff(buf, "%6d", conn.Mat[i])
		for _, v := range verts {
			io.Ff(buf, " %8d", v)
		}
		io.Ff(buf, "\n")
	}
	io.Ff(buf, "]\n;\n")

	// coordinates
	io.Ff(buf, "\n%s.Coordinates = ...\n[\n", prefix)
	for _, v := range msh.Verts {
		var z float64
		if len(v.C) > 2 {
			z = v.C[2]
		}
		io.Ff(buf, "%23.15e %23.15e %23.15e\n", v.C[0], v.C[1], z)
	}
	io.Ff(buf, "]\n;\n")
}
