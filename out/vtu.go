// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/openhole/inp"

	"github.com/cpmech/gosl/io"
)

// WriteVtu writes dirout/fnkey.vtu with the mesh (ASCII UnstructuredGrid) for ParaView
func WriteVtu(dirout, fnkey string, msh *inp.Mesh) error {
	var buf bytes.Buffer
	Vtu(&buf, msh)
	return Save(dirout, fnkey+".vtu", &buf)
}

// Vtu writes the contents of a VTU file: topology, vertex ids and tags and cell ids and tags
func Vtu(buf *bytes.Buffer, msh *inp.Mesh) {
	io.Ff(buf, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(buf, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", len(msh.Verts), len(msh.Cells))
	vtuTopology(buf, msh)
	vtuPointData(buf, msh)
	vtuCellData(buf, msh)
	io.Ff(buf, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
}

// vtuTopology writes coordinates and connectivities
func vtuTopology(buf *bytes.Buffer, msh *inp.Mesh) {

	// coordinates
	io.Ff(buf, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, v := range msh.Verts {
		var z float64
		if len(v.C) > 2 {
			z = v.C[2]
		}
		io.Ff(buf, "%23.15e %23.15e %23.15e ", v.C[0], v.C[1], z)
	}
	io.Ff(buf, "\n</DataArray>\n</Points>\n")

	// connectivities
	io.Ff(buf, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, c := range msh.Cells {
		for _, v := range c.Shp.Vtk(c.Verts) {
			io.Ff(buf, "%d ", v)
		}
	}

	// offsets
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	var offset int
	for _, c := range msh.Cells {
		offset += len(c.Verts)
		io.Ff(buf, "%d ", offset)
	}

	// types
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for _, c := range msh.Cells {
		io.Ff(buf, "%d ", c.Shp.VtkCode)
	}
	io.Ff(buf, "\n</DataArray>\n</Cells>\n")
}

// vtuPointData writes vertex ids and tags
func vtuPointData(buf *bytes.Buffer, msh *inp.Mesh) {
	io.Ff(buf, "<PointData Scalars=\"TheScalars\">\n")
	io.Ff(buf, "<DataArray type=\"Int32\" Name=\"nid\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, v := range msh.Verts {
		io.Ff(buf, "%d ", v.Id)
	}
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"tag\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, v := range msh.Verts {
		io.Ff(buf, "%d ", iabs(v.Tag))
	}
	io.Ff(buf, "\n</DataArray>\n</PointData>\n")
}

// vtuCellData writes cell ids and tags
func vtuCellData(buf *bytes.Buffer, msh *inp.Mesh) {
	io.Ff(buf, "<CellData Scalars=\"TheScalars\">\n")
	io.Ff(buf, "<DataArray type=\"Int32\" Name=\"eid\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, c := range msh.Cells {
		io.Ff(buf, "%d ", c.Id)
	}
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"tag\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, c := range msh.Cells {
		io.Ff(buf, "%d ", iabs(c.Tag))
	}
	io.Ff(buf, "\n</DataArray>\n</CellData>\n")
}

func iabs(val int) int {
	if val < 0 {
		return -val
	}
	return val
}
