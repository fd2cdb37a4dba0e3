// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"

	"github.com/cpmech/openhole/geo"
	"github.com/cpmech/openhole/inp"
	"github.com/cpmech/openhole/out"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

func geoCmd() *cobra.Command {
	var gtype string
	var dirout string

	c := &cobra.Command{
		Use:   "geo [config.json|config.yaml]",
		Short: "Write the gmsh script and the topology (JSON) of a specimen",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) (err error) {

			// input data
			in := new(inp.Input)
			in.SetDefault()
			if len(args) > 0 {
				if in, err = inp.ReadInput(args[0]); err != nil {
					return
				}
			}
			if gtype != "" {
				in.Geometry.Type = gtype
			}
			if dirout != "" {
				in.DirOut = dirout
			}
			p, err := in.Resolve()
			if err != nil {
				return
			}
			io.Pf("%v\n", p)

			// topology
			m := geo.Build(p)
			if err = m.Check(); err != nil {
				return chk.Err("inconsistent topology:\n%v", err)
			}
			if err = m.CheckOrientation(); err != nil {
				io.Pforan("WARNING: %v\n", err)
			}

			// files
			var bgeo, bjson bytes.Buffer
			out.WriteGeo(&bgeo, m, out.GeoOptions{Name: in.Name, MshVersion: in.Mesh.MshVersion, Unstructured: in.Mesh.Unstructured})
			if err = out.WriteTopologyJSON(&bjson, m); err != nil {
				return
			}
			if err = out.Save(in.DirOut, in.Name+".geo", &bgeo); err != nil {
				return
			}
			return out.Save(in.DirOut, in.Name+".json", &bjson)
		},
	}

	c.Flags().StringVarP(&gtype, "type", "t", "", "geometry type: Quarter, Half, Whole or Whole2 (overrides config)")
	c.Flags().StringVarP(&dirout, "out", "o", "", "output directory (overrides config)")
	return c
}

func convCmd() *cobra.Command {
	var ctype string
	var dirout string
	var strict bool
	var defaultMat int
	var matOffset int

	c := &cobra.Command{
		Use:   "conv <file.msh>",
		Short: "Write connectivities (analysis-tool ordering) and coordinates of a mesh as MATLAB statements",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) (err error) {

			// mesh
			msh, err := inp.ReadMsh(filepath.Dir(args[0]), filepath.Base(args[0]))
			if err != nil {
				return
			}
			if ctype == "" {
				ctype = out.DefaultCtype(msh)
			}

			// options
			opt := out.ReindexOptions{DefaultMat: defaultMat, MatOffset: matOffset}
			if strict {
				opt.Policy = out.TagFail
			}
			if matOffset < 0 {
				opt.MatOffset = 0
				if msh.Ndim == 3 {
					opt.MatOffset = 1
				}
			}

			// connectivity
			conn, warnings, err := out.Reindex(msh, ctype, opt)
			for _, w := range warnings {
				io.Pforan("WARNING: %v\n", w)
			}
			if err != nil {
				return
			}
			io.Pfcyan("%d %s cells found\n", len(conn.Verts), ctype)

			// file
			if dirout == "" {
				dirout = filepath.Dir(args[0])
			}
			var buf bytes.Buffer
			out.WriteMatlab(&buf, out.MatlabPrefix(msh.Ndim), conn, msh)
			return out.Save(dirout, out.MatlabFilename(msh.Ndim), &buf)
		},
	}

	c.Flags().StringVarP(&ctype, "type", "t", "", "cell type; e.g. qua9 or hex27 (default: qua9 if present, else hex27)")
	c.Flags().StringVarP(&dirout, "out", "o", "", "output directory (default: directory of mesh file)")
	c.Flags().BoolVar(&strict, "strict", false, "fail when a cell has no physical tag")
	c.Flags().IntVar(&defaultMat, "default-mat", 1, "material id of cells without physical tag")
	c.Flags().IntVar(&matOffset, "mat-offset", -1, "added to physical tags to obtain material ids (default: 0 in 2D, 1 in 3D)")
	return c
}

func vtuCmd() *cobra.Command {
	var dirout string

	c := &cobra.Command{
		Use:   "vtu <file.msh>",
		Short: "Write a mesh as a VTU file for ParaView",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) (err error) {
			msh, err := inp.ReadMsh(filepath.Dir(args[0]), filepath.Base(args[0]))
			if err != nil {
				return
			}
			if dirout == "" {
				dirout = filepath.Dir(args[0])
			}
			return out.WriteVtu(dirout, io.FnKey(args[0]), msh)
		},
	}

	c.Flags().StringVarP(&dirout, "out", "o", "", "output directory (default: directory of mesh file)")
	return c
}
