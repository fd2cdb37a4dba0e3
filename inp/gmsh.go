// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strconv"
	"strings"

	"github.com/cpmech/openhole/shp"

	"github.com/cpmech/gosl/io"
)

// mshScanner reads gmsh ASCII files line by line
type mshScanner struct {
	path  string   // file path (for messages)
	lines []string // all lines
	pos   int      // index of next line == number of lines read
}

// parseGmsh decodes a gmsh ASCII mesh file (format 2.2 or 4.1)
//  Note: the physical tag of a cell is the first physical tag of its element (2.2) or of its
//        entity (4.1). Cells without physical tags get Tag == 0
func parseGmsh(path string, b []byte) (o *Mesh, err error) {

	// scanner
	s := &mshScanner{path: path, lines: strings.Split(strings.ReplaceAll(string(b), "\r\n", "\n"), "\n")}

	// header
	o = new(Mesh)
	if line, _ := s.next(); line != "$MeshFormat" {
		return nil, s.errf("file must start with $MeshFormat")
	}
	f, err := s.fields("MeshFormat", 3)
	if err != nil {
		return nil, err
	}
	if f[1] != "0" {
		return nil, s.errf("binary mesh files are not supported; save the mesh in ASCII format")
	}
	switch {
	case strings.HasPrefix(f[0], "2."):
		o.Format = "msh2"
	case f[0] == "4.1":
		o.Format = "msh4"
	default:
		return nil, s.errf("mesh format version %q is not supported; use 2.2 or 4.1", f[0])
	}
	if err = s.end("MeshFormat"); err != nil {
		return nil, err
	}

	// sections
	entities := make(map[[2]int]int) // (dim, entity tag) => physical tag
	node2vert := make(map[int]int)   // node tag => vertex id
	var hasNodes, hasElements bool
	for {
		line, ok := s.next()
		if !ok {
			break
		}
		if !strings.HasPrefix(line, "$") || strings.HasPrefix(line, "$End") {
			return nil, s.errf("unexpected line %q", line)
		}
		name := line[1:]
		switch {
		case name == "Entities" && o.Format == "msh4":
			err = s.readEntities4(entities)
		case name == "Nodes" && o.Format == "msh2":
			err = s.readNodes2(o, node2vert)
			hasNodes = true
		case name == "Nodes":
			err = s.readNodes4(o, node2vert)
			hasNodes = true
		case name == "Elements" && !hasNodes:
			err = s.errf("$Elements section found before $Nodes section")
		case name == "Elements" && o.Format == "msh2":
			err = s.readElements2(o, node2vert)
			hasElements = true
		case name == "Elements":
			err = s.readElements4(o, node2vert, entities)
			hasElements = true
		default:
			err = s.skip(name)
		}
		if err != nil {
			return nil, err
		}
	}

	// check
	if !hasNodes {
		return nil, s.errf("missing $Nodes section")
	}
	if !hasElements {
		return nil, s.errf("missing $Elements section")
	}
	return
}

// format 2.2 //////////////////////////////////////////////////////////////////////////////////////

func (o *mshScanner) readNodes2(msh *Mesh, node2vert map[int]int) (err error) {
	h, err := o.ints("Nodes", 1)
	if err != nil {
		return
	}
	for i := 0; i < h[0]; i++ {
		f, err := o.fields("Nodes", 4)
		if err != nil {
			return err
		}
		if err = o.addVert(msh, node2vert, f[0], f[1:4]); err != nil {
			return err
		}
	}
	return o.end("Nodes")
}

func (o *mshScanner) readElements2(msh *Mesh, node2vert map[int]int) (err error) {
	h, err := o.ints("Elements", 1)
	if err != nil {
		return
	}
	for i := 0; i < h[0]; i++ {

		// id type ntags tag1 ... tagN node1 ... nodeM
		f, err := o.ints("Elements", 3)
		if err != nil {
			return err
		}
		ntags := f[2]
		if ntags < 0 || 3+ntags > len(f) {
			return o.errf("invalid number of tags %d", ntags)
		}
		tag := 0
		if ntags > 0 {
			tag = f[3]
		}
		if err = o.addCell(msh, node2vert, f[0], f[1], tag, f[3+ntags:]); err != nil {
			return err
		}
	}
	return o.end("Elements")
}

// format 4.1 //////////////////////////////////////////////////////////////////////////////////////

func (o *mshScanner) readEntities4(entities map[[2]int]int) (err error) {
	n, err := o.ints("Entities", 4)
	if err != nil {
		return
	}
	for dim := 0; dim < 4; dim++ {

		// points: tag x y z nphys phys...
		// others: tag minx miny minz maxx maxy maxz nphys phys... nbound bound...
		iphys := 7
		if dim == 0 {
			iphys = 4
		}
		for i := 0; i < n[dim]; i++ {
			f, err := o.fields("Entities", iphys+1)
			if err != nil {
				return err
			}
			tag, err := o.atoi(f[0])
			if err != nil {
				return err
			}
			nphys, err := o.atoi(f[iphys])
			if err != nil {
				return err
			}
			if nphys < 0 || iphys+1+nphys > len(f) {
				return o.errf("invalid number of physical tags %d", nphys)
			}
			phys := 0
			if nphys > 0 {
				if phys, err = o.atoi(f[iphys+1]); err != nil {
					return err
				}
			}
			entities[[2]int{dim, tag}] = phys
		}
	}
	return o.end("Entities")
}

func (o *mshScanner) readNodes4(msh *Mesh, node2vert map[int]int) (err error) {
	h, err := o.ints("Nodes", 4)
	if err != nil {
		return
	}
	nblocks, nnodes := h[0], h[1]
	for b := 0; b < nblocks; b++ {

		// dim tag parametric n
		bh, err := o.ints("Nodes", 4)
		if err != nil {
			return err
		}
		n := bh[3]

		// node tags, then coordinates
		tags := make([]string, n)
		for i := 0; i < n; i++ {
			f, err := o.fields("Nodes", 1)
			if err != nil {
				return err
			}
			tags[i] = f[0]
		}
		for i := 0; i < n; i++ {
			f, err := o.fields("Nodes", 3)
			if err != nil {
				return err
			}
			if err = o.addVert(msh, node2vert, tags[i], f[:3]); err != nil {
				return err
			}
		}
	}
	if len(msh.Verts) != nnodes {
		return o.errf("$Nodes header announces %d nodes but %d were read", nnodes, len(msh.Verts))
	}
	return o.end("Nodes")
}

func (o *mshScanner) readElements4(msh *Mesh, node2vert map[int]int, entities map[[2]int]int) (err error) {
	h, err := o.ints("Elements", 4)
	if err != nil {
		return
	}
	nblocks, nelems := h[0], h[1]
	for b := 0; b < nblocks; b++ {

		// dim tag type n
		bh, err := o.ints("Elements", 4)
		if err != nil {
			return err
		}
		tag := entities[[2]int{bh[0], bh[1]}]
		for i := 0; i < bh[3]; i++ {
			f, err := o.ints("Elements", 2)
			if err != nil {
				return err
			}
			if err = o.addCell(msh, node2vert, f[0], bh[2], tag, f[1:]); err != nil {
				return err
			}
		}
	}
	if len(msh.Cells) != nelems {
		return o.errf("$Elements header announces %d elements but %d were read", nelems, len(msh.Cells))
	}
	return o.end("Elements")
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// addVert appends a vertex with the coordinates given as strings
func (o *mshScanner) addVert(msh *Mesh, node2vert map[int]int, stag string, sx []string) (err error) {
	tag, err := o.atoi(stag)
	if err != nil {
		return
	}
	if _, ok := node2vert[tag]; ok {
		return o.errf("duplicated node %d", tag)
	}
	x := make([]float64, len(sx))
	for i, s := range sx {
		x[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return o.errf("invalid coordinate %q", s)
		}
	}
	node2vert[tag] = len(msh.Verts)
	msh.Verts = append(msh.Verts, &Vert{Id: len(msh.Verts), C: x, FileId: tag})
	return
}

// addCell appends a cell whose nodes are given by node tags
func (o *mshScanner) addCell(msh *Mesh, node2vert map[int]int, id, gmshType, tag int, nodes []int) error {
	s := shp.GetByGmsh(gmshType)
	if s == nil {
		return o.errf("element %d has unsupported gmsh type %d", id, gmshType)
	}
	if len(nodes) != s.Nverts {
		return o.errf("element %d of type %q must have %d nodes; %d given", id, s.Type, s.Nverts, len(nodes))
	}
	verts := make([]int, len(nodes))
	for i, n := range nodes {
		vid, ok := node2vert[n]
		if !ok {
			return o.errf("element %d refers to non-existent node %d", id, n)
		}
		verts[i] = vid
	}
	msh.Cells = append(msh.Cells, &Cell{Id: len(msh.Cells), Tag: tag, Type: s.Type, Verts: verts, FileId: id})
	return nil
}

// next returns the next non-empty line
func (o *mshScanner) next() (line string, ok bool) {
	for o.pos < len(o.lines) {
		line = strings.TrimSpace(o.lines[o.pos])
		o.pos++
		if line != "" {
			return line, true
		}
	}
	return "", false
}

// fields returns the fields of the next line; at least nmin fields are required
func (o *mshScanner) fields(section string, nmin int) ([]string, error) {
	line, ok := o.next()
	if !ok {
		return nil, o.errf("unexpected end of file in section $%s", section)
	}
	f := strings.Fields(line)
	if len(f) < nmin || strings.HasPrefix(f[0], "$") {
		return nil, o.errf("section $%s: expected at least %d values; got %q", section, nmin, line)
	}
	return f, nil
}

// ints returns the fields of the next line converted to integers
func (o *mshScanner) ints(section string, nmin int) (res []int, err error) {
	f, err := o.fields(section, nmin)
	if err != nil {
		return
	}
	res = make([]int, len(f))
	for i, s := range f {
		if res[i], err = o.atoi(s); err != nil {
			return nil, err
		}
	}
	return
}

// end checks that the next line closes section
func (o *mshScanner) end(section string) error {
	line, _ := o.next()
	if line != "$End"+section {
		return o.errf("expected $End%s; got %q", section, line)
	}
	return nil
}

// skip jumps over an unused section
func (o *mshScanner) skip(section string) error {
	for {
		line, ok := o.next()
		if !ok {
			return o.errf("unexpected end of file in section $%s", section)
		}
		if line == "$End"+section {
			return nil
		}
	}
}

func (o *mshScanner) atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, o.errf("invalid integer %q", s)
	}
	return n, nil
}

func (o *mshScanner) errf(msg string, prm ...interface{}) *InputFormatError {
	return &InputFormatError{Path: o.path, Line: o.pos, Msg: io.Sf(msg, prm...)}
}
