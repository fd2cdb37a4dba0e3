// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out writes the files produced from models and meshes: gmsh scripts, topology dumps,
// connectivity matrices for analysis tools and VTU files for visualisation
package out

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Save writes buffers to dirout/fn, creating dirout if necessary. The file name is printed when
// io.Verbose is on
func Save(dirout, fn string, buf ...*bytes.Buffer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot write file %q in %q:\n%v", fn, dirout, r)
		}
	}()
	io.WriteFileVD(dirout, fn, buf...)
	return
}
