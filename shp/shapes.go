// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// local vertices of edges and faces (gmsh numbering)
var (
	quaEdges = [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	triEdges = [][]int{{0, 1}, {1, 2}, {2, 0}}
	tetEdges = [][]int{{0, 1}, {1, 2}, {2, 0}, {3, 0}, {3, 2}, {3, 1}}
	hexEdges = [][]int{{0, 1}, {0, 3}, {0, 4}, {1, 2}, {1, 5}, {2, 3}, {2, 6}, {3, 7}, {4, 5}, {4, 7}, {5, 6}, {6, 7}}
	hexFaces = [][]int{{0, 1, 2, 3}, {0, 1, 5, 4}, {0, 3, 7, 4}, {1, 2, 6, 5}, {2, 3, 7, 6}, {4, 5, 6, 7}}
)

// corners
var (
	linCorners = [][]float64{{-1}, {1}}
	triCorners = [][]float64{{0, 0}, {1, 0}, {0, 1}}
	quaCorners = [][]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	tetCorners = [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	hexCorners = [][]float64{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
)

func init() {

	// 0D and 1D
	register(&Shape{Type: "pnt", BasicType: "pnt", GmshCode: 15, VtkCode: 1, Gndim: 0, Nverts: 1})
	register(&Shape{Type: "lin2", BasicType: "lin2", GmshCode: 1, VtkCode: 3, Gndim: 1, Nverts: 2,
		NatCoords: natcoords(linCorners, nil),
	})
	register(&Shape{Type: "lin3", BasicType: "lin2", GmshCode: 8, VtkCode: 21, Gndim: 1, Nverts: 3,
		NatCoords: natcoords(linCorners, [][]int{{0, 1}}),
	})

	// 2D
	register(&Shape{Type: "tri3", BasicType: "tri3", GmshCode: 2, VtkCode: 5, Gndim: 2, Nverts: 3,
		NatCoords: natcoords(triCorners, nil),
	})
	register(&Shape{Type: "tri6", BasicType: "tri3", GmshCode: 9, VtkCode: 22, Gndim: 2, Nverts: 6,
		NatCoords: natcoords(triCorners, triEdges),
	})
	register(&Shape{Type: "qua4", BasicType: "qua4", GmshCode: 3, VtkCode: 9, Gndim: 2, Nverts: 4,
		NatCoords: natcoords(quaCorners, nil),
		ToTarget:  []int{0, 1, 2, 3},
	})
	register(&Shape{Type: "qua8", BasicType: "qua4", GmshCode: 16, VtkCode: 23, Gndim: 2, Nverts: 8,
		NatCoords: natcoords(quaCorners, quaEdges),
		ToTarget:  []int{0, 4, 1, 5, 2, 6, 3, 7},
	})
	register(&Shape{Type: "qua9", BasicType: "qua4", GmshCode: 10, VtkCode: 28, Gndim: 2, Nverts: 9,
		NatCoords: natcoords(quaCorners, append(quaEdges, []int{0, 1, 2, 3})),
		ToTarget:  []int{0, 4, 1, 5, 2, 6, 3, 7, 8},
	})

	// 3D
	register(&Shape{Type: "tet4", BasicType: "tet4", GmshCode: 4, VtkCode: 10, Gndim: 3, Nverts: 4,
		NatCoords: natcoords(tetCorners, nil),
	})
	register(&Shape{Type: "tet10", BasicType: "tet4", GmshCode: 11, VtkCode: 24, Gndim: 3, Nverts: 10,
		NatCoords: natcoords(tetCorners, tetEdges),
		ToVtk:     []int{0, 1, 2, 3, 4, 5, 6, 7, 9, 8},
	})
	register(&Shape{Type: "hex8", BasicType: "hex8", GmshCode: 5, VtkCode: 12, Gndim: 3, Nverts: 8,
		NatCoords: natcoords(hexCorners, nil),
	})
	register(&Shape{Type: "hex20", BasicType: "hex8", GmshCode: 17, VtkCode: 25, Gndim: 3, Nverts: 20,
		NatCoords: natcoords(hexCorners, hexEdges),
		ToVtk:     []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 11, 13, 9, 16, 18, 19, 17, 10, 12, 14, 15},
	})
	register(&Shape{Type: "hex27", BasicType: "hex8", GmshCode: 12, VtkCode: 29, Gndim: 3, Nverts: 27,
		NatCoords: natcoords(hexCorners, append(append(append([][]int{}, hexEdges...), hexFaces...), []int{0, 1, 2, 3, 4, 5, 6, 7})),
		ToTarget:  []int{2, 3, 0, 1, 6, 7, 4, 5, 10, 11, 8, 9, 18, 19, 16, 17, 14, 15, 12, 13, 24, 23, 20, 22, 21, 25, 26},
		ToVtk:     []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 11, 13, 9, 16, 18, 19, 17, 10, 12, 14, 15, 22, 23, 21, 24, 20, 25, 26},
	})
}
